package shape

import "math"

// Circle returns a circle of radius 35 centered in the logical square
func Circle(n int) Polygon {
	return generate(n, func(i int) Point {
		angle := float64(i) / float64(n) * 2 * math.Pi
		return Point{X: 50 + 35*math.Cos(angle), Y: 50 + 35*math.Sin(angle)}
	})
}

// Star returns a five-lobed star traced by the radius function 25+15cos(5θ)
func Star(n int) Polygon {
	return generate(n, func(i int) Point {
		angle := float64(i) / float64(n) * 2 * math.Pi
		r := 25 + 15*math.Cos(angle*5)
		return Point{X: 50 + r*math.Cos(angle), Y: 50 + r*math.Sin(angle)}
	})
}

// Square returns a 70-unit square traced as four linear runs, clockwise from the top-left corner
func Square(n int) Polygon {
	const size = 70.0
	const half = size / 2
	return generate(n, func(i int) Point {
		progress := float64(i) / float64(n)
		var x, y float64
		switch {
		case progress < 0.25:
			x = progress/0.25*size - half
			y = -half
		case progress < 0.5:
			x = half
			y = (progress-0.25)/0.25*size - half
		case progress < 0.75:
			x = half - (progress-0.5)/0.25*size
			y = half
		default:
			x = -half
			y = half - (progress-0.75)/0.25*size
		}
		return Point{X: 50 + x, Y: 50 + y}
	})
}

// Diamond returns a sharp diamond using the superellipse-style radius 40/(|sinθ|+|cosθ|)
func Diamond(n int) Polygon {
	return generate(n, func(i int) Point {
		angle := float64(i) / float64(n) * 2 * math.Pi
		r := 40 / (math.Abs(math.Sin(angle)) + math.Abs(math.Cos(angle)))
		return Point{X: 50 + r*math.Cos(angle), Y: 50 + r*math.Sin(angle)}
	})
}

// Defaults returns the built-in keyframes used when no outlines are supplied
func Defaults(n int) []Polygon {
	return []Polygon{Circle(n), Star(n), Square(n), Diamond(n)}
}
