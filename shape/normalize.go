package shape

// Curve is a drawable sub-path with an arc-length parametrization
type Curve interface {
	Length() float64
	PointAt(d float64) Point
}

// Sample walks curves in order and returns n points at equal arc-length steps
// of their combined length
// Returns ok=false when the curves contribute no length at all
func Sample(curves []Curve, n int) (Polygon, bool) {
	if len(curves) == 0 || n <= 0 {
		return nil, false
	}

	lengths := make([]float64, len(curves))
	total := 0.0
	for i, c := range curves {
		l := c.Length()
		if l < 0 {
			l = 0
		}
		lengths[i] = l
		total += l
	}
	if total <= 0 {
		return nil, false
	}

	last := len(curves) - 1
	points := make(Polygon, n)
	for i := range points {
		target := float64(i) / float64(n) * total

		index := -1
		inPath := 0.0
		acc := 0.0
		for j, l := range lengths {
			if acc+l >= target {
				index = j
				inPath = target - acc
				break
			}
			acc += l
		}
		// Rounding can push the target past the final sub-path
		if index < 0 {
			index = last
			inPath = lengths[last]
		}

		points[i] = curves[index].PointAt(inPath)
	}
	return points, true
}

// Fit translates, uniformly scales and centers points into the logical square,
// preserving aspect ratio (letterboxed, not stretched)
func Fit(points Polygon) Polygon {
	minX, minY, maxX, maxY, ok := points.Bounds()
	if !ok {
		return nil
	}

	width := maxX - minX
	height := maxY - minY
	safeW, safeH := width, height
	if safeW == 0 {
		safeW = 1
	}
	if safeH == 0 {
		safeH = 1
	}

	scale := Extent / max(safeW, safeH)
	offsetX := (Extent - width*scale) / 2
	offsetY := (Extent - height*scale) / 2

	out := make(Polygon, len(points))
	for i, p := range points {
		out[i] = Point{
			X: (p.X-minX)*scale + offsetX,
			Y: (p.Y-minY)*scale + offsetY,
		}
	}
	return out
}

// Normalize samples curves into an n-point polygon fitted to the logical square
// Degenerate input reports ok=false and must be skipped by the caller
func Normalize(curves []Curve, n int) (Polygon, bool) {
	raw, ok := Sample(curves, n)
	if !ok {
		return nil, false
	}
	return Fit(raw), true
}
