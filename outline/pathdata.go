package outline

import (
	"errors"
	"fmt"
	"math"
	"strconv"

	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/vec"
)

// ErrPathSyntax reports malformed SVG path data
var ErrPathSyntax = errors.New("outline: path data syntax")

// pathScanner tokenizes SVG path data in place
type pathScanner struct {
	s   string
	pos int
}

func isSep(c byte) bool {
	return c == ' ' || c == ',' || c == '\t' || c == '\n' || c == '\r' || c == '\f'
}

func isCommand(c byte) bool {
	switch c {
	case 'M', 'm', 'L', 'l', 'H', 'h', 'V', 'v', 'C', 'c', 'S', 's', 'Q', 'q', 'T', 't', 'A', 'a', 'Z', 'z':
		return true
	}
	return false
}

func (sc *pathScanner) skipSep() {
	for sc.pos < len(sc.s) && isSep(sc.s[sc.pos]) {
		sc.pos++
	}
}

func (sc *pathScanner) done() bool {
	sc.skipSep()
	return sc.pos >= len(sc.s)
}

// atNumber reports whether the next token starts a number
func (sc *pathScanner) atNumber() bool {
	sc.skipSep()
	if sc.pos >= len(sc.s) {
		return false
	}
	c := sc.s[sc.pos]
	return c == '-' || c == '+' || c == '.' || (c >= '0' && c <= '9')
}

func (sc *pathScanner) errorf(format string, args ...any) error {
	return fmt.Errorf("%w: at offset %d: %s", ErrPathSyntax, sc.pos, fmt.Sprintf(format, args...))
}

func (sc *pathScanner) number() (float64, error) {
	sc.skipSep()
	start := sc.pos
	i := sc.pos
	if i < len(sc.s) && (sc.s[i] == '-' || sc.s[i] == '+') {
		i++
	}
	digits := 0
	for i < len(sc.s) && sc.s[i] >= '0' && sc.s[i] <= '9' {
		i++
		digits++
	}
	if i < len(sc.s) && sc.s[i] == '.' {
		i++
		for i < len(sc.s) && sc.s[i] >= '0' && sc.s[i] <= '9' {
			i++
			digits++
		}
	}
	if digits == 0 {
		return 0, sc.errorf("expected number")
	}
	if i < len(sc.s) && (sc.s[i] == 'e' || sc.s[i] == 'E') {
		j := i + 1
		if j < len(sc.s) && (sc.s[j] == '-' || sc.s[j] == '+') {
			j++
		}
		if j < len(sc.s) && sc.s[j] >= '0' && sc.s[j] <= '9' {
			for j < len(sc.s) && sc.s[j] >= '0' && sc.s[j] <= '9' {
				j++
			}
			i = j
		}
	}
	v, err := strconv.ParseFloat(sc.s[start:i], 64)
	if err != nil {
		return 0, sc.errorf("bad number %q", sc.s[start:i])
	}
	sc.pos = i
	return v, nil
}

// flag reads a single-character arc flag, which may be packed without separators
func (sc *pathScanner) flag() (bool, error) {
	sc.skipSep()
	if sc.pos < len(sc.s) {
		switch sc.s[sc.pos] {
		case '0':
			sc.pos++
			return false, nil
		case '1':
			sc.pos++
			return true, nil
		}
	}
	return false, sc.errorf("expected arc flag")
}

func (sc *pathScanner) pair() (vec.Vec2, error) {
	x, err := sc.number()
	if err != nil {
		return vec.Vec2{}, err
	}
	y, err := sc.number()
	if err != nil {
		return vec.Vec2{}, err
	}
	return vec.Vec2{X: x, Y: y}, nil
}

// ParsePathData converts the SVG path "d" attribute into geom path data
// On a syntax error the returned data still holds every segment before it
func ParsePathData(d string) (*path.Data, error) {
	sc := &pathScanner{s: d}
	p := &path.Data{}

	var (
		current, start vec.Vec2
		lastCtrl       vec.Vec2 // last control point, for S/T reflection
		lastCmd        byte
		open           bool // a MoveTo has been emitted for the current sub-path
		cmd            byte
	)

	ensureOpen := func() {
		if !open {
			p = p.MoveTo(current)
			start = current
			open = true
		}
	}

	for !sc.done() {
		c := sc.s[sc.pos]
		if isCommand(c) {
			cmd = c
			sc.pos++
		} else if cmd == 0 || cmd == 'Z' || cmd == 'z' || !sc.atNumber() {
			return p, sc.errorf("unexpected %q", c)
		}
		rel := cmd >= 'a'

		switch cmd {
		case 'M', 'm':
			pt, err := sc.pair()
			if err != nil {
				return p, err
			}
			if rel {
				pt = current.Add(pt)
			}
			p = p.MoveTo(pt)
			current, start = pt, pt
			open = true
			// Subsequent pairs are implicit line-tos
			if cmd == 'M' {
				cmd = 'L'
			} else {
				cmd = 'l'
			}
			lastCmd = 'M'
			continue

		case 'Z', 'z':
			if open {
				p = p.Close()
			}
			current = start
			open = false
			lastCmd = 'Z'
			continue

		case 'L', 'l':
			pt, err := sc.pair()
			if err != nil {
				return p, err
			}
			if rel {
				pt = current.Add(pt)
			}
			ensureOpen()
			p = p.LineTo(pt)
			current = pt

		case 'H', 'h':
			x, err := sc.number()
			if err != nil {
				return p, err
			}
			if rel {
				x += current.X
			}
			ensureOpen()
			current = vec.Vec2{X: x, Y: current.Y}
			p = p.LineTo(current)

		case 'V', 'v':
			y, err := sc.number()
			if err != nil {
				return p, err
			}
			if rel {
				y += current.Y
			}
			ensureOpen()
			current = vec.Vec2{X: current.X, Y: y}
			p = p.LineTo(current)

		case 'C', 'c', 'S', 's':
			var c1 vec.Vec2
			smooth := cmd == 'S' || cmd == 's'
			if smooth {
				c1 = current
				if lastCmd == 'C' {
					c1 = current.Mul(2).Sub(lastCtrl)
				}
			} else {
				pt, err := sc.pair()
				if err != nil {
					return p, err
				}
				if rel {
					pt = current.Add(pt)
				}
				c1 = pt
			}
			c2, err := sc.pair()
			if err != nil {
				return p, err
			}
			end, err := sc.pair()
			if err != nil {
				return p, err
			}
			if rel {
				c2 = current.Add(c2)
				end = current.Add(end)
			}
			ensureOpen()
			p = p.CubeTo(c1, c2, end)
			lastCtrl = c2
			current = end
			lastCmd = 'C'
			continue

		case 'Q', 'q', 'T', 't':
			var ctrl vec.Vec2
			smooth := cmd == 'T' || cmd == 't'
			if smooth {
				ctrl = current
				if lastCmd == 'Q' {
					ctrl = current.Mul(2).Sub(lastCtrl)
				}
			} else {
				pt, err := sc.pair()
				if err != nil {
					return p, err
				}
				if rel {
					pt = current.Add(pt)
				}
				ctrl = pt
			}
			end, err := sc.pair()
			if err != nil {
				return p, err
			}
			if rel {
				end = current.Add(end)
			}
			ensureOpen()
			p = p.QuadTo(ctrl, end)
			lastCtrl = ctrl
			current = end
			lastCmd = 'Q'
			continue

		case 'A', 'a':
			rx, err := sc.number()
			if err != nil {
				return p, err
			}
			ry, err := sc.number()
			if err != nil {
				return p, err
			}
			rot, err := sc.number()
			if err != nil {
				return p, err
			}
			large, err := sc.flag()
			if err != nil {
				return p, err
			}
			sweep, err := sc.flag()
			if err != nil {
				return p, err
			}
			end, err := sc.pair()
			if err != nil {
				return p, err
			}
			if rel {
				end = current.Add(end)
			}
			ensureOpen()
			p = arcTo(p, current, end, rx, ry, rot, large, sweep)
			current = end
		}
		lastCmd = cmd &^ 0x20 // upper-case
	}
	return p, nil
}

// arcTo appends an SVG elliptical arc as cubic Bézier segments
func arcTo(p *path.Data, from, to vec.Vec2, rx, ry, rotDeg float64, large, sweep bool) *path.Data {
	if from == to {
		return p
	}
	rx, ry = math.Abs(rx), math.Abs(ry)
	if rx == 0 || ry == 0 {
		return p.LineTo(to)
	}

	phi := rotDeg * math.Pi / 180
	cosPhi, sinPhi := math.Cos(phi), math.Sin(phi)

	// Endpoint to center parametrization
	dx := (from.X - to.X) / 2
	dy := (from.Y - to.Y) / 2
	x1 := cosPhi*dx + sinPhi*dy
	y1 := -sinPhi*dx + cosPhi*dy

	lambda := (x1*x1)/(rx*rx) + (y1*y1)/(ry*ry)
	if lambda > 1 {
		s := math.Sqrt(lambda)
		rx *= s
		ry *= s
	}

	num := rx*rx*ry*ry - rx*rx*y1*y1 - ry*ry*x1*x1
	den := rx*rx*y1*y1 + ry*ry*x1*x1
	coef := 0.0
	if den != 0 && num > 0 {
		coef = math.Sqrt(num / den)
	}
	if large == sweep {
		coef = -coef
	}
	cx1 := coef * rx * y1 / ry
	cy1 := -coef * ry * x1 / rx

	cx := cosPhi*cx1 - sinPhi*cy1 + (from.X+to.X)/2
	cy := sinPhi*cx1 + cosPhi*cy1 + (from.Y+to.Y)/2

	theta1 := vectorAngle(1, 0, (x1-cx1)/rx, (y1-cy1)/ry)
	delta := vectorAngle((x1-cx1)/rx, (y1-cy1)/ry, (-x1-cx1)/rx, (-y1-cy1)/ry)
	if !sweep && delta > 0 {
		delta -= 2 * math.Pi
	} else if sweep && delta < 0 {
		delta += 2 * math.Pi
	}

	segments := int(math.Ceil(math.Abs(delta) / (math.Pi / 2)))
	if segments < 1 {
		segments = 1
	}
	step := delta / float64(segments)
	k := 4.0 / 3.0 * math.Tan(step/4)

	point := func(theta float64) (vec.Vec2, vec.Vec2) {
		cosT, sinT := math.Cos(theta), math.Sin(theta)
		pos := vec.Vec2{
			X: cx + rx*cosT*cosPhi - ry*sinT*sinPhi,
			Y: cy + rx*cosT*sinPhi + ry*sinT*cosPhi,
		}
		deriv := vec.Vec2{
			X: -rx*sinT*cosPhi - ry*cosT*sinPhi,
			Y: -rx*sinT*sinPhi + ry*cosT*cosPhi,
		}
		return pos, deriv
	}

	theta := theta1
	p0, d0 := point(theta)
	for i := 0; i < segments; i++ {
		next := theta + step
		p3, d3 := point(next)
		if i == segments-1 {
			p3 = to
		}
		p = p.CubeTo(p0.Add(d0.Mul(k)), p3.Sub(d3.Mul(k)), p3)
		theta, p0, d0 = next, p3, d3
	}
	return p
}

func vectorAngle(ux, uy, vx, vy float64) float64 {
	return math.Atan2(ux*vy-uy*vx, ux*vx+uy*vy)
}
