// Package outline turns vector outlines into arc-length parametrized sub-paths.
//
// Geometry is carried as seehuhn.de/go/geom path data; curves are flattened
// into polylines with a cumulative length table so that any distance along a
// sub-path maps to a point in constant-time-plus-binary-search.
package outline

import (
	"math"
	"sort"

	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/vec"

	"github.com/lixenwraith/glitchgrid/shape"
)

// DefaultTolerance is the maximum curve flattening error in source units
const DefaultTolerance = 0.25

// SubPath is one drawable, connected piece of an outline
type SubPath struct {
	points []vec.Vec2
	cum    []float64 // cum[i] is the arc length from points[0] to points[i]
}

// Length returns the total arc length
func (s *SubPath) Length() float64 {
	if len(s.cum) == 0 {
		return 0
	}
	return s.cum[len(s.cum)-1]
}

// PointAt returns the point at arc length d, clamped to the sub-path ends
func (s *SubPath) PointAt(d float64) shape.Point {
	if len(s.points) == 0 {
		return shape.Point{}
	}
	if d <= 0 {
		return s.points[0]
	}
	total := s.Length()
	if d >= total {
		return s.points[len(s.points)-1]
	}

	i := sort.SearchFloat64s(s.cum, d)
	if i == 0 {
		return s.points[0]
	}
	segLen := s.cum[i] - s.cum[i-1]
	if segLen == 0 {
		return s.points[i]
	}
	t := (d - s.cum[i-1]) / segLen
	a, b := s.points[i-1], s.points[i]
	return a.Add(b.Sub(a).Mul(t))
}

// Points returns the flattened polyline
func (s *SubPath) Points() []vec.Vec2 { return s.points }

// builder accumulates flattened sub-paths from a path walk
type builder struct {
	tolerance float64
	out       []*SubPath
	cur       *SubPath
}

func (b *builder) start(p vec.Vec2) {
	b.flush()
	b.cur = &SubPath{points: []vec.Vec2{p}, cum: []float64{0}}
}

func (b *builder) lineTo(p vec.Vec2) {
	if b.cur == nil {
		b.start(p)
		return
	}
	last := b.cur.points[len(b.cur.points)-1]
	b.cur.points = append(b.cur.points, p)
	b.cur.cum = append(b.cur.cum, b.cur.Length()+p.Sub(last).Length())
}

func (b *builder) flush() {
	if b.cur != nil {
		b.out = append(b.out, b.cur)
		b.cur = nil
	}
}

// quadTo flattens a quadratic Bézier from the current point
func (b *builder) quadTo(p0, p1, p2 vec.Vec2) {
	e := p0.Sub(p1.Mul(2)).Add(p2).Mul(0.25)
	n := 1
	if errLen := e.Length(); errLen > b.tolerance {
		n = int(math.Ceil(math.Sqrt(errLen / b.tolerance)))
	}
	for i := 1; i <= n; i++ {
		t := float64(i) / float64(n)
		omt := 1 - t
		b.lineTo(p0.Mul(omt * omt).Add(p1.Mul(2 * omt * t)).Add(p2.Mul(t * t)))
	}
}

// cubeTo flattens a cubic Bézier using Wang's segment count
func (b *builder) cubeTo(p0, p1, p2, p3 vec.Vec2) {
	d1 := p0.Sub(p1.Mul(2)).Add(p2)
	d2 := p1.Sub(p2.Mul(2)).Add(p3)
	m := max(d1.Length(), d2.Length())
	n := 1
	if m > 0 {
		if nf := math.Sqrt(3 * m / (4 * b.tolerance)); nf > 1 {
			n = int(math.Ceil(nf))
		}
	}
	for i := 1; i <= n; i++ {
		t := float64(i) / float64(n)
		omt := 1 - t
		omt2 := omt * omt
		t2 := t * t
		b.lineTo(p0.Mul(omt2 * omt).Add(p1.Mul(3 * omt2 * t)).Add(p2.Mul(3 * omt * t2)).Add(p3.Mul(t2 * t)))
	}
}

// Flatten splits p at every MoveTo and flattens each piece into a SubPath
// Sub-paths keep the declared order of the path data
func Flatten(p *path.Data, tolerance float64) []*SubPath {
	if p == nil {
		return nil
	}
	if tolerance <= 0 {
		tolerance = DefaultTolerance
	}
	b := &builder{tolerance: tolerance}

	var current, start vec.Vec2
	coordIdx := 0
	for _, cmd := range p.Cmds {
		switch cmd {
		case path.CmdMoveTo:
			current = p.Coords[coordIdx]
			start = current
			b.start(current)
			coordIdx++

		case path.CmdLineTo:
			b.lineTo(p.Coords[coordIdx])
			current = p.Coords[coordIdx]
			coordIdx++

		case path.CmdQuadTo:
			b.quadTo(current, p.Coords[coordIdx], p.Coords[coordIdx+1])
			current = p.Coords[coordIdx+1]
			coordIdx += 2

		case path.CmdCubeTo:
			b.cubeTo(current, p.Coords[coordIdx], p.Coords[coordIdx+1], p.Coords[coordIdx+2])
			current = p.Coords[coordIdx+2]
			coordIdx += 3

		case path.CmdClose:
			if current != start {
				b.lineTo(start)
			}
			current = start
		}
	}
	b.flush()
	return b.out
}
