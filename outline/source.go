package outline

import (
	"seehuhn.de/go/geom/path"

	"github.com/lixenwraith/glitchgrid/shape"
)

// Source is one outline input: visible sub-paths in declared order
type Source struct {
	Name  string
	Paths []*SubPath
}

// FromPath builds a source from geom path data
func FromPath(name string, p *path.Data) *Source {
	return &Source{Name: name, Paths: Flatten(p, DefaultTolerance)}
}

// TotalLength sums the arc length of every sub-path
func (s *Source) TotalLength() float64 {
	total := 0.0
	for _, p := range s.Paths {
		total += p.Length()
	}
	return total
}

// Curves adapts the sub-paths for shape.Normalize
func (s *Source) Curves() []shape.Curve {
	curves := make([]shape.Curve, len(s.Paths))
	for i, p := range s.Paths {
		curves[i] = p
	}
	return curves
}
