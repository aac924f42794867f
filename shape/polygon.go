// Package shape holds the keyframe polygons the silhouette morphs between.
//
// All polygons live in the logical square [0,100]x[0,100] and carry the same
// point count so that keyframes can be interpolated index by index.
package shape

import (
	"math"

	"seehuhn.de/go/geom/vec"
)

// PointCount is the library-wide number of points per keyframe polygon
const PointCount = 200

// Extent is the side of the logical square polygons are normalized into
const Extent = 100.0

// Point is a 2-D point in logical space
type Point = vec.Vec2

// Polygon is an ordered, implicitly closed point sequence
type Polygon []Point

// Bounds returns the axis-aligned bounding box of p
// An empty polygon reports ok=false
func (p Polygon) Bounds() (minX, minY, maxX, maxY float64, ok bool) {
	if len(p) == 0 {
		return 0, 0, 0, 0, false
	}
	minX, minY = math.Inf(1), math.Inf(1)
	maxX, maxY = math.Inf(-1), math.Inf(-1)
	for _, pt := range p {
		minX = min(minX, pt.X)
		minY = min(minY, pt.Y)
		maxX = max(maxX, pt.X)
		maxY = max(maxY, pt.Y)
	}
	return minX, minY, maxX, maxY, true
}

// Clone returns an independent copy
func (p Polygon) Clone() Polygon {
	out := make(Polygon, len(p))
	copy(out, p)
	return out
}

// generate builds an n-point polygon from an index function
func generate(n int, fn func(i int) Point) Polygon {
	out := make(Polygon, n)
	for i := range out {
		out[i] = fn(i)
	}
	return out
}
