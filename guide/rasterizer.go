package guide

import (
	"image"
	"image/draw"

	"golang.org/x/image/vector"

	"github.com/lixenwraith/glitchgrid/shape"
)

// Rasterizer fills normalized polygons into its mask
type Rasterizer struct {
	mask *Mask
	z    *vector.Rasterizer
}

// NewRasterizer creates a rasterizer with a w x h mask
func NewRasterizer(w, h int) *Rasterizer {
	r := &Rasterizer{mask: NewMask(w, h)}
	r.z = vector.NewRasterizer(r.mask.Width(), r.mask.Height())
	return r
}

// Mask returns the guide mask written by Rebuild
func (r *Rasterizer) Mask() *Mask { return r.mask }

// Resize changes the mask resolution and clears it
func (r *Rasterizer) Resize(w, h int) {
	r.mask.Resize(w, h)
	r.z.Reset(r.mask.Width(), r.mask.Height())
}

// Rebuild clears the mask and fills poly, mapped from the logical square
// onto the mask with a centered contain fit
func (r *Rasterizer) Rebuild(poly shape.Polygon) {
	r.mask.Clear()
	if len(poly) == 0 {
		return
	}

	w, h := float64(r.mask.Width()), float64(r.mask.Height())
	size := max(w, h)
	offX := (w - size) / 2
	offY := (h - size) / 2
	scale := size / shape.Extent

	r.z.Reset(r.mask.Width(), r.mask.Height())
	for i, p := range poly {
		x := float32(offX + p.X*scale)
		y := float32(offY + p.Y*scale)
		if i == 0 {
			r.z.MoveTo(x, y)
		} else {
			r.z.LineTo(x, y)
		}
	}
	r.z.ClosePath()
	r.draw()
}

// FillPolygon fills points given directly in mask pixel coordinates
// Existing coverage is kept outside the filled area
func (r *Rasterizer) FillPolygon(points []shape.Point) {
	if len(points) < 3 {
		return
	}
	r.z.Reset(r.mask.Width(), r.mask.Height())
	for i, p := range points {
		if i == 0 {
			r.z.MoveTo(float32(p.X), float32(p.Y))
		} else {
			r.z.LineTo(float32(p.X), float32(p.Y))
		}
	}
	r.z.ClosePath()
	r.z.DrawOp = draw.Over
	r.z.Draw(r.mask.img, r.mask.img.Bounds(), image.Opaque, image.Point{})
}

func (r *Rasterizer) draw() {
	r.z.DrawOp = draw.Src
	r.z.Draw(r.mask.img, r.mask.img.Bounds(), image.Opaque, image.Point{})
}
