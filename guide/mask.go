// Package guide rasterizes the morphing silhouette into a low-resolution alpha mask
//
// The mask is decoupled from the cell grid: cells sample it by proportional
// position, so its resolution only bounds silhouette detail.
package guide

import (
	"image"
)

// DefaultLongEdge is the mask resolution along the surface's longer side
const DefaultLongEdge = 200

// Size derives mask dimensions preserving the surface aspect ratio
// Zero or negative surface dimensions yield 1x1
func Size(surfaceW, surfaceH, longEdge int) (w, h int) {
	if surfaceW <= 0 || surfaceH <= 0 {
		return 1, 1
	}
	if longEdge <= 0 {
		longEdge = DefaultLongEdge
	}
	if surfaceW >= surfaceH {
		return longEdge, max(1, longEdge*surfaceH/surfaceW)
	}
	return max(1, longEdge*surfaceW/surfaceH), longEdge
}

// Mask is a row-major 8-bit coverage buffer
type Mask struct {
	img *image.Alpha
}

// NewMask allocates a cleared mask of the given size
func NewMask(w, h int) *Mask {
	m := &Mask{}
	m.Resize(w, h)
	return m
}

// Width returns the mask width in pixels
func (m *Mask) Width() int { return m.img.Rect.Dx() }

// Height returns the mask height in pixels
func (m *Mask) Height() int { return m.img.Rect.Dy() }

// Alpha returns coverage at (x, y) with coordinates clamped into bounds
func (m *Mask) Alpha(x, y int) uint8 {
	w, h := m.Width(), m.Height()
	x = min(max(x, 0), w-1)
	y = min(max(y, 0), h-1)
	return m.img.Pix[y*m.img.Stride+x]
}

// Clear zeroes all coverage
func (m *Mask) Clear() {
	clear(m.img.Pix)
}

// Resize reallocates the mask, discarding coverage
// Dimensions below one are raised to one
func (m *Mask) Resize(w, h int) {
	w, h = max(w, 1), max(h, 1)
	if m.img != nil && m.Width() == w && m.Height() == h {
		m.Clear()
		return
	}
	m.img = image.NewAlpha(image.Rect(0, 0, w, h))
}

// Image exposes the backing buffer for drawing and debugging
func (m *Mask) Image() *image.Alpha { return m.img }

// Coverage counts pixels with alpha above threshold
func (m *Mask) Coverage(threshold uint8) int {
	n := 0
	for _, a := range m.img.Pix {
		if a > threshold {
			n++
		}
	}
	return n
}
