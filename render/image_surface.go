package render

import (
	"image"
	"image/draw"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

// ImageSurface draws cells into an in-memory RGBA image
type ImageSurface struct {
	img        *image.RGBA
	cellW      float64
	cellH      float64
	background image.Image
	face       font.Face
	ascent     int
	descent    int
	advance    int
	pen        *image.Uniform
}

// NewImageSurface creates a w x h pixel surface with cells sized for glyphSize
func NewImageSurface(w, h int, glyphSize float64, background RGB) *ImageSurface {
	s := &ImageSurface{
		background: image.NewUniform(background),
		face:       basicfont.Face7x13,
		pen:        image.NewUniform(RGBBlack),
	}
	s.cellW, s.cellH = CellMetrics(glyphSize)

	m := s.face.Metrics()
	s.ascent = m.Ascent.Ceil()
	s.descent = m.Descent.Ceil()
	if adv, ok := s.face.GlyphAdvance('M'); ok {
		s.advance = adv.Ceil()
	}
	s.Resize(w, h)
	return s
}

// Resize reallocates the image
func (s *ImageSurface) Resize(w, h int) {
	s.img = image.NewRGBA(image.Rect(0, 0, max(w, 0), max(h, 0)))
}

// Image returns the frame buffer
func (s *ImageSurface) Image() *image.RGBA { return s.img }

// Size returns the image size in pixels
func (s *ImageSurface) Size() (int, int) {
	b := s.img.Bounds()
	return b.Dx(), b.Dy()
}

// CellSize returns the pixel pitch of one cell
func (s *ImageSurface) CellSize() (float64, float64) { return s.cellW, s.cellH }

// Clear fills the image with the background
func (s *ImageSurface) Clear() {
	draw.Draw(s.img, s.img.Bounds(), s.background, image.Point{}, draw.Src)
}

// DrawGlyph renders ch centered in the cell whose top-left corner is (x, y)
func (s *ImageSurface) DrawGlyph(ch rune, x, y int, c RGB) {
	s.pen.C = c
	dotX := x + (int(s.cellW)-s.advance)/2
	dotY := y + (int(s.cellH)+s.ascent-s.descent)/2
	d := font.Drawer{
		Dst:  s.img,
		Src:  s.pen,
		Face: s.face,
		Dot:  fixed.P(dotX, dotY),
	}
	d.DrawString(string(ch))
}

// Show is a no-op; the image is always current
func (s *ImageSurface) Show() error { return nil }
