package main

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"

	"github.com/lixenwraith/glitchgrid/render"
)

// windowSurface draws onto the ebiten screen image of the current Draw call
type windowSurface struct {
	target       *ebiten.Image
	cellW, cellH float64
	background   render.RGB
	face         font.Face
	dx, dy       int // glyph origin offset inside a cell
}

func newWindowSurface(cellW, cellH float64, background render.RGB) *windowSurface {
	face := basicfont.Face7x13
	m := face.Metrics()
	adv, _ := face.GlyphAdvance('M')
	return &windowSurface{
		cellW:      cellW,
		cellH:      cellH,
		background: background,
		face:       face,
		dx:         (int(cellW) - adv.Ceil()) / 2,
		dy:         (int(cellH) + m.Ascent.Ceil() - m.Descent.Ceil()) / 2,
	}
}

func (s *windowSurface) Size() (int, int) {
	if s.target == nil {
		return 0, 0
	}
	b := s.target.Bounds()
	return b.Dx(), b.Dy()
}

func (s *windowSurface) CellSize() (float64, float64) { return s.cellW, s.cellH }

func (s *windowSurface) Clear() {
	if s.target != nil {
		s.target.Fill(s.background)
	}
}

func (s *windowSurface) DrawGlyph(ch rune, x, y int, c render.RGB) {
	if s.target == nil {
		return
	}
	text.Draw(s.target, string(ch), s.face, x+s.dx, y+s.dy, c)
}

// Show is a no-op; ebiten presents the screen after Draw returns
func (s *windowSurface) Show() error { return nil }
