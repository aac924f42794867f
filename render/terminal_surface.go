package render

import (
	"github.com/gdamore/tcell/v2"
)

// TerminalSurface draws cells onto a tcell screen, one glyph per terminal cell
type TerminalSurface struct {
	screen     tcell.Screen
	background RGB
	base       tcell.Style
}

// NewTerminalSurface wraps an initialized screen
func NewTerminalSurface(screen tcell.Screen, background RGB) *TerminalSurface {
	return &TerminalSurface{
		screen:     screen,
		background: background,
		base:       tcell.StyleDefault.Background(toTcell(background)),
	}
}

// Screen returns the wrapped screen
func (s *TerminalSurface) Screen() tcell.Screen { return s.screen }

// Size returns the screen size in cells
func (s *TerminalSurface) Size() (int, int) { return s.screen.Size() }

// CellSize is one unit in both directions
func (s *TerminalSurface) CellSize() (float64, float64) { return 1, 1 }

// Clear fills the screen with the background color
func (s *TerminalSurface) Clear() {
	s.screen.Fill(' ', s.base)
}

// DrawGlyph sets the cell at (x, y); out of range coordinates are ignored by tcell
func (s *TerminalSurface) DrawGlyph(ch rune, x, y int, c RGB) {
	s.screen.SetContent(x, y, ch, nil, s.base.Foreground(toTcell(c)))
}

// Show flushes pending cells to the terminal
func (s *TerminalSurface) Show() error {
	s.screen.Show()
	return nil
}

func toTcell(c RGB) tcell.Color {
	return tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
}
