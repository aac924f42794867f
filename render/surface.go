// Package render draws grid cells onto output surfaces
//
// A Surface is passive: it exposes its size and cell metrics and accepts glyph
// draws. The frame driver decides what to draw and when.
package render

// Surface is the drawing target of a frame
// Coordinates passed to DrawGlyph are in surface units: cells for a terminal,
// pixels for an image
type Surface interface {
	Size() (w, h int)
	CellSize() (w, h float64)
	Clear()
	DrawGlyph(ch rune, x, y int, c RGB)
	Show() error
}

// GlyphWidthRatio is the cell width relative to glyph height on pixel surfaces
const GlyphWidthRatio = 0.6

// CellMetrics returns cell width and height for a glyph size in pixels
func CellMetrics(glyphSize float64) (w, h float64) {
	if glyphSize <= 0 {
		return 1, 1
	}
	return glyphSize * GlyphWidthRatio, glyphSize
}
