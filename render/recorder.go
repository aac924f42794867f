package render

// Glyph is one recorded draw call
type Glyph struct {
	Ch    rune
	X, Y  int
	Color RGB
}

// Recorder is a headless surface that keeps the draw calls of the last frame
type Recorder struct {
	W, H         int
	CellW, CellH float64
	Glyphs       []Glyph
	Clears       int
	Shows        int
	ShowErr      error
}

// NewRecorder creates a recorder of the given size and cell metrics
func NewRecorder(w, h int, cellW, cellH float64) *Recorder {
	return &Recorder{W: w, H: h, CellW: cellW, CellH: cellH}
}

// Size returns the configured size
func (r *Recorder) Size() (int, int) { return r.W, r.H }

// CellSize returns the configured cell metrics
func (r *Recorder) CellSize() (float64, float64) { return r.CellW, r.CellH }

// Clear drops glyphs recorded since the previous clear
func (r *Recorder) Clear() {
	r.Glyphs = r.Glyphs[:0]
	r.Clears++
}

// DrawGlyph records the call
func (r *Recorder) DrawGlyph(ch rune, x, y int, c RGB) {
	r.Glyphs = append(r.Glyphs, Glyph{Ch: ch, X: x, Y: y, Color: c})
}

// Show counts presents and returns ShowErr
func (r *Recorder) Show() error {
	r.Shows++
	return r.ShowErr
}

// At returns the last glyph drawn at (x, y)
func (r *Recorder) At(x, y int) (Glyph, bool) {
	for i := len(r.Glyphs) - 1; i >= 0; i-- {
		if g := r.Glyphs[i]; g.X == x && g.Y == y {
			return g, true
		}
	}
	return Glyph{}, false
}
