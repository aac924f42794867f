package grid

import "math"

// DefaultCharset is the glyph set used when none is configured
const DefaultCharset = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

// AlphaSampler is a read-only view of the guide mask
type AlphaSampler interface {
	Width() int
	Height() int
	Alpha(x, y int) uint8
}

// Cell is the state of one grid position
type Cell struct {
	Glyph    rune
	Color    Color // displayed
	Target   Color // being approached
	Progress float64
	Inside   bool
}

// Params tunes the per-frame pass
type Params struct {
	GlitchProbability float64
	TransitionStep    float64 // 1 snaps colors to their target
	InsideThreshold   uint8
}

// DefaultParams returns the standard tuning
func DefaultParams() Params {
	return Params{
		GlitchProbability: 0.05,
		TransitionStep:    0.1,
		InsideThreshold:   100,
	}
}

// Stats counts the changes made by one Step
type Stats struct {
	Flips   int // cells that crossed the silhouette edge
	Glitch  int // cells that took a new glyph
	Settled int // cells with progress at 1 after the step
}

// Grid is a row-major arena of cells
type Grid struct {
	cols, rows int
	cells      []Cell

	params  Params
	palette Palette
	charset []rune
	rng     Rand
}

// New creates an empty grid; call Resize before stepping
func New(params Params, palette Palette, charset []rune, rng Rand) *Grid {
	if len(charset) == 0 {
		charset = []rune(DefaultCharset)
	}
	if palette.Validate() != nil {
		palette = DefaultPalette()
	}
	return &Grid{params: params, palette: palette, charset: charset, rng: rng}
}

// Dimensions returns columns and rows
func (g *Grid) Dimensions() (cols, rows int) { return g.cols, g.rows }

// Len returns the cell count
func (g *Grid) Len() int { return len(g.cells) }

// Cell returns the cell at (col, row); the pointer is valid until the next Resize
func (g *Grid) Cell(col, row int) *Cell { return &g.cells[row*g.cols+col] }

// Params returns the active tuning
func (g *Grid) Params() Params { return g.params }

// Palette returns the active palette
func (g *Grid) Palette() Palette { return g.palette }

// Resize rebuilds the arena to cover a surface of w x h with cells of cw x ch
// Every cell restarts with a random glyph and a settled outside color
func (g *Grid) Resize(w, h int, cw, ch float64) {
	cols, rows := 0, 0
	if w > 0 && h > 0 && cw > 0 && ch > 0 {
		cols = int(math.Ceil(float64(w) / cw))
		rows = int(math.Ceil(float64(h) / ch))
	}
	g.cols, g.rows = cols, rows

	n := cols * rows
	if cap(g.cells) >= n {
		g.cells = g.cells[:n]
	} else {
		g.cells = make([]Cell, n)
	}
	for i := range g.cells {
		c := g.randomColor(false)
		g.cells[i] = Cell{
			Glyph:    g.randomGlyph(),
			Color:    c,
			Target:   c,
			Progress: 1,
		}
	}
}

// SetPalette swaps colors; cells pick them up on their next retarget
func (g *Grid) SetPalette(p Palette) error {
	if err := p.Validate(); err != nil {
		return err
	}
	g.palette = p
	return nil
}

// SetCharset swaps glyphs; an empty set is ignored
func (g *Grid) SetCharset(charset []rune) {
	if len(charset) == 0 {
		return
	}
	g.charset = charset
}

// Step runs classify, glitch and transition on every cell
func (g *Grid) Step(mask AlphaSampler, glitch bool) Stats {
	var st Stats
	if len(g.cells) == 0 {
		return st
	}
	mw, mh := mask.Width(), mask.Height()
	fc, fr := float64(g.cols), float64(g.rows)

	for row := 0; row < g.rows; row++ {
		my := int(float64(row) / fr * float64(mh))
		base := row * g.cols
		for col := 0; col < g.cols; col++ {
			c := &g.cells[base+col]
			mx := int(float64(col) / fc * float64(mw))

			inside := mask.Alpha(mx, my) > g.params.InsideThreshold
			if inside != c.Inside {
				c.Inside = inside
				c.Target = g.randomColor(inside)
				c.Progress = 0
				st.Flips++
			}

			if glitch && g.rng.Float64() < g.params.GlitchProbability {
				c.Glyph = g.randomGlyph()
				st.Glitch++
				if c.Progress >= 1 {
					c.Target = g.randomColor(c.Inside)
					c.Progress = 0
				}
			}

			if c.Progress < 1 {
				c.Progress = min(c.Progress+g.params.TransitionStep, 1)
				c.Color = c.Color.Lerp(c.Target, c.Progress)
			}
			if c.Progress >= 1 {
				st.Settled++
			}
		}
	}
	return st
}

// Emit calls fn for every cell in row-major order
func (g *Grid) Emit(fn func(col, row int, c *Cell)) {
	for row := 0; row < g.rows; row++ {
		base := row * g.cols
		for col := 0; col < g.cols; col++ {
			fn(col, row, &g.cells[base+col])
		}
	}
}

func (g *Grid) randomGlyph() rune {
	return g.charset[g.rng.IntN(len(g.charset))]
}

func (g *Grid) randomColor(inside bool) Color {
	set := g.palette.set(inside)
	return set[g.rng.IntN(len(set))]
}
