// Package engine runs the per-frame pipeline: morph, guide mask, cell pass, draw
package engine

import (
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/lixenwraith/glitchgrid/grid"
	"github.com/lixenwraith/glitchgrid/guide"
	"github.com/lixenwraith/glitchgrid/morph"
	"github.com/lixenwraith/glitchgrid/outline"
	"github.com/lixenwraith/glitchgrid/render"
	"github.com/lixenwraith/glitchgrid/shape"
)

// ErrNoSources rejects an empty outline source list
var ErrNoSources = errors.New("engine: no outline sources")

// FrameStats summarizes one Update
type FrameStats struct {
	Frame    uint64
	Morph    morph.State
	Grid     grid.Stats
	Glitch   bool // glitch timer fired this frame
	Resized  bool // a pending resize was applied
	Fallback bool // keyframe lookup failed, previous shape kept
	Redraw   bool // zero elapsed time, nothing advanced
}

// pendingResize is a coalesced resize waiting for its debounce deadline
type pendingResize struct {
	w, h     int
	deadline time.Time
	set      bool
}

// Driver owns all frame state
// Only SetOutlineSources may be called from another goroutine; everything else
// belongs to the goroutine running frames
type Driver struct {
	opts Options
	log  *slog.Logger

	library *shape.Library
	morph   *morph.Controller
	raster  *guide.Rasterizer
	grid    *grid.Grid
	shape   shape.Polygon // last good interpolated polygon

	surfaceW, surfaceH int
	sized              bool
	pending            pendingResize

	started    bool
	lastUpdate time.Time
	nextGlitch time.Time
	frame      uint64

	onGlitch func(FrameStats)
}

// NewDriver creates a driver using the built-in shapes until sources are set
func NewDriver(opts Options) *Driver {
	opts = opts.normalize()
	d := &Driver{
		opts:    opts,
		log:     opts.Logger,
		library: shape.NewLibrary(nil),
		morph:   morph.NewController(opts.MorphSpeed),
		raster:  guide.NewRasterizer(1, 1),
		grid:    grid.New(opts.Grid, opts.Palette, opts.Charset, opts.Rand),
		shape:   make(shape.Polygon, 0, shape.PointCount),
	}
	return d
}

// Library returns the keyframe library
func (d *Driver) Library() *shape.Library { return d.library }

// Grid returns the cell grid
func (d *Driver) Grid() *grid.Grid { return d.grid }

// Mask returns the guide mask of the last update
func (d *Driver) Mask() *guide.Mask { return d.raster.Mask() }

// Morph returns the current morph state
func (d *Driver) Morph() morph.State { return d.morph.State() }

// Shape returns the polygon the mask was last built from
func (d *Driver) Shape() shape.Polygon { return d.shape }

// SurfaceSize returns the applied surface size
func (d *Driver) SurfaceSize() (w, h int) { return d.surfaceW, d.surfaceH }

// SetMorphSpeed changes the per-frame morph increment
func (d *Driver) SetMorphSpeed(speed float64) {
	if speed > 0 {
		d.morph.SetSpeed(speed)
	}
}

// OnGlitch registers a hook called after each frame where the glitch timer fired
func (d *Driver) OnGlitch(fn func(FrameStats)) { d.onGlitch = fn }

// OnResize records a new surface size
// The first size is applied immediately; later ones wait for the debounce
// window and the latest one wins
// The window is measured on the frame timeline, from the last Update
func (d *Driver) OnResize(w, h int) {
	if !d.sized || d.opts.ResizeDebounce == 0 {
		d.applyResize(w, h)
		d.pending = pendingResize{}
		return
	}
	d.pending = pendingResize{
		w:        w,
		h:        h,
		deadline: d.lastUpdate.Add(d.opts.ResizeDebounce),
		set:      true,
	}
}

func (d *Driver) applyResize(w, h int) {
	d.surfaceW, d.surfaceH = w, h
	d.sized = true

	mw, mh := guide.Size(w, h, d.opts.MaskLongEdge)
	d.raster.Resize(mw, mh)
	d.grid.Resize(w, h, d.opts.CellWidth, d.opts.CellHeight)
	d.raster.Rebuild(d.shape)

	cols, rows := d.grid.Dimensions()
	d.log.Info("resize applied",
		"width", w, "height", h,
		"cols", cols, "rows", rows,
		"mask_width", mw, "mask_height", mh)
}

// Update advances one frame at time now
// A frame at the same instant as the previous one only redraws
func (d *Driver) Update(now time.Time) FrameStats {
	d.frame++
	st := FrameStats{Frame: d.frame}

	if d.started && !now.After(d.lastUpdate) {
		st.Redraw = true
		st.Morph = d.morph.State()
		return st
	}
	d.started = true
	d.lastUpdate = now

	if d.pending.set && !now.Before(d.pending.deadline) {
		d.applyResize(d.pending.w, d.pending.h)
		d.pending = pendingResize{}
		st.Resized = true
	}

	snap := d.library.Snapshot()
	if d.morph.Sync(snap) {
		d.log.Debug("morph reset", "generation", snap.Generation(), "keyframes", snap.Len())
	}
	d.morph.Advance(snap)

	if poly, ok := d.morph.Interpolate(snap, d.shape); ok {
		d.shape = poly
	} else {
		st.Fallback = true
		d.log.Debug("keyframe missing, keeping previous shape", "state", d.morph.State())
	}
	st.Morph = d.morph.State()

	d.raster.Rebuild(d.shape)

	if !now.Before(d.nextGlitch) {
		st.Glitch = true
		d.nextGlitch = now.Add(d.opts.GlitchInterval)
	}
	st.Grid = d.grid.Step(d.raster.Mask(), st.Glitch)

	if st.Glitch && d.onGlitch != nil {
		d.onGlitch(st)
	}
	return st
}

// Draw clears s and draws every cell at its grid position
func (d *Driver) Draw(s render.Surface) error {
	s.Clear()
	cw, ch := d.opts.CellWidth, d.opts.CellHeight
	d.grid.Emit(func(col, row int, c *grid.Cell) {
		s.DrawGlyph(c.Glyph, int(float64(col)*cw), int(float64(row)*ch), render.FromColor(c.Color))
	})
	if err := s.Show(); err != nil {
		return fmt.Errorf("engine: show frame %d: %w", d.frame, err)
	}
	return nil
}

// Frame runs Update then Draw
func (d *Driver) Frame(now time.Time, s render.Surface) (FrameStats, error) {
	st := d.Update(now)
	return st, d.Draw(s)
}

// SetOutlineSources normalizes sources and replaces the keyframe library
// Degenerate sources are skipped; if none survive the built-in shapes are used
// An empty list is rejected and the library is left unchanged
func (d *Driver) SetOutlineSources(sources []*outline.Source) error {
	if len(sources) == 0 {
		return ErrNoSources
	}

	polygons := make([]shape.Polygon, 0, len(sources))
	for _, src := range sources {
		if src == nil {
			continue
		}
		poly, ok := shape.Normalize(src.Curves(), shape.PointCount)
		if !ok {
			d.log.Debug("skipping degenerate outline", "source", src.Name)
			continue
		}
		polygons = append(polygons, poly)
	}

	if len(polygons) == 0 {
		d.log.Warn("no usable outlines, using built-in shapes", "sources", len(sources))
		polygons = shape.Defaults(shape.PointCount)
	}
	if err := d.library.Replace(polygons); err != nil {
		return fmt.Errorf("engine: replace library: %w", err)
	}
	d.log.Info("library replaced",
		"keyframes", len(polygons),
		"generation", d.library.Snapshot().Generation())
	return nil
}

// SetPalette swaps cell colors
func (d *Driver) SetPalette(p grid.Palette) error {
	if err := d.grid.SetPalette(p); err != nil {
		return fmt.Errorf("engine: set palette: %w", err)
	}
	return nil
}

// SetCharset swaps the glyph set; an empty string is ignored
func (d *Driver) SetCharset(chars string) {
	d.grid.SetCharset([]rune(chars))
}
