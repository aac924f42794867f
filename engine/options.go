package engine

import (
	"log/slog"
	"time"

	"github.com/lixenwraith/glitchgrid/constant"
	"github.com/lixenwraith/glitchgrid/grid"
)

// Options configures a Driver
type Options struct {
	MorphSpeed     float64       // progress increment per frame
	GlitchInterval time.Duration // period of the glyph glitch timer
	CellWidth      float64       // surface units per column
	CellHeight     float64       // surface units per row
	MaskLongEdge   int
	ResizeDebounce time.Duration

	Grid    grid.Params
	Palette grid.Palette
	Charset []rune

	Rand   grid.Rand    // nil seeds a PCG source from Seed
	Seed   uint64
	Logger *slog.Logger
}

// DefaultOptions returns terminal-cell defaults
func DefaultOptions() Options {
	return Options{
		MorphSpeed:     constant.MorphSpeed,
		GlitchInterval: constant.GlitchInterval,
		CellWidth:      1,
		CellHeight:     1,
		MaskLongEdge:   constant.MaskLongEdge,
		ResizeDebounce: constant.ResizeDebounce,
		Grid:           grid.DefaultParams(),
		Palette:        grid.DefaultPalette(),
		Charset:        []rune(grid.DefaultCharset),
	}
}

// normalize fills zero fields with defaults
func (o Options) normalize() Options {
	def := DefaultOptions()
	if o.MorphSpeed <= 0 {
		o.MorphSpeed = def.MorphSpeed
	}
	if o.GlitchInterval <= 0 {
		o.GlitchInterval = def.GlitchInterval
	}
	if o.CellWidth <= 0 {
		o.CellWidth = def.CellWidth
	}
	if o.CellHeight <= 0 {
		o.CellHeight = def.CellHeight
	}
	if o.MaskLongEdge <= 0 {
		o.MaskLongEdge = def.MaskLongEdge
	}
	if o.ResizeDebounce < 0 {
		o.ResizeDebounce = 0
	}
	if o.Grid == (grid.Params{}) {
		o.Grid = def.Grid
	}
	if o.Palette.Validate() != nil {
		o.Palette = def.Palette
	}
	if len(o.Charset) == 0 {
		o.Charset = def.Charset
	}
	if o.Rand == nil {
		o.Rand = grid.NewRand(o.Seed)
	}
	o.Logger = loggerOrNop(o.Logger)
	return o
}
