// Package config loads animation settings from JSON and command-line flags
package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/lixenwraith/glitchgrid/constant"
	"github.com/lixenwraith/glitchgrid/engine"
	"github.com/lixenwraith/glitchgrid/grid"
)

// ErrInvalid reports a config value out of range
var ErrInvalid = errors.New("config: invalid value")

// Config holds all animation settings
type Config struct {
	// Appearance
	Inside     []string `json:"inside"`
	Outside    []string `json:"outside"`
	Characters string   `json:"characters"`
	GlyphSize  float64  `json:"glyph_size"`
	Smooth     *bool    `json:"smooth,omitempty"` // nil fades colors

	// Timing
	MorphSpeed       float64 `json:"morph_speed"`
	GlitchMS         int     `json:"glitch_ms"`
	FPS              int     `json:"fps"`
	ResizeDebounceMS int     `json:"resize_debounce_ms"`

	// Shapes
	Outlines     []string `json:"outlines"`
	MaskLongEdge int      `json:"mask_long_edge"`

	// Runtime
	Seed  uint64 `json:"seed"`
	Audio bool   `json:"audio"`
	Debug bool   `json:"debug"`
}

// Flags holds CLI flag values that override config file settings
type Flags struct {
	Characters string
	MorphSpeed float64
	GlitchMS   int
	Seed       uint64
	FPS        int
	Outlines   []string
	Audio      bool
	Debug      bool
	Snap       bool
}

// Default returns the built-in settings
func Default() Config {
	return Config{
		Inside:           []string{"#6afbcb", "#00b8ff", "#d600ff"},
		Outside:          []string{"#1a1a1a", "#0d0d0d", "#262626"},
		Characters:       grid.DefaultCharset,
		GlyphSize:        constant.GlyphSize,
		MorphSpeed:       constant.MorphSpeed,
		GlitchMS:         int(constant.GlitchInterval / time.Millisecond),
		FPS:              int(time.Second / constant.FrameInterval),
		ResizeDebounceMS: int(constant.ResizeDebounce / time.Millisecond),
		MaskLongEdge:     constant.MaskLongEdge,
	}
}

// Load reads a JSON config file on top of the defaults
// Fields not set in the file keep their default values
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("config: read %s: %w", path, err)
	}

	cfg := Default()
	if err := json.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("config: parse %s: %w", path, err)
	}
	return cfg, nil
}

// Resolve applies CLI flags and fills empty fields with defaults
// Flags take priority when non-zero/non-empty
func (c *Config) Resolve(flags Flags) {
	if flags.Characters != "" {
		c.Characters = flags.Characters
	}
	if flags.MorphSpeed > 0 {
		c.MorphSpeed = flags.MorphSpeed
	}
	if flags.GlitchMS > 0 {
		c.GlitchMS = flags.GlitchMS
	}
	if flags.Seed != 0 {
		c.Seed = flags.Seed
	}
	if flags.FPS > 0 {
		c.FPS = flags.FPS
	}
	if len(flags.Outlines) > 0 {
		c.Outlines = flags.Outlines
	}
	if flags.Audio {
		c.Audio = true
	}
	if flags.Debug {
		c.Debug = true
	}
	if flags.Snap {
		smooth := false
		c.Smooth = &smooth
	}

	def := Default()
	if len(c.Inside) == 0 {
		c.Inside = def.Inside
	}
	if len(c.Outside) == 0 {
		c.Outside = def.Outside
	}
	if c.Characters == "" {
		c.Characters = def.Characters
	}
	if c.GlyphSize <= 0 {
		c.GlyphSize = def.GlyphSize
	}
	if c.MorphSpeed <= 0 {
		c.MorphSpeed = def.MorphSpeed
	}
	if c.GlitchMS <= 0 {
		c.GlitchMS = def.GlitchMS
	}
	if c.FPS <= 0 {
		c.FPS = def.FPS
	}
	if c.ResizeDebounceMS < 0 {
		c.ResizeDebounceMS = def.ResizeDebounceMS
	}
	if c.MaskLongEdge <= 0 {
		c.MaskLongEdge = def.MaskLongEdge
	}
	if c.Seed == 0 {
		c.Seed = uint64(time.Now().UnixNano())
	}
}

// Validate checks ranges and parses palettes
func (c Config) Validate() error {
	if c.MorphSpeed <= 0 || c.MorphSpeed > 1 {
		return fmt.Errorf("%w: morph_speed %v not in (0,1]", ErrInvalid, c.MorphSpeed)
	}
	if c.GlitchMS <= 0 {
		return fmt.Errorf("%w: glitch_ms %d", ErrInvalid, c.GlitchMS)
	}
	if c.FPS <= 0 || c.FPS > 240 {
		return fmt.Errorf("%w: fps %d not in [1,240]", ErrInvalid, c.FPS)
	}
	if c.GlyphSize <= 0 {
		return fmt.Errorf("%w: glyph_size %v", ErrInvalid, c.GlyphSize)
	}
	if _, err := c.Palette(); err != nil {
		return err
	}
	return nil
}

// Palette parses the inside and outside color lists
func (c Config) Palette() (grid.Palette, error) {
	inside, err := ParsePalette(c.Inside)
	if err != nil {
		return grid.Palette{}, fmt.Errorf("config: inside: %w", err)
	}
	outside, err := ParsePalette(c.Outside)
	if err != nil {
		return grid.Palette{}, fmt.Errorf("config: outside: %w", err)
	}
	p := grid.Palette{Inside: inside, Outside: outside}
	if err := p.Validate(); err != nil {
		return grid.Palette{}, fmt.Errorf("config: %w", err)
	}
	return p, nil
}

// SmoothColors reports whether cell colors fade toward their target
func (c Config) SmoothColors() bool {
	return c.Smooth == nil || *c.Smooth
}

// FrameInterval returns the host tick period
func (c Config) FrameInterval() time.Duration {
	if c.FPS <= 0 {
		return constant.FrameInterval
	}
	return time.Second / time.Duration(c.FPS)
}

// EngineOptions builds driver options for a surface with the given cell metrics
// Terminal surfaces restrict the charset to single-width glyphs
func (c Config) EngineOptions(cellW, cellH float64, terminal bool) (engine.Options, error) {
	palette, err := c.Palette()
	if err != nil {
		return engine.Options{}, err
	}
	opts := engine.DefaultOptions()
	opts.MorphSpeed = c.MorphSpeed
	opts.GlitchInterval = time.Duration(c.GlitchMS) * time.Millisecond
	opts.CellWidth = cellW
	opts.CellHeight = cellH
	opts.MaskLongEdge = c.MaskLongEdge
	opts.ResizeDebounce = time.Duration(c.ResizeDebounceMS) * time.Millisecond
	opts.Palette = palette
	opts.Charset = Charset(c.Characters, terminal)
	opts.Seed = c.Seed
	if !c.SmoothColors() {
		opts.Grid.TransitionStep = 1
	}
	return opts, nil
}
