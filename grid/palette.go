// Package grid holds per-cell glyph and color state and advances it each frame
// under the guide mask
package grid

import (
	"errors"
	"fmt"
)

// ErrEmptyPalette rejects palettes with no inside or no outside colors
var ErrEmptyPalette = errors.New("grid: empty palette")

// Color is an RGB triple with channels in [0,255], kept fractional for blending
type Color struct {
	R, G, B float64
}

// Lerp moves c toward target by fraction t
func (c Color) Lerp(target Color, t float64) Color {
	return Color{
		R: c.R + (target.R-c.R)*t,
		G: c.G + (target.G-c.G)*t,
		B: c.B + (target.B-c.B)*t,
	}
}

// RGB255 returns the channels rounded to bytes
func (c Color) RGB255() (r, g, b uint8) {
	return channel(c.R), channel(c.G), channel(c.B)
}

func channel(v float64) uint8 {
	if v <= 0 {
		return 0
	}
	if v >= 255 {
		return 255
	}
	return uint8(v + 0.5)
}

// Palette splits colors by region
type Palette struct {
	Inside  []Color
	Outside []Color
}

// DefaultInside is the bright set drawn over the silhouette
var DefaultInside = []Color{
	{0x6a, 0xfb, 0xcb},
	{0x00, 0xb8, 0xff},
	{0xd6, 0x00, 0xff},
}

// DefaultOutside is the dark set drawn around the silhouette
var DefaultOutside = []Color{
	{0x1a, 0x1a, 0x1a},
	{0x0d, 0x0d, 0x0d},
	{0x26, 0x26, 0x26},
}

// DefaultPalette returns a copy of the built-in palette
func DefaultPalette() Palette {
	return Palette{
		Inside:  append([]Color(nil), DefaultInside...),
		Outside: append([]Color(nil), DefaultOutside...),
	}
}

// Validate reports whether both color sets are non-empty
func (p Palette) Validate() error {
	if len(p.Inside) == 0 {
		return fmt.Errorf("%w: no inside colors", ErrEmptyPalette)
	}
	if len(p.Outside) == 0 {
		return fmt.Errorf("%w: no outside colors", ErrEmptyPalette)
	}
	return nil
}

// set returns the colors for a region
func (p Palette) set(inside bool) []Color {
	if inside {
		return p.Inside
	}
	return p.Outside
}
