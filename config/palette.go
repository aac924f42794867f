package config

import (
	"fmt"
	"strings"

	"github.com/lucasb-eyer/go-colorful"

	"github.com/lixenwraith/glitchgrid/grid"
)

// ParseColor parses #rgb or #rrggbb, with or without the leading '#'
func ParseColor(s string) (grid.Color, error) {
	s = strings.TrimSpace(s)
	if !strings.HasPrefix(s, "#") {
		s = "#" + s
	}
	if len(s) != 4 && len(s) != 7 {
		return grid.Color{}, fmt.Errorf("config: color %q: want #rgb or #rrggbb", s)
	}
	c, err := colorful.Hex(s)
	if err != nil {
		return grid.Color{}, fmt.Errorf("config: color %q: %w", s, err)
	}
	r, g, b := c.RGB255()
	return grid.Color{R: float64(r), G: float64(g), B: float64(b)}, nil
}

// ParsePalette parses every color, failing on the first invalid one
func ParsePalette(hexes []string) ([]grid.Color, error) {
	out := make([]grid.Color, 0, len(hexes))
	for _, h := range hexes {
		c, err := ParseColor(h)
		if err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	return out, nil
}

// ParsePaletteLenient maps invalid colors to black instead of failing
func ParsePaletteLenient(hexes []string) []grid.Color {
	out := make([]grid.Color, len(hexes))
	for i, h := range hexes {
		if c, err := ParseColor(h); err == nil {
			out[i] = c
		}
	}
	return out
}
