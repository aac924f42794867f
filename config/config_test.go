package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/lixenwraith/glitchgrid/grid"
)

func TestParseColor(t *testing.T) {
	tests := []struct {
		in      string
		want    grid.Color
		wantErr bool
	}{
		{"#6afbcb", grid.Color{R: 0x6a, G: 0xfb, B: 0xcb}, false},
		{"00b8ff", grid.Color{R: 0x00, G: 0xb8, B: 0xff}, false},
		{"#abc", grid.Color{R: 0xaa, G: 0xbb, B: 0xcc}, false},
		{"fff", grid.Color{R: 255, G: 255, B: 255}, false},
		{" #000000 ", grid.Color{}, false},
		{"#12345", grid.Color{}, true},
		{"#gggggg", grid.Color{}, true},
		{"", grid.Color{}, true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseColor(tt.in)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("Expected error for %q", tt.in)
				}
				return
			}
			if err != nil {
				t.Fatalf("Unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("Expected %v, got %v", tt.want, got)
			}
		})
	}
}

func TestParsePaletteLenient(t *testing.T) {
	got := ParsePaletteLenient([]string{"#ff0000", "nope"})
	if len(got) != 2 {
		t.Fatalf("Expected 2 colors, got %d", len(got))
	}
	if got[0] != (grid.Color{R: 255}) || got[1] != (grid.Color{}) {
		t.Errorf("Expected red then black, got %v", got)
	}
	if _, err := ParsePalette([]string{"#ff0000", "nope"}); err == nil {
		t.Error("Expected strict parse to fail")
	}
}

func TestCharset(t *testing.T) {
	tests := []struct {
		name     string
		in       string
		terminal bool
		want     string
	}{
		{"plain", "ABC", false, "ABC"},
		{"strips control and space", "A\tB C\n", false, "ABC"},
		{"composes", "e\u0301", false, "\u00e9"},
		{"drops wide in terminal", "A漢B", true, "AB"},
		{"keeps wide for pixels", "A漢B", false, "A漢B"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := string(Charset(tt.in, tt.terminal)); got != tt.want {
				t.Errorf("Expected %q, got %q", tt.want, got)
			}
		})
	}
}

func TestLoadOverDefaults(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "glitch.json")
	data := `{"inside": ["#ff0000"], "glitch_ms": 80, "outlines": ["a.svg"]}`
	if err := os.WriteFile(path, []byte(data), 0644); err != nil {
		t.Fatalf("Failed to write config: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.GlitchMS != 80 {
		t.Errorf("Expected glitch_ms 80, got %d", cfg.GlitchMS)
	}
	if len(cfg.Inside) != 1 || cfg.Inside[0] != "#ff0000" {
		t.Errorf("Expected inside override, got %v", cfg.Inside)
	}
	if len(cfg.Outside) != 3 {
		t.Errorf("Expected default outside colors kept, got %v", cfg.Outside)
	}
	if cfg.MorphSpeed != Default().MorphSpeed {
		t.Errorf("Expected default morph speed, got %v", cfg.MorphSpeed)
	}
}

func TestLoadErrors(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "missing.json")); !errors.Is(err, os.ErrNotExist) {
		t.Errorf("Expected not-exist error, got %v", err)
	}

	path := filepath.Join(t.TempDir(), "bad.json")
	if err := os.WriteFile(path, []byte("{"), 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(path); err == nil {
		t.Error("Expected parse error")
	}
}

func TestResolveFlagsOverride(t *testing.T) {
	cfg := Config{}
	cfg.Resolve(Flags{Characters: "01", GlitchMS: 25, Seed: 9, Audio: true})

	if cfg.Characters != "01" || cfg.GlitchMS != 25 || cfg.Seed != 9 || !cfg.Audio {
		t.Errorf("Flags not applied: %+v", cfg)
	}
	if cfg.FPS != Default().FPS || len(cfg.Inside) != 3 {
		t.Errorf("Expected defaults filled: %+v", cfg)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("Resolved config should validate: %v", err)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"morph speed", func(c *Config) { c.MorphSpeed = 2 }},
		{"glitch period", func(c *Config) { c.GlitchMS = 0 }},
		{"fps", func(c *Config) { c.FPS = 1000 }},
		{"bad color", func(c *Config) { c.Inside = []string{"#zz"} }},
		{"empty inside", func(c *Config) { c.Inside = nil }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(&cfg)
			if err := cfg.Validate(); err == nil {
				t.Error("Expected validation error")
			}
		})
	}
	if err := Default().Validate(); err != nil {
		t.Errorf("Default config should validate: %v", err)
	}
}

func TestEngineOptions(t *testing.T) {
	cfg := Default()
	cfg.Characters = "A漢"
	opts, err := cfg.EngineOptions(1, 1, true)
	if err != nil {
		t.Fatalf("EngineOptions failed: %v", err)
	}
	if string(opts.Charset) != "A" {
		t.Errorf("Expected terminal-filtered charset, got %q", string(opts.Charset))
	}
	if opts.GlitchInterval != 50*time.Millisecond {
		t.Errorf("Expected 50ms glitch interval, got %v", opts.GlitchInterval)
	}
	if cfg.FrameInterval() != time.Second/60 {
		t.Errorf("Expected 60fps interval, got %v", cfg.FrameInterval())
	}
}

func TestSmoothColors(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "glitch.json")
	if err := os.WriteFile(path, []byte(`{"smooth": false}`), 0644); err != nil {
		t.Fatalf("Failed to write config: %v", err)
	}
	snapped, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	flagged := Default()
	flagged.Resolve(Flags{Snap: true})

	tests := []struct {
		name string
		cfg  Config
		step float64
	}{
		{"default fades", Default(), grid.DefaultParams().TransitionStep},
		{"file disables", snapped, 1},
		{"flag disables", flagged, 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			opts, err := tt.cfg.EngineOptions(1, 1, true)
			if err != nil {
				t.Fatalf("EngineOptions failed: %v", err)
			}
			if opts.Grid.TransitionStep != tt.step {
				t.Errorf("Expected transition step %v, got %v", tt.step, opts.Grid.TransitionStep)
			}
		})
	}
}

func TestPresets(t *testing.T) {
	if len(Presets) != 18 || len(CharacterSets) != 18 {
		t.Fatalf("Expected 18 presets and charsets, got %d and %d", len(Presets), len(CharacterSets))
	}
	for i, p := range Presets {
		if _, err := ParsePalette(p.Inside); err != nil {
			t.Errorf("Preset %d (%s) has invalid colors: %v", i, p.Name, err)
		}
	}
	pal, err := PresetPalette(-1, grid.DefaultOutside)
	if err != nil {
		t.Fatalf("PresetPalette failed: %v", err)
	}
	if pal.Inside[0] != (grid.Color{R: 0xff, G: 0x52, B: 0x52}) {
		t.Errorf("Expected last preset for index -1, got %v", pal.Inside[0])
	}
	if got := string(PresetCharset(6, true)); got != "10" {
		t.Errorf("Expected binary charset, got %q", got)
	}
}
