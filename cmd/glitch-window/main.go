package main

import (
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"os"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/lixenwraith/glitchgrid/config"
	"github.com/lixenwraith/glitchgrid/engine"
	"github.com/lixenwraith/glitchgrid/outline"
	"github.com/lixenwraith/glitchgrid/render"
)

var (
	configFlag = flag.String("config", "", "JSON config file")
	charsFlag  = flag.String("chars", "", "Glyph set")
	widthFlag  = flag.Int("width", 960, "Initial window width")
	heightFlag = flag.Int("height", 540, "Initial window height")
	seedFlag   = flag.Uint64("seed", 0, "Random seed (0 = time based)")
	debugFlag  = flag.Bool("debug", false, "Log to stderr")
)

func main() {
	flag.Parse()

	level := slog.LevelWarn
	if *debugFlag {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

	cfg := config.Default()
	if *configFlag != "" {
		loaded, err := config.Load(*configFlag)
		if err != nil {
			fmt.Fprintf(os.Stderr, "%v\n", err)
			os.Exit(1)
		}
		cfg = loaded
	}
	cfg.Resolve(config.Flags{Characters: *charsFlag, Seed: *seedFlag, Outlines: flag.Args(), Debug: *debugFlag})
	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(1)
	}

	game, err := newGame(cfg, logger)
	if err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(1)
	}

	if len(cfg.Outlines) > 0 {
		sources, err := outline.LoadSVGFiles(cfg.Outlines)
		if err != nil {
			logger.Warn("outline load failed", "error", err)
		}
		if err := game.driver.SetOutlineSources(sources); err != nil {
			logger.Warn("outlines not applied", "error", err)
		}
	}

	ebiten.SetWindowTitle("glitch")
	ebiten.SetWindowSize(*widthFlag, *heightFlag)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetTPS(cfg.FPS)

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, errQuit) {
		fmt.Fprintf(os.Stderr, "glitch-window: %v\n", err)
		os.Exit(1)
	}
}

func newGame(cfg config.Config, logger *slog.Logger) (*Game, error) {
	palette, err := cfg.Palette()
	if err != nil {
		return nil, err
	}
	cellW, cellH := render.CellMetrics(cfg.GlyphSize)
	opts, err := cfg.EngineOptions(cellW, cellH, false)
	if err != nil {
		return nil, err
	}
	opts.Logger = logger

	clock := engine.NewPausableClock(nil)
	return &Game{
		driver:  engine.NewDriver(opts),
		clock:   clock,
		surface: newWindowSurface(cellW, cellH, render.FromColor(palette.Outside[0])),
		logger:  logger,
	}, nil
}
