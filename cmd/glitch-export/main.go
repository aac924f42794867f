package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/lixenwraith/glitchgrid/config"
	"github.com/lixenwraith/glitchgrid/engine"
	"github.com/lixenwraith/glitchgrid/export"
	"github.com/lixenwraith/glitchgrid/outline"
	"github.com/lixenwraith/glitchgrid/render"
)

var (
	configFlag = flag.String("config", "", "JSON config file")
	widthFlag  = flag.Int("width", 640, "Image width in pixels")
	heightFlag = flag.Int("height", 360, "Image height in pixels")
	framesFlag = flag.Int("frames", 600, "Frames to simulate")
	everyFlag  = flag.Int("every", 30, "Write every Nth frame")
	outFlag    = flag.String("out", "frames/frame-%04d.webp", "Output path pattern; extension picks webp, tga or png")
	seedFlag   = flag.Uint64("seed", 1, "Random seed")
	fpsFlag    = flag.Int("fps", 0, "Simulated frames per second")
	verbose    = flag.Bool("v", false, "Log progress to stderr")
)

func main() {
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: glitch-export [flags] [outline.svg ...]\n")
		flag.PrintDefaults()
	}
	flag.Parse()

	level := slog.LevelWarn
	if *verbose {
		level = slog.LevelInfo
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

	if err := run(logger); err != nil {
		fmt.Fprintf(os.Stderr, "glitch-export: %v\n", err)
		os.Exit(1)
	}
}

func run(logger *slog.Logger) error {
	if *widthFlag <= 0 || *heightFlag <= 0 {
		return fmt.Errorf("invalid size %dx%d", *widthFlag, *heightFlag)
	}
	if *everyFlag <= 0 {
		*everyFlag = 1
	}
	if _, err := export.FormatFromPath(fmt.Sprintf(*outFlag, 0)); err != nil {
		return err
	}

	cfg := config.Default()
	if *configFlag != "" {
		loaded, err := config.Load(*configFlag)
		if err != nil {
			return err
		}
		cfg = loaded
	}
	cfg.Resolve(config.Flags{Seed: *seedFlag, FPS: *fpsFlag, Outlines: flag.Args()})
	if err := cfg.Validate(); err != nil {
		return err
	}

	palette, err := cfg.Palette()
	if err != nil {
		return err
	}
	background := render.FromColor(palette.Outside[0])
	surface := render.NewImageSurface(*widthFlag, *heightFlag, cfg.GlyphSize, background)

	cellW, cellH := surface.CellSize()
	opts, err := cfg.EngineOptions(cellW, cellH, false)
	if err != nil {
		return err
	}
	opts.Logger = logger
	clock := engine.NewMockTimeProvider(time.Unix(0, 0))

	driver := engine.NewDriver(opts)
	driver.OnResize(surface.Size())

	if len(cfg.Outlines) > 0 {
		sources, err := outline.LoadSVGFiles(cfg.Outlines)
		if err != nil {
			logger.Warn("outline load failed", "error", err)
		}
		if err := driver.SetOutlineSources(sources); err != nil {
			logger.Warn("outlines not applied", "error", err)
		}
	}

	step := cfg.FrameInterval()
	written := 0
	for frame := 0; frame < *framesFlag; frame++ {
		clock.Advance(step)
		if _, err := driver.Frame(clock.Now(), surface); err != nil {
			return err
		}
		if frame%*everyFlag != 0 {
			continue
		}
		path := fmt.Sprintf(*outFlag, frame)
		if err := export.WriteFile(path, surface.Image()); err != nil {
			return err
		}
		written++
		logger.Info("frame written", "frame", frame, "path", path, "morph", driver.Morph())
	}
	logger.Info("export done", "frames", *framesFlag, "written", written)
	return nil
}
