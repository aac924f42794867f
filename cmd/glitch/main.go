package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"
	"runtime/debug"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/glitchgrid/audio"
	"github.com/lixenwraith/glitchgrid/config"
	"github.com/lixenwraith/glitchgrid/constant"
	"github.com/lixenwraith/glitchgrid/engine"
	"github.com/lixenwraith/glitchgrid/grid"
	"github.com/lixenwraith/glitchgrid/outline"
	"github.com/lixenwraith/glitchgrid/render"
)

var (
	configFlag  = flag.String("config", "", "JSON config file")
	charsFlag   = flag.String("chars", "", "Glyph set")
	morphFlag   = flag.Float64("morph", 0, "Morph progress per frame")
	glitchFlag  = flag.Int("glitch", 0, "Glitch period in milliseconds")
	seedFlag    = flag.Uint64("seed", 0, "Random seed (0 = time based)")
	fpsFlag     = flag.Int("fps", 0, "Frames per second")
	audioFlag   = flag.Bool("audio", false, "Play static on glitch ticks")
	debugFlag   = flag.Bool("debug", false, "Write logs to logs/glitch.log")
	presetsFlag = flag.Bool("presets", false, "Cycle demo color and glyph presets")
	snapFlag    = flag.Bool("snap", false, "Switch cell colors without fading")
)

func main() {
	var screen tcell.Screen

	// Panic Recovery: ensure terminal is reset even if the animation crashes
	defer func() {
		if r := recover(); r != nil {
			if screen != nil {
				screen.Fini()
			}
			fmt.Fprintf(os.Stderr, "\n\x1b[31mGLITCH CRASHED: %v\x1b[0m\n", r)
			fmt.Fprintf(os.Stderr, "Stack Trace:\n%s\n", debug.Stack())
			os.Exit(1)
		}
	}()

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: glitch [flags] [outline.svg ...]\n")
		flag.PrintDefaults()
	}
	flag.Parse()

	cfg, err := loadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(1)
	}

	logFile := setupLogging(cfg.Debug)
	if logFile != nil {
		defer logFile.Close()
	}
	logger := newLogger(logFile)

	screen, err = tcell.NewScreen()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to create screen: %v\n", err)
		os.Exit(1)
	}
	if err := screen.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize terminal: %v\n", err)
		os.Exit(1)
	}
	defer screen.Fini()
	screen.HideCursor()

	opts, err := cfg.EngineOptions(1, 1, true)
	if err != nil {
		screen.Fini()
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(1)
	}
	opts.Logger = logger

	driver := engine.NewDriver(opts)
	driver.OnResize(screen.Size())

	if len(cfg.Outlines) > 0 {
		sources, err := outline.LoadSVGFiles(cfg.Outlines)
		if err != nil {
			logger.Warn("outline load failed", "error", err)
		}
		if err := driver.SetOutlineSources(sources); err != nil {
			logger.Warn("outlines not applied", "error", err)
		}
	}

	if cfg.Audio {
		sm := audio.NewSoundManager()
		if err := sm.Initialize(); err != nil {
			// Non-fatal, animation runs without sound
			logger.Warn("audio initialization failed", "error", err)
		} else {
			defer sm.Cleanup()
			driver.OnGlitch(func(st engine.FrameStats) {
				if n := driver.Grid().Len(); n > 0 {
					sm.PlayStatic(float64(st.Grid.Glitch) / float64(n) * 10)
				}
			})
		}
	}

	surface := render.NewTerminalSurface(screen, render.RGBBlack)
	loop := engine.NewLoop(driver, surface, engine.NewPausableClock(nil), cfg.FrameInterval())
	loop.Start()
	defer loop.Stop()

	run(screen, loop, cfg, logger)
}

func loadConfig() (config.Config, error) {
	cfg := config.Default()
	if *configFlag != "" {
		loaded, err := config.Load(*configFlag)
		if err != nil {
			return config.Config{}, err
		}
		cfg = loaded
	}
	cfg.Resolve(config.Flags{
		Characters: *charsFlag,
		MorphSpeed: *morphFlag,
		GlitchMS:   *glitchFlag,
		Seed:       *seedFlag,
		FPS:        *fpsFlag,
		Outlines:   flag.Args(),
		Audio:      *audioFlag,
		Debug:      *debugFlag,
		Snap:       *snapFlag,
	})
	if err := cfg.Validate(); err != nil {
		return config.Config{}, err
	}
	return cfg, nil
}

// run dispatches terminal events until the user quits
func run(screen tcell.Screen, loop *engine.Loop, cfg config.Config, logger *slog.Logger) {
	eventChan := make(chan tcell.Event, 100)
	go func() {
		for {
			ev := screen.PollEvent()
			if ev == nil {
				return
			}
			eventChan <- ev
		}
	}()

	var presetTick <-chan time.Time
	if *presetsFlag {
		ticker := time.NewTicker(constant.PresetInterval)
		defer ticker.Stop()
		presetTick = ticker.C
	}

	outside := config.ParsePaletteLenient(cfg.Outside)
	preset := 0
	nextPreset := func() {
		preset++
		applyPreset(loop, preset, outside, logger)
	}

	for {
		select {
		case ev := <-eventChan:
			switch ev := ev.(type) {
			case *tcell.EventResize:
				screen.Sync()
				w, h := ev.Size()
				loop.Resize(w, h)

			case *tcell.EventKey:
				switch {
				case ev.Key() == tcell.KeyEscape, ev.Key() == tcell.KeyCtrlC:
					return
				case ev.Key() == tcell.KeyRune && ev.Rune() == 'q':
					return
				case ev.Key() == tcell.KeyRune && ev.Rune() == ' ':
					if loop.Running() {
						loop.Stop()
					} else {
						loop.Start()
					}
				case ev.Key() == tcell.KeyRune && ev.Rune() == 'p':
					nextPreset()
				}
			}

		case <-presetTick:
			nextPreset()
		}
	}
}

// applyPreset queues preset i onto the loop
func applyPreset(loop *engine.Loop, i int, outside []grid.Color, logger *slog.Logger) {
	palette, err := config.PresetPalette(i, outside)
	if err != nil {
		logger.Warn("preset palette invalid", "index", i, "error", err)
		return
	}
	chars := config.PresetCharset(i, true)
	name := config.Presets[i%len(config.Presets)].Name

	queued := loop.Post(func(d *engine.Driver) {
		if err := d.SetPalette(palette); err != nil {
			logger.Warn("preset not applied", "preset", name, "error", err)
			return
		}
		d.SetCharset(string(chars))
		logger.Info("preset applied", "preset", name, "glyphs", len(chars))
	})
	if !queued {
		logger.Warn("preset dropped, command queue full", "preset", name)
	}
}
