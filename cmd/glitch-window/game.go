package main

import (
	"errors"
	"log/slog"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/lixenwraith/glitchgrid/engine"
)

var errQuit = errors.New("quit")

// Game adapts the driver to ebiten's update/draw callbacks
type Game struct {
	driver  *engine.Driver
	clock   *engine.PausableClock
	surface *windowSurface
	logger  *slog.Logger

	width, height int
}

func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) || inpututil.IsKeyJustPressed(ebiten.KeyQ) {
		return errQuit
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		if g.clock.IsPaused() {
			g.clock.Resume()
		} else {
			g.clock.Pause()
		}
	}
	if g.clock.IsPaused() {
		return nil
	}
	g.driver.Update(g.clock.Now())
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.surface.target = screen
	if err := g.driver.Draw(g.surface); err != nil {
		g.logger.Warn("draw failed", "error", err)
	}
}

// Layout forwards window size changes to the driver, which debounces them
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	if outsideWidth != g.width || outsideHeight != g.height {
		g.width, g.height = outsideWidth, outsideHeight
		g.driver.OnResize(outsideWidth, outsideHeight)
	}
	return outsideWidth, outsideHeight
}
