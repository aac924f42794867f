package audio

import (
	"math"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"

	"github.com/lixenwraith/glitchgrid/constant"
)

// StaticGenerator produces decaying white noise from a deterministic LCG
type StaticGenerator struct {
	rate  beep.SampleRate
	state uint32
	pos   int
	decay float64
}

// NewStaticGenerator creates a noise burst; equal seeds give equal samples
func NewStaticGenerator(rate beep.SampleRate, seed uint32) *StaticGenerator {
	return &StaticGenerator{
		rate:  rate,
		state: seed,
		decay: constant.StaticDecay,
	}
}

func (g *StaticGenerator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		g.state = g.state*1664525 + 1013904223
		noise := float64(g.state>>8)/float64(1<<23) - 1 // [-1, 1)

		t := float64(g.pos) / float64(g.rate)
		val := noise * math.Exp(-g.decay*t)

		samples[i][0] = val
		samples[i][1] = val
		g.pos++
	}
	return len(samples), true
}

func (g *StaticGenerator) Err() error { return nil }

// newVolume wraps s with linear gain vol
// math.Log2(0) is -Inf, so zero volume is made silent
func newVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Volume: 0, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol), Silent: false}
}
