// Package audio plays an optional static crackle in step with glyph glitches
package audio

import (
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"github.com/lixenwraith/glitchgrid/constant"
)

const (
	sampleRate = beep.SampleRate(constant.AudioSampleRate)
)

// SoundManager owns the speaker and a mixer of short-lived cues
type SoundManager struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	initialized bool
	lastCue     time.Time
	seed        uint32
	now         func() time.Time
}

// NewSoundManager creates a new sound manager
func NewSoundManager() *SoundManager {
	return &SoundManager{
		mixer: &beep.Mixer{},
		seed:  0x2545f491,
		now:   time.Now,
	}
}

// Initialize sets up the audio system
func (sm *SoundManager) Initialize() error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.initialized {
		return nil
	}

	err := speaker.Init(sampleRate, sampleRate.N(constant.AudioBufferDuration))
	if err != nil {
		return err
	}

	speaker.Play(sm.mixer)
	sm.initialized = true
	return nil
}

// Cleanup stops all sounds
func (sm *SoundManager) Cleanup() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}

	// beep has no speaker Close; clearing the mixer silences output
	speaker.Lock()
	sm.mixer.Clear()
	speaker.Unlock()
	sm.initialized = false
}

// PlayStatic adds a noise burst scaled by intensity in [0,1]
// Cues arriving within StaticMinGap of the previous one are dropped
func (sm *SoundManager) PlayStatic(intensity float64) {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized || intensity <= 0 {
		return
	}
	now := sm.now()
	if now.Sub(sm.lastCue) < constant.StaticMinGap {
		return
	}
	sm.lastCue = now

	sm.seed = sm.seed*1664525 + 1013904223
	streamer := beep.Take(sampleRate.N(constant.StaticDuration), NewStaticGenerator(sampleRate, sm.seed))
	streamer = newVolume(streamer, min(intensity, 1)*constant.StaticMaxVolume)

	speaker.Lock()
	sm.mixer.Add(streamer)
	speaker.Unlock()
}
