package constant

import "time"

// Audio hardware settings
const (
	AudioSampleRate     = 44100
	AudioBufferDuration = 50 * time.Millisecond
)

// Static cue
const (
	StaticDuration  = 60 * time.Millisecond
	StaticDecay     = 40.0 // Exponential envelope rate per second
	StaticMaxVolume = 0.12
	StaticMinGap    = 120 * time.Millisecond // Cues closer than this are dropped
)
