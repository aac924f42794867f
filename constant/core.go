package constant

import "time"

// Animation timing
const (
	MorphSpeed     = 0.002                 // Progress per frame, one keyframe pair every 500 frames
	GlitchInterval = 50 * time.Millisecond // Glyph glitch timer period
	FrameInterval  = time.Second / 60      // Terminal host tick
	ResizeDebounce = 100 * time.Millisecond
)

// Guide mask
const (
	MaskLongEdge = 200 // Mask pixels along the longer surface side
)

// Pixel surfaces
const (
	GlyphSize = 16.0 // Cell height in pixels
)

// Preset cycling in the demo host
const (
	PresetInterval = 5 * time.Second
)
