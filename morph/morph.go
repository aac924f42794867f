// Package morph advances the keyframe interpolation that drives the guide shape
package morph

import "github.com/lixenwraith/glitchgrid/shape"

// State is the position of the morph between two keyframes
type State struct {
	Current  int
	Next     int
	Progress float64
}

// EaseInOutCubic maps linear progress in [0,1] to eased progress
func EaseInOutCubic(t float64) float64 {
	if t < 0.5 {
		return 4 * t * t * t
	}
	u := -2*t + 2
	return 1 - u*u*u/2
}

// Controller owns the morph state
// Not safe for concurrent use; the frame driver is its only writer
type Controller struct {
	speed      float64
	state      State
	generation uint64
}

// NewController creates a controller positioned at the first keyframe pair
func NewController(speed float64) *Controller {
	return &Controller{
		speed: speed,
		state: State{Current: 0, Next: 1},
	}
}

// SetSpeed changes the per-frame progress increment
func (c *Controller) SetSpeed(speed float64) { c.speed = speed }

// Speed returns the per-frame progress increment
func (c *Controller) Speed() float64 { return c.speed }

// State returns a copy of the current morph state
func (c *Controller) State() State { return c.state }

// Sync restarts the morph when the library was replaced since the last call
// Returns true if a reset happened
func (c *Controller) Sync(snap *shape.Snapshot) bool {
	if snap.Generation() == c.generation {
		return false
	}
	c.generation = snap.Generation()
	c.state = State{Current: 0, Next: 1 % snap.Len(), Progress: 0}
	return true
}

// Advance steps progress by the configured speed and rotates keyframes on completion
// Returns true when a keyframe boundary was crossed
func (c *Controller) Advance(snap *shape.Snapshot) bool {
	c.state.Progress += c.speed
	if c.state.Progress < 1 {
		return false
	}
	n := snap.Len()
	c.state.Progress = 0
	c.state.Current = (c.state.Current + 1) % n
	c.state.Next = (c.state.Current + 1) % n
	return true
}

// Interpolate writes the eased blend of the current keyframe pair into dst
// On a missing keyframe or mismatched point counts dst is returned untouched with ok=false
func (c *Controller) Interpolate(snap *shape.Snapshot, dst shape.Polygon) (shape.Polygon, bool) {
	return Interpolate(snap, c.state, dst)
}

// Interpolate blends the keyframes named by st into dst
func Interpolate(snap *shape.Snapshot, st State, dst shape.Polygon) (shape.Polygon, bool) {
	a, ok := snap.Lookup(st.Current)
	if !ok {
		return dst, false
	}
	b, ok := snap.Lookup(st.Next)
	if !ok || len(a) != len(b) {
		return dst, false
	}
	return Lerp(a, b, EaseInOutCubic(st.Progress), dst), true
}

// Lerp writes the index-aligned blend a + (b-a)*t into dst, growing it only when too small
func Lerp(a, b shape.Polygon, t float64, dst shape.Polygon) shape.Polygon {
	n := min(len(a), len(b))
	if cap(dst) < n {
		dst = make(shape.Polygon, n)
	}
	dst = dst[:n]
	for i := 0; i < n; i++ {
		dst[i] = shape.Point{
			X: a[i].X + (b[i].X-a[i].X)*t,
			Y: a[i].Y + (b[i].Y-a[i].Y)*t,
		}
	}
	return dst
}
