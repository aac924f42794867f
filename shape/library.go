package shape

import (
	"errors"
	"fmt"
	"sync/atomic"
)

var (
	// ErrEmptyLibrary rejects a replace with no polygons
	ErrEmptyLibrary = errors.New("shape: empty polygon set")
	// ErrPointCount rejects polygons that cannot be interpolated index by index
	ErrPointCount = errors.New("shape: polygons differ in point count")
)

// Snapshot is an immutable view of the library contents
// Frames read exactly one snapshot so a concurrent replace is never observed torn
type Snapshot struct {
	polygons   []Polygon
	generation uint64
}

// Len returns the number of keyframes, always at least one
func (s *Snapshot) Len() int { return len(s.polygons) }

// Generation identifies the replace that produced this snapshot
func (s *Snapshot) Generation() uint64 { return s.generation }

// Get returns the keyframe at index modulo Len
func (s *Snapshot) Get(index int) Polygon {
	n := len(s.polygons)
	index %= n
	if index < 0 {
		index += n
	}
	return s.polygons[index]
}

// Lookup returns the keyframe at index without wrapping
func (s *Snapshot) Lookup(index int) (Polygon, bool) {
	if index < 0 || index >= len(s.polygons) {
		return nil, false
	}
	return s.polygons[index], true
}

// Library holds the ordered keyframe set used for morphing
// Replace may be called from any goroutine; readers take Snapshot once per frame
type Library struct {
	current atomic.Pointer[Snapshot]
}

// NewLibrary creates a library with the given polygons, falling back to the
// built-in defaults when the set is empty or invalid
func NewLibrary(polygons []Polygon) *Library {
	l := &Library{}
	if err := l.Replace(polygons); err != nil {
		l.current.Store(&Snapshot{polygons: Defaults(PointCount), generation: 1})
	}
	return l
}

// Snapshot returns the active contents
func (l *Library) Snapshot() *Snapshot {
	return l.current.Load()
}

// Replace atomically swaps in a new keyframe set and bumps the generation
// On error the previous contents stay active
func (l *Library) Replace(polygons []Polygon) error {
	if len(polygons) == 0 {
		return ErrEmptyLibrary
	}
	n := len(polygons[0])
	if n == 0 {
		return fmt.Errorf("%w: keyframe 0 has no points", ErrPointCount)
	}
	owned := make([]Polygon, len(polygons))
	for i, p := range polygons {
		if len(p) != n {
			return fmt.Errorf("%w: keyframe %d has %d points, want %d", ErrPointCount, i, len(p), n)
		}
		owned[i] = p.Clone()
	}

	for {
		old := l.current.Load()
		var gen uint64 = 1
		if old != nil {
			gen = old.generation + 1
		}
		if l.current.CompareAndSwap(old, &Snapshot{polygons: owned, generation: gen}) {
			return nil
		}
	}
}
