package morph

import (
	"math"
	"testing"

	"github.com/lixenwraith/glitchgrid/shape"
)

func TestEaseInOutCubic(t *testing.T) {
	tests := []struct {
		in, want float64
	}{
		{0, 0},
		{0.25, 0.0625},
		{0.5, 0.5},
		{0.75, 0.9375},
		{1, 1},
	}
	for _, tt := range tests {
		if got := EaseInOutCubic(tt.in); math.Abs(got-tt.want) > 1e-9 {
			t.Errorf("EaseInOutCubic(%v): expected %v, got %v", tt.in, tt.want, got)
		}
	}

	prev := 0.0
	for i := 0; i <= 100; i++ {
		v := EaseInOutCubic(float64(i) / 100)
		if v < prev {
			t.Fatalf("Ease not monotone at step %d: %v < %v", i, v, prev)
		}
		prev = v
	}
}

func TestLerpEndpoints(t *testing.T) {
	a := shape.Circle(shape.PointCount)
	b := shape.Square(shape.PointCount)

	got := Lerp(a, b, 0, nil)
	for i := range a {
		if got[i] != a[i] {
			t.Fatalf("Lerp(t=0) point %d: expected %v, got %v", i, a[i], got[i])
		}
	}

	got = Lerp(a, b, 1, got)
	for i := range b {
		if math.Abs(got[i].X-b[i].X) > 1e-9 || math.Abs(got[i].Y-b[i].Y) > 1e-9 {
			t.Fatalf("Lerp(t=1) point %d: expected %v, got %v", i, b[i], got[i])
		}
	}
}

func TestLerpReusesBuffer(t *testing.T) {
	a := shape.Circle(10)
	b := shape.Diamond(10)
	buf := make(shape.Polygon, 0, 32)

	out := Lerp(a, b, 0.5, buf)
	if len(out) != 10 {
		t.Fatalf("Expected 10 points, got %d", len(out))
	}
	if &out[:1][0] != &buf[:1][0] {
		t.Error("Expected Lerp to write into the provided buffer")
	}
}

func TestInterpolateApproachesNext(t *testing.T) {
	lib := shape.NewLibrary([]shape.Polygon{shape.Circle(shape.PointCount), shape.Star(shape.PointCount)})
	snap := lib.Snapshot()
	star := snap.Get(1)

	out, ok := Interpolate(snap, State{Current: 0, Next: 1, Progress: 0.999}, nil)
	if !ok {
		t.Fatal("Expected interpolation to succeed")
	}
	for i := range out {
		if math.Abs(out[i].X-star[i].X) > 1e-3 || math.Abs(out[i].Y-star[i].Y) > 1e-3 {
			t.Fatalf("Point %d not near next keyframe: %v vs %v", i, out[i], star[i])
		}
	}
}

func TestInterpolateMissingKeyframe(t *testing.T) {
	lib := shape.NewLibrary(nil)
	snap := lib.Snapshot()
	prev := shape.Circle(shape.PointCount)

	out, ok := Interpolate(snap, State{Current: 0, Next: 99}, prev)
	if ok {
		t.Error("Expected missing keyframe to report failure")
	}
	for i := range prev {
		if out[i] != prev[i] {
			t.Fatalf("Expected previous polygon kept at %d", i)
		}
	}
}

func TestControllerRotation(t *testing.T) {
	lib := shape.NewLibrary([]shape.Polygon{shape.Circle(shape.PointCount), shape.Square(shape.PointCount)})
	snap := lib.Snapshot()

	c := NewController(0.5)
	c.Sync(snap)

	c.Advance(snap)
	if st := c.State(); st.Progress != 0.5 || st.Current != 0 || st.Next != 1 {
		t.Fatalf("After first frame: got %+v", st)
	}

	if !c.Advance(snap) {
		t.Error("Expected keyframe boundary on second frame")
	}
	if st := c.State(); st.Progress != 0 || st.Current != 1 || st.Next != 0 {
		t.Fatalf("After second frame: got %+v", st)
	}
}

func TestControllerSingleKeyframe(t *testing.T) {
	lib := shape.NewLibrary([]shape.Polygon{shape.Circle(shape.PointCount)})
	snap := lib.Snapshot()

	c := NewController(1)
	c.Sync(snap)
	if st := c.State(); st.Current != 0 || st.Next != 0 {
		t.Fatalf("Expected both indices at 0, got %+v", st)
	}
	c.Advance(snap)
	if st := c.State(); st.Current != 0 || st.Next != 0 {
		t.Fatalf("Expected indices to stay at 0, got %+v", st)
	}
	if _, ok := c.Interpolate(snap, nil); !ok {
		t.Error("Expected single keyframe to interpolate")
	}
}

func TestControllerResetsOnReplace(t *testing.T) {
	lib := shape.NewLibrary(nil)
	c := NewController(0.3)
	c.Sync(lib.Snapshot())
	c.Advance(lib.Snapshot())
	c.Advance(lib.Snapshot())

	if c.Sync(lib.Snapshot()) {
		t.Error("Expected no reset without a replace")
	}

	if err := lib.Replace([]shape.Polygon{shape.Star(shape.PointCount), shape.Diamond(shape.PointCount)}); err != nil {
		t.Fatalf("Replace failed: %v", err)
	}
	if !c.Sync(lib.Snapshot()) {
		t.Fatal("Expected reset after replace")
	}
	if st := c.State(); st != (State{Current: 0, Next: 1, Progress: 0}) {
		t.Errorf("Expected fresh state, got %+v", st)
	}
}
