package engine

import (
	"sync"
	"testing"
	"time"

	"github.com/lixenwraith/glitchgrid/render"
)

func waitFor(t *testing.T, cond func() bool) {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for !cond() {
		if time.Now().After(deadline) {
			t.Fatal("Timed out waiting for condition")
		}
		time.Sleep(5 * time.Millisecond)
	}
}

func TestLoopStartStopRestart(t *testing.T) {
	d := newTestDriver()
	d.OnResize(20, 10)
	rec := render.NewRecorder(20, 10, 1, 1)
	l := NewLoop(d, rec, NewPausableClock(nil), 5*time.Millisecond)

	l.Start()
	l.Start() // no-op while running
	waitFor(t, func() bool { return l.Frames() >= 3 })
	l.Stop()

	if l.Running() {
		t.Fatal("Expected loop stopped")
	}
	frames := l.Frames()
	time.Sleep(20 * time.Millisecond)
	if l.Frames() != frames {
		t.Error("Frames produced after Stop")
	}

	l.Start()
	waitFor(t, func() bool { return l.Frames() > frames })
	l.Stop()
	l.Stop() // no-op when stopped
}

func TestLoopPost(t *testing.T) {
	d := newTestDriver()
	rec := render.NewRecorder(20, 10, 1, 1)
	l := NewLoop(d, rec, nil, 5*time.Millisecond)

	done := make(chan struct{})
	if !l.Post(func(d *Driver) {
		d.OnResize(20, 10)
		close(done)
	}) {
		t.Fatal("Post rejected on empty queue")
	}

	l.Start()
	defer l.Stop()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("Posted command never ran")
	}
}

func TestLoopRecoversPanic(t *testing.T) {
	d := newTestDriver()
	d.OnResize(5, 5)
	rec := render.NewRecorder(5, 5, 1, 1)
	l := NewLoop(d, rec, nil, 5*time.Millisecond)

	l.Post(func(*Driver) { panic("boom") })
	l.Start()
	defer l.Stop()

	start := l.Frames()
	waitFor(t, func() bool { return l.Frames() > start+2 })
}

func TestPausableClock(t *testing.T) {
	src := NewMockTimeProvider(testStart)
	pc := NewPausableClock(src)

	src.Advance(time.Second)
	if got := pc.Now(); !got.Equal(testStart.Add(time.Second)) {
		t.Fatalf("Expected clock to follow source, got %v", got)
	}

	pc.Pause()
	pc.Pause()
	src.Advance(10 * time.Second)
	if got := pc.Now(); !got.Equal(testStart.Add(time.Second)) {
		t.Errorf("Expected frozen time while paused, got %v", got)
	}
	if !pc.IsPaused() {
		t.Error("Expected paused")
	}
	if d := pc.TotalPauseDuration(); d != 10*time.Second {
		t.Errorf("Expected 10s paused, got %v", d)
	}

	pc.Resume()
	src.Advance(time.Second)
	if got := pc.Now(); !got.Equal(testStart.Add(2 * time.Second)) {
		t.Errorf("Expected resume to continue from pause point, got %v", got)
	}
}

// surfaceWidth reads the driver's surface width on the loop goroutine
func surfaceWidth(t *testing.T, l *Loop) int {
	t.Helper()
	ch := make(chan int, 1)
	if !l.Post(func(d *Driver) {
		w, _ := d.SurfaceSize()
		ch <- w
	}) {
		t.Fatal("Post rejected")
	}
	select {
	case w := <-ch:
		return w
	case <-time.After(2 * time.Second):
		t.Fatal("Size query never ran")
		return 0
	}
}

func TestLoopResizeWhileStoppedKeepsLatest(t *testing.T) {
	d := newTestDriver()
	rec := render.NewRecorder(120, 10, 1, 1)
	l := NewLoop(d, rec, NewPausableClock(nil), 5*time.Millisecond)

	l.Resize(20, 10)
	l.Start()
	waitFor(t, func() bool { return surfaceWidth(t, l) == 20 })
	l.Stop()

	for w := 21; w <= 120; w++ {
		l.Resize(w, 10)
	}
	// Resizes do not occupy the command queue; leave one slot for the size query
	for i := 0; i < commandBuffer-1; i++ {
		if !l.Post(func(*Driver) {}) {
			t.Fatalf("Post %d rejected while stopped", i)
		}
	}

	l.Start()
	defer l.Stop()
	waitFor(t, func() bool { return surfaceWidth(t, l) == 120 })
}

func TestLoopConcurrentStartStop(t *testing.T) {
	d := newTestDriver()
	d.OnResize(5, 5)
	rec := render.NewRecorder(5, 5, 1, 1)
	l := NewLoop(d, rec, NewPausableClock(nil), time.Millisecond)

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 50; j++ {
				l.Start()
				l.Stop()
			}
		}()
	}

	finished := make(chan struct{})
	go func() {
		wg.Wait()
		close(finished)
	}()
	select {
	case <-finished:
	case <-time.After(5 * time.Second):
		t.Fatal("Start/Stop deadlocked")
	}
	if l.Running() {
		t.Error("Expected loop stopped after balanced Start/Stop")
	}
}
