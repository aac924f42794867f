package engine

import (
	"fmt"
	"log/slog"
	"runtime/debug"
	"sync"
	"sync/atomic"
	"time"

	"github.com/lixenwraith/glitchgrid/render"
)

// commandBuffer bounds the commands queued between frames
const commandBuffer = 64

// pauser is implemented by clocks that can stand still while the loop is stopped
type pauser interface {
	Pause()
	Resume()
}

// surfaceSize is a resize waiting for the loop goroutine
type surfaceSize struct{ w, h int }

// Loop runs frames on a fixed tick and owns the Driver while running
// Other goroutines reach the driver only through Post and Resize
type Loop struct {
	driver   *Driver
	surface  render.Surface
	clock    TimeProvider
	interval time.Duration
	log      *slog.Logger

	commands chan func(*Driver)
	resize   atomic.Pointer[surfaceSize] // latest size not yet handed to the driver

	mu       sync.Mutex // serializes Start and Stop
	stopChan chan struct{}
	wg       sync.WaitGroup
	running  atomic.Bool

	frames atomic.Uint64
}

// NewLoop creates a stopped loop drawing driver frames onto surface every interval
func NewLoop(driver *Driver, surface render.Surface, clock TimeProvider, interval time.Duration) *Loop {
	if clock == nil {
		clock = NewPausableClock(nil)
	}
	if interval <= 0 {
		interval = time.Second / 60
	}
	return &Loop{
		driver:   driver,
		surface:  surface,
		clock:    clock,
		interval: interval,
		log:      driver.log,
		commands: make(chan func(*Driver), commandBuffer),
	}
}

// Start begins the frame loop; a running loop is left alone
func (l *Loop) Start() {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.running.Load() {
		return
	}
	if p, ok := l.clock.(pauser); ok {
		p.Resume()
	}

	stop := make(chan struct{})
	l.stopChan = stop
	l.running.Store(true)

	l.wg.Add(1)
	go l.run(stop)
	l.log.Info("loop started", "interval", l.interval)
}

// Stop cancels the next frame and waits for the loop to exit
// Driver state is kept so Start resumes where it left off
func (l *Loop) Stop() {
	l.mu.Lock()
	defer l.mu.Unlock()

	if !l.running.Load() {
		return
	}
	l.running.Store(false)
	close(l.stopChan)
	l.wg.Wait()

	if p, ok := l.clock.(pauser); ok {
		p.Pause()
	}
	l.log.Info("loop stopped", "frames", l.frames.Load())
}

// Running reports whether frames are being produced
func (l *Loop) Running() bool { return l.running.Load() }

// Frames returns the number of frames drawn since creation
func (l *Loop) Frames() uint64 { return l.frames.Load() }

// Post queues fn to run on the loop goroutine before the next frame
// Commands posted while stopped run after the next Start
// Returns false when the queue is full
func (l *Loop) Post(fn func(*Driver)) bool {
	select {
	case l.commands <- fn:
		return true
	default:
		return false
	}
}

// Resize hands a new surface size to the driver before the next frame
// Sizes reported while a frame runs or the loop is stopped coalesce; only the
// latest reaches the driver
func (l *Loop) Resize(w, h int) {
	l.resize.Store(&surfaceSize{w: w, h: h})
}

func (l *Loop) run(stop <-chan struct{}) {
	defer l.wg.Done()

	ticker := time.NewTicker(l.interval)
	defer ticker.Stop()

	// First frame without waiting a full tick
	l.drainCommands()
	l.step()

	for {
		select {
		case <-stop:
			return
		case fn := <-l.commands:
			l.safely("command", func() { fn(l.driver) })
		case <-ticker.C:
			l.drainCommands()
			l.step()
		}
	}
}

func (l *Loop) drainCommands() {
	if sz := l.resize.Swap(nil); sz != nil {
		l.safely("resize", func() { l.driver.OnResize(sz.w, sz.h) })
	}
	for {
		select {
		case fn := <-l.commands:
			l.safely("command", func() { fn(l.driver) })
		default:
			return
		}
	}
}

func (l *Loop) step() {
	l.safely("frame", func() {
		if _, err := l.driver.Frame(l.clock.Now(), l.surface); err != nil {
			l.log.Warn("frame failed", "error", err)
		}
		l.frames.Add(1)
	})
}

// safely runs fn, logging a panic instead of ending the loop
func (l *Loop) safely(what string, fn func()) {
	defer func() {
		if r := recover(); r != nil {
			l.log.Error("recovered panic",
				"in", what,
				"panic", fmt.Sprint(r),
				"stack", string(debug.Stack()))
		}
	}()
	fn()
}
