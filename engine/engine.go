package engine

import (
	"log"
	"time"

	"github.com/Carmen-Shannon/pano-go/engine/camera"
	"github.com/Carmen-Shannon/pano-go/engine/window"
)

const defaultTickRate = 60.0

// engine implements the Engine interface.
// It runs a single-threaded event loop on the caller's goroutine: when the
// camera is idle the loop blocks waiting for window events, and while any
// rate is active it polls events and steps the scheduler at the tick rate.
type engine struct {
	window    window.Window
	scheduler Scheduler

	tickInterval time.Duration

	renderCallback func()

	dirty   bool
	running bool
}

// Engine owns the viewer main loop. It coordinates the window, the camera
// scheduler, and the render callback so that exactly one frame is drawn per
// state change and no CPU is burned while the view is static.
type Engine interface {
	// Window returns the underlying window.
	//
	// Returns:
	//   - window.Window: the window instance
	Window() window.Window

	// Scheduler returns the camera scheduler driven by the loop.
	//
	// Returns:
	//   - Scheduler: the scheduler instance
	Scheduler() Scheduler

	// SetRenderCallback registers the function called whenever a frame
	// needs to be drawn.
	//
	// Parameters:
	//   - callback: function invoked once per dirty frame
	SetRenderCallback(callback func())

	// RequestRedraw marks the current frame contents stale so the next
	// loop iteration draws exactly one frame. Call this from input and
	// resize handlers.
	RequestRedraw()

	// Run executes the main loop until the window closes or Stop is
	// called. It must be invoked from the main goroutine.
	Run()

	// Stop requests loop termination. The loop exits after the current
	// iteration completes.
	Stop()
}

var _ Engine = &engine{}

// NewEngine creates an Engine for the given window and camera view.
//
// Parameters:
//   - w: the window providing events and the render surface
//   - view: the camera view animated by the loop
//   - options: functional options to configure the engine
//
// Returns:
//   - Engine: the newly created engine
func NewEngine(w window.Window, view camera.View, options ...EngineBuilderOption) Engine {
	e := &engine{
		window:       w,
		scheduler:    NewScheduler(view),
		tickInterval: time.Second / time.Duration(defaultTickRate),
		dirty:        true,
	}

	for _, opt := range options {
		opt(e)
	}

	return e
}

func (e *engine) Window() window.Window {
	return e.window
}

func (e *engine) Scheduler() Scheduler {
	return e.scheduler
}

func (e *engine) SetRenderCallback(callback func()) {
	e.renderCallback = callback
}

func (e *engine) RequestRedraw() {
	e.dirty = true
}

func (e *engine) Run() {
	e.running = true
	log.Printf("engine: loop started (tick interval %v)", e.tickInterval)

	for e.running && e.window.IsRunning() {
		frameStart := time.Now()

		if e.scheduler.Idle() && !e.dirty {
			// Nothing is animating and the frame is current: block until
			// the next window event instead of spinning.
			e.window.Wait()
		} else {
			e.window.Poll()
		}

		if !e.window.IsRunning() {
			break
		}

		if !e.scheduler.Idle() {
			e.scheduler.Tick()
			e.dirty = true
		}

		if e.dirty {
			e.dirty = false
			if e.renderCallback != nil {
				e.renderCallback()
			}
		}

		if !e.scheduler.Idle() {
			if remaining := e.tickInterval - time.Since(frameStart); remaining > 0 {
				time.Sleep(remaining)
			}
		}
	}

	e.running = false
	log.Println("engine: loop stopped")
}

func (e *engine) Stop() {
	e.running = false
}
