package engine

import (
	"github.com/Carmen-Shannon/pano-go/engine/camera"
)

// scheduler advances the camera by its current rates once per tick and
// reports whether the view is idle. Rates are expressed per tick, so the
// integration step is rate-independent of wall-clock time.
type scheduler struct {
	view camera.View
}

// Scheduler drives continuous camera animation for held-key navigation.
type Scheduler interface {
	// Tick applies one integration step to the camera: the yaw and pitch
	// rates are added to the current angles and the zoom rate is multiplied
	// into the current zoom.
	Tick()

	// Idle reports whether the camera currently has no active animation,
	// meaning both angular rates are zero and the zoom rate is 1.
	//
	// Returns:
	//   - bool: true when no rate would change the view on the next tick
	Idle() bool

	// View returns the camera view the scheduler is driving.
	//
	// Returns:
	//   - camera.View: the underlying view
	View() camera.View
}

var _ Scheduler = &scheduler{}

// NewScheduler creates a Scheduler driving the given view.
//
// Parameters:
//   - view: the camera view to integrate each tick
//
// Returns:
//   - Scheduler: the newly created scheduler
func NewScheduler(view camera.View) Scheduler {
	return &scheduler{view: view}
}

func (s *scheduler) Tick() {
	s.view.SetYaw(s.view.Yaw() + s.view.YawRate())
	s.view.SetPitch(s.view.Pitch() + s.view.PitchRate())
	s.view.SetZoom(s.view.Zoom() * s.view.ZoomRate())
}

func (s *scheduler) Idle() bool {
	return s.view.YawRate() == 0 && s.view.PitchRate() == 0 && s.view.ZoomRate() == 1
}

func (s *scheduler) View() camera.View {
	return s.view
}
