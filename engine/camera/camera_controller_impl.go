package camera

import (
	"math"
	"sync"
)

// Default control constants. The angular step is tuned so a held key covers a
// full rotation in roughly four seconds at sixty ticks per second; the tick
// rate itself is configured on the engine, so the step is an option here, not
// a baked-in assumption.
const (
	// DefaultAngularStep is the yaw/pitch rate magnitude in radians per tick.
	DefaultAngularStep = 1.0 / 4.0 / 60.0

	// DefaultZoomInRate is the multiplicative per-tick zoom rate while zooming in.
	DefaultZoomInRate = 0.99

	// DefaultZoomOutRate is the multiplicative per-tick zoom rate while zooming out.
	DefaultZoomOutRate = 1.01

	// DefaultWheelLineFactor scales line-style wheel deltas into a zoom multiplier.
	DefaultWheelLineFactor = 0.08

	// DefaultWheelPixelFactor scales pixel-style wheel deltas into a zoom multiplier.
	DefaultWheelPixelFactor = 0.01
)

// dragSession captures the state of an in-progress pointer drag. While open,
// every pointer move recomputes yaw and pitch from the anchor rather than from
// an incremental delta, so dropped or coalesced move events cannot skew the
// orientation.
type dragSession struct {
	anchorX, anchorY       float32
	anchorYaw, anchorPitch float32
}

// controllerImpl is the single implementation of Controller.
type controllerImpl struct {
	mu *sync.Mutex

	view View

	angularStep      float32
	zoomInRate       float32
	zoomOutRate      float32
	wheelLineFactor  float32
	wheelPixelFactor float32

	drag *dragSession
}

var _ Controller = &controllerImpl{}

// NewController creates a Controller bound to the given View with the default
// control constants.
//
// Parameters:
//   - view: the View to mutate
//   - options: functional options to configure the controller
//
// Returns:
//   - Controller: the newly created controller
func NewController(view View, options ...ControllerBuilderOption) Controller {
	c := &controllerImpl{
		mu:               &sync.Mutex{},
		view:             view,
		angularStep:      DefaultAngularStep,
		zoomInRate:       DefaultZoomInRate,
		zoomOutRate:      DefaultZoomOutRate,
		wheelLineFactor:  DefaultWheelLineFactor,
		wheelPixelFactor: DefaultWheelPixelFactor,
	}
	for _, opt := range options {
		opt(c)
	}
	return c
}

func (c *controllerImpl) Apply(ev Event) {
	c.mu.Lock()
	defer c.mu.Unlock()

	switch ev.Kind {
	case EventKeyDown:
		c.applyKey(ev.Dir, true)
	case EventKeyUp:
		c.applyKey(ev.Dir, false)
	case EventPointerDown:
		yaw := c.view.Yaw()
		pitch := c.view.Pitch()
		c.drag = &dragSession{
			anchorX:     ev.X,
			anchorY:     ev.Y,
			anchorYaw:   yaw,
			anchorPitch: pitch,
		}
	case EventPointerMove:
		if c.drag == nil {
			return
		}
		c.applyDrag(ev.X, ev.Y)
	case EventPointerUp, EventFocusLost:
		c.drag = nil
	case EventWheelLine:
		c.view.SetZoom(c.view.Zoom() * (1 + ev.Delta*c.wheelLineFactor))
	case EventWheelPixel:
		c.view.SetZoom(c.view.Zoom() * (1 + ev.Delta*c.wheelPixelFactor))
	}
}

// applyKey sets or clears the rate bound to a logical direction. Setting the
// same rate again on auto-repeat is a no-op, which gives the required
// idempotence for held keys.
func (c *controllerImpl) applyKey(dir Direction, down bool) {
	switch dir {
	case DirectionYawNeg:
		if down {
			c.view.SetYawRate(-c.angularStep)
		} else {
			c.view.SetYawRate(0)
		}
	case DirectionYawPos:
		if down {
			c.view.SetYawRate(c.angularStep)
		} else {
			c.view.SetYawRate(0)
		}
	case DirectionPitchNeg:
		if down {
			c.view.SetPitchRate(-c.angularStep)
		} else {
			c.view.SetPitchRate(0)
		}
	case DirectionPitchPos:
		if down {
			c.view.SetPitchRate(c.angularStep)
		} else {
			c.view.SetPitchRate(0)
		}
	case DirectionZoomIn:
		if down {
			c.view.SetZoomRate(c.zoomInRate)
		} else {
			c.view.SetZoomRate(1)
		}
	case DirectionZoomOut:
		if down {
			c.view.SetZoomRate(c.zoomOutRate)
		} else {
			c.view.SetZoomRate(1)
		}
	}
}

// applyDrag recomputes yaw and pitch from the session anchor. Taking atan of
// the normalized coordinate rather than the coordinate itself compensates for
// the perspective warp of the projection, so the sphere content tracks the
// cursor visually. Dividing by the current zoom makes drag sensitivity
// inversely proportional to zoom level.
func (c *controllerImpl) applyDrag(x, y float32) {
	zoom := c.view.Zoom()
	yaw := (atan(c.drag.anchorX)-atan(x))/zoom + c.drag.anchorYaw
	pitch := (atan(y)-atan(c.drag.anchorY))/zoom + c.drag.anchorPitch
	c.view.SetYaw(yaw)
	c.view.SetPitch(pitch)
}

func (c *controllerImpl) Dragging() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.drag != nil
}

func (c *controllerImpl) View() View {
	return c.view
}

func atan(v float32) float32 {
	return float32(math.Atan(float64(v)))
}
