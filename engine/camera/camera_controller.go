package camera

// Direction identifies one of the six logical movement bindings for key input.
type Direction int

const (
	// DirectionYawNeg rotates the view toward negative yaw while held.
	DirectionYawNeg Direction = iota

	// DirectionYawPos rotates the view toward positive yaw while held.
	DirectionYawPos

	// DirectionPitchNeg rotates the view toward negative pitch while held.
	DirectionPitchNeg

	// DirectionPitchPos rotates the view toward positive pitch while held.
	DirectionPitchPos

	// DirectionZoomIn narrows the view (zoom scalar shrinks) while held.
	DirectionZoomIn

	// DirectionZoomOut widens the view (zoom scalar grows) while held.
	DirectionZoomOut
)

// EventKind tags the variant of an input Event.
type EventKind int

const (
	// EventKeyDown is a key press for a logical Direction. Repeated down
	// events from key auto-repeat are expected and must not accumulate.
	EventKeyDown EventKind = iota

	// EventKeyUp is a key release for a logical Direction.
	EventKeyUp

	// EventPointerDown is a primary-button press at a normalized position.
	EventPointerDown

	// EventPointerMove is a pointer move at a normalized position.
	EventPointerMove

	// EventPointerUp is a primary-button release.
	EventPointerUp

	// EventWheelLine is a line-style scroll wheel delta.
	EventWheelLine

	// EventWheelPixel is a pixel-style scroll wheel delta (touchpads, some
	// platforms). GLFW reports line deltas; this variant exists for input
	// sources that deliver pixel offsets.
	EventWheelPixel

	// EventFocusLost signals loss of input focus. Any open drag session is
	// discarded without changing the orientation.
	EventFocusLost
)

// Event is a tagged-variant input event. Which fields are meaningful depends
// on Kind: Dir for key events, X/Y for pointer events, Delta for wheel events.
// Pointer positions are normalized device coordinates with X in [-1, 1] and Y
// in [-1, 1] scaled by the viewport aspect ratio (height/width), matching the
// projection's own aspect handling; use NormalizePointer.
type Event struct {
	Kind  EventKind
	Dir   Direction
	X, Y  float32
	Delta float32
}

// NormalizePointer converts window pixel coordinates to the normalized device
// coordinates carried by pointer Events. X maps to [-1, 1]; Y maps to [-1, 1]
// with up positive, then is scaled by height/width. The asymmetric Y scaling
// is intentional and must match the projection's aspect correction.
//
// Parameters:
//   - px, py: pointer position in pixels, origin top-left
//   - width, height: viewport size in pixels
//
// Returns:
//   - x, y: the normalized pointer position
func NormalizePointer(px, py float64, width, height int) (x, y float32) {
	if width <= 0 || height <= 0 {
		return 0, 0
	}
	aspect := float32(height) / float32(width)
	x = float32(2*px/float64(width) - 1)
	y = float32(1-2*py/float64(height)) * aspect
	return x, y
}

// Controller maps the discrete input event stream onto View mutations.
// Key events toggle the per-tick rates, pointer drags recompute yaw and pitch
// from a session anchor, and wheel events scale zoom immediately.
type Controller interface {
	// Apply processes a single input event, mutating the attached View.
	//
	// Parameters:
	//   - ev: the event to process
	Apply(ev Event)

	// Dragging reports whether a pointer drag session is open.
	//
	// Returns:
	//   - bool: true while the primary button is held
	Dragging() bool

	// View returns the View this controller mutates.
	//
	// Returns:
	//   - View: the attached view
	View() View
}
