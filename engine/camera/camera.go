package camera

import "sync"

// View holds the camera orientation and zoom for the panorama sphere, plus the
// per-tick rates the run loop integrates. Yaw and pitch are stored unwrapped;
// wraparound is applied at projection time only. Zoom is a positive scalar
// with 1.0 neutral. Roll is carried as a projection parameter but no control
// is bound to it.
type View interface {
	// Yaw returns the current yaw angle in radians.
	//
	// Returns:
	//   - float32: the yaw angle
	Yaw() float32

	// SetYaw sets the yaw angle in radians.
	//
	// Parameters:
	//   - yaw: the yaw angle to set
	SetYaw(yaw float32)

	// Pitch returns the current pitch angle in radians.
	//
	// Returns:
	//   - float32: the pitch angle
	Pitch() float32

	// SetPitch sets the pitch angle in radians.
	//
	// Parameters:
	//   - pitch: the pitch angle to set
	SetPitch(pitch float32)

	// Roll returns the roll angle in radians.
	//
	// Returns:
	//   - float32: the roll angle
	Roll() float32

	// Zoom returns the current zoom scalar (1.0 = neutral).
	//
	// Returns:
	//   - float32: the zoom scalar
	Zoom() float32

	// SetZoom sets the zoom scalar.
	//
	// Parameters:
	//   - zoom: the zoom scalar to set
	SetZoom(zoom float32)

	// YawRate returns the additive yaw rate in radians per tick.
	//
	// Returns:
	//   - float32: the yaw rate
	YawRate() float32

	// SetYawRate sets the additive yaw rate in radians per tick.
	//
	// Parameters:
	//   - rate: the yaw rate to set
	SetYawRate(rate float32)

	// PitchRate returns the additive pitch rate in radians per tick.
	//
	// Returns:
	//   - float32: the pitch rate
	PitchRate() float32

	// SetPitchRate sets the additive pitch rate in radians per tick.
	//
	// Parameters:
	//   - rate: the pitch rate to set
	SetPitchRate(rate float32)

	// ZoomRate returns the multiplicative zoom rate applied once per tick (1.0 = neutral).
	//
	// Returns:
	//   - float32: the zoom rate
	ZoomRate() float32

	// SetZoomRate sets the multiplicative zoom rate (1.0 = neutral).
	//
	// Parameters:
	//   - rate: the zoom rate to set
	SetZoomRate(rate float32)

	// Orientation returns yaw, pitch, roll, and zoom as one consistent snapshot.
	//
	// Returns:
	//   - yaw, pitch, roll, zoom: the current view parameters
	Orientation() (yaw, pitch, roll, zoom float32)
}

// viewImpl is the implementation of the View interface.
type viewImpl struct {
	mu *sync.Mutex

	yaw   float32
	pitch float32
	roll  float32
	zoom  float32

	yawRate   float32
	pitchRate float32
	zoomRate  float32
}

var _ View = &viewImpl{}

// NewView creates a View with neutral defaults: zero orientation, zoom 1.0,
// zero angular rates, and zoom rate 1.0.
//
// Parameters:
//   - options: functional options to configure the view
//
// Returns:
//   - View: the newly created view
func NewView(options ...ViewBuilderOption) View {
	v := &viewImpl{
		mu:       &sync.Mutex{},
		zoom:     1.0,
		zoomRate: 1.0,
	}
	for _, opt := range options {
		opt(v)
	}
	return v
}

func (v *viewImpl) Yaw() float32 {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.yaw
}

func (v *viewImpl) SetYaw(yaw float32) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.yaw = yaw
}

func (v *viewImpl) Pitch() float32 {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.pitch
}

func (v *viewImpl) SetPitch(pitch float32) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.pitch = pitch
}

func (v *viewImpl) Roll() float32 {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.roll
}

func (v *viewImpl) Zoom() float32 {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.zoom
}

func (v *viewImpl) SetZoom(zoom float32) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.zoom = zoom
}

func (v *viewImpl) YawRate() float32 {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.yawRate
}

func (v *viewImpl) SetYawRate(rate float32) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.yawRate = rate
}

func (v *viewImpl) PitchRate() float32 {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.pitchRate
}

func (v *viewImpl) SetPitchRate(rate float32) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.pitchRate = rate
}

func (v *viewImpl) ZoomRate() float32 {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.zoomRate
}

func (v *viewImpl) SetZoomRate(rate float32) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.zoomRate = rate
}

func (v *viewImpl) Orientation() (yaw, pitch, roll, zoom float32) {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.yaw, v.pitch, v.roll, v.zoom
}
