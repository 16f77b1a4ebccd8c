package camera

// ViewBuilderOption is a functional option applied to a View during construction via NewView.
type ViewBuilderOption func(*viewImpl)

// WithYaw sets the initial yaw angle in radians.
//
// Parameters:
//   - yaw: the yaw angle
//
// Returns:
//   - ViewBuilderOption: a function that sets the view's yaw
func WithYaw(yaw float32) ViewBuilderOption {
	return func(v *viewImpl) {
		v.yaw = yaw
	}
}

// WithPitch sets the initial pitch angle in radians.
//
// Parameters:
//   - pitch: the pitch angle
//
// Returns:
//   - ViewBuilderOption: a function that sets the view's pitch
func WithPitch(pitch float32) ViewBuilderOption {
	return func(v *viewImpl) {
		v.pitch = pitch
	}
}

// WithRoll sets the roll angle in radians. No input is bound to roll; this is
// the only way to set it.
//
// Parameters:
//   - roll: the roll angle
//
// Returns:
//   - ViewBuilderOption: a function that sets the view's roll
func WithRoll(roll float32) ViewBuilderOption {
	return func(v *viewImpl) {
		v.roll = roll
	}
}

// WithZoom sets the initial zoom scalar (1.0 = neutral).
//
// Parameters:
//   - zoom: the zoom scalar
//
// Returns:
//   - ViewBuilderOption: a function that sets the view's zoom
func WithZoom(zoom float32) ViewBuilderOption {
	return func(v *viewImpl) {
		v.zoom = zoom
	}
}
