package camera

// ControllerBuilderOption is a functional option applied to a Controller during construction via NewController.
type ControllerBuilderOption func(*controllerImpl)

// WithAngularStep sets the yaw/pitch rate magnitude in radians per tick used
// for key-driven rotation.
//
// Parameters:
//   - step: the angular step in radians per tick
//
// Returns:
//   - ControllerBuilderOption: a function that sets the angular step
func WithAngularStep(step float32) ControllerBuilderOption {
	return func(c *controllerImpl) {
		c.angularStep = step
	}
}

// WithZoomRates sets the multiplicative per-tick zoom rates used while the
// zoom keys are held. zoomIn should be below 1, zoomOut above 1.
//
// Parameters:
//   - zoomIn: the per-tick rate while zooming in
//   - zoomOut: the per-tick rate while zooming out
//
// Returns:
//   - ControllerBuilderOption: a function that sets the zoom rates
func WithZoomRates(zoomIn, zoomOut float32) ControllerBuilderOption {
	return func(c *controllerImpl) {
		c.zoomInRate = zoomIn
		c.zoomOutRate = zoomOut
	}
}

// WithWheelFactors sets the factors scaling wheel deltas into an immediate
// zoom multiplier, per delta style.
//
// Parameters:
//   - line: factor for line-style deltas
//   - pixel: factor for pixel-style deltas
//
// Returns:
//   - ControllerBuilderOption: a function that sets the wheel factors
func WithWheelFactors(line, pixel float32) ControllerBuilderOption {
	return func(c *controllerImpl) {
		c.wheelLineFactor = line
		c.wheelPixelFactor = pixel
	}
}
