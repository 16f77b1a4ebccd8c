package renderer

// RendererBuilderOption is a function that modifies the renderer configuration
// before the backend is created.
type RendererBuilderOption func(*renderer)

// WithPresentMode sets the presentation mode for the surface.
//
// Parameters:
//   - mode: the present mode to use (PresentModeVSync or PresentModeUncapped)
//
// Returns:
//   - RendererBuilderOption: the option function
func WithPresentMode(mode PresentMode) RendererBuilderOption {
	return func(r *renderer) {
		r.pendingPresentMode = &mode
	}
}

// WithForceSoftwareRenderer forces adapter selection to fall back to a
// software implementation. Useful on headless machines or for debugging
// driver issues.
//
// Returns:
//   - RendererBuilderOption: the option function
func WithForceSoftwareRenderer() RendererBuilderOption {
	return func(r *renderer) {
		r.forceFallbackAdapter = true
	}
}
