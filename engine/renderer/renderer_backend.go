package renderer

import (
	"github.com/Carmen-Shannon/pano-go/common"
)

// RendererBackendType identifies the rendering backend implementation to use.
type RendererBackendType int

const (
	// BackendTypeWGPU selects the WebGPU backend.
	BackendTypeWGPU RendererBackendType = iota
)

// PresentMode controls how rendered frames are delivered to the display.
type PresentMode int

const (
	// PresentModeVSync synchronizes presentation with the display refresh rate.
	PresentModeVSync PresentMode = iota

	// PresentModeUncapped presents frames as fast as possible.
	PresentModeUncapped
)

// RendererBackend is the low-level rendering API behind the Renderer facade.
type RendererBackend interface {
	// ConfigureSurface (re)configures the presentation surface for the given pixel size.
	//
	// Parameters:
	//   - width: surface width in pixels
	//   - height: surface height in pixels
	ConfigureSurface(width, height int)

	// SetPresentMode sets the surface present mode. Takes effect on the next ConfigureSurface.
	//
	// Parameters:
	//   - mode: the PresentMode to use
	SetPresentMode(mode PresentMode)

	// InitResources creates the panorama texture, sampler, uniform buffer, and
	// quad vertex buffer from staging data.
	//
	// Parameters:
	//   - texture: the panorama pixel data and dimensions
	//   - sampler: the sampler configuration
	//
	// Returns:
	//   - error: an error if GPU resource creation fails
	InitResources(texture common.TextureStagingData, sampler common.SamplerStagingData) error

	// InitPipeline compiles the panorama shader and creates the render
	// pipeline and bind group. Requires InitResources to have succeeded.
	//
	// Returns:
	//   - error: an error if pipeline creation fails
	InitPipeline() error

	// RenderFrame writes the uniform block, encodes the fullscreen draw, and presents.
	//
	// Parameters:
	//   - params: the uniform block for this frame
	//
	// Returns:
	//   - error: an error if the surface texture cannot be acquired
	RenderFrame(params ViewParams) error

	// Release frees all GPU resources held by the backend.
	Release()
}
