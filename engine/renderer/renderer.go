package renderer

import (
	"sync"

	"github.com/Carmen-Shannon/pano-go/common"
	"github.com/Carmen-Shannon/pano-go/engine/window"
	"github.com/cogentcore/webgpu/wgpu"
)

// renderer is the implementation of the Renderer interface.
type renderer struct {
	mu *sync.Mutex

	backendType RendererBackendType
	backend     RendererBackend

	// Pre-creation config collected from builder options
	forceFallbackAdapter bool
	pendingPresentMode   *PresentMode
}

// Renderer defines the interface for the rendering system.
//
// This is a high-level API for the viewer's single draw: one fullscreen quad
// running the equirectangular projection shader over the panorama texture.
// The Renderer implements a backend which allows for multiple backend API
// implementations to exist.
type Renderer interface {
	// InitPanorama uploads the panorama texture and creates the sampler,
	// uniform buffer, quad geometry, pipeline, and bind group. Must be called
	// once before the first RenderFrame.
	//
	// Parameters:
	//   - pano: the RGBA pixel data and dimensions of the panorama
	//
	// Returns:
	//   - error: an error if GPU resource creation fails
	InitPanorama(pano common.TextureStagingData) error

	// RenderFrame draws one frame with the given view parameters and presents it.
	//
	// Parameters:
	//   - params: the uniform block for this frame
	//
	// Returns:
	//   - error: an error if the surface texture cannot be acquired
	RenderFrame(params ViewParams) error

	// Resize configures the underlying backend to handle a new surface size.
	// This should be called when re-sizing the window or when the surface size should change.
	//
	// Parameters:
	//   - width: the new width of the surface in pixels
	//   - height: the new height of the surface in pixels
	Resize(width, height int)

	// Release frees all GPU resources held by the renderer.
	Release()
}

var _ Renderer = &renderer{}

// NewRenderer creates a new Renderer for the given window using the specified backend type.
// The surface is configured to the window's current framebuffer size.
//
// Parameters:
//   - backendType: the rendering backend implementation to use
//   - w: the window providing the rendering surface
//   - options: functional options to configure the renderer
//
// Returns:
//   - Renderer: the newly created renderer
func NewRenderer(backendType RendererBackendType, w window.Window, options ...RendererBuilderOption) Renderer {
	r := &renderer{
		mu:          &sync.Mutex{},
		backendType: backendType,
	}

	for _, opt := range options {
		opt(r)
	}

	switch backendType {
	case BackendTypeWGPU:
		fallthrough
	default:
		r.backend = newWGPURendererBackend(w.SurfaceDescriptor(), r.forceFallbackAdapter)
	}

	if r.pendingPresentMode != nil {
		r.backend.SetPresentMode(*r.pendingPresentMode)
	}
	r.backend.ConfigureSurface(w.Width(), w.Height())

	return r
}

func (r *renderer) InitPanorama(pano common.TextureStagingData) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	// Clamp-to-edge on both axes: wrap addressing would repeat seams at the
	// crop boundaries of a partial panorama.
	sampler := common.SamplerStagingData{
		AddressModeU: wgpu.AddressModeClampToEdge,
		AddressModeV: wgpu.AddressModeClampToEdge,
		AddressModeW: wgpu.AddressModeClampToEdge,
		MagFilter:    wgpu.FilterModeLinear,
		MinFilter:    wgpu.FilterModeLinear,
	}
	if err := r.backend.InitResources(pano, sampler); err != nil {
		return err
	}
	return r.backend.InitPipeline()
}

func (r *renderer) RenderFrame(params ViewParams) error {
	return r.backend.RenderFrame(params)
}

func (r *renderer) Resize(width, height int) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.backend.ConfigureSurface(width, height)
}

func (r *renderer) Release() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.backend.Release()
}
