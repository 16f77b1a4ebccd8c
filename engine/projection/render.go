package projection

import (
	"image"
	"image/color"
	"runtime"
	"sync"
	"time"

	"github.com/Carmen-Shannon/automation/tools/worker"
	"github.com/Carmen-Shannon/pano-go/engine/metadata"
)

// frameRenderer is the implementation of the FrameRenderer interface.
type frameRenderer struct {
	// pool manages a bounded set of reusable goroutines for the row-parallel
	// render phase. Workers persist across frames, avoiding per-frame
	// goroutine spawn/teardown overhead.
	pool    worker.DynamicWorkerPool
	workers int

	taskID int
}

// FrameRenderer renders panorama views on the CPU, producing the same
// per-pixel result as the GPU path. Pixels with no valid sample render
// opaque black.
type FrameRenderer interface {
	// RenderFrame renders one full frame of the panorama.
	//
	// Parameters:
	//   - src: the decoded panorama in RGBA
	//   - meta: the crop descriptor
	//   - yaw, pitch, roll, zoom: the camera parameters
	//   - width, height: output frame size in pixels
	//
	// Returns:
	//   - *image.RGBA: the rendered frame
	RenderFrame(src *image.RGBA, meta metadata.PanoMeta, yaw, pitch, roll, zoom float32, width, height int) *image.RGBA
}

var _ FrameRenderer = &frameRenderer{}

// FrameRendererBuilderOption is a functional option applied to a FrameRenderer
// during construction via NewFrameRenderer.
type FrameRendererBuilderOption func(*frameRenderer)

// WithWorkers sets the worker count for the render pool. Values <= 0 keep the
// default of GOMAXPROCS.
//
// Parameters:
//   - workers: the worker count
//
// Returns:
//   - FrameRendererBuilderOption: a function that sets the worker count
func WithWorkers(workers int) FrameRendererBuilderOption {
	return func(r *frameRenderer) {
		if workers > 0 {
			r.workers = workers
		}
	}
}

// NewFrameRenderer creates a FrameRenderer with a worker pool sized by the
// configured worker count. The pool lives as long as the renderer and is
// reused across frames.
//
// Parameters:
//   - options: functional options to configure the renderer
//
// Returns:
//   - FrameRenderer: the newly created renderer
func NewFrameRenderer(options ...FrameRendererBuilderOption) FrameRenderer {
	r := &frameRenderer{
		workers: runtime.GOMAXPROCS(0),
	}
	for _, opt := range options {
		opt(r)
	}

	// Queue size of 256 accommodates the band count at any realistic frame
	// height with headroom.
	r.pool = worker.NewDynamicWorkerPool(r.workers, 256, 1*time.Second)

	return r
}

// RenderFrame splits the output rows into bands and submits each band to the
// pool; a WaitGroup provides the frame barrier since pool.Wait() blocks until
// workers idle-exit.
func (r *frameRenderer) RenderFrame(src *image.RGBA, meta metadata.PanoMeta, yaw, pitch, roll, zoom float32, width, height int) *image.RGBA {
	out := image.NewRGBA(image.Rect(0, 0, width, height))
	aspect := float32(height) / float32(width)

	bands := r.workers * 4
	if bands > height {
		bands = height
	}
	if bands < 1 {
		bands = 1
	}
	rowsPerBand := (height + bands - 1) / bands

	var wg sync.WaitGroup
	for y0 := 0; y0 < height; y0 += rowsPerBand {
		y1 := y0 + rowsPerBand
		if y1 > height {
			y1 = height
		}
		wg.Add(1)
		start, stop := y0, y1
		id := r.taskID
		r.taskID++
		r.pool.SubmitTask(worker.Task{
			ID: id,
			Do: func() (any, error) {
				defer wg.Done()
				renderRows(out, src, meta, yaw, pitch, roll, zoom, aspect, start, stop)
				return nil, nil
			},
		})
	}
	wg.Wait()

	return out
}

// renderRows evaluates the projection for every pixel in rows [start, stop).
func renderRows(out, src *image.RGBA, meta metadata.PanoMeta, yaw, pitch, roll, zoom, aspect float32, start, stop int) {
	width := out.Rect.Dx()
	height := out.Rect.Dy()
	black := color.RGBA{A: 255}

	for py := start; py < stop; py++ {
		// Pixel centers, NDC y up.
		y := 1 - (2*float32(py)+1)/float32(height)
		for px := 0; px < width; px++ {
			x := (2*float32(px)+1)/float32(width) - 1

			u, v, ok := Map(x, y, aspect, yaw, pitch, roll, zoom, meta)
			if !ok {
				out.SetRGBA(px, py, black)
				continue
			}
			out.SetRGBA(px, py, SampleClamp(src, float64(u), float64(v)))
		}
	}
}
