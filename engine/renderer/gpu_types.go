package renderer

import (
	_ "embed"

	"github.com/Carmen-Shannon/pano-go/engine/metadata"
)

// panoShaderSource is the WGSL source for the fullscreen panorama pipeline.
// Embedded so the viewer binary is relocatable.
//
//go:embed shaders/pano.wgsl
var panoShaderSource string

// ViewParams mirrors the ViewParams uniform block in shaders/pano.wgsl.
// Field order, padding, and total size (48 bytes) must match the WGSL
// struct's uniform address space layout exactly.
type ViewParams struct {
	// Aspect is the viewport height divided by width.
	Aspect float32

	// Yaw, Pitch, Roll are the camera angles in radians.
	Yaw   float32
	Pitch float32
	Roll  float32

	// Zoom is the zoom scalar (1.0 = neutral).
	Zoom float32

	_pad [3]float32

	// Offset is the crop's texture-space origin: {CropLeft, 1 - CropTop - HeightRatio}.
	Offset [2]float32

	// Extent is the crop's texture-space size: {WidthRatio, HeightRatio}.
	Extent [2]float32
}

// NewViewParams assembles the uniform block from camera parameters and the
// crop descriptor. The vertical offset flip (1 - CropTop - HeightRatio)
// happens here, once, so the shader works purely in texture space.
//
// Parameters:
//   - yaw, pitch, roll, zoom: the camera parameters
//   - aspect: viewport height divided by width
//   - meta: the crop descriptor
//
// Returns:
//   - ViewParams: the packed uniform block
func NewViewParams(yaw, pitch, roll, zoom, aspect float32, meta metadata.PanoMeta) ViewParams {
	return ViewParams{
		Aspect: aspect,
		Yaw:    yaw,
		Pitch:  pitch,
		Roll:   roll,
		Zoom:   zoom,
		Offset: [2]float32{meta.CropLeft, 1 - meta.CropTop - meta.HeightRatio},
		Extent: [2]float32{meta.WidthRatio, meta.HeightRatio},
	}
}
