package projection

import (
	"image"
	"image/color"
)

// SampleClamp performs bilinear filtering with clamp-to-edge addressing on
// both axes. Clamp, not wrap: wrapping would repeat seams at the crop
// boundaries of a partial panorama. v follows the Map convention (0 = image
// bottom). Accesses img.Pix directly.
//
// Parameters:
//   - img: the source RGBA image
//   - u, v: the sample position in texture space
//
// Returns:
//   - color.RGBA: the filtered texel
func SampleClamp(img *image.RGBA, u, v float64) color.RGBA {
	w := img.Rect.Dx()
	h := img.Rect.Dy()

	fx := clamp01(u) * float64(w-1)
	fy := (1 - clamp01(v)) * float64(h-1)

	x0 := int(fx)
	y0 := int(fy)
	x1 := x0 + 1
	if x1 > w-1 {
		x1 = w - 1
	}
	y1 := y0 + 1
	if y1 > h-1 {
		y1 = h - 1
	}
	dx := fx - float64(x0)
	dy := fy - float64(y0)

	stride := img.Stride
	pix := img.Pix

	i00 := y0*stride + x0*4
	i10 := y0*stride + x1*4
	i01 := y1*stride + x0*4
	i11 := y1*stride + x1*4

	w00 := (1 - dx) * (1 - dy)
	w10 := dx * (1 - dy)
	w01 := (1 - dx) * dy
	w11 := dx * dy

	fr := float64(pix[i00])*w00 + float64(pix[i10])*w10 + float64(pix[i01])*w01 + float64(pix[i11])*w11
	fg := float64(pix[i00+1])*w00 + float64(pix[i10+1])*w10 + float64(pix[i01+1])*w01 + float64(pix[i11+1])*w11
	fb := float64(pix[i00+2])*w00 + float64(pix[i10+2])*w10 + float64(pix[i01+2])*w01 + float64(pix[i11+2])*w11
	fa := float64(pix[i00+3])*w00 + float64(pix[i10+3])*w10 + float64(pix[i01+3])*w01 + float64(pix[i11+3])*w11

	return color.RGBA{
		R: uint8(fr + 0.5),
		G: uint8(fg + 0.5),
		B: uint8(fb + 0.5),
		A: uint8(fa + 0.5),
	}
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
