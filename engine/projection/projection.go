// package projection implements the inverse equirectangular mapping from a
// screen coordinate to a texture-space sample position on a cropped panorama.
//
// The same mapping runs per-fragment in the renderer's WGSL shader; this CPU
// form is the reference for tests and for offline rendering, and the two must
// stay in lockstep.
package projection

import (
	"math"

	"github.com/Carmen-Shannon/pano-go/engine/metadata"
)

// Map computes the texture-space sample position for one screen coordinate.
//
// x and y are normalized device coordinates in [-1, 1] before aspect
// correction, y up. aspect is the viewport height/width ratio. The view is
// described by yaw, pitch, roll, zoom; meta places the crop on the sphere.
//
// The longitude is derived with atan2 to keep correct quadrant behavior
// across the full sphere and wrapped into the half-open interval [-pi, pi).
// The vertical crop offset is 1 - CropTop - HeightRatio because texture-space
// Y runs bottom-up while the metadata's "top" convention runs top-down.
//
// Parameters:
//   - x, y: the screen coordinate in NDC
//   - aspect: viewport height divided by width
//   - yaw, pitch, roll, zoom: the camera parameters
//   - meta: the crop descriptor
//
// Returns:
//   - u, v: the sample position in crop texture space; v=0 is the image bottom
//   - ok: false when the position has no valid sample (v outside [0, 1]);
//     u out of range still samples, with clamp-to-edge addressing
func Map(x, y, aspect float32, yaw, pitch, roll, zoom float32, meta metadata.PanoMeta) (u, v float32, ok bool) {
	yc := float64(y) * float64(aspect)
	xc := float64(x)

	sinr, cosr := math.Sincos(float64(roll))
	rotX := xc*cosr - yc*sinr
	rotY := xc*sinr + yc*cosr

	sinp, cosp := math.Sincos(float64(pitch))
	z := float64(zoom)
	a := z*cosp - rotY*sinp
	root := math.Sqrt(rotX*rotX + a*a)

	lambda := wrapLongitude(math.Atan2(rotX, a) + float64(yaw))
	phi := math.Atan((rotY*cosp + z*sinp) / root)

	coordX := 0.5 + lambda/(2*math.Pi)
	coordY := 0.5 + phi/math.Pi

	u = float32((coordX - float64(meta.CropLeft)) / float64(meta.WidthRatio))
	v = float32((coordY - float64(1-meta.CropTop-meta.HeightRatio)) / float64(meta.HeightRatio))
	ok = v >= 0 && v <= 1
	return u, v, ok
}

// wrapLongitude wraps an angle into [-pi, pi). The interval is half-open:
// inputs landing exactly on +pi wrap to -pi.
func wrapLongitude(lambda float64) float64 {
	m := math.Mod(lambda+math.Pi, 2*math.Pi)
	if m < 0 {
		m += 2 * math.Pi
	}
	return m - math.Pi
}
