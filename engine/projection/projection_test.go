package projection

import (
	"image"
	"image/color"
	"math"
	"testing"

	"github.com/Carmen-Shannon/pano-go/engine/metadata"
)

func approx(a, b float32) bool {
	return math.Abs(float64(a)-float64(b)) < 1e-5
}

func TestMapCenterOfDefaultView(t *testing.T) {
	u, v, ok := Map(0, 0, 9.0/16.0, 0, 0, 0, 1, metadata.FullSphere())
	if !ok {
		t.Fatal("center of default view reported no sample")
	}
	if !approx(u, 0.5) || !approx(v, 0.5) {
		t.Errorf("Map(center) = (%v, %v), want (0.5, 0.5)", u, v)
	}
}

func TestMapYawShiftsLongitude(t *testing.T) {
	yaw := float32(0.3)
	u, _, _ := Map(0, 0, 1, yaw, 0, 0, 1, metadata.FullSphere())
	want := float32(0.5 + 0.3/(2*math.Pi))
	if !approx(u, want) {
		t.Errorf("Map(yaw=0.3) u = %v, want %v", u, want)
	}
}

func TestMapPitchShiftsLatitude(t *testing.T) {
	pitch := float32(0.3)
	_, v, ok := Map(0, 0, 1, 0, pitch, 0, 1, metadata.FullSphere())
	if !ok {
		t.Fatal("pitched center reported no sample")
	}
	want := float32(0.5 + 0.3/math.Pi)
	if !approx(v, want) {
		t.Errorf("Map(pitch=0.3) v = %v, want %v", v, want)
	}
}

func TestMapLongitudeWrapsHalfOpen(t *testing.T) {
	tests := []struct {
		name string
		yaw  float32
		want float32
	}{
		{"exactly pi wraps to zero", math.Pi, 0},
		{"full turn is identity", 2 * math.Pi, 0.5},
		{"pi plus full turn", 3 * math.Pi, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			u, _, _ := Map(0, 0, 1, tt.yaw, 0, 0, 1, metadata.FullSphere())
			if !approx(u, tt.want) {
				t.Errorf("Map(yaw=%v) u = %v, want %v", tt.yaw, u, tt.want)
			}
		})
	}
}

func TestWrapLongitudeInterval(t *testing.T) {
	// The interval is half-open: both exact boundaries land on -pi, and every
	// other input stays strictly inside [-pi, pi). float32-rounded boundary
	// values widen past the exact boundary and must still wrap into range.
	if got := wrapLongitude(math.Pi); got != -math.Pi {
		t.Errorf("wrapLongitude(pi) = %v, want -pi", got)
	}
	if got := wrapLongitude(-math.Pi); got != -math.Pi {
		t.Errorf("wrapLongitude(-pi) = %v, want -pi", got)
	}

	inputs := []float64{
		0,
		2 * math.Pi,
		-2 * math.Pi,
		100 * math.Pi,
		-100 * math.Pi,
		float64(float32(math.Pi)),
		float64(float32(-math.Pi)),
	}
	for _, lambda := range inputs {
		got := wrapLongitude(lambda)
		if got < -math.Pi || got >= math.Pi {
			t.Errorf("wrapLongitude(%v) = %v, outside [-pi, pi)", lambda, got)
		}
	}
}

func TestMapRollRotatesScreenAxes(t *testing.T) {
	// Rolling the view a quarter turn maps the screen x axis onto y: the
	// sample for (0.5, 0) rolled must match the unrolled sample for (0, 0.5).
	uRolled, vRolled, _ := Map(0.5, 0, 1, 0, 0, math.Pi/2, 1, metadata.FullSphere())
	uUp, vUp, _ := Map(0, 0.5, 1, 0, 0, 0, 1, metadata.FullSphere())
	if !approx(uRolled, uUp) || !approx(vRolled, vUp) {
		t.Errorf("rolled (0.5,0) = (%v, %v), unrolled (0,0.5) = (%v, %v)",
			uRolled, vRolled, uUp, vUp)
	}
}

func TestMapZoomNarrowsView(t *testing.T) {
	uWide, _, _ := Map(0.5, 0, 1, 0, 0, 0, 1, metadata.FullSphere())
	uNarrow, _, _ := Map(0.5, 0, 1, 0, 0, 0, 2, metadata.FullSphere())
	if math.Abs(float64(uNarrow)-0.5) >= math.Abs(float64(uWide)-0.5) {
		t.Errorf("zoom 2 u = %v not closer to center than zoom 1 u = %v", uNarrow, uWide)
	}
}

func TestMapCroppedPanorama(t *testing.T) {
	// A horizon strip: full longitude, 31.66% of the latitude span, starting
	// 34.1% down from the sphere top.
	meta := metadata.PanoMeta{
		WidthRatio:  1.0,
		HeightRatio: 0.3166,
		CropLeft:    0.0,
		CropTop:     0.3410,
	}

	u, v, ok := Map(0, 0, 9.0/16.0, 0, 0, 0, 1, meta)
	if !ok {
		t.Fatal("view center missed a horizon-centered crop")
	}
	if !approx(u, 0.5) {
		t.Errorf("u = %v, want 0.5", u)
	}
	wantV := float32((0.5 - (1 - 0.3410 - 0.3166)) / 0.3166)
	if !approx(v, wantV) {
		t.Errorf("v = %v, want %v", v, wantV)
	}
	if v <= 0 || v >= 1 {
		t.Errorf("v = %v, want strictly inside (0, 1)", v)
	}

	// Looking far enough down leaves the crop's latitude band.
	_, _, ok = Map(0, -1, 9.0/16.0, 0, 0, 0, 1, meta)
	if ok {
		t.Error("bottom screen edge should miss the crop")
	}
}

func TestSampleClampCorners(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 2, 2))
	topLeft := color.RGBA{255, 0, 0, 255}
	topRight := color.RGBA{0, 255, 0, 255}
	bottomLeft := color.RGBA{0, 0, 255, 255}
	bottomRight := color.RGBA{255, 255, 0, 255}
	img.SetRGBA(0, 0, topLeft)
	img.SetRGBA(1, 0, topRight)
	img.SetRGBA(0, 1, bottomLeft)
	img.SetRGBA(1, 1, bottomRight)

	tests := []struct {
		name string
		u, v float64
		want color.RGBA
	}{
		// v = 1 is the image top (row 0), v = 0 the bottom.
		{"top left", 0, 1, topLeft},
		{"top right", 1, 1, topRight},
		{"bottom left", 0, 0, bottomLeft},
		{"bottom right", 1, 0, bottomRight},
		{"u clamps low", -3, 1, topLeft},
		{"u clamps high", 4, 0, bottomRight},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := SampleClamp(img, tt.u, tt.v)
			if got != tt.want {
				t.Errorf("SampleClamp(%v, %v) = %v, want %v", tt.u, tt.v, got, tt.want)
			}
		})
	}
}

func TestSampleClampBilinearMidpoint(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 2, 2))
	img.SetRGBA(0, 0, color.RGBA{0, 0, 0, 255})
	img.SetRGBA(1, 0, color.RGBA{100, 0, 0, 255})
	img.SetRGBA(0, 1, color.RGBA{0, 100, 0, 255})
	img.SetRGBA(1, 1, color.RGBA{100, 100, 0, 255})

	got := SampleClamp(img, 0.5, 0.5)
	want := color.RGBA{50, 50, 0, 255}
	if got != want {
		t.Errorf("SampleClamp(0.5, 0.5) = %v, want %v", got, want)
	}
}

func TestRenderFrameUniformSource(t *testing.T) {
	src := image.NewRGBA(image.Rect(0, 0, 8, 4))
	fill := color.RGBA{10, 20, 30, 255}
	for y := 0; y < 4; y++ {
		for x := 0; x < 8; x++ {
			src.SetRGBA(x, y, fill)
		}
	}

	r := NewFrameRenderer(WithWorkers(2))
	frame := r.RenderFrame(src, metadata.FullSphere(), 0, 0, 0, 1, 16, 8)
	if frame.Rect.Dx() != 16 || frame.Rect.Dy() != 8 {
		t.Fatalf("frame size = %dx%d, want 16x8", frame.Rect.Dx(), frame.Rect.Dy())
	}

	// With a full-sphere source every screen pixel has a valid sample, so
	// the whole frame takes the source color.
	for y := 0; y < 8; y++ {
		for x := 0; x < 16; x++ {
			if got := frame.RGBAAt(x, y); got != fill {
				t.Fatalf("frame(%d, %d) = %v, want %v", x, y, got, fill)
			}
		}
	}

	// A second frame reuses the same pool and must come out identical.
	again := r.RenderFrame(src, metadata.FullSphere(), 0, 0, 0, 1, 16, 8)
	for y := 0; y < 8; y++ {
		for x := 0; x < 16; x++ {
			if got := again.RGBAAt(x, y); got != fill {
				t.Fatalf("second frame(%d, %d) = %v, want %v", x, y, got, fill)
			}
		}
	}
}

func TestRenderFrameBlackOutsideCrop(t *testing.T) {
	src := image.NewRGBA(image.Rect(0, 0, 8, 4))
	fill := color.RGBA{200, 200, 200, 255}
	for y := 0; y < 4; y++ {
		for x := 0; x < 8; x++ {
			src.SetRGBA(x, y, fill)
		}
	}

	// A thin horizon strip: the top and bottom of the output frame look
	// outside the crop's latitude band and must come out black.
	meta := metadata.PanoMeta{WidthRatio: 1, HeightRatio: 0.1, CropLeft: 0, CropTop: 0.45}
	frame := NewFrameRenderer(WithWorkers(2)).RenderFrame(src, meta, 0, 0, 0, 1, 16, 16)

	black := color.RGBA{0, 0, 0, 255}
	if got := frame.RGBAAt(8, 0); got != black {
		t.Errorf("top edge = %v, want black", got)
	}
	if got := frame.RGBAAt(8, 15); got != black {
		t.Errorf("bottom edge = %v, want black", got)
	}
	if got := frame.RGBAAt(8, 8); got != fill {
		t.Errorf("center = %v, want %v", got, fill)
	}
}
