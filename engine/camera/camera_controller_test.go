package camera

import (
	"math"
	"testing"
)

func approx(a, b float32) bool {
	return math.Abs(float64(a)-float64(b)) < 1e-5
}

func TestControllerKeyRates(t *testing.T) {
	tests := []struct {
		name string
		dir  Direction
		rate func(View) float32
		want float32
	}{
		{"yaw negative", DirectionYawNeg, View.YawRate, -DefaultAngularStep},
		{"yaw positive", DirectionYawPos, View.YawRate, DefaultAngularStep},
		{"pitch negative", DirectionPitchNeg, View.PitchRate, -DefaultAngularStep},
		{"pitch positive", DirectionPitchPos, View.PitchRate, DefaultAngularStep},
		{"zoom in", DirectionZoomIn, View.ZoomRate, DefaultZoomInRate},
		{"zoom out", DirectionZoomOut, View.ZoomRate, DefaultZoomOutRate},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := NewView()
			c := NewController(v)

			c.Apply(Event{Kind: EventKeyDown, Dir: tt.dir})
			if got := tt.rate(v); !approx(got, tt.want) {
				t.Errorf("rate after key down = %v, want %v", got, tt.want)
			}

			// Auto-repeat delivers the same down event again; the rate must
			// not accumulate.
			c.Apply(Event{Kind: EventKeyDown, Dir: tt.dir})
			if got := tt.rate(v); !approx(got, tt.want) {
				t.Errorf("rate after repeated key down = %v, want %v", got, tt.want)
			}

			c.Apply(Event{Kind: EventKeyUp, Dir: tt.dir})
			neutral := float32(0)
			if tt.dir == DirectionZoomIn || tt.dir == DirectionZoomOut {
				neutral = 1
			}
			if got := tt.rate(v); !approx(got, neutral) {
				t.Errorf("rate after key up = %v, want %v", got, neutral)
			}
		})
	}
}

func TestControllerDragRecomputesFromAnchor(t *testing.T) {
	v := NewView(WithYaw(0.5), WithPitch(0.1))
	c := NewController(v)

	c.Apply(Event{Kind: EventPointerDown, X: 0.2, Y: -0.1})
	if !c.Dragging() {
		t.Fatal("Dragging() = false after pointer down")
	}

	c.Apply(Event{Kind: EventPointerMove, X: 0.4, Y: 0.3})

	zoom := v.Zoom()
	wantYaw := float32(math.Atan(0.2)-math.Atan(0.4))/zoom + 0.5
	wantPitch := float32(math.Atan(0.3)-math.Atan(-0.1))/zoom + 0.1
	if !approx(v.Yaw(), wantYaw) {
		t.Errorf("Yaw() = %v, want %v", v.Yaw(), wantYaw)
	}
	if !approx(v.Pitch(), wantPitch) {
		t.Errorf("Pitch() = %v, want %v", v.Pitch(), wantPitch)
	}

	// A second move is computed from the same anchor, not from the previous
	// move, so replaying the anchor position restores the original view.
	c.Apply(Event{Kind: EventPointerMove, X: 0.2, Y: -0.1})
	if !approx(v.Yaw(), 0.5) || !approx(v.Pitch(), 0.1) {
		t.Errorf("view after returning to anchor = (%v, %v), want (0.5, 0.1)", v.Yaw(), v.Pitch())
	}

	c.Apply(Event{Kind: EventPointerUp})
	if c.Dragging() {
		t.Error("Dragging() = true after pointer up")
	}
}

func TestControllerDragWithoutMoveIsNoOp(t *testing.T) {
	v := NewView(WithYaw(0.3), WithPitch(-0.2))
	c := NewController(v)

	c.Apply(Event{Kind: EventPointerDown, X: 0.6, Y: 0.4})
	c.Apply(Event{Kind: EventPointerUp, X: 0.6, Y: 0.4})

	if !approx(v.Yaw(), 0.3) || !approx(v.Pitch(), -0.2) {
		t.Errorf("click without move mutated the view: (%v, %v)", v.Yaw(), v.Pitch())
	}
}

func TestControllerMoveWithoutSessionIsNoOp(t *testing.T) {
	v := NewView(WithYaw(1.0))
	c := NewController(v)

	c.Apply(Event{Kind: EventPointerMove, X: 0.5, Y: 0.5})
	if !approx(v.Yaw(), 1.0) || !approx(v.Pitch(), 0) {
		t.Errorf("view mutated by move without session: (%v, %v)", v.Yaw(), v.Pitch())
	}
}

func TestControllerFocusLostClosesDrag(t *testing.T) {
	v := NewView(WithYaw(0.7))
	c := NewController(v)

	c.Apply(Event{Kind: EventPointerDown, X: 0, Y: 0})
	c.Apply(Event{Kind: EventFocusLost})
	if c.Dragging() {
		t.Fatal("Dragging() = true after focus lost")
	}
	if !approx(v.Yaw(), 0.7) {
		t.Errorf("focus lost mutated yaw: %v", v.Yaw())
	}

	// Moves after focus loss must be ignored until a new press.
	c.Apply(Event{Kind: EventPointerMove, X: 0.9, Y: 0.9})
	if !approx(v.Yaw(), 0.7) {
		t.Errorf("move after focus lost mutated yaw: %v", v.Yaw())
	}
}

func TestControllerDragSensitivityScalesWithZoom(t *testing.T) {
	v := NewView(WithZoom(2))
	c := NewController(v)

	c.Apply(Event{Kind: EventPointerDown, X: 0, Y: 0})
	c.Apply(Event{Kind: EventPointerMove, X: 0.5, Y: 0})

	want := float32(-math.Atan(0.5)) / 2
	if !approx(v.Yaw(), want) {
		t.Errorf("Yaw() at zoom 2 = %v, want %v", v.Yaw(), want)
	}
}

func TestControllerWheelZoom(t *testing.T) {
	tests := []struct {
		name  string
		kind  EventKind
		delta float32
		want  float32
	}{
		{"line up", EventWheelLine, 1, 1 + DefaultWheelLineFactor},
		{"line down", EventWheelLine, -2, 1 - 2*DefaultWheelLineFactor},
		{"pixel up", EventWheelPixel, 10, 1 + 10*DefaultWheelPixelFactor},
		{"pixel down", EventWheelPixel, -5, 1 - 5*DefaultWheelPixelFactor},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := NewView()
			c := NewController(v)
			c.Apply(Event{Kind: tt.kind, Delta: tt.delta})
			if !approx(v.Zoom(), tt.want) {
				t.Errorf("Zoom() = %v, want %v", v.Zoom(), tt.want)
			}
		})
	}
}

func TestNormalizePointer(t *testing.T) {
	tests := []struct {
		name   string
		px, py float64
		w, h   int
		wantX  float32
		wantY  float32
	}{
		{"center", 640, 360, 1280, 720, 0, 0},
		{"top left", 0, 0, 1280, 720, -1, 720.0 / 1280.0},
		{"bottom right", 1280, 720, 1280, 720, 1, -720.0 / 1280.0},
		{"square window", 100, 0, 200, 200, 0, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			x, y := NormalizePointer(tt.px, tt.py, tt.w, tt.h)
			if !approx(x, tt.wantX) || !approx(y, tt.wantY) {
				t.Errorf("NormalizePointer(%v, %v) = (%v, %v), want (%v, %v)",
					tt.px, tt.py, x, y, tt.wantX, tt.wantY)
			}
		})
	}
}
