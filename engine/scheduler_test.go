package engine

import (
	"math"
	"testing"

	"github.com/Carmen-Shannon/pano-go/engine/camera"
)

func approx(a, b float32) bool {
	return math.Abs(float64(a)-float64(b)) < 1e-6
}

func TestSchedulerIdle(t *testing.T) {
	tests := []struct {
		name      string
		yawRate   float32
		pitchRate float32
		zoomRate  float32
		want      bool
	}{
		{"fresh view", 0, 0, 1, true},
		{"yaw active", 0.01, 0, 1, false},
		{"pitch active", 0, -0.01, 1, false},
		{"zoom in active", 0, 0, 0.99, false},
		{"zoom out active", 0, 0, 1.01, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := camera.NewView()
			v.SetYawRate(tt.yawRate)
			v.SetPitchRate(tt.pitchRate)
			v.SetZoomRate(tt.zoomRate)

			s := NewScheduler(v)
			if got := s.Idle(); got != tt.want {
				t.Errorf("Idle() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestSchedulerTickIntegratesRates(t *testing.T) {
	v := camera.NewView(camera.WithYaw(1), camera.WithPitch(0.5), camera.WithZoom(2))
	v.SetYawRate(0.1)
	v.SetPitchRate(-0.2)
	v.SetZoomRate(0.5)

	s := NewScheduler(v)
	s.Tick()

	if !approx(v.Yaw(), 1.1) {
		t.Errorf("Yaw() = %v, want 1.1", v.Yaw())
	}
	if !approx(v.Pitch(), 0.3) {
		t.Errorf("Pitch() = %v, want 0.3", v.Pitch())
	}
	if !approx(v.Zoom(), 1) {
		t.Errorf("Zoom() = %v, want 1", v.Zoom())
	}

	// Angles add per tick, zoom compounds.
	s.Tick()
	if !approx(v.Yaw(), 1.2) || !approx(v.Pitch(), 0.1) || !approx(v.Zoom(), 0.5) {
		t.Errorf("after two ticks: yaw=%v pitch=%v zoom=%v, want 1.2 0.1 0.5",
			v.Yaw(), v.Pitch(), v.Zoom())
	}
}

func TestSchedulerIdleViewUnchangedByTick(t *testing.T) {
	v := camera.NewView(camera.WithYaw(0.4))
	s := NewScheduler(v)

	s.Tick()
	if !approx(v.Yaw(), 0.4) || !approx(v.Pitch(), 0) || !approx(v.Zoom(), 1) {
		t.Errorf("idle tick mutated the view: yaw=%v pitch=%v zoom=%v",
			v.Yaw(), v.Pitch(), v.Zoom())
	}
}
