package common

import (
	"testing"

	"github.com/go-gl/glfw/v3.3/glfw"
)

func TestKeyCodesMatchGLFW(t *testing.T) {
	tests := []struct {
		name string
		code uint32
		key  glfw.Key
	}{
		{"escape", KeyEsc, glfw.KeyEscape},
		{"right arrow", KeyRight, glfw.KeyRight},
		{"left arrow", KeyLeft, glfw.KeyLeft},
		{"down arrow", KeyDown, glfw.KeyDown},
		{"up arrow", KeyUp, glfw.KeyUp},
		{"page up", KeyPageUp, glfw.KeyPageUp},
		{"page down", KeyPageDown, glfw.KeyPageDown},
	}

	for _, tt := range tests {
		if tt.code != uint32(tt.key) {
			t.Errorf("%s = %d, GLFW reports %d", tt.name, tt.code, uint32(tt.key))
		}
	}
}
