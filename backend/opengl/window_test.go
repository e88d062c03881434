package opengl

import (
	"testing"

	"github.com/go-gl/glfw/v3.3/glfw"

	"github.com/go-theft-auto/endesga"
)

func TestWindowCallbacksQueueEvents(t *testing.T) {
	w := &Window{}

	w.framebufferSizeCallback(nil, 640, 480)
	w.keyCallback(nil, glfw.KeyA, 0, glfw.Press, 0)
	w.keyCallback(nil, glfw.KeyEscape, 0, glfw.Release, 0)
	w.keyCallback(nil, glfw.KeyEscape, 0, glfw.Repeat, 0)
	w.keyCallback(nil, glfw.KeyEscape, 0, glfw.Press, 0)
	w.closeCallback(nil)

	want := []endesga.Event{
		endesga.ResizeEvent(640, 480),
		endesga.KeyDownEvent(endesga.KeyNone),
		endesga.KeyDownEvent(endesga.KeyEscape),
		endesga.QuitEvent(),
	}

	if len(w.events) != len(want) {
		t.Fatalf("expected %d events, got %d: %+v", len(want), len(w.events), w.events)
	}
	for i := range want {
		if w.events[i] != want[i] {
			t.Errorf("event %d = %+v, want %+v", i, w.events[i], want[i])
		}
	}
}

func TestGLFWKeyToKey(t *testing.T) {
	tests := []struct {
		key  glfw.Key
		want endesga.Key
	}{
		{glfw.KeyEscape, endesga.KeyEscape},
		{glfw.KeyEnter, endesga.KeyNone},
		{glfw.KeySpace, endesga.KeyNone},
		{glfw.KeyUnknown, endesga.KeyNone},
	}

	for _, tt := range tests {
		if got := glfwKeyToKey(tt.key); got != tt.want {
			t.Errorf("glfwKeyToKey(%v) = %v, want %v", tt.key, got, tt.want)
		}
	}
}

func TestWindowErrReportsDebugError(t *testing.T) {
	w := &Window{debug: &debugHandler{}}
	if w.Err() != nil {
		t.Fatalf("expected no error, got %v", w.Err())
	}

	w.debug.record(ErrUnknownDebugEnum)
	if w.Err() != ErrUnknownDebugEnum {
		t.Errorf("Err() = %v, want %v", w.Err(), ErrUnknownDebugEnum)
	}
}
