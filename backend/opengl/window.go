package opengl

import (
	"fmt"

	"github.com/go-gl/gl/v4.5-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"

	"github.com/go-theft-auto/endesga"
)

// Window owns a GLFW window and its OpenGL context.
// glfw.Init must have been called.
type Window struct {
	window *glfw.Window
	events []endesga.Event
	debug  *debugHandler
}

// NewWindow creates the window, makes its context current, loads GL entry
// points, and installs the fixed GL state.
func NewWindow(cfg endesga.WindowConfig) (*Window, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	glfw.DefaultWindowHints()
	glfw.WindowHint(glfw.ContextVersionMajor, cfg.GLMajor)
	glfw.WindowHint(glfw.ContextVersionMinor, cfg.GLMinor)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)
	glfw.WindowHint(glfw.OpenGLDebugContext, glfwBool(cfg.Debug))
	glfw.WindowHint(glfw.SRGBCapable, glfwBool(cfg.SRGB))
	glfw.WindowHint(glfw.StencilBits, cfg.StencilBits)
	glfw.WindowHint(glfw.DepthBits, cfg.DepthBits)
	glfw.WindowHint(glfw.Resizable, glfwBool(cfg.Resizable))
	glfw.WindowHint(glfw.Visible, glfwBool(cfg.Visible))

	window, err := glfw.CreateWindow(cfg.Width, cfg.Height, cfg.Title, nil, nil)
	if err != nil {
		return nil, fmt.Errorf("create window: %w", err)
	}
	if cfg.Centered {
		center(window, cfg.Width, cfg.Height)
	}

	window.MakeContextCurrent()
	glfw.SwapInterval(cfg.SwapInterval)

	if err := gl.InitWithProcAddrFunc(glfw.GetProcAddress); err != nil {
		window.Destroy()
		return nil, fmt.Errorf("gl init: %w", err)
	}

	w := &Window{
		window: window,
		debug:  &debugHandler{out: cfg.Output()},
	}

	if cfg.Debug {
		w.debug.install()
	}
	setupState(cfg)

	window.SetCloseCallback(w.closeCallback)
	window.SetFramebufferSizeCallback(w.framebufferSizeCallback)
	window.SetKeyCallback(w.keyCallback)

	return w, nil
}

func setupState(cfg endesga.WindowConfig) {
	if cfg.SRGB {
		gl.Enable(gl.FRAMEBUFFER_SRGB)
	}
	gl.Enable(gl.DEPTH_TEST)

	gl.FrontFace(gl.CCW)
	gl.CullFace(gl.BACK)
	if cfg.CullFaces {
		gl.Enable(gl.CULL_FACE)
	}
}

func center(window *glfw.Window, width, height int) {
	monitor := glfw.GetPrimaryMonitor()
	if monitor == nil {
		return
	}
	mode := monitor.GetVideoMode()
	if mode == nil {
		return
	}
	window.SetPos((mode.Width-width)/2, (mode.Height-height)/2)
}

func glfwBool(b bool) int {
	if b {
		return glfw.True
	}
	return glfw.False
}

// PollEvents pumps GLFW and returns the events queued since the last call.
func (w *Window) PollEvents() []endesga.Event {
	w.events = w.events[:0]
	glfw.PollEvents()
	return w.events
}

// OnResize sets the viewport to the current framebuffer size.
func (w *Window) OnResize() {
	width, height := w.window.GetFramebufferSize()
	gl.Viewport(0, 0, int32(width), int32(height))
}

// EndFrame swaps the back buffer.
func (w *Window) EndFrame() {
	w.window.SwapBuffers()
}

// Aspect returns framebuffer width / height, or 1 while the height is zero.
func (w *Window) Aspect() float32 {
	width, height := w.window.GetFramebufferSize()
	if height == 0 {
		return 1
	}
	return float32(width) / float32(height)
}

// FramebufferSize returns the drawable size in pixels.
func (w *Window) FramebufferSize() (int, int) {
	return w.window.GetFramebufferSize()
}

// Err returns the first fatal debug message or unknown debug enum seen.
func (w *Window) Err() error {
	return w.debug.err
}

// Destroy closes the window and its context.
func (w *Window) Destroy() {
	w.window.Destroy()
}

func (w *Window) closeCallback(_ *glfw.Window) {
	w.events = append(w.events, endesga.QuitEvent())
}

func (w *Window) framebufferSizeCallback(_ *glfw.Window, width, height int) {
	w.events = append(w.events, endesga.ResizeEvent(width, height))
}

func (w *Window) keyCallback(_ *glfw.Window, key glfw.Key, _ int, action glfw.Action, _ glfw.ModifierKey) {
	if action != glfw.Press {
		return
	}
	w.events = append(w.events, endesga.KeyDownEvent(glfwKeyToKey(key)))
}

// glfwKeyToKey maps GLFW keys to the keys the frame loop knows.
func glfwKeyToKey(key glfw.Key) endesga.Key {
	switch key {
	case glfw.KeyEscape:
		return endesga.KeyEscape
	default:
		return endesga.KeyNone
	}
}
