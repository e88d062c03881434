package endesga

import "github.com/go-gl/mathgl/mgl32"

// Window is the platform side of the frame loop.
type Window interface {
	// PollEvents pumps the platform queue and returns pending events.
	PollEvents() []Event
	// OnResize updates the viewport to the current drawable size.
	OnResize()
	// Aspect returns drawable width / height.
	Aspect() float32
	// EndFrame presents the back buffer.
	EndFrame()
	// Err returns a fatal driver diagnostic recorded since creation, if any.
	Err() error
}

// Renderer draws the scene.
type Renderer interface {
	UploadCamera(viewProjection mgl32.Mat4)
	Draw()
}

// App runs the frame loop.
type App struct {
	window    Window
	renderer  Renderer
	camera    Camera
	clock     *FixedClock
	maxFrames int
	frames    int
}

// AppOption configures an App.
type AppOption func(*App)

// WithCamera sets the camera.
func WithCamera(c Camera) AppOption {
	return func(a *App) { a.camera = c }
}

// WithClock sets the clock.
func WithClock(c *FixedClock) AppOption {
	return func(a *App) { a.clock = c }
}

// WithMaxFrames stops Run after n drawn frames. Zero means no limit.
func WithMaxFrames(n int) AppOption {
	return func(a *App) { a.maxFrames = n }
}

// New creates an App.
func New(window Window, renderer Renderer, opts ...AppOption) *App {
	a := &App{
		window:   window,
		renderer: renderer,
		camera:   DefaultCamera(),
		clock:    NewFixedClock(DefaultStep),
	}

	for _, opt := range opts {
		opt(a)
	}

	return a
}

// Time returns the current logical time in seconds.
func (a *App) Time() float32 { return a.clock.Time }

// Frames returns the number of frames drawn so far.
func (a *App) Frames() int { return a.frames }

// Frame runs one iteration of the loop.
// It returns false when the loop should stop. Nothing is drawn on an
// iteration that sees a quit event, the escape key, or a pending window
// error.
func (a *App) Frame() (bool, error) {
	// A fatal diagnostic raised during setup stops the loop before drawing.
	if err := a.window.Err(); err != nil {
		return false, err
	}

	for _, ev := range a.window.PollEvents() {
		switch ev.Kind {
		case EventQuit:
			return false, nil
		case EventResize:
			a.window.OnResize()
		case EventKeyDown:
			if ev.Key == KeyEscape {
				return false, nil
			}
		}
	}

	t := a.clock.Advance()
	a.renderer.UploadCamera(a.camera.ViewProjection(t, a.window.Aspect()))
	a.renderer.Draw()
	a.window.EndFrame()
	a.frames++

	if err := a.window.Err(); err != nil {
		return false, err
	}
	if a.maxFrames > 0 && a.frames >= a.maxFrames {
		return false, nil
	}
	return true, nil
}

// Run calls Frame until it reports the loop is done.
func (a *App) Run() error {
	for {
		running, err := a.Frame()
		if err != nil {
			return err
		}
		if !running {
			return nil
		}
	}
}
