// Command endesga opens a window and spins a triangle until the window is
// closed or escape is pressed.
//
//	go run ./cmd/endesga
package main

import (
	"fmt"
	"os"
	"runtime"

	"github.com/go-gl/glfw/v3.3/glfw"

	"github.com/go-theft-auto/endesga"
	"github.com/go-theft-auto/endesga/backend/opengl"
)

func init() {
	// GLFW must run on the main thread.
	runtime.LockOSThread()
}

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run() error {
	if err := glfw.Init(); err != nil {
		return fmt.Errorf("glfw init: %w", err)
	}
	defer glfw.Terminate()

	window, err := opengl.NewWindow(endesga.DefaultWindowConfig())
	if err != nil {
		return err
	}
	defer window.Destroy()
	window.OnResize()

	renderer, err := opengl.NewSceneRenderer(endesga.Triangle())
	if err != nil {
		return err
	}
	defer renderer.Delete()

	return endesga.New(window, renderer).Run()
}
