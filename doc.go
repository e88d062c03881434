/*
Package endesga is a minimal real-time rendering demo: one window, one
OpenGL 4.5 core-profile context, one shader program and a single spinning
triangle.

# Overview

The root package holds everything that does not need a GPU: the vertex
layout, the camera, the fixed-step clock, window configuration, and the
frame loop. The frame loop talks to the platform through two small
interfaces, [Window] and [Renderer], so it can be driven by the OpenGL
backend in backend/opengl or by a test double.

# Quick Start

	if err := glfw.Init(); err != nil {
	    return err
	}
	defer glfw.Terminate()

	window, _ := opengl.NewWindow(endesga.DefaultWindowConfig())
	renderer, _ := opengl.NewSceneRenderer(endesga.Triangle())

	app := endesga.New(window, renderer)
	return app.Run()

# Frame

Each call to [App.Frame] drains pending events, advances the clock by a
fixed 1/60 s, uploads the projection-view matrix, draws, and presents.
A quit event or the escape key ends the loop before anything is drawn
on that iteration.

# GPU resources

Buffers and programs are owned by the backend and released with their
Delete methods. The GL context goes away with the window.
*/
package endesga
