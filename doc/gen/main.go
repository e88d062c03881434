// Command gen renders the scene in a hidden window, captures framebuffer
// pixels, and saves a JPEG screenshot to doc/imgs/.
//
// Usage:
//
//	go run ./doc/gen/ -frames 15
package main

import (
	"flag"
	"fmt"
	"image"
	"image/jpeg"
	"os"
	"path/filepath"
	"runtime"

	"github.com/go-gl/gl/v4.5-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"

	"github.com/go-theft-auto/endesga"
	"github.com/go-theft-auto/endesga/backend/opengl"
)

func init() {
	runtime.LockOSThread()
}

func main() {
	frames := flag.Int("frames", 15, "frames to render before capturing")
	width := flag.Int("width", 800, "image width")
	height := flag.Int("height", 600, "image height")
	out := flag.String("out", filepath.Join("doc", "imgs", "triangle.jpg"), "output path")
	flag.Parse()

	if err := run(*frames, *width, *height, *out); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(frames, width, height int, out string) error {
	if err := glfw.Init(); err != nil {
		return fmt.Errorf("glfw init: %w", err)
	}
	defer glfw.Terminate()

	cfg := endesga.DefaultWindowConfig()
	cfg.Title = "screenshot-gen"
	cfg.Width, cfg.Height = width, height
	cfg.Visible = false
	cfg.Centered = false
	cfg.Resizable = false
	cfg.SwapInterval = 0

	window, err := opengl.NewWindow(cfg)
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

	// The last frame is drawn but not presented so the back buffer can be read.
	if frames > 1 {
		app := endesga.New(window, renderer, endesga.WithMaxFrames(frames-1))
		if err := app.Run(); err != nil {
			return err
		}
	}
	cam := endesga.DefaultCamera()
	renderer.UploadCamera(cam.ViewProjection(float32(frames)*endesga.DefaultStep, window.Aspect()))
	renderer.Draw()
	if err := window.Err(); err != nil {
		return err
	}

	fbw, fbh := window.FramebufferSize()
	if err := os.MkdirAll(filepath.Dir(out), 0o755); err != nil {
		return fmt.Errorf("mkdir: %w", err)
	}
	if err := capture(fbw, fbh, out); err != nil {
		return fmt.Errorf("capture: %w", err)
	}

	fmt.Printf("  %s (%dx%d)\n", out, fbw, fbh)
	return nil
}

func capture(width, height int, path string) (err error) {
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	gl.ReadBuffer(gl.BACK)
	gl.ReadPixels(0, 0, int32(width), int32(height), gl.RGBA, gl.UNSIGNED_BYTE, gl.Ptr(img.Pix))
	flipRows(img)

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
	}()
	return jpeg.Encode(f, img, &jpeg.Options{Quality: 90})
}

// flipRows mirrors img vertically. GL rows start at the bottom.
func flipRows(img *image.RGBA) {
	h := img.Rect.Dy()
	for top, bot := 0, h-1; top < bot; top, bot = top+1, bot-1 {
		a := img.Pix[top*img.Stride : (top+1)*img.Stride]
		b := img.Pix[bot*img.Stride : (bot+1)*img.Stride]
		for i := range a {
			a[i], b[i] = b[i], a[i]
		}
	}
}
