package endesga_test

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/go-theft-auto/endesga"
)

func TestViewProjectionAtOrigin(t *testing.T) {
	cam := endesga.DefaultCamera()
	n, f := cam.Near, cam.Far

	// tan(fov/2) == 1 for a 90° field of view.
	a := (n + f) / (n - f)
	b := 2 * f * n / (n - f)

	want := mgl32.Mat4{
		1, 0, 0, 0,
		0, 1, 0, 0,
		0, 0, a, -1,
		0, 0, -2*a + b, 2,
	}

	got := cam.ViewProjection(0, 1)
	if !got.ApproxEqualThreshold(want, 1e-5) {
		t.Errorf("ViewProjection(0, 1) =\n%v\nwant\n%v", got, want)
	}
}

func TestViewProjectionAspect(t *testing.T) {
	cam := endesga.DefaultCamera()
	got := cam.ViewProjection(0, 2)

	if !mgl32.FloatEqualThreshold(got[0], 0.5, 1e-6) {
		t.Errorf("expected x scale 0.5 for aspect 2, got %v", got[0])
	}
	if !mgl32.FloatEqualThreshold(got[5], 1, 1e-6) {
		t.Errorf("expected y scale 1, got %v", got[5])
	}
}

func TestViewQuarterTurn(t *testing.T) {
	cam := endesga.DefaultCamera()

	p := cam.View(0.25).Mul4x1(mgl32.Vec4{1, 0, 0, 1})
	want := mgl32.Vec4{0, 0, -3, 1}
	if !p.ApproxEqualThreshold(want, 1e-5) {
		t.Errorf("View(0.25) * x = %v, want %v", p, want)
	}
}

func TestViewFullTurn(t *testing.T) {
	cam := endesga.DefaultCamera()

	if !cam.View(1).ApproxEqualThreshold(cam.View(0), 1e-5) {
		t.Errorf("expected a full turn after one second")
	}
}
