package endesga

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

// Camera describes a perspective camera orbiting the origin.
type Camera struct {
	FovY        float32    // Vertical field of view in radians
	Near, Far   float32    // Clip planes
	Translation mgl32.Vec3 // View translation applied after the spin
}

// DefaultCamera returns a 90° camera two units back from the origin.
func DefaultCamera() Camera {
	return Camera{
		FovY:        math.Pi / 2,
		Near:        0.01,
		Far:         100,
		Translation: mgl32.Vec3{0, 0, -2},
	}
}

// Projection returns the GL-style perspective matrix for the given aspect.
func (c Camera) Projection(aspect float32) mgl32.Mat4 {
	return mgl32.Perspective(c.FovY, aspect, c.Near, c.Far)
}

// View returns the view matrix at time t (seconds).
// The scene completes one turn around the Y axis per second.
func (c Camera) View(t float32) mgl32.Mat4 {
	translate := mgl32.Translate3D(c.Translation.X(), c.Translation.Y(), c.Translation.Z())
	return translate.Mul4(mgl32.HomogRotate3DY(2 * math.Pi * t))
}

// ViewProjection returns Projection(aspect) * View(t).
func (c Camera) ViewProjection(t, aspect float32) mgl32.Mat4 {
	return c.Projection(aspect).Mul4(c.View(t))
}
