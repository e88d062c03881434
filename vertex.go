package endesga

import (
	"unsafe"

	"github.com/go-gl/mathgl/mgl32"
)

// Vertex is one element of the vertex storage buffer.
//
// The layout matches a std430 struct of vec3 position, float pad,
// vec3 color, float pad. Do not reorder fields.
type Vertex struct {
	Position mgl32.Vec3
	_        float32
	Color    mgl32.Vec3
	_        float32
}

// VertexSize is the size of a Vertex in bytes.
const VertexSize = int(unsafe.Sizeof(Vertex{}))

// NewVertex creates a vertex with the given position and color.
func NewVertex(position, color mgl32.Vec3) Vertex {
	return Vertex{Position: position, Color: color}
}

// Triangle returns the demo geometry, wound counter-clockwise.
func Triangle() []Vertex {
	return []Vertex{
		NewVertex(mgl32.Vec3{-0.5, -0.5, 0}, mgl32.Vec3{1, 0, 0}),
		NewVertex(mgl32.Vec3{0.5, -0.5, 0}, mgl32.Vec3{0, 1, 0}),
		NewVertex(mgl32.Vec3{0, 0.5, 0}, mgl32.Vec3{0, 0, 1}),
	}
}
