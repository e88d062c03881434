package endesga

import (
	"testing"
	"unsafe"
)

func TestVertexLayout(t *testing.T) {
	if VertexSize != 32 {
		t.Fatalf("expected Vertex size 32, got %d", VertexSize)
	}
	if off := unsafe.Offsetof(Vertex{}.Position); off != 0 {
		t.Errorf("expected Position at 0, got %d", off)
	}
	if off := unsafe.Offsetof(Vertex{}.Color); off != 16 {
		t.Errorf("expected Color at 16, got %d", off)
	}
}

func TestTriangle(t *testing.T) {
	verts := Triangle()
	if len(verts) != 3 {
		t.Fatalf("expected 3 vertices, got %d", len(verts))
	}

	// Counter-clockwise in the XY plane: positive signed area.
	a, b, c := verts[0].Position, verts[1].Position, verts[2].Position
	area := (b.X()-a.X())*(c.Y()-a.Y()) - (c.X()-a.X())*(b.Y()-a.Y())
	if area <= 0 {
		t.Errorf("expected counter-clockwise winding, signed area %v", area)
	}
}
