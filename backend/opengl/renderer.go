package opengl

import (
	_ "embed"
	"fmt"

	"github.com/go-gl/gl/v4.5-core/gl"
	"github.com/go-gl/mathgl/mgl32"

	"github.com/go-theft-auto/endesga"
)

// Binding points used by the scene shaders.
const (
	CameraBinding = 0
	VertexBinding = 1
)

var (
	//go:embed shaders/main.vert.glsl
	vertexShaderSource string

	//go:embed shaders/main.frag.glsl
	fragmentShaderSource string
)

// SceneRenderer draws a fixed vertex list with the camera uniform.
type SceneRenderer struct {
	program  *Program
	camera   *Buffer
	vertices *Buffer
	vao      uint32
	count    int32

	clearColor [4]float32
}

// RendererOption configures a SceneRenderer.
type RendererOption func(*SceneRenderer)

// WithClearColor sets the framebuffer clear color.
func WithClearColor(r, g, b, a float32) RendererOption {
	return func(s *SceneRenderer) { s.clearColor = [4]float32{r, g, b, a} }
}

// NewSceneRenderer compiles the scene shaders and uploads vertices.
func NewSceneRenderer(vertices []endesga.Vertex, opts ...RendererOption) (*SceneRenderer, error) {
	r := &SceneRenderer{
		count:      int32(len(vertices)),
		clearColor: [4]float32{1.0, 0.8, 0.5, 1.0},
	}

	for _, opt := range opts {
		opt(r)
	}

	var err error
	r.program, err = NewSimpleProgram(vertexShaderSource, fragmentShaderSource)
	if err != nil {
		return nil, fmt.Errorf("scene shader: %w", err)
	}

	// Core profile needs a bound VAO even though vertices come from a storage buffer.
	gl.CreateVertexArrays(1, &r.vao)

	r.camera = NewBuffer()
	identity := mgl32.Ident4()
	Upload(r.camera, &identity)

	r.vertices = NewBuffer()
	UploadSlice(r.vertices, vertices)

	return r, nil
}

// UploadCamera replaces the camera uniform.
func (r *SceneRenderer) UploadCamera(viewProjection mgl32.Mat4) {
	Upload(r.camera, &viewProjection)
}

// Draw clears the framebuffer and draws the vertex list as triangles.
func (r *SceneRenderer) Draw() {
	c := r.clearColor
	gl.ClearColor(c[0], c[1], c[2], c[3])
	gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)

	r.program.Bind()
	r.camera.BindUniform(CameraBinding)
	r.vertices.BindStorage(VertexBinding)

	gl.BindVertexArray(r.vao)
	gl.DrawArrays(gl.TRIANGLES, 0, r.count)
}

// Delete releases GL resources.
func (r *SceneRenderer) Delete() {
	if r.vertices != nil {
		r.vertices.Delete()
	}
	if r.camera != nil {
		r.camera.Delete()
	}
	if r.vao != 0 {
		gl.DeleteVertexArrays(1, &r.vao)
	}
	if r.program != nil {
		r.program.Delete()
	}
}
