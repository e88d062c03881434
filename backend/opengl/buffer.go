// Package opengl binds the endesga frame loop to OpenGL 4.5 and GLFW.
//
// All functions here must be called from the thread that owns the
// current GL context.
package opengl

import (
	"unsafe"

	"github.com/go-gl/gl/v4.5-core/gl"
)

// Buffer owns a GL buffer object.
//
// Uploads replace the whole data store with STREAM_DRAW usage. The
// uploaded type must have a fixed memory layout that satisfies the
// alignment rules of the block it is bound to, and must not contain Go
// pointers. Neither is checked.
type Buffer struct {
	id uint32
}

// NewBuffer creates an empty buffer object.
func NewBuffer() *Buffer {
	b := &Buffer{}
	gl.CreateBuffers(1, &b.id)
	return b
}

// ID returns the GL name of the buffer.
func (b *Buffer) ID() uint32 { return b.id }

// Upload fills the buffer with the contents of a single value.
func Upload[T any](b *Buffer, v *T) {
	gl.NamedBufferData(b.id, int(unsafe.Sizeof(*v)), unsafe.Pointer(v), gl.STREAM_DRAW)
}

// UploadSlice fills the buffer with the contents of data.
func UploadSlice[T any](b *Buffer, data []T) {
	var zero T
	size := len(data) * int(unsafe.Sizeof(zero))
	gl.NamedBufferData(b.id, size, unsafe.Pointer(unsafe.SliceData(data)), gl.STREAM_DRAW)
}

// BindUniform binds the buffer to uniform blocks declared with
// layout(binding = binding).
func (b *Buffer) BindUniform(binding uint32) {
	gl.BindBufferBase(gl.UNIFORM_BUFFER, binding, b.id)
}

// BindStorage binds the buffer to buffer blocks declared with
// layout(binding = binding).
func (b *Buffer) BindStorage(binding uint32) {
	gl.BindBufferBase(gl.SHADER_STORAGE_BUFFER, binding, b.id)
}

// Size returns the size of the data store as reported by the driver.
func (b *Buffer) Size() int {
	var size int32
	gl.GetNamedBufferParameteriv(b.id, gl.BUFFER_SIZE, &size)
	return int(size)
}

// Delete releases the buffer object.
func (b *Buffer) Delete() {
	if b.id != 0 {
		gl.DeleteBuffers(1, &b.id)
		b.id = 0
	}
}
