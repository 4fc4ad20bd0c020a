package openglhelper

import (
	"github.com/go-gl/gl/v4.6-core/gl"
)

// BufferUsage represents buffer usage patterns for OpenGL buffers
type BufferUsage uint32

const (
	// StaticDraw indicates buffer contents are specified once and drawn many times
	StaticDraw BufferUsage = gl.STATIC_DRAW
	// DynamicDraw indicates buffer contents change frequently
	DynamicDraw BufferUsage = gl.DYNAMIC_DRAW
)

// BufferObject represents an OpenGL buffer object (VBO or EBO)
type BufferObject struct {
	ID    uint32
	Type  uint32 // GL_ARRAY_BUFFER or GL_ELEMENT_ARRAY_BUFFER
	Usage BufferUsage
}

// NewVBO creates a vertex buffer object with the given float data.
// A nil slice allocates an empty buffer that can be filled later.
func NewVBO(data []float32, usage BufferUsage) *BufferObject {
	vbo := &BufferObject{Type: gl.ARRAY_BUFFER, Usage: usage}
	gl.GenBuffers(1, &vbo.ID)
	vbo.Bind()
	if len(data) > 0 {
		gl.BufferData(vbo.Type, len(data)*4, gl.Ptr(data), uint32(usage))
	}
	return vbo
}

// NewEBO creates an element buffer object with the given index data.
// A nil slice allocates an empty buffer that can be filled later.
func NewEBO(indices []uint32, usage BufferUsage) *BufferObject {
	ebo := &BufferObject{Type: gl.ELEMENT_ARRAY_BUFFER, Usage: usage}
	gl.GenBuffers(1, &ebo.ID)
	ebo.Bind()
	if len(indices) > 0 {
		gl.BufferData(ebo.Type, len(indices)*4, gl.Ptr(indices), uint32(ebo.Usage))
	}
	return ebo
}

// Bind binds the buffer object
func (b *BufferObject) Bind() {
	gl.BindBuffer(b.Type, b.ID)
}

// Unbind unbinds the buffer object
func (b *BufferObject) Unbind() {
	gl.BindBuffer(b.Type, 0)
}

// SetData replaces the buffer contents with new float data
func (b *BufferObject) SetData(data []float32) {
	b.Bind()
	if len(data) == 0 {
		gl.BufferData(b.Type, 0, nil, uint32(b.Usage))
		return
	}
	gl.BufferData(b.Type, len(data)*4, gl.Ptr(data), uint32(b.Usage))
}

// SetIndexData replaces the buffer contents with new index data
func (b *BufferObject) SetIndexData(indices []uint32) {
	b.Bind()
	if len(indices) == 0 {
		gl.BufferData(b.Type, 0, nil, uint32(b.Usage))
		return
	}
	gl.BufferData(b.Type, len(indices)*4, gl.Ptr(indices), uint32(b.Usage))
}

// Delete releases the buffer object
func (b *BufferObject) Delete() {
	gl.DeleteBuffers(1, &b.ID)
}

// VertexArrayObject represents an OpenGL vertex array object that stores
// vertex attribute configuration
type VertexArrayObject struct {
	ID uint32
}

// NewVAO creates a new vertex array object
func NewVAO() *VertexArrayObject {
	vao := &VertexArrayObject{}
	gl.GenVertexArrays(1, &vao.ID)
	return vao
}

// Bind binds the vertex array object
func (v *VertexArrayObject) Bind() {
	gl.BindVertexArray(v.ID)
}

// Unbind unbinds the vertex array object
func (v *VertexArrayObject) Unbind() {
	gl.BindVertexArray(0)
}

// SetVertexAttribPointer configures and enables a vertex attribute
func (v *VertexArrayObject) SetVertexAttribPointer(index uint32, size int32, xtype uint32, normalized bool, stride int32, offset int) {
	gl.VertexAttribPointerWithOffset(index, size, xtype, normalized, stride, uintptr(offset))
	gl.EnableVertexAttribArray(index)
}

// Delete releases the vertex array object
func (v *VertexArrayObject) Delete() {
	gl.DeleteVertexArrays(1, &v.ID)
}
