package mesh

import (
	"fmt"

	"github.com/go-gl/gl/v4.1-core/gl"
)

const floatSize = 4

// Mesh owns a VAO with its vertex buffer and optional index buffer.
type Mesh struct {
	vao, vbo, ebo uint32
	vertexCount   int32
	indexCount    int32
}

// New uploads vertices (and indices, when non-empty) and configures the
// attribute pointers described by layout.
func New(vertices []float32, indices []uint32, layout Layout) (*Mesh, error) {
	if len(vertices) == 0 {
		return nil, fmt.Errorf("mesh has no vertices")
	}
	if err := layout.Validate(len(vertices)); err != nil {
		return nil, fmt.Errorf("mesh layout: %w", err)
	}

	m := &Mesh{
		vertexCount: int32(layout.VertexCount(len(vertices))),
		indexCount:  int32(len(indices)),
	}
	if err := checkIndices(indices, layout.VertexCount(len(vertices))); err != nil {
		return nil, err
	}

	gl.GenVertexArrays(1, &m.vao)
	gl.BindVertexArray(m.vao)

	gl.GenBuffers(1, &m.vbo)
	gl.BindBuffer(gl.ARRAY_BUFFER, m.vbo)
	gl.BufferData(gl.ARRAY_BUFFER, len(vertices)*floatSize, gl.Ptr(vertices), gl.STATIC_DRAW)

	if len(indices) > 0 {
		gl.GenBuffers(1, &m.ebo)
		gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, m.ebo)
		gl.BufferData(gl.ELEMENT_ARRAY_BUFFER, len(indices)*4, gl.Ptr(indices), gl.STATIC_DRAW)
	}

	stride := int32(layout.Stride() * floatSize)
	for i, off := range layout.Offsets() {
		a := layout[i]
		gl.VertexAttribPointerWithOffset(a.Location, a.Size, gl.FLOAT, false, stride, uintptr(off*floatSize))
		gl.EnableVertexAttribArray(a.Location)
	}

	// The element buffer binding is VAO state, so the VAO goes first
	gl.BindVertexArray(0)
	gl.BindBuffer(gl.ARRAY_BUFFER, 0)
	if m.ebo != 0 {
		gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, 0)
	}

	return m, nil
}

// Bind binds the VAO.
func (m *Mesh) Bind() {
	gl.BindVertexArray(m.vao)
}

// Draw draws all triangles.
func (m *Mesh) Draw() {
	gl.BindVertexArray(m.vao)
	if m.ebo != 0 {
		gl.DrawElements(gl.TRIANGLES, m.indexCount, gl.UNSIGNED_INT, nil)
	} else {
		gl.DrawArrays(gl.TRIANGLES, 0, m.vertexCount)
	}
	gl.BindVertexArray(0)
}

// DrawInstances draws n instances.
func (m *Mesh) DrawInstances(n int32) {
	gl.BindVertexArray(m.vao)
	if m.ebo != 0 {
		gl.DrawElementsInstanced(gl.TRIANGLES, m.indexCount, gl.UNSIGNED_INT, nil, n)
	} else {
		gl.DrawArraysInstanced(gl.TRIANGLES, 0, m.vertexCount, n)
	}
	gl.BindVertexArray(0)
}

// VertexCount returns the number of vertices in the buffer.
func (m *Mesh) VertexCount() int {
	return int(m.vertexCount)
}

// IndexCount returns the number of indices, 0 for non-indexed meshes.
func (m *Mesh) IndexCount() int {
	return int(m.indexCount)
}

// Delete frees GPU resources.
func (m *Mesh) Delete() {
	if m.ebo != 0 {
		gl.DeleteBuffers(1, &m.ebo)
		m.ebo = 0
	}
	if m.vbo != 0 {
		gl.DeleteBuffers(1, &m.vbo)
		m.vbo = 0
	}
	if m.vao != 0 {
		gl.DeleteVertexArrays(1, &m.vao)
		m.vao = 0
	}
}

// checkIndices rejects indices that point past the last vertex.
func checkIndices(indices []uint32, vertexCount int) error {
	for _, i := range indices {
		if uint64(i) >= uint64(vertexCount) {
			return fmt.Errorf("index %d out of range for %d vertices", i, vertexCount)
		}
	}
	return nil
}
