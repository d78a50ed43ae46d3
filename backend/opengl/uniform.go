package opengl

import (
	"fmt"

	"github.com/go-gl/gl/v4.1-core/gl"
)

// Packable is a byte buffer with a change counter. *controls.Group
// satisfies it.
type Packable interface {
	Bytes() []byte
	Version() uint64
}

// UniformBuffer mirrors a Packable into a GL uniform buffer bound to a
// fixed binding point.
type UniformBuffer struct {
	buffer   uint32
	binding  uint32
	size     int
	version  uint64
	uploaded bool
}

// NewUniformBuffer creates a uniform buffer attached to binding. A GL
// context must be current.
func NewUniformBuffer(binding uint32) *UniformBuffer {
	u := &UniformBuffer{binding: binding}
	gl.GenBuffers(1, &u.buffer)
	gl.BindBufferBase(gl.UNIFORM_BUFFER, binding, u.buffer)
	return u
}

// Binding returns the binding point the buffer is attached to.
func (u *UniformBuffer) Binding() uint32 {
	return u.binding
}

// Upload copies src into the buffer if it changed since the last upload.
// The buffer storage is reallocated when the packed size changes.
// Returns true if anything was sent to the GPU.
func (u *UniformBuffer) Upload(src Packable) bool {
	data := src.Bytes()
	version := src.Version()
	if u.uploaded && version == u.version && len(data) == u.size {
		return false
	}

	gl.BindBuffer(gl.UNIFORM_BUFFER, u.buffer)
	switch {
	case len(data) == 0:
		// Nothing to send; keep the binding valid.
		gl.BufferData(gl.UNIFORM_BUFFER, 16, nil, gl.DYNAMIC_DRAW)
	case len(data) != u.size:
		gl.BufferData(gl.UNIFORM_BUFFER, len(data), gl.Ptr(data), gl.DYNAMIC_DRAW)
		logger.Debug("uniform buffer reallocated", "binding", u.binding, "size", len(data), "version", version)
	default:
		gl.BufferSubData(gl.UNIFORM_BUFFER, 0, len(data), gl.Ptr(data))
	}
	gl.BindBuffer(gl.UNIFORM_BUFFER, 0)

	u.size = len(data)
	u.version = version
	u.uploaded = true
	logger.Debug("uniform buffer uploaded", "binding", u.binding, "size", u.size, "version", version)
	return true
}

// Bind connects the named uniform block of program to this buffer's
// binding point.
func (u *UniformBuffer) Bind(program uint32, blockName string) error {
	index := gl.GetUniformBlockIndex(program, gl.Str(blockName+"\x00"))
	if index == gl.INVALID_INDEX {
		return fmt.Errorf("uniform block %q not found in program %d", blockName, program)
	}
	gl.UniformBlockBinding(program, index, u.binding)
	return nil
}

// Delete releases the GL buffer.
func (u *UniformBuffer) Delete() {
	if u.buffer != 0 {
		gl.DeleteBuffers(1, &u.buffer)
		u.buffer = 0
	}
}
