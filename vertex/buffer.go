// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package vertex

import (
	"errors"
	"fmt"

	"github.com/gogpu/gpucontext"
	"github.com/gogpu/gputypes"

	"github.com/gogpu/vec32"
)

// DeviceHandle provides GPU device access from the host application.
//
// vertex receives the device from the host, it does not create one. Any
// gpucontext.DeviceProvider (such as a gogpu.App context) satisfies the
// interface, so staged data can flow to whichever backend the host runs.
//
// DeviceHandle is an alias for gpucontext.DeviceProvider, providing a
// vec32-specific name while maintaining full compatibility with the
// gpucontext ecosystem.
type DeviceHandle = gpucontext.DeviceProvider

var (
	// ErrNilProvider is returned when a Buffer is created without a
	// device provider.
	ErrNilProvider = errors.New("vertex: device provider is nil")

	// ErrNoUploader is returned by Upload when the provider's queue does
	// not accept buffer writes.
	ErrNoUploader = errors.New("vertex: queue does not support buffer writes")
)

// BufferWriter is implemented by queues that accept raw vertex-buffer
// writes. gpucontext keeps the Queue surface minimal, so upload support
// is an optional capability probed at call time, the same way texture
// updates are probed elsewhere in the ecosystem.
type BufferWriter interface {
	WriteBuffer(data []byte, usage gputypes.BufferUsage) error
}

// Buffer stages Vec2 vertex data on the CPU for upload through a device
// provider's queue.
//
// A Buffer is not safe for concurrent use: the staged slice is plain
// mutable state, and the bytes handed to Upload alias it.
type Buffer struct {
	provider DeviceHandle
	location uint32
	verts    []vec32.Vec2
}

// NewBuffer creates an empty staging buffer bound to provider.
// shaderLocation is the attribute slot the packed data will bind to.
func NewBuffer(provider DeviceHandle, shaderLocation uint32) (*Buffer, error) {
	if provider == nil {
		return nil, ErrNilProvider
	}
	return &Buffer{provider: provider, location: shaderLocation}, nil
}

// Append adds vertices to the staged data.
func (b *Buffer) Append(vs ...vec32.Vec2) {
	b.verts = append(b.verts, vs...)
}

// Reset discards the staged data, keeping the allocated capacity.
// Bytes slices obtained before Reset still alias the old storage.
func (b *Buffer) Reset() {
	b.verts = b.verts[:0]
}

// Len returns the number of staged vertices.
func (b *Buffer) Len() int {
	return len(b.verts)
}

// Bytes returns the staged data packed as vertex-buffer bytes.
// The slice aliases the staged vertices; see Pack2 for the rules.
func (b *Buffer) Bytes() []byte {
	return Pack2(b.verts)
}

// Layout returns the vertex buffer layout matching Bytes.
func (b *Buffer) Layout() gputypes.VertexBufferLayout {
	return Layout2(b.location)
}

// Upload writes the staged bytes through the provider's queue.
// The queue must implement BufferWriter; otherwise Upload fails with
// ErrNoUploader and the staged data is left untouched.
func (b *Buffer) Upload() error {
	queue := b.provider.Queue()
	w, ok := queue.(BufferWriter)
	if !ok {
		vec32.Logger().Warn("vertex: queue has no buffer writer",
			"queue", fmt.Sprintf("%T", queue))
		return ErrNoUploader
	}

	data := b.Bytes()
	if err := w.WriteBuffer(data, DefaultUsage); err != nil {
		return fmt.Errorf("vertex: upload %d bytes: %w", len(data), err)
	}

	vec32.Logger().Debug("vertex: uploaded vertex data",
		"vertices", len(b.verts),
		"bytes", len(data),
		"stride", StrideVec2)
	return nil
}
