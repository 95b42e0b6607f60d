// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package vertex

import (
	"unsafe"

	"github.com/gogpu/gputypes"

	"github.com/gogpu/vec32"
)

// Byte strides of the packed vector formats.
const (
	// StrideVec2 is the byte stride of a packed Vec2 (two float32).
	StrideVec2 = 8

	// StrideVec3 is the byte stride of a packed Vec3 (three float32).
	StrideVec3 = 12

	// StrideVec4 is the byte stride of a packed Vec4 (four float32).
	StrideVec4 = 16
)

// The pack functions rely on the vector structs being laid out as bare
// float arrays with no padding. Breaks the build if that ever changes.
var (
	_ = [1]struct{}{}[unsafe.Sizeof(vec32.Vec2{})-StrideVec2]
	_ = [1]struct{}{}[unsafe.Sizeof(vec32.Vec3{})-StrideVec3]
	_ = [1]struct{}{}[unsafe.Sizeof(vec32.Vec4{})-StrideVec4]
)

// DefaultUsage is the buffer usage for staged vertex data: bindable as a
// vertex buffer and writable from the CPU side.
const DefaultUsage = gputypes.BufferUsageVertex | gputypes.BufferUsageCopyDst

// Pack2 reinterprets vs as vertex-buffer bytes without copying.
// The result is len(vs)*StrideVec2 bytes of consecutive X,Y components.
//
// The slice aliases vs: writes to vs are visible through it, and it is
// valid only while vs is live. Returns nil for an empty slice.
func Pack2(vs []vec32.Vec2) []byte {
	if len(vs) == 0 {
		return nil
	}
	return unsafe.Slice((*byte)(unsafe.Pointer(&vs[0])), len(vs)*StrideVec2) //nolint:gosec // fixed-layout struct staging
}

// Pack3 reinterprets vs as vertex-buffer bytes without copying.
// Same aliasing rules as Pack2.
func Pack3(vs []vec32.Vec3) []byte {
	if len(vs) == 0 {
		return nil
	}
	return unsafe.Slice((*byte)(unsafe.Pointer(&vs[0])), len(vs)*StrideVec3) //nolint:gosec // fixed-layout struct staging
}

// Pack4 reinterprets vs as vertex-buffer bytes without copying.
// Same aliasing rules as Pack2.
func Pack4(vs []vec32.Vec4) []byte {
	if len(vs) == 0 {
		return nil
	}
	return unsafe.Slice((*byte)(unsafe.Pointer(&vs[0])), len(vs)*StrideVec4) //nolint:gosec // fixed-layout struct staging
}

// Layout2 returns the vertex buffer layout for data packed with Pack2:
// one Float32x2 attribute per vertex at the given shader location.
func Layout2(shaderLocation uint32) gputypes.VertexBufferLayout {
	return gputypes.VertexBufferLayout{
		ArrayStride: StrideVec2,
		StepMode:    gputypes.VertexStepModeVertex,
		Attributes: []gputypes.VertexAttribute{
			{
				Format:         gputypes.VertexFormatFloat32x2,
				Offset:         0,
				ShaderLocation: shaderLocation,
			},
		},
	}
}

// Layout3 returns the vertex buffer layout for data packed with Pack3.
func Layout3(shaderLocation uint32) gputypes.VertexBufferLayout {
	return gputypes.VertexBufferLayout{
		ArrayStride: StrideVec3,
		StepMode:    gputypes.VertexStepModeVertex,
		Attributes: []gputypes.VertexAttribute{
			{
				Format:         gputypes.VertexFormatFloat32x3,
				Offset:         0,
				ShaderLocation: shaderLocation,
			},
		},
	}
}

// Layout4 returns the vertex buffer layout for data packed with Pack4.
func Layout4(shaderLocation uint32) gputypes.VertexBufferLayout {
	return gputypes.VertexBufferLayout{
		ArrayStride: StrideVec4,
		StepMode:    gputypes.VertexStepModeVertex,
		Attributes: []gputypes.VertexAttribute{
			{
				Format:         gputypes.VertexFormatFloat32x4,
				Offset:         0,
				ShaderLocation: shaderLocation,
			},
		},
	}
}
