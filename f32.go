// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package vec32

import "golang.org/x/image/math/f32"

// Conversions to and from the array-shaped vector types in
// golang.org/x/image/math/f32, the interop form used by much of the Go
// graphics ecosystem. The conversions copy component by component and are
// exact.

// F32 returns the vector as an f32.Vec2 array, X first then Y.
func (v Vec2) F32() f32.Vec2 {
	return f32.Vec2{v.X, v.Y}
}

// V2FromF32 creates a Vec2 from an f32.Vec2 array.
func V2FromF32(a f32.Vec2) Vec2 {
	return Vec2{X: a[0], Y: a[1]}
}

// F32 returns the vector as an f32.Vec3 array.
func (v Vec3) F32() f32.Vec3 {
	return f32.Vec3{v.X, v.Y, v.Z}
}

// V3FromF32 creates a Vec3 from an f32.Vec3 array.
func V3FromF32(a f32.Vec3) Vec3 {
	return Vec3{X: a[0], Y: a[1], Z: a[2]}
}

// F32 returns the vector as an f32.Vec4 array.
func (v Vec4) F32() f32.Vec4 {
	return f32.Vec4{v.X, v.Y, v.Z, v.W}
}

// V4FromF32 creates a Vec4 from an f32.Vec4 array.
func V4FromF32(a f32.Vec4) Vec4 {
	return Vec4{X: a[0], Y: a[1], Z: a[2], W: a[3]}
}
