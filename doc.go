// Package vec32 provides single-precision vector math for GPU geometry.
//
// # Overview
//
// vec32 supplies the small value types that sit underneath a renderer:
// Vec2, Vec3, and Vec4, all backed by float32 components so that vector
// data can flow into GPU vertex buffers without a conversion pass.
// Vec2 is the primary type; Vec3 and Vec4 exist as its higher-rank
// collaborators and as vertex attribute shapes in their own right.
//
// # Value Semantics
//
// Every vector is a plain struct with public fields and copy-on-assignment
// semantics. There is no hidden indirection: assigning or passing a vector
// produces an independent value, and mutating one copy never affects
// another. Components are never validated: NaN and ±Inf are legal values
// and propagate through arithmetic per IEEE-754.
//
// # Mixed-Rank Arithmetic
//
// A Vec2 combined with a Vec3 or Vec4 is zero-extended into the operand's
// rank first, and the result has the operand's rank:
//
//	v := vec32.V2(1, 2)
//	w := vec32.V3(10, 20, 30)
//	v.AddVec3(w) // V3(11, 22, 30)
//	v.SubVec3(w) // V3(-9, -18, -30): 0 - 30 in the extended dimension
//	v.DotVec3(w) // 50: w.Z is ignored, even when non-finite
//
// # GPU Interop
//
// The vertex sub-package packs vector slices into vertex-buffer bytes and
// produces the matching gputypes layouts. Each vector type also exposes a
// raw fixed-size float view of its storage for APIs that want a bare
// float pointer; see the Floats methods for the lifetime rules.
//
// # Logging
//
// vec32 is silent by default. Call SetLogger to direct staging and upload
// diagnostics from the vertex package to a slog.Logger.
package vec32

// Version information
const (
	// Version is the current version of the library
	Version = "0.3.0"
)
