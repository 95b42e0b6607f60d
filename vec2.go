package vec32

import (
	"fmt"
	"unsafe"
)

// Vec2 represents a 2D vector with single-precision components.
// It is a plain value: two Vec2 with equal components are interchangeable,
// and assignment or argument passing always copies. The fields are public
// and mutable; callers may set X and Y directly between operations.
type Vec2 struct {
	X, Y float32
}

// V2 is a convenience function to create a Vec2.
func V2(x, y float32) Vec2 {
	return Vec2{X: x, Y: y}
}

// V2FromVec3 creates a Vec2 from the X and Y components of v.
// The Z component is discarded, not validated.
func V2FromVec3(v Vec3) Vec2 {
	return Vec2{X: v.X, Y: v.Y}
}

// V2FromVec4 creates a Vec2 from the X and Y components of v.
// The Z and W components are discarded, not validated.
func V2FromVec4(v Vec4) Vec2 {
	return Vec2{X: v.X, Y: v.Y}
}

// Vec3 returns the vector zero-extended to three components.
// Mixed-rank addition and subtraction go through this extension, so the
// rank rules are defined in one place rather than per operation. The dot
// products skip it: they drop the operand's higher components instead of
// multiplying them by zero.
func (v Vec2) Vec3() Vec3 {
	return Vec3{X: v.X, Y: v.Y, Z: 0}
}

// Vec4 returns the vector zero-extended to four components.
func (v Vec2) Vec4() Vec4 {
	return Vec4{X: v.X, Y: v.Y, Z: 0, W: 0}
}

// Add returns the sum of two vectors.
func (v Vec2) Add(w Vec2) Vec2 {
	return Vec2{X: v.X + w.X, Y: v.Y + w.Y}
}

// AddVec3 returns the sum of the zero-extended vector and w.
// The result has the operand's rank: (X+w.X, Y+w.Y, w.Z).
func (v Vec2) AddVec3(w Vec3) Vec3 {
	return v.Vec3().Add(w)
}

// AddVec4 returns the sum of the zero-extended vector and w.
// The result has the operand's rank: (X+w.X, Y+w.Y, w.Z, w.W).
func (v Vec2) AddVec4(w Vec4) Vec4 {
	return v.Vec4().Add(w)
}

// Sub returns the difference of two vectors.
func (v Vec2) Sub(w Vec2) Vec2 {
	return Vec2{X: v.X - w.X, Y: v.Y - w.Y}
}

// SubVec3 returns the difference of the zero-extended vector and w.
// The extended dimension subtracts from zero, so the result's Z is -w.Z.
func (v Vec2) SubVec3(w Vec3) Vec3 {
	return v.Vec3().Sub(w)
}

// SubVec4 returns the difference of the zero-extended vector and w.
// The result's Z and W are -w.Z and -w.W.
func (v Vec2) SubVec4(w Vec4) Vec4 {
	return v.Vec4().Sub(w)
}

// Dot returns the dot product of two vectors.
func (v Vec2) Dot(w Vec2) float32 {
	return v.X*w.X + v.Y*w.Y
}

// DotVec3 returns the dot product of v and the XY projection of w.
// w.Z is ignored outright, not multiplied by an extension zero, so even
// a NaN or infinite Z cannot leak into the result.
func (v Vec2) DotVec3(w Vec3) float32 {
	return v.X*w.X + v.Y*w.Y
}

// DotVec4 returns the dot product of v and the XY projection of w.
// w.Z and w.W are ignored outright; see DotVec3.
func (v Vec2) DotVec4(w Vec4) float32 {
	return v.X*w.X + v.Y*w.Y
}

// Mul returns the vector scaled by a scalar.
func (v Vec2) Mul(s float32) Vec2 {
	return Vec2{X: v.X * s, Y: v.Y * s}
}

// Neg returns the negation of the vector.
func (v Vec2) Neg() Vec2 {
	return Vec2{X: -v.X, Y: -v.Y}
}

// Scale returns the vector scaled independently per axis.
// The factors are unconstrained: zero, negative, and non-finite factors
// follow IEEE-754 multiplication.
func (v Vec2) Scale(sx, sy float32) Vec2 {
	return Vec2{X: v.X * sx, Y: v.Y * sy}
}

// Cross returns the 2D cross product (scalar).
// This is the z-component of the 3D cross product with z=0.
// Useful for determining the sign of the angle between vectors.
func (v Vec2) Cross(w Vec2) float32 {
	return v.X*w.Y - v.Y*w.X
}

// Length returns the length (magnitude) of the vector.
func (v Vec2) Length() float32 {
	return sqrt32(v.LengthSquared())
}

// LengthSquared returns the squared length of the vector.
// This is faster than Length when you only need to compare magnitudes.
func (v Vec2) LengthSquared() float32 {
	return v.X*v.X + v.Y*v.Y
}

// Normalize returns a unit vector in the same direction.
// The length is computed once and both components divide by that value.
//
// A zero vector has no direction: both result components are NaN (0/0).
// Non-finite inputs likewise flow through IEEE-754 division. Normalize
// never panics and never reports an error.
func (v Vec2) Normalize() Vec2 {
	length := v.Length()
	return Vec2{X: v.X / length, Y: v.Y / length}
}

// Lerp performs linear interpolation between two vectors.
// t=0 returns v, t=1 returns w, intermediate values interpolate.
func (v Vec2) Lerp(w Vec2, t float32) Vec2 {
	return Vec2{
		X: v.X + (w.X-v.X)*t,
		Y: v.Y + (w.Y-v.Y)*t,
	}
}

// Perp returns the perpendicular vector (rotated 90 degrees counter-clockwise).
func (v Vec2) Perp() Vec2 {
	return Vec2{X: -v.Y, Y: v.X}
}

// IsZero reports whether the vector is the zero vector.
func (v Vec2) IsZero() bool {
	return v.X == 0 && v.Y == 0
}

// Approx reports whether two vectors are approximately equal within epsilon.
func (v Vec2) Approx(w Vec2, epsilon float32) bool {
	return abs32(v.X-w.X) < epsilon && abs32(v.Y-w.Y) < epsilon
}

// Floats returns a view of the vector's storage as a two-float array,
// X first then Y. Vec2 has no field padding, so the view is bit-compatible
// with a native float[2] buffer.
//
// The array aliases v directly: writes through it are visible on v and
// vice versa. It is valid only while v itself is live. Do not retain it
// past v's lifetime, and note that a copy of v has its own storage which
// an existing view does not track.
func (v *Vec2) Floats() *[2]float32 {
	return (*[2]float32)(unsafe.Pointer(v)) //nolint:gosec // fixed two-field layout
}

// String returns the vector formatted as "(X, Y)".
// The format is for logging and debugging, not for parsing.
func (v Vec2) String() string {
	return fmt.Sprintf("(%v, %v)", v.X, v.Y)
}
