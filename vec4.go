package vec32

import (
	"fmt"
	"unsafe"
)

// Vec4 represents a 4D vector with single-precision components.
// It carries the same value semantics as Vec2 and Vec3.
type Vec4 struct {
	X, Y, Z, W float32
}

// V4 is a convenience function to create a Vec4.
func V4(x, y, z, w float32) Vec4 {
	return Vec4{X: x, Y: y, Z: z, W: w}
}

// Add returns the sum of two vectors.
func (v Vec4) Add(w Vec4) Vec4 {
	return Vec4{X: v.X + w.X, Y: v.Y + w.Y, Z: v.Z + w.Z, W: v.W + w.W}
}

// Sub returns the difference of two vectors.
func (v Vec4) Sub(w Vec4) Vec4 {
	return Vec4{X: v.X - w.X, Y: v.Y - w.Y, Z: v.Z - w.Z, W: v.W - w.W}
}

// Dot returns the dot product of two vectors.
func (v Vec4) Dot(w Vec4) float32 {
	return v.X*w.X + v.Y*w.Y + v.Z*w.Z + v.W*w.W
}

// Mul returns the vector scaled by a scalar.
func (v Vec4) Mul(s float32) Vec4 {
	return Vec4{X: v.X * s, Y: v.Y * s, Z: v.Z * s, W: v.W * s}
}

// Neg returns the negation of the vector.
func (v Vec4) Neg() Vec4 {
	return Vec4{X: -v.X, Y: -v.Y, Z: -v.Z, W: -v.W}
}

// Scale returns the vector scaled independently per axis.
func (v Vec4) Scale(sx, sy, sz, sw float32) Vec4 {
	return Vec4{X: v.X * sx, Y: v.Y * sy, Z: v.Z * sz, W: v.W * sw}
}

// Length returns the length (magnitude) of the vector.
func (v Vec4) Length() float32 {
	return sqrt32(v.LengthSquared())
}

// LengthSquared returns the squared length of the vector.
func (v Vec4) LengthSquared() float32 {
	return v.X*v.X + v.Y*v.Y + v.Z*v.Z + v.W*v.W
}

// Normalize returns a unit vector in the same direction.
// Same contract as Vec2.Normalize: the length is computed once, a zero
// vector yields NaN components, and no input panics or errors.
func (v Vec4) Normalize() Vec4 {
	length := v.Length()
	return Vec4{X: v.X / length, Y: v.Y / length, Z: v.Z / length, W: v.W / length}
}

// Lerp performs linear interpolation between two vectors.
func (v Vec4) Lerp(w Vec4, t float32) Vec4 {
	return Vec4{
		X: v.X + (w.X-v.X)*t,
		Y: v.Y + (w.Y-v.Y)*t,
		Z: v.Z + (w.Z-v.Z)*t,
		W: v.W + (w.W-v.W)*t,
	}
}

// IsZero reports whether the vector is the zero vector.
func (v Vec4) IsZero() bool {
	return v.X == 0 && v.Y == 0 && v.Z == 0 && v.W == 0
}

// Approx reports whether two vectors are approximately equal within epsilon.
func (v Vec4) Approx(w Vec4, epsilon float32) bool {
	return abs32(v.X-w.X) < epsilon && abs32(v.Y-w.Y) < epsilon &&
		abs32(v.Z-w.Z) < epsilon && abs32(v.W-w.W) < epsilon
}

// Floats returns a view of the vector's storage as a four-float array.
// Same aliasing and lifetime rules as Vec2.Floats.
func (v *Vec4) Floats() *[4]float32 {
	return (*[4]float32)(unsafe.Pointer(v)) //nolint:gosec // fixed four-field layout
}

// String returns the vector formatted as "(X, Y, Z, W)".
func (v Vec4) String() string {
	return fmt.Sprintf("(%v, %v, %v, %v)", v.X, v.Y, v.Z, v.W)
}
