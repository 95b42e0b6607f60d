package vec32

import (
	"fmt"
	"unsafe"
)

// Vec3 represents a 3D vector with single-precision components.
// It carries the same value semantics as Vec2: public mutable fields,
// copy on assignment, no validation of component values.
type Vec3 struct {
	X, Y, Z float32
}

// V3 is a convenience function to create a Vec3.
func V3(x, y, z float32) Vec3 {
	return Vec3{X: x, Y: y, Z: z}
}

// V3FromVec4 creates a Vec3 from the X, Y, and Z components of v.
// The W component is discarded, not validated.
func V3FromVec4(v Vec4) Vec3 {
	return Vec3{X: v.X, Y: v.Y, Z: v.Z}
}

// Vec4 returns the vector zero-extended to four components.
func (v Vec3) Vec4() Vec4 {
	return Vec4{X: v.X, Y: v.Y, Z: v.Z, W: 0}
}

// Add returns the sum of two vectors.
func (v Vec3) Add(w Vec3) Vec3 {
	return Vec3{X: v.X + w.X, Y: v.Y + w.Y, Z: v.Z + w.Z}
}

// AddVec4 returns the sum of the zero-extended vector and w.
func (v Vec3) AddVec4(w Vec4) Vec4 {
	return v.Vec4().Add(w)
}

// Sub returns the difference of two vectors.
func (v Vec3) Sub(w Vec3) Vec3 {
	return Vec3{X: v.X - w.X, Y: v.Y - w.Y, Z: v.Z - w.Z}
}

// SubVec4 returns the difference of the zero-extended vector and w.
// The extended dimension subtracts from zero, so the result's W is -w.W.
func (v Vec3) SubVec4(w Vec4) Vec4 {
	return v.Vec4().Sub(w)
}

// Dot returns the dot product of two vectors.
func (v Vec3) Dot(w Vec3) float32 {
	return v.X*w.X + v.Y*w.Y + v.Z*w.Z
}

// DotVec4 returns the dot product of v and the XYZ projection of w.
// w.W is ignored outright, not multiplied by an extension zero, so even
// a NaN or infinite W cannot leak into the result.
func (v Vec3) DotVec4(w Vec4) float32 {
	return v.X*w.X + v.Y*w.Y + v.Z*w.Z
}

// Mul returns the vector scaled by a scalar.
func (v Vec3) Mul(s float32) Vec3 {
	return Vec3{X: v.X * s, Y: v.Y * s, Z: v.Z * s}
}

// Neg returns the negation of the vector.
func (v Vec3) Neg() Vec3 {
	return Vec3{X: -v.X, Y: -v.Y, Z: -v.Z}
}

// Scale returns the vector scaled independently per axis.
func (v Vec3) Scale(sx, sy, sz float32) Vec3 {
	return Vec3{X: v.X * sx, Y: v.Y * sy, Z: v.Z * sz}
}

// Cross returns the 3D cross product of two vectors.
func (v Vec3) Cross(w Vec3) Vec3 {
	return Vec3{
		X: v.Y*w.Z - v.Z*w.Y,
		Y: v.Z*w.X - v.X*w.Z,
		Z: v.X*w.Y - v.Y*w.X,
	}
}

// Length returns the length (magnitude) of the vector.
func (v Vec3) Length() float32 {
	return sqrt32(v.LengthSquared())
}

// LengthSquared returns the squared length of the vector.
func (v Vec3) LengthSquared() float32 {
	return v.X*v.X + v.Y*v.Y + v.Z*v.Z
}

// Normalize returns a unit vector in the same direction.
// Same contract as Vec2.Normalize: the length is computed once, a zero
// vector yields NaN components, and no input panics or errors.
func (v Vec3) Normalize() Vec3 {
	length := v.Length()
	return Vec3{X: v.X / length, Y: v.Y / length, Z: v.Z / length}
}

// Lerp performs linear interpolation between two vectors.
func (v Vec3) Lerp(w Vec3, t float32) Vec3 {
	return Vec3{
		X: v.X + (w.X-v.X)*t,
		Y: v.Y + (w.Y-v.Y)*t,
		Z: v.Z + (w.Z-v.Z)*t,
	}
}

// IsZero reports whether the vector is the zero vector.
func (v Vec3) IsZero() bool {
	return v.X == 0 && v.Y == 0 && v.Z == 0
}

// Approx reports whether two vectors are approximately equal within epsilon.
func (v Vec3) Approx(w Vec3, epsilon float32) bool {
	return abs32(v.X-w.X) < epsilon && abs32(v.Y-w.Y) < epsilon && abs32(v.Z-w.Z) < epsilon
}

// Floats returns a view of the vector's storage as a three-float array.
// Same aliasing and lifetime rules as Vec2.Floats.
func (v *Vec3) Floats() *[3]float32 {
	return (*[3]float32)(unsafe.Pointer(v)) //nolint:gosec // fixed three-field layout
}

// String returns the vector formatted as "(X, Y, Z)".
func (v Vec3) String() string {
	return fmt.Sprintf("(%v, %v, %v)", v.X, v.Y, v.Z)
}
