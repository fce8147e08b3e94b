package core

import (
	"fmt"
	"math"
)

// Vec3 represents a 3D vector. The same type is reused for positions,
// directions and (via the Colour.ToVec3/ColourFromVec3 helpers) linear RGB.
type Vec3 struct {
	X, Y, Z float64
}

// NewVec3 creates a new Vec3.
func NewVec3(x, y, z float64) Vec3 {
	return Vec3{X: x, Y: y, Z: z}
}

func (v Vec3) String() string {
	return fmt.Sprintf("{%.3g, %.3g, %.3g}", v.X, v.Y, v.Z)
}

// Add returns the sum of two vectors.
func (v Vec3) Add(other Vec3) Vec3 {
	return Vec3{v.X + other.X, v.Y + other.Y, v.Z + other.Z}
}

// Subtract returns the difference of two vectors.
func (v Vec3) Subtract(other Vec3) Vec3 {
	return Vec3{v.X - other.X, v.Y - other.Y, v.Z - other.Z}
}

// Multiply returns the vector scaled by a scalar.
func (v Vec3) Multiply(scalar float64) Vec3 {
	return Vec3{v.X * scalar, v.Y * scalar, v.Z * scalar}
}

// Divide returns the vector divided by a scalar.
func (v Vec3) Divide(scalar float64) Vec3 {
	return Vec3{v.X / scalar, v.Y / scalar, v.Z / scalar}
}

// Length returns the magnitude of the vector.
func (v Vec3) Length() float64 {
	return math.Sqrt(v.X*v.X + v.Y*v.Y + v.Z*v.Z)
}

// LengthSquared returns the squared magnitude of the vector.
func (v Vec3) LengthSquared() float64 {
	return v.X*v.X + v.Y*v.Y + v.Z*v.Z
}

// Dot returns the dot product of two vectors.
func (v Vec3) Dot(other Vec3) float64 {
	return v.X*other.X + v.Y*other.Y + v.Z*other.Z
}

// Cross returns the cross product of two vectors.
func (v Vec3) Cross(other Vec3) Vec3 {
	return Vec3{
		X: v.Y*other.Z - v.Z*other.Y,
		Y: v.Z*other.X - v.X*other.Z,
		Z: v.X*other.Y - v.Y*other.X,
	}
}

// Normalize returns a unit vector in the same direction. Undefined for the
// zero vector; callers must not pass one (see spec §4.1).
func (v Vec3) Normalize() Vec3 {
	return v.Divide(v.Length())
}

// Negate returns the negative of the vector.
func (v Vec3) Negate() Vec3 {
	return Vec3{-v.X, -v.Y, -v.Z}
}

// Project returns the projection of v onto b: proj_b(v) = b * (v.b)/(b.b).
func (v Vec3) Project(b Vec3) Vec3 {
	return b.Multiply(v.Dot(b) / b.Dot(b))
}

// MultiplyVec returns the component-wise (Hadamard) product of two vectors.
func (v Vec3) MultiplyVec(other Vec3) Vec3 {
	return Vec3{v.X * other.X, v.Y * other.Y, v.Z * other.Z}
}

// Clamp returns a vector with components clamped to [minVal, maxVal].
func (v Vec3) Clamp(minVal, maxVal float64) Vec3 {
	return Vec3{
		X: max(minVal, min(maxVal, v.X)),
		Y: max(minVal, min(maxVal, v.Y)),
		Z: max(minVal, min(maxVal, v.Z)),
	}
}

// RotateX rotates the vector around the X axis by the given angle (radians).
func (v Vec3) RotateX(angle float64) Vec3 {
	c, s := math.Cos(angle), math.Sin(angle)
	return Vec3{v.X, v.Y*c - v.Z*s, v.Y*s + v.Z*c}
}

// RotateY rotates the vector around the Y axis by the given angle (radians).
func (v Vec3) RotateY(angle float64) Vec3 {
	c, s := math.Cos(angle), math.Sin(angle)
	return Vec3{v.X*c + v.Z*s, v.Y, -v.X*s + v.Z*c}
}

// RotateZ rotates the vector around the Z axis by the given angle (radians).
func (v Vec3) RotateZ(angle float64) Vec3 {
	c, s := math.Cos(angle), math.Sin(angle)
	return Vec3{v.X*c - v.Y*s, v.X*s + v.Y*c, v.Z}
}

// Rotate applies rotation around the X, Y and Z axes in that order.
// Angles are in radians.
func (v Vec3) Rotate(rotation Vec3) Vec3 {
	result := v
	if rotation.X != 0 {
		result = result.RotateX(rotation.X)
	}
	if rotation.Y != 0 {
		result = result.RotateY(rotation.Y)
	}
	if rotation.Z != 0 {
		result = result.RotateZ(rotation.Z)
	}
	return result
}

// Pow50 computes x^50 via repeated squaring (32+16+2 decomposition, 7
// multiplications instead of 49). Used for the fixed Blinn-Phong specular
// exponent.
func Pow50(x float64) float64 {
	x2 := x * x
	x4 := x2 * x2
	x8 := x4 * x4
	x16 := x8 * x8
	x32 := x16 * x16
	return x32 * x16 * x2
}
