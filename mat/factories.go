package mat

import (
	"github.com/chewxy/math32"

	"github.com/cwbudde/algo-gmath/scalar"
	"github.com/cwbudde/algo-gmath/vec"
)

// ScaleUniform builds a uniform scale matrix.
func ScaleUniform(xyz float32) Matrix4x4 {
	return Scale(xyz, xyz, xyz)
}

// Scale builds a non-uniform scale matrix.
func Scale(x, y, z float32) Matrix4x4 {
	return Matrix4x4{
		{X: x, Y: 0, Z: 0, W: 0},
		{X: 0, Y: y, Z: 0, W: 0},
		{X: 0, Y: 0, Z: z, W: 0},
		{X: 0, Y: 0, Z: 0, W: 1},
	}
}

// ScaleVec builds a non-uniform scale matrix from v.
func ScaleVec(v vec.Vector3) Matrix4x4 {
	return Scale(v.X, v.Y, v.Z)
}

// Translation builds a translation matrix with the offset in the fourth
// column (column-vector convention).
func Translation(x, y, z float32) Matrix4x4 {
	return Matrix4x4{
		{X: 1, Y: 0, Z: 0, W: x},
		{X: 0, Y: 1, Z: 0, W: y},
		{X: 0, Y: 0, Z: 1, W: z},
		{X: 0, Y: 0, Z: 0, W: 1},
	}
}

// TranslationVec builds a translation matrix from v.
func TranslationVec(v vec.Vector3) Matrix4x4 {
	return Translation(v.X, v.Y, v.Z)
}

// RotationXRadians builds a rotation about the x axis.
func RotationXRadians(radians float32) Matrix4x4 {
	sinr, cosr := math32.Sincos(radians)
	return Matrix4x4{
		{X: 1, Y: 0, Z: 0, W: 0},
		{X: 0, Y: cosr, Z: -sinr, W: 0},
		{X: 0, Y: sinr, Z: cosr, W: 0},
		{X: 0, Y: 0, Z: 0, W: 1},
	}
}

// RotationYRadians builds a rotation about the y axis.
func RotationYRadians(radians float32) Matrix4x4 {
	sinr, cosr := math32.Sincos(radians)
	return Matrix4x4{
		{X: cosr, Y: 0, Z: -sinr, W: 0},
		{X: 0, Y: 1, Z: 0, W: 0},
		{X: sinr, Y: 0, Z: cosr, W: 0},
		{X: 0, Y: 0, Z: 0, W: 1},
	}
}

// RotationZRadians builds a rotation about the z axis.
func RotationZRadians(radians float32) Matrix4x4 {
	sinr, cosr := math32.Sincos(radians)
	return Matrix4x4{
		{X: cosr, Y: -sinr, Z: 0, W: 0},
		{X: sinr, Y: cosr, Z: 0, W: 0},
		{X: 0, Y: 0, Z: 1, W: 0},
		{X: 0, Y: 0, Z: 0, W: 1},
	}
}

// RotationRadians builds the composite rotation Y*(X*Z). The composition
// order is a compatibility contract and must not change.
func RotationRadians(x, y, z float32) Matrix4x4 {
	mx := RotationXRadians(x)
	my := RotationYRadians(y)
	mz := RotationZRadians(z)
	return my.Mul(mx.Mul(mz))
}

// RotationRadiansVec is RotationRadians over the components of v.
func RotationRadiansVec(v vec.Vector3) Matrix4x4 {
	return RotationRadians(v.X, v.Y, v.Z)
}

// AxisAngleRadians builds a rotation of radians about an arbitrary axis
// using Rodrigues' formula. The axis must be unit length.
func AxisAngleRadians(a vec.Vector3, radians float32) Matrix4x4 {
	s, c := math32.Sincos(radians)
	t := 1 - c
	x, y, z := a.X, a.Y, a.Z
	return Matrix4x4{
		{X: t*x*x + c, Y: t*x*y - z*s, Z: t*x*z + y*s, W: 0},
		{X: t*x*y + z*s, Y: t*y*y + c, Z: t*y*z - x*s, W: 0},
		{X: t*x*z - y*s, Y: t*y*z + x*s, Z: t*z*z + c, W: 0},
		{X: 0, Y: 0, Z: 0, W: 1},
	}
}

// Degrees variants convert and delegate to the radians factories.

// RotationXDegrees builds a rotation about the x axis.
func RotationXDegrees(degrees float32) Matrix4x4 {
	return RotationXRadians(degrees * scalar.Deg2Rad)
}

// RotationYDegrees builds a rotation about the y axis.
func RotationYDegrees(degrees float32) Matrix4x4 {
	return RotationYRadians(degrees * scalar.Deg2Rad)
}

// RotationZDegrees builds a rotation about the z axis.
func RotationZDegrees(degrees float32) Matrix4x4 {
	return RotationZRadians(degrees * scalar.Deg2Rad)
}

// RotationDegrees builds the composite rotation Y*(X*Z) from degrees.
func RotationDegrees(x, y, z float32) Matrix4x4 {
	return RotationRadians(x*scalar.Deg2Rad, y*scalar.Deg2Rad, z*scalar.Deg2Rad)
}

// AxisAngleDegrees builds a rotation about an arbitrary unit axis from
// degrees.
func AxisAngleDegrees(a vec.Vector3, degrees float32) Matrix4x4 {
	return AxisAngleRadians(a, degrees*scalar.Deg2Rad)
}
