// Package mat implements a row-major 4x4 single-precision matrix over
// Vector4 rows, for affine and projective transforms.
//
// Transform treats its argument as a column vector: each result lane is a
// row-with-vector dot product (v' = M*v). Matrix4x4 is an immutable value
// type like everything else in this module; factory functions return fresh
// values and guarantee their documented semantic (rotation factories yield
// orthonormal upper-left 3x3 blocks up to floating-point error), while raw
// construction enforces nothing.
//
// Projection factories assert their preconditions (nonzero orthographic
// extent, distinct near/far planes) by panicking; the nochecks build tag
// compiles the checks out, leaving the result undefined on violation.
package mat

import (
	"github.com/cwbudde/algo-gmath/quat"
	"github.com/cwbudde/algo-gmath/vec"
)

// Matrix4x4 is a 4x4 row-major matrix stored as four Vector4 rows.
type Matrix4x4 [4]vec.Vector4

// Identity is the identity matrix. Initialized before any use and never
// written.
var Identity = Matrix4x4{
	{X: 1, Y: 0, Z: 0, W: 0},
	{X: 0, Y: 1, Z: 0, W: 0},
	{X: 0, Y: 0, Z: 1, W: 0},
	{X: 0, Y: 0, Z: 0, W: 1},
}

// FromRows builds a matrix from four row vectors.
func FromRows(r0, r1, r2, r3 vec.Vector4) Matrix4x4 {
	return Matrix4x4{r0, r1, r2, r3}
}

// FromBasis builds a matrix from three basis rows, with (0,0,0,1) as the
// fourth row.
func FromBasis(r0, r1, r2 vec.Vector3) Matrix4x4 {
	return Matrix4x4{
		r0.Vec4(0),
		r1.Vec4(0),
		r2.Vec4(0),
		vec.UnitW4,
	}
}

// FromValues builds a matrix from sixteen values in row-major order.
func FromValues(
	m00, m01, m02, m03,
	m10, m11, m12, m13,
	m20, m21, m22, m23,
	m30, m31, m32, m33 float32) Matrix4x4 {
	return Matrix4x4{
		{X: m00, Y: m01, Z: m02, W: m03},
		{X: m10, Y: m11, Z: m12, W: m13},
		{X: m20, Y: m21, Z: m22, W: m23},
		{X: m30, Y: m31, Z: m32, W: m33},
	}
}

// Uniform builds a matrix with every entry set to v.
func Uniform(v float32) Matrix4x4 {
	r := vec.Vector4{X: v, Y: v, Z: v, W: v}
	return Matrix4x4{r, r, r, r}
}

// FromQuaternion builds the rotation matrix for q using doubled products
// of the quaternion components. This is the exact inverse of
// [Matrix4x4.ToQuaternion]: the round trip reproduces q (up to sign)
// within the quaternion epsilon.
func FromQuaternion(q quat.Quaternion) Matrix4x4 {
	v := q.Vec4()
	q2 := v.Add(v)
	qq2 := v.Mul(q2)
	wq2 := q2.MulScalar(q.W)

	xy2 := q.X * q2.Y
	xz2 := q.X * q2.Z
	yz2 := q.Y * q2.Z

	return Matrix4x4{
		{X: 1 - qq2.Y - qq2.Z, Y: xy2 + wq2.Z, Z: xz2 - wq2.Y, W: 0},
		{X: xy2 - wq2.Z, Y: 1 - qq2.X - qq2.Z, Z: yz2 + wq2.X, W: 0},
		{X: xz2 + wq2.Y, Y: yz2 - wq2.X, Z: 1 - qq2.X - qq2.Y, W: 0},
		vec.UnitW4,
	}
}

// ToQuaternion extracts the rotation encoded in the upper-left 3x3 block
// via the trace method, tolerating per-axis scale. A near-zero scale on
// any axis yields quat.Identity.
func (m Matrix4x4) ToQuaternion() quat.Quaternion {
	return quat.FromAxes(m[0].XYZ(), m[1].XYZ(), m[2].XYZ())
}

// Transpose returns the transposed matrix. This is a pure permutation of
// entries with no floating-point drift: transposing twice returns the
// original exactly.
func (m Matrix4x4) Transpose() Matrix4x4 {
	return Matrix4x4{
		{X: m[0].X, Y: m[1].X, Z: m[2].X, W: m[3].X},
		{X: m[0].Y, Y: m[1].Y, Z: m[2].Y, W: m[3].Y},
		{X: m[0].Z, Y: m[1].Z, Z: m[2].Z, W: m[3].Z},
		{X: m[0].W, Y: m[1].W, Z: m[2].W, W: m[3].W},
	}
}

// Mul returns the matrix product m*o: each result entry is a row-of-m with
// column-of-o dot product.
func (m Matrix4x4) Mul(o Matrix4x4) Matrix4x4 {
	t := o.Transpose()
	var out Matrix4x4
	for r := range m {
		out[r] = vec.Vector4{
			X: m[r].Dot(t[0]),
			Y: m[r].Dot(t[1]),
			Z: m[r].Dot(t[2]),
			W: m[r].Dot(t[3]),
		}
	}
	return out
}

// Transform applies m to the column vector v: each result lane is a
// row-dot-v product.
func (m Matrix4x4) Transform(v vec.Vector4) vec.Vector4 {
	return vec.Vector4{
		X: m[0].Dot(v),
		Y: m[1].Dot(v),
		Z: m[2].Dot(v),
		W: m[3].Dot(v),
	}
}

// TransformPoint applies m to v as a position (w = 1), so translation
// applies.
func (m Matrix4x4) TransformPoint(v vec.Vector3) vec.Vector3 {
	return m.Transform(v.Vec4(1)).XYZ()
}

// TransformDirection applies m to v as a direction (w = 0), ignoring
// translation.
func (m Matrix4x4) TransformDirection(v vec.Vector3) vec.Vector3 {
	return m.Transform(v.Vec4(0)).XYZ()
}

// Row returns row r.
func (m Matrix4x4) Row(r int) vec.Vector4 {
	return m[r]
}

// Equal reports per-row, per-component closeness.
func (m Matrix4x4) Equal(o Matrix4x4) bool {
	return m[0].Equal(o[0]) && m[1].Equal(o[1]) && m[2].Equal(o[2]) && m[3].Equal(o[3])
}
