// Package quat implements a single-precision rotation quaternion with
// conversions to and from axis-angle, Euler-angle, and rotation-basis
// representations, plus linear and spherical interpolation.
//
// Quaternion is an immutable value type. A "valid rotation" value has a
// squared magnitude within QuaternionEpsilon of 1; this is established by
// Normalize and by the rotation constructors but never enforced on raw
// construction. The Zero quaternion is a valid non-rotation value: Inverse
// and Normalize leave it unchanged rather than producing NaN.
package quat

import (
	"github.com/chewxy/math32"

	"github.com/cwbudde/algo-gmath/internal/f32x4"
	"github.com/cwbudde/algo-gmath/scalar"
	"github.com/cwbudde/algo-gmath/vec"
)

// Quaternion is a rotation (x, y, z, w) with the vector part in X, Y, Z
// and the scalar part in W.
type Quaternion struct {
	X, Y, Z, W float32
}

// Named quaternion values. Initialized before any use and never written.
var (
	// Identity is the no-rotation quaternion.
	Identity = Quaternion{0, 0, 0, 1}

	// Zero is the all-zero quaternion, a valid non-rotation value.
	Zero = Quaternion{0, 0, 0, 0}
)

func (q Quaternion) lanes() f32x4.Vec {
	return f32x4.Vec{q.X, q.Y, q.Z, q.W}
}

// squareSum is the four-lane sum of squares, the quantity every epsilon
// gate in this package tests.
func (q Quaternion) squareSum() float32 {
	l := q.lanes()
	return f32x4.Dot4(l, l)
}

// FromAxisAngle builds the rotation of radians about axis. The axis is
// normalized first; the result is (sin(r/2)*axis, cos(r/2)).
func FromAxisAngle(axis vec.Vector3, radians float32) Quaternion {
	hr := radians * 0.5
	n := axis.Normalize().MulScalar(math32.Sin(hr))
	return Quaternion{n.X, n.Y, n.Z, math32.Cos(hr)}
}

// FromEuler builds the rotation described by Euler angles in radians,
// composed in apply-X, apply-Y, apply-Z order: the product
// FromAxisAngle(z) * FromAxisAngle(y) * FromAxisAngle(x) expanded into
// closed-form half-angle products. The ordering is a compatibility
// contract and must not change.
func FromEuler(x, y, z float32) Quaternion {
	sx, cx := math32.Sincos(x * 0.5)
	sy, cy := math32.Sincos(y * 0.5)
	sz, cz := math32.Sincos(z * 0.5)

	return Quaternion{
		X: sx*cy*cz - cx*sy*sz,
		Y: cx*sy*cz + sx*cy*sz,
		Z: cx*cy*sz - sx*sy*cz,
		W: cx*cy*cz + sx*sy*sz,
	}
}

// FromEulerVec is FromEuler over the components of v.
func FromEulerVec(v vec.Vector3) Quaternion {
	return FromEuler(v.X, v.Y, v.Z)
}

// FromAxes extracts the rotation from an orthogonal basis given as the
// three rows of a row-major rotation matrix. Each axis is divided by its
// own magnitude first, so uniformly or non-uniformly scaled bases are
// accepted; if any axis has near-zero scale the rotation is unrecoverable
// and Identity is returned.
//
// The extraction is the standard numerically stable trace method: the
// direct formula when trace > 1, otherwise the branch for the dominant
// diagonal axis. The four branches avoid the catastrophic cancellation the
// direct formula suffers near 180-degree rotations.
func FromAxes(xAxis, yAxis, zAxis vec.Vector3) Quaternion {
	sx := xAxis.Magnitude()
	sy := yAxis.Magnitude()
	sz := zAxis.Magnitude()

	// All magnitudes are non-negative, no abs needed.
	if sx <= scalar.Epsilon || sy <= scalar.Epsilon || sz <= scalar.Epsilon {
		return Identity
	}

	xAxis = xAxis.DivScalar(sx)
	yAxis = yAxis.DivScalar(sy)
	zAxis = zAxis.DivScalar(sz)

	trace := xAxis.X + yAxis.Y + zAxis.Z + 1

	switch {
	case trace > 1:
		s := 0.5 / scalar.Sqrt(trace)
		return Quaternion{
			X: (yAxis.Z - zAxis.Y) * s,
			Y: (zAxis.X - xAxis.Z) * s,
			Z: (xAxis.Y - yAxis.X) * s,
			W: 0.25 / s,
		}
	case xAxis.X > yAxis.Y && xAxis.X > zAxis.Z:
		s := 0.5 / scalar.Sqrt(1+xAxis.X-yAxis.Y-zAxis.Z)
		return Quaternion{
			X: 0.25 / s,
			Y: (yAxis.X + xAxis.Y) * s,
			Z: (zAxis.X + xAxis.Z) * s,
			W: (yAxis.Z - zAxis.Y) * s,
		}
	case yAxis.Y > zAxis.Z:
		s := 0.5 / scalar.Sqrt(1+yAxis.Y-xAxis.X-zAxis.Z)
		return Quaternion{
			X: (yAxis.X + xAxis.Y) * s,
			Y: 0.25 / s,
			Z: (zAxis.Y + yAxis.Z) * s,
			W: (zAxis.X - xAxis.Z) * s,
		}
	default:
		s := 0.5 / scalar.Sqrt(1+zAxis.Z-xAxis.X-yAxis.Y)
		return Quaternion{
			X: (zAxis.X + xAxis.Z) * s,
			Y: (zAxis.Y + yAxis.Z) * s,
			Z: 0.25 / s,
			W: (xAxis.Y - yAxis.X) * s,
		}
	}
}

// Conjugate returns q with the vector part negated.
func (q Quaternion) Conjugate() Quaternion {
	return Quaternion{-q.X, -q.Y, -q.Z, q.W}
}

// Inverse returns the rotation that undoes q. A unit quaternion (squared
// magnitude within QuaternionEpsilon of 1) inverts to its conjugate with
// no division. The zero quaternion cannot be inverted and is returned
// unchanged. Otherwise the inverse is the conjugate scaled by the
// reciprocal squared magnitude.
func (q Quaternion) Inverse() Quaternion {
	sq := q.squareSum()
	if scalar.CloseEnough(sq, 1, scalar.QuaternionEpsilon) {
		return q.Conjugate()
	}
	if scalar.CloseEnough(sq, 0, scalar.QuaternionEpsilon) {
		return q
	}
	c := q.Conjugate()
	l := f32x4.Div(c.lanes(), f32x4.Splat(sq))
	return Quaternion{l[0], l[1], l[2], l[3]}
}

// Normalize returns q scaled to unit magnitude over all four lanes, with
// the same epsilon gates as vector normalization: a near-unit value is
// returned unchanged without the square root, and a near-zero value is
// returned unchanged as a deliberate no-op.
func (q Quaternion) Normalize() Quaternion {
	sq := q.squareSum()
	if scalar.CloseEnough(sq, 1, scalar.QuaternionEpsilon) {
		return q
	}
	mag := scalar.Sqrt(sq)
	if scalar.CloseEnough(mag, 0, scalar.QuaternionEpsilon) {
		return q
	}
	l := f32x4.Div(q.lanes(), f32x4.Splat(mag))
	return Quaternion{l[0], l[1], l[2], l[3]}
}

// IsUnit reports whether the squared magnitude of q is within
// QuaternionEpsilon of 1.
func (q Quaternion) IsUnit() bool {
	return scalar.CloseEnough(q.squareSum(), 1, scalar.QuaternionEpsilon)
}

// AxisAngle extracts the rotation axis and angle in radians. The
// quaternion is normalized first; the angle is 2*acos(w) and the axis is
// the normalized vector part. For Identity the axis is the zero vector.
func (q Quaternion) AxisAngle() (vec.Vector3, float32) {
	n := q.Normalize()
	axis := vec.Vector3{X: n.X, Y: n.Y, Z: n.Z}.Normalize()
	return axis, 2 * math32.Acos(n.W)
}

// Mul returns the Hamilton product q*o, the rotation o followed by q.
func (q Quaternion) Mul(o Quaternion) Quaternion {
	return Quaternion{
		X: q.W*o.X + q.X*o.W + q.Y*o.Z - q.Z*o.Y,
		Y: q.W*o.Y - q.X*o.Z + q.Y*o.W + q.Z*o.X,
		Z: q.W*o.Z + q.X*o.Y - q.Y*o.X + q.Z*o.W,
		W: q.W*o.W - q.X*o.X - q.Y*o.Y - q.Z*o.Z,
	}
}

// Rotate applies the rotation q to v using the expanded q*v*q^-1 form
// (two cross products, no quaternion products).
func (q Quaternion) Rotate(v vec.Vector3) vec.Vector3 {
	u := vec.Vector3{X: q.X, Y: q.Y, Z: q.Z}
	t := u.Cross(v).MulScalar(2)
	return v.Add(t.MulScalar(q.W)).Add(u.Cross(t))
}

// Equal reports per-component closeness within QuaternionEpsilon. Note
// that q and its negation represent the same rotation but are not Equal.
func (q Quaternion) Equal(o Quaternion) bool {
	return scalar.CloseEnough(q.X, o.X, scalar.QuaternionEpsilon) &&
		scalar.CloseEnough(q.Y, o.Y, scalar.QuaternionEpsilon) &&
		scalar.CloseEnough(q.Z, o.Z, scalar.QuaternionEpsilon) &&
		scalar.CloseEnough(q.W, o.W, scalar.QuaternionEpsilon)
}

// Vec4 returns the raw components as a Vector4.
func (q Quaternion) Vec4() vec.Vector4 {
	return vec.Vector4{X: q.X, Y: q.Y, Z: q.Z, W: q.W}
}
