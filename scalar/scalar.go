// Package scalar provides the floating-point closeness predicate and the
// per-type tolerance constants used by every degenerate-case branch in the
// vector, quaternion, and matrix kernels.
//
// Exact float32 equality is never used in this module. Every "is this a zero
// vector", "is this already normalized", "is t at an interpolation endpoint"
// decision goes through [CloseEnough] with a tolerance scaled to the number
// of lanes that contributed accumulation error.
package scalar

import "github.com/chewxy/math32"

// Epsilon is the base float32 machine epsilon (2^-23), the smallest value
// such that 1+Epsilon != 1.
const Epsilon float32 = 0x1p-23

// Per-type tolerances. Each is the base epsilon scaled by the number of
// lanes whose rounding error can accumulate in a magnitude or dot product.
const (
	// Vector2Epsilon is the tolerance for two-lane accumulations.
	Vector2Epsilon = Epsilon * 2

	// Vector3Epsilon is the tolerance for three-lane accumulations.
	Vector3Epsilon = Epsilon * 3

	// Vector4Epsilon is the tolerance for four-lane accumulations.
	Vector4Epsilon = Epsilon * 4

	// QuaternionEpsilon is the tolerance for quaternion magnitude checks.
	// Quaternions accumulate over four lanes like Vector4.
	QuaternionEpsilon = Epsilon * 4
)

// Angle unit conversion factors.
const (
	Deg2Rad float32 = math32.Pi / 180
	Rad2Deg float32 = 180 / math32.Pi
)

// CloseEnough reports whether value is within tolerance of target:
// |value - target| <= tolerance.
//
// Behavior on non-finite inputs is deliberately "never close": a NaN on
// either side compares false, and an Inf compares false against anything,
// including the same Inf (the difference is NaN).
func CloseEnough(value, target, tolerance float32) bool {
	return math32.Abs(value-target) <= tolerance
}

// Close is CloseEnough with the base Epsilon tolerance.
func Close(a, b float32) bool {
	return CloseEnough(a, b, Epsilon)
}
