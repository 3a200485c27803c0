package quat

import "github.com/cwbudde/algo-gmath/vec"

// FromLookDirection builds the rotation that orients the forward axis
// (+z) along direction, with the given up hint. The basis is constructed
// exactly like the matrix look-at factory (z = direction, x = up cross z,
// y = z cross x) and converted through the trace extraction, so the
// quaternion and matrix look-at constructions agree by construction.
//
// A direction parallel to up yields a degenerate x axis and falls into the
// FromAxes near-zero-scale guard, returning Identity.
func FromLookDirection(direction, up vec.Vector3) Quaternion {
	zAxis := direction.Normalize()
	xAxis := up.Cross(zAxis).Normalize()
	yAxis := zAxis.Cross(xAxis)
	return FromAxes(xAxis, yAxis, zAxis)
}

// FromLookAt builds the rotation looking from one position toward
// another: FromLookDirection(to-from, up).
func FromLookAt(from, to, up vec.Vector3) Quaternion {
	return FromLookDirection(to.Sub(from), up)
}
