//go:build fastmath

package f32x4

// Div returns a / b per lane by multiplying with the approximate
// reciprocal of b. The relative error is bounded by the Rcp tolerance and
// acceptable for real-time rendering; build without the fastmath tag for
// exact division.
func Div(a, b Vec) Vec {
	return mulLanes(a, rcpLanes(b))
}
