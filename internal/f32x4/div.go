//go:build !fastmath

package f32x4

// Div returns a / b per lane using exact division.
func Div(a, b Vec) Vec {
	return divLanes(a, b)
}
