//go:build fastmath

package scalar

import "github.com/meko-christian/algo-approx"

// Sqrt computes the square root using a fast approximation.
//
// The relative error is bounded and acceptable for real-time rendering;
// build without the fastmath tag for the exact square root.
func Sqrt(x float32) float32 {
	return float32(approx.FastSqrt(float64(x)))
}
