//go:build !fastmath

package scalar

import "github.com/chewxy/math32"

// Sqrt computes the exact single-precision square root.
func Sqrt(x float32) float32 {
	return math32.Sqrt(x)
}
