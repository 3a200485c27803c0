// Package f32x4 is the 4-wide float32 primitive layer shared by the vector,
// quaternion, and matrix kernels.
//
// Two backends implement the same operation set: SSE assembly on amd64 and a
// pure Go fallback. The backend is selected at build time (the purego build
// tag forces the Go fallback, as does any non-amd64 target); on amd64 the
// ForceGeneric control flag from algo-vecmath/cpu additionally routes all
// calls to the Go fallback, which tests use to compare the two paths.
//
// Both backends produce identical results for every operation except [Rcp],
// whose hardware path starts from the RCPPS estimate; after one Newton
// refinement the two paths agree to within about 2^-21 relative error. The
// fastmath build tag swaps [Div] from exact division onto [Rcp], which is
// the only way a division result can differ between backends.
package f32x4

// Vec is a 4-lane float32 vector. Lane 3 carries the w component for
// four-lane semantics; three-lane callers must keep lane 3 zero so the
// masked reductions (Sum3, Dot3) stay exact.
type Vec [4]float32

// Splat returns a Vec with all four lanes set to s.
func Splat(s float32) Vec {
	return Vec{s, s, s, s}
}

// Add returns a + b per lane.
func Add(a, b Vec) Vec { return addLanes(a, b) }

// Sub returns a - b per lane.
func Sub(a, b Vec) Vec { return subLanes(a, b) }

// Mul returns a * b per lane.
func Mul(a, b Vec) Vec { return mulLanes(a, b) }

// Scale returns a * s per lane.
func Scale(a Vec, s float32) Vec {
	return mulLanes(a, Splat(s))
}

// Neg returns -a per lane.
func Neg(a Vec) Vec {
	return mulLanes(a, Splat(-1))
}

// Rcp returns an approximation of 1/a per lane. On the SSE backend this is
// the RCPPS estimate refined by one Newton step; the Go fallback divides
// exactly. Lanes holding zero produce non-finite values (Inf on the Go
// fallback, NaN on the SSE path where the refinement multiplies 0 by Inf),
// so callers must gate out zero divisors themselves.
func Rcp(a Vec) Vec { return rcpLanes(a) }

// Sum returns the horizontal sum of all four lanes.
func Sum(a Vec) float32 { return sumLanes(a) }

// Sum3 returns the horizontal sum of lanes 0..2, masking lane 3 so a stray
// w value can never leak into a three-lane reduction.
func Sum3(a Vec) float32 { return sum3Lanes(a) }

// Dot4 returns the four-lane dot product of a and b.
func Dot4(a, b Vec) float32 {
	return sumLanes(mulLanes(a, b))
}

// Dot3 returns the three-lane dot product of a and b, ignoring lane 3.
func Dot3(a, b Vec) float32 {
	return sum3Lanes(mulLanes(a, b))
}
