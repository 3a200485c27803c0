package quat

import (
	"github.com/cwbudde/algo-gmath/internal/f32x4"
	"github.com/cwbudde/algo-gmath/scalar"
	"github.com/cwbudde/algo-gmath/vec"
)

// Slerp spherically interpolates from a to b along the shortest arc.
//
// Endpoints short-circuit: t within epsilon of 0 returns a, within epsilon
// of 1 returns b, and a equal to b returns a. The interior is evaluated
// with a branchless rational-polynomial scheme (from kwhatmough's fast
// slerp in GamePlay3D): no trigonometric call, no inverse trig, and no
// square root. t is folded into [0, 0.5] and the sign of the angle is
// folded into the a-coefficient, keeping the shortest path. The closing
// magnitude correction 1.5 - 0.5*|q|^2 is a second-order renormalization
// standing in for an exact normalize.
//
// The polynomial constants encode a Newton-refined minimax fit of
// 1/cos(theta/2) and the series-expansion coefficient ratios. They are not
// arbitrary and must not be "simplified".
func Slerp(a, b Quaternion, t float32) Quaternion {
	if scalar.Close(t, 0) {
		return a
	}
	if scalar.Close(t, 1) {
		return b
	}
	if a.Equal(b) {
		return a
	}

	cosTheta := f32x4.Dot4(a.lanes(), b.lanes())

	// Fold the angle: interpolate toward -b when the arc is long.
	alpha := float32(1)
	if cosTheta < 0 {
		alpha = -1
	}
	halfY := 1 + alpha*cosTheta

	// Bisect the interval, folding t into [0, 0.5].
	f2b := t - 0.5
	u := f2b
	if u < 0 {
		u = -u
	}
	f2a := u - f2b
	f2b += u
	u += u
	f1 := 1 - u

	// One Newton iteration refines 1/(2*cos(theta/2)) from the quadratic
	// seed, then versHalfTheta = 1 - cos(theta/2).
	halfSecHalfTheta := 1.09 - (0.476537-0.0903321*halfY)*halfY
	halfSecHalfTheta *= 1.5 - halfY*halfSecHalfTheta*halfSecHalfTheta
	versHalfTheta := 1 - halfY*halfSecHalfTheta

	// Series expansions of the two interpolation ratios.
	sqNotU := f1 * f1
	ratio2 := 0.0000440917108 * versHalfTheta
	ratio1 := -0.00158730159 + (sqNotU-16)*ratio2
	ratio1 = 0.0333333333 + ratio1*(sqNotU-9)*versHalfTheta
	ratio1 = -0.333333333 + ratio1*(sqNotU-4)*versHalfTheta
	ratio1 = 1 + ratio1*(sqNotU-1)*versHalfTheta

	sqU := u * u
	ratio2 = -0.00158730159 + (sqU-16)*ratio2
	ratio2 = 0.0333333333 + ratio2*(sqU-9)*versHalfTheta
	ratio2 = -0.333333333 + ratio2*(sqU-4)*versHalfTheta
	ratio2 = 1 + ratio2*(sqU-1)*versHalfTheta

	// Resolve the bisection and the angle folding.
	f1 *= ratio1 * halfSecHalfTheta
	f2a *= ratio2
	f2b *= ratio2
	alpha *= f1 + f2a
	beta := f1 + f2b

	x := alpha*a.X + beta*b.X
	y := alpha*a.Y + beta*b.Y
	z := alpha*a.Z + beta*b.Z
	w := alpha*a.W + beta*b.W

	// Second-order magnitude correction in place of an exact normalize.
	f1 = 1.5 - 0.5*(w*w+x*x+y*y+z*z)
	return Quaternion{x * f1, y * f1, z * f1, w * f1}
}

// Lerp linearly interpolates the raw components: a + (b-a)*t. The result
// is not renormalized and will not be a unit quaternion for large angular
// separations; normalizing is the caller's responsibility.
func Lerp(a, b Quaternion, t float32) Quaternion {
	l := vec.Lerp4(a.Vec4(), b.Vec4(), t)
	return Quaternion{l.X, l.Y, l.Z, l.W}
}
