package vec

import (
	"github.com/chewxy/math32"

	"github.com/cwbudde/algo-gmath/internal/f32x4"
	"github.com/cwbudde/algo-gmath/scalar"
)

// Vector3 is a three-component single-precision vector. Its arithmetic
// runs on the 4-wide primitive layer with the fourth lane held at zero, so
// padding never contributes to magnitude, dot, or cross results.
type Vector3 struct {
	X, Y, Z float32
}

func (v Vector3) lanes() f32x4.Vec {
	return f32x4.Vec{v.X, v.Y, v.Z, 0}
}

func vec3(l f32x4.Vec) Vector3 {
	return Vector3{l[0], l[1], l[2]}
}

// Add returns v + o componentwise.
func (v Vector3) Add(o Vector3) Vector3 {
	return vec3(f32x4.Add(v.lanes(), o.lanes()))
}

// Sub returns v - o componentwise.
func (v Vector3) Sub(o Vector3) Vector3 {
	return vec3(f32x4.Sub(v.lanes(), o.lanes()))
}

// Mul returns v * o componentwise.
func (v Vector3) Mul(o Vector3) Vector3 {
	return vec3(f32x4.Mul(v.lanes(), o.lanes()))
}

// Div returns v / o componentwise. Under the fastmath build tag the
// division uses the approximate reciprocal path.
func (v Vector3) Div(o Vector3) Vector3 {
	return vec3(f32x4.Div(v.lanes(), o.lanes()))
}

// AddScalar returns v with s added to every component.
func (v Vector3) AddScalar(s float32) Vector3 {
	return vec3(f32x4.Add(v.lanes(), f32x4.Vec{s, s, s, 0}))
}

// SubScalar returns v with s subtracted from every component.
func (v Vector3) SubScalar(s float32) Vector3 {
	return vec3(f32x4.Sub(v.lanes(), f32x4.Vec{s, s, s, 0}))
}

// MulScalar returns v scaled by s.
func (v Vector3) MulScalar(s float32) Vector3 {
	return vec3(f32x4.Scale(v.lanes(), s))
}

// DivScalar returns v divided by s. Under the fastmath build tag the
// division uses the approximate reciprocal path.
func (v Vector3) DivScalar(s float32) Vector3 {
	return vec3(f32x4.Div(v.lanes(), f32x4.Splat(s)))
}

// Neg returns -v.
func (v Vector3) Neg() Vector3 {
	return vec3(f32x4.Neg(v.lanes()))
}

// Sum returns X + Y + Z.
func (v Vector3) Sum() float32 {
	return f32x4.Sum3(v.lanes())
}

// ZYX returns the component-reversed vector (Z, Y, X).
func (v Vector3) ZYX() Vector3 {
	return Vector3{v.Z, v.Y, v.X}
}

// Magnitude returns the Euclidean length of v.
func (v Vector3) Magnitude() float32 {
	return scalar.Sqrt(v.MagnitudeSquared())
}

// MagnitudeSquared returns the squared length of v, avoiding the square
// root.
func (v Vector3) MagnitudeSquared() float32 {
	l := v.lanes()
	return f32x4.Dot3(l, l)
}

// Normalize returns v scaled to unit length. A vector already within
// Vector3Epsilon of unit squared magnitude is returned unchanged (no
// square root), and a near-zero vector is returned unchanged as a
// deliberate no-op rather than producing NaN.
func (v Vector3) Normalize() Vector3 {
	sq := v.MagnitudeSquared()
	if scalar.CloseEnough(sq, 1, scalar.Vector3Epsilon) {
		return v
	}
	mag := scalar.Sqrt(sq)
	if scalar.CloseEnough(mag, 0, scalar.Vector3Epsilon) {
		return v
	}
	return v.DivScalar(mag)
}

// IsZero reports whether v is within Vector3Epsilon of the zero vector.
func (v Vector3) IsZero() bool {
	return scalar.CloseEnough(v.MagnitudeSquared(), 0, scalar.Vector3Epsilon)
}

// IsNormalized reports whether v is within Vector3Epsilon of unit length.
func (v Vector3) IsNormalized() bool {
	return scalar.CloseEnough(v.MagnitudeSquared(), 1, scalar.Vector3Epsilon)
}

// Dot returns the dot product of v and o over the three meaningful lanes.
func (v Vector3) Dot(o Vector3) float32 {
	return f32x4.Dot3(v.lanes(), o.lanes())
}

// Cross returns the cross product of v and o. The result is orthogonal to
// both inputs (right-handed).
func (v Vector3) Cross(o Vector3) Vector3 {
	return Vector3{
		v.Y*o.Z - v.Z*o.Y,
		v.Z*o.X - v.X*o.Z,
		v.X*o.Y - v.Y*o.X,
	}
}

// AngleRadians returns the unsigned angle between v and o in radians,
// computed as atan2(|v×o|, v·o).
func (v Vector3) AngleRadians(o Vector3) float32 {
	c := v.Cross(o)
	return math32.Atan2(scalar.Sqrt(c.MagnitudeSquared())+scalar.Vector3Epsilon, v.Dot(o))
}

// AngleDegrees returns the unsigned angle between v and o in degrees.
func (v Vector3) AngleDegrees(o Vector3) float32 {
	return v.AngleRadians(o) * scalar.Rad2Deg
}

// Distance returns the Euclidean distance between v and o.
func (v Vector3) Distance(o Vector3) float32 {
	return v.Sub(o).Magnitude()
}

// DistanceSquared returns the squared distance between v and o.
func (v Vector3) DistanceSquared(o Vector3) float32 {
	return v.Sub(o).MagnitudeSquared()
}

// Lerp3 linearly interpolates between a and b: a + (b-a)*t.
func Lerp3(a, b Vector3, t float32) Vector3 {
	return a.Add(b.Sub(a).MulScalar(t))
}

// Max3 returns whichever of a and b has the larger magnitude.
func Max3(a, b Vector3) Vector3 {
	if a.MagnitudeSquared() >= b.MagnitudeSquared() {
		return a
	}
	return b
}

// Min3 returns whichever of a and b has the smaller magnitude.
func Min3(a, b Vector3) Vector3 {
	if a.MagnitudeSquared() <= b.MagnitudeSquared() {
		return a
	}
	return b
}

// Equal reports per-component closeness within Vector3Epsilon.
func (v Vector3) Equal(o Vector3) bool {
	return scalar.CloseEnough(v.X, o.X, scalar.Vector3Epsilon) &&
		scalar.CloseEnough(v.Y, o.Y, scalar.Vector3Epsilon) &&
		scalar.CloseEnough(v.Z, o.Z, scalar.Vector3Epsilon)
}

// NotEqual is the negation of Equal.
func (v Vector3) NotEqual(o Vector3) bool {
	return !v.Equal(o)
}

// EqualScalar reports whether the magnitude of v is within Vector3Epsilon
// of |s|.
func (v Vector3) EqualScalar(s float32) bool {
	return scalar.CloseEnough(v.MagnitudeSquared(), s*s, scalar.Vector3Epsilon)
}

// Less reports whether v has a smaller magnitude than o.
func (v Vector3) Less(o Vector3) bool {
	return v.MagnitudeSquared() < o.MagnitudeSquared()
}

// LessEq reports whether v has a magnitude no larger than o's.
func (v Vector3) LessEq(o Vector3) bool {
	return v.MagnitudeSquared() <= o.MagnitudeSquared()
}

// Greater reports whether v has a larger magnitude than o.
func (v Vector3) Greater(o Vector3) bool {
	return v.MagnitudeSquared() > o.MagnitudeSquared()
}

// GreaterEq reports whether v has a magnitude no smaller than o's.
func (v Vector3) GreaterEq(o Vector3) bool {
	return v.MagnitudeSquared() >= o.MagnitudeSquared()
}

// LessScalar reports whether the magnitude of v is smaller than |s|.
func (v Vector3) LessScalar(s float32) bool {
	return v.MagnitudeSquared() < s*s
}

// LessEqScalar reports whether the magnitude of v is no larger than |s|.
func (v Vector3) LessEqScalar(s float32) bool {
	return v.MagnitudeSquared() <= s*s
}

// GreaterScalar reports whether the magnitude of v is larger than |s|.
func (v Vector3) GreaterScalar(s float32) bool {
	return v.MagnitudeSquared() > s*s
}

// GreaterEqScalar reports whether the magnitude of v is no smaller than
// |s|.
func (v Vector3) GreaterEqScalar(s float32) bool {
	return v.MagnitudeSquared() >= s*s
}

// XY narrows v to a Vector2, dropping Z.
func (v Vector3) XY() Vector2 {
	return Vector2{v.X, v.Y}
}

// Vec4 widens v to a Vector4 with the given w.
func (v Vector3) Vec4(w float32) Vector4 {
	return Vector4{v.X, v.Y, v.Z, w}
}
