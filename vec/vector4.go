package vec

import (
	"github.com/cwbudde/algo-gmath/internal/f32x4"
	"github.com/cwbudde/algo-gmath/scalar"
)

// Vector4 is a four-component single-precision vector with all four lanes
// semantically meaningful.
type Vector4 struct {
	X, Y, Z, W float32
}

func (v Vector4) lanes() f32x4.Vec {
	return f32x4.Vec{v.X, v.Y, v.Z, v.W}
}

func vec4(l f32x4.Vec) Vector4 {
	return Vector4{l[0], l[1], l[2], l[3]}
}

// Add returns v + o componentwise.
func (v Vector4) Add(o Vector4) Vector4 {
	return vec4(f32x4.Add(v.lanes(), o.lanes()))
}

// Sub returns v - o componentwise.
func (v Vector4) Sub(o Vector4) Vector4 {
	return vec4(f32x4.Sub(v.lanes(), o.lanes()))
}

// Mul returns v * o componentwise.
func (v Vector4) Mul(o Vector4) Vector4 {
	return vec4(f32x4.Mul(v.lanes(), o.lanes()))
}

// Div returns v / o componentwise. Under the fastmath build tag the
// division uses the approximate reciprocal path.
func (v Vector4) Div(o Vector4) Vector4 {
	return vec4(f32x4.Div(v.lanes(), o.lanes()))
}

// AddScalar returns v with s added to every component.
func (v Vector4) AddScalar(s float32) Vector4 {
	return vec4(f32x4.Add(v.lanes(), f32x4.Splat(s)))
}

// SubScalar returns v with s subtracted from every component.
func (v Vector4) SubScalar(s float32) Vector4 {
	return vec4(f32x4.Sub(v.lanes(), f32x4.Splat(s)))
}

// MulScalar returns v scaled by s.
func (v Vector4) MulScalar(s float32) Vector4 {
	return vec4(f32x4.Scale(v.lanes(), s))
}

// DivScalar returns v divided by s. Under the fastmath build tag the
// division uses the approximate reciprocal path.
func (v Vector4) DivScalar(s float32) Vector4 {
	return vec4(f32x4.Div(v.lanes(), f32x4.Splat(s)))
}

// Neg returns -v.
func (v Vector4) Neg() Vector4 {
	return vec4(f32x4.Neg(v.lanes()))
}

// Sum returns X + Y + Z + W.
func (v Vector4) Sum() float32 {
	return f32x4.Sum(v.lanes())
}

// Magnitude returns the Euclidean length of v over all four lanes.
func (v Vector4) Magnitude() float32 {
	return scalar.Sqrt(v.MagnitudeSquared())
}

// MagnitudeSquared returns the squared length of v over all four lanes.
func (v Vector4) MagnitudeSquared() float32 {
	l := v.lanes()
	return f32x4.Dot4(l, l)
}

// Normalize returns v scaled to unit length. A vector already within
// Vector4Epsilon of unit squared magnitude is returned unchanged, and a
// near-zero vector is returned unchanged as a deliberate no-op.
func (v Vector4) Normalize() Vector4 {
	sq := v.MagnitudeSquared()
	if scalar.CloseEnough(sq, 1, scalar.Vector4Epsilon) {
		return v
	}
	mag := scalar.Sqrt(sq)
	if scalar.CloseEnough(mag, 0, scalar.Vector4Epsilon) {
		return v
	}
	return v.DivScalar(mag)
}

// IsZero reports whether v is within Vector4Epsilon of the zero vector.
func (v Vector4) IsZero() bool {
	return scalar.CloseEnough(v.MagnitudeSquared(), 0, scalar.Vector4Epsilon)
}

// IsNormalized reports whether v is within Vector4Epsilon of unit length.
func (v Vector4) IsNormalized() bool {
	return scalar.CloseEnough(v.MagnitudeSquared(), 1, scalar.Vector4Epsilon)
}

// Dot returns the four-lane dot product of v and o.
func (v Vector4) Dot(o Vector4) float32 {
	return f32x4.Dot4(v.lanes(), o.lanes())
}

// Distance returns the Euclidean distance between v and o.
func (v Vector4) Distance(o Vector4) float32 {
	return v.Sub(o).Magnitude()
}

// DistanceSquared returns the squared distance between v and o.
func (v Vector4) DistanceSquared(o Vector4) float32 {
	return v.Sub(o).MagnitudeSquared()
}

// Lerp4 linearly interpolates between a and b: a + (b-a)*t.
func Lerp4(a, b Vector4, t float32) Vector4 {
	return a.Add(b.Sub(a).MulScalar(t))
}

// Max4 returns whichever of a and b has the larger magnitude.
func Max4(a, b Vector4) Vector4 {
	if a.MagnitudeSquared() >= b.MagnitudeSquared() {
		return a
	}
	return b
}

// Min4 returns whichever of a and b has the smaller magnitude.
func Min4(a, b Vector4) Vector4 {
	if a.MagnitudeSquared() <= b.MagnitudeSquared() {
		return a
	}
	return b
}

// Equal reports per-component closeness within Vector4Epsilon.
func (v Vector4) Equal(o Vector4) bool {
	return scalar.CloseEnough(v.X, o.X, scalar.Vector4Epsilon) &&
		scalar.CloseEnough(v.Y, o.Y, scalar.Vector4Epsilon) &&
		scalar.CloseEnough(v.Z, o.Z, scalar.Vector4Epsilon) &&
		scalar.CloseEnough(v.W, o.W, scalar.Vector4Epsilon)
}

// NotEqual is the negation of Equal.
func (v Vector4) NotEqual(o Vector4) bool {
	return !v.Equal(o)
}

// EqualScalar reports whether the magnitude of v is within Vector4Epsilon
// of |s|.
func (v Vector4) EqualScalar(s float32) bool {
	return scalar.CloseEnough(v.MagnitudeSquared(), s*s, scalar.Vector4Epsilon)
}

// Less reports whether v has a smaller magnitude than o.
func (v Vector4) Less(o Vector4) bool {
	return v.MagnitudeSquared() < o.MagnitudeSquared()
}

// LessEq reports whether v has a magnitude no larger than o's.
func (v Vector4) LessEq(o Vector4) bool {
	return v.MagnitudeSquared() <= o.MagnitudeSquared()
}

// Greater reports whether v has a larger magnitude than o.
func (v Vector4) Greater(o Vector4) bool {
	return v.MagnitudeSquared() > o.MagnitudeSquared()
}

// GreaterEq reports whether v has a magnitude no smaller than o's.
func (v Vector4) GreaterEq(o Vector4) bool {
	return v.MagnitudeSquared() >= o.MagnitudeSquared()
}

// LessScalar reports whether the magnitude of v is smaller than |s|.
func (v Vector4) LessScalar(s float32) bool {
	return v.MagnitudeSquared() < s*s
}

// LessEqScalar reports whether the magnitude of v is no larger than |s|.
func (v Vector4) LessEqScalar(s float32) bool {
	return v.MagnitudeSquared() <= s*s
}

// GreaterScalar reports whether the magnitude of v is larger than |s|.
func (v Vector4) GreaterScalar(s float32) bool {
	return v.MagnitudeSquared() > s*s
}

// GreaterEqScalar reports whether the magnitude of v is no smaller than
// |s|.
func (v Vector4) GreaterEqScalar(s float32) bool {
	return v.MagnitudeSquared() >= s*s
}

// XYZ narrows v to a Vector3, dropping W.
func (v Vector4) XYZ() Vector3 {
	return Vector3{v.X, v.Y, v.Z}
}

// XY narrows v to a Vector2, dropping Z and W.
func (v Vector4) XY() Vector2 {
	return Vector2{v.X, v.Y}
}
