package vec

import (
	"github.com/chewxy/math32"

	"github.com/cwbudde/algo-gmath/scalar"
)

// Vector2 is a two-component single-precision vector. Unlike Vector3 and
// Vector4 it carries no SIMD padding and all of its arithmetic is plain
// scalar math.
type Vector2 struct {
	X, Y float32
}

// Add returns v + o componentwise.
func (v Vector2) Add(o Vector2) Vector2 {
	return Vector2{v.X + o.X, v.Y + o.Y}
}

// Sub returns v - o componentwise.
func (v Vector2) Sub(o Vector2) Vector2 {
	return Vector2{v.X - o.X, v.Y - o.Y}
}

// Mul returns v * o componentwise.
func (v Vector2) Mul(o Vector2) Vector2 {
	return Vector2{v.X * o.X, v.Y * o.Y}
}

// Div returns v / o componentwise.
func (v Vector2) Div(o Vector2) Vector2 {
	return Vector2{v.X / o.X, v.Y / o.Y}
}

// AddScalar returns v with s added to both components.
func (v Vector2) AddScalar(s float32) Vector2 {
	return Vector2{v.X + s, v.Y + s}
}

// SubScalar returns v with s subtracted from both components.
func (v Vector2) SubScalar(s float32) Vector2 {
	return Vector2{v.X - s, v.Y - s}
}

// MulScalar returns v scaled by s.
func (v Vector2) MulScalar(s float32) Vector2 {
	return Vector2{v.X * s, v.Y * s}
}

// DivScalar returns v divided by s.
func (v Vector2) DivScalar(s float32) Vector2 {
	return Vector2{v.X / s, v.Y / s}
}

// Neg returns -v.
func (v Vector2) Neg() Vector2 {
	return Vector2{-v.X, -v.Y}
}

// Sum returns X + Y.
func (v Vector2) Sum() float32 {
	return v.X + v.Y
}

// Magnitude returns the Euclidean length of v.
func (v Vector2) Magnitude() float32 {
	return scalar.Sqrt(v.MagnitudeSquared())
}

// MagnitudeSquared returns the squared length of v, avoiding the square
// root.
func (v Vector2) MagnitudeSquared() float32 {
	return v.X*v.X + v.Y*v.Y
}

// Normalize returns v scaled to unit length. A vector already within
// Vector2Epsilon of unit squared magnitude is returned unchanged (no
// square root), and a near-zero vector is returned unchanged as a
// deliberate no-op rather than producing NaN.
func (v Vector2) Normalize() Vector2 {
	sq := v.MagnitudeSquared()
	if scalar.CloseEnough(sq, 1, scalar.Vector2Epsilon) {
		return v
	}
	mag := scalar.Sqrt(sq)
	if scalar.CloseEnough(mag, 0, scalar.Vector2Epsilon) {
		return v
	}
	return v.DivScalar(mag)
}

// IsZero reports whether v is within Vector2Epsilon of the zero vector.
func (v Vector2) IsZero() bool {
	return scalar.CloseEnough(v.MagnitudeSquared(), 0, scalar.Vector2Epsilon)
}

// IsNormalized reports whether v is within Vector2Epsilon of unit length.
func (v Vector2) IsNormalized() bool {
	return scalar.CloseEnough(v.MagnitudeSquared(), 1, scalar.Vector2Epsilon)
}

// Dot returns the dot product of v and o.
func (v Vector2) Dot(o Vector2) float32 {
	return v.X*o.X + v.Y*o.Y
}

// Cross returns the scalar (z-lane) cross product of v and o.
func (v Vector2) Cross(o Vector2) float32 {
	return v.X*o.Y - v.Y*o.X
}

// AngleRadians returns the signed angle from v to o in radians.
func (v Vector2) AngleRadians(o Vector2) float32 {
	return -math32.Atan2(v.Cross(o), v.Dot(o))
}

// AngleDegrees returns the signed angle from v to o in degrees.
func (v Vector2) AngleDegrees(o Vector2) float32 {
	return v.AngleRadians(o) * scalar.Rad2Deg
}

// Distance returns the Euclidean distance between v and o.
func (v Vector2) Distance(o Vector2) float32 {
	return v.Sub(o).Magnitude()
}

// DistanceSquared returns the squared distance between v and o.
func (v Vector2) DistanceSquared(o Vector2) float32 {
	return v.Sub(o).MagnitudeSquared()
}

// OrthogonalCCW returns v rotated 90 degrees counterclockwise.
func (v Vector2) OrthogonalCCW() Vector2 {
	return Vector2{-v.Y, v.X}
}

// OrthogonalCW returns v rotated 90 degrees clockwise.
func (v Vector2) OrthogonalCW() Vector2 {
	return Vector2{v.Y, -v.X}
}

// Lerp2 linearly interpolates between a and b. A t within epsilon of an
// endpoint returns that endpoint exactly.
func Lerp2(a, b Vector2, t float32) Vector2 {
	if scalar.CloseEnough(t, 0, scalar.Vector2Epsilon) {
		return a
	}
	if scalar.CloseEnough(t, 1, scalar.Vector2Epsilon) {
		return b
	}
	return a.Add(b.Sub(a).MulScalar(t))
}

// Max2 returns whichever of a and b has the larger magnitude.
func Max2(a, b Vector2) Vector2 {
	if a.MagnitudeSquared() >= b.MagnitudeSquared() {
		return a
	}
	return b
}

// Min2 returns whichever of a and b has the smaller magnitude.
func Min2(a, b Vector2) Vector2 {
	if a.MagnitudeSquared() <= b.MagnitudeSquared() {
		return a
	}
	return b
}

// Equal reports per-component closeness within Vector2Epsilon.
func (v Vector2) Equal(o Vector2) bool {
	return scalar.CloseEnough(v.X, o.X, scalar.Vector2Epsilon) &&
		scalar.CloseEnough(v.Y, o.Y, scalar.Vector2Epsilon)
}

// NotEqual is the negation of Equal.
func (v Vector2) NotEqual(o Vector2) bool {
	return !v.Equal(o)
}

// EqualScalar reports whether the magnitude of v is within Vector2Epsilon
// of |s|.
func (v Vector2) EqualScalar(s float32) bool {
	return scalar.CloseEnough(v.MagnitudeSquared(), s*s, scalar.Vector2Epsilon)
}

// Less reports whether v has a smaller magnitude than o.
func (v Vector2) Less(o Vector2) bool {
	return v.MagnitudeSquared() < o.MagnitudeSquared()
}

// LessEq reports whether v has a magnitude no larger than o's.
func (v Vector2) LessEq(o Vector2) bool {
	return v.MagnitudeSquared() <= o.MagnitudeSquared()
}

// Greater reports whether v has a larger magnitude than o.
func (v Vector2) Greater(o Vector2) bool {
	return v.MagnitudeSquared() > o.MagnitudeSquared()
}

// GreaterEq reports whether v has a magnitude no smaller than o's.
func (v Vector2) GreaterEq(o Vector2) bool {
	return v.MagnitudeSquared() >= o.MagnitudeSquared()
}

// LessScalar reports whether the magnitude of v is smaller than |s|.
func (v Vector2) LessScalar(s float32) bool {
	return v.MagnitudeSquared() < s*s
}

// LessEqScalar reports whether the magnitude of v is no larger than |s|.
func (v Vector2) LessEqScalar(s float32) bool {
	return v.MagnitudeSquared() <= s*s
}

// GreaterScalar reports whether the magnitude of v is larger than |s|.
func (v Vector2) GreaterScalar(s float32) bool {
	return v.MagnitudeSquared() > s*s
}

// GreaterEqScalar reports whether the magnitude of v is no smaller than
// |s|.
func (v Vector2) GreaterEqScalar(s float32) bool {
	return v.MagnitudeSquared() >= s*s
}

// Vec3 widens v to a Vector3 with Z = 0.
func (v Vector2) Vec3() Vector3 {
	return Vector3{v.X, v.Y, 0}
}

// Vec4 widens v to a Vector4 with Z = W = 0.
func (v Vector2) Vec4() Vector4 {
	return Vector4{v.X, v.Y, 0, 0}
}
