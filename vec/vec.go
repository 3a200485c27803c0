package vec

// Scalar constrains the numeric types accepted as right-hand operands by
// the generic arithmetic helpers, so callers can pass int or float64
// literals without converting at every call site.
type Scalar interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 | ~float32 | ~float64
}

// scalarOps is implemented by every vector type in this package.
type scalarOps[V any] interface {
	AddScalar(float32) V
	SubScalar(float32) V
	MulScalar(float32) V
	DivScalar(float32) V
}

// AddS returns v with s added to every component.
func AddS[V scalarOps[V], T Scalar](v V, s T) V {
	return v.AddScalar(float32(s))
}

// SubS returns v with s subtracted from every component.
func SubS[V scalarOps[V], T Scalar](v V, s T) V {
	return v.SubScalar(float32(s))
}

// MulS returns v scaled by s.
func MulS[V scalarOps[V], T Scalar](v V, s T) V {
	return v.MulScalar(float32(s))
}

// DivS returns v divided by s.
func DivS[V scalarOps[V], T Scalar](v V, s T) V {
	return v.DivScalar(float32(s))
}
