package mat

import (
	"github.com/chewxy/math32"

	"github.com/cwbudde/algo-gmath/scalar"
	"github.com/cwbudde/algo-gmath/vec"
)

// OrthographicProjection builds an orthographic projection for a view
// volume of the given width and height between the near and far planes.
//
// Width and height must be nonzero; violating this panics unless the
// nochecks build tag is set, in which case the result is undefined.
func OrthographicProjection(w, h, n, f float32) Matrix4x4 {
	assert(w != 0, "OrthographicProjection width must not be zero")
	assert(h != 0, "OrthographicProjection height must not be zero")
	return Matrix4x4{
		{X: 1 / w, Y: 0, Z: 0, W: 0},
		{X: 0, Y: 1 / h, Z: 0, W: 0},
		{X: 0, Y: 0, Z: f - n, W: 0},
		{X: 0, Y: 0, Z: n * (f - n), W: 1},
	}
}

// PerspectiveProjectionRadians builds a perspective projection from
// horizontal and vertical fields of view (radians) and near/far plane
// distances.
//
// Convention: left-handed with +z forward (matching the look-at
// factories), column vectors (matching Transform), x and y scaled by
// 1/tan(fov/2), and depth mapped to [0, 1] with w' carrying view-space z
// for the perspective divide.
//
// Near and far must differ; violating this panics unless the nochecks
// build tag is set, in which case the result is undefined.
func PerspectiveProjectionRadians(fovx, fovy, n, f float32) Matrix4x4 {
	assert(n != f, "PerspectiveProjection near and far planes must differ")
	sx := 1 / math32.Tan(fovx*0.5)
	sy := 1 / math32.Tan(fovy*0.5)
	fr := f / (f - n)
	return Matrix4x4{
		{X: sx, Y: 0, Z: 0, W: 0},
		{X: 0, Y: sy, Z: 0, W: 0},
		{X: 0, Y: 0, Z: fr, W: -n * fr},
		{X: 0, Y: 0, Z: 1, W: 0},
	}
}

// PerspectiveProjectionDegrees converts the fields of view to radians and
// delegates to PerspectiveProjectionRadians.
func PerspectiveProjectionDegrees(fovx, fovy, n, f float32) Matrix4x4 {
	return PerspectiveProjectionRadians(fovx*scalar.Deg2Rad, fovy*scalar.Deg2Rad, n, f)
}

// LookAtFromPosition builds a view matrix looking from one position toward
// another. The basis is Gram-Schmidt style: z = normalized(to-from),
// x = normalized(up cross z), y = z cross x; the axes land in the columns
// with the negated from-projections as the translation row.
//
// That layout is row-vector convention: the result is the transpose of the
// column-vector view matrix that TransformPoint expects, so apply it as
// m.Transpose().TransformPoint(p) (or multiply row vectors on the left)
// rather than feeding it to TransformPoint directly.
func LookAtFromPosition(from, to, up vec.Vector3) Matrix4x4 {
	zAxis := to.Sub(from).Normalize()
	xAxis := up.Cross(zAxis).Normalize()
	yAxis := zAxis.Cross(xAxis)
	return Matrix4x4{
		{X: xAxis.X, Y: yAxis.X, Z: zAxis.X, W: 0},
		{X: xAxis.Y, Y: yAxis.Y, Z: zAxis.Y, W: 0},
		{X: xAxis.Z, Y: yAxis.Z, Z: zAxis.Z, W: 0},
		{X: -xAxis.Dot(from), Y: -yAxis.Dot(from), Z: -zAxis.Dot(from), W: 1},
	}
}

// LookAtFromDirection builds the rotation part of a look-at view for a
// view direction, with no translation.
func LookAtFromDirection(direction, up vec.Vector3) Matrix4x4 {
	zAxis := direction.Normalize()
	xAxis := up.Cross(zAxis).Normalize()
	yAxis := zAxis.Cross(xAxis)
	return Matrix4x4{
		{X: xAxis.X, Y: yAxis.X, Z: zAxis.X, W: 0},
		{X: xAxis.Y, Y: yAxis.Y, Z: zAxis.Y, W: 0},
		{X: xAxis.Z, Y: yAxis.Z, Z: zAxis.Z, W: 0},
		{X: 0, Y: 0, Z: 0, W: 1},
	}
}
