package mat

import (
	"testing"

	"github.com/chewxy/math32"

	"github.com/cwbudde/algo-gmath/internal/testutil"
	"github.com/cwbudde/algo-gmath/quat"
	"github.com/cwbudde/algo-gmath/vec"
)

func requirePanic(t *testing.T, name string, fn func()) {
	t.Helper()
	defer func() {
		if recover() == nil {
			t.Errorf("%s did not panic", name)
		}
	}()
	fn()
}

func TestOrthographicProjection(t *testing.T) {
	m := OrthographicProjection(4, 2, 0.5, 10)

	if m.Row(0).X != 0.25 || m.Row(1).Y != 0.5 {
		t.Errorf("extent scaling wrong: %v", m)
	}
	if m.Row(2).Z != 9.5 || m.Row(3).Z != 0.5*9.5 {
		t.Errorf("depth terms wrong: %v", m)
	}
	if m.Row(3).W != 1 {
		t.Errorf("homogeneous term wrong: %v", m)
	}
}

func TestOrthographicProjectionPanics(t *testing.T) {
	requirePanic(t, "zero width", func() { OrthographicProjection(0, 2, 1, 10) })
	requirePanic(t, "zero height", func() { OrthographicProjection(4, 0, 1, 10) })
}

func TestPerspectiveProjection(t *testing.T) {
	const (
		fov  = math32.Pi / 2
		near = float32(1)
		far  = float32(100)
	)
	m := PerspectiveProjectionRadians(fov, fov, near, far)

	ndc := func(p vec.Vector3) vec.Vector3 {
		h := m.Transform(p.Vec4(1))
		return h.XYZ().DivScalar(h.W)
	}

	t.Run("depth range", func(t *testing.T) {
		testutil.RequireNear(t, ndc(vec.Vector3{X: 0, Y: 0, Z: near}).Z, 0, 1e-4)
		testutil.RequireNear(t, ndc(vec.Vector3{X: 0, Y: 0, Z: far}).Z, 1, 1e-4)
	})

	t.Run("field of view edges", func(t *testing.T) {
		// At 90 degrees the frustum edge slope is 1: x = z lands on the
		// right clip plane.
		edge := ndc(vec.Vector3{X: 5, Y: 0, Z: 5})
		testutil.RequireNear(t, edge.X, 1, 1e-4)
		edge = ndc(vec.Vector3{X: 0, Y: -5, Z: 5})
		testutil.RequireNear(t, edge.Y, -1, 1e-4)
	})

	t.Run("center ray", func(t *testing.T) {
		c := ndc(vec.Vector3{X: 0, Y: 0, Z: 50})
		testutil.RequireNear(t, c.X, 0, 1e-5)
		testutil.RequireNear(t, c.Y, 0, 1e-5)
	})

	t.Run("degrees variant", func(t *testing.T) {
		d := PerspectiveProjectionDegrees(90, 90, near, far)
		if !d.Equal(m) {
			t.Errorf("degrees build %v, radians build %v", d, m)
		}
	})
}

func TestPerspectiveProjectionPanics(t *testing.T) {
	requirePanic(t, "equal planes", func() { PerspectiveProjectionRadians(1, 1, 5, 5) })
}

func TestLookAtFromDirection(t *testing.T) {
	t.Run("identity view", func(t *testing.T) {
		m := LookAtFromDirection(vec.Forward3, vec.Up3)
		if !m.Equal(Identity) {
			t.Errorf("forward look-at = %v, want Identity", m)
		}
	})

	t.Run("direction lands in the third column", func(t *testing.T) {
		dir := vec.Vector3{X: 1, Y: 0.25, Z: -2}.Normalize()
		m := LookAtFromDirection(dir, vec.Up3)
		col := vec.Vector3{X: m.Row(0).Z, Y: m.Row(1).Z, Z: m.Row(2).Z}
		requireVec3Near(t, col, dir, 1e-5)
	})

	t.Run("agrees with the quaternion look-at", func(t *testing.T) {
		dir := vec.Vector3{X: -1, Y: 0.5, Z: 1.5}
		m := LookAtFromDirection(dir, vec.Up3)
		q := quat.FromLookDirection(dir, vec.Up3)
		for _, v := range []vec.Vector3{vec.Forward3, vec.Up3, {X: 1, Y: 2, Z: 3}} {
			requireVec3Near(t, m.TransformDirection(v), q.Rotate(v), 1e-4)
		}
	})
}

func TestLookAtFromPosition(t *testing.T) {
	from := vec.Vector3{X: 2, Y: 1, Z: -4}
	to := vec.Vector3{X: 5, Y: 1, Z: -4}
	m := LookAtFromPosition(from, to, vec.Up3)

	t.Run("rotation part matches the direction form", func(t *testing.T) {
		d := LookAtFromDirection(to.Sub(from), vec.Up3)
		for r := 0; r < 3; r++ {
			requireVec4Near(t, m.Row(r), d.Row(r), 1e-5)
		}
	})

	t.Run("eye position maps to the origin", func(t *testing.T) {
		// The translation lives in the fourth row, so the view transform
		// reads through the transpose.
		got := m.Transpose().TransformPoint(from)
		requireVec3Near(t, got, vec.Zero3, 1e-4)
	})
}
