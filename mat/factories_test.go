package mat

import (
	"testing"

	"github.com/chewxy/math32"

	"github.com/cwbudde/algo-gmath/quat"
	"github.com/cwbudde/algo-gmath/vec"
)

func TestScale(t *testing.T) {
	v := vec.Vector3{X: 1, Y: 2, Z: 3}

	got := Scale(2, 3, 4).TransformPoint(v)
	requireVec3Near(t, got, vec.Vector3{X: 2, Y: 6, Z: 12}, 1e-5)

	if !ScaleUniform(2).Equal(Scale(2, 2, 2)) {
		t.Error("ScaleUniform disagrees with Scale")
	}
	if !ScaleVec(v).Equal(Scale(1, 2, 3)) {
		t.Error("ScaleVec disagrees with Scale")
	}
}

func TestTranslation(t *testing.T) {
	m := Translation(4, 5, 6)
	// Column-vector convention: the offset sits in the fourth column.
	if m.Row(0).W != 4 || m.Row(1).W != 5 || m.Row(2).W != 6 {
		t.Errorf("offset not in the fourth column: %v", m)
	}
	got := m.TransformPoint(vec.Zero3)
	requireVec3Near(t, got, vec.Vector3{X: 4, Y: 5, Z: 6}, 0)

	if !TranslationVec(vec.Vector3{X: 4, Y: 5, Z: 6}).Equal(m) {
		t.Error("TranslationVec disagrees with Translation")
	}
}

func TestAxisRotationsAtZero(t *testing.T) {
	// sin(0) and cos(0) are exact, so zero-angle factories must be the
	// identity bit for bit.
	if RotationXRadians(0) != Identity {
		t.Error("RotationXRadians(0) != Identity")
	}
	if RotationYRadians(0) != Identity {
		t.Error("RotationYRadians(0) != Identity")
	}
	if RotationZRadians(0) != Identity {
		t.Error("RotationZRadians(0) != Identity")
	}
}

func TestAxisRotationActions(t *testing.T) {
	tests := []struct {
		name string
		m    Matrix4x4
		in   vec.Vector3
		want vec.Vector3
	}{
		{"x takes y to z", RotationXRadians(math32.Pi/2), vec.UnitY3, vec.UnitZ3},
		{"z takes x to y", RotationZRadians(math32.Pi/2), vec.UnitX3, vec.UnitY3},
		{"y takes x to z", RotationYRadians(math32.Pi/2), vec.UnitX3, vec.UnitZ3},
		{"half x negates y", RotationXRadians(math32.Pi), vec.UnitY3, vec.Vector3{X: 0, Y: -1, Z: 0}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			requireVec3Near(t, tt.m.TransformDirection(tt.in), tt.want, 1e-5)
		})
	}
}

func TestRotationComposite(t *testing.T) {
	x, y, z := float32(0.4), float32(-0.9), float32(1.7)

	t.Run("single angle reduces to the axis factory", func(t *testing.T) {
		if !RotationRadians(x, 0, 0).Equal(RotationXRadians(x)) {
			t.Error("x-only composite differs from RotationXRadians")
		}
		if !RotationRadians(0, y, 0).Equal(RotationYRadians(y)) {
			t.Error("y-only composite differs from RotationYRadians")
		}
		if !RotationRadians(0, 0, z).Equal(RotationZRadians(z)) {
			t.Error("z-only composite differs from RotationZRadians")
		}
	})

	t.Run("composition order is y times x times z", func(t *testing.T) {
		want := RotationYRadians(y).Mul(RotationXRadians(x)).Mul(RotationZRadians(z))
		if !RotationRadians(x, y, z).Equal(want) {
			t.Error("composite order changed")
		}
	})

	t.Run("vector form", func(t *testing.T) {
		if !RotationRadiansVec(vec.Vector3{X: x, Y: y, Z: z}).Equal(RotationRadians(x, y, z)) {
			t.Error("RotationRadiansVec disagrees with RotationRadians")
		}
	})
}

func TestAxisAngle(t *testing.T) {
	t.Run("quarter turn about y sends x to minus z", func(t *testing.T) {
		m := AxisAngleRadians(vec.UnitY3, math32.Pi/2)
		got := m.TransformDirection(vec.UnitX3)
		requireVec3Near(t, got, vec.Vector3{X: 0, Y: 0, Z: -1}, 1e-5)
	})

	t.Run("x axis matches the dedicated factory", func(t *testing.T) {
		if !AxisAngleRadians(vec.UnitX3, 1.1).Equal(RotationXRadians(1.1)) {
			t.Error("AxisAngleRadians about x differs from RotationXRadians")
		}
	})

	t.Run("matches the quaternion rotation", func(t *testing.T) {
		axis := vec.Vector3{X: 1, Y: -2, Z: 0.5}.Normalize()
		const r = 1.9
		m := AxisAngleRadians(axis, r)
		q := quat.FromAxisAngle(axis, r)
		for _, v := range []vec.Vector3{vec.UnitX3, vec.UnitY3, {X: 1, Y: 2, Z: 3}} {
			requireVec3Near(t, m.TransformDirection(v), q.Rotate(v), 1e-4)
		}
	})
}

func TestDegreeVariants(t *testing.T) {
	tests := []struct {
		name     string
		deg, rad Matrix4x4
	}{
		{"x", RotationXDegrees(90), RotationXRadians(math32.Pi/2)},
		{"y", RotationYDegrees(45), RotationYRadians(math32.Pi/4)},
		{"z", RotationZDegrees(180), RotationZRadians(math32.Pi)},
		{"composite", RotationDegrees(90, 45, 30), RotationRadians(math32.Pi/2, math32.Pi/4, math32.Pi/6)},
		{"axis angle", AxisAngleDegrees(vec.UnitZ3, 60), AxisAngleRadians(vec.UnitZ3, math32.Pi/3)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if !tt.deg.Equal(tt.rad) {
				t.Errorf("degrees build %v, radians build %v", tt.deg, tt.rad)
			}
		})
	}
}
