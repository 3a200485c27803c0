package vec

import (
	"testing"

	"github.com/chewxy/math32"

	"github.com/cwbudde/algo-gmath/internal/testutil"
)

func TestVector3Arithmetic(t *testing.T) {
	a := Vector3{1, 2, 3}
	b := Vector3{4, -6, 2}

	tests := []struct {
		name string
		got  Vector3
		want Vector3
	}{
		{"add", a.Add(b), Vector3{5, -4, 5}},
		{"sub", a.Sub(b), Vector3{-3, 8, 1}},
		{"mul", a.Mul(b), Vector3{4, -12, 6}},
		{"add scalar", a.AddScalar(10), Vector3{11, 12, 13}},
		{"sub scalar", a.SubScalar(1), Vector3{0, 1, 2}},
		{"mul scalar", a.MulScalar(-2), Vector3{-2, -4, -6}},
		{"neg", a.Neg(), Vector3{-1, -2, -3}},
		{"zyx", a.ZYX(), Vector3{3, 2, 1}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if !tt.got.Equal(tt.want) {
				t.Errorf("got %v, want %v", tt.got, tt.want)
			}
		})
	}
}

func TestVector3Div(t *testing.T) {
	got := Vector3{8, -9, 5}.Div(Vector3{2, 3, 5})
	want := Vector3{4, -3, 1}
	testutil.RequireLanesNear(t,
		[]float32{got.X, got.Y, got.Z},
		[]float32{want.X, want.Y, want.Z}, 1e-4)

	got = Vector3{8, -9, 5}.DivScalar(2)
	want = Vector3{4, -4.5, 2.5}
	testutil.RequireLanesNear(t,
		[]float32{got.X, got.Y, got.Z},
		[]float32{want.X, want.Y, want.Z}, 1e-4)
}

func TestVector3Magnitude(t *testing.T) {
	v := Vector3{2, 3, 6}
	testutil.RequireNear(t, v.Magnitude(), 7, 1e-4)
	testutil.RequireNear(t, v.MagnitudeSquared(), 49, 0)
	testutil.RequireNear(t, v.Sum(), 11, 0)
}

func TestVector3Normalize(t *testing.T) {
	t.Run("general", func(t *testing.T) {
		n := Vector3{2, 3, 6}.Normalize()
		testutil.RequireNear(t, n.Magnitude(), 1, 1e-4)
		if !n.IsNormalized() {
			t.Error("normalized vector not reported as normalized")
		}
	})

	t.Run("already unit is returned unchanged", func(t *testing.T) {
		if UnitZ3.Normalize() != UnitZ3 {
			t.Error("Normalize altered a unit vector")
		}
	})

	t.Run("zero vector is a no-op", func(t *testing.T) {
		z := Zero3.Normalize()
		if z != Zero3 {
			t.Errorf("Normalize(zero) = %v, want zero", z)
		}
		testutil.RequireFinite(t, z.X, z.Y, z.Z)
		if !Zero3.IsZero() {
			t.Error("zero vector not reported as zero")
		}
	})

	t.Run("idempotent", func(t *testing.T) {
		n := Vector3{-7, 2.5, 0.25}.Normalize()
		if n.Normalize() != n {
			t.Error("normalizing twice changed the result")
		}
	})
}

func TestVector3Dot(t *testing.T) {
	tests := []struct {
		name string
		a, b Vector3
		want float32
	}{
		{"orthogonal axes", UnitX3, UnitY3, 0},
		{"parallel", UnitZ3, UnitZ3, 1},
		{"general", Vector3{1, 2, 3}, Vector3{4, 5, 6}, 32},
		{"antiparallel", UnitX3, Vector3{-1, 0, 0}, -1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			testutil.RequireNear(t, tt.a.Dot(tt.b), tt.want, 0)
		})
	}
}

func TestVector3Cross(t *testing.T) {
	t.Run("right handed axes", func(t *testing.T) {
		if got := UnitX3.Cross(UnitY3); !got.Equal(UnitZ3) {
			t.Errorf("x cross y = %v, want z", got)
		}
		if got := UnitY3.Cross(UnitZ3); !got.Equal(UnitX3) {
			t.Errorf("y cross z = %v, want x", got)
		}
		if got := UnitZ3.Cross(UnitX3); !got.Equal(UnitY3) {
			t.Errorf("z cross x = %v, want y", got)
		}
	})

	t.Run("orthogonal to both inputs", func(t *testing.T) {
		a := Vector3{1.5, -2, 4}
		b := Vector3{0.5, 3, -1}
		c := a.Cross(b)
		testutil.RequireNear(t, c.Dot(a), 0, 1e-4)
		testutil.RequireNear(t, c.Dot(b), 0, 1e-4)
	})

	t.Run("anticommutative", func(t *testing.T) {
		a := Vector3{1, 2, 3}
		b := Vector3{-4, 0, 2}
		if !a.Cross(b).Equal(b.Cross(a).Neg()) {
			t.Error("a cross b != -(b cross a)")
		}
	})
}

func TestVector3Angle(t *testing.T) {
	got := UnitX3.AngleRadians(UnitY3)
	testutil.RequireNear(t, got, math32.Pi/2, 1e-4)
	got = UnitX3.AngleDegrees(Vector3{1, 1, 0})
	testutil.RequireNear(t, got, 45, 1e-2)
}

func TestVector3Distance(t *testing.T) {
	a := Vector3{1, 1, 1}
	b := Vector3{3, 4, 7}
	testutil.RequireNear(t, a.Distance(b), 7, 1e-4)
	testutil.RequireNear(t, a.DistanceSquared(b), 49, 0)
}

func TestLerp3(t *testing.T) {
	a := Vector3{0, 0, 0}
	b := Vector3{10, -10, 20}
	if got := Lerp3(a, b, 0.5); !got.Equal(Vector3{5, -5, 10}) {
		t.Errorf("Lerp3 midpoint = %v", got)
	}
	if got := Lerp3(a, b, 0); !got.Equal(a) {
		t.Errorf("Lerp3 at 0 = %v", got)
	}
	if got := Lerp3(a, b, 1); !got.Equal(b) {
		t.Errorf("Lerp3 at 1 = %v", got)
	}
}

func TestVector3Comparison(t *testing.T) {
	short := Vector3{1, 0, 0}
	long := Vector3{2, 3, 6}

	if !short.Less(long) || short.GreaterEq(long) {
		t.Error("magnitude ordering short < long violated")
	}
	if !long.EqualScalar(7) || !long.EqualScalar(-7) {
		t.Error("EqualScalar should match the magnitude regardless of sign")
	}
	if !long.GreaterScalar(6.9) || !short.LessEqScalar(1) {
		t.Error("scalar magnitude ordering violated")
	}
	if (Vector3{0, 0, 1}).Equal(Vector3{1, 0, 0}) {
		t.Error("per-component Equal matched different vectors of equal length")
	}
	if Max3(short, long) != long || Min3(short, long) != short {
		t.Error("Max3/Min3 did not order by magnitude")
	}
}

func TestVector3Convert(t *testing.T) {
	v := Vector3{1, 2, 3}
	if v.XY() != (Vector2{1, 2}) {
		t.Errorf("XY = %v", v.XY())
	}
	if v.Vec4(9) != (Vector4{1, 2, 3, 9}) {
		t.Errorf("Vec4 = %v", v.Vec4(9))
	}
}

func BenchmarkVector3Add(b *testing.B) {
	b.ReportAllocs()
	x := Vector3{1, 2, 3}
	y := Vector3{4, 5, 6}
	var sink Vector3
	for i := 0; i < b.N; i++ {
		sink = x.Add(y)
	}
	_ = sink
}

func BenchmarkVector3Dot(b *testing.B) {
	b.ReportAllocs()
	x := Vector3{1, 2, 3}
	y := Vector3{4, 5, 6}
	var sink float32
	for i := 0; i < b.N; i++ {
		sink = x.Dot(y)
	}
	_ = sink
}
