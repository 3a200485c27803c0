package quat

import (
	"testing"

	"github.com/cwbudde/algo-gmath/internal/testutil"
	"github.com/cwbudde/algo-gmath/vec"
)

func requireVec3Near(t *testing.T, got, want vec.Vector3, eps float32) {
	t.Helper()
	testutil.RequireLanesNear(t,
		[]float32{got.X, got.Y, got.Z},
		[]float32{want.X, want.Y, want.Z}, eps)
}

func TestFromLookDirection(t *testing.T) {
	tests := []struct {
		name      string
		direction vec.Vector3
	}{
		{"forward", vec.Forward3},
		{"right", vec.Right3},
		{"left", vec.Left3},
		{"back", vec.Back3},
		{"diagonal", vec.Vector3{X: 1, Y: 0.5, Z: 2}},
		{"unnormalized", vec.Vector3{X: 0, Y: 0, Z: 10}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			q := FromLookDirection(tt.direction, vec.Up3)
			if !q.IsUnit() {
				t.Fatalf("look rotation is not unit: %v", q)
			}
			// The rotation must take the forward axis onto the direction.
			requireVec3Near(t, q.Rotate(vec.Forward3), tt.direction.Normalize(), 1e-4)
		})
	}

	t.Run("keeps the horizon level", func(t *testing.T) {
		q := FromLookDirection(vec.Vector3{X: 1, Y: 0, Z: 1}, vec.Up3)
		up := q.Rotate(vec.Up3)
		testutil.RequireNear(t, up.Dot(vec.Up3), 1, 1e-4)
	})

	t.Run("direction parallel to up is degenerate", func(t *testing.T) {
		if got := FromLookDirection(vec.Up3, vec.Up3); got != Identity {
			t.Errorf("got %v, want Identity", got)
		}
		if got := FromLookDirection(vec.Down3, vec.Up3); got != Identity {
			t.Errorf("got %v, want Identity", got)
		}
	})
}

func TestFromLookAt(t *testing.T) {
	from := vec.Vector3{X: 1, Y: 2, Z: 3}
	to := vec.Vector3{X: 4, Y: 2, Z: 3}
	q := FromLookAt(from, to, vec.Up3)
	requireVec3Near(t, q.Rotate(vec.Forward3), vec.Right3, 1e-4)

	// Position only enters through the difference.
	shifted := FromLookAt(vec.Zero3, to.Sub(from), vec.Up3)
	requireQuatNear(t, q, shifted, 1e-6)
}
