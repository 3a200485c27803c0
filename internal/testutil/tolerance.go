package testutil

import (
	"testing"

	"github.com/chewxy/math32"
)

// RequireNear fails t if got and want differ by more than eps (absolute
// tolerance).
func RequireNear(t *testing.T, got, want, eps float32) {
	t.Helper()
	diff := math32.Abs(got - want)
	if !(diff <= eps) {
		t.Fatalf("got %v, want %v (diff %v > eps %v)", got, want, diff, eps)
	}
}

// RequireLanesNear fails t if got and want differ in length or if any lane
// pair differs by more than eps.
func RequireLanesNear(t *testing.T, got, want []float32, eps float32) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("lane count mismatch: got %d, want %d", len(got), len(want))
	}
	for i := range got {
		diff := math32.Abs(got[i] - want[i])
		if !(diff <= eps) {
			t.Fatalf("lane %d: got %v, want %v (diff %v > eps %v)", i, got[i], want[i], diff, eps)
		}
	}
}

// RequireFinite fails t if any value is NaN or Inf.
func RequireFinite(t *testing.T, vals ...float32) {
	t.Helper()
	for i, v := range vals {
		if math32.IsNaN(v) || math32.IsInf(v, 0) {
			t.Fatalf("value %d: non-finite %v", i, v)
		}
	}
}
