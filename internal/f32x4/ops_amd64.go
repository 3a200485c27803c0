//go:build !purego && amd64

package f32x4

import (
	"sync"

	"github.com/cwbudde/algo-vecmath/cpu"
)

// SSE2 is part of the x86-64 baseline, so no instruction-set probing is
// needed here. The one runtime control honored is the ForceGeneric flag
// from algo-vecmath/cpu, checked once on first use so tests can route all
// lane kernels through the pure Go fallback.
var (
	genericOnce sync.Once
	genericOnly bool
)

func useGeneric() bool {
	genericOnce.Do(func() {
		genericOnly = cpu.DetectFeatures().ForceGeneric
	})
	return genericOnly
}

// Backend reports which lane-kernel implementation is active.
func Backend() string {
	if useGeneric() {
		return "generic"
	}
	return "sse"
}

func addLanes(a, b Vec) Vec {
	if useGeneric() {
		return addLanesGo(a, b)
	}
	var dst Vec
	addPS(&dst, &a, &b)
	return dst
}

func subLanes(a, b Vec) Vec {
	if useGeneric() {
		return subLanesGo(a, b)
	}
	var dst Vec
	subPS(&dst, &a, &b)
	return dst
}

func mulLanes(a, b Vec) Vec {
	if useGeneric() {
		return mulLanesGo(a, b)
	}
	var dst Vec
	mulPS(&dst, &a, &b)
	return dst
}

func divLanes(a, b Vec) Vec {
	if useGeneric() {
		return divLanesGo(a, b)
	}
	var dst Vec
	divPS(&dst, &a, &b)
	return dst
}

func rcpLanes(a Vec) Vec {
	if useGeneric() {
		return rcpLanesGo(a)
	}
	var dst Vec
	rcpPS(&dst, &a)
	return dst
}

func sumLanes(a Vec) float32 {
	if useGeneric() {
		return sumLanesGo(a)
	}
	return sumPS(&a)
}

func sum3Lanes(a Vec) float32 {
	if useGeneric() {
		return sum3LanesGo(a)
	}
	return sum3PS(&a)
}

// Assembly lane kernels (implemented in ops_amd64.s).

//go:noescape
func addPS(dst, a, b *Vec)

//go:noescape
func subPS(dst, a, b *Vec)

//go:noescape
func mulPS(dst, a, b *Vec)

//go:noescape
func divPS(dst, a, b *Vec)

//go:noescape
func rcpPS(dst, a *Vec)

//go:noescape
func sumPS(a *Vec) float32

//go:noescape
func sum3PS(a *Vec) float32
