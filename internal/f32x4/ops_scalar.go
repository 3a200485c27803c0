package f32x4

// Pure Go lane kernels. These are the generic backend on non-amd64 and
// purego builds, and the ForceGeneric escape hatch on amd64.

func addLanesGo(a, b Vec) Vec {
	return Vec{a[0] + b[0], a[1] + b[1], a[2] + b[2], a[3] + b[3]}
}

func subLanesGo(a, b Vec) Vec {
	return Vec{a[0] - b[0], a[1] - b[1], a[2] - b[2], a[3] - b[3]}
}

func mulLanesGo(a, b Vec) Vec {
	return Vec{a[0] * b[0], a[1] * b[1], a[2] * b[2], a[3] * b[3]}
}

func divLanesGo(a, b Vec) Vec {
	return Vec{a[0] / b[0], a[1] / b[1], a[2] / b[2], a[3] / b[3]}
}

// rcpLanesGo divides exactly. The hardware path approximates; the
// difference is covered by the documented Rcp tolerance.
func rcpLanesGo(a Vec) Vec {
	return Vec{1 / a[0], 1 / a[1], 1 / a[2], 1 / a[3]}
}

func sumLanesGo(a Vec) float32 {
	// Pairwise to match the SSE shuffle/add reduction order exactly.
	return (a[0] + a[1]) + (a[2] + a[3])
}

func sum3LanesGo(a Vec) float32 {
	return (a[0] + a[1]) + a[2]
}
