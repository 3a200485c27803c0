//go:build purego || !amd64

package f32x4

func addLanes(a, b Vec) Vec  { return addLanesGo(a, b) }
func subLanes(a, b Vec) Vec  { return subLanesGo(a, b) }
func mulLanes(a, b Vec) Vec  { return mulLanesGo(a, b) }
func divLanes(a, b Vec) Vec  { return divLanesGo(a, b) }
func rcpLanes(a Vec) Vec     { return rcpLanesGo(a) }
func sumLanes(a Vec) float32 { return sumLanesGo(a) }

func sum3Lanes(a Vec) float32 { return sum3LanesGo(a) }

// Backend reports which lane-kernel implementation is active.
func Backend() string {
	return "generic"
}
