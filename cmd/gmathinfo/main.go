// Command gmathinfo prints the numeric-kernel configuration: the active
// 4-lane backend, the detected CPU features, and the per-type epsilon
// tolerances.
//
// Usage:
//
//	gmathinfo [flags]
//
// Examples:
//
//	gmathinfo
//	gmathinfo -eps
package main

import (
	"flag"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/cwbudde/algo-vecmath/cpu"

	"github.com/cwbudde/algo-gmath/internal/f32x4"
	"github.com/cwbudde/algo-gmath/scalar"
)

func main() {
	epsOnly := flag.Bool("eps", false, "print only the epsilon table")
	flag.Parse()

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	defer w.Flush()

	if !*epsOnly {
		features := cpu.DetectFeatures()
		fmt.Fprintf(w, "backend\t%s\n", f32x4.Backend())
		fmt.Fprintf(w, "arch\t%s\n", features.Architecture)
		fmt.Fprintf(w, "sse2\t%v\n", features.HasSSE2)
		fmt.Fprintf(w, "avx2\t%v\n", features.HasAVX2)
		fmt.Fprintf(w, "neon\t%v\n", features.HasNEON)
		fmt.Fprintf(w, "force-generic\t%v\n", features.ForceGeneric)
		fmt.Fprintf(w, "fastmath\t%v\n", fastmathEnabled)
		fmt.Fprintln(w)
	}

	fmt.Fprintf(w, "epsilon\t%g\n", scalar.Epsilon)
	fmt.Fprintf(w, "vector2\t%g\n", scalar.Vector2Epsilon)
	fmt.Fprintf(w, "vector3\t%g\n", scalar.Vector3Epsilon)
	fmt.Fprintf(w, "vector4\t%g\n", scalar.Vector4Epsilon)
	fmt.Fprintf(w, "quaternion\t%g\n", scalar.QuaternionEpsilon)
}
