//go:build !nochecks

package mat

// assert panics with a mat-prefixed message when cond is false. The
// nochecks build tag compiles the check out for release builds.
func assert(cond bool, msg string) {
	if !cond {
		panic("mat: " + msg)
	}
}
