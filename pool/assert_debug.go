//go:build pooldebug
// +build pooldebug

package pool

// assertf panics so misuse surfaces at the call site in debug builds.
func assertf(err error) {
	panic(err)
}
