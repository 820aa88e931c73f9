//go:build !pooldebug
// +build !pooldebug

package pool

// assertf is a no-op in release builds; misuse is logged and returned.
func assertf(error) {}
