//go:build !pprof

package profile

import "iter"

// Modes returns an empty iterator when built without the pprof tag.
func Modes() iter.Seq[string] {
	return func(func(string) bool) {}
}

// start is a no-op when built without the pprof tag.
func start(string, string, bool) interface{ Stop() } {
	return ignore{}
}
