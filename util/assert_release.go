// +build release

package util

const Debug = false

// Assert is a no-op in release builds; callers fall back to their own recovery path.
func Assert(cond bool, msg interface{}) {}
