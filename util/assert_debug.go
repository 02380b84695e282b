// +build !release

package util

// Debug reports whether assertions are enabled. Build with -tags release to
// compile them out.
const Debug = true

// Assert panics with msg if cond is false.
func Assert(cond bool, msg interface{}) {
	if !cond {
		panic(msg)
	}
}
