// Package abspathmust wraps the abspath package with panic-based error handling.
//
// It provides the same path-resolution operations as the root-level abspath
// package, but instead of returning errors, all exported functions panic on
// failure.
package abspathmust

import (
	"github.com/Jumpaku/go-abspath"
)

// Resolve returns the absolute, canonical path of relative, resolved against
// the base directory current.
//
// It panics if resolution fails for any reason, including a relative base, an
// unsupported path prefix, or a target that does not exist.
func Resolve(current, relative string) string {
	return must1(abspath.Resolve(current, relative))
}

// ResolveFromCurrentDir resolves relative against the process's current
// working directory.
//
// It panics if the working directory cannot be read or resolution fails.
func ResolveFromCurrentDir(relative string) string {
	return must1(abspath.ResolveFromCurrentDir(relative))
}
