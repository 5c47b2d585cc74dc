//go:build !windows

package abspath

import (
	"path/filepath"
)

// Absolute paths on this platform carry no prefix component, so canonicalize
// skips prefix screening and re-encoding. A leading "//" here is a legal
// POSIX root, not a UNC prefix.
const hasPathPrefixes = false

// evalCanonical resolves ".", ".." and symbolic links through the filesystem,
// requiring path to exist. The result is already in its final form.
func evalCanonical(path string) (string, error) {
	return filepath.EvalSymlinks(path)
}
