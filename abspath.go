// Package abspath resolves a possibly-relative file path into a fully
// qualified, normalized absolute path, given a base directory.
//
// Resolution delegates to the filesystem: ".", ".." and symbolic links are
// resolved against the real directory tree, so the target must exist. On
// Windows the resulting drive designator is rendered as the two-character
// form "X:"; any other prefix form (UNC shares, device paths, verbatim
// paths) is reported as ErrUnsupportedPrefix rather than resolved.
package abspath

import (
	"os"
	"path/filepath"
)

// Resolve returns the absolute, canonical path of relative, resolved against
// the base directory current.
//
// If relative is already absolute it is returned verbatim: no existence
// check, no symlink resolution, no prefix screening. Otherwise current must
// be absolute (else ErrCurrentIsRelative), the two are joined, and the
// joined path is canonicalized through the filesystem. The joined target
// must exist at the time of the call, or ErrIOError is returned wrapping the
// environment's error.
func Resolve(current, relative string) (string, error) {
	if filepath.IsAbs(relative) {
		return relative, nil
	}
	if !filepath.IsAbs(current) {
		return "", newCurrentIsRelativeError(current)
	}
	return canonicalize(join(current, relative))
}

// ResolveFromCurrentDir resolves relative against the process's current
// working directory. This is the only entry point that touches the process
// environment; a failure to read the working directory surfaces as
// ErrIOError.
func ResolveFromCurrentDir(relative string) (string, error) {
	current, err := os.Getwd()
	if err != nil {
		return "", newIOError("failed to get current directory", err)
	}
	return Resolve(current, relative)
}

// join appends relative to current without cleaning: "." and ".." segments
// are kept so the canonicalization step resolves them against the real
// filesystem instead of lexically. Folding ".." before symlinks are resolved
// would change the meaning of a path that ascends out of a symlinked
// directory.
func join(current, relative string) string {
	for len(current) > 0 && isSep(current[len(current)-1]) {
		current = current[:len(current)-1]
	}
	return current + string(filepath.Separator) + relative
}
