//go:build windows

package abspath

import (
	"os"
	"syscall"

	"golang.org/x/sys/windows"
)

// Absolute paths on this platform carry a prefix component, so canonicalize
// screens and re-encodes prefixes.
const hasPathPrefixes = true

// evalCanonical resolves path through the filesystem by opening it and asking
// the kernel for the final path of the handle. Every segment is resolved,
// including ".", "..", symbolic links and other reparse points, and the path
// must exist. The kernel reports the verbatim form (\\?\C:\... or
// \\?\UNC\...), which encodePrefix folds back into the short form.
func evalCanonical(path string) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", err
	}
	defer f.Close()

	handle := windows.Handle(f.Fd())
	buf := make([]uint16, syscall.MAX_PATH)
	for {
		n, err := windows.GetFinalPathNameByHandle(handle, &buf[0], uint32(len(buf)), 0)
		if err != nil {
			return "", err
		}
		if int(n) < len(buf) {
			return syscall.UTF16ToString(buf[:n]), nil
		}
		// n is the required buffer size when the first call came up short.
		buf = make([]uint16, n)
	}
}
