package abspath

import (
	"strings"
)

// prefixKind enumerates every Windows path-prefix form. The set is closed:
// both switch statements in canonicalize.go list all kinds explicitly, and
// TestPrefixKinds_Exhaustive pins the set so a new kind cannot silently take
// the success branch.
type prefixKind int

const (
	prefixNone prefixKind = iota
	prefixDisk             // C:
	prefixVerbatimDisk     // \\?\C:
	prefixVerbatim         // \\?\cat_pics
	prefixVerbatimUNC      // \\?\UNC\server\share
	prefixDeviceNS         // \\.\COM42
	prefixUNC              // \\server\share
)

// prefix is the parsed leading component of a path. disk is the drive letter
// for the two disk kinds, exactly as it appears in the input. end is the byte
// offset just past the prefix.
type prefix struct {
	kind prefixKind
	disk byte
	end  int
}

func isSep(c byte) bool {
	return c == '\\' || c == '/'
}

func isDriveLetter(c byte) bool {
	return 'a' <= c && c <= 'z' || 'A' <= c && c <= 'Z'
}

// componentEnd returns the offset of the first separator in path[start:],
// relative to the start of path, or len(path) if there is none. Verbatim
// prefixes recognize backslash only.
func componentEnd(path string, start int, verbatim bool) int {
	for i := start; i < len(path); i++ {
		if path[i] == '\\' || (!verbatim && path[i] == '/') {
			return i
		}
	}
	return len(path)
}

// serverShareEnd consumes a server component, a separator, and a share
// component, returning the offset just past the share.
func serverShareEnd(path string, start int, verbatim bool) int {
	serverEnd := componentEnd(path, start, verbatim)
	if serverEnd == len(path) {
		return serverEnd
	}
	return componentEnd(path, serverEnd+1, verbatim)
}

// parsePrefix decomposes the leading prefix of a Windows-form path. Verbatim
// forms require literal backslashes; UNC server and share components may use
// either separator. A path with no recognized prefix yields prefixNone with
// end 0.
func parsePrefix(path string) prefix {
	if strings.HasPrefix(path, `\\?\`) {
		rest := path[4:]
		switch {
		case strings.HasPrefix(rest, `UNC\`):
			return prefix{kind: prefixVerbatimUNC, end: serverShareEnd(path, 8, true)}
		case len(rest) >= 2 && isDriveLetter(rest[0]) && rest[1] == ':' &&
			(len(rest) == 2 || rest[2] == '\\'):
			return prefix{kind: prefixVerbatimDisk, disk: rest[0], end: 6}
		default:
			return prefix{kind: prefixVerbatim, end: componentEnd(path, 4, true)}
		}
	}
	if len(path) >= 4 && isSep(path[0]) && isSep(path[1]) && path[2] == '.' && isSep(path[3]) {
		return prefix{kind: prefixDeviceNS, end: componentEnd(path, 4, false)}
	}
	if len(path) >= 2 && isSep(path[0]) && isSep(path[1]) {
		return prefix{kind: prefixUNC, end: serverShareEnd(path, 2, false)}
	}
	if len(path) >= 2 && isDriveLetter(path[0]) && path[1] == ':' {
		return prefix{kind: prefixDisk, disk: path[0], end: 2}
	}
	return prefix{}
}
