package abspath

// canonicalize asks the filesystem to resolve path to its real, existing
// form, then re-encodes the canonical prefix so that a drive designator
// appears as the two-character "X:" token. Paths whose prefix is anything
// other than a plain or verbatim disk designator are rejected.
// On platforms without prefix components both prefix steps are skipped: a
// POSIX path may legally begin with "//", which the Windows parser would
// misread as a UNC prefix.
func canonicalize(path string) (string, error) {
	if hasPathPrefixes {
		if err := screenPrefix(path); err != nil {
			return "", err
		}
	}
	canon, err := evalCanonical(path)
	if err != nil {
		return "", newIOError("failed to canonicalize "+path, err)
	}
	if !hasPathPrefixes {
		return canon, nil
	}
	return encodePrefix(canon)
}

// screenPrefix rejects prefix kinds that cannot be re-encoded, before any
// filesystem access. A UNC or device base therefore fails the same way
// whether or not the target exists.
func screenPrefix(path string) error {
	switch parsePrefix(path).kind {
	case prefixNone, prefixDisk, prefixVerbatimDisk:
		return nil
	case prefixVerbatim, prefixVerbatimUNC, prefixDeviceNS, prefixUNC:
		return newUnsupportedPrefixError(path)
	default:
		return newUnsupportedPrefixError(path)
	}
}

// encodePrefix rewrites the prefix component of a canonical path as "X:",
// keeping the drive letter exactly as the filesystem reported it. Canonical
// paths without a prefix component pass through unchanged.
func encodePrefix(canon string) (string, error) {
	pfx := parsePrefix(canon)
	switch pfx.kind {
	case prefixNone:
		return canon, nil
	case prefixDisk, prefixVerbatimDisk:
		return string(pfx.disk) + ":" + canon[pfx.end:], nil
	case prefixVerbatim, prefixVerbatimUNC, prefixDeviceNS, prefixUNC:
		return "", newUnsupportedPrefixError(canon)
	default:
		return "", newUnsupportedPrefixError(canon)
	}
}
