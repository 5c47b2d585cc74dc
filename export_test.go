package abspath

// This file is part of the package tests (package abspath) and provides
// helpers that allow tests in the external package to access internal
// package constructs. Helpers are exported so `abspath_test` can call them
// via the module import path.

type PrefixKind = prefixKind
type Prefix = prefix

const (
	PrefixNone         = prefixNone
	PrefixDisk         = prefixDisk
	PrefixVerbatimDisk = prefixVerbatimDisk
	PrefixVerbatim     = prefixVerbatim
	PrefixVerbatimUNC  = prefixVerbatimUNC
	PrefixDeviceNS     = prefixDeviceNS
	PrefixUNC          = prefixUNC
)

// AllPrefixKinds pins the closed set of prefix kinds. Extending prefixKind
// without updating this list (and the dispatch expectations in
// TestPrefixKinds_Exhaustive) fails the tests.
var AllPrefixKinds = []prefixKind{
	prefixNone,
	prefixDisk,
	prefixVerbatimDisk,
	prefixVerbatim,
	prefixVerbatimUNC,
	prefixDeviceNS,
	prefixUNC,
}

func (p prefix) Kind() prefixKind { return p.kind }
func (p prefix) Disk() byte       { return p.disk }
func (p prefix) End() int         { return p.end }

// ParsePrefix exposes the internal prefix parser.
func ParsePrefix(path string) Prefix { return parsePrefix(path) }

// ScreenPrefix exposes the pre-canonicalization prefix check.
func ScreenPrefix(path string) error { return screenPrefix(path) }

// EncodePrefix exposes the canonical-prefix re-encoder.
func EncodePrefix(canon string) (string, error) { return encodePrefix(canon) }

// Join exposes the uncleaned base/relative join.
func Join(current, relative string) string { return join(current, relative) }

// NewCurrentIsRelativeError constructs the relative-base error using the
// package-internal constructor.
func NewCurrentIsRelativeError(path string) error {
	return newCurrentIsRelativeError(path)
}

// NewUnsupportedPrefixError constructs the prefix error using the
// package-internal constructor.
func NewUnsupportedPrefixError(path string) error {
	return newUnsupportedPrefixError(path)
}

// NewIOError constructs an io-wrapped error using the package-internal
// constructor.
func NewIOError(msg string, cause error) error {
	return newIOError(msg, cause)
}
