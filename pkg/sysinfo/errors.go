package sysinfo

import "errors"

// Initialization failures wrap one of these classes so bootstrap can
// dispatch on errors.Is. The underlying OS error is preserved in the chain
// where available.
var (
	// ErrParse reports a descriptor source whose content did not match the
	// expected line format.
	ErrParse = errors.New("malformed system descriptor")

	// ErrProbe reports a mandatory probe that produced an invalid value.
	ErrProbe = errors.New("system probe returned invalid value")

	// ErrNotFound reports a required resource missing after an exhaustive
	// scan, such as an unmounted hugetlbfs.
	ErrNotFound = errors.New("required system resource not found")

	// ErrConsistency reports a detected value that contradicts a build-time
	// constant. Never downgraded to a warning: the structure layout of every
	// other subsystem depends on it.
	ErrConsistency = errors.New("detected value contradicts build-time constant")

	// ErrAlreadyInitialized reports a second Init call.
	ErrAlreadyInitialized = errors.New("system info already initialized")
)
