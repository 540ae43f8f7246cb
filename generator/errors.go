package generator

import "errors"

var (
	// ErrInvalidRange indicates a Config bound is internally
	// inconsistent (e.g. FMin > FMax, or a negative bound).
	ErrInvalidRange = errors.New("generator: invalid range")
	// ErrSizeExceedsWidth indicates a requested set size exceeds the
	// bitset universe width.
	ErrSizeExceedsWidth = errors.New("generator: requested size exceeds universe width")
)
