package bitset

import "errors"

var (
	// ErrUnknownOp indicates ApplyOp was called with an Op value outside
	// the three defined set-algebra operators.
	ErrUnknownOp = errors.New("bitset: unknown operator")
	// ErrBitIndexRange indicates a bit index outside [0, Width). Test and
	// SetBit do not return it: they report false or leave the set
	// unchanged for such an index.
	ErrBitIndexRange = errors.New("bitset: bit index out of range")
)
