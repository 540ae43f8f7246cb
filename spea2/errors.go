package spea2

import "errors"

var (
	// ErrInvalidParams indicates a Params field is out of range.
	ErrInvalidParams = errors.New("spea2: invalid parameters")
	// ErrInvalidK indicates a negative operator budget was requested.
	ErrInvalidK = errors.New("spea2: k must be >= 0")
)
