package greedy

import "errors"

// ErrInvalidK indicates a negative operator budget was requested.
var ErrInvalidK = errors.New("greedy: k must be >= 0")
