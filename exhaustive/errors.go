package exhaustive

import "errors"

// ErrInvalidK indicates a negative operator budget was requested.
var ErrInvalidK = errors.New("exhaustive: k must be >= 0")
