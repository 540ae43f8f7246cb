package nsga2

import "errors"

var (
	// ErrInvalidParams indicates a Params field is out of range.
	ErrInvalidParams = errors.New("nsga2: invalid parameters")
	// ErrInvalidK indicates a negative operator budget was requested.
	ErrInvalidK = errors.New("nsga2: k must be >= 0")
)
