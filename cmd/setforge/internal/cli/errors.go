package cli

import "errors"

var (
	// errUnknownAlgo indicates --algo named something other than a
	// recognized solver.
	errUnknownAlgo = errors.New("cli: --algo must be one of exhaustiva, greedy, genetico, spea2, all")
)
