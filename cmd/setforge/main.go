// Command setforge searches for a set-algebra expression over a
// randomly generated family of base sets that best approximates a
// target set, reporting the Pareto front found by one or all of the
// exhaustive, greedy, NSGA-II, and SPEA2 solvers.
package main

import (
	"fmt"
	"os"

	"github.com/lauralsoraluce/setforge/cmd/setforge/internal/cli"
)

func main() {
	if err := cli.Root().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
