package cli

import (
	"github.com/spf13/cobra"
)

// Root builds the setforge root command.
func Root() *cobra.Command {
	cfg := &config{}

	root := &cobra.Command{
		Use:   "setforge",
		Short: "Search for a set-algebra expression approximating a target set",
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, cfg)
		},
	}

	flags := root.Flags()
	flags.IntVar(&cfg.g, "G", -1, "minimum size of a standalone random target G (if negative, a ground-truth target with a guaranteed perfect match is generated instead)")
	flags.IntVar(&cfg.fMin, "Fmin", 10, "minimum number of base sets to generate")
	flags.IntVar(&cfg.fMax, "Fmax", 100, "maximum number of base sets to generate")
	flags.IntVar(&cfg.fSizeMin, "FsizeMin", 1, "minimum size of each generated base set")
	flags.IntVar(&cfg.fSizeMax, "FsizeMax", 64, "maximum size of each generated base set")
	flags.IntVar(&cfg.k, "k", 10, "maximum number of operators allowed in an expression")
	flags.Int64Var(&cfg.seed, "seed", 0, "base RNG seed (0 selects the deterministic default)")

	flags.IntVar(&cfg.popSize, "pop-size", 200, "evolutionary solver population size")
	flags.Float64Var(&cfg.mutationProb, "mutation-prob", 0.4, "evolutionary solver mutation probability")
	flags.Float64Var(&cfg.crossoverProb, "crossover-prob", 0.8, "evolutionary solver crossover probability")
	flags.IntVar(&cfg.tournamentSize, "tournament-size", 2, "evolutionary solver tournament size")
	flags.IntVar(&cfg.maxGenerations, "max-generations", 1_000_000_000, "evolutionary solver generation ceiling")
	flags.Float64Var(&cfg.timeLimit, "time-limit", 300, "evolutionary solver wall-clock budget in seconds")

	flags.StringVar(&cfg.algo, "algo", "all", "solver to run: exhaustiva, greedy, genetico, spea2, or all")
	flags.StringVar(&cfg.metricsAddr, "metrics-addr", "", "if set, serve Prometheus metrics on this address (e.g. :9090)")

	return root
}
