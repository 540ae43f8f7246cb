package cli

import (
	"fmt"
	"net/http"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/spf13/cobra"

	"github.com/lauralsoraluce/setforge/bitset"
	"github.com/lauralsoraluce/setforge/exhaustive"
	"github.com/lauralsoraluce/setforge/generator"
	"github.com/lauralsoraluce/setforge/greedy"
	"github.com/lauralsoraluce/setforge/internal/report"
	"github.com/lauralsoraluce/setforge/internal/rng"
	"github.com/lauralsoraluce/setforge/internal/telemetry"
	"github.com/lauralsoraluce/setforge/nsga2"
	"github.com/lauralsoraluce/setforge/pareto"
	"github.com/lauralsoraluce/setforge/spea2"
)

func run(cmd *cobra.Command, cfg *config) error {
	log := telemetry.NewLogger()

	if cfg.metricsAddr != "" {
		mux := http.NewServeMux()
		mux.Handle("/metrics", promhttp.Handler())
		go func() {
			if err := http.ListenAndServe(cfg.metricsAddr, mux); err != nil {
				log.Error("metrics server stopped: %v", err)
			}
		}()
	}

	genCfg := generator.Config{
		FMin:     cfg.fMin,
		FMax:     cfg.fMax,
		FSizeMin: cfg.fSizeMin,
		FSizeMax: cfg.fSizeMax,
	}
	if err := genCfg.Validate(); err != nil {
		return err
	}
	if _, err := parseAlgo(cfg.algo); err != nil {
		return err
	}

	r := rng.New(cfg.seed)

	var f []bitset.Set
	var u, g bitset.Set

	if cfg.g >= 0 {
		var err error
		f, err = generator.New(genCfg, r)
		if err != nil {
			return err
		}
		g, err = generator.Target(cfg.g, r)
		if err != nil {
			return err
		}
		u = bitset.Full()
	} else {
		var err error
		f, g, _, err = generator.GroundTruth(genCfg, cfg.k, r)
		if err != nil {
			return err
		}
		u = bitset.Full()
	}

	out := cmd.OutOrStdout()

	algo, _ := parseAlgo(cfg.algo)
	for _, a := range algo {
		timer := telemetry.NewTimer()
		front, err := runSolver(a, f, u, g, cfg)
		if err != nil {
			return err
		}
		telemetry.SolverDuration.WithLabelValues(a).Observe(timer.Elapsed().Seconds())

		best := 0.0
		for _, s := range front {
			if s.Jaccard > best {
				best = s.Jaccard
			}
		}
		telemetry.BestJaccard.WithLabelValues(a).Set(best)
		log.Info("solver %s finished in %s, best jaccard %.4f", a, timer.Elapsed(), best)

		report.ParetoFront(out, a, front)
		report.HitObjective(out, front)
		fmt.Fprintln(out)
	}

	report.Reproducibility(out, f, g)
	return nil
}

func parseAlgo(name string) ([]string, error) {
	switch name {
	case "exhaustiva", "greedy", "genetico", "spea2":
		return []string{name}, nil
	case "all":
		return []string{"exhaustiva", "greedy", "genetico", "spea2"}, nil
	default:
		return nil, errUnknownAlgo
	}
}

func runSolver(name string, f []bitset.Set, u, g bitset.Set, cfg *config) ([]pareto.SolMO, error) {
	switch name {
	case "exhaustiva":
		return exhaustive.Run(f, u, g, cfg.k)
	case "greedy":
		_, front, err := greedy.Run(f, u, g, cfg.k)
		return front, err
	case "genetico":
		return nsga2.Run(f, u, g, cfg.k, nsga2.Params{
			PopulationSize: cfg.popSize,
			MaxGenerations: cfg.maxGenerations,
			TimeLimitSec:   cfg.timeLimit,
			CrossoverProb:  cfg.crossoverProb,
			MutationProb:   cfg.mutationProb,
			TournamentSize: cfg.tournamentSize,
			Seed:           cfg.seed,
		})
	case "spea2":
		return spea2.Run(f, u, g, cfg.k, spea2.Params{
			PopulationSize: cfg.popSize,
			ArchiveSize:    cfg.popSize,
			MaxGenerations: cfg.maxGenerations,
			TimeLimitSec:   cfg.timeLimit,
			CrossoverProb:  cfg.crossoverProb,
			MutationProb:   cfg.mutationProb,
			TournamentSize: cfg.tournamentSize,
			Seed:           cfg.seed,
		})
	default:
		return nil, errUnknownAlgo
	}
}
