package telemetry

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// EvaluationsTotal is a counter of expression evaluations, labeled by
	// solver. No package in this module increments it, so it stays at 0.
	EvaluationsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "setforge_evaluations_total",
		Help: "Total number of expression evaluations performed",
	}, []string{"solver"})

	// GenerationsTotal is a counter of completed generations, labeled by
	// solver. No package in this module increments it, so it stays at 0.
	GenerationsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "setforge_generations_total",
		Help: "Total number of generations completed",
	}, []string{"solver"})

	// BestJaccard reports the best Jaccard value seen by the most
	// recent solver run, labeled by solver.
	BestJaccard = promauto.NewGaugeVec(prometheus.GaugeOpts{
		Name: "setforge_best_jaccard",
		Help: "Best Jaccard coefficient found by the most recent run",
	}, []string{"solver"})

	// SolverDuration observes wall-clock duration of a solver run.
	SolverDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "setforge_solver_duration_seconds",
		Help:    "Wall-clock duration of a solver run",
		Buckets: prometheus.DefBuckets,
	}, []string{"solver"})
)
