package nsga2

import (
	"math/rand"

	"github.com/lauralsoraluce/setforge/pareto"
)

// tournamentSelect runs a tournament of size tSize among pop, keeping
// the individual with the best (lowest) rank, breaking ties by the
// largest crowding distance.
func tournamentSelect(pop []pareto.Individual, tSize int, r *rand.Rand) pareto.Individual {
	best := pop[r.Intn(len(pop))]
	for i := 1; i < tSize; i++ {
		cand := pop[r.Intn(len(pop))]
		if better(cand, best) {
			best = cand
		}
	}
	return best
}

func better(a, b pareto.Individual) bool {
	if a.Rank != b.Rank {
		return a.Rank < b.Rank
	}
	return a.Crowd > b.Crowd
}
