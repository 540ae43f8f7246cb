package spea2

import (
	"math/rand"
	"sort"

	"github.com/lauralsoraluce/setforge/pareto"
)

type scored struct {
	ind pareto.Individual
	fit float64
}

// environmentalSelection builds the next archive from the union of
// the current population and the previous archive: non-dominated
// individuals (fitness < 1) are kept; if there are more than
// archiveSize of them they are truncated by k-NN crowding (the one
// with the smallest distance to its nearest neighbor is dropped
// repeatedly); if there are fewer, the best-fitness dominated
// individuals top up the remainder.
func environmentalSelection(union []pareto.Individual, archiveSize int) []pareto.Individual {
	fits := fitness(union)
	scoredAll := make([]scored, len(union))
	for i, ind := range union {
		scoredAll[i] = scored{ind, fits[i]}
	}

	var nonDominated []scored
	var dominated []scored
	for _, s := range scoredAll {
		if s.fit < 1.0 {
			nonDominated = append(nonDominated, s)
		} else {
			dominated = append(dominated, s)
		}
	}

	switch {
	case len(nonDominated) == archiveSize:
		return toIndividuals(nonDominated)
	case len(nonDominated) < archiveSize:
		sort.Slice(dominated, func(i, j int) bool { return dominated[i].fit < dominated[j].fit })
		need := archiveSize - len(nonDominated)
		if need > len(dominated) {
			need = len(dominated)
		}
		return toIndividuals(append(nonDominated, dominated[:need]...))
	default:
		return truncateByKNN(nonDominated, archiveSize)
	}
}

func toIndividuals(s []scored) []pareto.Individual {
	out := make([]pareto.Individual, len(s))
	for i, v := range s {
		out[i] = v.ind
	}
	return out
}

// truncateByKNN repeatedly removes the individual with the smallest
// distance to its nearest remaining neighbor (ties broken by the next
// nearest, and so on) until exactly archiveSize remain.
func truncateByKNN(s []scored, archiveSize int) []pareto.Individual {
	norm := normalize(toIndividuals(s))
	alive := make([]bool, len(s))
	for i := range alive {
		alive[i] = true
	}
	remaining := len(s)

	for remaining > archiveSize {
		worst := -1
		var worstDists []float64
		for i := range s {
			if !alive[i] {
				continue
			}
			d := sortedDistances(i, norm, alive)
			if worst < 0 || lessCrowded(d, worstDists) {
				worst, worstDists = i, d
			}
		}
		alive[worst] = false
		remaining--
	}

	out := make([]pareto.Individual, 0, archiveSize)
	for i, ok := range alive {
		if ok {
			out = append(out, s[i].ind)
		}
	}
	return out
}

func sortedDistances(i int, norm [][3]float64, alive []bool) []float64 {
	var d []float64
	for j := range norm {
		if j == i || !alive[j] {
			continue
		}
		d = append(d, euclidean(norm[i], norm[j]))
	}
	sort.Float64s(d)
	return d
}

// lessCrowded reports whether candidate a is more crowded (a smaller
// nearest-neighbor distance, then next-nearest, etc.) than b — the
// individual to discard under kNN truncation.
func lessCrowded(a, b []float64) bool {
	for k := 0; k < len(a) && k < len(b); k++ {
		if a[k] != b[k] {
			return a[k] < b[k]
		}
	}
	return len(a) < len(b)
}

// tournamentByFitness runs a tournament of size tSize among scored
// individuals, keeping the lowest (best) fitness.
func tournamentByFitness(pop []pareto.Individual, fits []float64, tSize int, r *rand.Rand) pareto.Individual {
	bestIdx := r.Intn(len(pop))
	for i := 1; i < tSize; i++ {
		cand := r.Intn(len(pop))
		if fits[cand] < fits[bestIdx] {
			bestIdx = cand
		}
	}
	return pop[bestIdx]
}
