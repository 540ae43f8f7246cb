package nsga2

import (
	"math"
	"sort"

	"github.com/lauralsoraluce/setforge/pareto"
)

// NonDominatedSort partitions pop into fronts by Pareto rank: front 0
// is non-dominated within pop, front 1 is non-dominated once front 0
// is removed, and so on. Each individual's Rank field is set in place.
func NonDominatedSort(pop []pareto.Individual) [][]int {
	n := len(pop)
	dominatedBy := make([][]int, n)
	dominationCount := make([]int, n)

	var fronts [][]int
	first := []int{}

	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			if i == j {
				continue
			}
			switch {
			case pareto.Dominates(pop[i].SolMO, pop[j].SolMO):
				dominatedBy[i] = append(dominatedBy[i], j)
			case pareto.Dominates(pop[j].SolMO, pop[i].SolMO):
				dominationCount[i]++
			}
		}
		if dominationCount[i] == 0 {
			pop[i].Rank = 0
			first = append(first, i)
		}
	}
	fronts = append(fronts, first)

	rank := 0
	for len(fronts[rank]) > 0 {
		next := []int{}
		for _, i := range fronts[rank] {
			for _, j := range dominatedBy[i] {
				dominationCount[j]--
				if dominationCount[j] == 0 {
					pop[j].Rank = rank + 1
					next = append(next, j)
				}
			}
		}
		rank++
		fronts = append(fronts, next)
	}
	if len(fronts[len(fronts)-1]) == 0 {
		fronts = fronts[:len(fronts)-1]
	}
	return fronts
}

// CrowdingDistance assigns the Crowd field for every individual named
// by front (indices into pop), using the normalized neighbor-gap sum
// across Jaccard, SizeH, and NOps. Boundary individuals (best/worst on
// some objective) get +Inf so they are never truncated ahead of an
// interior point.
func CrowdingDistance(pop []pareto.Individual, front []int) {
	if len(front) == 0 {
		return
	}
	for _, i := range front {
		pop[i].Crowd = 0
	}
	if len(front) <= 2 {
		for _, i := range front {
			pop[i].Crowd = math.Inf(1)
		}
		return
	}

	type getter struct {
		value func(pareto.SolMO) float64
	}
	objectives := []getter{
		{func(s pareto.SolMO) float64 { return s.Jaccard }},
		{func(s pareto.SolMO) float64 { return float64(s.SizeH) }},
		{func(s pareto.SolMO) float64 { return float64(s.NOps) }},
	}

	idx := append([]int(nil), front...)
	for _, obj := range objectives {
		sort.Slice(idx, func(a, b int) bool {
			return obj.value(pop[idx[a]].SolMO) < obj.value(pop[idx[b]].SolMO)
		})

		lo := obj.value(pop[idx[0]].SolMO)
		hi := obj.value(pop[idx[len(idx)-1]].SolMO)
		pop[idx[0]].Crowd = math.Inf(1)
		pop[idx[len(idx)-1]].Crowd = math.Inf(1)

		span := hi - lo
		if span == 0 {
			continue
		}
		for k := 1; k < len(idx)-1; k++ {
			prev := obj.value(pop[idx[k-1]].SolMO)
			next := obj.value(pop[idx[k+1]].SolMO)
			if math.IsInf(pop[idx[k]].Crowd, 1) {
				continue
			}
			pop[idx[k]].Crowd += (next - prev) / span
		}
	}
}
