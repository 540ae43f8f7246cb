package spea2

import (
	"math"
	"sort"

	"github.com/lauralsoraluce/setforge/pareto"
)

// objectives returns the three objective values for SPEA2's min-max
// normalization: Jaccard is negated so that, like SizeH and NOps,
// lower is better across all three (SPEA2's fitness is minimized).
func objectives(s pareto.SolMO) [3]float64 {
	return [3]float64{-s.Jaccard, float64(s.SizeH), float64(s.NOps)}
}

// normalize returns, for each individual, its objective vector after
// per-objective min-max scaling to [0, 1] across pop. An objective with
// zero span contributes 0 for every individual.
func normalize(pop []pareto.Individual) [][3]float64 {
	n := len(pop)
	raw := make([][3]float64, n)
	for i, ind := range pop {
		raw[i] = objectives(ind.SolMO)
	}

	var lo, hi [3]float64
	for d := 0; d < 3; d++ {
		lo[d], hi[d] = raw[0][d], raw[0][d]
		for _, v := range raw {
			if v[d] < lo[d] {
				lo[d] = v[d]
			}
			if v[d] > hi[d] {
				hi[d] = v[d]
			}
		}
	}

	out := make([][3]float64, n)
	for i, v := range raw {
		for d := 0; d < 3; d++ {
			span := hi[d] - lo[d]
			if span == 0 {
				out[i][d] = 0
				continue
			}
			out[i][d] = (v[d] - lo[d]) / span
		}
	}
	return out
}

func euclidean(a, b [3]float64) float64 {
	var sum float64
	for d := 0; d < 3; d++ {
		diff := a[d] - b[d]
		sum += diff * diff
	}
	return math.Sqrt(sum)
}

// dominatesNorm reports strict dominance in the normalized,
// lower-is-better objective space.
func dominatesNorm(a, b [3]float64) bool {
	betterOrEqual := a[0] <= b[0] && a[1] <= b[1] && a[2] <= b[2]
	strictlyBetter := a[0] < b[0] || a[1] < b[1] || a[2] < b[2]
	return betterOrEqual && strictlyBetter
}

// fitness computes the SPEA2 fitness (strength/raw/density) for every
// individual in pop. Lower fitness is better; fitness < 1 indicates a
// non-dominated individual.
func fitness(pop []pareto.Individual) []float64 {
	n := len(pop)
	norm := normalize(pop)

	strength := make([]int, n)
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			if i != j && dominatesNorm(norm[i], norm[j]) {
				strength[i]++
			}
		}
	}

	raw := make([]float64, n)
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			if i != j && dominatesNorm(norm[j], norm[i]) {
				raw[i] += float64(strength[j])
			}
		}
	}

	kth := int(math.Sqrt(float64(n)))
	if kth < 1 {
		kth = 1
	}
	if kth >= n {
		kth = n - 1
	}

	out := make([]float64, n)
	for i := 0; i < n; i++ {
		dists := make([]float64, 0, n-1)
		for j := 0; j < n; j++ {
			if i == j {
				continue
			}
			dists = append(dists, euclidean(norm[i], norm[j]))
		}
		sort.Float64s(dists)
		dk := 0.0
		if kth-1 < len(dists) {
			dk = dists[kth-1]
		}
		density := 1.0 / (dk + 2.0)
		out[i] = raw[i] + density
	}
	return out
}
