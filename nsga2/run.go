package nsga2

import (
	"math/rand"
	"time"

	"github.com/lauralsoraluce/setforge/bitset"
	"github.com/lauralsoraluce/setforge/internal/randexpr"
	"github.com/lauralsoraluce/setforge/internal/workerpool"
	"github.com/lauralsoraluce/setforge/metric"
	"github.com/lauralsoraluce/setforge/pareto"
)

// maxInitRounds bounds how many parallel batches initPopulation and
// makeOffspring will draw while chasing a fully distinct set: a
// pathologically small search space (tiny m and k) could otherwise
// hunt forever for one more unseen expr_str.
const maxInitRounds = 50

// Run evolves a population of expressions over f ∪ {U}, bounded to k
// operators, toward the Pareto front against target g, following p.
// It returns the final non-dominated front.
func Run(f []bitset.Set, u, g bitset.Set, k int, p Params) ([]pareto.SolMO, error) {
	if k < 0 {
		return nil, ErrInvalidK
	}
	if err := p.validate(); err != nil {
		return nil, err
	}

	pool := randexpr.Pool{Bases: f, Universe: u}
	base := rand.New(rand.NewSource(seedOrDefault(p.Seed)))

	pop := initPopulation(pool, k, g, p.PopulationSize, base)
	assignRanksAndCrowding(pop)

	start := time.Now()
	for gen := 0; gen < p.MaxGenerations; gen++ {
		if p.TimeLimitSec > 0 && time.Since(start).Seconds() >= p.TimeLimitSec {
			break
		}

		offspring := makeOffspring(pop, pool, k, g, p, base)
		combined := append(append([]pareto.Individual{}, pop...), offspring...)
		assignRanksAndCrowding(combined)
		pop = truncate(combined, p.PopulationSize)
	}

	sols := make([]pareto.SolMO, len(pop))
	for i, ind := range pop {
		sols[i] = ind.SolMO
	}
	return pareto.Front(sols), nil
}

func seedOrDefault(seed int64) int64 {
	if seed == 0 {
		return 1
	}
	return seed
}

// initPopulation produces size individuals distinct by expr_str,
// drawing parallel batches of candidates and discarding duplicates
// until the target count is reached or maxInitRounds is exhausted —
// the batched analogue of the reference implementation's
// while(pop.size()<N) { ...; if seen.count(key) continue; ... } loop.
func initPopulation(pool randexpr.Pool, k int, g bitset.Set, size int, base *rand.Rand) []pareto.Individual {
	streamBase := base.Int63()
	seen := make(map[string]bool, size)
	out := make([]pareto.Individual, 0, size)

	next := 0
	for round := 0; len(out) < size && round < maxInitRounds; round++ {
		need := size - len(out)
		tasks := make([]int, need)
		for i := range tasks {
			tasks[i] = next + i
		}
		next += need

		batch := workerpool.Map(tasks, func(stream int) pareto.Individual {
			r := rand.New(rand.NewSource(streamBase ^ int64(uint64(stream)*0x9e3779b97f4a7c15)))
			e := randexpr.BuildRandom(pool, k, r)
			j, _ := metric.Evaluate(e, g, metric.Jaccard)
			return pareto.Individual{SolMO: pareto.SolMO{Expr: e, NOps: e.NOps(), SizeH: e.SizeH(), Jaccard: j}}
		})

		for _, ind := range batch {
			key := ind.Expr.String()
			if seen[key] {
				continue
			}
			seen[key] = true
			out = append(out, ind)
			if len(out) == size {
				break
			}
		}
	}
	return out
}

func assignRanksAndCrowding(pop []pareto.Individual) {
	fronts := NonDominatedSort(pop)
	for _, front := range fronts {
		CrowdingDistance(pop, front)
	}
}

// makeOffspring produces len(pop) children distinct by expr_str
// (deduped against the offspring accumulated so far this generation)
// via tournament selection, crossover, and mutation.
func makeOffspring(pop []pareto.Individual, pool randexpr.Pool, k int, g bitset.Set, p Params, base *rand.Rand) []pareto.Individual {
	n := len(pop)
	streamBase := base.Int63()
	seen := make(map[string]bool, n)
	out := make([]pareto.Individual, 0, n)

	next := 0
	for round := 0; len(out) < n && round < maxInitRounds; round++ {
		need := n - len(out)
		tasks := make([]int, need)
		for i := range tasks {
			tasks[i] = next + i
		}
		next += need

		batch := workerpool.Map(tasks, func(stream int) pareto.Individual {
			r := rand.New(rand.NewSource(streamBase ^ int64(uint64(stream)*0xbf58476d1ce4e5b9)))
			parentA := tournamentSelect(pop, p.TournamentSize, r)
			parentB := tournamentSelect(pop, p.TournamentSize, r)

			child := parentA.Expr
			if r.Float64() < p.CrossoverProb {
				child = Crossover(parentA.SolMO, parentB.SolMO, k, r)
			}
			if r.Float64() < p.MutationProb {
				child = Mutate(child, pool, k, r)
			}

			j, _ := metric.Evaluate(child, g, metric.Jaccard)
			return pareto.Individual{SolMO: pareto.SolMO{Expr: child, NOps: child.NOps(), SizeH: child.SizeH(), Jaccard: j}}
		})

		for _, ind := range batch {
			key := ind.Expr.String()
			if seen[key] {
				continue
			}
			seen[key] = true
			out = append(out, ind)
			if len(out) == n {
				break
			}
		}
	}
	return out
}

// truncate keeps the best size individuals of combined, ordered by
// rank then crowding distance (NSGA-II's environmental selection).
func truncate(combined []pareto.Individual, size int) []pareto.Individual {
	if len(combined) <= size {
		return combined
	}
	sorted := append([]pareto.Individual(nil), combined...)
	sortByRankAndCrowd(sorted)
	return sorted[:size]
}

func sortByRankAndCrowd(pop []pareto.Individual) {
	// insertion sort is adequate: population sizes here are small
	// (hundreds), and this runs once per generation.
	for i := 1; i < len(pop); i++ {
		j := i
		for j > 0 && better(pop[j], pop[j-1]) {
			pop[j], pop[j-1] = pop[j-1], pop[j]
			j--
		}
	}
}
