package spea2

import (
	"math/rand"
	"time"

	"github.com/lauralsoraluce/setforge/bitset"
	"github.com/lauralsoraluce/setforge/internal/randexpr"
	"github.com/lauralsoraluce/setforge/internal/workerpool"
	"github.com/lauralsoraluce/setforge/metric"
	"github.com/lauralsoraluce/setforge/nsga2"
	"github.com/lauralsoraluce/setforge/pareto"
)

// maxInitRounds bounds how many parallel batches initPopulation and
// breed will draw while chasing a fully distinct set: a pathologically
// small search space (tiny m and k) could otherwise hunt forever for
// one more unseen expr_str.
const maxInitRounds = 50

// Run evolves an archive-based population of expressions over f ∪
// {U}, bounded to k operators, toward the Pareto front against target
// g, following p. It returns the final archive's Pareto front.
func Run(f []bitset.Set, u, g bitset.Set, k int, p Params) ([]pareto.SolMO, error) {
	if k < 0 {
		return nil, ErrInvalidK
	}
	if err := p.validate(); err != nil {
		return nil, err
	}

	pool := randexpr.Pool{Bases: f, Universe: u}
	base := rand.New(rand.NewSource(seedOrDefault(p.Seed)))

	population := initPopulation(pool, k, g, p.PopulationSize, base)
	archive := environmentalSelection(population, p.ArchiveSize)
	if len(archive) == 0 {
		// Safety net mirroring the reference implementation: an empty
		// archive (possible only if ArchiveSize rounds to 0 elsewhere)
		// falls back to the raw population so the loop always has a
		// breeding pool.
		archive = population
	}

	start := time.Now()
	for gen := 0; gen < p.MaxGenerations; gen++ {
		if p.TimeLimitSec > 0 && time.Since(start).Seconds() >= p.TimeLimitSec {
			break
		}

		population = breed(archive, pool, k, g, p, base)
		union := append(append([]pareto.Individual{}, archive...), population...)
		archive = environmentalSelection(union, p.ArchiveSize)
	}

	sols := make([]pareto.SolMO, len(archive))
	for i, ind := range archive {
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
// the batched analogue of spea2.cpp's init_pop while(pop.size()<N)
// { ...; if seen.count(key) continue; ... } loop.
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

// breed produces p.PopulationSize offspring distinct by expr_str
// (deduped against the offspring accumulated so far) via fitness
// tournaments against archive, crossover, and mutation.
func breed(archive []pareto.Individual, pool randexpr.Pool, k int, g bitset.Set, p Params, base *rand.Rand) []pareto.Individual {
	fits := fitness(archive)
	streamBase := base.Int63()
	seen := make(map[string]bool, p.PopulationSize)
	out := make([]pareto.Individual, 0, p.PopulationSize)

	next := 0
	for round := 0; len(out) < p.PopulationSize && round < maxInitRounds; round++ {
		need := p.PopulationSize - len(out)
		tasks := make([]int, need)
		for i := range tasks {
			tasks[i] = next + i
		}
		next += need

		batch := workerpool.Map(tasks, func(stream int) pareto.Individual {
			r := rand.New(rand.NewSource(streamBase ^ int64(uint64(stream)*0xbf58476d1ce4e5b9)))
			parentA := tournamentByFitness(archive, fits, p.TournamentSize, r)
			parentB := tournamentByFitness(archive, fits, p.TournamentSize, r)

			child := parentA.Expr
			if r.Float64() < p.CrossoverProb {
				child = nsga2.Crossover(parentA.SolMO, parentB.SolMO, k, r)
			}
			if r.Float64() < p.MutationProb {
				child = nsga2.Mutate(child, pool, k, r)
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
			if len(out) == p.PopulationSize {
				break
			}
		}
	}
	return out
}
