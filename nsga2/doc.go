// Package nsga2 implements NSGA-II, a population-based evolutionary
// algorithm that evolves a population of expressions toward the
// Pareto front of (Jaccard, SizeH, NOps) against a target set.
//
// What:
//
//   - Params configures population size, generation/time budget,
//     crossover/mutation rates, tournament size, and the RNG seed.
//   - Run executes generations until MaxGenerations or TimeLimitSec is
//     reached, each generation: evaluate, non-dominated sort, crowding
//     distance, tournament selection, crossover, mutation, then
//     truncate the combined parent+offspring population back down to
//     PopulationSize by front rank then crowding distance.
//
// Why:
//
//   - Exhaustive enumeration is infeasible once k or |F| grow past a
//     handful; NSGA-II trades the optimality guarantee for a
//     population that converges toward the front in polynomial time
//     per generation.
//
// Complexity:
//
//   - Per generation: O(PopulationSize^2) for non-dominated sort and
//     crowding distance, O(PopulationSize) evaluations run through the
//     exhaustive/greedy-style worker pool.
//
// Errors:
//
//   - ErrInvalidParams: PopulationSize <= 0, MaxGenerations < 0,
//     TournamentSize <= 0, or any probability outside [0, 1].
package nsga2
