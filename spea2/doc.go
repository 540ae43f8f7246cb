// Package spea2 implements SPEA2, an archive-based alternative to
// NSGA-II: a fixed-size external archive accumulates non-dominated
// expressions across generations, with strength/raw-fitness/density
// scoring driving both tournament selection and the environmental
// selection that keeps the archive at its target size.
//
// What:
//
//   - Params configures population size, archive size, generation/time
//     budget, crossover/mutation rates, tournament size, and seed.
//   - Run executes generations until MaxGenerations or TimeLimitSec is
//     reached and returns the final archive's Pareto front.
//
// Why:
//
//   - SPEA2's density estimator (k-nearest-neighbor distance in
//     objective space) gives a different diversity-preservation
//     tradeoff than NSGA-II's crowding distance; running both lets a
//     caller compare fronts.
//
// Complexity:
//
//   - Per generation: O((PopulationSize+ArchiveSize)^2) for fitness and
//     kNN distance; reuses nsga2's crossover and mutation and the shared
//     internal/randexpr random-tree builder rather than a second
//     implementation.
//
// Errors:
//
//   - ErrInvalidParams: PopulationSize/ArchiveSize <= 0, MaxGenerations
//     < 0, TournamentSize <= 0, or a probability outside [0, 1].
package spea2
