// Package exhaustive enumerates every expression reachable with at
// most k operators over F ∪ {U}, in increasing order of operator
// count, and returns the Pareto front of the results against a target
// set G.
//
// What:
//
//   - Level 0 holds every leaf: each base set, U, and the empty set.
//   - Level i (i>0) holds every Combine(op, a, b) where a comes from
//     level s and b from level i-1-s for some split s, deduplicated by
//     bitset.Set.Key within the level so equal-valued expressions are
//     kept once per level (the first one discovered in iteration
//     order). A value already present at a lower level is not removed.
//   - Run evaluates every produced expression and returns its Pareto
//     front.
//
// Why:
//
//   - This is the ground-truth solver: given enough time it visits
//     every distinct value reachable within the operator budget, so it
//     is used to validate the heuristic solvers on small instances.
//
// Complexity:
//
//   - Exponential in k; parallelized per level across GOMAXPROCS workers.
//
// Errors:
//
//   - ErrInvalidK: k < 0.
package exhaustive
