// Package pareto holds the multi-objective solution record and the
// dominance relation shared by every solver: an expression is judged
// on three objectives — Jaccard similarity (maximize), distinct
// base-set usage (minimize), and operator count (minimize).
//
// What:
//
//   - SolMO bundles an Expression with its three objective values.
//   - Individual extends SolMO with the rank and crowding-distance
//     fields the NSGA-II solver assigns during selection.
//   - Dominates implements strict, irreflexive Pareto dominance.
//   - Front filters a slice down to its non-dominated members, stably
//     sorted by (Jaccard desc, SizeH asc, NOps asc).
//
// Complexity:
//
//   - Dominates: O(1).
//   - Front: O(n^2).
package pareto
