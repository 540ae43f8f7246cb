// Package expr defines the immutable expression value built by every
// solver: a bitset.Set paired with the canonical text that produced it,
// the base sets it consumed, and its operator count.
//
// What:
//
//   - Expression is constructed only through Leaf, Universe, Empty, and
//     Combine — there is no exported way to mutate a field after
//     construction, so a value can be freely shared across goroutines.
//   - Canonical rendering follows a fixed grammar: "F<i>" for a base
//     set, "U" for the universe, "∅" for the empty set, and
//     "(<left> <op> <right>)" for a combination, one space around the
//     operator.
//
// Why:
//
//   - Solvers build, discard, and compare millions of candidate
//     expressions; immutability lets a single Expression value be
//     reused as a map key ingredient (via its bitset.Set.Key) without
//     defensive copies.
//
// Complexity:
//
//   - Leaf, Universe, Empty: O(1).
//   - Combine: O(Width/64 + |UsedSets(l)| + |UsedSets(r)|).
package expr
