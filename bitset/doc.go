// Package bitset provides a fixed-width bit vector used as the uniform
// representation for base sets, the universe, and every intermediate
// value produced while combining them.
//
// What:
//
//   - Set is a fixed-width ([Width] bits) bit vector backed by a small
//     array of uint64 words — no heap allocation per operation.
//   - Union, Intersect, Difference implement the three set-algebra
//     operators; ApplyOp dispatches on an Op value.
//   - Popcount, Test, SetBit give cardinality and single-bit access.
//   - Key renders a canonical, comparable string used to deduplicate
//     sets regardless of how they were produced.
//
// Why:
//
//   - A fixed width avoids the allocation and bounds-checking overhead
//     of a variable-length bitset (e.g. big.Int or a []uint64 slice) in
//     the hot inner loop of every solver, at the cost of a compile-time
//     universe-size ceiling.
//
// Complexity:
//
//   - All operations: O(Width/64) time, O(1) space.
//
// Errors:
//
//   - ErrUnknownOp: ApplyOp called with an Op outside {Union,Intersect,Difference}.
package bitset
