// Package setforge searches for a set-algebra expression — built from
// a family of base sets combined with ∪, ∩, and ∖ — that best
// approximates a target set.
//
// 🚀 What is setforge?
//
//	A small library built around three objectives evaluated against a
//	target set G:
//
//	  • Jaccard similarity (maximize)
//	  • distinct base sets used (minimize)
//	  • operator count (minimize)
//
// Four solvers trade completeness for speed:
//
//	exhaustive/ — enumerates every expression within an operator budget
//	greedy/     — single-path hill climbing from the empty set
//	nsga2/      — population-based multi-objective evolution
//	spea2/      — archive-based alternative to nsga2
//
// ✨ Everything is built on four shared packages:
//
//	bitset/   — fixed-width bit vector and the three set operators
//	expr/     — immutable expression values, built only through constructors
//	metric/   — Jaccard/SizeH/OpSize evaluation
//	pareto/   — dominance relation and Pareto-front filtering
//
// generator/ builds random problem instances, including ground-truth
// instances guaranteed to contain a perfect match, used to validate
// the solvers against each other. cmd/setforge is the CLI driver.
package setforge
