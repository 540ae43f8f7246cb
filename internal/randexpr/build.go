package randexpr

import (
	"math/rand"

	"github.com/lauralsoraluce/setforge/bitset"
	"github.com/lauralsoraluce/setforge/expr"
	"github.com/lauralsoraluce/setforge/internal/rng"
)

// maxBuildFailures bounds the number of consecutive failed merge
// attempts before Build gives up and returns whatever pool element is
// left at index 0, per spec's termination rule for the random-tree
// builder.
const maxBuildFailures = 100

// Pool is a random-build leaf source: the base sets plus the universe.
type Pool struct {
	Bases    []bitset.Set
	Universe bitset.Set
}

// Leaves returns every possible leaf Expression: one per base set, the
// universe, and the empty set.
func (p Pool) Leaves() []expr.Expression {
	out := make([]expr.Expression, 0, len(p.Bases)+2)
	for i, b := range p.Bases {
		out = append(out, expr.Leaf(i, b))
	}
	out = append(out, expr.Universe(p.Universe))
	out = append(out, expr.Empty())
	return out
}

// LeafAt returns the leaf expression named by idx, where -1 denotes
// the universe U and 0..len(Bases)-1 denotes the corresponding F_idx.
func (p Pool) LeafAt(idx int) expr.Expression {
	if idx == -1 {
		return expr.Universe(p.Universe)
	}
	return expr.Leaf(idx, p.Bases[idx])
}

// DrawIndices picks a random count c in [1, min(m+1, maxOps+1)] of
// distinct indices from {-1, 0, ..., m-1} (-1 denotes U), where m is
// the number of base sets available.
func DrawIndices(m, maxOps int, r *rand.Rand) []int {
	maxC := m + 1
	if maxOps+1 < maxC {
		maxC = maxOps + 1
	}
	if maxC < 1 {
		maxC = 1
	}

	all := make([]int, m+1)
	all[0] = -1
	for i := 0; i < m; i++ {
		all[i+1] = i
	}
	rng.ShuffleInts(all, r)

	c := 1 + r.Intn(maxC)
	if c > len(all) {
		c = len(all)
	}
	return append([]int(nil), all[:c]...)
}

// Build merges leaves pairwise into a single expression tree: it
// repeatedly picks two distinct positions in the working pool, picks
// an operator uniformly, and merges them, accepting the merge iff the
// result stays within maxOps operators. It aborts after
// maxBuildFailures consecutive failed attempts and returns the first
// element of whatever pool remains. If leaves has exactly one element,
// that element is returned unchanged.
func Build(leaves []expr.Expression, maxOps int, r *rand.Rand) expr.Expression {
	if len(leaves) == 0 {
		return expr.Empty()
	}
	pool := append([]expr.Expression(nil), leaves...)

	failures := 0
	for len(pool) > 1 && failures < maxBuildFailures {
		a := r.Intn(len(pool))
		b := r.Intn(len(pool) - 1)
		if b >= a {
			b++
		}
		if a > b {
			a, b = b, a
		}

		op := bitset.Op(r.Intn(3))
		merged, err := expr.Combine(op, pool[a], pool[b])
		if err != nil || merged.NOps() > maxOps {
			failures++
			continue
		}

		pool = append(pool[:b], pool[b+1:]...)
		pool = append(pool[:a], pool[a+1:]...)
		pool = append(pool, merged)
		failures = 0
	}
	return pool[0]
}

// BuildRandom implements the evolutionary solvers' initialisation
// recipe: draw a random count of distinct leaf indices from the pool,
// then merge them into a single expression tree via Build.
func BuildRandom(p Pool, maxOps int, r *rand.Rand) expr.Expression {
	idx := DrawIndices(len(p.Bases), maxOps, r)
	leaves := make([]expr.Expression, len(idx))
	for i, ix := range idx {
		leaves[i] = p.LeafAt(ix)
	}
	return Build(leaves, maxOps, r)
}
