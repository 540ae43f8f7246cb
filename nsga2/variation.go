package nsga2

import (
	"math/rand"

	"github.com/lauralsoraluce/setforge/bitset"
	"github.com/lauralsoraluce/setforge/expr"
	"github.com/lauralsoraluce/setforge/internal/randexpr"
	"github.com/lauralsoraluce/setforge/pareto"
)

// Crossover orders the two parents randomly as (left, right) and
// forms (left op right) for a random op, combining their used_sets.
// If the child would exceed maxOps operators, it returns the better
// parent by Jaccard instead. Exported so the spea2 solver can reuse
// it instead of duplicating it.
func Crossover(a, b pareto.SolMO, maxOps int, r *rand.Rand) expr.Expression {
	left, right := a, b
	if r.Intn(2) == 1 {
		left, right = b, a
	}

	betterParent := func() expr.Expression {
		if a.Jaccard >= b.Jaccard {
			return a.Expr
		}
		return b.Expr
	}

	if left.NOps+right.NOps+1 > maxOps {
		return betterParent()
	}

	op := bitset.Op(r.Intn(3))
	child, err := expr.Combine(op, left.Expr, right.Expr)
	if err != nil {
		return betterParent()
	}
	return child
}

// Mutate applies the 80/20 growth/rebuild mutation. With probability
// 0.80 it grafts a random base block onto e, on a random side, with a
// random op, provided the operator budget allows it; if it doesn't,
// the result is e unchanged — growth never falls back to a rebuild.
// With probability 0.20 it rebuilds from scratch: e's used_sets are
// extended or replaced by one randomly drawn index, shuffled, and fed
// to the random-tree builder. Exported for reuse by the spea2 solver.
func Mutate(e expr.Expression, pool randexpr.Pool, maxOps int, r *rand.Rand) expr.Expression {
	if r.Float64() < 0.8 {
		return growMutation(e, pool, maxOps, r)
	}
	return rebuildMutation(e, pool, maxOps, r)
}

func growMutation(e expr.Expression, pool randexpr.Pool, maxOps int, r *rand.Rand) expr.Expression {
	if e.NOps()+1 > maxOps {
		return e
	}
	leaves := pool.Leaves()
	leaf := leaves[r.Intn(len(leaves))]
	op := bitset.Op(r.Intn(3))

	var grown expr.Expression
	var err error
	if r.Intn(2) == 0 {
		grown, err = expr.Combine(op, e, leaf)
	} else {
		grown, err = expr.Combine(op, leaf, e)
	}
	if err != nil || grown.NOps() > maxOps {
		return e
	}
	return grown
}

func rebuildMutation(e expr.Expression, pool randexpr.Pool, maxOps int, r *rand.Rand) expr.Expression {
	m := len(pool.Bases)
	idx := append([]int(nil), e.UsedSets()...)

	draw := r.Intn(m+1) - 1 // a single index in [-1, m-1]
	if len(idx) == 0 || r.Intn(2) == 0 {
		idx = append(idx, draw)
	} else {
		idx[r.Intn(len(idx))] = draw
	}
	idx = dedupInts(idx)

	leaves := make([]expr.Expression, len(idx))
	for i, ix := range idx {
		leaves[i] = pool.LeafAt(ix)
	}
	r.Shuffle(len(leaves), func(i, j int) { leaves[i], leaves[j] = leaves[j], leaves[i] })
	return randexpr.Build(leaves, maxOps, r)
}

func dedupInts(idx []int) []int {
	seen := make(map[int]bool, len(idx))
	out := idx[:0]
	for _, v := range idx {
		if seen[v] {
			continue
		}
		seen[v] = true
		out = append(out, v)
	}
	return out
}
