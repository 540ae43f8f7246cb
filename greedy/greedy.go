package greedy

import (
	"github.com/lauralsoraluce/setforge/bitset"
	"github.com/lauralsoraluce/setforge/expr"
	"github.com/lauralsoraluce/setforge/internal/workerpool"
	"github.com/lauralsoraluce/setforge/metric"
	"github.com/lauralsoraluce/setforge/pareto"
)

// key is the lexicographic acceptance key: Jaccard desc, SizeH asc,
// NOps asc. betterThan reports whether a is strictly preferred over b.
type key struct {
	jaccard float64
	sizeH   int
	nOps    int
}

func keyOf(e expr.Expression, g bitset.Set) key {
	j, _ := metric.Evaluate(e, g, metric.Jaccard)
	return key{jaccard: j, sizeH: e.SizeH(), nOps: e.NOps()}
}

func (a key) betterThan(b key) bool {
	if a.jaccard != b.jaccard {
		return a.jaccard > b.jaccard
	}
	if a.sizeH != b.sizeH {
		return a.sizeH < b.sizeH
	}
	return a.nOps < b.nOps
}

type candidate struct {
	leaf expr.Expression
	op   bitset.Op
}

// Run performs greedy hill climbing over f ∪ {U}, starting from ∅ and
// bounded to k operators, and returns the final expression plus the
// Pareto front of every state visited or explored along the climb.
func Run(f []bitset.Set, u, g bitset.Set, k int) (expr.Expression, []pareto.SolMO, error) {
	if k < 0 {
		return expr.Expression{}, nil, ErrInvalidK
	}

	leaves := make([]expr.Expression, 0, len(f)+1)
	for i, s := range f {
		leaves = append(leaves, expr.Leaf(i, s))
	}
	leaves = append(leaves, expr.Universe(u))

	cur := expr.Empty()
	curKey := keyOf(cur, g)
	candidates := []expr.Expression{cur}

	for cur.NOps() < k {
		next, nextKey, explored, found := bestStep(cur, leaves, g, k)
		candidates = append(candidates, explored...)
		if !found || !nextKey.betterThan(curKey) {
			break
		}
		cur, curKey = next, nextKey
	}

	return cur, evaluate(candidates, g), nil
}

// step applies op to (cur, rhs). While cur is still the initial ∅, it
// follows the naming convention: ∅ ∪ rhs re-labels to rhs itself
// (n_ops = 0, a leaf), and ∅ ∩ rhs / ∅ ∖ rhs both stay ∅ — an
// intersection or difference against nothing can never add elements.
// Once cur is no longer ∅, every step is a real Combine.
func step(cur, rhs expr.Expression, op bitset.Op) (expr.Expression, error) {
	if cur.NOps() == 0 && cur.String() == "∅" {
		if op == bitset.OpUnion {
			return rhs, nil
		}
		return expr.Empty(), nil
	}
	return expr.Combine(op, cur, rhs)
}

// bestStep evaluates cur op rhs for every op and every leaf, returning
// the best candidate under key along with every candidate explored
// (so callers can fold the whole neighborhood into the Pareto pool,
// not just the accepted step).
func bestStep(cur expr.Expression, leaves []expr.Expression, g bitset.Set, k int) (expr.Expression, key, []expr.Expression, bool) {
	var tasks []candidate
	for _, l := range leaves {
		tasks = append(tasks,
			candidate{l, bitset.OpUnion},
			candidate{l, bitset.OpIntersect},
			candidate{l, bitset.OpDifference},
		)
	}

	type scored struct {
		e  expr.Expression
		k  key
		ok bool
	}
	results := workerpool.Map(tasks, func(c candidate) scored {
		e, err := step(cur, c.leaf, c.op)
		if err != nil || e.NOps() > k {
			return scored{}
		}
		return scored{e: e, k: keyOf(e, g), ok: true}
	})

	var explored []expr.Expression
	var best scored
	found := false
	for _, r := range results {
		if !r.ok {
			continue
		}
		explored = append(explored, r.e)
		if !found || r.k.betterThan(best.k) {
			best = r
			found = true
		}
	}
	return best.e, best.k, explored, found
}

func evaluate(visited []expr.Expression, g bitset.Set) []pareto.SolMO {
	sols := make([]pareto.SolMO, len(visited))
	for i, e := range visited {
		j, _ := metric.Evaluate(e, g, metric.Jaccard)
		sols[i] = pareto.SolMO{Expr: e, NOps: e.NOps(), SizeH: e.SizeH(), Jaccard: j}
	}
	return pareto.Front(sols)
}
