package exhaustive

import (
	"github.com/lauralsoraluce/setforge/bitset"
	"github.com/lauralsoraluce/setforge/expr"
	"github.com/lauralsoraluce/setforge/internal/workerpool"
	"github.com/lauralsoraluce/setforge/metric"
	"github.com/lauralsoraluce/setforge/pareto"
)

// Run enumerates every expression reachable with at most k operators
// over f ∪ {U}, evaluates each against g, and returns the Pareto front.
func Run(f []bitset.Set, u, g bitset.Set, k int) ([]pareto.SolMO, error) {
	if k < 0 {
		return nil, ErrInvalidK
	}

	levels := make([][]expr.Expression, k+1)
	levels[0] = leaves(f, u)

	for i := 1; i <= k; i++ {
		levels[i] = combineLevel(levels, i)
	}

	var all []expr.Expression
	for _, lvl := range levels {
		all = append(all, lvl...)
	}
	return evaluateAll(all, g), nil
}

func leaves(f []bitset.Set, u bitset.Set) []expr.Expression {
	out := make([]expr.Expression, 0, len(f)+2)
	for i, s := range f {
		out = append(out, expr.Leaf(i, s))
	}
	out = append(out, expr.Universe(u))
	out = append(out, expr.Empty())
	return out
}

type pairTask struct {
	a, b expr.Expression
}

// combineLevel builds level i by combining expressions from level s
// with expressions from level i-1-s, for every split s in [0, i-1],
// across all three operators, deduplicated by bitset key.
func combineLevel(levels [][]expr.Expression, i int) []expr.Expression {
	var tasks []pairTask
	for s := 0; s < i; s++ {
		left := levels[s]
		right := levels[i-1-s]
		for _, a := range left {
			for _, b := range right {
				tasks = append(tasks, pairTask{a, b})
			}
		}
	}
	if len(tasks) == 0 {
		return nil
	}

	results := workerpool.Map(tasks, func(t pairTask) []expr.Expression {
		out := make([]expr.Expression, 0, 3)
		for _, op := range []bitset.Op{bitset.OpUnion, bitset.OpIntersect, bitset.OpDifference} {
			e, err := expr.Combine(op, t.a, t.b)
			if err != nil {
				continue
			}
			out = append(out, e)
		}
		return out
	})

	seen := make(map[string]struct{})
	var out []expr.Expression
	for _, group := range results {
		for _, e := range group {
			key := e.Set().Key()
			if _, ok := seen[key]; ok {
				continue
			}
			seen[key] = struct{}{}
			out = append(out, e)
		}
	}
	return out
}

func evaluateAll(all []expr.Expression, g bitset.Set) []pareto.SolMO {
	sols := workerpool.Map(all, func(e expr.Expression) pareto.SolMO {
		j, _ := metric.Evaluate(e, g, metric.Jaccard)
		return pareto.SolMO{Expr: e, NOps: e.NOps(), SizeH: e.SizeH(), Jaccard: j}
	})
	return pareto.Front(sols)
}
