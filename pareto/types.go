package pareto

import "github.com/lauralsoraluce/setforge/expr"

// SolMO is a multi-objective solution record.
type SolMO struct {
	Expr    expr.Expression
	NOps    int
	SizeH   int
	Jaccard float64
}

// Individual extends SolMO with the bookkeeping fields NSGA-II's
// environmental selection assigns: the non-dominated front rank (0 is
// best) and the crowding distance within that front (higher is more
// isolated, hence preferred as a tie-breaker).
type Individual struct {
	SolMO
	Rank  int
	Crowd float64
}

// Dominates reports whether a strictly Pareto-dominates b: a is no
// worse than b on every objective and strictly better on at least one.
// Objectives: Jaccard (higher better), SizeH (lower better), NOps
// (lower better).
func Dominates(a, b SolMO) bool {
	betterOrEqual := a.Jaccard >= b.Jaccard && a.SizeH <= b.SizeH && a.NOps <= b.NOps
	strictlyBetter := a.Jaccard > b.Jaccard || a.SizeH < b.SizeH || a.NOps < b.NOps
	return betterOrEqual && strictlyBetter
}
