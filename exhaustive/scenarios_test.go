package exhaustive_test

import (
	"testing"

	"github.com/lauralsoraluce/setforge/bitset"
	"github.com/lauralsoraluce/setforge/exhaustive"
	"github.com/lauralsoraluce/setforge/expr"
	"github.com/lauralsoraluce/setforge/metric"
	"github.com/lauralsoraluce/setforge/pareto"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setOf(bits ...int) bitset.Set {
	var s bitset.Set
	for _, b := range bits {
		s = s.SetBit(b)
	}
	return s
}

// TestS1ExhaustiveReachesOne exercises scenario S1: F = [{0,1},{2,3},
// {4,5}], G = {0,1,4,5}, k = 2. The front must contain (F0 ∪ F2) with
// jaccard 1.0, n_ops 1, sizeH 2.
func TestS1ExhaustiveReachesOne(t *testing.T) {
	f0 := setOf(0, 1)
	f1 := setOf(2, 3)
	f2 := setOf(4, 5)
	u := setOf(0, 1, 2, 3, 4, 5)
	g := setOf(0, 1, 4, 5)

	front, err := exhaustive.Run([]bitset.Set{f0, f1, f2}, u, g, 2)
	require.NoError(t, err)

	var match bool
	for _, s := range front {
		if s.Expr.String() == "(F0 ∪ F2)" {
			match = true
			assert.Equal(t, 1.0, s.Jaccard)
			assert.Equal(t, 1, s.NOps)
			assert.Equal(t, 2, s.SizeH)
		}
	}
	assert.True(t, match, "front: %+v", front)
}

// TestS3DifferenceRequired exercises scenario S3: F = [{0,1,2,3},
// {2,3}], G = {0,1}, k = 1. The front must contain (F0 \ F1) with
// jaccard 1.0, n_ops 1, sizeH 2.
func TestS3DifferenceRequired(t *testing.T) {
	f0 := setOf(0, 1, 2, 3)
	f1 := setOf(2, 3)
	u := f0
	g := setOf(0, 1)

	front, err := exhaustive.Run([]bitset.Set{f0, f1}, u, g, 1)
	require.NoError(t, err)

	var match bool
	for _, s := range front {
		if s.Expr.String() == "(F0 \\ F1)" {
			match = true
			assert.Equal(t, 1.0, s.Jaccard)
			assert.Equal(t, 1, s.NOps)
			assert.Equal(t, 2, s.SizeH)
		}
	}
	assert.True(t, match, "front: %+v", front)
}

// TestS5ParetoTradeoff exercises scenario S5: F = [{0},{0,1,2,3,4,5,
// 6,7}], G = {0,1}, k = 2. F0 (jaccard 0.5) belongs on the front. F1
// (jaccard 0.25) has the same n_ops and sizeH as F0 and a lower
// jaccard, so F0 dominates it and the front must leave it out.
func TestS5ParetoTradeoff(t *testing.T) {
	f0 := setOf(0)
	f1 := setOf(0, 1, 2, 3, 4, 5, 6, 7)
	u := bitset.Full()
	g := setOf(0, 1)

	front, err := exhaustive.Run([]bitset.Set{f0, f1}, u, g, 2)
	require.NoError(t, err)

	var sawF0, sawF1 bool
	for _, s := range front {
		switch s.Expr.String() {
		case "F0":
			sawF0 = true
			assert.Equal(t, 0.5, s.Jaccard)
			assert.Equal(t, 0, s.NOps)
			assert.Equal(t, 1, s.SizeH)
		case "F1":
			sawF1 = true
		}
	}

	f1Expr := expr.Leaf(1, f1)
	f1J, err := metric.Evaluate(f1Expr, g, metric.Jaccard)
	require.NoError(t, err)
	f1Sol := pareto.SolMO{Expr: f1Expr, Jaccard: f1J, NOps: f1Expr.NOps(), SizeH: f1Expr.SizeH()}
	assert.Equal(t, 0.25, f1Sol.Jaccard)
	assert.Equal(t, 0, f1Sol.NOps)
	assert.Equal(t, 1, f1Sol.SizeH)
	assert.True(t, pareto.Dominates(pareto.SolMO{Jaccard: 0.5, NOps: 0, SizeH: 1}, f1Sol))

	assert.True(t, sawF0, "front: %+v", front)
	assert.False(t, sawF1, "front: %+v", front)
}

// TestS6EmptyUniverseEdgeCase exercises scenario S6: F = [], G = ∅,
// k = 0. The front must be a subset of {∅, U}, with ∅ scoring
// jaccard = 1.0 by the 0/0 convention.
func TestS6EmptyUniverseEdgeCase(t *testing.T) {
	front, err := exhaustive.Run(nil, bitset.Full(), bitset.Set{}, 0)
	require.NoError(t, err)

	for _, s := range front {
		assert.Contains(t, []string{"∅", "U"}, s.Expr.String())
		if s.Expr.String() == "∅" {
			assert.Equal(t, 1.0, s.Jaccard)
		}
	}
}
