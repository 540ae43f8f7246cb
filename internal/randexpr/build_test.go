package randexpr_test

import (
	"math/rand"
	"testing"

	"github.com/lauralsoraluce/setforge/bitset"
	"github.com/lauralsoraluce/setforge/expr"
	"github.com/lauralsoraluce/setforge/internal/randexpr"
	"github.com/stretchr/testify/assert"
)

func testPool() randexpr.Pool {
	return randexpr.Pool{
		Bases: []bitset.Set{
			bitset.Set{}.SetBit(0).SetBit(1),
			bitset.Set{}.SetBit(2).SetBit(3),
			bitset.Set{}.SetBit(4),
		},
		Universe: bitset.Full(),
	}
}

func TestDrawIndicesAreDistinctAndBounded(t *testing.T) {
	p := testPool()
	r := rand.New(rand.NewSource(1))

	for i := 0; i < 50; i++ {
		idx := randexpr.DrawIndices(len(p.Bases), 2, r)
		assert.GreaterOrEqual(t, len(idx), 1)
		assert.LessOrEqual(t, len(idx), 3) // min(m+1, k+1) = min(4,3) = 3

		seen := make(map[int]bool, len(idx))
		for _, v := range idx {
			assert.False(t, seen[v], "index %d drawn twice", v)
			seen[v] = true
			assert.True(t, v >= -1 && v < len(p.Bases))
		}
	}
}

func TestBuildSingleLeafReturnsUnchanged(t *testing.T) {
	p := testPool()
	leaf := p.LeafAt(0)
	r := rand.New(rand.NewSource(1))

	built := randexpr.Build([]expr.Expression{leaf}, 3, r)
	assert.Equal(t, leaf.String(), built.String())
}

func TestBuildStaysWithinOperatorBudget(t *testing.T) {
	p := testPool()
	r := rand.New(rand.NewSource(3))

	leaves := p.Leaves()
	for i := 0; i < 20; i++ {
		built := randexpr.Build(leaves, 2, r)
		assert.LessOrEqual(t, built.NOps(), 2)
	}
}

func TestBuildRandomRespectsOperatorBudget(t *testing.T) {
	p := testPool()
	r := rand.New(rand.NewSource(5))

	for i := 0; i < 20; i++ {
		e := randexpr.BuildRandom(p, 2, r)
		assert.LessOrEqual(t, e.NOps(), 2)
	}
}
