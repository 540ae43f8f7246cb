package greedy_test

import (
	"testing"

	"github.com/lauralsoraluce/setforge/bitset"
	"github.com/lauralsoraluce/setforge/greedy"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInvalidK(t *testing.T) {
	_, _, err := greedy.Run(nil, bitset.Set{}, bitset.Set{}, -1)
	assert.ErrorIs(t, err, greedy.ErrInvalidK)
}

func TestClimbsToPerfectMatchWhenTrivial(t *testing.T) {
	f0 := bitset.Set{}.SetBit(0).SetBit(1)
	u := f0
	g := f0 // target equals a base set exactly: zero ops needed.

	final, front, err := greedy.Run([]bitset.Set{f0}, u, g, 3)
	require.NoError(t, err)
	assert.Equal(t, 0, final.NOps())
	assert.NotEmpty(t, front)
	assert.Equal(t, 1.0, front[0].Jaccard)
}

func TestStopsAtBudget(t *testing.T) {
	f0 := bitset.Set{}.SetBit(0)
	f1 := bitset.Set{}.SetBit(1)
	u := bitset.Union(f0, f1)
	g := bitset.Set{}.SetBit(2) // unreachable target forces repeated attempts

	final, _, err := greedy.Run([]bitset.Set{f0, f1}, u, g, 2)
	require.NoError(t, err)
	assert.LessOrEqual(t, final.NOps(), 2)
}
