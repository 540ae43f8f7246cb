package exhaustive_test

import (
	"testing"

	"github.com/lauralsoraluce/setforge/bitset"
	"github.com/lauralsoraluce/setforge/exhaustive"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInvalidK(t *testing.T) {
	_, err := exhaustive.Run(nil, bitset.Set{}, bitset.Set{}, -1)
	assert.ErrorIs(t, err, exhaustive.ErrInvalidK)
}

func TestFindsExactMatchWhenReachable(t *testing.T) {
	// F0 = {0,1}, F1 = {1,2}; G = F0 ∪ F1 = {0,1,2}, reachable with 1 op.
	f0 := bitset.Set{}.SetBit(0).SetBit(1)
	f1 := bitset.Set{}.SetBit(1).SetBit(2)
	u := bitset.Union(f0, f1)
	g := u

	front, err := exhaustive.Run([]bitset.Set{f0, f1}, u, g, 1)
	require.NoError(t, err)

	found := false
	for _, s := range front {
		if s.Jaccard == 1.0 {
			found = true
		}
	}
	assert.True(t, found)
}

func TestZeroOpsOnlyLeaves(t *testing.T) {
	f0 := bitset.Set{}.SetBit(0)
	u := f0
	g := bitset.Set{}.SetBit(5)

	front, err := exhaustive.Run([]bitset.Set{f0}, u, g, 0)
	require.NoError(t, err)
	for _, s := range front {
		assert.Equal(t, 0, s.NOps)
	}
}
