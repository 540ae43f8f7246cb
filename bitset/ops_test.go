package bitset_test

import (
	"testing"

	"github.com/lauralsoraluce/setforge/bitset"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setOf(idx ...int) bitset.Set {
	var s bitset.Set
	for _, i := range idx {
		s = s.SetBit(i)
	}
	return s
}

func TestUnionIntersectDifference(t *testing.T) {
	a := setOf(0, 1, 2)
	b := setOf(1, 2, 3)

	assert.True(t, bitset.Union(a, b).Equal(setOf(0, 1, 2, 3)))
	assert.True(t, bitset.Intersect(a, b).Equal(setOf(1, 2)))
	assert.True(t, bitset.Difference(a, b).Equal(setOf(0)))
}

func TestApplyOp(t *testing.T) {
	a := setOf(0)
	b := setOf(1)

	r, err := bitset.ApplyOp(bitset.OpUnion, a, b)
	require.NoError(t, err)
	assert.True(t, r.Equal(setOf(0, 1)))

	_, err = bitset.ApplyOp(bitset.Op(99), a, b)
	assert.ErrorIs(t, err, bitset.ErrUnknownOp)
}

func TestFull(t *testing.T) {
	f := bitset.Full()
	assert.Equal(t, bitset.Width, f.Popcount())
	for i := 0; i < bitset.Width; i++ {
		assert.True(t, f.Test(i))
	}
}

func TestPopcountAndEmpty(t *testing.T) {
	var z bitset.Set
	assert.True(t, z.Empty())
	assert.Equal(t, 0, z.Popcount())

	s := setOf(0, 5, 127)
	assert.False(t, s.Empty())
	assert.Equal(t, 3, s.Popcount())
}

func TestTestBit(t *testing.T) {
	s := setOf(3, 64, 127)
	assert.True(t, s.Test(3))
	assert.True(t, s.Test(64))
	assert.True(t, s.Test(127))
	assert.False(t, s.Test(4))
	assert.False(t, s.Test(-1))
	assert.False(t, s.Test(bitset.Width))
}

func TestKeyIsCanonicalAndFixedWidth(t *testing.T) {
	a := setOf(0, 64)
	b := setOf(0, 64)
	c := setOf(1, 65)

	assert.Equal(t, a.Key(), b.Key())
	assert.NotEqual(t, a.Key(), c.Key())

	// Different bit patterns across the word boundary must not collide
	// just because concatenation without padding could alias.
	low := setOf(0, 1) // word0 = 0b11
	high := setOf(64)  // word1 = 0b1
	assert.NotEqual(t, low.Key(), high.Key())
}
