package rng_test

import (
	"testing"

	"github.com/lauralsoraluce/setforge/internal/rng"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewIsDeterministic(t *testing.T) {
	a := rng.New(42)
	b := rng.New(42)
	assert.Equal(t, a.Int63(), b.Int63())
}

func TestDeriveProducesIndependentStreams(t *testing.T) {
	base := rng.New(7)
	s1 := rng.Derive(base, 0)
	s2 := rng.Derive(base, 1)
	assert.NotEqual(t, s1.Int63(), s2.Int63())
}

func TestPermNegativeLength(t *testing.T) {
	_, err := rng.Perm(-1, nil)
	assert.ErrorIs(t, err, rng.ErrNegativeLength)
}

func TestPermIsPermutation(t *testing.T) {
	p, err := rng.Perm(10, rng.New(1))
	require.NoError(t, err)
	seen := make(map[int]bool, 10)
	for _, v := range p {
		seen[v] = true
	}
	assert.Len(t, seen, 10)
}
