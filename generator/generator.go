package generator

import (
	"math/rand"

	"github.com/lauralsoraluce/setforge/bitset"
	"github.com/lauralsoraluce/setforge/expr"
	"github.com/lauralsoraluce/setforge/internal/randexpr"
	"github.com/lauralsoraluce/setforge/internal/rng"
)

// sampleSet returns a random subset of {0,...,Width-1} of exactly size
// elements, built by shuffling the index range and taking a prefix —
// the reject-and-retry approach of the original sampler, reframed as
// a single shuffle since Width is small enough that this never needs
// to retry.
func sampleSet(size int, r *rand.Rand) bitset.Set {
	idx := make([]int, bitset.Width)
	for i := range idx {
		idx[i] = i
	}
	rng.ShuffleInts(idx, r)

	var s bitset.Set
	for i := 0; i < size && i < len(idx); i++ {
		s = s.SetBit(idx[i])
	}
	return s
}

func randSize(min, max int, r *rand.Rand) int {
	if max <= min {
		return min
	}
	return min + r.Intn(max-min+1)
}

// New samples a family of base sets per cfg.
func New(cfg Config, r *rand.Rand) ([]bitset.Set, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	n := randSize(cfg.FMin, cfg.FMax, r)
	out := make([]bitset.Set, n)
	for i := range out {
		size := randSize(cfg.FSizeMin, cfg.FSizeMax, r)
		out[i] = sampleSet(size, r)
	}
	return out, nil
}

// Target samples a standalone random target set with at least sizeMin
// elements (up to the full universe width).
func Target(sizeMin int, r *rand.Rand) (bitset.Set, error) {
	if sizeMin < 0 || sizeMin > bitset.Width {
		return bitset.Set{}, ErrInvalidRange
	}
	size := randSize(sizeMin, bitset.Width, r)
	return sampleSet(size, r), nil
}

// GroundTruth builds a family of base sets F plus a target G obtained
// by evaluating a randomly constructed expression ("gold") over F,
// bounded to k operators. Because G is exactly gold.Set(), at least
// one perfect (Jaccard == 1.0) solution is guaranteed to exist.
func GroundTruth(cfg Config, k int, r *rand.Rand) (f []bitset.Set, g bitset.Set, gold expr.Expression, err error) {
	f, err = New(cfg, r)
	if err != nil {
		return nil, bitset.Set{}, expr.Expression{}, err
	}

	gold = randexpr.BuildRandom(randexpr.Pool{Bases: f, Universe: bitset.Full()}, k, r)
	g = gold.Set()
	return f, g, gold, nil
}
