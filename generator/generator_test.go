package generator_test

import (
	"testing"

	"github.com/lauralsoraluce/setforge/generator"
	"github.com/lauralsoraluce/setforge/internal/rng"
	"github.com/lauralsoraluce/setforge/metric"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfigValidate(t *testing.T) {
	bad := generator.Config{FMin: 5, FMax: 1}
	assert.ErrorIs(t, bad.Validate(), generator.ErrInvalidRange)

	tooWide := generator.Config{FMin: 1, FMax: 1, FSizeMin: 1, FSizeMax: 1000}
	assert.ErrorIs(t, tooWide.Validate(), generator.ErrSizeExceedsWidth)

	assert.NoError(t, generator.DefaultConfig().Validate())
}

func TestNewProducesBoundedFamily(t *testing.T) {
	cfg := generator.Config{FMin: 5, FMax: 10, FSizeMin: 1, FSizeMax: 20}
	f, err := generator.New(cfg, rng.New(1))
	require.NoError(t, err)
	assert.GreaterOrEqual(t, len(f), cfg.FMin)
	assert.LessOrEqual(t, len(f), cfg.FMax)
	for _, s := range f {
		assert.LessOrEqual(t, s.Popcount(), cfg.FSizeMax)
	}
}

func TestTargetRespectsMinimumSize(t *testing.T) {
	g, err := generator.Target(5, rng.New(2))
	require.NoError(t, err)
	assert.GreaterOrEqual(t, g.Popcount(), 5)

	_, err = generator.Target(-1, rng.New(2))
	assert.ErrorIs(t, err, generator.ErrInvalidRange)

	_, err = generator.Target(999, rng.New(2))
	assert.ErrorIs(t, err, generator.ErrInvalidRange)
}

func TestGroundTruthGuaranteesPerfectMatch(t *testing.T) {
	cfg := generator.Config{FMin: 5, FMax: 8, FSizeMin: 1, FSizeMax: 20}
	f, g, gold, err := generator.GroundTruth(cfg, 5, rng.New(42))
	require.NoError(t, err)
	assert.NotEmpty(t, f)

	j, err := metric.Evaluate(gold, g, metric.Jaccard)
	require.NoError(t, err)
	assert.Equal(t, 1.0, j)
	assert.LessOrEqual(t, gold.NOps(), 5)
}
