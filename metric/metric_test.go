package metric_test

import (
	"testing"

	"github.com/lauralsoraluce/setforge/bitset"
	"github.com/lauralsoraluce/setforge/expr"
	"github.com/lauralsoraluce/setforge/metric"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseMetricAliases(t *testing.T) {
	cases := map[string]metric.Metric{
		"jaccard": metric.Jaccard,
		"IoU":     metric.Jaccard,
		"size_h":  metric.SizeH,
		"Size":    metric.SizeH,
		"op_size": metric.OpSize,
		"OpSize":  metric.OpSize,
	}
	for in, want := range cases {
		got, err := metric.ParseMetric(in)
		require.NoError(t, err)
		assert.Equal(t, want, got)
	}

	_, err := metric.ParseMetric("nope")
	assert.ErrorIs(t, err, metric.ErrUnknownMetric)
}

func TestJaccardZeroOverZeroConvention(t *testing.T) {
	e := expr.Empty()
	var g bitset.Set
	v, err := metric.Evaluate(e, g, metric.Jaccard)
	require.NoError(t, err)
	assert.Equal(t, 1.0, v)
}

func TestJaccardPartialOverlap(t *testing.T) {
	h := expr.Leaf(0, bitset.Set{}.SetBit(0).SetBit(1))
	g := bitset.Set{}.SetBit(1).SetBit(2)

	v, err := metric.Evaluate(h, g, metric.Jaccard)
	require.NoError(t, err)
	assert.InDelta(t, 1.0/3.0, v, 1e-9)
}

func TestSizeHAndOpSize(t *testing.T) {
	l := expr.Leaf(0, bitset.Set{})
	r := expr.Leaf(1, bitset.Set{})
	c, err := expr.Combine(bitset.OpUnion, l, r)
	require.NoError(t, err)

	sh, err := metric.Evaluate(c, bitset.Set{}, metric.SizeH)
	require.NoError(t, err)
	assert.Equal(t, 2.0, sh)

	ops, err := metric.Evaluate(c, bitset.Set{}, metric.OpSize)
	require.NoError(t, err)
	assert.Equal(t, 1.0, ops)
}

func TestIsMaximization(t *testing.T) {
	assert.True(t, metric.IsMaximization(metric.Jaccard))
	assert.False(t, metric.IsMaximization(metric.SizeH))
	assert.False(t, metric.IsMaximization(metric.OpSize))
}
