package metric

import (
	"strings"

	"github.com/lauralsoraluce/setforge/bitset"
	"github.com/lauralsoraluce/setforge/expr"
)

// Metric identifies one of the three optimization criteria.
type Metric int

const (
	Jaccard Metric = iota
	SizeH
	OpSize
)

// String renders the canonical metric name.
func (m Metric) String() string {
	switch m {
	case Jaccard:
		return "jaccard"
	case SizeH:
		return "size_h"
	case OpSize:
		return "op_size"
	default:
		return "unknown"
	}
}

// ParseMetric parses a case-insensitive metric name, accepting the
// aliases "iou" (Jaccard), "size" (SizeH), and "opsize" (OpSize).
func ParseMetric(s string) (Metric, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "jaccard", "iou":
		return Jaccard, nil
	case "size_h", "sizeh", "size":
		return SizeH, nil
	case "op_size", "opsize":
		return OpSize, nil
	default:
		return 0, ErrUnknownMetric
	}
}

// IsMaximization reports whether higher values of m are better.
func IsMaximization(m Metric) bool {
	return m == Jaccard
}

// Evaluate computes m for e against target g.
func Evaluate(e expr.Expression, g bitset.Set, m Metric) (float64, error) {
	switch m {
	case Jaccard:
		return jaccard(e.Set(), g), nil
	case SizeH:
		return float64(e.SizeH()), nil
	case OpSize:
		return float64(e.NOps()), nil
	default:
		return 0, ErrUnknownMetric
	}
}

// jaccard returns |a∩b|/|a∪b|, with the convention that an empty union
// (both sets empty) yields 1.0 — two empty sets are considered
// identical, not maximally dissimilar.
func jaccard(a, b bitset.Set) float64 {
	inter := bitset.Intersect(a, b).Popcount()
	union := bitset.Union(a, b).Popcount()
	if union == 0 {
		return 1.0
	}
	return float64(inter) / float64(union)
}
