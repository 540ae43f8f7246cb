// Package metric evaluates a candidate Expression against a target set
// under one of the three optimization criteria used throughout the
// synthesis problem: similarity to the target, base-set usage, and
// operator count.
//
// What:
//
//   - Metric identifies one of {Jaccard, SizeH, OpSize}.
//   - Evaluate computes the metric's value for a given expression and
//     target bitset.
//   - ParseMetric accepts case-insensitive names and common aliases.
//   - IsMaximization reports whether higher values of a metric are
//     better (true for Jaccard, false for SizeH and OpSize).
//
// Why:
//
//   - Centralizing metric semantics keeps the 0/0 Jaccard convention
//     and alias table in one place instead of duplicated across every
//     solver.
//
// Errors:
//
//   - ErrUnknownMetric: ParseMetric or Evaluate given an unrecognized name/value.
package metric
