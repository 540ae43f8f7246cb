package expr

import (
	"fmt"
	"sort"
	"strings"

	"github.com/lauralsoraluce/setforge/bitset"
)

// Expression is an immutable set-algebra expression value.
type Expression struct {
	set      bitset.Set
	str      string
	usedSets map[int]struct{}
	nOps     int
}

// Set returns the bitset value the expression evaluates to.
func (e Expression) Set() bitset.Set { return e.set }

// String returns the canonical infix text of the expression.
func (e Expression) String() string { return e.str }

// NOps returns the number of set-algebra operators used to build e.
func (e Expression) NOps() int { return e.nOps }

// SizeH returns the number of distinct base sets (F_i) referenced by e.
// The universe U and the empty set ∅ do not count toward this total.
func (e Expression) SizeH() int { return len(e.usedSets) }

// UsedSets returns the sorted indices of base sets referenced by e.
func (e Expression) UsedSets() []int {
	out := make([]int, 0, len(e.usedSets))
	for i := range e.usedSets {
		out = append(out, i)
	}
	sort.Ints(out)
	return out
}

// Leaf builds a base-set expression "F<index>" over value v.
func Leaf(index int, v bitset.Set) Expression {
	return Expression{
		set:      v,
		str:      fmt.Sprintf("F%d", index),
		usedSets: map[int]struct{}{index: {}},
		nOps:     0,
	}
}

// Universe builds the "U" leaf expression over the full universe value.
func Universe(u bitset.Set) Expression {
	return Expression{set: u, str: "U", nOps: 0}
}

// Empty builds the "∅" leaf expression (the empty set).
func Empty() Expression {
	return Expression{str: "∅", nOps: 0}
}

// Combine builds op(l, r), unioning the base sets each side used and
// adding one to the combined operator count.
func Combine(op bitset.Op, l, r Expression) (Expression, error) {
	v, err := bitset.ApplyOp(op, l.set, r.set)
	if err != nil {
		return Expression{}, err
	}

	used := make(map[int]struct{}, len(l.usedSets)+len(r.usedSets))
	for i := range l.usedSets {
		used[i] = struct{}{}
	}
	for i := range r.usedSets {
		used[i] = struct{}{}
	}

	var b strings.Builder
	b.WriteByte('(')
	b.WriteString(l.str)
	b.WriteByte(' ')
	b.WriteString(op.String())
	b.WriteByte(' ')
	b.WriteString(r.str)
	b.WriteByte(')')

	return Expression{
		set:      v,
		str:      b.String(),
		usedSets: used,
		nOps:     l.nOps + r.nOps + 1,
	}, nil
}
