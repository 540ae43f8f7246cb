package bitset

import (
	"fmt"
	"math/bits"
)

// Union returns a ∪ b.
func Union(a, b Set) Set {
	var r Set
	for i := range r.w {
		r.w[i] = a.w[i] | b.w[i]
	}
	return r
}

// Intersect returns a ∩ b.
func Intersect(a, b Set) Set {
	var r Set
	for i := range r.w {
		r.w[i] = a.w[i] & b.w[i]
	}
	return r
}

// Difference returns a ∖ b (elements of a not in b).
func Difference(a, b Set) Set {
	var r Set
	for i := range r.w {
		r.w[i] = a.w[i] &^ b.w[i]
	}
	return r
}

// ApplyOp dispatches to Union, Intersect, or Difference based on op.
func ApplyOp(op Op, a, b Set) (Set, error) {
	switch op {
	case OpUnion:
		return Union(a, b), nil
	case OpIntersect:
		return Intersect(a, b), nil
	case OpDifference:
		return Difference(a, b), nil
	default:
		return Set{}, ErrUnknownOp
	}
}

// Popcount returns the number of set bits (the cardinality of the set).
func (s Set) Popcount() int {
	n := 0
	for _, word := range s.w {
		n += bits.OnesCount64(word)
	}
	return n
}

// Test reports whether bit i is set. i outside [0, Width) returns false.
func (s Set) Test(i int) bool {
	if i < 0 || i >= Width {
		return false
	}
	return s.w[i/64]&(uint64(1)<<uint(i%64)) != 0
}

// SetBit returns a copy of s with bit i set. i outside [0, Width) is a
// no-op (returns s unchanged) — callers that must validate the index
// should do so before calling SetBit.
func (s Set) SetBit(i int) Set {
	if i < 0 || i >= Width {
		return s
	}
	s.w[i/64] |= uint64(1) << uint(i%64)
	return s
}

// Full returns the universe set with every one of the Width bits set.
func Full() Set {
	var s Set
	for i := range s.w {
		s.w[i] = ^uint64(0)
	}
	return s
}

// Empty reports whether no bits are set.
func (s Set) Empty() bool {
	for _, word := range s.w {
		if word != 0 {
			return false
		}
	}
	return true
}

// Equal reports whether s and o have identical bits.
func (s Set) Equal(o Set) bool {
	return s.w == o.w
}

// Key renders a canonical hex encoding of the backing words, used as a
// deduplication key. It is independent of how the set's value was
// produced (two different expressions evaluating to the same bits
// yield the same Key).
func (s Set) Key() string {
	buf := make([]byte, 0, words*16)
	for i := len(s.w) - 1; i >= 0; i-- {
		buf = fmt.Appendf(buf, "%016x", s.w[i])
	}
	return string(buf)
}
