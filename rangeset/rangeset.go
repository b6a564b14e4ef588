// Package rangeset provides a compact set of covered points in the uint64
// domain, represented as disjoint half-open intervals.
package rangeset

import (
	"iter"
	"math"
	"strings"

	"github.com/dogmatiq/intervalkit/internal/inlinevec"
)

// RangeSet is a set of points, stored as an ascending sequence of disjoint,
// non-empty [Interval] values.
//
// Sets containing very few intervals are stored without any heap allocation.
//
// The zero value is an empty set. A RangeSet is not safe for concurrent use.
//
// Assigning one RangeSet to another does not necessarily produce an
// independent copy; use [RangeSet.Clone] instead.
type RangeSet struct {
	intervals inlinevec.Vec[Interval]
}

// New returns a set containing the points in each of the given intervals.
func New(intervals ...Interval) RangeSet {
	var s RangeSet
	for _, iv := range intervals {
		s.Insert(iv)
	}
	return s
}

// Len returns the number of disjoint intervals in the set. It is not the
// number of points covered by the set; see [RangeSet.Covered].
func (s *RangeSet) Len() int {
	return s.intervals.Len()
}

// IsEmpty returns true if the set contains no points.
func (s *RangeSet) IsEmpty() bool {
	return s.intervals.Len() == 0
}

// Contains returns true if p is a member of the set.
func (s *RangeSet) Contains(p uint64) bool {
	for iv := range s.intervals.All() {
		if iv.Begin > p {
			return false
		}
		if iv.Contains(p) {
			return true
		}
	}
	return false
}

// Covered returns the total number of points in the set.
//
// It returns [math.MaxUint64] if the true total is not representable.
func (s *RangeSet) Covered() uint64 {
	var n uint64
	for iv := range s.intervals.All() {
		l := iv.Len()
		if n > math.MaxUint64-l {
			return math.MaxUint64
		}
		n += l
	}
	return n
}

// Bounds returns the smallest interval that contains every point in the set.
// ok is false if the set is empty.
func (s *RangeSet) Bounds() (_ Interval, ok bool) {
	n := s.intervals.Len()
	if n == 0 {
		return Interval{}, false
	}

	return Interval{
		Begin: s.intervals.At(0).Begin,
		End:   s.intervals.At(n - 1).End,
	}, true
}

// All returns an iterator over the intervals in the set, in ascending order.
func (s *RangeSet) All() iter.Seq[Interval] {
	return s.intervals.All()
}

// Backward returns an iterator over the intervals in the set, in descending
// order.
func (s *RangeSet) Backward() iter.Seq[Interval] {
	return s.intervals.Backward()
}

// Equal returns true if s and x contain exactly the same intervals.
func (s *RangeSet) Equal(x *RangeSet) bool {
	n := s.intervals.Len()
	if n != x.intervals.Len() {
		return false
	}

	for i := range n {
		if s.intervals.At(i) != x.intervals.At(i) {
			return false
		}
	}

	return true
}

// Clone returns an independent copy of the set.
//
// Small sets are always cloned into inline storage, regardless of how s
// itself is stored.
func (s *RangeSet) Clone() RangeSet {
	return RangeSet{s.intervals.Clone()}
}

// ShrinkToFit releases any storage not needed to hold the current intervals.
func (s *RangeSet) ShrinkToFit() {
	s.intervals.ShrinkToFit()
}

// String returns a diagnostic representation of the set.
func (s *RangeSet) String() string {
	var w strings.Builder

	w.WriteByte('{')
	for iv := range s.intervals.All() {
		if w.Len() > 1 {
			w.WriteString(", ")
		}
		w.WriteString(iv.String())
	}
	w.WriteByte('}')

	return w.String()
}
