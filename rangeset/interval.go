package rangeset

import (
	"fmt"
	"iter"
)

// Interval describes a half-open interval of points in the uint64 domain.
type Interval struct {
	// Begin is the first point in the interval.
	Begin uint64

	// End is the point immediately after the last point in the interval.
	End uint64
}

// IsEmpty returns true if the interval contains no points.
func (i Interval) IsEmpty() bool {
	return i.Begin >= i.End
}

// Len returns the number of points in the interval.
func (i Interval) Len() uint64 {
	if i.Begin < i.End {
		return i.End - i.Begin
	}
	return 0
}

// Contains returns true if the interval contains the given point.
func (i Interval) Contains(p uint64) bool {
	return i.Begin <= p && p < i.End
}

// Points returns a sequence of all points in the interval, paired with their
// offset from the beginning of the interval.
func (i Interval) Points() iter.Seq2[uint64, uint64] {
	return func(yield func(uint64, uint64) bool) {
		for p := i.Begin; p < i.End; p++ {
			if !yield(p-i.Begin, p) {
				return
			}
		}
	}
}

func (i Interval) String() string {
	return fmt.Sprintf("[%d, %d)", i.Begin, i.End)
}
