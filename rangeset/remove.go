package rangeset

// Remove removes all of the points in iv from the set.
//
// Intervals that straddle a boundary of iv are trimmed, intervals that contain
// iv are split in two, and intervals entirely within iv are removed. It is a
// no-op if iv is empty.
func (s *RangeSet) Remove(iv Interval) {
	if iv.IsEmpty() {
		return
	}

	for i := 0; i < s.intervals.Len(); {
		current := s.intervals.At(i)

		if iv.End <= current.Begin {
			// No subsequent interval can overlap iv.
			return
		}

		if iv.Begin >= current.End {
			i++
			continue
		}

		left := Interval{current.Begin, iv.Begin}
		right := Interval{iv.End, current.End}

		switch {
		case left.IsEmpty() && right.IsEmpty():
			s.intervals.Delete(i)
		case left.IsEmpty():
			s.intervals.Set(i, right)
			i++
		case right.IsEmpty():
			s.intervals.Set(i, left)
			i++
		default:
			s.intervals.Set(i, right)
			s.intervals.Insert(i, left)
			i += 2
		}
	}
}

// RemoveRange removes all of the points in [begin, end) from the set.
//
// It is equivalent to calling [RangeSet.Remove] with the same bounds.
func (s *RangeSet) RemoveRange(begin, end uint64) {
	s.Remove(Interval{begin, end})
}
