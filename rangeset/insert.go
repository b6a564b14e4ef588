package rangeset

// Insert adds all of the points in iv to the set.
//
// Any existing intervals that overlap or touch iv are merged with it. It is a
// no-op if iv is empty.
func (s *RangeSet) Insert(iv Interval) {
	if iv.IsEmpty() {
		return
	}

	for i := 0; i < s.intervals.Len(); i++ {
		current := s.intervals.At(i)

		if current.Begin > iv.End {
			// iv lies entirely before current, with a gap between them.
			s.intervals.Insert(i, iv)
			return
		}

		if current.Begin > iv.Begin {
			// iv overlaps or touches the start of current. It may also run past
			// current's end, so keep extending or coverage of iv would be lost.
			current.Begin = iv.Begin
			s.intervals.Set(i, current)

			if iv.End > current.End {
				s.extend(i, iv.End)
			}

			return
		}

		if iv.End <= current.End {
			// current already covers iv.
			return
		}

		if iv.Begin <= current.End {
			// iv overlaps or touches the end of current.
			s.extend(i, iv.End)
			return
		}
	}

	s.intervals.Append(iv)
}

// InsertRange adds all of the points in [begin, end) to the set.
//
// It is equivalent to calling [RangeSet.Insert] with the same bounds.
func (s *RangeSet) InsertRange(begin, end uint64) {
	s.Insert(Interval{begin, end})
}

// extend moves the end of the interval at index i to end, then absorbs any
// subsequent intervals that now overlap or touch it.
func (s *RangeSet) extend(i int, end uint64) {
	current := s.intervals.At(i)
	current.End = end

	for i+1 < s.intervals.Len() {
		next := s.intervals.At(i + 1)
		if next.Begin > current.End {
			break
		}

		current.End = max(current.End, next.End)
		s.intervals.Delete(i + 1)
	}

	s.intervals.Set(i, current)
}
