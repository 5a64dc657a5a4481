package shapes

import "iter"

// Iter iterates over all positions of the shape in storage order, yielding
// the flat (row-major) index and the per-axis position: the last axis varies
// fastest, so the flat index simply counts up from 0.
//
// To avoid allocating a slice per step, the yielded position is owned by the
// Iter() method: don't change it, and clone it if it must outlive the loop
// body.
func (s Shape) Iter() iter.Seq2[int, []int] {
	return func(yield func(int, []int) bool) {
		rank := s.Rank()
		if rank == 0 {
			// Valid scalar: yield one empty position.
			_ = yield(0, make([]int, 0))
			return
		}

		// Any zero dimension makes the shape empty: nothing to iterate.
		for _, dimSize := range s.Dimensions {
			if dimSize <= 0 {
				return
			}
		}

		position := make([]int, rank)
		flat := 0
		// Simulates an N-dimensional counter over the positions.
		for {
			if !yield(flat, position) {
				return // Consumer requested to stop iteration.
			}
			flat++

			// Increment position to the next set of coordinates
			// (row-major order: the last index changes fastest).
			axis := rank - 1
			for ; axis >= 0; axis-- {
				position[axis]++
				if position[axis] < s.Dimensions[axis] {
					// Successfully incremented this axis; no carry-over needed.
					break
				}
				// The current axis overflowed; reset it to 0 and carry over to
				// the next higher-order axis.
				position[axis] = 0
			}

			// If axis went below 0 the first axis also overflowed: iteration
			// is complete.
			if axis < 0 {
				break
			}
		}
	}
}
