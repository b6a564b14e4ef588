// Package inlinevec provides a sequence container that avoids heap allocation
// while it holds only a few elements.
package inlinevec

import (
	"fmt"
	"iter"
	"slices"
)

// Capacity is the number of elements a [Vec] can hold without allocating.
const Capacity = 2

// Vec is an ordered sequence of values of type T.
//
// Up to [Capacity] elements are stored inline, within the Vec value itself.
// Inserting beyond that "spills" the elements to a heap-allocated slice. A
// spilled Vec remains heap-backed until [Vec.ShrinkToFit] is called.
//
// The zero value is an empty, inline Vec.
type Vec[T any] struct {
	// inline holds the elements while the Vec is not spilled. Only the first
	// n elements are meaningful.
	inline [Capacity]T
	n      int

	// heap holds the elements once the Vec has spilled. A non-nil heap
	// indicates that the Vec is heap-backed, even if it is empty.
	heap []T
}

// Len returns the number of elements in the Vec.
func (v *Vec[T]) Len() int {
	if v.heap != nil {
		return len(v.heap)
	}
	return v.n
}

// IsInline returns true if the elements are stored inline.
func (v *Vec[T]) IsInline() bool {
	return v.heap == nil
}

// At returns the element at index i.
//
// It panics if i is out of range.
func (v *Vec[T]) At(i int) T {
	return v.elements()[i]
}

// Set replaces the element at index i with x.
//
// It panics if i is out of range.
func (v *Vec[T]) Set(i int, x T) {
	v.elements()[i] = x
}

// Insert inserts x at index i, shifting the element at i and all subsequent
// elements one place to the right.
//
// i may be equal to v.Len(), in which case x is appended. It panics if i is
// otherwise out of range.
func (v *Vec[T]) Insert(i int, x T) {
	if n := v.Len(); i < 0 || i > n {
		panic(fmt.Sprintf("insertion index out of range [%d] with length %d", i, n))
	}

	if v.heap != nil {
		v.heap = slices.Insert(v.heap, i, x)
		return
	}

	if v.n < Capacity {
		copy(v.inline[i+1:v.n+1], v.inline[i:v.n])
		v.inline[i] = x
		v.n++
		return
	}

	heap := make([]T, 0, 2*Capacity)
	heap = append(heap, v.inline[:i]...)
	heap = append(heap, x)
	heap = append(heap, v.inline[i:]...)

	v.inline = [Capacity]T{}
	v.n = 0
	v.heap = heap
}

// Append adds x to the end of the Vec.
func (v *Vec[T]) Append(x T) {
	v.Insert(v.Len(), x)
}

// Delete removes the element at index i, shifting all subsequent elements one
// place to the left.
//
// It panics if i is out of range. Deleting from a heap-backed Vec does not
// move the elements back inline; see [Vec.ShrinkToFit].
func (v *Vec[T]) Delete(i int) {
	if n := v.Len(); i < 0 || i >= n {
		panic(fmt.Sprintf("deletion index out of range [%d] with length %d", i, n))
	}

	if v.heap != nil {
		v.heap = slices.Delete(v.heap, i, i+1)
		return
	}

	copy(v.inline[i:v.n-1], v.inline[i+1:v.n])
	v.n--

	var zero T
	v.inline[v.n] = zero
}

// ShrinkToFit releases any heap capacity beyond the current length. If the
// elements fit within the inline capacity they are moved back inline.
func (v *Vec[T]) ShrinkToFit() {
	if v.heap == nil {
		return
	}

	if len(v.heap) <= Capacity {
		v.n = copy(v.inline[:], v.heap)
		v.heap = nil
		return
	}

	if cap(v.heap) > len(v.heap) {
		heap := make([]T, len(v.heap))
		copy(heap, v.heap)
		v.heap = heap
	}
}

// Clone returns an independent copy of the Vec.
//
// If the elements fit within the inline capacity the copy is always inline,
// even if v itself is heap-backed.
func (v *Vec[T]) Clone() Vec[T] {
	if v.heap == nil {
		return *v
	}

	var c Vec[T]

	if len(v.heap) <= Capacity {
		c.n = copy(c.inline[:], v.heap)
		return c
	}

	c.heap = make([]T, len(v.heap))
	copy(c.heap, v.heap)

	return c
}

// All returns an iterator over the elements in order.
//
// The elements are read lazily, so the sequence must not be consumed while
// the Vec is being modified.
func (v *Vec[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		for i := 0; i < v.Len(); i++ {
			if !yield(v.At(i)) {
				return
			}
		}
	}
}

// Backward returns an iterator over the elements in reverse order.
func (v *Vec[T]) Backward() iter.Seq[T] {
	return func(yield func(T) bool) {
		for i := v.Len() - 1; i >= 0; i-- {
			if !yield(v.At(i)) {
				return
			}
		}
	}
}

// elements returns the meaningful portion of the underlying storage.
func (v *Vec[T]) elements() []T {
	if v.heap != nil {
		return v.heap
	}
	return v.inline[:v.n]
}
