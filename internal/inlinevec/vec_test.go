package inlinevec_test

import (
	"slices"
	"testing"

	. "github.com/dogmatiq/intervalkit/internal/inlinevec"
	"github.com/stretchr/testify/require"
)

func vecOf(values ...int) *Vec[int] {
	v := &Vec[int]{}
	for _, x := range values {
		v.Append(x)
	}
	return v
}

func TestVec(t *testing.T) {
	t.Run("zero value", func(t *testing.T) {
		var v Vec[int]

		require.Equal(t, 0, v.Len())
		require.True(t, v.IsInline())
		require.Empty(t, slices.Collect(v.All()))
	})

	t.Run("Insert", func(t *testing.T) {
		t.Run("it stays inline up to the inline capacity", func(t *testing.T) {
			v := vecOf(1, 2)

			require.True(t, v.IsInline())
			require.Equal(t, []int{1, 2}, slices.Collect(v.All()))
		})

		t.Run("it spills to the heap beyond the inline capacity", func(t *testing.T) {
			v := vecOf(1, 2, 3)

			require.False(t, v.IsInline())
			require.Equal(t, []int{1, 2, 3}, slices.Collect(v.All()))
		})

		t.Run("it shifts subsequent elements to the right", func(t *testing.T) {
			for i := 0; i <= 4; i++ {
				v := vecOf(10, 20, 30, 40)
				v.Insert(i, 99)

				expect := slices.Insert([]int{10, 20, 30, 40}, i, 99)
				require.Equal(t, expect, slices.Collect(v.All()), "index %d", i)
			}
		})

		t.Run("it preserves order when spilling from the middle", func(t *testing.T) {
			v := vecOf(1, 3)
			v.Insert(1, 2)

			require.False(t, v.IsInline())
			require.Equal(t, []int{1, 2, 3}, slices.Collect(v.All()))
		})

		t.Run("it inserts at the front of an inline vec", func(t *testing.T) {
			v := vecOf(2)
			v.Insert(0, 1)

			require.True(t, v.IsInline())
			require.Equal(t, []int{1, 2}, slices.Collect(v.All()))
		})

		t.Run("it panics if the index is out of range", func(t *testing.T) {
			v := vecOf(1)

			require.Panics(t, func() { v.Insert(2, 0) })
			require.Panics(t, func() { v.Insert(-1, 0) })
		})
	})

	t.Run("Delete", func(t *testing.T) {
		t.Run("it shifts subsequent inline elements to the left", func(t *testing.T) {
			v := vecOf(1, 2)
			v.Delete(0)

			require.Equal(t, []int{2}, slices.Collect(v.All()))
			require.True(t, v.IsInline())
		})

		t.Run("it shifts subsequent heap elements to the left", func(t *testing.T) {
			v := vecOf(1, 2, 3, 4)
			v.Delete(1)

			require.Equal(t, []int{1, 3, 4}, slices.Collect(v.All()))
		})

		t.Run("it does not move elements back inline", func(t *testing.T) {
			v := vecOf(1, 2, 3)
			v.Delete(2)
			v.Delete(1)

			require.Equal(t, 1, v.Len())
			require.False(t, v.IsInline())
		})

		t.Run("it panics if the index is out of range", func(t *testing.T) {
			v := vecOf(1, 2)

			require.Panics(t, func() { v.Delete(2) })

			v = vecOf(1, 2, 3)
			require.Panics(t, func() { v.Delete(3) })
		})
	})

	t.Run("At and Set", func(t *testing.T) {
		t.Run("it reads and writes elements by index", func(t *testing.T) {
			for _, v := range []*Vec[int]{vecOf(1, 2), vecOf(1, 2, 3)} {
				v.Set(1, 20)
				require.Equal(t, 1, v.At(0))
				require.Equal(t, 20, v.At(1))
			}
		})

		t.Run("it panics if the index is out of range", func(t *testing.T) {
			v := vecOf(1)

			require.Panics(t, func() { v.At(1) })
			require.Panics(t, func() { v.Set(1, 0) })
		})
	})

	t.Run("ShrinkToFit", func(t *testing.T) {
		t.Run("it moves small heap-backed vecs back inline", func(t *testing.T) {
			v := vecOf(1, 2, 3)
			v.Delete(0)
			v.ShrinkToFit()

			require.True(t, v.IsInline())
			require.Equal(t, []int{2, 3}, slices.Collect(v.All()))
		})

		t.Run("it keeps large vecs on the heap", func(t *testing.T) {
			v := vecOf(1, 2, 3, 4, 5)
			v.Delete(4)
			v.ShrinkToFit()

			require.False(t, v.IsInline())
			require.Equal(t, []int{1, 2, 3, 4}, slices.Collect(v.All()))
		})

		t.Run("it moves an emptied heap-backed vec back inline", func(t *testing.T) {
			v := vecOf(1, 2, 3)
			v.Delete(0)
			v.Delete(0)
			v.Delete(0)
			v.ShrinkToFit()

			require.True(t, v.IsInline())
			require.Equal(t, 0, v.Len())
		})
	})

	t.Run("Clone", func(t *testing.T) {
		t.Run("it returns an independent copy", func(t *testing.T) {
			for _, v := range []*Vec[int]{vecOf(1, 2), vecOf(1, 2, 3)} {
				c := v.Clone()
				c.Set(0, 100)
				c.Append(200)

				require.Equal(t, 1, v.At(0))
				require.Equal(t, c.Len()-1, v.Len())
			}
		})

		t.Run("it normalizes small heap-backed vecs to inline storage", func(t *testing.T) {
			v := vecOf(1, 2, 3)
			v.Delete(2)

			c := v.Clone()

			require.False(t, v.IsInline())
			require.True(t, c.IsInline())
			require.Equal(t, []int{1, 2}, slices.Collect(c.All()))
		})

		t.Run("it keeps large vecs on the heap", func(t *testing.T) {
			v := vecOf(1, 2, 3)
			c := v.Clone()

			require.False(t, c.IsInline())
			require.Equal(t, []int{1, 2, 3}, slices.Collect(c.All()))
		})
	})

	t.Run("Backward", func(t *testing.T) {
		t.Run("it yields the elements in reverse order", func(t *testing.T) {
			v := vecOf(1, 2, 3)

			require.Equal(t, []int{3, 2, 1}, slices.Collect(v.Backward()))
		})

		t.Run("it stops when the consumer stops", func(t *testing.T) {
			v := vecOf(1, 2, 3)

			var got []int
			for x := range v.Backward() {
				got = append(got, x)
				break
			}

			require.Equal(t, []int{3}, got)
		})
	})
}
