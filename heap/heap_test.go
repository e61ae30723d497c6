package heap

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/cdwfs/algo/tagged"
)

func newTestHeap(t *testing.T, capacity int) *MinHeap {
	t.Helper()
	size, err := ComputeSize(capacity)
	require.NoError(t, err)
	buf := make([]byte, size)
	h, err := New(capacity, IntAscending, buf)
	require.NoError(t, err)
	return h
}

// Test_Heap_PopsInAscendingOrder checks that Pop always returns the
// current minimum and that Peek agrees with it without removing it.
func Test_Heap_PopsInAscendingOrder(t *testing.T) {
	h := newTestHeap(t, 8)
	for _, k := range []int32{3, 1, 4, 1, 5, 9, 2, 6} {
		require.NoError(t, h.Insert(tagged.FromInt(k), tagged.FromInt(k)))
	}
	require.NoError(t, h.Validate())

	var popped []int32
	for i := 0; i < 6; i++ {
		k, _, err := h.Pop()
		require.NoError(t, err)
		popped = append(popped, k.AsInt())
	}
	require.Equal(t, []int32{1, 1, 2, 3, 4, 5}, popped)
	require.Equal(t, int32(2), h.CurrentSize())

	k, _, err := h.Peek()
	require.NoError(t, err)
	require.Equal(t, int32(6), k.AsInt())
}

// Test_Heap_SizeBookkeeping checks that CurrentSize tracks inserts and pops
// exactly, and that Peek never mutates size.
func Test_Heap_SizeBookkeeping(t *testing.T) {
	h := newTestHeap(t, 5)
	for i := int32(0); i < 5; i++ {
		require.NoError(t, h.Insert(tagged.FromInt(i), tagged.FromInt(i)))
		require.Equal(t, i+1, h.CurrentSize())
	}

	for want := h.CurrentSize() - 1; want >= 0; want-- {
		pk, pv, err := h.Peek()
		require.NoError(t, err)
		k, v, err := h.Pop()
		require.NoError(t, err)
		require.Equal(t, pk, k)
		require.Equal(t, pv, v)
		require.Equal(t, want, h.CurrentSize())
	}
}

// Test_Heap_OrderingRandomSequence checks min-heap ordering holds across a
// larger pseudo-random sequence of inserts and pops.
func Test_Heap_OrderingRandomSequence(t *testing.T) {
	keys := []int32{17, 3, 45, 2, 99, 1, 0, -5, 23, 8, 8, 12, 4}
	h := newTestHeap(t, len(keys))
	for _, k := range keys {
		require.NoError(t, h.Insert(tagged.FromInt(k), tagged.FromInt(0)))
	}
	require.NoError(t, h.Validate())

	var last int32 = -1 << 30
	for h.CurrentSize() > 0 {
		require.NoError(t, h.Validate())
		k, _, err := h.Pop()
		require.NoError(t, err)
		require.GreaterOrEqual(t, k.AsInt(), last)
		last = k.AsInt()
	}
}

func Test_Heap_EmptyErrors(t *testing.T) {
	h := newTestHeap(t, 3)
	_, _, err := h.Peek()
	require.ErrorIs(t, err, ErrEmpty)
	_, _, err = h.Pop()
	require.ErrorIs(t, err, ErrEmpty)
}

func Test_Heap_FullError(t *testing.T) {
	h := newTestHeap(t, 1)
	require.NoError(t, h.Insert(tagged.FromInt(1), tagged.FromInt(1)))
	err := h.Insert(tagged.FromInt(2), tagged.FromInt(2))
	require.ErrorIs(t, err, ErrFull)
}

// Test_Heap_Relocate checks that a heap's ordering is preserved after its
// buffer is copied to a new location.
func Test_Heap_Relocate(t *testing.T) {
	h := newTestHeap(t, 8)
	for _, k := range []int32{5, 2, 8, 1} {
		require.NoError(t, h.Insert(tagged.FromInt(k), tagged.FromInt(k*10)))
	}

	oldBuf := make([]byte, h.BufferSize())
	copy(oldBuf, h.buf[:h.BufferSize()])

	newBuf := make([]byte, h.BufferSize())
	relocated, err := Relocate(newBuf, oldBuf, IntAscending)
	require.NoError(t, err)

	wantK, wantV, err := h.Pop()
	require.NoError(t, err)
	gotK, gotV, err := relocated.Pop()
	require.NoError(t, err)
	require.Equal(t, wantK, gotK)
	require.Equal(t, wantV, gotV)
}
