// Package heap implements a 1-based, array-backed binary min-heap of
// (key, value) tagged.Value pairs over a caller-owned buffer, ordered by a
// caller-supplied Comparator.
//
// The root lives at index 1; the children of index n are at 2n and 2n+1; the
// parent of index n is at n/2. Insert appends at the next empty slot and
// bubbles up; Pop moves the last element to the root and bubbles down,
// preferring the smaller child and never swapping on a tie.
//
// # Usage
//
//	size, err := heap.ComputeSize(capacity)
//	buf := make([]byte, size)
//	h, err := heap.New(capacity, heap.IntAscending, buf)
//	err = h.Insert(tagged.FromInt(3), tagged.FromInt(0))
//	k, v, err := h.Pop()
//
// The Comparator is a capability supplied at construction time and is never
// itself stored in the buffer (it is behavior, not data); FromBuffer and
// Relocate take it again explicitly when reopening a heap's buffer.
//
// # Thread safety
//
// MinHeap instances are not thread-safe. Callers must synchronize access
// externally.
package heap
