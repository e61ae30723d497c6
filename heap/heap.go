package heap

import (
	"github.com/cdwfs/algo/internal/layout"
	"github.com/cdwfs/algo/tagged"
)

const (
	offCapacity  = layout.HeaderSize + 0
	offNextEmpty = layout.HeaderSize + 4
	nodesOffset  = layout.HeaderSize + 8

	nodeSize = 2 * tagged.Size
)

// MinHeap is a buffer-resident binary min-heap. See the package doc comment.
type MinHeap struct {
	buf []byte
	cmp Comparator
}

// ComputeSize returns the exact number of bytes New requires to hold a heap
// of the given capacity (capacity is the maximum number of elements, not
// counting the unused index-0 slot).
func ComputeSize(capacity int) (int, error) {
	if capacity < 0 {
		return 0, ErrInvalidCapacity
	}
	slots, ok := layout.AddOverflowSafe(capacity, 1)
	if !ok {
		return 0, ErrInvalidCapacity
	}
	dataSize, ok := layout.MulOverflowSafe(slots, nodeSize)
	if !ok {
		return 0, ErrInvalidCapacity
	}
	total, ok := layout.AddOverflowSafe(nodesOffset, dataSize)
	if !ok {
		return 0, ErrInvalidCapacity
	}
	return total, nil
}

// New lays out an empty heap inside buf, ordered by cmp.
func New(capacity int, cmp Comparator, buf []byte) (*MinHeap, error) {
	if cmp == nil {
		return nil, ErrInvalidCapacity
	}
	size, err := ComputeSize(capacity)
	if err != nil {
		return nil, err
	}
	if len(buf) == 0 {
		return nil, ErrNilBuffer
	}
	if len(buf) < size {
		return nil, ErrBufferTooSmall
	}

	layout.WriteHeader(buf, layout.KindHeap, size, 0)
	layout.PutU32(buf, offCapacity, uint32(capacity))
	layout.PutU32(buf, offNextEmpty, 1)

	return &MinHeap{buf: buf, cmp: cmp}, nil
}

// FromBuffer reconstructs a MinHeap view over a buffer previously
// initialized by New, paired with its comparator (comparators are behavior,
// not data, and so are never stored in the buffer itself).
func FromBuffer(buf []byte, cmp Comparator) (*MinHeap, error) {
	if cmp == nil {
		return nil, ErrInvalidCapacity
	}
	if err := layout.Validate(buf, layout.KindHeap, nodesOffset); err != nil {
		return nil, translateHeaderErr(err)
	}
	return &MinHeap{buf: buf, cmp: cmp}, nil
}

// Relocate copies the heap's live bytes into dst and returns a MinHeap view
// over dst, paired with cmp.
func Relocate(dst, src []byte, cmp Comparator) (*MinHeap, error) {
	if _, err := layout.Relocate(dst, src); err != nil {
		return nil, translateHeaderErr(err)
	}
	return FromBuffer(dst, cmp)
}

// BufferSize returns the byte size recorded when the heap was created.
func (h *MinHeap) BufferSize() int { return layout.BufferSize(h.buf) }

// Capacity returns the maximum number of elements the heap can hold.
func (h *MinHeap) Capacity() int32 { return int32(layout.ReadU32(h.buf, offCapacity)) }

// CurrentSize returns the number of elements currently stored.
func (h *MinHeap) CurrentSize() int32 { return h.nextEmpty() - 1 }

func (h *MinHeap) nextEmpty() int32 { return int32(layout.ReadU32(h.buf, offNextEmpty)) }
func (h *MinHeap) setNextEmpty(n int32) { layout.PutU32(h.buf, offNextEmpty, uint32(n)) }

func (h *MinHeap) keyAt(i int32) tagged.Value   { return tagged.Read(h.buf, nodeOffset(i)) }
func (h *MinHeap) valueAt(i int32) tagged.Value { return tagged.Read(h.buf, nodeOffset(i)+tagged.Size) }

func (h *MinHeap) setNode(i int32, key, value tagged.Value) {
	off := nodeOffset(i)
	tagged.Write(h.buf, off, key)
	tagged.Write(h.buf, off+tagged.Size, value)
}

func nodeOffset(i int32) int { return nodesOffset + int(i)*nodeSize }

// Insert appends (key, value) and bubbles it up to restore heap order.
func (h *MinHeap) Insert(key, value tagged.Value) error {
	n := h.nextEmpty()
	if n > h.Capacity() {
		return ErrFull
	}
	h.setNode(n, key, value)
	h.setNextEmpty(n + 1)
	h.bubbleUp(n)
	return nil
}

func (h *MinHeap) bubbleUp(i int32) {
	for i > 1 {
		parent := i / 2
		if h.cmp.Compare(h.keyAt(i), h.keyAt(parent)) >= 0 {
			return
		}
		h.swap(i, parent)
		i = parent
	}
}

// Peek returns the root (key, value) without removing it.
func (h *MinHeap) Peek() (tagged.Value, tagged.Value, error) {
	if h.CurrentSize() == 0 {
		return tagged.Value{}, tagged.Value{}, ErrEmpty
	}
	return h.keyAt(1), h.valueAt(1), nil
}

// Pop removes and returns the root (key, value), restoring heap order.
func (h *MinHeap) Pop() (tagged.Value, tagged.Value, error) {
	size := h.CurrentSize()
	if size == 0 {
		return tagged.Value{}, tagged.Value{}, ErrEmpty
	}
	topKey, topValue := h.keyAt(1), h.valueAt(1)
	last := h.nextEmpty() - 1
	if last != 1 {
		h.setNode(1, h.keyAt(last), h.valueAt(last))
	}
	h.setNextEmpty(last)
	if h.CurrentSize() > 0 {
		h.bubbleDown(1)
	}
	return topKey, topValue, nil
}

func (h *MinHeap) bubbleDown(i int32) {
	size := h.CurrentSize()
	for {
		left, right := 2*i, 2*i+1
		smallest := i
		if left <= size && h.cmp.Compare(h.keyAt(left), h.keyAt(smallest)) < 0 {
			smallest = left
		}
		if right <= size && h.cmp.Compare(h.keyAt(right), h.keyAt(smallest)) < 0 {
			smallest = right
		}
		if smallest == i {
			return
		}
		h.swap(i, smallest)
		i = smallest
	}
}

func (h *MinHeap) swap(i, j int32) {
	ki, vi := h.keyAt(i), h.valueAt(i)
	kj, vj := h.keyAt(j), h.valueAt(j)
	h.setNode(i, kj, vj)
	h.setNode(j, ki, vi)
}

// Validate checks that next_empty is in range and every non-root node's
// key compares >= its parent's under cmp.
func (h *MinHeap) Validate() error {
	n := h.nextEmpty()
	if n < 1 || n > h.Capacity()+1 {
		return ErrCorrupt
	}
	for i := int32(2); i < n; i++ {
		if h.cmp.Compare(h.keyAt(i/2), h.keyAt(i)) > 0 {
			return ErrCorrupt
		}
	}
	return nil
}

func translateHeaderErr(err error) error {
	switch err {
	case layout.ErrNilBuffer:
		return ErrNilBuffer
	case layout.ErrTooSmall:
		return ErrBufferTooSmall
	case layout.ErrBadKind:
		return ErrBadKind
	default:
		return err
	}
}
