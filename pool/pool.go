package pool

import (
	"github.com/cdwfs/algo/internal/layout"
)

const (
	minElementSize = 4

	offElementSize  = layout.HeaderSize + 0
	offElementCount = layout.HeaderSize + 4
	offHead         = layout.HeaderSize + 8
	offOutstanding  = layout.HeaderSize + 12

	dataOffset = layout.HeaderSize + 16
)

const endOfList int32 = -1

// Pool is a fixed-size-block allocator over a caller-owned buffer. See the
// package doc comment for the free-list discipline.
type Pool struct {
	buf []byte
}

// Stats reports the pool's capacity bookkeeping, for tests and diagnostics.
type Stats struct {
	Capacity    int32
	Outstanding int32
	FreeListLen int32
}

// ComputeSize returns the exact number of bytes New requires to hold a pool
// with the given element size and element count. The element stride is
// rounded up to a 4-byte boundary so the free-list link threaded through
// each free slot's first 4 bytes never straddles two unaligned slots.
func ComputeSize(elementSize, elementCount int) (int, error) {
	if elementSize < minElementSize {
		return 0, ErrInvalidCapacity
	}
	if elementCount < 0 {
		return 0, ErrInvalidCapacity
	}
	elementSize = layout.Align4(elementSize)
	dataSize, ok := layout.MulOverflowSafe(elementCount, elementSize)
	if !ok {
		return 0, ErrInvalidCapacity
	}
	total, ok := layout.AddOverflowSafe(dataOffset, dataSize)
	if !ok {
		return 0, ErrInvalidCapacity
	}
	return total, nil
}

// New lays out a fresh, fully-free pool inside buf.
func New(elementSize, elementCount int, buf []byte) (*Pool, error) {
	size, err := ComputeSize(elementSize, elementCount)
	if err != nil {
		return nil, err
	}
	if len(buf) == 0 {
		return nil, ErrNilBuffer
	}
	if len(buf) < size {
		return nil, ErrBufferTooSmall
	}
	elementSize = layout.Align4(elementSize)

	layout.WriteHeader(buf, layout.KindPool, size, 0)
	layout.PutU32(buf, offElementSize, uint32(elementSize))
	layout.PutU32(buf, offElementCount, uint32(elementCount))
	layout.PutU32(buf, offOutstanding, 0)

	if elementCount == 0 {
		layout.PutI32(buf, offHead, endOfList)
		return &Pool{buf: buf}, nil
	}
	for i := 0; i < elementCount; i++ {
		next := int32(i + 1)
		if i == elementCount-1 {
			next = endOfList
		}
		layout.PutI32(buf, slotOffset(elementSize, i), next)
	}
	layout.PutI32(buf, offHead, 0)

	return &Pool{buf: buf}, nil
}

// FromBuffer reconstructs a Pool view over a buffer previously initialized
// by New (or relocated from one).
func FromBuffer(buf []byte) (*Pool, error) {
	if err := layout.Validate(buf, layout.KindPool, dataOffset); err != nil {
		return nil, translateHeaderErr(err)
	}
	return &Pool{buf: buf}, nil
}

// BufferSize returns the byte size recorded when the pool was created.
func (p *Pool) BufferSize() int { return layout.BufferSize(p.buf) }

// ElementSize returns the fixed size in bytes of every slot.
func (p *Pool) ElementSize() int { return int(layout.ReadU32(p.buf, offElementSize)) }

// Capacity returns the total number of slots the pool was created with.
func (p *Pool) Capacity() int32 { return int32(layout.ReadU32(p.buf, offElementCount)) }

// Stats reports capacity bookkeeping useful for tests and diagnostics.
func (p *Pool) Stats() Stats {
	cap32 := p.Capacity()
	outstanding := int32(layout.ReadU32(p.buf, offOutstanding))
	return Stats{
		Capacity:    cap32,
		Outstanding: outstanding,
		FreeListLen: cap32 - outstanding,
	}
}

// Alloc claims a free slot and returns its slot index and a byte view over
// it, sized ElementSize(). It fails with ErrFull when no slots remain.
func (p *Pool) Alloc() (int32, []byte, error) {
	head := layout.ReadI32(p.buf, offHead)
	if head == endOfList {
		return 0, nil, ErrFull
	}
	elementSize := p.ElementSize()
	next := layout.ReadI32(p.buf, slotOffset(elementSize, int(head)))
	layout.PutI32(p.buf, offHead, next)
	outstanding := layout.ReadU32(p.buf, offOutstanding) + 1
	layout.PutU32(p.buf, offOutstanding, outstanding)
	return head, p.slotBytes(head, elementSize), nil
}

// Free returns slot to the free-list. Double-freeing a slot is not detected
// (see package doc) and will corrupt the free-list.
func (p *Pool) Free(slot int32) error {
	elementSize := p.ElementSize()
	if _, err := p.checkSlotBounds(slot, elementSize); err != nil {
		return err
	}
	head := layout.ReadI32(p.buf, offHead)
	layout.PutI32(p.buf, slotOffset(elementSize, int(slot)), head)
	layout.PutI32(p.buf, offHead, slot)
	outstanding := layout.ReadU32(p.buf, offOutstanding)
	if outstanding > 0 {
		layout.PutU32(p.buf, offOutstanding, outstanding-1)
	}
	return nil
}

// Slot returns a byte view over an already-allocated slot, without
// allocating it. Callers use this to read/write fields of a slot they
// already hold the index for (e.g. a graph's edge nodes).
func (p *Pool) Slot(slot int32) ([]byte, error) {
	elementSize := p.ElementSize()
	off, err := p.checkSlotBounds(slot, elementSize)
	if err != nil {
		return nil, err
	}
	return p.buf[off : off+elementSize], nil
}

// checkSlotBounds validates slot against both the pool's declared capacity
// and the buffer actually backing it, returning the slot's start offset.
// The latter check catches a buffer shorter than the header claims (e.g.
// after a bad Relocate) rather than trusting Capacity() alone.
func (p *Pool) checkSlotBounds(slot int32, elementSize int) (int, error) {
	if slot < 0 || slot >= p.Capacity() {
		return 0, ErrBadSlot
	}
	off := slotOffset(elementSize, int(slot))
	if _, err := layout.CheckBounds(len(p.buf), off, 1, elementSize); err != nil {
		return 0, ErrBadSlot
	}
	return off, nil
}

// Relocate copies the pool's live bytes into dst and returns a Pool view
// over dst. No pointer fix-up is needed: every field is a slot index, not a
// Go pointer, so the copied bytes are immediately valid in their new home.
func Relocate(dst, src []byte) (*Pool, error) {
	if _, err := layout.Relocate(dst, src); err != nil {
		return nil, translateHeaderErr(err)
	}
	return FromBuffer(dst)
}

func (p *Pool) slotBytes(slot int32, elementSize int) []byte {
	off := slotOffset(elementSize, int(slot))
	return p.buf[off : off+elementSize]
}

func slotOffset(elementSize, slot int) int {
	return dataOffset + slot*elementSize
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
