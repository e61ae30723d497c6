// Package pool implements a fixed-size-block allocator over a caller-owned
// buffer. Free slots form a singly linked free-list whose "next" pointer is
// stored as a slot index in the first 4 bytes of each free slot; the head of
// the list is a slot index held in the pool's header, with -1 denoting
// end-of-list. Alloc and Free are both O(1).
//
// # Usage
//
//	size, err := pool.ComputeSize(elementSize, elementCount)
//	if err != nil {
//	    return err
//	}
//	buf := make([]byte, size)
//	p, err := pool.New(elementSize, elementCount, buf)
//	if err != nil {
//	    return err
//	}
//	slot, err := p.Alloc()
//	if err != nil {
//	    return err // ErrFull
//	}
//	// ... use slot ...
//	err = p.Free(slot)
//
// # Double-free
//
// Free does not detect a double-free: freeing the same slot twice corrupts
// the free-list (the slot ends up reachable from two places, so a later
// Alloc can hand out the same slot to two concurrent "owners"). This matches
// the source allocator's documented behavior; callers that need detection
// should track outstanding slots themselves.
//
// # Thread safety
//
// Pool instances are not thread-safe. Callers must synchronize access
// externally.
package pool
