// Package layout provides the bounds-checked, overflow-safe byte-buffer
// primitives that every caller-buffer-owned object in this module is built
// on: little-endian field accessors, alignment helpers, and a small header
// view used by every ComputeSize/New/FromBuffer/Relocate quartet.
//
// Objects built on this package never hold a Go pointer into their own
// backing buffer across a reslice; every internal reference is a byte offset
// or slot index recomputed from the buffer on each access, so relocating an
// object is just copying bytes into a new []byte and re-deriving the views.
package layout
