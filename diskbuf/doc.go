// Package diskbuf supplies a memory-mapped []byte as the backing buffer
// for any object in this module (pool.Pool, heap.MinHeap, graph.Graph,
// traversal states), so a structure can be built once, flushed to disk,
// and reopened by mapping the same file again. No serialization step is
// needed since the buffer already is the on-disk representation.
//
// Create is the only exported function; it returns the buffer together with
// a flush function and a release function. On unix platforms Create maps
// the file read-write with MAP_SHARED, flush issues msync(MS_SYNC) over the
// whole mapping, and release unmaps and closes the file without syncing.
// Elsewhere the file is read into a plain heap-allocated buffer and flush
// (and release, which is the same function) writes it back wholesale;
// there is no shared mapping to keep coherent with the disk.
package diskbuf
