// Package graph implements a vertex/edge store with adjacency lists, over a
// caller-owned buffer, in directed or undirected mode. Edge nodes are
// allocated from an internal pool.Pool embedded in the same buffer, so the
// whole graph (vertex table, adjacency lists, and edge pool) lives in one
// contiguous []byte.
//
// Vertex ids are stable for the lifetime of the slot: AddVertex claims a slot
// from an intrusive free-list (reusing the slot's data field to store the
// next free slot id, exactly like the edge pool's free-list), RemoveVertex
// returns it. A live/free discriminator (degree == -1 means free) guards
// every accessor so a freed slot's reused data field is never read back as
// live payload.
//
// Undirected edges are stored as two symmetric directed edge nodes; the
// logical edge is counted once in CurrentEdgeCount. Duplicate AddEdge calls
// are idempotent, which makes undirected AddEdge safe to call in either
// order. Edge removal is a linear walk of the source's adjacency list:
// O(degree) for a single edge, O(V+E) for RemoveVertex in directed mode
// (incoming edges can only be found by scanning every other vertex's list),
// a deliberate space/time tradeoff documented at the API level.
//
// Every structural mutation (AddVertex, RemoveVertex, AddEdge, RemoveEdge)
// bumps a generation counter stored in the graph's header. A traversal state
// built from this package's sibling traversal package captures the
// generation at creation and rejects a Bfs/Dfs/TopoSort call made after the
// graph has since mutated, with ErrStaleState.
//
// # Thread safety
//
// Graph instances are not thread-safe. Callers must synchronize access
// externally, and must not mutate a graph from inside a traversal callback.
package graph
