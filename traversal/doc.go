// Package traversal implements iterative breadth-first and depth-first
// search over a graph.Graph, each keyed by a scratch state object that
// lives in its own caller-supplied buffer exactly like every other object
// in this module.
//
// BfsState and DfsState are one-shot: a search mutates the state's
// discovered/processed bitsets, parent array, and (for DFS) timestamps in
// place, so a fresh search needs a freshly created state over the same or
// a new buffer. Both states capture the graph's generation counter at
// creation time; Bfs and Dfs reject a state whose captured generation no
// longer matches the graph's current one with ErrStaleState. The bitsets
// and arrays are sized from the graph's vertex capacity, which mutations do
// not change; what a mutation does outdate is the graph snapshot the state
// was built from, such as DfsState's next_edge cursors copied from the
// adjacency lists at creation.
//
// Callbacks are a capability set: OnVertexEarly, OnEdge, and OnVertexLate
// are each optional, called synchronously on the caller's goroutine.
// Callbacks must not mutate the graph or start another traversal against
// the same state.
package traversal
