// Package topo implements topological sort as a thin driver over an
// iterative DFS: it reuses a caller-provided traversal.DfsState across
// every root in the graph's vertex list, so already-processed vertices
// are skipped automatically by the DFS's own processed bitset, and emits
// vertices in reverse postorder (decreasing exit time) as each one
// finishes.
//
// Cycle detection piggybacks on the DFS's own edge classification: a back
// edge proves a cycle. Since the traversal has no built-in early-abort
// mechanism (callbacks are void, matching every other callback in this
// module), TopoSort signals the cycle through its own closure state and
// turns its callbacks into no-ops for the remainder of the search rather
// than unwinding early, turning subsequent callbacks into no-ops for the
// rest of the search.
package topo
