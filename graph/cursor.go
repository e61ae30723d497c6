package graph

// NoEdge is the cursor value one past the last edge in an adjacency list,
// returned by FirstEdgeCursor/NextEdgeCursor to mean "no more edges".
const NoEdge int32 = noSlot

// FirstEdgeCursor returns a cursor onto v's first outgoing edge (in
// last-inserted-first order), or NoEdge if v has none. Intended for
// traversals that need to resume iteration of a vertex's edge list across
// multiple calls (DFS's next_edge cursor), rather than reading the whole
// list at once via GetVertexEdges.
func (g *Graph) FirstEdgeCursor(v int32) int32 {
	return g.edgeHead(v)
}

// NextEdgeCursor advances a cursor returned by FirstEdgeCursor or a prior
// NextEdgeCursor call, returning NoEdge once the list is exhausted.
func (g *Graph) NextEdgeCursor(cursor int32) int32 {
	return g.edgeNext(cursor)
}

// EdgeCursorDest returns the destination vertex id a cursor currently
// points at. cursor must not be NoEdge.
func (g *Graph) EdgeCursorDest(cursor int32) int32 {
	return g.edgeDest(cursor)
}
