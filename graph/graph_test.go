package graph

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/cdwfs/algo/tagged"
)

func newTestGraph(t *testing.T, vertexCapacity, edgeCapacity int, mode EdgeMode) *Graph {
	t.Helper()
	size, err := ComputeSize(vertexCapacity, edgeCapacity, mode)
	require.NoError(t, err)
	buf := make([]byte, size)
	g, err := New(vertexCapacity, edgeCapacity, mode, buf)
	require.NoError(t, err)
	return g
}

// Test_Graph_UndirectedStarShape builds a 5-vertex undirected star and
// checks degree and edge-count bookkeeping.
func Test_Graph_UndirectedStarShape(t *testing.T) {
	g := newTestGraph(t, 5, 4, Undirected)
	ids := make([]int32, 5)
	for i := range ids {
		v, err := g.AddVertex(tagged.FromInt(int32(i)))
		require.NoError(t, err)
		ids[i] = v
	}
	for i := 1; i < 5; i++ {
		require.NoError(t, g.AddEdge(ids[0], ids[i]))
	}
	require.NoError(t, g.Validate())

	deg, err := g.GetVertexDegree(ids[0])
	require.NoError(t, err)
	require.Equal(t, int32(4), deg)
	require.Equal(t, int32(4), g.CurrentEdgeCount())

	for i := 1; i < 5; i++ {
		deg, err := g.GetVertexDegree(ids[i])
		require.NoError(t, err)
		require.Equal(t, int32(1), deg)
	}
}

// Test_Graph_DirectedVertexRemoval checks that removing a vertex from a
// directed graph also removes every edge pointing at it from elsewhere,
// not just its own outgoing edges.
func Test_Graph_DirectedVertexRemoval(t *testing.T) {
	g := newTestGraph(t, 4, 6, Directed)
	var ids [4]int32
	for i := range ids {
		v, err := g.AddVertex(tagged.FromInt(int32(i)))
		require.NoError(t, err)
		ids[i] = v
	}
	require.NoError(t, g.AddEdge(ids[0], ids[1]))
	require.NoError(t, g.AddEdge(ids[1], ids[2]))
	require.NoError(t, g.AddEdge(ids[2], ids[1]))
	require.NoError(t, g.AddEdge(ids[3], ids[1]))
	require.Equal(t, int32(4), g.CurrentEdgeCount())

	require.NoError(t, g.RemoveVertex(ids[1]))
	require.NoError(t, g.Validate())
	require.Equal(t, int32(3), g.CurrentVertexCount())
	require.Equal(t, int32(0), g.CurrentEdgeCount())

	deg0, err := g.GetVertexDegree(ids[0])
	require.NoError(t, err)
	require.Equal(t, int32(0), deg0)

	deg3, err := g.GetVertexDegree(ids[3])
	require.NoError(t, err)
	require.Equal(t, int32(0), deg3)

	_, err = g.GetVertexDegree(ids[1])
	require.ErrorIs(t, err, ErrInvalidVertex)
}

// Test_Graph_VertexCountBookkeeping checks that CurrentVertexCount tracks
// additions and removals exactly, including rejecting AddVertex once full.
func Test_Graph_VertexCountBookkeeping(t *testing.T) {
	g := newTestGraph(t, 3, 2, Directed)
	require.Equal(t, int32(0), g.CurrentVertexCount())

	a, err := g.AddVertex(tagged.FromInt(1))
	require.NoError(t, err)
	require.Equal(t, int32(1), g.CurrentVertexCount())

	b, err := g.AddVertex(tagged.FromInt(2))
	require.NoError(t, err)
	require.Equal(t, int32(2), g.CurrentVertexCount())

	require.NoError(t, g.RemoveVertex(a))
	require.Equal(t, int32(1), g.CurrentVertexCount())

	_, err = g.AddVertex(tagged.FromInt(3))
	require.NoError(t, err)
	_, err = g.AddVertex(tagged.FromInt(4))
	require.NoError(t, err)
	_, err = g.AddVertex(tagged.FromInt(5))
	require.ErrorIs(t, err, ErrVertexFull)
	_ = b
}

// Test_Graph_UndirectedEdgeSymmetry checks that an undirected edge raises
// both endpoints' degree and that removing it from either side clears both.
func Test_Graph_UndirectedEdgeSymmetry(t *testing.T) {
	g := newTestGraph(t, 2, 1, Undirected)
	a, err := g.AddVertex(tagged.FromInt(1))
	require.NoError(t, err)
	b, err := g.AddVertex(tagged.FromInt(2))
	require.NoError(t, err)

	require.NoError(t, g.AddEdge(a, b))
	degA, err := g.GetVertexDegree(a)
	require.NoError(t, err)
	degB, err := g.GetVertexDegree(b)
	require.NoError(t, err)
	require.Equal(t, int32(1), degA)
	require.Equal(t, int32(1), degB)
	require.Equal(t, int32(1), g.CurrentEdgeCount())

	require.NoError(t, g.RemoveEdge(b, a))
	degA, err = g.GetVertexDegree(a)
	require.NoError(t, err)
	degB, err = g.GetVertexDegree(b)
	require.NoError(t, err)
	require.Equal(t, int32(0), degA)
	require.Equal(t, int32(0), degB)
	require.Equal(t, int32(0), g.CurrentEdgeCount())
}

// Test_Graph_AddEdgeIdempotent checks that adding the same edge twice leaves
// the edge count unchanged, and that a self-edge is rejected.
func Test_Graph_AddEdgeIdempotent(t *testing.T) {
	g := newTestGraph(t, 2, 1, Directed)
	a, err := g.AddVertex(tagged.FromInt(1))
	require.NoError(t, err)
	b, err := g.AddVertex(tagged.FromInt(2))
	require.NoError(t, err)

	require.NoError(t, g.AddEdge(a, b))
	require.NoError(t, g.AddEdge(a, b))
	require.Equal(t, int32(1), g.CurrentEdgeCount())

	require.ErrorIs(t, g.AddEdge(a, a), ErrSelfEdge)
}

func Test_Graph_EdgeCapacityExhausted(t *testing.T) {
	g := newTestGraph(t, 3, 1, Undirected)
	a, err := g.AddVertex(tagged.FromInt(0))
	require.NoError(t, err)
	b, err := g.AddVertex(tagged.FromInt(0))
	require.NoError(t, err)
	c, err := g.AddVertex(tagged.FromInt(0))
	require.NoError(t, err)

	require.NoError(t, g.AddEdge(a, b))
	require.ErrorIs(t, g.AddEdge(b, c), ErrEdgeFull)
}

// Test_Graph_Relocate checks that a graph's vertices and edges read back
// identically after its buffer is copied to a new location.
func Test_Graph_Relocate(t *testing.T) {
	g := newTestGraph(t, 3, 3, Directed)
	a, err := g.AddVertex(tagged.FromInt(10))
	require.NoError(t, err)
	b, err := g.AddVertex(tagged.FromInt(20))
	require.NoError(t, err)
	require.NoError(t, g.AddEdge(a, b))

	oldBuf := make([]byte, g.BufferSize())
	copy(oldBuf, g.buf[:g.BufferSize()])

	newBuf := make([]byte, g.BufferSize())
	relocated, err := Relocate(newBuf, oldBuf)
	require.NoError(t, err)
	require.NoError(t, relocated.Validate())

	deg, err := relocated.GetVertexDegree(a)
	require.NoError(t, err)
	require.Equal(t, int32(1), deg)

	data, err := relocated.GetVertexData(b)
	require.NoError(t, err)
	require.Equal(t, int32(20), data.AsInt())
}
