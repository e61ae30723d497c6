package topo

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/cdwfs/algo/graph"
	"github.com/cdwfs/algo/tagged"
	"github.com/cdwfs/algo/traversal"
)

func indexOf(order []int32, v int32) int {
	for i, x := range order {
		if x == v {
			return i
		}
	}
	return -1
}

// Test_TopoSort_DAGPrecedence checks that every edge's source precedes
// its destination in the emitted order.
func Test_TopoSort_DAGPrecedence(t *testing.T) {
	size, err := graph.ComputeSize(5, 5, graph.Directed)
	require.NoError(t, err)
	g, err := graph.New(5, 5, graph.Directed, make([]byte, size))
	require.NoError(t, err)

	ids := map[string]int32{}
	for _, name := range []string{"A", "B", "C", "D", "E"} {
		v, err := g.AddVertex(tagged.FromInt(0))
		require.NoError(t, err)
		ids[name] = v
	}
	for _, e := range [][2]string{{"A", "B"}, {"A", "C"}, {"B", "D"}, {"C", "D"}, {"D", "E"}} {
		require.NoError(t, g.AddEdge(ids[e[0]], ids[e[1]]))
	}

	dfsSize, err := traversal.ComputeDfsSize(int(g.VertexCapacity()))
	require.NoError(t, err)
	state, err := traversal.NewDfsState(g, make([]byte, dfsSize))
	require.NoError(t, err)

	out := make([]int32, g.CurrentVertexCount())
	require.NoError(t, TopoSort(g, state, out))

	require.Less(t, indexOf(out, ids["A"]), indexOf(out, ids["B"]))
	require.Less(t, indexOf(out, ids["A"]), indexOf(out, ids["C"]))
	require.Less(t, indexOf(out, ids["B"]), indexOf(out, ids["D"]))
	require.Less(t, indexOf(out, ids["C"]), indexOf(out, ids["D"]))
	require.Less(t, indexOf(out, ids["D"]), indexOf(out, ids["E"]))
}

// Test_TopoSort_CycleRejection checks that a directed cycle is reported
// via ErrCycleDetected instead of a silently incomplete order.
func Test_TopoSort_CycleRejection(t *testing.T) {
	size, err := graph.ComputeSize(3, 3, graph.Directed)
	require.NoError(t, err)
	g, err := graph.New(3, 3, graph.Directed, make([]byte, size))
	require.NoError(t, err)

	ids := map[string]int32{}
	for _, name := range []string{"A", "B", "C"} {
		v, err := g.AddVertex(tagged.FromInt(0))
		require.NoError(t, err)
		ids[name] = v
	}
	for _, e := range [][2]string{{"A", "B"}, {"B", "C"}, {"C", "A"}} {
		require.NoError(t, g.AddEdge(ids[e[0]], ids[e[1]]))
	}

	dfsSize, err := traversal.ComputeDfsSize(int(g.VertexCapacity()))
	require.NoError(t, err)
	state, err := traversal.NewDfsState(g, make([]byte, dfsSize))
	require.NoError(t, err)

	out := make([]int32, g.CurrentVertexCount())
	err = TopoSort(g, state, out)
	require.ErrorIs(t, err, ErrCycleDetected)
}

func Test_TopoSort_RejectsUndirected(t *testing.T) {
	size, err := graph.ComputeSize(2, 1, graph.Undirected)
	require.NoError(t, err)
	g, err := graph.New(2, 1, graph.Undirected, make([]byte, size))
	require.NoError(t, err)

	dfsSize, err := traversal.ComputeDfsSize(int(g.VertexCapacity()))
	require.NoError(t, err)
	state, err := traversal.NewDfsState(g, make([]byte, dfsSize))
	require.NoError(t, err)

	err = TopoSort(g, state, make([]int32, 0))
	require.ErrorIs(t, err, ErrNotDirected)
}
