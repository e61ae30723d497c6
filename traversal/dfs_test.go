package traversal

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/cdwfs/algo/graph"
	"github.com/cdwfs/algo/tagged"
)

// buildClassifyGraph builds A->B, A->C, B->C, C->D, D->B: a directed graph
// with a tree path A-C-D-B, a back edge B->C, and a forward edge A->B.
func buildClassifyGraph(t *testing.T) (*graph.Graph, [4]int32) {
	t.Helper()
	size, err := graph.ComputeSize(4, 5, graph.Directed)
	require.NoError(t, err)
	g, err := graph.New(4, 5, graph.Directed, make([]byte, size))
	require.NoError(t, err)

	var ids [4]int32
	for i := range ids {
		v, err := g.AddVertex(tagged.FromInt(0))
		require.NoError(t, err)
		ids[i] = v
	}
	a, b, c, d := ids[0], ids[1], ids[2], ids[3]
	require.NoError(t, g.AddEdge(a, b))
	require.NoError(t, g.AddEdge(a, c))
	require.NoError(t, g.AddEdge(b, c))
	require.NoError(t, g.AddEdge(c, d))
	require.NoError(t, g.AddEdge(d, b))
	return g, ids
}

// Test_Dfs_EdgeClassification checks Tree/Back/Forward classification,
// recorded live inside the on_edge callback the way topo sort uses it.
// Classification depends on processed/entry-time state at the moment the
// edge is explored, not on the final state after the whole search.
func Test_Dfs_EdgeClassification(t *testing.T) {
	g, ids := buildClassifyGraph(t)
	a, b, c, d := ids[0], ids[1], ids[2], ids[3]

	size, err := ComputeDfsSize(int(g.VertexCapacity()))
	require.NoError(t, err)
	state, err := NewDfsState(g, make([]byte, size))
	require.NoError(t, err)

	type key struct{ u, v int32 }
	kinds := map[key]EdgeKind{}
	cb := Callbacks{
		OnEdge: func(u, v int32) {
			kinds[key{u, v}] = state.Classify(u, v)
		},
	}
	require.NoError(t, Dfs(g, state, a, cb))

	require.Equal(t, Tree, kinds[key{a, c}])
	require.Equal(t, Tree, kinds[key{c, d}])
	require.Equal(t, Tree, kinds[key{d, b}])
	require.Equal(t, Back, kinds[key{b, c}])
	require.Equal(t, Forward, kinds[key{a, b}])

	require.Equal(t, a, state.Parent(c))
	require.Equal(t, c, state.Parent(d))
	require.Equal(t, d, state.Parent(b))
	require.Equal(t, int32(-1), state.Parent(a))
}

func Test_Dfs_HooksFireOncePerVertex(t *testing.T) {
	g, ids := buildClassifyGraph(t)

	size, err := ComputeDfsSize(int(g.VertexCapacity()))
	require.NoError(t, err)
	state, err := NewDfsState(g, make([]byte, size))
	require.NoError(t, err)

	var early, late int
	cb := Callbacks{
		OnVertexEarly: func(v int32) { early++ },
		OnVertexLate:  func(v int32) { late++ },
	}
	require.NoError(t, Dfs(g, state, ids[0], cb))
	require.Equal(t, 4, early)
	require.Equal(t, 4, late)

	for _, v := range ids {
		require.True(t, state.Discovered(v))
		require.True(t, state.Processed(v))
		require.Less(t, state.EntryTime(v), state.ExitTime(v))
	}
}

func Test_Dfs_StaleStateRejected(t *testing.T) {
	g, ids := buildClassifyGraph(t)
	size, err := ComputeDfsSize(int(g.VertexCapacity()))
	require.NoError(t, err)
	state, err := NewDfsState(g, make([]byte, size))
	require.NoError(t, err)

	require.NoError(t, g.RemoveEdge(ids[0], ids[1]))

	err = Dfs(g, state, ids[0], Callbacks{})
	require.ErrorIs(t, err, ErrStaleState)
}
