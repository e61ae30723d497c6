package diskbuf_test

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/cdwfs/algo/diskbuf"
	"github.com/cdwfs/algo/graph"
	"github.com/cdwfs/algo/tagged"
)

// Test_Diskbuf_RoundTripGraph builds a graph directly inside a
// disk-backed buffer, flushes and releases it, then reopens the same
// file and checks the graph reads back unchanged.
func Test_Diskbuf_RoundTripGraph(t *testing.T) {
	path := filepath.Join(t.TempDir(), "graph.bin")

	size, err := graph.ComputeSize(4, 4, graph.Directed)
	require.NoError(t, err)

	buf, flush, release, err := diskbuf.Create(path, size)
	require.NoError(t, err)

	g, err := graph.New(4, 4, graph.Directed, buf)
	require.NoError(t, err)
	var ids [3]int32
	for i := range ids {
		v, err := g.AddVertex(tagged.FromInt(int32(i)))
		require.NoError(t, err)
		ids[i] = v
	}
	require.NoError(t, g.AddEdge(ids[0], ids[1]))
	require.NoError(t, g.AddEdge(ids[1], ids[2]))

	require.NoError(t, flush())
	require.NoError(t, release())

	buf2, flush2, release2, err := diskbuf.Create(path, size)
	require.NoError(t, err)
	defer func() { require.NoError(t, release2()) }()

	g2, err := graph.FromBuffer(buf2)
	require.NoError(t, err)
	require.NoError(t, g2.Validate())
	require.Equal(t, int32(3), g2.CurrentVertexCount())
	require.Equal(t, int32(2), g2.CurrentEdgeCount())

	deg, err := g2.GetVertexDegree(ids[0])
	require.NoError(t, err)
	require.Equal(t, int32(1), deg)

	data, err := g2.GetVertexData(ids[2])
	require.NoError(t, err)
	require.Equal(t, int32(2), data.AsInt())

	require.NoError(t, flush2())
}

// Test_Diskbuf_InvalidSize checks Create rejects a negative size before
// touching the filesystem.
func Test_Diskbuf_InvalidSize(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.bin")
	_, _, _, err := diskbuf.Create(path, -1)
	require.ErrorIs(t, err, diskbuf.ErrInvalidSize)
}
