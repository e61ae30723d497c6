package graph

import (
	"github.com/cdwfs/algo/internal/layout"
	"github.com/cdwfs/algo/pool"
	"github.com/cdwfs/algo/tagged"
)

// EdgeMode selects directed or undirected edge semantics, fixed at
// construction for the lifetime of a Graph.
type EdgeMode int32

const (
	// Directed edges are one-way: an s->d edge does not imply d->s.
	Directed EdgeMode = 0
	// Undirected edges are stored as two symmetric directed edge nodes but
	// counted once.
	Undirected EdgeMode = 1
)

const (
	offVertexCapacity     = layout.HeaderSize + 0
	offEdgeCapacity       = layout.HeaderSize + 4
	offEdgeMode           = layout.HeaderSize + 8
	offCurrentVertexCount = layout.HeaderSize + 12
	offCurrentEdgeCount   = layout.HeaderSize + 16
	offVertexFreeHead     = layout.HeaderSize + 20

	graphHeaderSize = layout.HeaderSize + 24

	vertexSlotSize  = 4 + 4 + tagged.Size // degree, edgeHead, data
	edgeNodeSize    = 4 + 4 + 4           // dest, weight, next
	noSlot    int32 = -1
)

const (
	offDegree   = 0
	offEdgeHead = 4
	offData     = 8
)

const (
	edgeOffDest   = 0
	edgeOffWeight = 4
	edgeOffNext   = 8
)

// Graph is a buffer-resident adjacency-list graph. See the package doc
// comment.
type Graph struct {
	buf      []byte
	edgePool *pool.Pool

	verticesOff  int
	validIDsOff  int
	idToIndexOff int
	edgePoolOff  int
}

func edgeNodeCapacity(edgeCapacity int, mode EdgeMode) int {
	if mode == Undirected {
		return edgeCapacity * 2
	}
	return edgeCapacity
}

// ComputeSize returns the exact number of bytes New requires to hold a graph
// with the given vertex/edge capacities and edge mode.
func ComputeSize(vertexCapacity, edgeCapacity int, mode EdgeMode) (int, error) {
	if vertexCapacity < 0 || edgeCapacity < 0 {
		return 0, ErrInvalidCapacity
	}
	if mode != Directed && mode != Undirected {
		return 0, ErrInvalidCapacity
	}

	verticesSize, ok := layout.MulOverflowSafe(vertexCapacity, vertexSlotSize)
	if !ok {
		return 0, ErrInvalidCapacity
	}
	idArraySize, ok := layout.MulOverflowSafe(vertexCapacity, 4)
	if !ok {
		return 0, ErrInvalidCapacity
	}

	nodeCapacity := edgeNodeCapacity(edgeCapacity, mode)
	poolSize, err := pool.ComputeSize(edgeNodeSize, nodeCapacity)
	if err != nil {
		return 0, ErrInvalidCapacity
	}

	total := graphHeaderSize
	for _, add := range []int{verticesSize, idArraySize, idArraySize, poolSize} {
		var ok bool
		total, ok = layout.AddOverflowSafe(total, add)
		if !ok {
			return 0, ErrInvalidCapacity
		}
	}
	return total, nil
}

func computeOffsets(vertexCapacity int) (verticesOff, validIDsOff, idToIndexOff, edgePoolOff int) {
	verticesOff = graphHeaderSize
	validIDsOff = verticesOff + vertexCapacity*vertexSlotSize
	idToIndexOff = validIDsOff + vertexCapacity*4
	edgePoolOff = idToIndexOff + vertexCapacity*4
	return
}

// New lays out an empty graph (no vertices, no edges) inside buf.
func New(vertexCapacity, edgeCapacity int, mode EdgeMode, buf []byte) (*Graph, error) {
	size, err := ComputeSize(vertexCapacity, edgeCapacity, mode)
	if err != nil {
		return nil, err
	}
	if len(buf) == 0 {
		return nil, ErrNilBuffer
	}
	if len(buf) < size {
		return nil, ErrBufferTooSmall
	}

	layout.WriteHeader(buf, layout.KindGraph, size, 0)
	layout.PutU32(buf, offVertexCapacity, uint32(vertexCapacity))
	layout.PutU32(buf, offEdgeCapacity, uint32(edgeCapacity))
	layout.PutI32(buf, offEdgeMode, int32(mode))
	layout.PutU32(buf, offCurrentVertexCount, 0)
	layout.PutU32(buf, offCurrentEdgeCount, 0)

	verticesOff, validIDsOff, idToIndexOff, edgePoolOff := computeOffsets(vertexCapacity)

	g := &Graph{
		buf: buf, verticesOff: verticesOff, validIDsOff: validIDsOff,
		idToIndexOff: idToIndexOff, edgePoolOff: edgePoolOff,
	}

	if vertexCapacity == 0 {
		layout.PutI32(buf, offVertexFreeHead, noSlot)
	} else {
		for i := 0; i < vertexCapacity; i++ {
			next := int32(i + 1)
			if i == vertexCapacity-1 {
				next = noSlot
			}
			g.setDegree(int32(i), noSlot)
			g.setEdgeHead(int32(i), noSlot)
			g.setRawData(int32(i), tagged.FromInt(next))
		}
		layout.PutI32(buf, offVertexFreeHead, 0)
	}

	nodeCapacity := edgeNodeCapacity(edgeCapacity, mode)
	edgePool, err := pool.New(edgeNodeSize, nodeCapacity, buf[edgePoolOff:size])
	if err != nil {
		return nil, err
	}
	g.edgePool = edgePool

	return g, nil
}

// FromBuffer reconstructs a Graph view over a buffer previously initialized
// by New (or relocated from one).
func FromBuffer(buf []byte) (*Graph, error) {
	if err := layout.Validate(buf, layout.KindGraph, graphHeaderSize); err != nil {
		return nil, translateHeaderErr(err)
	}
	vertexCapacity := int(layout.ReadU32(buf, offVertexCapacity))
	verticesOff, validIDsOff, idToIndexOff, edgePoolOff := computeOffsets(vertexCapacity)

	edgePool, err := pool.FromBuffer(buf[edgePoolOff:layout.BufferSize(buf)])
	if err != nil {
		return nil, err
	}
	return &Graph{
		buf: buf, edgePool: edgePool,
		verticesOff: verticesOff, validIDsOff: validIDsOff,
		idToIndexOff: idToIndexOff, edgePoolOff: edgePoolOff,
	}, nil
}

// Relocate copies the graph's live bytes into dst and returns a Graph view
// over dst. No pointer fix-up is needed: every internal reference is a byte
// offset or slot index, not a Go pointer.
func Relocate(dst, src []byte) (*Graph, error) {
	if _, err := layout.Relocate(dst, src); err != nil {
		return nil, translateHeaderErr(err)
	}
	return FromBuffer(dst)
}

// BufferSize returns the byte size recorded when the graph was created.
func (g *Graph) BufferSize() int { return layout.BufferSize(g.buf) }

// EdgeMode returns the graph's fixed directed/undirected mode.
func (g *Graph) EdgeMode() EdgeMode { return EdgeMode(layout.ReadI32(g.buf, offEdgeMode)) }

// Generation returns the graph's mutation counter, used by traversal states
// to detect staleness.
func (g *Graph) Generation() uint32 { return layout.Generation(g.buf) }

// VertexCapacity returns the maximum number of live vertices.
func (g *Graph) VertexCapacity() int32 { return int32(layout.ReadU32(g.buf, offVertexCapacity)) }

// EdgeCapacity returns the maximum number of logical edges.
func (g *Graph) EdgeCapacity() int32 { return int32(layout.ReadU32(g.buf, offEdgeCapacity)) }

// CurrentVertexCount returns the number of live vertices.
func (g *Graph) CurrentVertexCount() int32 {
	return int32(layout.ReadU32(g.buf, offCurrentVertexCount))
}

// CurrentEdgeCount returns the number of logical edges.
func (g *Graph) CurrentEdgeCount() int32 {
	return int32(layout.ReadU32(g.buf, offCurrentEdgeCount))
}

// Stats bundles the capacity/count accessors for diagnostics and tests.
type Stats struct {
	VertexCapacity int32
	EdgeCapacity   int32
	VertexCount    int32
	EdgeCount      int32
}

// Stats reports the graph's capacity and live-count bookkeeping.
func (g *Graph) Stats() Stats {
	return Stats{
		VertexCapacity: g.VertexCapacity(),
		EdgeCapacity:   g.EdgeCapacity(),
		VertexCount:    g.CurrentVertexCount(),
		EdgeCount:      g.CurrentEdgeCount(),
	}
}

// VertexIDAt returns the i'th live vertex id in the graph's compact id
// list, for i in [0, CurrentVertexCount()). Callers that need to visit
// every live vertex without an allocation should range over this index
// rather than call VertexIDs.
func (g *Graph) VertexIDAt(i int32) int32 { return g.validID(i) }

// VertexIDs returns a copy of the compact list of live vertex ids, for
// callers that want a snapshot to hold onto past the next mutation.
func (g *Graph) VertexIDs() []int32 {
	n := g.CurrentVertexCount()
	out := make([]int32, n)
	for i := int32(0); i < n; i++ {
		out[i] = g.validID(i)
	}
	return out
}

func translateHeaderErr(err error) error {
	switch err {
	case layout.ErrNilBuffer:
		return ErrNilBuffer
	case layout.ErrTooSmall:
		return ErrBufferTooSmall
	case layout.ErrBadKind:
		return ErrBadKind
	default:
		return err
	}
}
