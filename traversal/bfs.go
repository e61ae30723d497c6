package traversal

import (
	"github.com/cdwfs/algo/graph"
	"github.com/cdwfs/algo/internal/layout"
)

const (
	bfsOffVertexCapacity = layout.HeaderSize + 0
	bfsOffGeneration     = layout.HeaderSize + 4
	bfsOffQueueHead      = layout.HeaderSize + 8
	bfsOffQueueTail      = layout.HeaderSize + 12
	bfsOffQueueCount     = layout.HeaderSize + 16

	bfsHeaderSize = layout.HeaderSize + 20
)

// BfsState is the scratch object a Bfs search reads and writes: discovered
// and processed bitsets, a parent array, and an internal vertex queue, all
// sized to the vertex capacity supplied at creation.
type BfsState struct {
	buf            []byte
	vertexCapacity int32
	discoveredOff  int
	processedOff   int
	parentOff      int
	queueDataOff   int
}

func bfsOffsets(vertexCapacity int) (discoveredOff, processedOff, parentOff, queueDataOff int) {
	words := layout.WordsFor32(vertexCapacity)
	discoveredOff = bfsHeaderSize
	processedOff = discoveredOff + words*4
	parentOff = processedOff + words*4
	queueDataOff = parentOff + vertexCapacity*4
	return
}

// ComputeSize returns the exact number of bytes a BfsState needs for a
// graph with the given vertex capacity.
func ComputeSize(vertexCapacity int) (int, error) {
	if vertexCapacity < 0 {
		return 0, ErrInvalidCapacity
	}
	_, _, _, queueDataOff := bfsOffsets(vertexCapacity)
	total, ok := layout.AddOverflowSafe(queueDataOff, vertexCapacity*4)
	if !ok {
		return 0, ErrInvalidCapacity
	}
	return total, nil
}

// NewBfsState lays out a fresh BFS scratch object for g inside buf,
// capturing g's current generation for later staleness checks.
func NewBfsState(g *graph.Graph, buf []byte) (*BfsState, error) {
	vertexCapacity := int(g.VertexCapacity())
	size, err := ComputeSize(vertexCapacity)
	if err != nil {
		return nil, err
	}
	if len(buf) == 0 {
		return nil, ErrNilBuffer
	}
	if len(buf) < size {
		return nil, ErrBufferTooSmall
	}

	layout.WriteHeader(buf, layout.KindBfsState, size, 0)
	layout.PutU32(buf, bfsOffVertexCapacity, uint32(vertexCapacity))
	layout.PutU32(buf, bfsOffGeneration, g.Generation())
	layout.PutI32(buf, bfsOffQueueHead, 0)
	layout.PutI32(buf, bfsOffQueueTail, 0)
	layout.PutI32(buf, bfsOffQueueCount, 0)

	discoveredOff, processedOff, parentOff, queueDataOff := bfsOffsets(vertexCapacity)
	words := layout.WordsFor32(vertexCapacity)
	bitClearAll(buf, discoveredOff, words)
	bitClearAll(buf, processedOff, words)
	for v := int32(0); v < int32(vertexCapacity); v++ {
		layout.PutI32(buf, parentOff+int(v)*4, -1)
	}

	return &BfsState{
		buf: buf, vertexCapacity: int32(vertexCapacity),
		discoveredOff: discoveredOff, processedOff: processedOff, parentOff: parentOff,
		queueDataOff: queueDataOff,
	}, nil
}

// FromBuffer reconstructs a BfsState view over a buffer previously
// initialized by NewBfsState (or relocated from one).
func FromBuffer(buf []byte) (*BfsState, error) {
	if err := layout.Validate(buf, layout.KindBfsState, bfsHeaderSize); err != nil {
		return nil, translateHeaderErr(err)
	}
	vertexCapacity := int32(layout.ReadU32(buf, bfsOffVertexCapacity))
	discoveredOff, processedOff, parentOff, queueDataOff := bfsOffsets(int(vertexCapacity))
	return &BfsState{
		buf: buf, vertexCapacity: vertexCapacity,
		discoveredOff: discoveredOff, processedOff: processedOff, parentOff: parentOff,
		queueDataOff: queueDataOff,
	}, nil
}

// Relocate copies state's bytes into dst and returns a BfsState view over it.
func Relocate(dst, src []byte) (*BfsState, error) {
	if _, err := layout.Relocate(dst, src); err != nil {
		return nil, translateHeaderErr(err)
	}
	return FromBuffer(dst)
}

// BufferSize returns the byte size recorded when the state was created.
func (s *BfsState) BufferSize() int { return layout.BufferSize(s.buf) }

// Parent returns the parent of v in the BFS tree, or -1 if v is the root or unreached.
func (s *BfsState) Parent(v int32) int32 { return layout.ReadI32(s.buf, s.parentOff+int(v)*4) }

// Discovered reports whether v has been discovered by the search.
func (s *BfsState) Discovered(v int32) bool { return bitTest(s.buf, s.discoveredOff, v) }

func (s *BfsState) setParent(v, p int32) { layout.PutI32(s.buf, s.parentOff+int(v)*4, p) }

func (s *BfsState) queueLen() int32 { return layout.ReadI32(s.buf, bfsOffQueueCount) }

func (s *BfsState) enqueue(v int32) error {
	count := s.queueLen()
	if count >= s.vertexCapacity {
		return ErrQueueFull
	}
	tail := layout.ReadI32(s.buf, bfsOffQueueTail)
	layout.PutI32(s.buf, s.queueDataOff+int(tail)*4, v)
	layout.PutI32(s.buf, bfsOffQueueTail, (tail+1)%s.vertexCapacity)
	layout.PutI32(s.buf, bfsOffQueueCount, count+1)
	return nil
}

func (s *BfsState) dequeue() int32 {
	head := layout.ReadI32(s.buf, bfsOffQueueHead)
	v := layout.ReadI32(s.buf, s.queueDataOff+int(head)*4)
	layout.PutI32(s.buf, bfsOffQueueHead, (head+1)%s.vertexCapacity)
	layout.PutI32(s.buf, bfsOffQueueCount, s.queueLen()-1)
	return v
}

func (s *BfsState) checkFresh(g *graph.Graph) error {
	if layout.ReadU32(s.buf, bfsOffGeneration) != g.Generation() {
		return ErrStaleState
	}
	return nil
}

// Bfs runs an iterative breadth-first search over g starting at root,
// writing discovery order and parent pointers into state and invoking
// callbacks as each vertex and edge is explored. state must have been
// created for g (or a graph with the same generation) and is consumed by
// exactly one search.
func Bfs(g *graph.Graph, state *BfsState, root int32, callbacks Callbacks) error {
	if err := state.checkFresh(g); err != nil {
		return err
	}
	if _, err := g.GetVertexDegree(root); err != nil {
		return ErrInvalidVertex
	}

	if err := state.enqueue(root); err != nil {
		return err
	}
	bitSet(state.buf, state.discoveredOff, root)

	for state.queueLen() > 0 {
		v0 := state.dequeue()
		callbacks.vertexEarly(v0)
		bitSet(state.buf, state.processedOff, v0)

		for cur := g.FirstEdgeCursor(v0); cur != graph.NoEdge; cur = g.NextEdgeCursor(cur) {
			v1 := g.EdgeCursorDest(cur)
			processed := bitTest(state.buf, state.processedOff, v1)
			if !processed || g.EdgeMode() == graph.Directed {
				callbacks.edge(v0, v1)
			}
			if !bitTest(state.buf, state.discoveredOff, v1) {
				bitSet(state.buf, state.discoveredOff, v1)
				state.setParent(v1, v0)
				if err := state.enqueue(v1); err != nil {
					return err
				}
			}
		}
		callbacks.vertexLate(v0)
	}
	return nil
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
