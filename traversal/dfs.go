package traversal

import (
	"github.com/cdwfs/algo/graph"
	"github.com/cdwfs/algo/internal/layout"
)

const (
	dfsOffVertexCapacity = layout.HeaderSize + 0
	dfsOffGeneration     = layout.HeaderSize + 4
	dfsOffTime           = layout.HeaderSize + 8
	dfsOffStackTop       = layout.HeaderSize + 12

	dfsHeaderSize = layout.HeaderSize + 16
)

// EdgeKind classifies a directed edge relative to a DFS tree.
type EdgeKind int

const (
	Tree EdgeKind = iota
	Back
	Forward
	Cross
)

// DfsState is the scratch object a Dfs search reads and writes: the same
// discovered/processed bitsets and parent array as BfsState, plus a
// monotonic time counter, entry/exit timestamps, a per-vertex next_edge
// cursor into the graph's own adjacency lists, and an explicit vertex
// stack.
type DfsState struct {
	buf            []byte
	vertexCapacity int32
	discoveredOff  int
	processedOff   int
	parentOff      int
	entryTimeOff   int
	exitTimeOff    int
	nextEdgeOff    int
	stackDataOff   int
}

func dfsOffsets(vertexCapacity int) (discoveredOff, processedOff, parentOff, entryTimeOff, exitTimeOff, nextEdgeOff, stackDataOff int) {
	words := layout.WordsFor32(vertexCapacity)
	discoveredOff = dfsHeaderSize
	processedOff = discoveredOff + words*4
	parentOff = processedOff + words*4
	entryTimeOff = parentOff + vertexCapacity*4
	exitTimeOff = entryTimeOff + vertexCapacity*4
	nextEdgeOff = exitTimeOff + vertexCapacity*4
	stackDataOff = nextEdgeOff + vertexCapacity*4
	return
}

// ComputeDfsSize returns the exact number of bytes a DfsState needs for a
// graph with the given vertex capacity.
func ComputeDfsSize(vertexCapacity int) (int, error) {
	if vertexCapacity < 0 {
		return 0, ErrInvalidCapacity
	}
	_, _, _, _, _, _, stackDataOff := dfsOffsets(vertexCapacity)
	total, ok := layout.AddOverflowSafe(stackDataOff, vertexCapacity*4)
	if !ok {
		return 0, ErrInvalidCapacity
	}
	return total, nil
}

// NewDfsState lays out a fresh DFS scratch object for g inside buf,
// capturing g's current generation and each live vertex's edge-list head
// as its initial next_edge cursor.
func NewDfsState(g *graph.Graph, buf []byte) (*DfsState, error) {
	vertexCapacity := int(g.VertexCapacity())
	size, err := ComputeDfsSize(vertexCapacity)
	if err != nil {
		return nil, err
	}
	if len(buf) == 0 {
		return nil, ErrNilBuffer
	}
	if len(buf) < size {
		return nil, ErrBufferTooSmall
	}

	layout.WriteHeader(buf, layout.KindDfsState, size, 0)
	layout.PutU32(buf, dfsOffVertexCapacity, uint32(vertexCapacity))
	layout.PutU32(buf, dfsOffGeneration, g.Generation())
	layout.PutU32(buf, dfsOffTime, 0)
	layout.PutI32(buf, dfsOffStackTop, 0)

	discoveredOff, processedOff, parentOff, entryTimeOff, exitTimeOff, nextEdgeOff, stackDataOff := dfsOffsets(vertexCapacity)
	words := layout.WordsFor32(vertexCapacity)
	bitClearAll(buf, discoveredOff, words)
	bitClearAll(buf, processedOff, words)
	for v := int32(0); v < int32(vertexCapacity); v++ {
		layout.PutI32(buf, parentOff+int(v)*4, -1)
		layout.PutU32(buf, entryTimeOff+int(v)*4, 0)
		layout.PutU32(buf, exitTimeOff+int(v)*4, 0)
		layout.PutI32(buf, nextEdgeOff+int(v)*4, g.FirstEdgeCursor(v))
	}

	return &DfsState{
		buf: buf, vertexCapacity: int32(vertexCapacity),
		discoveredOff: discoveredOff, processedOff: processedOff, parentOff: parentOff,
		entryTimeOff: entryTimeOff, exitTimeOff: exitTimeOff, nextEdgeOff: nextEdgeOff,
		stackDataOff: stackDataOff,
	}, nil
}

// FromDfsBuffer reconstructs a DfsState view over a buffer previously
// initialized by NewDfsState (or relocated from one).
func FromDfsBuffer(buf []byte) (*DfsState, error) {
	if err := layout.Validate(buf, layout.KindDfsState, dfsHeaderSize); err != nil {
		return nil, translateHeaderErr(err)
	}
	vertexCapacity := int32(layout.ReadU32(buf, dfsOffVertexCapacity))
	discoveredOff, processedOff, parentOff, entryTimeOff, exitTimeOff, nextEdgeOff, stackDataOff := dfsOffsets(int(vertexCapacity))
	return &DfsState{
		buf: buf, vertexCapacity: vertexCapacity,
		discoveredOff: discoveredOff, processedOff: processedOff, parentOff: parentOff,
		entryTimeOff: entryTimeOff, exitTimeOff: exitTimeOff, nextEdgeOff: nextEdgeOff,
		stackDataOff: stackDataOff,
	}, nil
}

// RelocateDfs copies state's bytes into dst and returns a DfsState view over it.
func RelocateDfs(dst, src []byte) (*DfsState, error) {
	if _, err := layout.Relocate(dst, src); err != nil {
		return nil, translateHeaderErr(err)
	}
	return FromDfsBuffer(dst)
}

// BufferSize returns the byte size recorded when the state was created.
func (s *DfsState) BufferSize() int { return layout.BufferSize(s.buf) }

// Parent returns the parent of v in the DFS forest, or -1 if v is a root or unreached.
func (s *DfsState) Parent(v int32) int32 { return layout.ReadI32(s.buf, s.parentOff+int(v)*4) }

// Discovered reports whether v has been discovered by the search.
func (s *DfsState) Discovered(v int32) bool { return bitTest(s.buf, s.discoveredOff, v) }

// Processed reports whether v's exploration has finished.
func (s *DfsState) Processed(v int32) bool { return bitTest(s.buf, s.processedOff, v) }

// EntryTime returns the tick at which v was first discovered.
func (s *DfsState) EntryTime(v int32) uint32 { return layout.ReadU32(s.buf, s.entryTimeOff+int(v)*4) }

// ExitTime returns the tick at which v's exploration finished.
func (s *DfsState) ExitTime(v int32) uint32 { return layout.ReadU32(s.buf, s.exitTimeOff+int(v)*4) }

// Classify reports how edge u->v relates to the DFS tree built so far.
// Only meaningful for an edge already explored by the search.
func (s *DfsState) Classify(u, v int32) EdgeKind {
	switch {
	case s.Parent(v) == u:
		return Tree
	case s.Discovered(v) && !s.Processed(v):
		return Back
	case s.Processed(v) && s.EntryTime(v) > s.EntryTime(u):
		return Forward
	default:
		return Cross
	}
}

func (s *DfsState) setParent(v, p int32) { layout.PutI32(s.buf, s.parentOff+int(v)*4, p) }

func (s *DfsState) nextEdge(v int32) int32 { return layout.ReadI32(s.buf, s.nextEdgeOff+int(v)*4) }
func (s *DfsState) setNextEdge(v, cursor int32) {
	layout.PutI32(s.buf, s.nextEdgeOff+int(v)*4, cursor)
}

func (s *DfsState) tick() uint32 {
	t := layout.ReadU32(s.buf, dfsOffTime) + 1
	layout.PutU32(s.buf, dfsOffTime, t)
	return t
}

func (s *DfsState) stackTop() int32 { return layout.ReadI32(s.buf, dfsOffStackTop) }

func (s *DfsState) push(v int32) error {
	top := s.stackTop()
	if top >= s.vertexCapacity {
		return ErrStackFull
	}
	layout.PutI32(s.buf, s.stackDataOff+int(top)*4, v)
	layout.PutI32(s.buf, dfsOffStackTop, top+1)
	return nil
}

func (s *DfsState) peek() int32 {
	top := s.stackTop()
	return layout.ReadI32(s.buf, s.stackDataOff+int(top-1)*4)
}

func (s *DfsState) pop() {
	layout.PutI32(s.buf, dfsOffStackTop, s.stackTop()-1)
}

func (s *DfsState) checkFresh(g *graph.Graph) error {
	if layout.ReadU32(s.buf, dfsOffGeneration) != g.Generation() {
		return ErrStaleState
	}
	return nil
}

// Dfs runs an iterative depth-first search over g starting at root, using
// an explicit stack and per-vertex next_edge cursors rather than
// recursion. It writes discovery order, parent pointers, and entry/exit
// timestamps into state and invokes callbacks as each vertex and edge is
// explored. state must have been created for g and is consumed by exactly
// one search.
func Dfs(g *graph.Graph, state *DfsState, root int32, callbacks Callbacks) error {
	if err := state.checkFresh(g); err != nil {
		return err
	}
	if _, err := g.GetVertexDegree(root); err != nil {
		return ErrInvalidVertex
	}

	if err := state.push(root); err != nil {
		return err
	}

	for state.stackTop() > 0 {
		v0 := state.peek()

		if !state.Discovered(v0) {
			bitSet(state.buf, state.discoveredOff, v0)
			t := state.tick()
			layout.PutU32(state.buf, state.entryTimeOff+int(v0)*4, t)
			callbacks.vertexEarly(v0)
		}

		cur := state.nextEdge(v0)
		if cur != graph.NoEdge {
			state.setNextEdge(v0, g.NextEdgeCursor(cur))
			v1 := g.EdgeCursorDest(cur)

			suppress := g.EdgeMode() == graph.Undirected && (v1 == state.Parent(v0) || state.Processed(v1))

			if !state.Discovered(v1) {
				state.setParent(v1, v0)
				if !suppress {
					callbacks.edge(v0, v1)
				}
				if err := state.push(v1); err != nil {
					return err
				}
			} else if !suppress {
				callbacks.edge(v0, v1)
			}
			continue
		}

		callbacks.vertexLate(v0)
		t := state.tick()
		layout.PutU32(state.buf, state.exitTimeOff+int(v0)*4, t)
		bitSet(state.buf, state.processedOff, v0)
		state.pop()
	}
	return nil
}
