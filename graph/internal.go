package graph

import (
	"github.com/cdwfs/algo/internal/layout"
	"github.com/cdwfs/algo/tagged"
)

func (g *Graph) vertexSlotOffset(v int32) int {
	return g.verticesOff + int(v)*vertexSlotSize
}

func (g *Graph) degree(v int32) int32 {
	return layout.ReadI32(g.buf, g.vertexSlotOffset(v)+offDegree)
}

func (g *Graph) setDegree(v, d int32) {
	layout.PutI32(g.buf, g.vertexSlotOffset(v)+offDegree, d)
}

func (g *Graph) edgeHead(v int32) int32 {
	return layout.ReadI32(g.buf, g.vertexSlotOffset(v)+offEdgeHead)
}

func (g *Graph) setEdgeHead(v, head int32) {
	layout.PutI32(g.buf, g.vertexSlotOffset(v)+offEdgeHead, head)
}

// setRawData writes the slot's data field regardless of liveness; used both
// for live vertex payloads and to store the free-list's "next free slot" in
// a free slot's data field.
func (g *Graph) setRawData(v int32, val tagged.Value) {
	tagged.Write(g.buf, g.vertexSlotOffset(v)+offData, val)
}

func (g *Graph) rawData(v int32) tagged.Value {
	return tagged.Read(g.buf, g.vertexSlotOffset(v)+offData)
}

func (g *Graph) isLive(v int32) bool {
	return v >= 0 && v < g.VertexCapacity() && g.degree(v) != noSlot
}

func (g *Graph) vertexFreeHead() int32 { return layout.ReadI32(g.buf, offVertexFreeHead) }
func (g *Graph) setVertexFreeHead(v int32) {
	layout.PutI32(g.buf, offVertexFreeHead, v)
}

func (g *Graph) setCurrentVertexCount(n int32) {
	layout.PutU32(g.buf, offCurrentVertexCount, uint32(n))
}

func (g *Graph) setCurrentEdgeCount(n int32) {
	layout.PutU32(g.buf, offCurrentEdgeCount, uint32(n))
}

func (g *Graph) validID(i int32) int32 {
	return layout.ReadI32(g.buf, g.validIDsOff+int(i)*4)
}

func (g *Graph) setValidID(i, v int32) {
	layout.PutI32(g.buf, g.validIDsOff+int(i)*4, v)
}

func (g *Graph) idToIndex(v int32) int32 {
	return layout.ReadI32(g.buf, g.idToIndexOff+int(v)*4)
}

func (g *Graph) setIDToIndex(v, idx int32) {
	layout.PutI32(g.buf, g.idToIndexOff+int(v)*4, idx)
}

func (g *Graph) bumpGeneration() {
	layout.SetGeneration(g.buf, layout.Generation(g.buf)+1)
}

// --- edge node accessors (edgePool slot layout: dest, weight, next) ---

func (g *Graph) edgeDest(node int32) int32 {
	b, _ := g.edgePool.Slot(node)
	return layout.ReadI32(b, edgeOffDest)
}

func (g *Graph) edgeNext(node int32) int32 {
	b, _ := g.edgePool.Slot(node)
	return layout.ReadI32(b, edgeOffNext)
}

func (g *Graph) allocEdgeNode(dest, next int32) int32 {
	slot, b, err := g.edgePool.Alloc()
	if err != nil {
		panic("graph: edge pool allocation failed after capacity precheck") // unreachable: callers precheck FreeListLen
	}
	layout.PutI32(b, edgeOffDest, dest)
	layout.PutI32(b, edgeOffWeight, 0)
	layout.PutI32(b, edgeOffNext, next)
	return slot
}

func (g *Graph) freeEdgeNode(node int32) {
	_ = g.edgePool.Free(node)
}

// linkEdge allocates a new edge node for src->dst at the head of src's list
// and increments src's degree. Callers must have already verified the edge
// pool has room.
func (g *Graph) linkEdge(src, dst int32) {
	node := g.allocEdgeNode(dst, g.edgeHead(src))
	g.setEdgeHead(src, node)
	g.setDegree(src, g.degree(src)+1)
}

// hasEdge reports whether src already has a direct edge to dst.
func (g *Graph) hasEdge(src, dst int32) bool {
	for cur := g.edgeHead(src); cur != noSlot; cur = g.edgeNext(cur) {
		if g.edgeDest(cur) == dst {
			return true
		}
	}
	return false
}

// unlinkEdge removes src's edge to dst (if any), freeing its node and
// decrementing src's degree. Reports whether an edge was found.
func (g *Graph) unlinkEdge(src, dst int32) bool {
	prev := noSlot
	cur := g.edgeHead(src)
	for cur != noSlot {
		next := g.edgeNext(cur)
		if g.edgeDest(cur) == dst {
			if prev == noSlot {
				g.setEdgeHead(src, next)
			} else {
				b, _ := g.edgePool.Slot(prev)
				layout.PutI32(b, edgeOffNext, next)
			}
			g.freeEdgeNode(cur)
			g.setDegree(src, g.degree(src)-1)
			return true
		}
		prev = cur
		cur = next
	}
	return false
}
