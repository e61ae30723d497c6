package graph

import "github.com/cdwfs/algo/tagged"

// AddVertex claims a free vertex slot, stores data as its payload, and
// returns the new vertex's id. Ids are stable until the vertex is removed.
func (g *Graph) AddVertex(data tagged.Value) (int32, error) {
	head := g.vertexFreeHead()
	if head == noSlot {
		return 0, ErrVertexFull
	}
	next := g.rawData(head).AsInt()
	g.setVertexFreeHead(next)

	g.setDegree(head, 0)
	g.setEdgeHead(head, noSlot)
	g.setRawData(head, data)

	count := g.CurrentVertexCount()
	g.setValidID(count, head)
	g.setIDToIndex(head, count)
	g.setCurrentVertexCount(count + 1)

	g.bumpGeneration()
	return head, nil
}

// RemoveVertex deletes v and every edge touching it. Directed graphs must
// scan every other live vertex to find incoming edges (O(V+E)); undirected
// graphs only need to walk v's own adjacency list, since every incident
// edge has a symmetric node recorded there.
func (g *Graph) RemoveVertex(v int32) error {
	if !g.isLive(v) {
		return ErrInvalidVertex
	}

	var removed int32
	if g.EdgeMode() == Undirected {
		for cur := g.edgeHead(v); cur != noSlot; {
			next := g.edgeNext(cur)
			dst := g.edgeDest(cur)
			g.unlinkEdge(dst, v)
			g.freeEdgeNode(cur)
			removed++
			cur = next
		}
	} else {
		n := g.CurrentVertexCount()
		for i := int32(0); i < n; i++ {
			other := g.validID(i)
			if other == v {
				continue
			}
			if g.unlinkEdge(other, v) {
				removed++
			}
		}
		for cur := g.edgeHead(v); cur != noSlot; {
			next := g.edgeNext(cur)
			g.freeEdgeNode(cur)
			removed++
			cur = next
		}
	}
	g.setCurrentEdgeCount(g.CurrentEdgeCount() - removed)

	idx := g.idToIndex(v)
	lastIdx := g.CurrentVertexCount() - 1
	lastID := g.validID(lastIdx)
	g.setValidID(idx, lastID)
	g.setIDToIndex(lastID, idx)
	g.setCurrentVertexCount(lastIdx)

	g.setEdgeHead(v, noSlot)
	g.setDegree(v, noSlot)
	g.setRawData(v, tagged.FromInt(g.vertexFreeHead()))
	g.setVertexFreeHead(v)

	g.bumpGeneration()
	return nil
}

// AddEdge adds an s->d edge (and, in undirected mode, its symmetric d->s
// node) if one does not already exist. Repeat calls are idempotent. Before
// allocating either edge node it checks the edge pool has enough free slots
// for the whole operation, so undirected mode never leaves a half-added
// edge behind on exhaustion.
func (g *Graph) AddEdge(s, d int32) error {
	if !g.isLive(s) || !g.isLive(d) {
		return ErrInvalidVertex
	}
	if s == d {
		return ErrSelfEdge
	}
	if g.hasEdge(s, d) {
		return nil
	}

	needed := int32(1)
	if g.EdgeMode() == Undirected {
		needed = 2
	}
	if g.edgePool.Stats().FreeListLen < needed {
		return ErrEdgeFull
	}

	g.linkEdge(s, d)
	if g.EdgeMode() == Undirected {
		g.linkEdge(d, s)
	}
	g.setCurrentEdgeCount(g.CurrentEdgeCount() + 1)
	g.bumpGeneration()
	return nil
}

// RemoveEdge removes the s->d edge (and its symmetric node in undirected
// mode). Returns ErrNoSuchEdge if s has no edge to d.
func (g *Graph) RemoveEdge(s, d int32) error {
	if !g.isLive(s) || !g.isLive(d) {
		return ErrInvalidVertex
	}
	if !g.unlinkEdge(s, d) {
		return ErrNoSuchEdge
	}
	if g.EdgeMode() == Undirected {
		g.unlinkEdge(d, s)
	}
	g.setCurrentEdgeCount(g.CurrentEdgeCount() - 1)
	g.bumpGeneration()
	return nil
}

// GetVertexDegree returns v's out-degree (its total degree in undirected mode).
func (g *Graph) GetVertexDegree(v int32) (int32, error) {
	if !g.isLive(v) {
		return 0, ErrInvalidVertex
	}
	return g.degree(v), nil
}

// GetVertexEdges copies v's adjacent vertex ids into out, in
// most-recently-added-first order. expectedDegree must match v's current
// degree exactly, mirroring the size-check-before-fill convention used
// throughout this module: callers call GetVertexDegree first to size out.
func (g *Graph) GetVertexEdges(v int32, expectedDegree int, out []int32) error {
	if !g.isLive(v) {
		return ErrInvalidVertex
	}
	deg := int(g.degree(v))
	if expectedDegree != deg {
		return ErrDegreeMismatch
	}
	if len(out) < deg {
		return ErrOutputTooSmall
	}
	i := 0
	for cur := g.edgeHead(v); cur != noSlot; cur = g.edgeNext(cur) {
		out[i] = g.edgeDest(cur)
		i++
	}
	return nil
}

// GetVertexData returns v's stored payload.
func (g *Graph) GetVertexData(v int32) (tagged.Value, error) {
	if !g.isLive(v) {
		return tagged.Value{}, ErrInvalidVertex
	}
	return g.rawData(v), nil
}

// SetVertexData overwrites v's stored payload.
func (g *Graph) SetVertexData(v int32, x tagged.Value) error {
	if !g.isLive(v) {
		return ErrInvalidVertex
	}
	g.setRawData(v, x)
	return nil
}

// Validate walks the whole graph checking structural consistency: the
// validID/idToIndex tables form a bijection over live vertices, every
// adjacency list's length matches its vertex's recorded degree, no vertex
// has a self-edge or an edge to a dead vertex, and CurrentEdgeCount matches
// the sum of degrees (halved in undirected mode, since each logical edge
// contributes to two degrees).
func (g *Graph) Validate() error {
	vcap := g.VertexCapacity()
	count := g.CurrentVertexCount()
	if count < 0 || count > vcap {
		return ErrCorrupt
	}

	seen := make(map[int32]bool, count)
	var sumDegrees int64
	for i := int32(0); i < count; i++ {
		v := g.validID(i)
		if v < 0 || v >= vcap || seen[v] {
			return ErrCorrupt
		}
		seen[v] = true
		if g.idToIndex(v) != i || !g.isLive(v) {
			return ErrCorrupt
		}

		deg := g.degree(v)
		if deg < 0 {
			return ErrCorrupt
		}
		var walked int32
		for cur := g.edgeHead(v); cur != noSlot; cur = g.edgeNext(cur) {
			walked++
			if walked > deg {
				return ErrCorrupt
			}
			dst := g.edgeDest(cur)
			if dst == v || !g.isLive(dst) {
				return ErrCorrupt
			}
		}
		if walked != deg {
			return ErrCorrupt
		}
		sumDegrees += int64(deg)
	}

	expectedEdges := sumDegrees
	if g.EdgeMode() == Undirected {
		if sumDegrees%2 != 0 {
			return ErrCorrupt
		}
		expectedEdges = sumDegrees / 2
	}
	if int64(g.CurrentEdgeCount()) != expectedEdges {
		return ErrCorrupt
	}
	return nil
}
