package traversal

// Callbacks is the capability set a traversal invokes. Each hook is
// optional; a nil hook is simply skipped. Hooks run synchronously on the
// caller's goroutine and must not mutate the graph or start another
// traversal against the state they were invoked from.
type Callbacks struct {
	// OnVertexEarly fires once per reachable vertex, on first discovery.
	OnVertexEarly func(v int32)
	// OnEdge fires once per logical edge explored (once per undirected pair).
	OnEdge func(u, v int32)
	// OnVertexLate fires once per reachable vertex, when its exploration finishes.
	OnVertexLate func(v int32)
}

func (c Callbacks) vertexEarly(v int32) {
	if c.OnVertexEarly != nil {
		c.OnVertexEarly(v)
	}
}

func (c Callbacks) edge(u, v int32) {
	if c.OnEdge != nil {
		c.OnEdge(u, v)
	}
}

func (c Callbacks) vertexLate(v int32) {
	if c.OnVertexLate != nil {
		c.OnVertexLate(v)
	}
}
