package topo

import (
	"github.com/cdwfs/algo/graph"
	"github.com/cdwfs/algo/traversal"
)

// TopoSort writes a topological order of g's vertices into out and
// returns nil, or fails with ErrCycleDetected if g contains a directed
// cycle. g must be directed. state is reused as the shared DFS scratch
// object across every root vertex; it must have been created for g.
func TopoSort(g *graph.Graph, state *traversal.DfsState, out []int32) error {
	if g.EdgeMode() != graph.Directed {
		return ErrNotDirected
	}
	n := int(g.CurrentVertexCount())
	if len(out) < n {
		return ErrOutputTooSmall
	}

	cursor := n - 1
	var cyclic bool
	cb := traversal.Callbacks{
		OnEdge: func(u, v int32) {
			if cyclic {
				return
			}
			if state.Classify(u, v) == traversal.Back {
				cyclic = true
			}
		},
		OnVertexLate: func(v int32) {
			if cyclic {
				return
			}
			out[cursor] = v
			cursor--
		},
	}

	for i := int32(0); i < int32(n); i++ {
		if cyclic {
			break
		}
		v := g.VertexIDAt(i)
		if state.Processed(v) {
			continue
		}
		if err := traversal.Dfs(g, state, v, cb); err != nil {
			return err
		}
	}

	if cyclic {
		return ErrCycleDetected
	}
	return nil
}
