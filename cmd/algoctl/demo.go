package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/cdwfs/algo/graph"
	"github.com/cdwfs/algo/tagged"
	"github.com/cdwfs/algo/topo"
	"github.com/cdwfs/algo/traversal"
)

var demoAlgo string

var demoCmd = &cobra.Command{
	Use:   "demo",
	Short: "Build a small 5-vertex graph and run a traversal over it",
	Long: `demo builds the graph A-B, A-C, B-D, C-D, D-E (undirected for bfs,
directed for dfs and topo) and runs the chosen algorithm against it. bfs
and dfs print each hooked callback as it fires; topo prints the sorted
order.`,
	RunE: runDemo,
}

func init() {
	demoCmd.Flags().StringVar(&demoAlgo, "algo", "bfs", "bfs, dfs, or topo")
	rootCmd.AddCommand(demoCmd)
}

func buildDemoGraph(mode graph.EdgeMode) (*graph.Graph, map[string]int32, error) {
	size, err := graph.ComputeSize(5, 5, mode)
	if err != nil {
		return nil, nil, err
	}
	g, err := graph.New(5, 5, mode, make([]byte, size))
	if err != nil {
		return nil, nil, err
	}

	ids := make(map[string]int32, 5)
	for _, name := range []string{"A", "B", "C", "D", "E"} {
		v, err := g.AddVertex(tagged.FromInt(0))
		if err != nil {
			return nil, nil, err
		}
		ids[name] = v
	}
	for _, e := range [][2]string{{"A", "B"}, {"A", "C"}, {"B", "D"}, {"C", "D"}, {"D", "E"}} {
		if err := g.AddEdge(ids[e[0]], ids[e[1]]); err != nil {
			return nil, nil, err
		}
	}
	return g, ids, nil
}

func nameOf(ids map[string]int32, v int32) string {
	for name, id := range ids {
		if id == v {
			return name
		}
	}
	return "?"
}

func runDemo(cmd *cobra.Command, args []string) error {
	switch demoAlgo {
	case "bfs":
		g, ids, err := buildDemoGraph(graph.Undirected)
		if err != nil {
			return err
		}
		size, err := traversal.ComputeSize(int(g.VertexCapacity()))
		if err != nil {
			return err
		}
		state, err := traversal.NewBfsState(g, make([]byte, size))
		if err != nil {
			return err
		}
		cb := traversal.Callbacks{
			OnVertexEarly: func(v int32) { printInfo("visit %s\n", nameOf(ids, v)) },
			OnEdge:        func(u, v int32) { printVerbose("  edge %s->%s\n", nameOf(ids, u), nameOf(ids, v)) },
		}
		if err := traversal.Bfs(g, state, ids["A"], cb); err != nil {
			return err
		}
		for name, v := range ids {
			printInfo("parent(%s) = %s\n", name, parentName(ids, state.Parent(v)))
		}
		return nil

	case "dfs":
		g, ids, err := buildDemoGraph(graph.Directed)
		if err != nil {
			return err
		}
		size, err := traversal.ComputeDfsSize(int(g.VertexCapacity()))
		if err != nil {
			return err
		}
		state, err := traversal.NewDfsState(g, make([]byte, size))
		if err != nil {
			return err
		}
		cb := traversal.Callbacks{
			OnVertexEarly: func(v int32) { printInfo("enter %s\n", nameOf(ids, v)) },
			OnVertexLate:  func(v int32) { printInfo("exit  %s\n", nameOf(ids, v)) },
		}
		return traversal.Dfs(g, state, ids["A"], cb)

	case "topo":
		g, ids, err := buildDemoGraph(graph.Directed)
		if err != nil {
			return err
		}
		size, err := traversal.ComputeDfsSize(int(g.VertexCapacity()))
		if err != nil {
			return err
		}
		state, err := traversal.NewDfsState(g, make([]byte, size))
		if err != nil {
			return err
		}
		out := make([]int32, g.CurrentVertexCount())
		if err := topo.TopoSort(g, state, out); err != nil {
			return err
		}
		for _, v := range out {
			printInfo("%s\n", nameOf(ids, v))
		}
		return nil

	default:
		return fmt.Errorf("unknown demo algo %q (want bfs, dfs, or topo)", demoAlgo)
	}
}

func parentName(ids map[string]int32, p int32) string {
	if p == -1 {
		return "<root>"
	}
	return nameOf(ids, p)
}
