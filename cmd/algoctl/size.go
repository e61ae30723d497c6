package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/cdwfs/algo/graph"
	"github.com/cdwfs/algo/heap"
	"github.com/cdwfs/algo/pool"
)

var sizeCmd = &cobra.Command{
	Use:   "size",
	Short: "Print the exact buffer size ComputeSize reports for a capacity",
}

var (
	sizePoolElementSize int
	sizePoolCount       int
)

var sizePoolCmd = &cobra.Command{
	Use:   "pool",
	Short: "Print pool.ComputeSize(element-size, count)",
	RunE: func(cmd *cobra.Command, args []string) error {
		n, err := pool.ComputeSize(sizePoolElementSize, sizePoolCount)
		if err != nil {
			return err
		}
		printInfo("%d\n", n)
		return nil
	},
}

var sizeHeapCapacity int

var sizeHeapCmd = &cobra.Command{
	Use:   "heap",
	Short: "Print heap.ComputeSize(capacity)",
	RunE: func(cmd *cobra.Command, args []string) error {
		n, err := heap.ComputeSize(sizeHeapCapacity)
		if err != nil {
			return err
		}
		printInfo("%d\n", n)
		return nil
	},
}

var (
	sizeGraphVertices int
	sizeGraphEdges    int
	sizeGraphMode     string
)

var sizeGraphCmd = &cobra.Command{
	Use:   "graph",
	Short: "Print graph.ComputeSize(vertices, edges, mode)",
	RunE: func(cmd *cobra.Command, args []string) error {
		mode, err := parseEdgeMode(sizeGraphMode)
		if err != nil {
			return err
		}
		n, err := graph.ComputeSize(sizeGraphVertices, sizeGraphEdges, mode)
		if err != nil {
			return err
		}
		printInfo("%d\n", n)
		return nil
	},
}

func parseEdgeMode(s string) (graph.EdgeMode, error) {
	switch s {
	case "directed":
		return graph.Directed, nil
	case "undirected":
		return graph.Undirected, nil
	default:
		return 0, fmt.Errorf("unknown edge mode %q (want directed or undirected)", s)
	}
}

func init() {
	sizePoolCmd.Flags().IntVar(&sizePoolElementSize, "element-size", 8, "bytes per pool slot")
	sizePoolCmd.Flags().IntVar(&sizePoolCount, "count", 16, "number of pool slots")

	sizeHeapCmd.Flags().IntVar(&sizeHeapCapacity, "capacity", 16, "max heap entries")

	sizeGraphCmd.Flags().IntVar(&sizeGraphVertices, "vertices", 16, "max live vertices")
	sizeGraphCmd.Flags().IntVar(&sizeGraphEdges, "edges", 16, "max logical edges")
	sizeGraphCmd.Flags().StringVar(&sizeGraphMode, "mode", "directed", "directed or undirected")

	sizeCmd.AddCommand(sizePoolCmd, sizeHeapCmd, sizeGraphCmd)
	rootCmd.AddCommand(sizeCmd)
}
