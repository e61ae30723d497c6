package topo

import (
	"fmt"

	"github.com/cdwfs/algo/failkind"
)

var (
	// ErrNotDirected indicates TopoSort was called on an undirected graph.
	ErrNotDirected = fmt.Errorf("topo: graph is not directed: %w", failkind.OperationFailed)

	// ErrOutputTooSmall indicates out had fewer slots than the graph's current vertex count.
	ErrOutputTooSmall = fmt.Errorf("topo: output slice shorter than vertex count: %w", failkind.InvalidArgument)

	// ErrCycleDetected indicates a directed cycle was found during the sort.
	ErrCycleDetected = fmt.Errorf("topo: graph contains a cycle: %w", failkind.InvalidArgument)
)
