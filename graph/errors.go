package graph

import (
	"fmt"

	"github.com/cdwfs/algo/failkind"
)

var (
	// ErrInvalidCapacity indicates a negative or overflowing vertex or edge capacity, or an
	// unknown EdgeMode, was requested.
	ErrInvalidCapacity = fmt.Errorf("graph: invalid capacity: %w", failkind.InvalidArgument)

	// ErrBufferTooSmall indicates the supplied buffer was smaller than ComputeSize reported.
	ErrBufferTooSmall = fmt.Errorf("graph: buffer too small: %w", failkind.InvalidArgument)

	// ErrNilBuffer indicates a nil or empty buffer was passed to New or FromBuffer.
	ErrNilBuffer = fmt.Errorf("graph: nil buffer: %w", failkind.InvalidArgument)

	// ErrBadKind indicates a buffer belonging to a different object type was passed to FromBuffer.
	ErrBadKind = fmt.Errorf("graph: buffer is not a graph: %w", failkind.InvalidArgument)

	// ErrVertexFull indicates AddVertex was called with no free vertex slots remaining.
	ErrVertexFull = fmt.Errorf("graph: vertex capacity exhausted: %w", failkind.OperationFailed)

	// ErrEdgeFull indicates AddEdge needed more edge-pool slots than remained free.
	ErrEdgeFull = fmt.Errorf("graph: edge capacity exhausted: %w", failkind.OperationFailed)

	// ErrInvalidVertex indicates a vertex id referred to a slot that is not live.
	ErrInvalidVertex = fmt.Errorf("graph: invalid or unused vertex id: %w", failkind.InvalidArgument)

	// ErrSelfEdge indicates AddEdge was called with s == d.
	ErrSelfEdge = fmt.Errorf("graph: self-edges are not allowed: %w", failkind.InvalidArgument)

	// ErrNoSuchEdge indicates RemoveEdge found no s->d edge to remove.
	ErrNoSuchEdge = fmt.Errorf("graph: no such edge: %w", failkind.OperationFailed)

	// ErrDegreeMismatch indicates GetVertexEdges was called with the wrong expectedDegree.
	ErrDegreeMismatch = fmt.Errorf("graph: expected degree mismatch: %w", failkind.InvalidArgument)

	// ErrOutputTooSmall indicates GetVertexEdges was given an output slice shorter than the degree.
	ErrOutputTooSmall = fmt.Errorf("graph: output slice shorter than degree: %w", failkind.InvalidArgument)

	// ErrCorrupt indicates Validate found a structural inconsistency.
	ErrCorrupt = fmt.Errorf("graph: validation failed: %w", failkind.InvalidArgument)
)
