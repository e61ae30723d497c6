package traversal

import (
	"fmt"

	"github.com/cdwfs/algo/failkind"
)

var (
	// ErrInvalidCapacity indicates a negative vertex capacity was requested.
	ErrInvalidCapacity = fmt.Errorf("traversal: invalid capacity: %w", failkind.InvalidArgument)

	// ErrBufferTooSmall indicates the supplied buffer was smaller than ComputeSize reported.
	ErrBufferTooSmall = fmt.Errorf("traversal: buffer too small: %w", failkind.InvalidArgument)

	// ErrNilBuffer indicates a nil or empty buffer was passed to New or FromBuffer.
	ErrNilBuffer = fmt.Errorf("traversal: nil buffer: %w", failkind.InvalidArgument)

	// ErrBadKind indicates a buffer belonging to a different object type was passed to FromBuffer.
	ErrBadKind = fmt.Errorf("traversal: buffer is not a traversal state: %w", failkind.InvalidArgument)

	// ErrInvalidVertex indicates a root vertex id was not live in the graph.
	ErrInvalidVertex = fmt.Errorf("traversal: invalid or unused vertex id: %w", failkind.InvalidArgument)

	// ErrStaleState indicates the graph has mutated since the traversal state was created.
	ErrStaleState = fmt.Errorf("traversal: state is stale relative to its graph: %w", failkind.InvalidArgument)

	// ErrQueueFull and ErrStackFull indicate the internal work container overflowed,
	// which can only happen if vertexCapacity was undersized relative to the graph.
	ErrQueueFull = fmt.Errorf("traversal: queue full: %w", failkind.OperationFailed)
	ErrStackFull = fmt.Errorf("traversal: stack full: %w", failkind.OperationFailed)
)
