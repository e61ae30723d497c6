package heap

import (
	"fmt"

	"github.com/cdwfs/algo/failkind"
)

var (
	// ErrInvalidCapacity indicates a negative or overflowing capacity was requested at
	// ComputeSize/New time, or a nil Comparator was passed to New or FromBuffer.
	ErrInvalidCapacity = fmt.Errorf("heap: invalid capacity: %w", failkind.InvalidArgument)

	// ErrBufferTooSmall indicates the supplied buffer was smaller than ComputeSize reported.
	ErrBufferTooSmall = fmt.Errorf("heap: buffer too small: %w", failkind.InvalidArgument)

	// ErrNilBuffer indicates a nil or empty buffer was passed to New or FromBuffer.
	ErrNilBuffer = fmt.Errorf("heap: nil buffer: %w", failkind.InvalidArgument)

	// ErrBadKind indicates a buffer belonging to a different object type was passed to FromBuffer.
	ErrBadKind = fmt.Errorf("heap: buffer is not a heap: %w", failkind.InvalidArgument)

	// ErrEmpty indicates Peek or Pop was called on an empty heap.
	ErrEmpty = fmt.Errorf("heap: empty: %w", failkind.OperationFailed)

	// ErrFull indicates Insert was called with no room remaining.
	ErrFull = fmt.Errorf("heap: full: %w", failkind.OperationFailed)

	// ErrCorrupt indicates Validate found a heap-order violation.
	ErrCorrupt = fmt.Errorf("heap: ordering violated: %w", failkind.InvalidArgument)
)
