package pool

import (
	"fmt"

	"github.com/cdwfs/algo/failkind"
)

var (
	// ErrInvalidCapacity indicates elementSize or elementCount was out of range at ComputeSize/New time.
	ErrInvalidCapacity = fmt.Errorf("pool: invalid capacity: %w", failkind.InvalidArgument)

	// ErrBufferTooSmall indicates the supplied buffer was smaller than ComputeSize reported.
	ErrBufferTooSmall = fmt.Errorf("pool: buffer too small: %w", failkind.InvalidArgument)

	// ErrNilBuffer indicates a nil or empty buffer was passed to New or FromBuffer.
	ErrNilBuffer = fmt.Errorf("pool: nil buffer: %w", failkind.InvalidArgument)

	// ErrBadKind indicates a buffer belonging to a different object type was passed to FromBuffer.
	ErrBadKind = fmt.Errorf("pool: buffer is not a pool: %w", failkind.InvalidArgument)

	// ErrBadSlot indicates Free or Slot was called with a slot index outside the pool or past the end of its buffer.
	ErrBadSlot = fmt.Errorf("pool: slot out of range: %w", failkind.InvalidArgument)

	// ErrFull indicates Alloc was called with no free slots remaining.
	ErrFull = fmt.Errorf("pool: no free slots: %w", failkind.OperationFailed)
)
