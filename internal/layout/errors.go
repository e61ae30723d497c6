package layout

import "errors"

var (
	// ErrNilBuffer indicates a nil or zero-length buffer was passed to a constructor.
	ErrNilBuffer = errors.New("layout: nil buffer")

	// ErrTooSmall indicates a buffer shorter than the computed size was passed to a constructor.
	ErrTooSmall = errors.New("layout: buffer too small")

	// ErrBadKind indicates a buffer's header kind tag does not match the expected object type.
	ErrBadKind = errors.New("layout: unexpected buffer kind")

	// ErrOverflow indicates a capacity computation would overflow a Go int.
	ErrOverflow = errors.New("layout: size computation overflows")
)
