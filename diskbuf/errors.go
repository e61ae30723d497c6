package diskbuf

import (
	"fmt"

	"github.com/cdwfs/algo/failkind"
)

// ErrInvalidSize indicates a negative size was requested from Create.
var ErrInvalidSize = fmt.Errorf("diskbuf: invalid size: %w", failkind.InvalidArgument)
