package label

import (
	"errors"
	"fmt"
)

// ErrInvalidArgument is wrapped by every precondition failure in this package.
// Use errors.Is() to check for it.
var ErrInvalidArgument = errors.New("invalid argument")

func invalidArgument(msg string) error {
	return fmt.Errorf("%w: %s", ErrInvalidArgument, msg)
}

var (
	errEmptyName       = invalidArgument("name must be non-empty")
	errNonFiniteValue  = invalidArgument("value must be finite")
	errGrowthNotString = invalidArgument("yoyGrowth must be a string")
	errNotSequence     = invalidArgument("nodes must be a sequence")
	errNotRecord       = invalidArgument("each node must be a record")
)
