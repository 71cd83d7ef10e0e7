package chainclient

import (
	"errors"
	"fmt"
)

// ErrInvalidArgument marks local validation failures raised before any
// network call is made.
var ErrInvalidArgument = errors.New("invalid argument")

func invalidArgf(format string, args ...interface{}) error {
	return fmt.Errorf("%w: %s", ErrInvalidArgument, fmt.Sprintf(format, args...))
}
