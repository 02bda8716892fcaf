package intcoll

import (
	"github.com/pkg/errors"
)

// Errors of the containers in this module. Operations wrap them with context,
// clients test with errors.Is.
var (
	// ErrInvalidArgument flags malformed construction input.
	ErrInvalidArgument = errors.New("invalid argument")
	// ErrIndexOutOfBounds flags positional access outside [0, size).
	ErrIndexOutOfBounds = errors.New("index out of bounds")
	// ErrCapacityExceeded flags growth beyond the maximum representable count.
	// The container stays readable, but cannot grow any further.
	ErrCapacityExceeded = errors.New("capacity exceeded")
	// ErrEmptyContainer flags a stack operation on an empty list.
	ErrEmptyContainer = errors.New("empty container")
	// ErrNullElement flags a nil value at a boxed entry point.
	ErrNullElement = errors.New("null element")
)

// IndexError returns an error wrapping ErrIndexOutOfBounds.
func IndexError(index, size int) error {
	return errors.Wrapf(ErrIndexOutOfBounds, "index=%d size=%d", index, size)
}
