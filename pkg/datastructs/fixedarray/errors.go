package fixedarray

import "github.com/pkg/errors"

var (
	// ErrOutOfBounds is returned when a slot index falls outside [0, Cap()).
	ErrOutOfBounds = errors.New("fixedarray: index out of bounds")

	// ErrDegenerateCapacity is returned by New when capacity is less than 1.
	ErrDegenerateCapacity = errors.New("fixedarray: capacity must be greater than 0")
)

// outOfBounds annotates ErrOutOfBounds with the offending index.
func outOfBounds(index, capacity int) error {
	return errors.Wrapf(ErrOutOfBounds, "index %d, capacity %d", index, capacity)
}
