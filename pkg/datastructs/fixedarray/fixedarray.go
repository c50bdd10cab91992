// Package fixedarray provides a fixed-capacity sequence whose only mutation
// pushes a value onto the front and evicts the value at the back.
package fixedarray

import "github.com/pkg/errors"

// FixedArray holds exactly Cap() values of T. Every slot is populated from
// construction on: slots start at T's zero value and are only ever overwritten.
// Instances must come from New or MustNew; AddFirst on the zero value panics
// with ErrDegenerateCapacity.
// It is NOT thread-safe.
type FixedArray[T any] struct {
	size     int // always len(elements)
	elements []T
}

// New creates a FixedArray with the given capacity.
// A zero or negative capacity has no slot for AddFirst to write into and is rejected.
func New[T any](capacity int) (*FixedArray[T], error) {
	if capacity < 1 {
		return nil, errors.Wrapf(ErrDegenerateCapacity, "got %d", capacity)
	}
	return &FixedArray[T]{
		size:     capacity,
		elements: make([]T, capacity),
	}, nil
}

// MustNew is like New but panics on an invalid capacity.
func MustNew[T any](capacity int) *FixedArray[T] {
	a, err := New[T](capacity)
	if err != nil {
		panic(err)
	}
	return a
}

// AddFirst stores e at index 0. Every other value moves one slot toward the
// back and the value previously at Cap()-1 is discarded.
func (a *FixedArray[T]) AddFirst(e T) {
	if a.size == 0 {
		panic(errors.WithStack(ErrDegenerateCapacity))
	}
	// copy has memmove semantics, so the overlapping right shift is safe.
	copy(a.elements[1:], a.elements[:a.size-1])
	a.elements[0] = e
}

// At returns the value at index.
func (a *FixedArray[T]) At(index int) (T, error) {
	if index < 0 || index >= a.size {
		var zero T
		return zero, outOfBounds(index, a.size)
	}
	return a.elements[index], nil
}

// Get returns the value at index, panicking if index is out of bounds.
func (a *FixedArray[T]) Get(index int) T {
	v, err := a.At(index)
	if err != nil {
		panic(err)
	}
	return v
}

// Set overwrites the value at index.
func (a *FixedArray[T]) Set(index int, value T) error {
	if index < 0 || index >= a.size {
		return outOfBounds(index, a.size)
	}
	a.elements[index] = value
	return nil
}

// Size returns the number of slots. It never changes and always equals Cap().
func (a *FixedArray[T]) Size() int {
	return a.size
}

// Cap returns the fixed capacity.
func (a *FixedArray[T]) Cap() int {
	return a.size
}
