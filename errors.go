package staticvec

import (
	"errors"
	"fmt"
)

var (
	// ErrCapacityExceeded is returned when an operation would need more
	// live slots than the vector's capacity. The vector is left unchanged.
	ErrCapacityExceeded = errors.New("staticvec: capacity exceeded")

	// ErrOutOfRange is returned by checked access and by positional
	// mutators when an index or count falls outside the live region.
	ErrOutOfRange = errors.New("staticvec: index out of range")
)

func capacityError(need, capacity int) error {
	return fmt.Errorf("%w: need %d slots, capacity %d", ErrCapacityExceeded, need, capacity)
}

func indexError(pos, length int) error {
	return fmt.Errorf("%w: index %d, length %d", ErrOutOfRange, pos, length)
}

func rangeError(first, last, length int) error {
	return fmt.Errorf("%w: range [%d, %d), length %d", ErrOutOfRange, first, last, length)
}

func countError(n int) error {
	return fmt.Errorf("%w: negative count %d", ErrOutOfRange, n)
}
