package core

import (
	"errors"
	"fmt"
)

var (
	// ErrIndexOutOfRange is returned by indexed collection accessors
	ErrIndexOutOfRange = errors.New("index out of range")

	// ErrSingularMatrix is returned when a matrix has no inverse
	ErrSingularMatrix = errors.New("singular matrix")
)

// CheckIndex returns an ErrIndexOutOfRange wrapping error when i is not a
// valid index into a collection of length n.
func CheckIndex(i, n int) error {
	if i < 0 || i >= n {
		return fmt.Errorf("%w: index %d, length %d", ErrIndexOutOfRange, i, n)
	}
	return nil
}
