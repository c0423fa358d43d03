package compress

import (
	"errors"
	"fmt"
)

var (
	// ErrNegativeSize is returned for a declared size below zero.
	ErrNegativeSize = errors.New("declared size must be non-negative")

	// ErrCorruptBlock is returned for a malformed token stream, such as a
	// zero match offset or one reaching before the window.
	ErrCorruptBlock = errors.New("corrupt lz4 block")

	// ErrUnexpectedEOF is returned when the block ends inside a sequence.
	ErrUnexpectedEOF = errors.New("unexpected end of lz4 block")

	// ErrSizeMismatch is wrapped by SizeMismatchError.
	ErrSizeMismatch = errors.New("declared size does not match block")

	// ErrIncompressible is returned by Compress when no block fits the bound.
	ErrIncompressible = errors.New("data is incompressible")
)

// SizeMismatchError reports a block whose decoded length differs from the
// length the caller declared.
type SizeMismatchError struct {
	Declared int
	Actual   int
}

// Error implements the error interface.
func (e *SizeMismatchError) Error() string {
	return fmt.Sprintf("%v: declared %d bytes, block decodes to %d", ErrSizeMismatch, e.Declared, e.Actual)
}

// Unwrap lets errors.Is match ErrSizeMismatch.
func (e *SizeMismatchError) Unwrap() error {
	return ErrSizeMismatch
}
