package buffer

import (
	"errors"
	"fmt"
)

var (
	// ErrOutOfRange reports a line, column or row index outside the buffer.
	ErrOutOfRange = errors.New("index out of range")

	// ErrInvalidWidth reports a wrap width that cannot hold a single rune.
	ErrInvalidWidth = errors.New("wrap width must be positive")

	// ErrInvalidText reports a line break passed where a single line is expected.
	ErrInvalidText = errors.New("text contains a line break")
)

func outOfRange(format string, args ...any) error {
	return fmt.Errorf("%s: %w", fmt.Sprintf(format, args...), ErrOutOfRange)
}
