package bounds

import (
	"errors"
	"fmt"
)

var (
	// ErrStartOverflow reports that resolving an excluded start bound would
	// exceed the representable offset range.
	ErrStartOverflow = errors.New("bounds: start bound overflows")

	// ErrEndOverflow reports that resolving an included end bound would
	// exceed the representable offset range.
	ErrEndOverflow = errors.New("bounds: end bound overflows")
)

// StartTooLargeError reports a start greater than the end it was paired with.
type StartTooLargeError struct {
	Start uint
	End   uint
}

func (e *StartTooLargeError) Error() string {
	return fmt.Sprintf("bounds: start %d exceeds end %d", e.Start, e.End)
}

// EndTooLargeError reports a resolved end greater than the buffer length.
type EndTooLargeError struct {
	End uint
	Len uint
}

func (e *EndTooLargeError) Error() string {
	return fmt.Sprintf("bounds: end %d exceeds length %d", e.End, e.Len)
}
