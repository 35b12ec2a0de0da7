package slide

import "errors"

var (
	// ErrOffsetOutOfRange reports a cursor offset outside [0, Len()].
	ErrOffsetOutOfRange = errors.New("slide: offset out of range")

	// ErrAdvancePastEnd reports an advance larger than the remaining suffix.
	ErrAdvancePastEnd = errors.New("slide: advance exceeds remaining")

	// ErrRewindPastStart reports a rewind larger than the consumed prefix.
	ErrRewindPastStart = errors.New("slide: rewind exceeds consumed")
)
