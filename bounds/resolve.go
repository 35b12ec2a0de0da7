package bounds

import "math"

// FromBounds resolves a (start, end) bound pair against a buffer length into
// a Range.
//
// An included start and an excluded end map to their value directly; an
// excluded start maps to value+1; an included end maps to value+1; unbounded
// maps to 0 for the start and to length for the end.
//
// Failure precedence is fixed and part of the contract: ErrStartOverflow,
// then ErrEndOverflow, then *StartTooLargeError for an inverted pair, then
// *EndTooLargeError for an end past the length. Callers may match on the
// specific variant.
func FromBounds(start, end Bound, length uint) (Range, error) {
	var lo uint
	switch start.kind {
	case Included:
		lo = start.value
	case Excluded:
		if start.value == math.MaxUint {
			return Range{}, ErrStartOverflow
		}
		lo = start.value + 1
	case Unbounded:
		lo = 0
	}

	var hi uint
	switch end.kind {
	case Included:
		if end.value == math.MaxUint {
			return Range{}, ErrEndOverflow
		}
		hi = end.value + 1
	case Excluded:
		hi = end.value
	case Unbounded:
		hi = length
	}

	if lo > hi {
		return Range{}, &StartTooLargeError{Start: lo, End: hi}
	}
	if hi > length {
		return Range{}, &EndTooLargeError{End: hi, Len: length}
	}
	return Range{start: lo, end: hi}, nil
}
