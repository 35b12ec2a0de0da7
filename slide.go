package slide

import (
	"fmt"

	"github.com/dshills/slide/bounds"
	"github.com/dshills/slide/internal/raw"
)

// Slide is a cursor over a borrowed []T. It tracks the source buffer, the
// consumed prefix, and the remaining suffix, keeping
// ConsumedLen() + RemainingLen() == Len() after every operation.
//
// Slide is a value type: copying one duplicates the cursor state while both
// copies keep walking the same buffer.
type Slide[T any] struct {
	raw raw.Slide[T]
}

// New returns a slide over data with the cursor at the start.
func New[T any](data []T) Slide[T] {
	return Slide[T]{raw: raw.Make(data, 0)}
}

// NewAt returns a slide over data with the cursor at the given offset. The
// offset is validated through bounds resolution; on failure the error
// matches ErrOffsetOutOfRange with errors.Is and carries the bounds variant
// for errors.As.
func NewAt[T any](data []T, offset int) (Slide[T], error) {
	if offset < 0 {
		return Slide[T]{}, fmt.Errorf("%w: %d is negative", ErrOffsetOutOfRange, offset)
	}
	if _, err := bounds.FromBounds(bounds.Include(uint(offset)), bounds.Unbound(), uint(len(data))); err != nil {
		return Slide[T]{}, fmt.Errorf("%w: %w", ErrOffsetOutOfRange, err)
	}
	return Slide[T]{raw: raw.Make(data, offset)}, nil
}

// NewAtUnchecked is like NewAt without validation.
// Precondition: 0 <= offset <= len(data).
func NewAtUnchecked[T any](data []T, offset int) Slide[T] {
	return Slide[T]{raw: raw.Make(data, offset)}
}

// Source returns the entire buffer.
func (s Slide[T]) Source() []T { return s.raw.Source() }

// Consumed returns the prefix before the cursor.
func (s Slide[T]) Consumed() []T { return s.raw.Consumed() }

// Remaining returns the suffix from the cursor on.
func (s Slide[T]) Remaining() []T { return s.raw.Remaining() }

// Offset returns the cursor's element offset from the start.
func (s Slide[T]) Offset() int { return s.raw.Offset() }

// Len returns the length of the entire buffer.
func (s Slide[T]) Len() int { return s.raw.Lengths().Source() }

// ConsumedLen returns the length of the consumed prefix.
func (s Slide[T]) ConsumedLen() int { return s.raw.Lengths().Consumed() }

// RemainingLen returns the length of the remaining suffix.
func (s Slide[T]) RemainingLen() int { return s.raw.Lengths().Remaining() }

// Exhausted returns true when nothing remains. An exhausted slide is still
// usable; rewinding makes elements available again.
func (s Slide[T]) Exhausted() bool { return s.raw.Lengths().Remaining() == 0 }

// SetOffset relocates the cursor to an absolute offset from the start. On
// failure the cursor does not move.
func (s *Slide[T]) SetOffset(offset int) error {
	if offset < 0 || offset > s.Len() {
		return fmt.Errorf("%w: %d not in [0, %d]", ErrOffsetOutOfRange, offset, s.Len())
	}
	s.raw.SetOffset(offset)
	return nil
}

// MustSetOffset is like SetOffset but panics on failure.
func (s *Slide[T]) MustSetOffset(offset int) {
	if err := s.SetOffset(offset); err != nil {
		panic(err)
	}
}

// SetOffsetUnchecked is like SetOffset without validation.
// Precondition: 0 <= offset <= Len().
func (s *Slide[T]) SetOffsetUnchecked(offset int) {
	s.raw.SetOffset(offset)
}

// Advance moves the cursor right by n elements and returns the newly
// consumed subslice. On failure the cursor does not move.
func (s *Slide[T]) Advance(n int) ([]T, error) {
	if n < 0 || n > s.RemainingLen() {
		return nil, fmt.Errorf("%w: %d of %d", ErrAdvancePastEnd, n, s.RemainingLen())
	}
	return s.raw.Advance(n), nil
}

// MustAdvance is like Advance but panics on failure.
func (s *Slide[T]) MustAdvance(n int) []T {
	out, err := s.Advance(n)
	if err != nil {
		panic(err)
	}
	return out
}

// AdvanceUnchecked is like Advance without validation.
// Precondition: 0 <= n <= RemainingLen().
func (s *Slide[T]) AdvanceUnchecked(n int) []T {
	return s.raw.Advance(n)
}

// Rewind moves the cursor left by n elements and returns the subslice that
// is now remaining again. On failure the cursor does not move.
func (s *Slide[T]) Rewind(n int) ([]T, error) {
	if n < 0 || n > s.ConsumedLen() {
		return nil, fmt.Errorf("%w: %d of %d", ErrRewindPastStart, n, s.ConsumedLen())
	}
	return s.raw.Rewind(n), nil
}

// MustRewind is like Rewind but panics on failure.
func (s *Slide[T]) MustRewind(n int) []T {
	out, err := s.Rewind(n)
	if err != nil {
		panic(err)
	}
	return out
}

// RewindUnchecked is like Rewind without validation.
// Precondition: 0 <= n <= ConsumedLen().
func (s *Slide[T]) RewindUnchecked(n int) []T {
	return s.raw.Rewind(n)
}

// Peek returns the next n elements without moving the cursor.
func (s Slide[T]) Peek(n int) ([]T, error) {
	if n < 0 || n > s.RemainingLen() {
		return nil, fmt.Errorf("%w: %d of %d", ErrAdvancePastEnd, n, s.RemainingLen())
	}
	return s.raw.Peek(n), nil
}

// PeekBack returns the n elements before the cursor without moving it.
func (s Slide[T]) PeekBack(n int) ([]T, error) {
	if n < 0 || n > s.ConsumedLen() {
		return nil, fmt.Errorf("%w: %d of %d", ErrRewindPastStart, n, s.ConsumedLen())
	}
	return s.raw.PeekBack(n), nil
}

// SourceRange returns the entire buffer's offsets, [0, Len()).
func (s Slide[T]) SourceRange() bounds.Range {
	return bounds.NewUnchecked(0, uint(s.Len()))
}

// ConsumedRange returns the consumed prefix's offsets, [0, Offset()).
func (s Slide[T]) ConsumedRange() bounds.Range {
	return bounds.NewUnchecked(0, uint(s.Offset()))
}

// RemainingRange returns the remaining suffix's offsets, [Offset(), Len()).
func (s Slide[T]) RemainingRange() bounds.Range {
	return bounds.NewUnchecked(uint(s.Offset()), uint(s.Len()))
}
