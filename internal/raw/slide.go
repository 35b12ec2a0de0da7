package raw

import (
	"unsafe"

	"github.com/dshills/slide/internal/assert"
)

// Slide is the raw cursor over a borrowed buffer of T. It holds three
// positions anchored to the same buffer and keeps start <= cursor <= end at
// every observable point. Exhaustion (cursor == end) is just a value of that
// state, not a distinct state; the cursor may be rewound afterwards.
//
// A Slide borrows the buffer; it never owns or frees it. Copying a Slide
// copies the cursor state, not the buffer. Every method documents its
// precondition and trusts the caller to uphold it.
type Slide[T any] struct {
	start pos
	cur   pos
	end   pos
}

// sizeOf is the element stride of T.
func sizeOf[T any]() uintptr {
	var zero T
	return unsafe.Sizeof(zero)
}

// view materializes n elements starting at p as a slice.
func view[T any](p pos, n int) []T {
	return unsafe.Slice((*T)(p.ptr), n)
}

// Make builds a slide over data with the cursor at element offset off.
// Precondition: 0 <= off <= len(data).
func Make[T any](data []T, off int) Slide[T] {
	assert.True(0 <= off && off <= len(data), "cursor offset within buffer")
	size := sizeOf[T]()
	start := posAt(unsafe.Pointer(unsafe.SliceData(data)), size, 0)
	return Slide[T]{
		start: start,
		cur:   start.add(off, size),
		end:   start.add(len(data), size),
	}
}

// Lengths recomputes the length triple from the three positions.
func (s Slide[T]) Lengths() Lengths {
	size := sizeOf[T]()
	return makeLengths(
		s.end.offsetFrom(s.start, size),
		s.cur.offsetFrom(s.start, size),
		s.end.offsetFrom(s.cur, size),
	)
}

// Source returns the entire buffer, [start, end).
func (s Slide[T]) Source() []T {
	return view[T](s.start, s.Lengths().Source())
}

// Consumed returns the prefix before the cursor, [start, cursor).
func (s Slide[T]) Consumed() []T {
	return view[T](s.start, s.Lengths().Consumed())
}

// Remaining returns the suffix from the cursor on, [cursor, end).
func (s Slide[T]) Remaining() []T {
	return view[T](s.cur, s.Lengths().Remaining())
}

// Offset returns the cursor's element offset from the start.
func (s Slide[T]) Offset() int {
	return s.cur.offsetFrom(s.start, sizeOf[T]())
}

// SetOffset relocates the cursor to an absolute offset from the start.
// Precondition: 0 <= off <= Lengths().Source().
func (s *Slide[T]) SetOffset(off int) {
	assert.True(0 <= off && off <= s.Lengths().Source(), "cursor offset within buffer")
	s.cur = s.start.add(off, sizeOf[T]())
}

// Advance moves the cursor right by n elements and returns the newly
// consumed subslice. Precondition: 0 <= n <= Lengths().Remaining().
func (s *Slide[T]) Advance(n int) []T {
	assert.True(0 <= n && n <= s.Lengths().Remaining(), "advance within remaining")
	prev := s.cur
	s.cur = s.cur.add(n, sizeOf[T]())
	return view[T](prev, n)
}

// Rewind moves the cursor left by n elements and returns the subslice that
// is now remaining again. Precondition: 0 <= n <= Lengths().Consumed().
func (s *Slide[T]) Rewind(n int) []T {
	assert.True(0 <= n && n <= s.Lengths().Consumed(), "rewind within consumed")
	s.cur = s.cur.sub(n, sizeOf[T]())
	return view[T](s.cur, n)
}

// Peek returns the next n elements without moving the cursor.
// Precondition: 0 <= n <= Lengths().Remaining().
func (s Slide[T]) Peek(n int) []T {
	assert.True(0 <= n && n <= s.Lengths().Remaining(), "peek within remaining")
	return view[T](s.cur, n)
}

// PeekBack returns the n elements before the cursor without moving it.
// Precondition: 0 <= n <= Lengths().Consumed().
func (s Slide[T]) PeekBack(n int) []T {
	assert.True(0 <= n && n <= s.Lengths().Consumed(), "peek back within consumed")
	return view[T](s.cur.sub(n, sizeOf[T]()), n)
}
