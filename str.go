package slide

import (
	"unicode/utf8"
	"unsafe"

	"github.com/dshills/slide/bounds"
	"github.com/rivo/uniseg"
)

// Str is a cursor over a borrowed string. It behaves like a Slide[byte]
// whose views are strings sharing the source's backing memory, and adds
// UTF-8 aware stepping. Byte-granularity operations may leave the cursor in
// the middle of a rune; IsBoundary reports whether they have.
type Str struct {
	b Slide[byte]
}

// NewStr returns a cursor over s with the cursor at the start.
func NewStr(s string) Str {
	return Str{b: New(stringBytes(s))}
}

// NewStrAt returns a cursor over s at the given byte offset, validated like
// NewAt.
func NewStrAt(s string, offset int) (Str, error) {
	b, err := NewAt(stringBytes(s), offset)
	if err != nil {
		return Str{}, err
	}
	return Str{b: b}, nil
}

// NewStrAtUnchecked is like NewStrAt without validation.
// Precondition: 0 <= offset <= len(s).
func NewStrAtUnchecked(s string, offset int) Str {
	return Str{b: NewAtUnchecked(stringBytes(s), offset)}
}

// stringBytes reinterprets s as a byte slice without copying. The result
// must never be written through.
func stringBytes(s string) []byte {
	return unsafe.Slice(unsafe.StringData(s), len(s))
}

// bytesString reinterprets b as a string without copying.
func bytesString(b []byte) string {
	return unsafe.String(unsafe.SliceData(b), len(b))
}

// Source returns the entire string.
func (s Str) Source() string { return bytesString(s.b.Source()) }

// Consumed returns the prefix before the cursor.
func (s Str) Consumed() string { return bytesString(s.b.Consumed()) }

// Remaining returns the suffix from the cursor on.
func (s Str) Remaining() string { return bytesString(s.b.Remaining()) }

// Offset returns the cursor's byte offset from the start.
func (s Str) Offset() int { return s.b.Offset() }

// Len returns the length of the entire string.
func (s Str) Len() int { return s.b.Len() }

// ConsumedLen returns the length of the consumed prefix.
func (s Str) ConsumedLen() int { return s.b.ConsumedLen() }

// RemainingLen returns the length of the remaining suffix.
func (s Str) RemainingLen() int { return s.b.RemainingLen() }

// Exhausted returns true when nothing remains.
func (s Str) Exhausted() bool { return s.b.Exhausted() }

// SetOffset relocates the cursor to an absolute byte offset. On failure the
// cursor does not move.
func (s *Str) SetOffset(offset int) error { return s.b.SetOffset(offset) }

// MustSetOffset is like SetOffset but panics on failure.
func (s *Str) MustSetOffset(offset int) { s.b.MustSetOffset(offset) }

// SetOffsetUnchecked is like SetOffset without validation.
// Precondition: 0 <= offset <= Len().
func (s *Str) SetOffsetUnchecked(offset int) { s.b.SetOffsetUnchecked(offset) }

// Advance moves the cursor right by n bytes and returns the newly consumed
// substring. On failure the cursor does not move.
func (s *Str) Advance(n int) (string, error) {
	out, err := s.b.Advance(n)
	return bytesString(out), err
}

// MustAdvance is like Advance but panics on failure.
func (s *Str) MustAdvance(n int) string { return bytesString(s.b.MustAdvance(n)) }

// AdvanceUnchecked is like Advance without validation.
// Precondition: 0 <= n <= RemainingLen().
func (s *Str) AdvanceUnchecked(n int) string { return bytesString(s.b.AdvanceUnchecked(n)) }

// Rewind moves the cursor left by n bytes and returns the substring that is
// now remaining again. On failure the cursor does not move.
func (s *Str) Rewind(n int) (string, error) {
	out, err := s.b.Rewind(n)
	return bytesString(out), err
}

// MustRewind is like Rewind but panics on failure.
func (s *Str) MustRewind(n int) string { return bytesString(s.b.MustRewind(n)) }

// RewindUnchecked is like Rewind without validation.
// Precondition: 0 <= n <= ConsumedLen().
func (s *Str) RewindUnchecked(n int) string { return bytesString(s.b.RewindUnchecked(n)) }

// Peek returns the next n bytes without moving the cursor.
func (s Str) Peek(n int) (string, error) {
	out, err := s.b.Peek(n)
	return bytesString(out), err
}

// PeekBack returns the n bytes before the cursor without moving it.
func (s Str) PeekBack(n int) (string, error) {
	out, err := s.b.PeekBack(n)
	return bytesString(out), err
}

// SourceRange returns the entire string's byte offsets.
func (s Str) SourceRange() bounds.Range { return s.b.SourceRange() }

// ConsumedRange returns the consumed prefix's byte offsets.
func (s Str) ConsumedRange() bounds.Range { return s.b.ConsumedRange() }

// RemainingRange returns the remaining suffix's byte offsets.
func (s Str) RemainingRange() bounds.Range { return s.b.RemainingRange() }

// IsBoundary reports whether the cursor sits on a UTF-8 sequence boundary.
// The start and end of the string are always boundaries.
func (s Str) IsBoundary() bool {
	rest := s.b.Remaining()
	if len(rest) == 0 {
		return true
	}
	return utf8.RuneStart(rest[0])
}

// AdvanceRune decodes and consumes the rune at the cursor. It reports false
// and leaves the cursor in place when nothing remains. Invalid UTF-8 yields
// utf8.RuneError over one byte, matching the standard decoder.
func (s *Str) AdvanceRune() (r rune, size int, ok bool) {
	rest := s.Remaining()
	if len(rest) == 0 {
		return 0, 0, false
	}
	r, size = utf8.DecodeRuneInString(rest)
	s.b.AdvanceUnchecked(size)
	return r, size, true
}

// RewindRune un-consumes the rune immediately before the cursor. It reports
// false and leaves the cursor in place when nothing has been consumed.
func (s *Str) RewindRune() (r rune, size int, ok bool) {
	before := s.Consumed()
	if len(before) == 0 {
		return 0, 0, false
	}
	r, size = utf8.DecodeLastRuneInString(before)
	s.b.RewindUnchecked(size)
	return r, size, true
}

// PeekRune decodes the rune at the cursor without moving it.
func (s Str) PeekRune() (r rune, size int, ok bool) {
	rest := s.Remaining()
	if len(rest) == 0 {
		return 0, 0, false
	}
	r, size = utf8.DecodeRuneInString(rest)
	return r, size, true
}

// AdvanceGrapheme consumes the grapheme cluster at the cursor and returns
// it. It reports false and leaves the cursor in place when nothing remains.
func (s *Str) AdvanceGrapheme() (cluster string, ok bool) {
	cluster, ok = s.PeekGrapheme()
	if ok {
		s.b.AdvanceUnchecked(len(cluster))
	}
	return cluster, ok
}

// PeekGrapheme returns the grapheme cluster at the cursor without moving it.
func (s Str) PeekGrapheme() (cluster string, ok bool) {
	rest := s.Remaining()
	if len(rest) == 0 {
		return "", false
	}
	cluster, _, _, _ = uniseg.FirstGraphemeClusterInString(rest, -1)
	return cluster, true
}
