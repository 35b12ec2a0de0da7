// Package slide provides cursors over borrowed buffers. A slide walks a
// slice or string while tracking three always-consistent views: the whole
// source, the consumed prefix, and the remaining suffix. The views share the
// source's backing memory; nothing is copied and nothing is allocated.
//
// The package provides:
//
//   - Slide: a generic cursor over a []T, including zero-sized element types
//   - Str: a cursor over a string, with rune and grapheme-cluster stepping
//   - Checked, panicking, and unchecked variants of every mutation
//   - Conversion between cursor state and bounds.Range values
//
// Basic usage:
//
//	s := slide.New([]byte("hello world"))
//
//	head, _ := s.Advance(5) // consumed "hello", remaining " world"
//	s.MustRewind(2)         // consumed "hel", remaining "lo world"
//
//	next, _ := s.Peek(2)    // "lo", cursor unchanged
//
// Failure semantics:
//
// Checked mutators return a sentinel error and leave the cursor untouched on
// failure; either the whole operation succeeds or nothing changes. Must*
// wrappers panic with the checked path's error. *Unchecked variants skip
// validation entirely and trust the caller's stated precondition — misuse is
// a contract violation, caught as a panic only when building with
// -tags slidedebug.
//
// A slide borrows its buffer and may be copied freely; copying duplicates
// the cursor state, not the buffer. Thread safety is inherited from the
// buffer: cursors over an immutable buffer may be used concurrently,
// cursors over a mutating buffer may not.
package slide
