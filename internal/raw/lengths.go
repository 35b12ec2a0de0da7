package raw

import "github.com/dshills/slide/internal/assert"

// Lengths is the derived length bookkeeping of a slide: the full source
// length, the consumed prefix length, and the remaining suffix length, with
// consumed + remaining == source.
//
// A Lengths value is recomputed from the slide's three positions on every
// use and never stored, so the three values cannot drift apart. The
// invariant is re-checked on every accessor in slidedebug builds, not only
// at construction.
type Lengths struct {
	source    int
	consumed  int
	remaining int
}

func makeLengths(source, consumed, remaining int) Lengths {
	l := Lengths{source: source, consumed: consumed, remaining: remaining}
	l.check()
	return l
}

func (l Lengths) check() {
	assert.True(l.consumed+l.remaining == l.source, "consumed + remaining == source")
	assert.True(l.source-l.consumed == l.remaining, "source - consumed == remaining")
	assert.True(l.source-l.remaining == l.consumed, "source - remaining == consumed")
}

// Source returns the full buffer length.
func (l Lengths) Source() int {
	l.check()
	return l.source
}

// Consumed returns the length of the prefix before the cursor.
func (l Lengths) Consumed() int {
	l.check()
	return l.consumed
}

// Remaining returns the length of the suffix from the cursor on.
func (l Lengths) Remaining() int {
	l.check()
	return l.remaining
}
