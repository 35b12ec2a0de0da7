package bounds

import (
	"fmt"

	"github.com/dshills/slide/internal/assert"
)

// Range represents a half-open range [start, end) with the invariant
// start <= end. The fields are unexported so the invariant can only be
// established through a constructor; every accessor re-checks it in
// slidedebug builds, so the invariant holds at every access, not only at
// construction.
type Range struct {
	start uint
	end   uint
}

// TryNew creates a Range from start and end offsets. It returns a
// *StartTooLargeError when start > end and never panics.
func TryNew(start, end uint) (Range, error) {
	if start > end {
		return Range{}, &StartTooLargeError{Start: start, End: end}
	}
	return Range{start: start, end: end}, nil
}

// New is like TryNew but panics when start > end.
func New(start, end uint) Range {
	r, err := TryNew(start, end)
	if err != nil {
		panic(err)
	}
	return r
}

// NewUnchecked creates a Range without validating. The caller certifies
// start <= end; slidedebug builds re-check the certificate.
func NewUnchecked(start, end uint) Range {
	assert.True(start <= end, "range start <= end")
	return Range{start: start, end: end}
}

// Start returns the inclusive start offset.
func (r Range) Start() uint {
	assert.True(r.start <= r.end, "range start <= end")
	return r.start
}

// End returns the exclusive end offset.
func (r Range) End() uint {
	assert.True(r.start <= r.end, "range start <= end")
	return r.end
}

// Len returns the length of the range.
func (r Range) Len() uint {
	assert.True(r.start <= r.end, "range start <= end")
	return r.end - r.start
}

// IsEmpty returns true if the range has zero length.
func (r Range) IsEmpty() bool {
	return r.Len() == 0
}

// Contains returns true if the given offset is within the range.
func (r Range) Contains(offset uint) bool {
	return offset >= r.Start() && offset < r.End()
}

// ContainsRange returns true if the given range is entirely within this range.
func (r Range) ContainsRange(other Range) bool {
	return other.Start() >= r.Start() && other.End() <= r.End()
}

// Overlaps returns true if this range overlaps with another range.
func (r Range) Overlaps(other Range) bool {
	return r.Start() < other.End() && other.Start() < r.End()
}

// Intersect returns the intersection of two ranges. If they do not overlap
// the result is an empty range with unspecified position.
func (r Range) Intersect(other Range) Range {
	if r.start < other.start {
		r.start = other.start
	}
	if r.end > other.end {
		r.end = other.end
	}
	if r.end < r.start {
		r.end = r.start
	}
	return r
}

// Union returns the smallest range that contains both ranges.
func (r Range) Union(other Range) Range {
	if other.start < r.start {
		r.start = other.start
	}
	if other.end > r.end {
		r.end = other.end
	}
	return r
}

// Bounds returns the range as an (inclusive start, exclusive end) bound
// pair. Resolving the pair with FromBounds against any length >= End yields
// the same range back.
func (r Range) Bounds() (start, end Bound) {
	return Include(r.Start()), Exclude(r.End())
}

// SetUnchecked overwrites both offsets without validating. This is the raw
// escape hatch for callers that adjust a range in place; they must restore
// start <= end before calling any other method.
func (r *Range) SetUnchecked(start, end uint) {
	r.start = start
	r.end = end
}

// String returns a human-readable representation of the range.
func (r Range) String() string {
	return fmt.Sprintf("[%d:%d)", r.start, r.end)
}

// Cut indexes buf with r, returning buf[r.Start():r.End()]. The range
// invariant guarantees the pair is well ordered, so only the end needs to be
// inside buf; like any slice expression, an end past len(buf) panics.
func Cut[T any](buf []T, r Range) []T {
	return buf[r.Start():r.End()]
}

// CutString indexes s with r, returning s[r.Start():r.End()].
func CutString(s string, r Range) string {
	return s[r.Start():r.End()]
}
