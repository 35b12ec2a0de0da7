package bounds

import (
	"errors"
	"math"
	"testing"
)

func boundFor(kind uint8, value uint) Bound {
	switch kind % 3 {
	case 0:
		return Include(value)
	case 1:
		return Exclude(value)
	default:
		return Unbound()
	}
}

// FuzzFromBounds checks that resolution either fails with one of the four
// documented errors or yields a range honoring both invariants.
func FuzzFromBounds(f *testing.F) {
	f.Add(uint8(0), uint64(0), uint8(2), uint64(0), uint64(5))
	f.Add(uint8(1), uint64(2), uint8(2), uint64(0), uint64(5))
	f.Add(uint8(0), uint64(3), uint8(0), uint64(math.MaxUint64), uint64(5))
	f.Add(uint8(1), uint64(math.MaxUint64), uint8(2), uint64(0), uint64(5))
	f.Add(uint8(0), uint64(4), uint8(1), uint64(2), uint64(1))

	f.Fuzz(func(t *testing.T, startKind uint8, startVal uint64, endKind uint8, endVal uint64, length uint64) {
		start := boundFor(startKind, uint(startVal))
		end := boundFor(endKind, uint(endVal))

		r, err := FromBounds(start, end, uint(length))
		if err != nil {
			var startTooLarge *StartTooLargeError
			var endTooLarge *EndTooLargeError
			switch {
			case errors.Is(err, ErrStartOverflow), errors.Is(err, ErrEndOverflow):
			case errors.As(err, &startTooLarge), errors.As(err, &endTooLarge):
			default:
				t.Fatalf("unexpected error: %v", err)
			}
			return
		}

		if r.Start() > r.End() {
			t.Errorf("resolved range %s inverts the invariant", r)
		}
		if r.End() > uint(length) {
			t.Errorf("resolved range %s exceeds length %d", r, length)
		}

		// A successful resolution round-trips through its bound pair.
		rs, re := r.Bounds()
		again, err := FromBounds(rs, re, uint(length))
		if err != nil {
			t.Fatalf("re-resolving %s failed: %v", r, err)
		}
		if again != r {
			t.Errorf("round trip of %s yielded %s", r, again)
		}
	})
}
