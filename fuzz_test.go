package slide

import (
	"bytes"
	"testing"
)

// FuzzCursorWalk drives a cursor with an arbitrary script of operations and
// checks the bookkeeping after every step: the three views stay consistent,
// failed operations never move the cursor, and the consumed and remaining
// views always reassemble the source.
func FuzzCursorWalk(f *testing.F) {
	f.Add([]byte("hello world"), []byte{0, 2, 1, 1, 3, 0})
	f.Add([]byte{1, 2, 3, 4, 5}, []byte{0, 10, 1, 10, 2, 3})
	f.Add([]byte{}, []byte{0, 1, 1, 1})

	f.Fuzz(func(t *testing.T, buf []byte, script []byte) {
		s := New(buf)

		for i := 0; i+1 < len(script); i += 2 {
			op, n := script[i]%4, int(script[i+1])
			before := s.Offset()

			var err error
			switch op {
			case 0:
				_, err = s.Advance(n)
			case 1:
				_, err = s.Rewind(n)
			case 2:
				_, err = s.Peek(n % (s.RemainingLen() + 1))
			case 3:
				err = s.SetOffset(n)
			}

			if err != nil && s.Offset() != before {
				t.Fatalf("op %d failed but moved the cursor from %d to %d", op, before, s.Offset())
			}
			if op == 2 && s.Offset() != before {
				t.Fatalf("peek moved the cursor from %d to %d", before, s.Offset())
			}

			if s.ConsumedLen()+s.RemainingLen() != s.Len() {
				t.Fatalf("length triple out of sync: %d + %d != %d",
					s.ConsumedLen(), s.RemainingLen(), s.Len())
			}
			if got := append(append([]byte{}, s.Consumed()...), s.Remaining()...); !bytes.Equal(got, buf) {
				t.Fatalf("views do not reassemble the source: %q != %q", got, buf)
			}
		}
	})
}
