package bounds

import (
	"errors"
	"testing"
)

func TestTryNew(t *testing.T) {
	r, err := TryNew(2, 5)
	if err != nil {
		t.Fatalf("TryNew(2, 5) failed: %v", err)
	}

	if r.Start() != 2 {
		t.Errorf("expected start 2, got %d", r.Start())
	}
	if r.End() != 5 {
		t.Errorf("expected end 5, got %d", r.End())
	}
	if r.Len() != 3 {
		t.Errorf("expected length 3, got %d", r.Len())
	}
}

func TestTryNewEmpty(t *testing.T) {
	r, err := TryNew(4, 4)
	if err != nil {
		t.Fatalf("TryNew(4, 4) failed: %v", err)
	}

	if !r.IsEmpty() {
		t.Error("expected empty range")
	}
	if r.Len() != 0 {
		t.Errorf("expected length 0, got %d", r.Len())
	}
}

func TestTryNewInverted(t *testing.T) {
	_, err := TryNew(5, 2)
	if err == nil {
		t.Fatal("expected error for inverted range")
	}

	var tooLarge *StartTooLargeError
	if !errors.As(err, &tooLarge) {
		t.Fatalf("expected *StartTooLargeError, got %T", err)
	}
	if tooLarge.Start != 5 || tooLarge.End != 2 {
		t.Errorf("expected error fields {5, 2}, got {%d, %d}", tooLarge.Start, tooLarge.End)
	}
}

func TestNewPanicsOnInvertedRange(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("expected New(3, 1) to panic")
		}
	}()
	New(3, 1)
}

func TestRangeContains(t *testing.T) {
	r := New(2, 5)

	tests := []struct {
		offset uint
		want   bool
	}{
		{1, false},
		{2, true},
		{4, true},
		{5, false}, // end is exclusive
	}

	for _, tt := range tests {
		if got := r.Contains(tt.offset); got != tt.want {
			t.Errorf("Contains(%d) = %v, want %v", tt.offset, got, tt.want)
		}
	}
}

func TestRangeContainsRange(t *testing.T) {
	r := New(2, 8)

	if !r.ContainsRange(New(2, 8)) {
		t.Error("range should contain itself")
	}
	if !r.ContainsRange(New(3, 5)) {
		t.Error("range should contain [3:5)")
	}
	if r.ContainsRange(New(1, 5)) {
		t.Error("range should not contain [1:5)")
	}
	if r.ContainsRange(New(5, 9)) {
		t.Error("range should not contain [5:9)")
	}
}

func TestRangeOverlaps(t *testing.T) {
	r := New(2, 5)

	if !r.Overlaps(New(4, 8)) {
		t.Error("[2:5) should overlap [4:8)")
	}
	if r.Overlaps(New(5, 8)) {
		t.Error("[2:5) should not overlap [5:8)")
	}
	if r.Overlaps(New(0, 2)) {
		t.Error("[2:5) should not overlap [0:2)")
	}
}

func TestRangeIntersect(t *testing.T) {
	got := New(2, 6).Intersect(New(4, 9))
	if got.Start() != 4 || got.End() != 6 {
		t.Errorf("expected [4:6), got %s", got)
	}

	disjoint := New(2, 4).Intersect(New(6, 9))
	if !disjoint.IsEmpty() {
		t.Errorf("expected empty intersection, got %s", disjoint)
	}
}

func TestRangeUnion(t *testing.T) {
	got := New(2, 4).Union(New(6, 9))
	if got.Start() != 2 || got.End() != 9 {
		t.Errorf("expected [2:9), got %s", got)
	}
}

func TestRangeBoundsRoundTrip(t *testing.T) {
	ranges := []Range{New(0, 0), New(0, 5), New(2, 5), New(5, 5)}

	for _, r := range ranges {
		start, end := r.Bounds()
		got, err := FromBounds(start, end, r.End())
		if err != nil {
			t.Fatalf("re-resolving %s failed: %v", r, err)
		}
		if got != r {
			t.Errorf("round trip of %s yielded %s", r, got)
		}
	}
}

func TestRangeString(t *testing.T) {
	if got := New(2, 5).String(); got != "[2:5)" {
		t.Errorf("expected [2:5), got %q", got)
	}
}

func TestRangeSetUnchecked(t *testing.T) {
	r := New(1, 2)
	r.SetUnchecked(3, 7)

	if r.Start() != 3 || r.End() != 7 {
		t.Errorf("expected [3:7), got %s", r)
	}
}

func TestCut(t *testing.T) {
	buf := []int{10, 20, 30, 40, 50}

	got := Cut(buf, New(1, 4))
	if len(got) != 3 || got[0] != 20 || got[2] != 40 {
		t.Errorf("expected [20 30 40], got %v", got)
	}

	if len(Cut(buf, New(2, 2))) != 0 {
		t.Error("expected empty cut")
	}
}

func TestCutString(t *testing.T) {
	if got := CutString("hello world", New(6, 11)); got != "world" {
		t.Errorf("expected %q, got %q", "world", got)
	}
}
