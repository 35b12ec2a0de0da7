package bounds

import "fmt"

// BoundKind discriminates the three bound shapes. The set is closed;
// FromBounds switches over it exhaustively.
type BoundKind uint8

const (
	// Included bounds contain their value.
	Included BoundKind = iota
	// Excluded bounds do not contain their value.
	Excluded
	// Unbounded bounds impose no constraint on their edge.
	Unbounded
)

// String returns the kind's name.
func (k BoundKind) String() string {
	switch k {
	case Included:
		return "included"
	case Excluded:
		return "excluded"
	case Unbounded:
		return "unbounded"
	default:
		return fmt.Sprintf("BoundKind(%d)", uint8(k))
	}
}

// Bound describes one edge of a range.
//
// An included end bound is resolved best-effort: Include(v) as an end becomes
// the exclusive end v+1, which cannot distinguish an inclusive range that has
// already been fully consumed from one that has not. Callers that track
// inclusive-range exhaustion must do so themselves.
type Bound struct {
	kind  BoundKind
	value uint
}

// Include returns a bound that contains v.
func Include(v uint) Bound { return Bound{kind: Included, value: v} }

// Exclude returns a bound that excludes v.
func Exclude(v uint) Bound { return Bound{kind: Excluded, value: v} }

// Unbound returns a bound with no constraint.
func Unbound() Bound { return Bound{kind: Unbounded} }

// Kind returns the bound's shape.
func (b Bound) Kind() BoundKind { return b.kind }

// Value returns the bound's value. Unbounded bounds carry no value and
// return zero.
func (b Bound) Value() uint { return b.value }

// String returns a human-readable representation of the bound.
func (b Bound) String() string {
	if b.kind == Unbounded {
		return "unbounded"
	}
	return fmt.Sprintf("%s(%d)", b.kind, b.value)
}
