// Package bounds provides a verified half-open range type and the conversion
// from abstract range bounds to concrete offsets.
//
// The package provides:
//
//   - Range: a [start, end) pair that statically guarantees start <= end
//   - Bound: one edge of a range (included, excluded, or unbounded)
//   - FromBounds: resolution of a bound pair against a buffer length, with a
//     distinct error value for each failure mode
//   - Cut and CutString: indexing a buffer with a validated range
//
// Basic usage:
//
//	// Resolve "everything after index 2" against a 5-element buffer.
//	r, err := bounds.FromBounds(bounds.Exclude(2), bounds.Unbound(), 5)
//	if err != nil {
//	    // err is one of the package's inspectable error values
//	}
//	sub := bounds.Cut(buf, r) // buf[3:5]
//
// Error handling:
//
// Resolution failures are ordinary error values, never panics. Overflow of
// either bound is reported before the bound comparison, and an inverted pair
// is reported before the length check, so callers matching on a specific
// error variant see a deterministic precedence. Sentinel errors are matched
// with errors.Is; fielded errors with errors.As.
package bounds
