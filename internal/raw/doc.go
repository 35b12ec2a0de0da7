// Package raw implements the slide cursor core: the position representation,
// the derived length bookkeeping, and the raw cursor itself.
//
// All unsafe pointer work in the module lives here, so that the public
// packages never need to import unsafe directly. Every operation in this
// package trusts its documented precondition; the public slide package is
// responsible for validating caller input before reaching this layer.
// Building with -tags slidedebug re-verifies every precondition and panics
// on violation.
package raw
