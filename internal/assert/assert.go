// Package assert provides invariant checks for the slide internals.
//
// In a normal build every check compiles to nothing: the library documents
// its preconditions as caller contracts and assumes them. Building with
// -tags slidedebug turns each check into an active verification that panics
// with a descriptive message, which is how contract misuse is caught during
// development.
package assert

// True panics with msg when cond is false in a slidedebug build. In release
// builds the call is a no-op that the compiler removes.
func True(cond bool, msg string) {
	if Enabled && !cond {
		panic("slide: invariant violated: " + msg)
	}
}
