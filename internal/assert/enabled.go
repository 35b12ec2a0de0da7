//go:build slidedebug

package assert

// Enabled reports whether invariant checks are compiled in.
const Enabled = true
