// Package arrayutil duplicates fixed-width numeric slices.
//
// Clone always allocates. CloneInto writes into a caller-supplied buffer when
// its length matches the source exactly, and reports whether it did, so hot
// loops (per-message chain keys, per-round cipher state) can keep a single
// allocation alive across calls.
//
// Nothing in this package retains a reference to its arguments after return.
// A buffer passed to CloneInto must not be shared between goroutines while the
// call is in progress.
package arrayutil
