// Package memzero wipes sensitive buffers.
package memzero

import (
	"runtime"

	"cryptoutil/internal/util/arrayutil"
)

// Zero overwrites every element of b with its zero value.
//
//go:noinline
func Zero[T arrayutil.Element](b []T) {
	if len(b) == 0 {
		return
	}
	clear(b)
	// Keep b live until after the write so it is not elided.
	runtime.KeepAlive(&b)
}
