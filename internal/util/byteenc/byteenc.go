package byteenc

import (
	"encoding/binary"
	"errors"
	"fmt"
)

// Uint64Size is the width in bytes of every window handled by this package.
const Uint64Size = 8

// ErrOutOfRange is matched by every error returned from a bounds-checked
// decode.
var ErrOutOfRange = errors.New("byteenc: window out of range")

// RangeError describes a decode window that does not fit in its source.
type RangeError struct {
	Offset int // requested start of the window
	Width  int // window width in bytes
	Length int // length of the source
}

func (e *RangeError) Error() string {
	return fmt.Sprintf("byteenc: %d-byte window at offset %d out of range for length %d",
		e.Width, e.Offset, e.Length)
}

// Is reports whether target is ErrOutOfRange.
func (e *RangeError) Is(target error) bool { return target == ErrOutOfRange }

// checkWindow validates b[offset:offset+Uint64Size] without overflowing when
// offset is close to the maximum int.
func checkWindow(b []byte, offset int) error {
	if offset < 0 || offset > len(b)-Uint64Size {
		return &RangeError{Offset: offset, Width: Uint64Size, Length: len(b)}
	}
	return nil
}

// BigEndianToUint64 decodes b[offset:offset+8] with b[offset] as the most
// significant byte.
func BigEndianToUint64(b []byte, offset int) (uint64, error) {
	if err := checkWindow(b, offset); err != nil {
		return 0, err
	}
	return binary.BigEndian.Uint64(b[offset:]), nil
}

// BigEndianUint64 decodes the first 8 bytes of b as big-endian. It panics if
// b is shorter than 8 bytes.
func BigEndianUint64(b []byte) uint64 {
	return binary.BigEndian.Uint64(b)
}

// Uint64ToBigEndian writes v to dst[0:8], most significant byte first.
func Uint64ToBigEndian(v uint64, dst []byte) {
	binary.BigEndian.PutUint64(dst, v)
}

// LittleEndianToUint64 decodes b[offset:offset+8] with b[offset] as the least
// significant byte.
func LittleEndianToUint64(b []byte, offset int) (uint64, error) {
	if err := checkWindow(b, offset); err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint64(b[offset:]), nil
}

// LittleEndianUint64 decodes the first 8 bytes of b as little-endian. It
// panics if b is shorter than 8 bytes.
func LittleEndianUint64(b []byte) uint64 {
	return binary.LittleEndian.Uint64(b)
}

// Uint64ToLittleEndian writes v to dst[0:8], least significant byte first.
func Uint64ToLittleEndian(v uint64, dst []byte) {
	binary.LittleEndian.PutUint64(dst, v)
}
