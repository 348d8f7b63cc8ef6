package byteenc

import (
	"fmt"
	"strings"
)

// Order names a byte ordering.
type Order uint8

const (
	BigEndian Order = iota + 1
	LittleEndian
)

// ParseOrder accepts "big", "be", "big-endian", "little", "le" and
// "little-endian", case-insensitively, ignoring surrounding spaces.
func ParseOrder(s string) (Order, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "big", "be", "big-endian":
		return BigEndian, nil
	case "little", "le", "little-endian":
		return LittleEndian, nil
	}
	return 0, fmt.Errorf("unknown byte order %q", s)
}

func (o Order) String() string {
	switch o {
	case BigEndian:
		return "big-endian"
	case LittleEndian:
		return "little-endian"
	}
	return fmt.Sprintf("Order(%d)", uint8(o))
}

// Decode reads b[offset:offset+8] in order o.
func (o Order) Decode(b []byte, offset int) (uint64, error) {
	switch o {
	case BigEndian:
		return BigEndianToUint64(b, offset)
	case LittleEndian:
		return LittleEndianToUint64(b, offset)
	}
	return 0, fmt.Errorf("decode: invalid byte order %d", uint8(o))
}

// Encode writes v to dst[0:8] in order o. It panics on an invalid Order.
func (o Order) Encode(v uint64, dst []byte) {
	switch o {
	case BigEndian:
		Uint64ToBigEndian(v, dst)
	case LittleEndian:
		Uint64ToLittleEndian(v, dst)
	default:
		panic(fmt.Sprintf("encode: invalid byte order %d", uint8(o)))
	}
}
