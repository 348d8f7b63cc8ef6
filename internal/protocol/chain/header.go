package chain

import (
	"errors"
	"fmt"

	"cryptoutil/internal/util/byteenc"
)

// HeaderSize is the encoded size of a Header.
const HeaderSize = 2 * byteenc.Uint64Size

// ErrShortHeader is returned when an encoded header is truncated.
var ErrShortHeader = errors.New("chain: short header")

// Header is sent alongside every ciphertext.
type Header struct {
	Epoch uint64
	Index uint64
}

// AppendBinary appends the encoded header to b.
func (h Header) AppendBinary(b []byte) ([]byte, error) {
	var buf [HeaderSize]byte
	byteenc.Uint64ToBigEndian(h.Epoch, buf[0:])
	byteenc.Uint64ToBigEndian(h.Index, buf[byteenc.Uint64Size:])
	return append(b, buf[:]...), nil
}

// MarshalBinary returns the HeaderSize-byte encoding of h.
func (h Header) MarshalBinary() ([]byte, error) {
	return h.AppendBinary(make([]byte, 0, HeaderSize))
}

// UnmarshalBinary decodes exactly HeaderSize bytes into h.
func (h *Header) UnmarshalBinary(b []byte) error {
	if len(b) > HeaderSize {
		return fmt.Errorf("chain: header has %d trailing bytes", len(b)-HeaderSize)
	}
	parsed, err := ParseHeader(b)
	if err != nil {
		return err
	}
	*h = parsed
	return nil
}

// ParseHeader decodes the header at the start of b. Bytes after the first
// HeaderSize are ignored.
func ParseHeader(b []byte) (Header, error) {
	epoch, err := byteenc.BigEndianToUint64(b, 0)
	if err != nil {
		return Header{}, fmt.Errorf("%w: epoch: %w", ErrShortHeader, err)
	}
	index, err := byteenc.BigEndianToUint64(b, byteenc.Uint64Size)
	if err != nil {
		return Header{}, fmt.Errorf("%w: index: %w", ErrShortHeader, err)
	}
	return Header{Epoch: epoch, Index: index}, nil
}
