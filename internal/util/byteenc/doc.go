// Package byteenc converts between 8-byte windows and uint64 values in an
// explicitly chosen byte order.
//
// # Decoding
//
// BigEndianToUint64 and LittleEndianToUint64 read b[offset:offset+8]. The
// window is validated before any byte is read; a window that does not fit
// yields a *RangeError, which matches ErrOutOfRange under errors.Is.
//
// BigEndianUint64 and LittleEndianUint64 read from the start of a view the
// caller has already sized. They do not return errors.
//
// # Encoding
//
// Uint64ToBigEndian and Uint64ToLittleEndian write exactly 8 bytes to the
// start of dst. The caller guarantees dst is large enough.
//
// Byte order is never inferred from the host; Order names it explicitly for
// callers that choose it at run time.
package byteenc
