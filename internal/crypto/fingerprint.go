package crypto

import (
	"crypto/sha256"
	"encoding/hex"
)

// FingerprintSize is the number of digest bytes kept by Fingerprint.
const FingerprintSize = 10

// Fingerprint returns a short hex fingerprint of b.
//
// The SHA-256 digest is truncated to FingerprintSize bytes.
func Fingerprint(b []byte) string {
	sum := sha256.Sum256(b)
	return hex.EncodeToString(sum[:FingerprintSize])
}
