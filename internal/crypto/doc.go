// Package crypto seals byte blobs under a passphrase and prints short
// fingerprints.
//
// # Envelope format
//
// An envelope is a fixed 48-byte prefix followed by the ciphertext. All
// integers are little-endian uint64.
//
//	[ 0: 8]  format version (currently 1)
//	[ 8:16]  scrypt N
//	[16:24]  scrypt r
//	[24:32]  scrypt p
//	[32:48]  salt
//	[48:  ]  ChaCha20-Poly1305 ciphertext
//
// The key is derived with scrypt from the passphrase and a fresh salt, so a
// zero nonce is used. The whole prefix is authenticated as associated data;
// altering any KDF parameter makes Open fail.
//
// # Notes
//
// Open validates the KDF parameters before deriving a key so a crafted
// envelope cannot request more than 1 GiB of scrypt memory. Derived keys are
// wiped after use.
package crypto
