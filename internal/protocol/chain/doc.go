// Package chain implements a symmetric-key KDF chain, the sending/receiving
// half of the Double Ratchet without the Diffie-Hellman step.
//
// Both parties seed a State from the same root key and epoch. Every message
// advances the chain: HKDF-SHA256 splits the current chain key into the next
// chain key and a one-time message key, which seals the payload with
// ChaCha20-Poly1305. Message headers carry the epoch and message index as two
// big-endian uint64 values; the index also forms the AEAD nonce.
//
// Out-of-order delivery is handled by deriving and storing the keys of skipped
// messages, capped at MaxSkip. A message that fails authentication leaves the
// receiving State unchanged.
//
// Concurrency: State is NOT safe for concurrent use. Callers must serialise
// access per conversation.
package chain
