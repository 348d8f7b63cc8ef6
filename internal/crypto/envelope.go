package crypto

import (
	"crypto/cipher"
	"crypto/rand"
	"errors"
	"fmt"

	"golang.org/x/crypto/chacha20poly1305"
	"golang.org/x/crypto/scrypt"

	"cryptoutil/internal/util/byteenc"
	"cryptoutil/internal/util/memzero"
)

const (
	// FormatVersion is the envelope version written by Seal.
	FormatVersion = 1

	SaltSize   = 16
	HeaderSize = 4*byteenc.Uint64Size + SaltSize

	saltOffset = 4 * byteenc.Uint64Size
)

var (
	ErrTruncated          = errors.New("envelope truncated")
	ErrUnsupportedVersion = errors.New("unsupported envelope version")
	// Returned when the passphrase is incorrect or the envelope has been modified.
	ErrWrongPassphrase = errors.New("wrong passphrase or corrupted envelope")
)

// Seal encrypts plaintext under passphrase and returns the encoded envelope.
func Seal(passphrase string, plaintext []byte, params Params) ([]byte, error) {
	if err := params.Validate(); err != nil {
		return nil, err
	}
	out := make([]byte, HeaderSize, HeaderSize+len(plaintext)+chacha20poly1305.Overhead)
	byteenc.Uint64ToLittleEndian(FormatVersion, out[0:])
	byteenc.Uint64ToLittleEndian(params.N, out[8:])
	byteenc.Uint64ToLittleEndian(params.R, out[16:])
	byteenc.Uint64ToLittleEndian(params.P, out[24:])
	salt := out[saltOffset:HeaderSize]
	if _, err := rand.Read(salt); err != nil {
		return nil, err
	}

	aead, err := newAEAD(passphrase, salt, params)
	if err != nil {
		return nil, err
	}
	var nonce [chacha20poly1305.NonceSize]byte // zero nonce; salt-bound key guarantees uniqueness
	return aead.Seal(out, nonce[:], plaintext, out[:HeaderSize]), nil
}

// Open decrypts an envelope produced by Seal.
func Open(passphrase string, env []byte) ([]byte, error) {
	version, err := byteenc.LittleEndianToUint64(env, 0)
	if err != nil {
		return nil, fmt.Errorf("%w: version: %w", ErrTruncated, err)
	}
	if version != FormatVersion {
		return nil, fmt.Errorf("%w %d", ErrUnsupportedVersion, version)
	}
	params, err := parseParams(env)
	if err != nil {
		return nil, err
	}
	if err := params.Validate(); err != nil {
		return nil, err
	}
	if len(env) < HeaderSize+chacha20poly1305.Overhead {
		return nil, fmt.Errorf("%w: %d bytes", ErrTruncated, len(env))
	}

	aead, err := newAEAD(passphrase, env[saltOffset:HeaderSize], params)
	if err != nil {
		return nil, err
	}
	var nonce [chacha20poly1305.NonceSize]byte
	pt, err := aead.Open(nil, nonce[:], env[HeaderSize:], env[:HeaderSize])
	if err != nil {
		return nil, ErrWrongPassphrase
	}
	return pt, nil
}

func parseParams(env []byte) (Params, error) {
	var (
		p   Params
		err error
	)
	fields := []struct {
		name string
		dst  *uint64
	}{{"N", &p.N}, {"r", &p.R}, {"p", &p.P}}
	for i, f := range fields {
		*f.dst, err = byteenc.LittleEndianToUint64(env, (i+1)*byteenc.Uint64Size)
		if err != nil {
			return Params{}, fmt.Errorf("%w: scrypt %s: %w", ErrTruncated, f.name, err)
		}
	}
	return p, nil
}

// newAEAD derives the envelope key and wipes it once the cipher holds a copy.
func newAEAD(passphrase string, salt []byte, params Params) (cipher.AEAD, error) {
	key, err := scrypt.Key([]byte(passphrase), salt, int(params.N), int(params.R), int(params.P), chacha20poly1305.KeySize)
	if err != nil {
		return nil, err
	}
	defer memzero.Zero(key)
	return chacha20poly1305.New(key)
}
