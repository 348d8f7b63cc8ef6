package chain

import (
	"crypto/sha256"
	"errors"
	"io"
	"math"

	"golang.org/x/crypto/chacha20poly1305"
	"golang.org/x/crypto/hkdf"

	"cryptoutil/internal/util/arrayutil"
	"cryptoutil/internal/util/byteenc"
	"cryptoutil/internal/util/memzero"
)

const (
	// KeySize is the size of root, chain and message keys.
	KeySize = chacha20poly1305.KeySize
	// MaxSkip bounds both the gap accepted by Open and the number of stored
	// skipped message keys.
	MaxSkip = 1000

	nonceSize = chacha20poly1305.NonceSize
)

var (
	ErrShortKey           = errors.New("chain: root key too short")
	ErrEpochMismatch      = errors.New("chain: epoch mismatch")
	ErrSkippedKeyNotFound = errors.New("chain: skipped message key not found")
	ErrTooManySkipped     = errors.New("chain: too many skipped messages")
	ErrExhausted          = errors.New("chain: message index exhausted")
	errChainUninitialised = errors.New("chain: chain key is uninitialised")
)

var (
	rootInfo  = []byte("chain|root")
	chainInfo = []byte("chain|ck")
)

// State is one direction of a conversation.
type State struct {
	ChainKey []byte
	Epoch    uint64
	// Index is the index of the next message to send or expect.
	Index   uint64
	Skipped map[uint64][]byte
}

// New seeds a chain from root for the given epoch. Both sides of a
// conversation must use the same root and epoch.
func New(root []byte, epoch uint64) (*State, error) {
	if len(root) < KeySize {
		return nil, ErrShortKey
	}
	info := make([]byte, 0, len(rootInfo)+byteenc.Uint64Size)
	info = append(info, rootInfo...)
	info = append(info, make([]byte, byteenc.Uint64Size)...)
	byteenc.Uint64ToBigEndian(epoch, info[len(rootInfo):])

	ck := make([]byte, KeySize)
	if _, err := io.ReadFull(hkdf.New(sha256.New, root, nil, info), ck); err != nil {
		return nil, err
	}
	return &State{
		ChainKey: ck,
		Epoch:    epoch,
		Skipped:  make(map[uint64][]byte),
	}, nil
}

// Seal encrypts plaintext as the next message of the chain.
func (st *State) Seal(ad, plaintext []byte) (Header, []byte, error) {
	if len(st.ChainKey) == 0 {
		return Header{}, nil, errChainUninitialised
	}
	if st.Index == math.MaxUint64 {
		return Header{}, nil, ErrExhausted
	}
	h := Header{Epoch: st.Epoch, Index: st.Index}

	var mk []byte
	st.ChainKey, mk = advance(st.ChainKey)
	ct, err := seal(mk, h, ad, plaintext)
	memzero.Zero(mk)
	if err != nil {
		return Header{}, nil, err
	}
	st.Index++
	return h, ct, nil
}

// Open authenticates and decrypts a message sealed by the peer chain.
func (st *State) Open(ad []byte, h Header, ciphertext []byte) ([]byte, error) {
	if len(st.ChainKey) == 0 {
		return nil, errChainUninitialised
	}
	if h.Epoch != st.Epoch {
		return nil, ErrEpochMismatch
	}
	if h.Index < st.Index {
		return st.openSkipped(ad, h, ciphertext)
	}
	if h.Index-st.Index > MaxSkip {
		return nil, ErrTooManySkipped
	}
	if h.Index == math.MaxUint64 {
		return nil, ErrExhausted
	}

	// Work on a copy so a forged message cannot move the chain.
	ck := arrayutil.Clone(st.ChainKey)
	skipped := make([][]byte, 0, h.Index-st.Index)
	var mk []byte
	for i := st.Index; i < h.Index; i++ {
		ck, mk = advance(ck)
		skipped = append(skipped, mk)
	}
	ck, mk = advance(ck)
	pt, err := open(mk, h, ad, ciphertext)
	memzero.Zero(mk)
	if err != nil {
		memzero.Zero(ck)
		for _, k := range skipped {
			memzero.Zero(k)
		}
		return nil, err
	}

	if st.Skipped == nil {
		st.Skipped = make(map[uint64][]byte)
	}
	for i, k := range skipped {
		st.storeSkipped(st.Index+uint64(i), k)
	}
	st.ChainKey, _ = arrayutil.CloneInto(ck, st.ChainKey)
	memzero.Zero(ck)
	st.Index = h.Index + 1
	return pt, nil
}

func (st *State) openSkipped(ad []byte, h Header, ciphertext []byte) ([]byte, error) {
	mk, ok := st.Skipped[h.Index]
	if !ok {
		return nil, ErrSkippedKeyNotFound
	}
	pt, err := open(mk, h, ad, ciphertext)
	if err != nil {
		return nil, err
	}
	delete(st.Skipped, h.Index)
	memzero.Zero(mk)
	return pt, nil
}

// storeSkipped keeps mk for index n, evicting the oldest keys beyond MaxSkip.
func (st *State) storeSkipped(n uint64, mk []byte) {
	for len(st.Skipped) >= MaxSkip {
		oldest := uint64(math.MaxUint64)
		for k := range st.Skipped {
			if k < oldest {
				oldest = k
			}
		}
		memzero.Zero(st.Skipped[oldest])
		delete(st.Skipped, oldest)
	}
	st.Skipped[n] = mk
}

// Clone returns a deep copy of st.
func (st *State) Clone() *State {
	out := &State{
		ChainKey: arrayutil.Clone(st.ChainKey),
		Epoch:    st.Epoch,
		Index:    st.Index,
		Skipped:  make(map[uint64][]byte, len(st.Skipped)),
	}
	for n, mk := range st.Skipped {
		out.Skipped[n] = arrayutil.Clone(mk)
	}
	return out
}

// Wipe zeroes all key material held by st. The State is unusable afterwards.
func (st *State) Wipe() {
	memzero.Zero(st.ChainKey)
	st.ChainKey = nil
	for n, mk := range st.Skipped {
		memzero.Zero(mk)
		delete(st.Skipped, n)
	}
}

// --- helpers ---

// advance derives the message key for ck and overwrites ck with the next
// chain key, returning the (possibly reallocated) chain key buffer.
func advance(ck []byte) (next, mk []byte) {
	r := hkdf.New(sha256.New, ck, nil, chainInfo)
	var scratch [KeySize]byte
	mk = make([]byte, KeySize)
	_, _ = io.ReadFull(r, scratch[:])
	_, _ = io.ReadFull(r, mk)
	next, _ = arrayutil.CloneInto(scratch[:], ck)
	memzero.Zero(scratch[:])
	return next, mk
}

func nonceFor(h Header) []byte {
	nonce := make([]byte, nonceSize)
	byteenc.Uint64ToBigEndian(h.Index, nonce[nonceSize-byteenc.Uint64Size:])
	return nonce
}

func additionalData(ad []byte, h Header) []byte {
	out, _ := h.AppendBinary(ad[:len(ad):len(ad)])
	return out
}

func seal(mk []byte, h Header, ad, plaintext []byte) ([]byte, error) {
	aead, err := chacha20poly1305.New(mk)
	if err != nil {
		return nil, err
	}
	return aead.Seal(nil, nonceFor(h), plaintext, additionalData(ad, h)), nil
}

func open(mk []byte, h Header, ad, ciphertext []byte) ([]byte, error) {
	aead, err := chacha20poly1305.New(mk)
	if err != nil {
		return nil, err
	}
	return aead.Open(nil, nonceFor(h), ciphertext, additionalData(ad, h))
}
