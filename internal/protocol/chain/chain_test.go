package chain_test

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"

	"cryptoutil/internal/protocol/chain"
)

// newPair returns a sending and a receiving chain seeded from the same root.
func newPair(t *testing.T) (send, recv *chain.State) {
	t.Helper()
	root := bytes.Repeat([]byte{0x42}, chain.KeySize)
	send, err := chain.New(root, 7)
	require.NoError(t, err)
	recv, err = chain.New(root, 7)
	require.NoError(t, err)
	return send, recv
}

func TestNew_ShortRoot(t *testing.T) {
	_, err := chain.New(make([]byte, chain.KeySize-1), 0)
	require.ErrorIs(t, err, chain.ErrShortKey)
}

func TestNew_EpochSeparatesChains(t *testing.T) {
	root := bytes.Repeat([]byte{1}, chain.KeySize)
	a, err := chain.New(root, 1)
	require.NoError(t, err)
	b, err := chain.New(root, 2)
	require.NoError(t, err)
	require.NotEqual(t, a.ChainKey, b.ChainKey)
}

func TestChain_InOrder(t *testing.T) {
	send, recv := newPair(t)
	ad := []byte("conversation")

	for i := 0; i < 5; i++ {
		msg := []byte{'m', byte('0' + i)}
		h, ct, err := send.Seal(ad, msg)
		require.NoError(t, err)
		require.Equal(t, uint64(i), h.Index)
		require.Equal(t, uint64(7), h.Epoch)

		pt, err := recv.Open(ad, h, ct)
		require.NoError(t, err)
		require.Equal(t, msg, pt)
	}
	require.Equal(t, send.Index, recv.Index)
	require.Equal(t, send.ChainKey, recv.ChainKey)
	require.Empty(t, recv.Skipped)
}

func TestChain_ChainKeyBufferReused(t *testing.T) {
	send, _ := newPair(t)
	before := &send.ChainKey[0]
	old := append([]byte(nil), send.ChainKey...)

	_, _, err := send.Seal(nil, []byte("x"))
	require.NoError(t, err)
	require.Same(t, before, &send.ChainKey[0])
	require.NotEqual(t, old, send.ChainKey)
}

func TestChain_OutOfOrder(t *testing.T) {
	send, recv := newPair(t)

	type msg struct {
		h  chain.Header
		ct []byte
	}
	var msgs []msg
	for i := 0; i < 4; i++ {
		h, ct, err := send.Seal(nil, []byte{byte(i)})
		require.NoError(t, err)
		msgs = append(msgs, msg{h, ct})
	}

	pt, err := recv.Open(nil, msgs[3].h, msgs[3].ct)
	require.NoError(t, err)
	require.Equal(t, []byte{3}, pt)
	require.Len(t, recv.Skipped, 3)
	require.Equal(t, uint64(4), recv.Index)

	for _, i := range []int{1, 0, 2} {
		pt, err := recv.Open(nil, msgs[i].h, msgs[i].ct)
		require.NoError(t, err)
		require.Equal(t, []byte{byte(i)}, pt)
	}
	require.Empty(t, recv.Skipped)

	// Replays of consumed keys are rejected.
	_, err = recv.Open(nil, msgs[1].h, msgs[1].ct)
	require.ErrorIs(t, err, chain.ErrSkippedKeyNotFound)
}

func TestChain_TooManySkipped(t *testing.T) {
	send, recv := newPair(t)
	snapshot := recv.Clone()

	_, ct, err := send.Seal(nil, []byte("late"))
	require.NoError(t, err)
	_, err = recv.Open(nil, chain.Header{Epoch: 7, Index: chain.MaxSkip + 1}, ct)
	require.ErrorIs(t, err, chain.ErrTooManySkipped)
	require.Equal(t, snapshot, recv)
}

func TestChain_TamperedLeavesStateUnchanged(t *testing.T) {
	send, recv := newPair(t)
	_, _, err := send.Seal(nil, []byte("a"))
	require.NoError(t, err)
	h, ct, err := send.Seal(nil, []byte("b"))
	require.NoError(t, err)

	snapshot := recv.Clone()
	bad := append([]byte(nil), ct...)
	bad[0] ^= 0xff
	_, err = recv.Open(nil, h, bad)
	require.Error(t, err)
	require.Equal(t, snapshot, recv)

	// Wrong associated data is rejected the same way.
	_, err = recv.Open([]byte("other"), h, ct)
	require.Error(t, err)
	require.Equal(t, snapshot, recv)

	pt, err := recv.Open(nil, h, ct)
	require.NoError(t, err)
	require.Equal(t, []byte("b"), pt)
}

func TestChain_EpochMismatch(t *testing.T) {
	send, recv := newPair(t)
	h, ct, err := send.Seal(nil, []byte("x"))
	require.NoError(t, err)
	h.Epoch++
	_, err = recv.Open(nil, h, ct)
	require.ErrorIs(t, err, chain.ErrEpochMismatch)
}

func TestChain_AdditionalDataNotAliased(t *testing.T) {
	send, recv := newPair(t)
	buf := make([]byte, 2, 64)
	copy(buf, "ad")
	tail := buf[:cap(buf)]
	before := append([]byte(nil), tail...)

	h, ct, err := send.Seal(buf, []byte("x"))
	require.NoError(t, err)
	require.Equal(t, before, tail)

	_, err = recv.Open(buf, h, ct)
	require.NoError(t, err)
	require.Equal(t, before, tail)
}

func TestState_CloneIsDeep(t *testing.T) {
	send, recv := newPair(t)
	_, _, err := send.Seal(nil, nil)
	require.NoError(t, err)
	h, ct, err := send.Seal(nil, nil)
	require.NoError(t, err)
	_, err = recv.Open(nil, h, ct)
	require.NoError(t, err)
	require.Len(t, recv.Skipped, 1)

	c := recv.Clone()
	require.Equal(t, recv, c)
	c.ChainKey[0] ^= 1
	c.Skipped[0][0] ^= 1
	require.NotEqual(t, recv.ChainKey, c.ChainKey)
	require.NotEqual(t, recv.Skipped[0], c.Skipped[0])
}

func TestState_Wipe(t *testing.T) {
	send, recv := newPair(t)
	_, _, err := send.Seal(nil, nil)
	require.NoError(t, err)
	h, ct, err := send.Seal(nil, nil)
	require.NoError(t, err)
	_, err = recv.Open(nil, h, ct)
	require.NoError(t, err)

	ck := recv.ChainKey
	skipped := recv.Skipped[0]
	recv.Wipe()
	require.Equal(t, make([]byte, chain.KeySize), ck)
	require.Equal(t, make([]byte, chain.KeySize), skipped)
	require.Empty(t, recv.Skipped)

	_, _, err = recv.Seal(nil, nil)
	require.Error(t, err)
}

func TestChain_SkippedEvictsOldest(t *testing.T) {
	send, recv := newPair(t)

	type msg struct {
		h  chain.Header
		ct []byte
	}
	msgs := make(map[uint64]msg)
	for i := uint64(0); i <= chain.MaxSkip+2; i++ {
		h, ct, err := send.Seal(nil, []byte{byte(i)})
		require.NoError(t, err)
		msgs[i] = msg{h, ct}
	}

	// A full gap fills the skipped-key store.
	m := msgs[chain.MaxSkip]
	_, err := recv.Open(nil, m.h, m.ct)
	require.NoError(t, err)
	require.Len(t, recv.Skipped, chain.MaxSkip)
	require.Contains(t, recv.Skipped, uint64(0))

	// One more skipped key pushes out the lowest index.
	m = msgs[chain.MaxSkip+2]
	_, err = recv.Open(nil, m.h, m.ct)
	require.NoError(t, err)
	require.Len(t, recv.Skipped, chain.MaxSkip)
	require.NotContains(t, recv.Skipped, uint64(0))
	require.Contains(t, recv.Skipped, uint64(1))
	require.Contains(t, recv.Skipped, uint64(chain.MaxSkip+1))

	m = msgs[0]
	_, err = recv.Open(nil, m.h, m.ct)
	require.ErrorIs(t, err, chain.ErrSkippedKeyNotFound)

	m = msgs[1]
	pt, err := recv.Open(nil, m.h, m.ct)
	require.NoError(t, err)
	require.Equal(t, []byte{1}, pt)
}
