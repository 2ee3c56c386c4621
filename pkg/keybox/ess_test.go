package keybox

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testShare(length int, index byte) []byte {
	share := make([]byte, length)
	share[0] = index
	for i := 1; i < length; i++ {
		share[i] = byte(i * 3)
	}
	return share
}

func TestEncodeDecodeSecretShare_AllLevels(t *testing.T) {
	salt := Salt{1, 1, 2, 3, 5, 8, 13, 21}
	for length, level := range map[int]Level{17: Level128, 25: Level192, 33: Level256} {
		share := testShare(length, 7)

		cont, err := EncodeSecretShare(share, []byte("custodian pwd"), MinIterations, salt)
		require.NoError(t, err)

		wantSize, err := ContainerSize(KindSecretShare, level)
		require.NoError(t, err)
		assert.Len(t, cont, wantSize)

		recovered, err := DecodeSecretShare(cont, []byte("custodian pwd"))
		require.NoError(t, err)
		assert.Equal(t, share, recovered)
	}
}

func TestEncodeSecretShare_BadLength(t *testing.T) {
	for _, length := range []int{0, 1, 16, 18, 24, 26, 32, 34} {
		share := make([]byte, length)
		if length > 0 {
			share[0] = 1
		}
		_, err := EncodeSecretShare(share, []byte("pwd"), MinIterations, Salt{})
		assert.ErrorIs(t, err, ErrBadInput, "length %d", length)
	}
}

func TestEncodeSecretShare_IndexBounds(t *testing.T) {
	for _, index := range []byte{0, 17, 100, 255} {
		_, err := EncodeSecretShare(testShare(17, index), []byte("pwd"), MinIterations, Salt{})
		assert.ErrorIs(t, err, ErrBadInput, "index %d", index)
	}
	for _, index := range []byte{MinShareIndex, MaxShareIndex} {
		cont, err := EncodeSecretShare(testShare(17, index), []byte("pwd"), MinIterations, Salt{})
		require.NoError(t, err, "index %d", index)

		recovered, err := DecodeSecretShare(cont, []byte("pwd"))
		require.NoError(t, err)
		assert.Equal(t, index, recovered[0])
	}
}

func TestEncodeSecretShare_IterationFloor(t *testing.T) {
	_, err := EncodeSecretShare(testShare(17, 1), []byte("pwd"), 9999, Salt{})
	assert.ErrorIs(t, err, ErrBadInput)
}

func TestDecodeSecretShare_WrongPassword(t *testing.T) {
	cont, err := EncodeSecretShare(testShare(25, 3), []byte("right"), MinIterations, Salt{})
	require.NoError(t, err)

	_, err = DecodeSecretShare(cont, []byte("wrong"))
	assert.ErrorIs(t, err, ErrAuthFail)
}

func TestDecodeSecretShare_TamperedContainer(t *testing.T) {
	cont, err := EncodeSecretShare(testShare(33, 16), []byte("pwd"), MinIterations, Salt{})
	require.NoError(t, err)

	for _, i := range []int{0, 1, 2, headerSize, headerSize + nonceSize, len(cont) - 1} {
		tampered := bytes.Clone(cont)
		tampered[i] ^= 0x80
		_, err := DecodeSecretShare(tampered, []byte("pwd"))
		assert.ErrorIs(t, err, ErrAuthFail, "flipped bit in octet %d", i)
	}
}

// Container sizes of the two kinds never overlap, so feeding one codec's output to the
// other fails before any cryptography.
func TestDecode_CrossKind(t *testing.T) {
	epk, err := EncodePrivateKey(make([]byte, 32), []byte("pwd"), MinIterations, Salt{})
	require.NoError(t, err)
	_, err = DecodeSecretShare(epk, []byte("pwd"))
	assert.ErrorIs(t, err, ErrBadInput)

	ess, err := EncodeSecretShare(testShare(17, 1), []byte("pwd"), MinIterations, Salt{})
	require.NoError(t, err)
	_, err = DecodePrivateKey(ess, []byte("pwd"))
	assert.ErrorIs(t, err, ErrBadInput)
}
