package keybox

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestContainerSize(t *testing.T) {
	expected := map[Kind]map[Level]int{
		KindPrivateKey:  {Level128: 74, Level192: 90, Level256: 106},
		KindSecretShare: {Level128: 59, Level192: 67, Level256: 75},
	}
	for kind, sizes := range expected {
		for level, want := range sizes {
			got, err := ContainerSize(kind, level)
			assert.NoError(t, err)
			assert.Equal(t, want, got, "%s at level %d", kind, level)
		}
	}
}

func TestContainerSize_StrictlyIncreasing(t *testing.T) {
	for _, kind := range []Kind{KindPrivateKey, KindSecretShare} {
		prev := 0
		for _, level := range []Level{Level128, Level192, Level256} {
			size, err := ContainerSize(kind, level)
			assert.NoError(t, err)
			assert.Greater(t, size, prev)
			prev = size
		}
	}
}

func TestContainerSize_InvalidLevel(t *testing.T) {
	for _, level := range []Level{0, 64, 127, 129, 512} {
		_, err := ContainerSize(KindPrivateKey, level)
		assert.ErrorIs(t, err, ErrBadInput)
	}
	_, err := ContainerSize(Kind(0xFF), Level128)
	assert.ErrorIs(t, err, ErrBadInput)
}

func TestLevelOfSize_Inverse(t *testing.T) {
	for _, kind := range []Kind{KindPrivateKey, KindSecretShare} {
		for _, level := range []Level{Level128, Level192, Level256} {
			size, err := ContainerSize(kind, level)
			assert.NoError(t, err)
			got, err := LevelOfSize(kind, size)
			assert.NoError(t, err)
			assert.Equal(t, level, got)

			// Neighbors of a valid size are never valid.
			_, err = LevelOfSize(kind, size-1)
			assert.ErrorIs(t, err, ErrBadInput)
			_, err = LevelOfSize(kind, size+1)
			assert.ErrorIs(t, err, ErrBadInput)
		}
	}
}

func TestLevelOfSize_Rejects(t *testing.T) {
	for _, size := range []int{0, 1, headerSize, headerSize + sealedOverhead, 1 << 20} {
		_, err := LevelOfSize(KindPrivateKey, size)
		assert.ErrorIs(t, err, ErrBadInput)
	}
}

func TestPayloadSize(t *testing.T) {
	tests := []struct {
		kind  Kind
		level Level
		want  int
	}{
		{KindPrivateKey, Level128, 32},
		{KindPrivateKey, Level192, 48},
		{KindPrivateKey, Level256, 64},
		{KindSecretShare, Level128, 17},
		{KindSecretShare, Level192, 25},
		{KindSecretShare, Level256, 33},
	}
	for _, tt := range tests {
		got, err := PayloadSize(tt.kind, tt.level)
		assert.NoError(t, err)
		assert.Equal(t, tt.want, got)
	}
}
