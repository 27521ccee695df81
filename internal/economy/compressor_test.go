package economy

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestZstdCompressor_RoundTrip(t *testing.T) {
	comp, err := NewZstdCompressor()
	require.NoError(t, err)

	original := bytes.Repeat([]byte(`{"wallet":500,"bank":1000}`), 100)
	compressed, err := comp.Compress(original)
	require.NoError(t, err)
	assert.Less(t, len(compressed), len(original))

	restored, err := comp.Decompress(compressed)
	require.NoError(t, err)
	assert.Equal(t, original, restored)
}

func TestZstdCompressor_EmptyInput(t *testing.T) {
	comp, err := NewZstdCompressor()
	require.NoError(t, err)

	compressed, err := comp.Compress(nil)
	require.NoError(t, err)

	restored, err := comp.Decompress(compressed)
	require.NoError(t, err)
	assert.Empty(t, restored)
}

func TestZstdCompressor_GarbageInputFailsDecompress(t *testing.T) {
	comp, err := NewZstdCompressor()
	require.NoError(t, err)

	_, err = comp.Decompress([]byte("definitely not zstd"))
	assert.Error(t, err)
}
