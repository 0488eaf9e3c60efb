package wordhash

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDeterministic(t *testing.T) {
	e := NewEmbedder(64)
	ctx := context.Background()
	a, err := e.Encode(ctx, "onde é a festa")
	require.NoError(t, err)
	b, err := e.Encode(ctx, "onde é a festa")
	require.NoError(t, err)
	assert.Equal(t, a, b)
	assert.Len(t, a, 64)
}

func TestNormalized(t *testing.T) {
	e := NewEmbedder(0)
	vec, err := e.Encode(context.Background(), "a que horas começa a festa")
	require.NoError(t, err)
	assert.Len(t, vec, defaultDimension)
	norm := 0.0
	for _, v := range vec {
		norm += v * v
	}
	assert.InDelta(t, 1.0, norm, 1e-9)
}

func TestBatchMatchesSingle(t *testing.T) {
	e := NewEmbedder(128)
	ctx := context.Background()
	texts := []string{"ola", "quem vai", "vai haver comida"}
	batch, err := e.EncodeBatch(ctx, texts)
	require.NoError(t, err)
	require.Len(t, batch, len(texts))
	for i, txt := range texts {
		single, err := e.Encode(ctx, txt)
		require.NoError(t, err)
		assert.Equal(t, single, batch[i])
	}
}

func TestEmptyTextIsZeroVector(t *testing.T) {
	e := NewEmbedder(32)
	vec, err := e.Encode(context.Background(), "")
	require.NoError(t, err)
	for _, v := range vec {
		assert.Zero(t, v)
	}
}
