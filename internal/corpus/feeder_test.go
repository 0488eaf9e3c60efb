package corpus

import (
	"context"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"festabot/internal/embedding/wordhash"
	"festabot/internal/vectorstore/memory"
)

func TestRebuildUploadsDeduplicatedCorpus(t *testing.T) {
	ctx := context.Background()
	store := memory.NewStore()
	emb := wordhash.NewEmbedder(64)
	feeder := NewFeeder(store, emb)

	pairs := []Pair{
		{Question: "onde é a festa", Answer: "no Porto", Topic: "festa"},
		{Question: "a que horas começa", Answer: "21h00", Topic: "horario"},
	}
	require.NoError(t, feeder.Rebuild(ctx, pairs))

	dim, count, err := store.Info(ctx)
	require.NoError(t, err)
	assert.Equal(t, 64, dim)
	assert.Equal(t, 2, count)

	// Re-uploading the same pairs is idempotent: content-derived ids
	// overwrite instead of duplicating.
	require.NoError(t, feeder.Upload(ctx, pairs))
	_, count, err = store.Info(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, count)
}

func TestBootstrapBuildsMissingCollection(t *testing.T) {
	ctx := context.Background()
	store := memory.NewStore()
	emb := wordhash.NewEmbedder(32)
	feeder := NewFeeder(store, emb)
	gen := NewGenerator(Config{MinEntries: 50, MaxEntries: 200}, SeedSets(), nil, rand.New(rand.NewSource(11)))

	require.NoError(t, feeder.Bootstrap(ctx, 10, gen))
	_, count, err := store.Info(ctx)
	require.NoError(t, err)
	assert.GreaterOrEqual(t, count, 10)

	// Second bootstrap finds a healthy collection and leaves it alone.
	require.NoError(t, feeder.Bootstrap(ctx, 10, gen))
}

func TestBootstrapRebuildsUnderfilledCollection(t *testing.T) {
	ctx := context.Background()
	store := memory.NewStore()
	emb := wordhash.NewEmbedder(32)
	feeder := NewFeeder(store, emb)

	// one point, well below the minimum
	require.NoError(t, feeder.Rebuild(ctx, []Pair{
		{Question: "onde é a festa", Answer: "no Porto", Topic: "festa"},
	}))

	gen := NewGenerator(Config{MinEntries: 50, MaxEntries: 200}, SeedSets(), nil, rand.New(rand.NewSource(3)))
	require.NoError(t, feeder.Bootstrap(ctx, 10, gen))
	_, count, err := store.Info(ctx)
	require.NoError(t, err)
	assert.GreaterOrEqual(t, count, 10)
}

func TestBootstrapRebuildsOnDimensionDrift(t *testing.T) {
	ctx := context.Background()
	store := memory.NewStore()
	require.NoError(t, store.CreateCollection(ctx, 16))

	emb := wordhash.NewEmbedder(32)
	feeder := NewFeeder(store, emb)
	gen := NewGenerator(Config{MinEntries: 20, MaxEntries: 100}, SeedSets(), nil, rand.New(rand.NewSource(2)))

	require.NoError(t, feeder.Bootstrap(ctx, 1, gen))
	dim, _, err := store.Info(ctx)
	require.NoError(t, err)
	assert.Equal(t, 32, dim)
}
