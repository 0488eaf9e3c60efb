package intent

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"festabot/internal/domain"
	"festabot/internal/embedding/wordhash"
	"festabot/internal/vectorstore/memory"
)

func seedStore(t *testing.T) (*memory.Store, domain.Embedder) {
	t.Helper()
	ctx := context.Background()
	store := memory.NewStore()
	emb := wordhash.NewEmbedder(64)
	require.NoError(t, store.CreateCollection(ctx, 64))
	for _, e := range []domain.Entry{
		{Question: "onde e a festa", Answer: "no Porto", Topic: "festa"},
		{Question: "a que horas comeca", Answer: "21h00", Topic: "horario"},
	} {
		vec, err := emb.Encode(ctx, e.Question)
		require.NoError(t, err)
		id := domain.PointID(e.Topic, e.Question, e.Answer)
		require.NoError(t, store.Upsert(ctx, []domain.Point{{ID: id, Vector: vec, Entry: e}}))
	}
	return store, emb
}

func TestClassifyExactQuestion(t *testing.T) {
	store, emb := seedStore(t)
	c := NewClassifier(store, emb, Config{})
	assert.Equal(t, "festa", c.Classify(context.Background(), "onde e a festa"))
	assert.Equal(t, "horario", c.Classify(context.Background(), "a que horas comeca"))
}

func TestClassifyBelowFloorReturnsNone(t *testing.T) {
	store, emb := seedStore(t)
	c := NewClassifier(store, emb, Config{Floor: 0.9})
	assert.Equal(t, None, c.Classify(context.Background(), "previsao do tempo para lisboa"))
}

func TestClassifyNeverFailsOnMissingCollection(t *testing.T) {
	store := memory.NewStore() // no collection created
	emb := wordhash.NewEmbedder(64)
	c := NewClassifier(store, emb, Config{})
	assert.Equal(t, None, c.Classify(context.Background(), "ola"))
}
