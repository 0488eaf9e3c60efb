package retrieval

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"festabot/internal/domain"
	"festabot/internal/embedding/wordhash"
	"festabot/internal/vectorstore/memory"
)

func seed(t *testing.T, entries []domain.Entry) (*memory.Store, domain.Embedder) {
	t.Helper()
	ctx := context.Background()
	store := memory.NewStore()
	emb := wordhash.NewEmbedder(64)
	require.NoError(t, store.CreateCollection(ctx, 64))
	for _, e := range entries {
		vec, err := emb.Encode(ctx, e.Question)
		require.NoError(t, err)
		id := domain.PointID(e.Topic, e.Question, e.Answer)
		require.NoError(t, store.Upsert(ctx, []domain.Point{{ID: id, Vector: vec, Entry: e}}))
	}
	return store, emb
}

func TestExactQuestionScoresMax(t *testing.T) {
	store, emb := seed(t, []domain.Entry{
		{Question: "a que horas comeca", Answer: "21h00", Topic: "horario"},
	})
	e := NewEngine(store, emb, Config{})
	hit, err := e.Lookup(context.Background(), "a que horas comeca", "")
	require.NoError(t, err)
	assert.InDelta(t, 1.0, hit.Score, 1e-9)
	assert.Equal(t, "21h00", hit.Entry.Answer)
}

func TestBelowThresholdIsNoMatch(t *testing.T) {
	store, emb := seed(t, []domain.Entry{
		{Question: "a que horas comeca", Answer: "21h00", Topic: "horario"},
	})
	e := NewEngine(store, emb, Config{Threshold: 0.99})
	_, err := e.Lookup(context.Background(), "vai chover amanha em lisboa", "")
	assert.ErrorIs(t, err, domain.ErrNoMatch)
}

func TestEmptyCorpusIsNoMatch(t *testing.T) {
	store := memory.NewStore()
	require.NoError(t, store.CreateCollection(context.Background(), 64))
	e := NewEngine(store, wordhash.NewEmbedder(64), Config{})
	_, err := e.Lookup(context.Background(), "onde e a festa", "")
	assert.ErrorIs(t, err, domain.ErrNoMatch)
}

func TestMissingCollectionDegradesToNoMatch(t *testing.T) {
	e := NewEngine(memory.NewStore(), wordhash.NewEmbedder(64), Config{})
	_, err := e.Lookup(context.Background(), "onde e a festa", "")
	assert.ErrorIs(t, err, domain.ErrNoMatch)
}

func TestTopicFilterApplied(t *testing.T) {
	store, emb := seed(t, []domain.Entry{
		{Question: "quem vai", Answer: "toda a gente", Topic: "confirmacoes"},
		{Question: "quem vai marcar", Answer: "o Rafa", Topic: "futebol"},
	})
	e := NewEngine(store, emb, Config{Threshold: 0.1})
	hit, err := e.Lookup(context.Background(), "quem vai", "futebol")
	require.NoError(t, err)
	assert.Equal(t, "futebol", hit.Entry.Topic)
}

func TestGreetingGuardSuppressesHijack(t *testing.T) {
	store, emb := seed(t, []domain.Entry{
		{Question: "preco do bilhete ola", Answer: "Olá! 👋", Topic: "saudacao"},
	})
	// Low threshold so the partially overlapping hit clears the gate.
	e := NewEngine(store, emb, Config{Threshold: 0.2})

	// Query without greeting tokens: the saudacao hit must be suppressed.
	_, err := e.Lookup(context.Background(), "preco do bilhete", "")
	assert.ErrorIs(t, err, domain.ErrNoMatch)

	// Same store, query with a greeting token: allowed through.
	hit, err := e.Lookup(context.Background(), "ola preco do bilhete", "")
	require.NoError(t, err)
	assert.Equal(t, "saudacao", hit.Entry.Topic)
}

func TestLookupWithContextBiasesQuery(t *testing.T) {
	store, emb := seed(t, []domain.Entry{
		{Question: "o benfica vai ganhar o jogo", Answer: "Claro! 🔴⚪", Topic: "futebol"},
	})
	e := NewEngine(store, emb, Config{Threshold: 0.95, ContextThreshold: 0.5})

	// Alone, the elliptical follow-up misses.
	_, err := e.Lookup(context.Background(), "vai ganhar", "")
	assert.ErrorIs(t, err, domain.ErrNoMatch)

	// With the window prefix, it clears the contextual threshold.
	hit, err := e.LookupWithContext(context.Background(), "vai ganhar", "o benfica o jogo", "")
	require.NoError(t, err)
	assert.Equal(t, "futebol", hit.Entry.Topic)
}
