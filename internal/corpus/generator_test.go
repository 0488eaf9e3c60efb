package corpus

import (
	"math/rand"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"festabot/internal/textnorm"
)

func newTestGenerator(cfg Config, seed int64) *Generator {
	return NewGenerator(cfg, SeedSets(), SlotVocabularies(), rand.New(rand.NewSource(seed)))
}

func TestDeduplicateIdempotent(t *testing.T) {
	pairs := []Pair{
		{Question: "onde é a festa", Answer: "no Porto", Topic: "festa"},
		{Question: " Onde é a festa ", Answer: "no porto", Topic: "festa"},
		{Question: "onde é a festa", Answer: "no Porto", Topic: "horario"},
		{Question: "a que horas", Answer: "21h00", Topic: "horario"},
	}
	once := Deduplicate(pairs)
	assert.Len(t, once, 3)
	twice := Deduplicate(once)
	assert.Equal(t, once, twice)
}

func TestGenerateWithinBounds(t *testing.T) {
	cfg := Config{MinEntries: 500, MaxEntries: 1200}
	got := newTestGenerator(cfg, 42).Generate()
	assert.GreaterOrEqual(t, len(got), cfg.MinEntries)
	assert.LessOrEqual(t, len(got), cfg.MaxEntries)
}

func TestGenerateTruncatesToMax(t *testing.T) {
	cfg := Config{MinEntries: 10, MaxEntries: 50}
	got := newTestGenerator(cfg, 1).Generate()
	assert.Len(t, got, 50)
}

func TestGenerateBackfillsToMin(t *testing.T) {
	sets := []TemplateSet{{
		Topic:     "festa",
		Questions: []string{"onde é a festa"},
		Answers:   []string{"no Porto"},
	}}
	gen := NewGenerator(Config{MinEntries: 20, MaxEntries: 100}, sets, nil, rand.New(rand.NewSource(3)))
	got := gen.Generate()
	assert.GreaterOrEqual(t, len(got), 4) // surface variants
	assert.LessOrEqual(t, len(got), 100)
	// every backfilled pair still comes from the deduplicated base set
	for _, p := range got {
		assert.Equal(t, "festa", p.Topic)
		assert.Equal(t, "no Porto", p.Answer)
	}
}

func TestGenerateDeterministicUnderFixedSeed(t *testing.T) {
	cfg := Config{MinEntries: 100, MaxEntries: 400}
	a := newTestGenerator(cfg, 7).Generate()
	b := newTestGenerator(cfg, 7).Generate()
	assert.Equal(t, a, b)
}

func TestSlotsAreFilled(t *testing.T) {
	got := newTestGenerator(Config{MinEntries: 100, MaxEntries: 2000}, 5).Generate()
	names := SlotVocabularies()["nome"]
	for _, p := range got {
		if strings.Contains(p.Answer, "{nome}") {
			t.Fatalf("unfilled slot in answer %q", p.Answer)
		}
	}
	// at least one personalised answer should use a known name
	found := false
	for _, p := range got {
		for _, n := range names {
			if strings.Contains(p.Answer, n) {
				found = true
			}
		}
	}
	assert.True(t, found)
}

func TestSurfaceVariants(t *testing.T) {
	vs := surfaceVariants("olá")
	assert.Contains(t, vs, "olá")
	assert.Contains(t, vs, "Olá")
	assert.Contains(t, vs, "olá?")
	assert.Contains(t, vs, "olá!")
	// variants are unique
	seen := map[string]struct{}{}
	for _, v := range vs {
		_, dup := seen[v]
		assert.False(t, dup, "duplicate variant %q", v)
		seen[v] = struct{}{}
	}
}

func TestGeneratedKeysDistinctWithinDedupedPrefix(t *testing.T) {
	sets := []TemplateSet{{
		Topic:     "horario",
		Questions: []string{"a que horas começa", "quando começa"},
		Answers:   []string{"21h00", "22h00"},
	}}
	gen := NewGenerator(Config{MinEntries: 1, MaxEntries: 100}, sets, nil, rand.New(rand.NewSource(9)))
	got := gen.Generate()
	keys := map[string]struct{}{}
	for _, p := range got {
		keys[textnorm.Key(p.Topic, p.Question, p.Answer)] = struct{}{}
	}
	require.NotEmpty(t, keys)
	// keys collapse case/punctuation variants; dedup guarantees no two
	// generated pairs share a key before backfill, so keys ≤ pairs
	assert.LessOrEqual(t, len(keys), len(got))
}
