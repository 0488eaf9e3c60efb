package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadMissingFileReturnsDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.NoError(t, err)
	assert.Equal(t, "wordhash", cfg.Embedder.Type)
	assert.Equal(t, 256, cfg.Embedder.Dimension)
	assert.Equal(t, 0.6, cfg.Retrieval.Threshold)
	assert.Equal(t, 0.55, cfg.Retrieval.ContextThreshold)
	assert.Equal(t, 0.4, cfg.Intent.Floor)
	assert.Equal(t, 5, cfg.Memory.Window)
	assert.Equal(t, 800, cfg.Corpus.MinEntries)
}

func TestLoadAppliesDefaultsToPartialFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	data := []byte(`
embedder:
  type: openai
  dimension: 1536
vector_store:
  type: qdrant
  qdrant:
    url: http://localhost:6333
retrieval:
  threshold: 0.7
memory:
  store: redis
`)
	require.NoError(t, os.WriteFile(path, data, 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 1536, cfg.Embedder.Dimension)
	require.NotNil(t, cfg.Embedder.OpenAI)
	assert.Equal(t, "text-embedding-3-small", cfg.Embedder.OpenAI.Model)
	require.NotNil(t, cfg.VectorStore.Qdrant)
	assert.Equal(t, "chatbot_passagem_ano", cfg.VectorStore.Qdrant.Collection)
	assert.Equal(t, 0.7, cfg.Retrieval.Threshold)
	assert.Equal(t, 0.55, cfg.Retrieval.ContextThreshold)
	require.NotNil(t, cfg.Memory.Redis)
	assert.Equal(t, "redis://localhost:6379/0", cfg.Memory.Redis.URL)
	assert.Equal(t, 3600, cfg.Memory.Redis.TTLSecs)
}

func TestLoadRejectsMalformedYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("embedder: [broken"), 0o644))
	_, err := Load(path)
	assert.Error(t, err)
}
