package config

import (
	"errors"
	"os"

	"gopkg.in/yaml.v3"
)

// OpenAIEmbedderConfig holds configuration for the OpenAI-compatible embedder.
type OpenAIEmbedderConfig struct {
	BaseURL     string `yaml:"base_url"`
	APIKeyEnv   string `yaml:"api_key_env"`
	Model       string `yaml:"model"`
	TimeoutSecs int    `yaml:"timeout_secs"`
}

// EmbedderConfig selects and configures the text embedder implementation.
// Dimension is fixed per deployment; changing it forces a full corpus
// rebuild on the next bootstrap.
type EmbedderConfig struct {
	Type      string                `yaml:"type"`
	Dimension int                   `yaml:"dimension"`
	OpenAI    *OpenAIEmbedderConfig `yaml:"openai,omitempty"`
}

// QdrantConfig contains connection details for a Qdrant vector store.
type QdrantConfig struct {
	URL         string `yaml:"url"`
	APIKey      string `yaml:"api_key"`
	Collection  string `yaml:"collection"`
	TimeoutSecs int    `yaml:"timeout_secs"`
}

// VectorStoreConfig selects and configures the vector store implementation.
type VectorStoreConfig struct {
	Type   string        `yaml:"type"`
	Qdrant *QdrantConfig `yaml:"qdrant,omitempty"`
}

// RetrievalConfig holds the confidence thresholds and search fan-out.
type RetrievalConfig struct {
	Threshold        float64 `yaml:"threshold"`
	ContextThreshold float64 `yaml:"context_threshold"`
	Fanout           int     `yaml:"fanout"`
}

// IntentConfig holds the intent classification floor.
type IntentConfig struct {
	Floor  float64 `yaml:"floor"`
	Fanout int     `yaml:"fanout"`
}

// CorpusConfig bounds the generated corpus and the bootstrap check.
type CorpusConfig struct {
	MinEntries         int     `yaml:"min_entries"`
	MaxEntries         int     `yaml:"max_entries"`
	AnswersPerQuestion int     `yaml:"answers_per_question"`
	SynonymProb        float64 `yaml:"synonym_prob"`
	Seed               int64   `yaml:"seed"`
	MinPoints          int     `yaml:"min_points"`
}

// RedisSessionConfig configures the Redis session store backend.
type RedisSessionConfig struct {
	URL     string `yaml:"url"`
	TTLSecs int    `yaml:"ttl_secs"`
}

// MemoryConfig configures conversation memory.
type MemoryConfig struct {
	Window int                 `yaml:"window"`
	Store  string              `yaml:"store"`
	Redis  *RedisSessionConfig `yaml:"redis,omitempty"`
}

// AppConfig is the root application configuration structure.
type AppConfig struct {
	Embedder    EmbedderConfig    `yaml:"embedder"`
	VectorStore VectorStoreConfig `yaml:"vector_store"`
	Retrieval   RetrievalConfig   `yaml:"retrieval"`
	Intent      IntentConfig      `yaml:"intent"`
	Corpus      CorpusConfig      `yaml:"corpus"`
	Memory      MemoryConfig      `yaml:"memory"`
	EventPath   string            `yaml:"event_path"`
	LogLevel    string            `yaml:"log_level"`
}

// Load reads a config from a specified path. If the file does not exist,
// returns defaults.
func Load(path string) (*AppConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			cfg := defaultConfig()
			return cfg, nil
		}
		return nil, err
	}
	var cfg AppConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}
	applyConfigDefaults(&cfg)
	return &cfg, nil
}

func defaultConfig() *AppConfig {
	cfg := &AppConfig{}
	applyConfigDefaults(cfg)
	return cfg
}

func applyConfigDefaults(cfg *AppConfig) {
	if cfg.Embedder.Type == "" {
		cfg.Embedder.Type = "wordhash"
	}
	if cfg.Embedder.Dimension == 0 {
		switch cfg.Embedder.Type {
		case "openai":
			cfg.Embedder.Dimension = 768
		default:
			cfg.Embedder.Dimension = 256
		}
	}
	if cfg.Embedder.Type == "openai" {
		if cfg.Embedder.OpenAI == nil {
			cfg.Embedder.OpenAI = &OpenAIEmbedderConfig{}
		}
		if cfg.Embedder.OpenAI.BaseURL == "" {
			cfg.Embedder.OpenAI.BaseURL = "https://api.openai.com/v1"
		}
		if cfg.Embedder.OpenAI.APIKeyEnv == "" {
			cfg.Embedder.OpenAI.APIKeyEnv = "OPENAI_API_KEY"
		}
		if cfg.Embedder.OpenAI.Model == "" {
			cfg.Embedder.OpenAI.Model = "text-embedding-3-small"
		}
		if cfg.Embedder.OpenAI.TimeoutSecs == 0 {
			cfg.Embedder.OpenAI.TimeoutSecs = 30
		}
	}
	if cfg.VectorStore.Type == "" {
		cfg.VectorStore.Type = "memory"
	}
	if cfg.VectorStore.Type == "qdrant" && cfg.VectorStore.Qdrant != nil {
		if cfg.VectorStore.Qdrant.Collection == "" {
			cfg.VectorStore.Qdrant.Collection = "chatbot_passagem_ano"
		}
		if cfg.VectorStore.Qdrant.TimeoutSecs == 0 {
			cfg.VectorStore.Qdrant.TimeoutSecs = 15
		}
	}
	if cfg.Retrieval.Threshold == 0 {
		cfg.Retrieval.Threshold = 0.6
	}
	if cfg.Retrieval.ContextThreshold == 0 {
		cfg.Retrieval.ContextThreshold = 0.55
	}
	if cfg.Retrieval.Fanout == 0 {
		cfg.Retrieval.Fanout = 5
	}
	if cfg.Intent.Floor == 0 {
		cfg.Intent.Floor = 0.4
	}
	if cfg.Intent.Fanout == 0 {
		cfg.Intent.Fanout = 3
	}
	if cfg.Corpus.MinEntries == 0 {
		cfg.Corpus.MinEntries = 800
	}
	if cfg.Corpus.MaxEntries == 0 {
		cfg.Corpus.MaxEntries = 2000
	}
	if cfg.Corpus.AnswersPerQuestion == 0 {
		cfg.Corpus.AnswersPerQuestion = 3
	}
	if cfg.Corpus.SynonymProb == 0 {
		cfg.Corpus.SynonymProb = 0.5
	}
	if cfg.Corpus.Seed == 0 {
		cfg.Corpus.Seed = 42
	}
	if cfg.Corpus.MinPoints == 0 {
		cfg.Corpus.MinPoints = 500
	}
	if cfg.Memory.Window == 0 {
		cfg.Memory.Window = 5
	}
	if cfg.Memory.Store == "" {
		cfg.Memory.Store = "memory"
	}
	if cfg.Memory.Store == "redis" {
		if cfg.Memory.Redis == nil {
			cfg.Memory.Redis = &RedisSessionConfig{}
		}
		if cfg.Memory.Redis.URL == "" {
			cfg.Memory.Redis.URL = "redis://localhost:6379/0"
		}
		if cfg.Memory.Redis.TTLSecs == 0 {
			cfg.Memory.Redis.TTLSecs = 3600
		}
	}
	if cfg.EventPath == "" {
		cfg.EventPath = "event.json"
	}
	if cfg.LogLevel == "" {
		cfg.LogLevel = "info"
	}
}
