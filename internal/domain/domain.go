package domain

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// Entry is a single question/answer pair stored in the corpus.
// Entries are written once and never mutated in place; the whole
// collection is dropped and rebuilt when the corpus is regenerated.
type Entry struct {
	ID        string
	Question  string
	Answer    string
	Topic     string
	User      string
	Timestamp time.Time
}

// Hit is an entry returned by a similarity search with its score.
// Scores follow the store's metric (cosine: higher is closer, 1.0 exact).
type Hit struct {
	Entry Entry
	Score float64
}

// Filter restricts a search or scroll to entries whose payload field
// equals the given value.
type Filter struct {
	Field string
	Value string
}

// TopicFilter builds the common topic equality filter.
func TopicFilter(topic string) *Filter {
	return &Filter{Field: "topic", Value: topic}
}

// Point couples an entry with its embedding vector for storage.
type Point struct {
	ID     string
	Vector []float64
	Entry  Entry
}

// Embedder converts free text into a fixed-length vector representation.
// Implementations must be deterministic for a fixed model version.
type Embedder interface {
	Name() string
	Dimension() int
	Encode(ctx context.Context, text string) ([]float64, error)
	EncodeBatch(ctx context.Context, texts []string) ([][]float64, error)
}

// VectorStore persists (vector, payload) points for one named collection
// and supports similarity search. Upsert and Search must be safe under
// concurrent callers.
type VectorStore interface {
	// CreateCollection creates the collection with the given vector
	// dimension (cosine metric). Creating an existing collection with the
	// same schema succeeds.
	CreateCollection(ctx context.Context, dimension int) error
	// DeleteCollection drops the collection and all its points.
	DeleteCollection(ctx context.Context) error
	// Info reports the stored vector dimension and point count.
	// Returns ErrNotFound when the collection does not exist.
	Info(ctx context.Context) (dimension, count int, err error)
	// Upsert inserts or overwrites points by id.
	Upsert(ctx context.Context, points []Point) error
	// Search returns up to k hits ranked by descending similarity,
	// optionally restricted by a payload filter.
	Search(ctx context.Context, vector []float64, k int, filter *Filter) ([]Hit, error)
	// Scroll pages through stored entries without ranking.
	Scroll(ctx context.Context, filter *Filter, limit int) ([]Entry, error)
}

// pointNamespace seeds deterministic point ids. Fixed so that the same
// (topic, question, answer) always maps to the same id, making both bulk
// feeding and per-turn write-back idempotent.
var pointNamespace = uuid.MustParse("8e5a6c1e-9f1d-4c5a-b6c3-2f1f0a7d4e92")

// PointID derives a stable uuid for an entry from its content key.
func PointID(topic, question, answer string) string {
	return uuid.NewSHA1(pointNamespace, []byte(topic+"\x00"+question+"\x00"+answer)).String()
}
