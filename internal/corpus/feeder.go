package corpus

import (
	"context"
	"errors"
	"fmt"

	log "github.com/sirupsen/logrus"

	"festabot/internal/domain"
)

const (
	defaultEmbedBatch  = 64
	defaultUpsertChunk = 500
)

// Feeder embeds generated pairs in batches and uploads them in
// bounded-size chunks, bounding both request size and memory.
type Feeder struct {
	store      domain.VectorStore
	embedder   domain.Embedder
	embedBatch int
	chunkSize  int
}

func NewFeeder(store domain.VectorStore, embedder domain.Embedder) *Feeder {
	return &Feeder{
		store:      store,
		embedder:   embedder,
		embedBatch: defaultEmbedBatch,
		chunkSize:  defaultUpsertChunk,
	}
}

// Rebuild drops and recreates the collection, then uploads the pairs.
// Readers may transiently observe a missing collection while this runs;
// that window is accepted.
func (f *Feeder) Rebuild(ctx context.Context, pairs []Pair) error {
	if err := f.store.DeleteCollection(ctx); err != nil {
		return fmt.Errorf("delete collection: %w", err)
	}
	if err := f.store.CreateCollection(ctx, f.embedder.Dimension()); err != nil {
		return fmt.Errorf("create collection: %w", err)
	}
	return f.Upload(ctx, pairs)
}

// Upload embeds and upserts pairs into the existing collection.
func (f *Feeder) Upload(ctx context.Context, pairs []Pair) error {
	for start := 0; start < len(pairs); start += f.chunkSize {
		end := start + f.chunkSize
		if end > len(pairs) {
			end = len(pairs)
		}
		chunk := pairs[start:end]
		points, err := f.embedChunk(ctx, chunk)
		if err != nil {
			return err
		}
		if err := f.store.Upsert(ctx, points); err != nil {
			return fmt.Errorf("upsert chunk at %d: %w", start, err)
		}
		log.WithFields(log.Fields{"uploaded": end, "total": len(pairs)}).Info("corpus chunk upserted")
	}
	return nil
}

func (f *Feeder) embedChunk(ctx context.Context, chunk []Pair) ([]domain.Point, error) {
	points := make([]domain.Point, 0, len(chunk))
	for start := 0; start < len(chunk); start += f.embedBatch {
		end := start + f.embedBatch
		if end > len(chunk) {
			end = len(chunk)
		}
		batch := chunk[start:end]
		texts := make([]string, len(batch))
		for i, p := range batch {
			texts[i] = p.Question
		}
		vecs, err := f.embedder.EncodeBatch(ctx, texts)
		if err != nil {
			return nil, fmt.Errorf("embed batch: %w", err)
		}
		for i, p := range batch {
			points = append(points, domain.Point{
				ID:     domain.PointID(p.Topic, p.Question, p.Answer),
				Vector: vecs[i],
				Entry: domain.Entry{
					Question: p.Question,
					Answer:   p.Answer,
					Topic:    p.Topic,
				},
			})
		}
	}
	return points, nil
}

// Bootstrap verifies the collection on startup: missing, wrong vector
// size, or below the minimum point count all trigger a full rebuild
// from the generator. Dimension drift is never patched in place.
func (f *Feeder) Bootstrap(ctx context.Context, minPoints int, gen *Generator) error {
	dim, count, err := f.store.Info(ctx)
	switch {
	case errors.Is(err, domain.ErrNotFound):
		log.Info("collection missing, building corpus")
	case err != nil:
		return fmt.Errorf("collection info: %w", err)
	case dim != f.embedder.Dimension():
		log.WithFields(log.Fields{"stored": dim, "model": f.embedder.Dimension()}).
			Warn("stored vector size does not match model, rebuilding")
	case count < minPoints:
		log.WithFields(log.Fields{"points": count, "min": minPoints}).
			Warn("collection underfilled, rebuilding")
	default:
		log.WithFields(log.Fields{"points": count, "dimension": dim}).Info("collection ok")
		return nil
	}
	return f.Rebuild(ctx, gen.Generate())
}
