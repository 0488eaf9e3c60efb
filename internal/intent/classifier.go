// Package intent maps a normalized query to a corpus topic. The
// classifier is corpus-based: an unfiltered similarity search whose top
// hit, when it clears the confidence floor, lends the query its stored
// topic.
package intent

import (
	"context"

	log "github.com/sirupsen/logrus"

	"festabot/internal/domain"
)

// None is returned when no topic clears the floor. Classification never
// fails hard; backend errors degrade to None.
const None = "none"

const (
	defaultFloor  = 0.4
	defaultFanout = 3
)

type Classifier struct {
	store    domain.VectorStore
	embedder domain.Embedder
	floor    float64
	fanout   int
}

type Config struct {
	Floor  float64
	Fanout int
}

func NewClassifier(store domain.VectorStore, embedder domain.Embedder, cfg Config) *Classifier {
	if cfg.Floor <= 0 {
		cfg.Floor = defaultFloor
	}
	if cfg.Fanout <= 0 {
		cfg.Fanout = defaultFanout
	}
	return &Classifier{store: store, embedder: embedder, floor: cfg.Floor, fanout: cfg.Fanout}
}

// Classify returns the topic of the nearest stored entry when its score
// clears the floor, otherwise None.
func (c *Classifier) Classify(ctx context.Context, normalized string) string {
	vec, err := c.embedder.Encode(ctx, normalized)
	if err != nil {
		log.WithError(err).Debug("intent: embed failed, treating as none")
		return None
	}
	hits, err := c.store.Search(ctx, vec, c.fanout, nil)
	if err != nil {
		log.WithError(err).Debug("intent: search failed, treating as none")
		return None
	}
	if len(hits) == 0 || hits[0].Score < c.floor {
		return None
	}
	return hits[0].Entry.Topic
}
