// Package retrieval implements the topic-filtered similarity lookup
// with confidence gating and the greeting anti-pollution guard.
package retrieval

import (
	"context"
	"fmt"
	"strings"

	log "github.com/sirupsen/logrus"

	"festabot/internal/domain"
	"festabot/internal/intent"
	"festabot/internal/textnorm"
)

const (
	defaultThreshold        = 0.6
	defaultContextThreshold = 0.55
	defaultFanout           = 5
)

// GreetingTokens are the whole-word markers a query must carry before a
// greeting-topic hit is allowed to answer it.
var GreetingTokens = []string{"ola", "boas", "bom dia", "boa tarde", "boa noite", "hey", "oi", "viva"}

// greeting-type topics subject to the guard
var greetingTopics = map[string]struct{}{
	"saudacao": {},
}

type Engine struct {
	store            domain.VectorStore
	embedder         domain.Embedder
	threshold        float64
	contextThreshold float64
	fanout           int
}

type Config struct {
	// Threshold is the minimum similarity to accept a direct hit.
	Threshold float64
	// ContextThreshold applies to window-biased lookups; slightly lower
	// because the concatenated context dilutes the query signal.
	ContextThreshold float64
	Fanout           int
}

func NewEngine(store domain.VectorStore, embedder domain.Embedder, cfg Config) *Engine {
	if cfg.Threshold <= 0 {
		cfg.Threshold = defaultThreshold
	}
	if cfg.ContextThreshold <= 0 {
		cfg.ContextThreshold = defaultContextThreshold
	}
	if cfg.Fanout <= 0 {
		cfg.Fanout = defaultFanout
	}
	return &Engine{
		store:            store,
		embedder:         embedder,
		threshold:        cfg.Threshold,
		contextThreshold: cfg.ContextThreshold,
		fanout:           cfg.Fanout,
	}
}

// Lookup embeds the normalized query and searches the corpus, filtered
// by topic when one is known. Backend failures are logged and degraded
// to ErrNoMatch so the cascade can proceed.
func (e *Engine) Lookup(ctx context.Context, normalized, topic string) (domain.Hit, error) {
	return e.lookup(ctx, normalized, normalized, topic, e.threshold)
}

// LookupWithContext biases the search by prefixing the recent window,
// at a slightly lower threshold.
func (e *Engine) LookupWithContext(ctx context.Context, normalized, windowContext, topic string) (domain.Hit, error) {
	text := strings.TrimSpace(windowContext + " " + normalized)
	return e.lookup(ctx, text, normalized, topic, e.contextThreshold)
}

func (e *Engine) lookup(ctx context.Context, embedText, query, topic string, threshold float64) (domain.Hit, error) {
	vec, err := e.embedder.Encode(ctx, embedText)
	if err != nil {
		log.WithError(err).Warn("retrieval: embed failed")
		return domain.Hit{}, fmt.Errorf("embed: %v: %w", err, domain.ErrNoMatch)
	}
	var filter *domain.Filter
	if topic != "" && topic != intent.None {
		filter = domain.TopicFilter(topic)
	}
	hits, err := e.store.Search(ctx, vec, e.fanout, filter)
	if err != nil {
		log.WithError(err).Warn("retrieval: search failed")
		return domain.Hit{}, fmt.Errorf("search: %v: %w", err, domain.ErrNoMatch)
	}
	if len(hits) == 0 {
		return domain.Hit{}, domain.ErrNoMatch
	}
	top := hits[0]
	if top.Score < threshold {
		return domain.Hit{}, domain.ErrNoMatch
	}
	if suppressGreetingHijack(top, query) {
		log.WithFields(log.Fields{"score": top.Score, "topic": top.Entry.Topic}).
			Debug("retrieval: greeting hit suppressed for non-greeting query")
		return domain.Hit{}, domain.ErrNoMatch
	}
	return top, nil
}

// suppressGreetingHijack rejects a greeting-topic top hit when the query
// carries no greeting token, so generic salutations cannot hijack
// unrelated queries under sparse topic metadata.
func suppressGreetingHijack(top domain.Hit, query string) bool {
	if _, ok := greetingTopics[top.Entry.Topic]; !ok {
		return false
	}
	return !textnorm.ContainsAny(query, GreetingTokens)
}
