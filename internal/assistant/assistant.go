// Package assistant implements the response arbiter: a priority-ordered
// cascade of strategies tried until one resolves, followed by write-back
// and tone post-processing. The user always gets a response; internal
// failures degrade to the generic pool, never to a raw error.
package assistant

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"time"

	log "github.com/sirupsen/logrus"

	"festabot/internal/domain"
	"festabot/internal/intent"
	"festabot/internal/memory"
	"festabot/internal/retrieval"
	"festabot/internal/rules"
	"festabot/internal/textnorm"
)

const defaultTurnTimeout = 10 * time.Second

var greetingReplies = []string{
	"Bom ver-te, %s! Que nunca falte o café nem o champanhe ☕🍾",
	"Olá, %s! Pronto para a festa? 🎉",
	"Boas, %s! Preparado para dançar? 💃🕺",
	"%s, que bom ler-te! Vai ser épico. 🥳",
}

var genericReplies = []string{
	"Vai ser uma noite épica 🎉",
	"Só posso dizer que vai haver surpresas 😉",
	"Não revelo tudo, mas vai ser memorável 🎆",
}

// Assistant wires the retrieval engine, intent classifier, rule table,
// corpus store and conversation memory into one per-turn decision.
// It is constructed once at process start; nothing here reinitializes
// clients mid-request.
type Assistant struct {
	engine      *retrieval.Engine
	classifier  *intent.Classifier
	store       domain.VectorStore
	embedder    domain.Embedder
	rules       *rules.Table
	sessions    memory.Store
	rng         *rand.Rand
	knownNames  []string
	scrollLimit int
	turnTimeout time.Duration
}

type Config struct {
	// KnownNames are identities the confirmation queries may reference
	// before anyone has confirmed.
	KnownNames []string
	// ScrollLimit bounds the confirmations page size.
	ScrollLimit int
	// TurnTimeout bounds each embed+search round trip; an expired turn
	// degrades to the generic pool instead of failing.
	TurnTimeout time.Duration
}

func New(engine *retrieval.Engine, classifier *intent.Classifier, store domain.VectorStore,
	embedder domain.Embedder, table *rules.Table, sessions memory.Store,
	rng *rand.Rand, cfg Config) *Assistant {
	if cfg.ScrollLimit <= 0 {
		cfg.ScrollLimit = 500
	}
	if cfg.TurnTimeout <= 0 {
		cfg.TurnTimeout = defaultTurnTimeout
	}
	return &Assistant{
		engine:      engine,
		classifier:  classifier,
		store:       store,
		embedder:    embedder,
		rules:       table,
		sessions:    sessions,
		rng:         rng,
		knownNames:  cfg.KnownNames,
		scrollLimit: cfg.ScrollLimit,
		turnTimeout: cfg.TurnTimeout,
	}
}

// Respond runs one conversational turn for the session. Processing is
// strictly sequential per session: normalize, cascade, write-back, tone.
func (a *Assistant) Respond(ctx context.Context, sessionID, user, raw string) string {
	ctx, cancel := context.WithTimeout(ctx, a.turnTimeout)
	defer cancel()

	normalized := textnorm.Normalize(raw)
	state, err := a.sessions.Load(ctx, sessionID)
	if err != nil {
		log.WithError(err).Warn("session load failed, starting fresh")
		state = memory.NewState(0)
	}

	answer, topic := a.decide(ctx, state, user, normalized)

	a.writeBack(ctx, user, normalized, answer, topic)
	state.Add(normalized)
	state.LastTopic = topic
	if err := a.sessions.Save(ctx, sessionID, state); err != nil {
		log.WithError(err).Warn("session save failed")
	}

	return adjustTone(answer, topic, a.rng)
}

// decide walks the strategy cascade in priority order and returns the
// first resolution with its topic.
func (a *Assistant) decide(ctx context.Context, state *memory.State, user, normalized string) (string, string) {
	// 1. pending confirmation reply
	if state.LastTopic == confirmationsTopic && isAffirmative(normalized) {
		return a.acknowledgeConfirmation(ctx, user), confirmationsTopic
	}

	// 2. semantic retrieval, topic-filtered by classified intent
	topic := a.classifier.Classify(ctx, normalized)
	if hit, err := a.engine.Lookup(ctx, normalized, topic); err == nil {
		return hit.Entry.Answer, hit.Entry.Topic
	} else if !errors.Is(err, domain.ErrNoMatch) {
		log.WithError(err).Warn("retrieval failed unexpectedly")
	}
	if windowCtx := state.Context(); windowCtx != "" {
		if hit, err := a.engine.LookupWithContext(ctx, normalized, windowCtx, topic); err == nil {
			return hit.Entry.Answer, hit.Entry.Topic
		}
	}

	// 3. keyword rule table
	if resp, ruleTopic, ok := a.rules.Match(normalized); ok {
		return resp, ruleTopic
	}

	// 4. stored-confirmation queries
	if resp, ok := a.answerConfirmationQuery(ctx, normalized); ok {
		return resp, confirmationsTopic
	}

	// 5. greeting detection, independent of retrieval
	if textnorm.ContainsAny(normalized, retrieval.GreetingTokens) {
		return fmt.Sprintf(greetingReplies[a.rng.Intn(len(greetingReplies))], displayName(user)), "saudacao"
	}

	// 6. generic pool
	return genericReplies[a.rng.Intn(len(genericReplies))], "geral"
}

// acknowledgeConfirmation records the confirmation and reports the
// refreshed attendee count.
func (a *Assistant) acknowledgeConfirmation(ctx context.Context, user string) string {
	names, err := a.confirmedIdentities(ctx)
	if err != nil {
		log.WithError(err).Warn("confirmations recount failed")
	}
	total := len(names)
	if !contains(names, user) {
		total++
	}
	return fmt.Sprintf("Anotado, %s! Ficas na lista 🎉 Já somos %d confirmados.", displayName(user), total)
}

// writeBack persists the resolved turn so future retrieval can answer
// the same question directly. The content-derived id makes repeated
// turns idempotent. Failures are logged and swallowed.
func (a *Assistant) writeBack(ctx context.Context, user, question, answer, topic string) {
	if question == "" {
		return
	}
	vec, err := a.embedder.Encode(ctx, question)
	if err != nil {
		log.WithError(err).Warn("write-back embed failed")
		return
	}
	entry := domain.Entry{
		Question:  question,
		Answer:    answer,
		Topic:     topic,
		User:      user,
		Timestamp: time.Now(),
	}
	point := domain.Point{
		ID:     domain.PointID(topic, question, answer),
		Vector: vec,
		Entry:  entry,
	}
	if err := a.store.Upsert(ctx, []domain.Point{point}); err != nil {
		log.WithError(err).Warn("write-back upsert failed")
	}
}

func displayName(user string) string {
	if user == "" {
		return "convidado"
	}
	return user
}

func contains(list []string, v string) bool {
	for _, s := range list {
		if s == v {
			return true
		}
	}
	return false
}
