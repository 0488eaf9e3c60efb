// Package corpus builds the bulk-loaded training corpus: hand-authored
// per-topic templates expanded by slot filling, synonym and surface-form
// augmentation, deduplicated and volume-capped before upload.
package corpus

import (
	"math/rand"
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"

	"festabot/internal/textnorm"
)

// Pair is one generated (question, answer, topic) candidate.
type Pair struct {
	Question string
	Answer   string
	Topic    string
}

// TemplateSet is a hand-authored block of question and answer templates
// for one topic. Templates may contain {slot} references filled from the
// generator's vocabularies. Synonyms are (from, to) substitutions applied
// to questions with a fixed probability.
type TemplateSet struct {
	Topic     string
	Questions []string
	Answers   []string
	Synonyms  [][2]string
}

// Config bounds the generated corpus.
type Config struct {
	// MinEntries backfills by sampling with replacement when the
	// deduplicated set is smaller.
	MinEntries int
	// MaxEntries shuffles and truncates when the set is larger.
	MaxEntries int
	// AnswersPerQuestion caps the cross-product expansion per question.
	AnswersPerQuestion int
	// SynonymProb is the per-rule substitution probability.
	SynonymProb float64
}

func (c *Config) applyDefaults() {
	if c.AnswersPerQuestion <= 0 {
		c.AnswersPerQuestion = 3
	}
	if c.SynonymProb <= 0 {
		c.SynonymProb = 0.5
	}
	if c.MinEntries <= 0 {
		c.MinEntries = 800
	}
	if c.MaxEntries <= 0 || c.MaxEntries < c.MinEntries {
		c.MaxEntries = 2000
	}
}

// Generator expands template sets into a shuffled, deduplicated,
// volume-bounded corpus. The random source is injected so runs are
// reproducible under a fixed seed.
type Generator struct {
	cfg    Config
	sets   []TemplateSet
	slots  map[string][]string
	rng    *rand.Rand
	slotRe *regexp.Regexp
}

func NewGenerator(cfg Config, sets []TemplateSet, slots map[string][]string, rng *rand.Rand) *Generator {
	cfg.applyDefaults()
	if slots == nil {
		slots = SlotVocabularies()
	}
	return &Generator{
		cfg:    cfg,
		sets:   sets,
		slots:  slots,
		rng:    rng,
		slotRe: regexp.MustCompile(`\{(\w+)\}`),
	}
}

// Generate produces the final corpus: expand, augment, deduplicate,
// then bring the size into [MinEntries, MaxEntries].
func (g *Generator) Generate() []Pair {
	var raw []Pair
	for _, set := range g.sets {
		raw = append(raw, g.expandSet(set)...)
	}
	deduped := Deduplicate(raw)
	g.shuffle(deduped)

	if len(deduped) > g.cfg.MaxEntries {
		deduped = deduped[:g.cfg.MaxEntries]
	}
	// Backfill by sampling with replacement, bounded so an undersized
	// template set cannot loop forever.
	for i := 0; len(deduped) < g.cfg.MinEntries && i < g.cfg.MinEntries && len(deduped) > 0; i++ {
		deduped = append(deduped, deduped[g.rng.Intn(len(deduped))])
	}
	g.shuffle(deduped)
	return deduped
}

func (g *Generator) expandSet(set TemplateSet) []Pair {
	questions := make([]string, 0, len(set.Questions)*2)
	for _, q := range set.Questions {
		questions = append(questions, q)
		for _, syn := range set.Synonyms {
			if strings.Contains(q, syn[0]) && g.rng.Float64() < g.cfg.SynonymProb {
				questions = append(questions, strings.ReplaceAll(q, syn[0], syn[1]))
			}
		}
	}

	var pairs []Pair
	for _, q := range questions {
		answers := g.sampleAnswers(set.Answers)
		for _, variant := range surfaceVariants(g.fillSlots(q)) {
			for _, a := range answers {
				pairs = append(pairs, Pair{
					Question: variant,
					Answer:   g.fillSlots(a),
					Topic:    set.Topic,
				})
			}
		}
	}
	return pairs
}

// sampleAnswers draws up to AnswersPerQuestion distinct answers so the
// cross-product stays bounded per topic.
func (g *Generator) sampleAnswers(answers []string) []string {
	if len(answers) <= g.cfg.AnswersPerQuestion {
		return answers
	}
	idxs := g.rng.Perm(len(answers))[:g.cfg.AnswersPerQuestion]
	out := make([]string, 0, len(idxs))
	for _, i := range idxs {
		out = append(out, answers[i])
	}
	return out
}

// fillSlots replaces each {slot} occurrence with an independent uniform
// choice from its vocabulary. Unknown slots are left untouched.
func (g *Generator) fillSlots(s string) string {
	return g.slotRe.ReplaceAllStringFunc(s, func(m string) string {
		name := m[1 : len(m)-1]
		values := g.slots[name]
		if len(values) == 0 {
			return m
		}
		return values[g.rng.Intn(len(values))]
	})
}

func (g *Generator) shuffle(pairs []Pair) {
	g.rng.Shuffle(len(pairs), func(i, j int) {
		pairs[i], pairs[j] = pairs[j], pairs[i]
	})
}

// surfaceVariants produces casing/punctuation variants of a question,
// deduplicated while preserving first-seen order.
func surfaceVariants(q string) []string {
	candidates := []string{q, capitalize(q), q + "?", q + "!"}
	seen := make(map[string]struct{}, len(candidates))
	out := make([]string, 0, len(candidates))
	for _, c := range candidates {
		if _, ok := seen[c]; ok {
			continue
		}
		seen[c] = struct{}{}
		out = append(out, c)
	}
	return out
}

func capitalize(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError {
		return s
	}
	return string(unicode.ToUpper(r)) + s[size:]
}

// Deduplicate removes repeats by canonical key (topic, trimmed-lowercased
// question, trimmed-lowercased answer), keeping first occurrences in
// order. It is idempotent.
func Deduplicate(pairs []Pair) []Pair {
	seen := make(map[string]struct{}, len(pairs))
	out := make([]Pair, 0, len(pairs))
	for _, p := range pairs {
		key := textnorm.Key(p.Topic, p.Question, p.Answer)
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		out = append(out, p)
	}
	return out
}
