// Package textnorm provides the canonical text normalization applied to
// every utterance before matching: lowercase, accent stripping, punctuation
// collapsed to spaces, whitespace collapsed. Normalization is deterministic
// and idempotent.
package textnorm

import (
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

var (
	stripAccents = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	nonWordRe    = regexp.MustCompile(`[^\p{L}\p{N}\s]+`)
	spacesRe     = regexp.MustCompile(`\s+`)
)

// Normalize returns the canonical form of raw text.
func Normalize(text string) string {
	t := strings.ToLower(strings.TrimSpace(text))
	if stripped, _, err := transform.String(stripAccents, t); err == nil {
		t = stripped
	}
	t = nonWordRe.ReplaceAllString(t, " ")
	t = spacesRe.ReplaceAllString(t, " ")
	return strings.TrimSpace(t)
}

// Key builds the canonical dedup key for a question/answer pair within a
// topic: trimmed, lowercased question and answer.
func Key(topic, question, answer string) string {
	return topic + "\x00" + strings.ToLower(strings.TrimSpace(question)) +
		"\x00" + strings.ToLower(strings.TrimSpace(answer))
}

// ContainsAny reports whether the normalized text contains any of the
// given normalized tokens as whole words.
func ContainsAny(normalized string, tokens []string) bool {
	padded := " " + normalized + " "
	for _, tok := range tokens {
		if strings.Contains(padded, " "+tok+" ") {
			return true
		}
	}
	return false
}
