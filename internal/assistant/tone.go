package assistant

import (
	"math/rand"
	"strings"
	"time"
)

// Topic tone classes: expressive topics get one flourish appended when
// none is present; informational and unrecognized topics pass through.
var (
	expressiveTopics = map[string]struct{}{
		"festa": {}, "piadas": {}, "futebol": {}, "social": {},
		"saudacao": {}, "comida": {}, "bebida": {}, "geral": {},
	}
	informationalTopics = map[string]struct{}{
		"wifi": {}, "horario": {}, "roupa": {}, "logistica": {}, "confirmacoes": {},
	}
	flourishes = []string{"🎉", "😄", "😉", "🥳", "✨", "💃🕺", "🍾"}
)

// adjustTone is the pure post-processing step applied to every reply.
func adjustTone(text, topic string, rng *rand.Rand) string {
	if _, ok := informationalTopics[topic]; ok {
		return text
	}
	if _, ok := expressiveTopics[topic]; !ok {
		return text
	}
	for _, f := range flourishes {
		if strings.Contains(text, f) {
			return text
		}
	}
	return text + " " + flourishes[rng.Intn(len(flourishes))]
}

// Salutation picks the time-of-day greeting for the session opener.
func Salutation(t time.Time) string {
	switch h := t.Hour(); {
	case h < 6:
		return "Boa noite"
	case h < 12:
		return "Bom dia"
	case h < 20:
		return "Boa tarde"
	default:
		return "Boa noite"
	}
}
