package assistant

import (
	"context"
	"fmt"
	"sort"
	"strings"

	log "github.com/sirupsen/logrus"

	"festabot/internal/domain"
	"festabot/internal/textnorm"
)

const confirmationsTopic = "confirmacoes"

// affirmativeTokens mark an utterance as a confirmation reply when the
// previous turn resolved to the confirmations topic.
var affirmativeTokens = []string{"sim", "claro", "confirmo", "vou", "bora", "conto", "yes"}

var (
	aggregateTokens = []string{"quem"}
	confirmVerbs    = []string{"vai", "vem", "confirmou", "confirmaram", "falta"}
)

func isAffirmative(normalized string) bool {
	return textnorm.ContainsAny(normalized, affirmativeTokens)
}

// confirmedIdentities scrolls every confirmations entry and returns the
// deduplicated set of identities, sorted for stable output. Only entries
// whose question is an affirmative utterance count: questions *about*
// confirmations are also tagged with this topic on write-back and must
// not read as confirmations themselves.
func (a *Assistant) confirmedIdentities(ctx context.Context) ([]string, error) {
	entries, err := a.store.Scroll(ctx, domain.TopicFilter(confirmationsTopic), a.scrollLimit)
	if err != nil {
		return nil, err
	}
	seen := make(map[string]struct{}, len(entries))
	var names []string
	for _, e := range entries {
		if e.User == "" || !isAffirmative(textnorm.Normalize(e.Question)) {
			continue
		}
		if _, ok := seen[e.User]; ok {
			continue
		}
		seen[e.User] = struct{}{}
		names = append(names, e.User)
	}
	sort.Strings(names)
	return names, nil
}

// answerConfirmationQuery handles aggregate ("who is attending") and
// per-identity ("did X confirm") questions against stored confirmations.
func (a *Assistant) answerConfirmationQuery(ctx context.Context, normalized string) (string, bool) {
	if !textnorm.ContainsAny(normalized, confirmVerbs) {
		return "", false
	}
	names, err := a.confirmedIdentities(ctx)
	if err != nil {
		log.WithError(err).Warn("confirmations scan failed")
		return "", false
	}
	if textnorm.ContainsAny(normalized, aggregateTokens) {
		if len(names) == 0 {
			return "Ainda ninguém confirmou — sê o primeiro! 😄", true
		}
		return fmt.Sprintf("Confirmados até agora: %s ✅", strings.Join(names, ", ")), true
	}
	// per-identity: the query must mention a confirmed or known name
	for _, n := range names {
		if textnorm.ContainsAny(normalized, []string{textnorm.Normalize(n)}) {
			return fmt.Sprintf("Sim, %s já confirmou ✅", n), true
		}
	}
	for _, n := range a.knownNames {
		if textnorm.ContainsAny(normalized, []string{textnorm.Normalize(n)}) {
			return fmt.Sprintf("%s ainda não confirmou 😉", n), true
		}
	}
	return "", false
}
