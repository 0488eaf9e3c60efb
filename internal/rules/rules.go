// Package rules implements the deterministic keyword fallback: an
// ordered rule table where the first rule whose trigger set intersects
// the normalized query wins.
package rules

import (
	"festabot/internal/event"
	"festabot/internal/textnorm"
)

// Rule couples a trigger keyword set with a response template and the
// topic recorded on write-back.
type Rule struct {
	Topic    string
	Triggers []string
	Template Template
}

// Table is a priority-ordered rule list, loaded once.
type Table struct {
	rules []Rule
	info  event.Info
}

func NewTable(info event.Info, rules []Rule) *Table {
	return &Table{rules: rules, info: info}
}

// DefaultTable covers the event logistics questions the corpus may not
// answer confidently: location, start time, wifi, dress code, bring list.
func DefaultTable(info event.Info) *Table {
	return NewTable(info, []Rule{
		{
			Topic:    "festa",
			Triggers: []string{"onde", "local", "morada", "sitio", "localizacao"},
			Template: MustParse("A festa é em {location} 🎆"),
		},
		{
			Topic:    "horario",
			Triggers: []string{"horas", "hora", "quando", "comeca"},
			Template: MustParse("Começa às {start_time} e vai até ao nascer do sol 🌅"),
		},
		{
			Topic:    "wifi",
			Triggers: []string{"wifi", "wi", "internet", "rede", "senha"},
			Template: MustParse("Wi-Fi: {network_credential} 📶"),
		},
		{
			Topic:    "roupa",
			Triggers: []string{"roupa", "vestir", "dress", "code"},
			Template: MustParse("Dress code: {dress_code} ✨"),
		},
		{
			Topic:    "logistica",
			Triggers: []string{"levar", "trazer", "levo", "trago"},
			Template: MustParse("Traz {items_to_bring} — o resto está tratado 😄"),
		},
	})
}

// Match returns the rendered response and topic of the first matching
// rule, or ok=false when no trigger intersects the query.
func (t *Table) Match(normalized string) (response, topic string, ok bool) {
	for _, r := range t.rules {
		if textnorm.ContainsAny(normalized, r.Triggers) {
			return r.Template.Render(t.info), r.Topic, true
		}
	}
	return "", "", false
}
