package rules

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"festabot/internal/event"
	"festabot/internal/textnorm"
)

func TestTemplateParse(t *testing.T) {
	tpl, err := Parse("A festa é em {location} às {start_time}")
	require.NoError(t, err)
	got := tpl.Render(event.Default())
	assert.Equal(t, "A festa é em Casa do Miguel, Porto às 21h00", got)
}

func TestTemplateParseErrors(t *testing.T) {
	_, err := Parse("olá {nope}")
	assert.Error(t, err)
	_, err = Parse("olá {location")
	assert.Error(t, err)
}

func TestNoPartialSlotCollision(t *testing.T) {
	// A slot name that prefixes another must not bleed into it.
	tpl, err := Parse("{start_time}{location}")
	require.NoError(t, err)
	info := event.Info{Location: "X", StartTime: "Y"}
	assert.Equal(t, "YX", tpl.Render(info))
}

func TestFirstMatchingRuleWins(t *testing.T) {
	table := DefaultTable(event.Default())
	// "onde" and "horas" both present; location rule is first.
	resp, topic, ok := table.Match(textnorm.Normalize("Onde e a que horas?"))
	require.True(t, ok)
	assert.Equal(t, "festa", topic)
	assert.Contains(t, resp, "Casa do Miguel, Porto")
}

func TestMatchLocationQuery(t *testing.T) {
	table := DefaultTable(event.Default())
	resp, topic, ok := table.Match(textnorm.Normalize("onde é a festa"))
	require.True(t, ok)
	assert.Equal(t, "festa", topic)
	assert.Contains(t, resp, "Casa do Miguel, Porto")
}

func TestNoMatch(t *testing.T) {
	table := DefaultTable(event.Default())
	_, _, ok := table.Match("conta uma piada")
	assert.False(t, ok)
}

func TestWifiRule(t *testing.T) {
	table := DefaultTable(event.Default())
	resp, topic, ok := table.Match(textnorm.Normalize("qual é a senha do wi-fi?"))
	require.True(t, ok)
	assert.Equal(t, "wifi", topic)
	assert.Contains(t, resp, "CasaDoMiguel2025")
}
