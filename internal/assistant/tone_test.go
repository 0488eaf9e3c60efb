package assistant

import (
	"math/rand"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestAdjustToneInformationalPassesThrough(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	assert.Equal(t, "21h00", adjustTone("21h00", "horario", rng))
	assert.Equal(t, "CasaDoMiguel2025", adjustTone("CasaDoMiguel2025", "wifi", rng))
}

func TestAdjustToneExpressiveAppendsOneFlourish(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	out := adjustTone("vai ser épico", "festa", rng)
	assert.NotEqual(t, "vai ser épico", out)

	found := false
	for _, f := range flourishes {
		if out == "vai ser épico "+f {
			found = true
		}
	}
	assert.True(t, found, "expected exactly one appended flourish, got %q", out)
}

func TestAdjustToneKeepsExistingFlourish(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	assert.Equal(t, "bora lá 🎉", adjustTone("bora lá 🎉", "festa", rng))
}

func TestAdjustToneUnknownTopicPassesThrough(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	assert.Equal(t, "ok", adjustTone("ok", "desconhecido", rng))
}

func TestSalutation(t *testing.T) {
	day := func(h int) time.Time {
		return time.Date(2025, 12, 31, h, 0, 0, 0, time.UTC)
	}
	assert.Equal(t, "Boa noite", Salutation(day(3)))
	assert.Equal(t, "Bom dia", Salutation(day(9)))
	assert.Equal(t, "Boa tarde", Salutation(day(15)))
	assert.Equal(t, "Boa noite", Salutation(day(22)))
}
