package textnorm

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalize(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"Onde é a FESTA?", "onde e a festa"},
		{"  A que horas   começa?! ", "a que horas comeca"},
		{"Olá, tudo bem???", "ola tudo bem"},
		{"wi-fi", "wi fi"},
		{"", ""},
		{"🎉🎉", ""},
	}
	for _, c := range cases {
		assert.Equal(t, c.want, Normalize(c.in), "input %q", c.in)
	}
}

func TestNormalizeIdempotent(t *testing.T) {
	inputs := []string{"Onde é a festa?", "A QUE HORAS COMEÇA", "já há muita gente confirmada?"}
	for _, in := range inputs {
		once := Normalize(in)
		assert.Equal(t, once, Normalize(once))
	}
}

func TestContainsAny(t *testing.T) {
	assert.True(t, ContainsAny("ola bom dia amigo", []string{"bom dia"}))
	assert.True(t, ContainsAny("boas", []string{"ola", "boas"}))
	assert.False(t, ContainsAny("bolas grandes", []string{"boas", "ola"}))
	assert.False(t, ContainsAny("", []string{"ola"}))
}
