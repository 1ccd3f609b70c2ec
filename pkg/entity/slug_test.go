package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSlug(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{name: "simple name", in: "King SARL", want: "king_sarl"},
		{name: "digits kept", in: "Exemple de Nom 123", want: "exemple_de_nom_123"},
		{name: "accents dropped", in: "_Déjà_Valide_", want: "_dj_valide_"},
		{name: "hyphen kept", in: "Foo-Bar", want: "foo-bar"},
		{name: "symbols dropped", in: "A&B (Paris)!", want: "ab_paris"},
		{name: "empty", in: "", want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Slug(tt.in))
		})
	}
}

func TestSlugIdempotent(t *testing.T) {
	inputs := []string{"King SARL", "Exemple de Nom 123", "_Déjà_Valide_", "a b c"}
	for _, in := range inputs {
		once := Slug(in)
		assert.Equal(t, once, Slug(once))
	}
}

func TestSlugCharset(t *testing.T) {
	for _, r := range Slug("Some Wéird Name 42 /|\\ _-") {
		valid := r == '_' || r == '-' || (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9')
		assert.True(t, valid, "unexpected rune %q", r)
	}
}
