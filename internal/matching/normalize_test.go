package matching

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRemoveDiacritics(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"Čokolada", "Cokolada"},
		{"ćevapi", "cevapi"},
		{"Đumbir", "Dumbir"},
		{"šljive", "sljive"},
		{"žitarice", "zitarice"},
		{"brânză", "branza"},
		{"Iaurt ţară", "Iaurt tara"},
		{"ștrudel", "strudel"},
		{"plain text", "plain text"},
		{"", ""},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.expected, RemoveDiacritics(tt.input))
		})
	}
}

func TestContainsFold(t *testing.T) {
	tests := []struct {
		name     string
		haystack string
		needle   string
		expected bool
	}{
		{"case insensitive", "Lapte Zuzu 1.5%", "zuzu", true},
		{"diacritic insensitive", "Brânză telemea", "branza", true},
		{"needle with diacritics", "Branza telemea", "brânză", true},
		{"whitespace collapsed", "Iaurt   grecesc", "iaurt grecesc", true},
		{"empty needle", "anything", "", true},
		{"no match", "Pâine albă", "lapte", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, ContainsFold(tt.haystack, tt.needle))
		})
	}
}

func TestCanonicalUnit(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"g", "g"},
		{" GR ", "g"},
		{"Kg", "kg"},
		{"ml", "ml"},
		{"ltr", "l"},
		{"buc", "pcs"},
		{"kom", "pcs"},
		{"role", "pcs"},
		{"pcs", "pcs"},
		{"Cutie", "cutie"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.expected, CanonicalUnit(tt.input))
		})
	}
}
