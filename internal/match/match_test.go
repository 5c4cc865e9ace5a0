package match

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLevenshtein(t *testing.T) {
	tests := []struct {
		a        string
		b        string
		expected int
	}{
		{"", "", 0},
		{"soil", "soil", 0},
		{"", "abc", 3},
		{"abc", "", 3},
		{"soil", "sol", 1},
		{"sol", "soil", 1},
		{"water", "wafer", 1},
		{"kitten", "sitting", 3},
		{"humidity", "humid", 3},
		{"light", "Light", 1},
	}

	for _, tt := range tests {
		t.Run(tt.a+"_"+tt.b, func(t *testing.T) {
			assert.Equal(t, tt.expected, Levenshtein(tt.a, tt.b))
			assert.Equal(t, tt.expected, Levenshtein(tt.b, tt.a))
		})
	}
}

func TestSuggest(t *testing.T) {
	known := []string{"seed", "soil", "fertilizer", "water", "light", "soil"}

	assert.Equal(t, []string{"soil"}, Suggest("sol", known, 2))
	assert.Equal(t, []string{"seed", "soil"}, Suggest("sel", known, 2))
	assert.Empty(t, Suggest("soil", known, 2))
	assert.Empty(t, Suggest("Soil", known, 2))
	assert.Empty(t, Suggest("temperature", known, 2))
	assert.Equal(t, []string{"fertilizer"}, Suggest("Fertiliser", known, 2))
}
