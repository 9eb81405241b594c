package helper

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSlugify(t *testing.T) {
	tests := []struct {
		name   string
		in     string
		maxLen int
		want   string
	}{
		{"plain", "Prom Night 2026", 100, "prom-night-2026"},
		{"diacritics", "Fête de Promoción", 100, "fete-de-promocion"},
		{"symbols collapse", "hello -- world!!", 100, "hello-world"},
		{"empty falls back", "   ", 100, "item"},
		{"truncated", "abcdefghij", 5, "abcde"},
		{"trailing hyphen after cut", "abcd-fghij", 5, "abcd"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Slugify(tt.in, tt.maxLen))
		})
	}
}

func TestTrimForSuffix(t *testing.T) {
	assert.Equal(t, "abc", trimForSuffix("abcdef", "-2", 5))
	assert.Equal(t, "x", trimForSuffix("abc", "-22222", 5))
	assert.Equal(t, "abcdef", trimForSuffix("abcdef", "-2", 100))
}
