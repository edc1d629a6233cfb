package vtkgo

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSanitizeTitle(t *testing.T) {
	tests := []struct {
		name  string
		title string
		want  string
	}{
		{name: "plain", title: "hemisphere scan", want: "hemisphere scan"},
		{name: "trimmed", title: "  padded \t", want: "padded"},
		{name: "empty", title: "", want: "untitled"},
		{name: "whitespace only", title: " \n ", want: "untitled"},
		{name: "max length kept", title: strings.Repeat("a", 254), want: strings.Repeat("a", 254)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, SanitizeTitle(tt.title))
		})
	}
}

func TestSanitizeTitle_Truncation(t *testing.T) {
	got := SanitizeTitle(strings.Repeat("x", 300))

	assert.Len(t, got, 253)
	assert.Equal(t, strings.Repeat("x", 250)+"...", got)
}

func TestSanitizeFieldName(t *testing.T) {
	assert.Equal(t, "surface_deviation", sanitizeFieldName(" surface deviation "))
	assert.Equal(t, "a_b_c", sanitizeFieldName("a b c"))
	assert.Equal(t, "plain", sanitizeFieldName("plain"))
}
