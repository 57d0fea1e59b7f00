package rewriting

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseLanguage(t *testing.T) {
	tests := []struct {
		input    string
		expected Language
	}{
		{"pt-BR", LangPortuguese},
		{"pt", LangPortuguese},
		{"EN", LangEnglish},
		{"en-US", LangEnglish},
		{"fr", LangFrench},
		{"Français", LangFrench},
		{"", LangPortuguese},
		{"klingon", LangPortuguese}, // unknown codes fall back silently
	}
	for _, tt := range tests {
		assert.Equal(t, tt.expected, ParseLanguage(tt.input), "input %q", tt.input)
	}
}

func TestCurrentMarker(t *testing.T) {
	assert.Equal(t, "Atual", LangPortuguese.CurrentMarker())
	assert.Equal(t, "Present", LangEnglish.CurrentMarker())
	assert.Equal(t, "Présent", LangFrench.CurrentMarker())
}

func TestVerbInstructionOnlyForTranslations(t *testing.T) {
	assert.Empty(t, LangPortuguese.VerbInstruction())
	assert.NotEmpty(t, LangEnglish.VerbInstruction())
	assert.NotEmpty(t, LangFrench.VerbInstruction())
}
