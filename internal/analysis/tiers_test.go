package analysis

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTierForScore(t *testing.T) {
	tests := []struct {
		score    int
		expected string
	}{
		{100, "Excelente"},
		{85, "Excelente"},
		{84, "Alto"},
		{70, "Alto"},
		{69, "Médio"},
		{55, "Médio"},
		{54, "Baixo"},
		{40, "Baixo"},
		{39, "Não recomendado"},
		{0, "Não recomendado"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.expected, TierForScore(tt.score), "score %d", tt.score)
	}
}

func TestBadgeForScore(t *testing.T) {
	tests := []struct {
		score    int
		expected string
	}{
		{100, "alto"},
		{80, "alto"},
		{79, "medio"},
		{60, "medio"},
		{59, "baixo"},
		{0, "baixo"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.expected, BadgeForScore(tt.score), "score %d", tt.score)
	}
}

func TestClampScore(t *testing.T) {
	assert.Equal(t, 0, ClampScore(-5))
	assert.Equal(t, 100, ClampScore(140))
	assert.Equal(t, 73, ClampScore(73))
}
