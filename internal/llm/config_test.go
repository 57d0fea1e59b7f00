package llm

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	assert.Equal(t, "gemini-2.0-flash", cfg.Model)
	assert.Equal(t, 60*time.Second, cfg.Timeout)

	// Analytical operations run cold, writing operations warmer.
	assert.Equal(t, float32(0.3), cfg.SamplingFor(OpAnalysis).Temperature)
	assert.Equal(t, float32(0.3), cfg.SamplingFor(OpSkillsGap).Temperature)
	assert.Equal(t, float32(0.7), cfg.SamplingFor(OpRewrite).Temperature)
	assert.Equal(t, float32(0.7), cfg.SamplingFor(OpCoverLetter).Temperature)

	assert.Equal(t, int32(1024), cfg.SamplingFor(OpQuickAnalysis).MaxOutputTokens)
	assert.Equal(t, int32(512), cfg.SamplingFor(OpSummary).MaxOutputTokens)
	assert.Equal(t, int32(8192), cfg.SamplingFor(OpRewrite).MaxOutputTokens)
}

func TestSamplingForUnknownOperation(t *testing.T) {
	cfg := DefaultConfig()
	assert.Equal(t, cfg.Sampling[OpAnalysis], cfg.SamplingFor(Operation("nope")))
}
