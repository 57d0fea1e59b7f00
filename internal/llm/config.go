// Package llm provides the generative-backend client abstraction and the
// per-operation sampling configuration.
package llm

import "time"

// Operation identifies one kind of generative call. Each operation carries
// its own sampling parameters so that scoring stays consistent while creative
// rewriting keeps a higher temperature.
type Operation string

const (
	// OpAnalysis is the full job-fit analysis.
	OpAnalysis Operation = "analysis"
	// OpQuickAnalysis is the fast score-only analysis.
	OpQuickAnalysis Operation = "quick_analysis"
	// OpRewrite is the full résumé rewrite.
	OpRewrite Operation = "rewrite"
	// OpSummary is the standalone professional-summary generation.
	OpSummary Operation = "summary"
	// OpCoverLetter is the cover-letter generation.
	OpCoverLetter Operation = "cover_letter"
	// OpSkillsGap is the skills-gap roadmap analysis.
	OpSkillsGap Operation = "skills_gap"
)

// Sampling holds the generation parameters for one operation.
type Sampling struct {
	Temperature     float32
	TopP            float32
	TopK            int32
	MaxOutputTokens int32
}

// Config holds the model configuration for the application.
type Config struct {
	Model    string
	Timeout  time.Duration
	Sampling map[Operation]Sampling
}

// DefaultConfig returns the default Gemini configuration. Analytical
// operations run cold (0.3) for score stability; writing operations run at
// 0.7 for varied phrasing.
func DefaultConfig() *Config {
	return &Config{
		Model:   "gemini-2.0-flash",
		Timeout: 60 * time.Second,
		Sampling: map[Operation]Sampling{
			OpAnalysis:      {Temperature: 0.3, TopP: 0.95, TopK: 40, MaxOutputTokens: 8192},
			OpQuickAnalysis: {Temperature: 0.3, TopP: 0.95, TopK: 40, MaxOutputTokens: 1024},
			OpRewrite:       {Temperature: 0.7, TopP: 0.95, TopK: 40, MaxOutputTokens: 8192},
			OpSummary:       {Temperature: 0.7, TopP: 0.95, TopK: 40, MaxOutputTokens: 512},
			OpCoverLetter:   {Temperature: 0.7, TopP: 0.95, TopK: 40, MaxOutputTokens: 4096},
			OpSkillsGap:     {Temperature: 0.3, TopP: 0.95, TopK: 40, MaxOutputTokens: 8192},
		},
	}
}

// SamplingFor returns the sampling parameters for an operation, falling back
// to the analysis parameters for unknown operations.
func (c *Config) SamplingFor(op Operation) Sampling {
	if s, ok := c.Sampling[op]; ok {
		return s
	}
	return c.Sampling[OpAnalysis]
}
