// Package analysis scores a résumé against a job posting using the
// generative backend and interprets the model's structured verdict.
package analysis

import (
	"context"
	"encoding/json"
	"log"
	"strings"

	"github.com/AndradeTK/BryanAI/internal/llm"
	"github.com/AndradeTK/BryanAI/internal/parsing"
	"github.com/AndradeTK/BryanAI/internal/prompts"
	"github.com/AndradeTK/BryanAI/internal/resume"
	"github.com/AndradeTK/BryanAI/internal/schemas"
)

const promptFile = "analyzer.json"

// quickFallbackSummary is returned when the quick path cannot produce or
// recover any result. The quick path never surfaces an error to callers.
const quickFallbackSummary = "Não foi possível analisar completamente. Tente novamente."

// Analyzer evaluates job fit through the generative backend.
type Analyzer struct {
	client llm.Client
}

// NewAnalyzer creates an Analyzer backed by the given client.
func NewAnalyzer(client llm.Client) *Analyzer {
	return &Analyzer{client: client}
}

// AnalyzeFull runs the complete evaluation rubric against the posting and
// returns the structured verdict. The response is schema-validated before
// decoding; any failure is surfaced as a *GenerationError, never as a
// degraded result.
func (a *Analyzer) AnalyzeFull(ctx context.Context, full *resume.FullResume, posting resume.JobPosting) (*Result, error) {
	resumeJSON, err := json.MarshalIndent(full, "", "  ")
	if err != nil {
		return nil, &GenerationError{Message: "failed to serialize resume", Cause: err}
	}

	prompt := prompts.Format(prompts.MustGet(promptFile, "full"), map[string]string{
		"System":         prompts.MustGet(promptFile, "system"),
		"Resume":         string(resumeJSON),
		"JobTitle":       posting.Title,
		"JobDescription": posting.Description,
	})

	raw, err := a.client.GenerateContent(ctx, prompt, llm.OpAnalysis)
	if err != nil {
		return nil, &GenerationError{Message: "analysis generation failed", Cause: err}
	}

	cleaned := parsing.StripFences(raw)
	if err := schemas.ValidateAnalysis(cleaned); err != nil {
		log.Printf("analysis response failed schema validation: %v", err)
		return nil, &GenerationError{Message: "analysis response failed validation", Cause: err}
	}

	var result Result
	if err := parsing.DecodeObject(raw, &result); err != nil {
		return nil, &GenerationError{Message: "failed to parse analysis response", Cause: err}
	}

	normalize(&result)
	return &result, nil
}

// AnalyzeQuick runs the reduced evaluation used for instant feedback while
// the user is still looking at a posting. It is best-effort by contract:
// it always returns a usable result and never an error. Truncated responses
// go through field-level recovery; anything worse collapses to the neutral
// fallback.
func (a *Analyzer) AnalyzeQuick(ctx context.Context, full *resume.FullResume, posting resume.JobPosting) *QuickResult {
	summary := resume.Summarize(full)
	experiences := strings.Join(summary.Experiences, "\n")
	if len(summary.Skills) > 0 {
		experiences += "\nTecnologias: " + strings.Join(summary.Skills, ", ")
	}
	prompt := prompts.Format(prompts.MustGet(promptFile, "quick"), map[string]string{
		"BaseSummary":    summary.BaseSummary,
		"Experiences":    experiences,
		"Education":      strings.Join(summary.Education, "\n"),
		"Courses":        strings.Join(summary.Certifications, "\n"),
		"Languages":      strings.Join(summary.Languages, ", "),
		"JobTitle":       posting.Title,
		"JobDescription": truncate(posting.Description, 1000),
	})

	raw, err := a.client.GenerateContent(ctx, prompt, llm.OpQuickAnalysis)
	if err != nil {
		log.Printf("quick analysis generation failed, using fallback: %v", err)
		return quickFallback()
	}

	var result QuickResult
	if err := parsing.DecodeObject(raw, &result); err != nil {
		recovered, ok := parsing.RecoverQuickAnalysis(raw)
		if !ok {
			log.Printf("quick analysis response unusable, using fallback: %v", err)
			return quickFallback()
		}
		result = QuickResult{Score: recovered.Score, Fit: recovered.Fit, Summary: recovered.Summary}
	}

	result.Score = ClampScore(result.Score)
	if strings.TrimSpace(result.Fit) == "" {
		result.Fit = TierForScore(result.Score)
	}
	if strings.TrimSpace(result.Summary) == "" {
		result.Summary = quickFallbackSummary
	}
	return &result
}

// AnalyzeExternal evaluates an uploaded résumé text, rather than the stored
// profile, against a posting.
func (a *Analyzer) AnalyzeExternal(ctx context.Context, resumeText string, posting resume.JobPosting) (*ExternalResult, error) {
	if strings.TrimSpace(resumeText) == "" {
		return nil, &GenerationError{Message: "resume text is empty"}
	}

	prompt := prompts.Format(prompts.MustGet(promptFile, "external"), map[string]string{
		"System":         prompts.MustGet(promptFile, "system"),
		"ResumeText":     truncate(resumeText, 15000),
		"JobTitle":       posting.Title,
		"JobDescription": posting.Description,
	})

	raw, err := a.client.GenerateContent(ctx, prompt, llm.OpAnalysis)
	if err != nil {
		return nil, &GenerationError{Message: "external analysis generation failed", Cause: err}
	}

	var result ExternalResult
	if err := parsing.DecodeObject(raw, &result); err != nil {
		return nil, &GenerationError{Message: "failed to parse external analysis response", Cause: err}
	}

	result.Score = ClampScore(result.Score)
	if strings.TrimSpace(result.CompatibilityTier) == "" {
		result.CompatibilityTier = TierForScore(result.Score)
	}
	return &result, nil
}

func quickFallback() *QuickResult {
	return &QuickResult{
		Score:   50,
		Fit:     "Médio",
		Summary: quickFallbackSummary,
	}
}

func normalize(r *Result) {
	r.Score = ClampScore(r.Score)
	if strings.TrimSpace(r.CompatibilityTier) == "" {
		r.CompatibilityTier = TierForScore(r.Score)
	}
}

func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max] + "..."
}
