// Package rewriting produces a posting-tailored rewrite of the stored
// résumé through the generative backend.
package rewriting

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/AndradeTK/BryanAI/internal/analysis"
	"github.com/AndradeTK/BryanAI/internal/llm"
	"github.com/AndradeTK/BryanAI/internal/parsing"
	"github.com/AndradeTK/BryanAI/internal/prompts"
	"github.com/AndradeTK/BryanAI/internal/resume"
	"github.com/AndradeTK/BryanAI/internal/schemas"
)

const promptFile = "writer.json"

// Rewriter rewrites résumés for specific postings.
type Rewriter struct {
	client llm.Client
}

// NewRewriter creates a Rewriter backed by the given client.
func NewRewriter(client llm.Client) *Rewriter {
	return &Rewriter{client: client}
}

// Rewrite produces the tailored résumé in the target language. When a prior
// analysis is supplied, its missing keywords and highlighted experiences are
// folded into the prompt so the rewrite closes the gaps the analysis found.
// Experiences are re-sorted after decoding; the invariant that ongoing roles
// lead and entries descend by end date does not depend on model compliance.
func (r *Rewriter) Rewrite(ctx context.Context, full *resume.FullResume, posting resume.JobPosting, prior *analysis.Result, lang Language) (*RewrittenResume, error) {
	resumeJSON, err := json.MarshalIndent(full, "", "  ")
	if err != nil {
		return nil, &GenerationError{Message: "failed to serialize resume", Cause: err}
	}

	prompt := prompts.Format(prompts.MustGet(promptFile, "rewrite"), map[string]string{
		"System":              prompts.MustGet(promptFile, "system"),
		"LanguageInstruction": lang.Instruction(),
		"VerbInstruction":     lang.VerbInstruction(),
		"Resume":              string(resumeJSON),
		"JobTitle":            posting.Title,
		"JobDescription":      posting.Description,
		"KeywordDirective":    keywordDirective(prior),
		"HighlightDirective":  highlightDirective(prior),
		"CurrentSentinel":     lang.CurrentMarker(),
	})

	raw, err := r.client.GenerateContent(ctx, prompt, llm.OpRewrite)
	if err != nil {
		return nil, &GenerationError{Message: "rewrite generation failed", Cause: err}
	}

	cleaned := parsing.StripFences(raw)
	if err := schemas.ValidateRewrite(cleaned); err != nil {
		return nil, &GenerationError{Message: "rewrite response failed validation", Cause: err}
	}

	var rewritten RewrittenResume
	if err := parsing.DecodeObject(raw, &rewritten); err != nil {
		return nil, &GenerationError{Message: "failed to parse rewrite response", Cause: err}
	}

	sortExperiences(rewritten.Experiences)
	return &rewritten, nil
}

// GenerateSummary produces only the professional summary for a posting.
// The response is plain text, not JSON.
func (r *Rewriter) GenerateSummary(ctx context.Context, baseSummary string, posting resume.JobPosting) (string, error) {
	prompt := prompts.Format(prompts.MustGet(promptFile, "summary"), map[string]string{
		"BaseSummary":    baseSummary,
		"JobTitle":       posting.Title,
		"JobDescription": posting.Description,
	})

	raw, err := r.client.GenerateContent(ctx, prompt, llm.OpSummary)
	if err != nil {
		return "", &GenerationError{Message: "summary generation failed", Cause: err}
	}

	summary := strings.TrimSpace(parsing.StripFences(raw))
	if summary == "" {
		return "", &GenerationError{Message: "summary response was empty"}
	}
	return summary, nil
}

// RewriteBullet rewrites a single bullet point with the action-verb formula.
func (r *Rewriter) RewriteBullet(ctx context.Context, original, jobTitle, extraContext string) (string, error) {
	if strings.TrimSpace(original) == "" {
		return "", &GenerationError{Message: "bullet text is empty"}
	}
	if extraContext != "" {
		extraContext = "CONTEXTO ADICIONAL: " + extraContext + "\n"
	}

	prompt := prompts.Format(prompts.MustGet(promptFile, "bullet"), map[string]string{
		"Original":     original,
		"JobTitle":     jobTitle,
		"ExtraContext": extraContext,
	})

	raw, err := r.client.GenerateContent(ctx, prompt, llm.OpSummary)
	if err != nil {
		return "", &GenerationError{Message: "bullet generation failed", Cause: err}
	}

	bullet := strings.TrimSpace(parsing.StripFences(raw))
	if bullet == "" {
		return "", &GenerationError{Message: "bullet response was empty"}
	}
	return bullet, nil
}

func keywordDirective(prior *analysis.Result) string {
	if prior == nil || len(prior.Keywords.Absent) == 0 {
		return ""
	}
	return fmt.Sprintf("KEYWORDS A INCORPORAR (apenas quando verdadeiras para o candidato): %s\n\n", strings.Join(prior.Keywords.Absent, ", "))
}

func highlightDirective(prior *analysis.Result) string {
	if prior == nil || len(prior.ExperiencesToHighlight) == 0 {
		return ""
	}
	return fmt.Sprintf("EXPERIÊNCIAS A DESTACAR: %s\n\n", strings.Join(prior.ExperiencesToHighlight, "; "))
}
