// Package coverletter generates posting-specific cover letters from the
// stored résumé.
package coverletter

import (
	"context"
	"fmt"
	"strings"

	"github.com/AndradeTK/BryanAI/internal/llm"
	"github.com/AndradeTK/BryanAI/internal/parsing"
	"github.com/AndradeTK/BryanAI/internal/prompts"
	"github.com/AndradeTK/BryanAI/internal/resume"
	"github.com/AndradeTK/BryanAI/internal/rewriting"
)

const promptFile = "coverletter.json"

// Tone selects the voice of the generated letter.
type Tone string

const (
	ToneFormal       Tone = "formal"
	ToneEnthusiastic Tone = "entusiasmado"
	ToneConfident    Tone = "confiante"
)

// ParseTone normalizes a client-supplied tone, falling back to formal.
func ParseTone(s string) Tone {
	switch Tone(strings.ToLower(strings.TrimSpace(s))) {
	case ToneEnthusiastic:
		return ToneEnthusiastic
	case ToneConfident:
		return ToneConfident
	default:
		return ToneFormal
	}
}

// GenerationError wraps failures when producing a cover letter.
type GenerationError struct {
	Message string
	Cause   error
}

func (e *GenerationError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("coverletter: %s: %v", e.Message, e.Cause)
	}
	return fmt.Sprintf("coverletter: %s", e.Message)
}

func (e *GenerationError) Unwrap() error {
	return e.Cause
}

// Generator produces cover letters through the generative backend.
type Generator struct {
	client llm.Client
}

// NewGenerator creates a Generator backed by the given client.
func NewGenerator(client llm.Client) *Generator {
	return &Generator{client: client}
}

// Generate writes a cover letter for the posting in the given language and
// tone. The response is plain text capped at roughly 400 words by the
// prompt contract.
func (g *Generator) Generate(ctx context.Context, full *resume.FullResume, posting resume.JobPosting, lang rewriting.Language, tone Tone) (string, error) {
	if full.Profile == nil {
		return "", &GenerationError{Message: "profile is not configured"}
	}

	prompt := prompts.Format(prompts.MustGet(promptFile, "generate"), map[string]string{
		"Name":           full.Profile.FullName,
		"Email":          full.Profile.Email,
		"Phone":          full.Profile.Phone,
		"LinkedIn":       full.Profile.LinkedIn,
		"Summary":        full.Profile.BaseSummary,
		"Experiences":    formatExperiences(full.Experiences),
		"Education":      formatEducation(full.Education),
		"Courses":        formatCourses(full.Courses),
		"Languages":      formatLanguages(full.Languages),
		"JobTitle":       posting.Title,
		"Company":        companyOrDefault(posting.Company),
		"JobDescription": posting.Description,
		"Language":       languageLabel(lang),
		"Tone":           string(tone),
	})

	raw, err := g.client.GenerateContent(ctx, prompt, llm.OpCoverLetter)
	if err != nil {
		return "", &GenerationError{Message: "cover letter generation failed", Cause: err}
	}

	letter := strings.TrimSpace(parsing.StripFences(raw))
	if letter == "" {
		return "", &GenerationError{Message: "cover letter response was empty"}
	}
	return letter, nil
}

// Improvement is one concrete change made to a letter.
type Improvement struct {
	Original   string `json:"original"`
	Suggestion string `json:"sugestao"`
	Reason     string `json:"motivo"`
}

// ImprovedLetter is the result of rewriting an existing cover letter for a
// posting.
type ImprovedLetter struct {
	Improved      string        `json:"versao_melhorada"`
	Improvements  []Improvement `json:"melhorias"`
	OriginalScore int           `json:"score_original"`
	ImprovedScore int           `json:"score_melhorado"`
}

// Improve rewrites an existing letter for the posting and explains what
// changed. Unlike Generate, the response is structured JSON.
func (g *Generator) Improve(ctx context.Context, letter string, posting resume.JobPosting) (*ImprovedLetter, error) {
	if strings.TrimSpace(letter) == "" {
		return nil, &GenerationError{Message: "cover letter text is required"}
	}

	prompt := prompts.Format(prompts.MustGet(promptFile, "improve"), map[string]string{
		"CoverLetter":    letter,
		"JobTitle":       posting.Title,
		"JobDescription": posting.Description,
	})

	raw, err := g.client.GenerateContent(ctx, prompt, llm.OpCoverLetter)
	if err != nil {
		return nil, &GenerationError{Message: "cover letter improvement failed", Cause: err}
	}

	var improved ImprovedLetter
	if err := parsing.DecodeObject(raw, &improved); err != nil {
		return nil, &GenerationError{Message: "failed to parse improvement response", Cause: err}
	}
	if strings.TrimSpace(improved.Improved) == "" {
		return nil, &GenerationError{Message: "improvement response had no letter text"}
	}
	return &improved, nil
}

func companyOrDefault(company string) string {
	if strings.TrimSpace(company) == "" {
		return "a empresa"
	}
	return company
}

func languageLabel(lang rewriting.Language) string {
	switch lang {
	case rewriting.LangEnglish:
		return "Inglês (US)"
	case rewriting.LangFrench:
		return "Francês"
	default:
		return "Português (Brasil)"
	}
}

func formatExperiences(experiences []resume.FormattedExperience) string {
	var b strings.Builder
	for _, exp := range experiences {
		end := exp.EndDate
		if exp.Current() {
			end = resume.CurrentSentinel
		}
		fmt.Fprintf(&b, "- %s em %s (%s a %s)\n", exp.Title, exp.Company, exp.StartDate, end)
		if exp.Achievements != "" {
			fmt.Fprintf(&b, "  Conquistas: %s\n", exp.Achievements)
		}
	}
	return b.String()
}

func formatEducation(entries []resume.EducationProject) string {
	var b strings.Builder
	for _, entry := range entries {
		fmt.Fprintf(&b, "- %s: %s (%s)\n", entry.Institution, entry.CourseTitle, entry.Status)
	}
	return b.String()
}

func formatCourses(courses []resume.Course) string {
	var b strings.Builder
	for _, course := range courses {
		fmt.Fprintf(&b, "- %s (%s)\n", course.Title, course.Issuer)
	}
	return b.String()
}

func formatLanguages(languages []resume.LanguageSkill) string {
	var b strings.Builder
	for _, lang := range languages {
		fmt.Fprintf(&b, "- %s: %s\n", lang.Language, lang.CEFRLevel)
	}
	return b.String()
}
