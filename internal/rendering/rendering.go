// Package rendering turns a rewritten résumé into printable HTML. The HTML
// is the intermediate format every export conversion starts from.
package rendering

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"strings"

	"github.com/AndradeTK/BryanAI/internal/resume"
	"github.com/AndradeTK/BryanAI/internal/rewriting"
)

//go:embed templates/*.html
var templateFS embed.FS

// Renderer executes the embedded résumé templates.
type Renderer struct {
	templates *template.Template
}

// NewRenderer parses the embedded templates.
func NewRenderer() (*Renderer, error) {
	templates, err := template.ParseFS(templateFS, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("failed to parse templates: %w", err)
	}
	return &Renderer{templates: templates}, nil
}

// ResumeData is the template input for a résumé document.
type ResumeData struct {
	Profile *resume.Profile
	Resume  *rewriting.RewrittenResume
}

// RenderResume produces the printable HTML document for a rewritten résumé.
func (r *Renderer) RenderResume(profile *resume.Profile, rewritten *rewriting.RewrittenResume) (string, error) {
	var buf bytes.Buffer
	err := r.templates.ExecuteTemplate(&buf, "resume.html", ResumeData{
		Profile: profile,
		Resume:  rewritten,
	})
	if err != nil {
		return "", fmt.Errorf("failed to render resume: %w", err)
	}
	return buf.String(), nil
}

// CoverLetterData is the template input for a cover-letter document.
type CoverLetterData struct {
	Profile    *resume.Profile
	JobTitle   string
	Company    string
	Paragraphs []string
}

// RenderCoverLetter produces the printable HTML document for a generated
// cover letter. The letter body is split into paragraphs on blank lines.
func (r *Renderer) RenderCoverLetter(profile *resume.Profile, posting resume.JobPosting, letter string) (string, error) {
	var buf bytes.Buffer
	err := r.templates.ExecuteTemplate(&buf, "coverletter.html", CoverLetterData{
		Profile:    profile,
		JobTitle:   posting.Title,
		Company:    posting.Company,
		Paragraphs: splitParagraphs(letter),
	})
	if err != nil {
		return "", fmt.Errorf("failed to render cover letter: %w", err)
	}
	return buf.String(), nil
}

func splitParagraphs(text string) []string {
	var paragraphs []string
	for _, block := range strings.Split(strings.ReplaceAll(text, "\r\n", "\n"), "\n\n") {
		if trimmed := strings.TrimSpace(block); trimmed != "" {
			paragraphs = append(paragraphs, trimmed)
		}
	}
	return paragraphs
}
