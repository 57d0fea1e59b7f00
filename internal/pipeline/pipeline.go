// Package pipeline orchestrates the analyze-rewrite-render-export flow and
// keeps the generation ledger consistent with what actually happened.
package pipeline

import (
	"context"
	"fmt"
	"log"
	"path/filepath"
	"strings"

	"github.com/google/uuid"

	"github.com/AndradeTK/BryanAI/internal/analysis"
	"github.com/AndradeTK/BryanAI/internal/db"
	"github.com/AndradeTK/BryanAI/internal/resume"
	"github.com/AndradeTK/BryanAI/internal/rewriting"
)

// Export formats.
const (
	FormatPDF  = "pdf"
	FormatDOC  = "doc"
	FormatHTML = "html"
)

// NormalizeFormat maps a client-supplied format to a supported one,
// defaulting to PDF.
func NormalizeFormat(format string) string {
	switch strings.ToLower(strings.TrimSpace(format)) {
	case FormatDOC, "docx", "word":
		return FormatDOC
	case FormatHTML:
		return FormatHTML
	default:
		return FormatPDF
	}
}

// Ledger records generation attempts and their outcomes.
type Ledger interface {
	CreateGeneration(ctx context.Context, jobTitle, company, language, format string) (*db.Generation, error)
	MarkGenerationCompleted(ctx context.Context, id uuid.UUID, score int, filePath string, keywords []string) error
	MarkGenerationFailed(ctx context.Context, id uuid.UUID, errMsg string) error
}

// Analyzer scores the résumé against a posting.
type Analyzer interface {
	AnalyzeFull(ctx context.Context, full *resume.FullResume, posting resume.JobPosting) (*analysis.Result, error)
	AnalyzeQuick(ctx context.Context, full *resume.FullResume, posting resume.JobPosting) *analysis.QuickResult
}

// Rewriter produces the tailored résumé.
type Rewriter interface {
	Rewrite(ctx context.Context, full *resume.FullResume, posting resume.JobPosting, prior *analysis.Result, lang rewriting.Language) (*rewriting.RewrittenResume, error)
}

// Renderer turns the rewritten résumé into printable HTML.
type Renderer interface {
	RenderResume(profile *resume.Profile, rewritten *rewriting.RewrittenResume) (string, error)
}

// Exporter writes export artifacts and returns their paths.
type Exporter interface {
	SavePDF(ctx context.Context, html, prefix string) (string, error)
	SaveDOC(html, prefix string) (string, error)
	SaveHTML(html, prefix string) (string, error)
}

// Orchestrator runs the generation pipeline end to end.
type Orchestrator struct {
	ledger     Ledger
	aggregator *resume.Aggregator
	analyzer   Analyzer
	rewriter   Rewriter
	renderer   Renderer
	exporter   Exporter
}

// NewOrchestrator wires the pipeline stages together.
func NewOrchestrator(ledger Ledger, aggregator *resume.Aggregator, analyzer Analyzer, rewriter Rewriter, renderer Renderer, exporter Exporter) *Orchestrator {
	return &Orchestrator{
		ledger:     ledger,
		aggregator: aggregator,
		analyzer:   analyzer,
		rewriter:   rewriter,
		renderer:   renderer,
		exporter:   exporter,
	}
}

// GenerateRequest describes one generation run.
type GenerateRequest struct {
	Posting  resume.JobPosting
	Language rewriting.Language
	Format   string
}

// GenerateResult is the outcome of a successful generation run.
type GenerateResult struct {
	GenerationID uuid.UUID                  `json:"geracao_id"`
	Score        int                        `json:"score"`
	Tier         string                     `json:"nivel_compatibilidade"`
	Filename     string                     `json:"arquivo"`
	FilePath     string                     `json:"-"`
	Keywords     []string                   `json:"keywords_otimizadas"`
	Analysis     *analysis.Result           `json:"analise"`
	Resume       *rewriting.RewrittenResume `json:"curriculo"`
}

// Generate runs the full pipeline: record the attempt, analyze, rewrite,
// render, export, then close the ledger record. Every failure exit marks
// the record failed; there are no retries, a failed run is rerun by the
// user. The returned error keeps the stage-specific type for the caller.
func (o *Orchestrator) Generate(ctx context.Context, req GenerateRequest) (*GenerateResult, error) {
	format := NormalizeFormat(req.Format)

	record, err := o.ledger.CreateGeneration(ctx, req.Posting.Title, req.Posting.Company, string(req.Language), format)
	if err != nil {
		return nil, fmt.Errorf("failed to record generation: %w", err)
	}

	full, err := o.aggregator.FullResume(ctx)
	if err != nil {
		return nil, o.fail(ctx, record.ID, err)
	}

	analysisResult, err := o.analyzer.AnalyzeFull(ctx, full, req.Posting)
	if err != nil {
		return nil, o.fail(ctx, record.ID, err)
	}

	rewritten, err := o.rewriter.Rewrite(ctx, full, req.Posting, analysisResult, req.Language)
	if err != nil {
		return nil, o.fail(ctx, record.ID, err)
	}

	html, err := o.renderer.RenderResume(full.Profile, rewritten)
	if err != nil {
		return nil, o.fail(ctx, record.ID, err)
	}

	path, err := o.export(ctx, format, html)
	if err != nil {
		return nil, o.fail(ctx, record.ID, err)
	}

	if err := o.ledger.MarkGenerationCompleted(ctx, record.ID, analysisResult.Score, path, rewritten.OptimizedKeywords); err != nil {
		return nil, err
	}

	return &GenerateResult{
		GenerationID: record.ID,
		Score:        analysisResult.Score,
		Tier:         analysisResult.CompatibilityTier,
		Filename:     filepath.Base(path),
		FilePath:     path,
		Keywords:     rewritten.OptimizedKeywords,
		Analysis:     analysisResult,
		Resume:       rewritten,
	}, nil
}

// Analyze scores the stored résumé without creating a ledger record.
func (o *Orchestrator) Analyze(ctx context.Context, posting resume.JobPosting) (*analysis.Result, error) {
	full, err := o.aggregator.FullResume(ctx)
	if err != nil {
		return nil, err
	}
	return o.analyzer.AnalyzeFull(ctx, full, posting)
}

// QuickAnalyze runs the fast path. It never creates a ledger record; only a
// storage failure surfaces as an error.
func (o *Orchestrator) QuickAnalyze(ctx context.Context, posting resume.JobPosting) (*analysis.QuickResult, error) {
	full, err := o.aggregator.FullResume(ctx)
	if err != nil {
		return nil, err
	}
	return o.analyzer.AnalyzeQuick(ctx, full, posting), nil
}

func (o *Orchestrator) export(ctx context.Context, format, html string) (string, error) {
	switch format {
	case FormatDOC:
		return o.exporter.SaveDOC(html, "curriculo")
	case FormatHTML:
		return o.exporter.SaveHTML(html, "curriculo")
	default:
		return o.exporter.SavePDF(ctx, html, "curriculo")
	}
}

// fail marks the record failed and passes the original error through. A
// ledger write failure at this point is only logged: the caller needs the
// pipeline error, not the bookkeeping one.
func (o *Orchestrator) fail(ctx context.Context, id uuid.UUID, cause error) error {
	if err := o.ledger.MarkGenerationFailed(ctx, id, cause.Error()); err != nil {
		log.Printf("failed to mark generation %s as failed: %v", id, err)
	}
	return cause
}
