package pipeline

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AndradeTK/BryanAI/internal/analysis"
	"github.com/AndradeTK/BryanAI/internal/db"
	"github.com/AndradeTK/BryanAI/internal/resume"
	"github.com/AndradeTK/BryanAI/internal/rewriting"
)

type fakeLedger struct {
	created       *db.Generation
	completedID   uuid.UUID
	completedPath string
	score         int
	keywords      []string
	failedID      uuid.UUID
	failedMsg     string
}

func (f *fakeLedger) CreateGeneration(_ context.Context, jobTitle, company, language, format string) (*db.Generation, error) {
	f.created = &db.Generation{
		ID:       uuid.New(),
		JobTitle: jobTitle,
		Company:  company,
		Language: language,
		Format:   format,
		Status:   db.StatusProcessing,
	}
	return f.created, nil
}

func (f *fakeLedger) MarkGenerationCompleted(_ context.Context, id uuid.UUID, score int, filePath string, keywords []string) error {
	f.completedID = id
	f.score = score
	f.completedPath = filePath
	f.keywords = keywords
	return nil
}

func (f *fakeLedger) MarkGenerationFailed(_ context.Context, id uuid.UUID, errMsg string) error {
	f.failedID = id
	f.failedMsg = errMsg
	return nil
}

type fakeStore struct{}

func (fakeStore) GetProfile(context.Context) (*resume.Profile, error) {
	return &resume.Profile{FullName: "Bryan Andrade"}, nil
}

func (fakeStore) ListExperiences(context.Context) ([]resume.Experience, error) {
	return []resume.Experience{{Company: "TechCorp", Title: "Dev"}}, nil
}

func (fakeStore) ListEducationProjects(context.Context) ([]resume.EducationProject, error) {
	return nil, nil
}

func (fakeStore) ListCourses(context.Context) ([]resume.Course, error) { return nil, nil }

func (fakeStore) ListLanguages(context.Context) ([]resume.LanguageSkill, error) { return nil, nil }

type fakeAnalyzer struct {
	result *analysis.Result
	err    error
}

func (f *fakeAnalyzer) AnalyzeFull(context.Context, *resume.FullResume, resume.JobPosting) (*analysis.Result, error) {
	return f.result, f.err
}

func (f *fakeAnalyzer) AnalyzeQuick(context.Context, *resume.FullResume, resume.JobPosting) *analysis.QuickResult {
	return &analysis.QuickResult{Score: 50, Fit: "Médio"}
}

type fakeRewriter struct {
	result *rewriting.RewrittenResume
	err    error
}

func (f *fakeRewriter) Rewrite(context.Context, *resume.FullResume, resume.JobPosting, *analysis.Result, rewriting.Language) (*rewriting.RewrittenResume, error) {
	return f.result, f.err
}

type fakeRenderer struct{ err error }

func (f *fakeRenderer) RenderResume(*resume.Profile, *rewriting.RewrittenResume) (string, error) {
	if f.err != nil {
		return "", f.err
	}
	return "<html></html>", nil
}

type fakeExporter struct {
	savedFormat string
	err         error
}

func (f *fakeExporter) SavePDF(context.Context, string, string) (string, error) {
	if f.err != nil {
		return "", f.err
	}
	f.savedFormat = FormatPDF
	return "output/curriculo-20260829.pdf", nil
}

func (f *fakeExporter) SaveDOC(string, string) (string, error) {
	if f.err != nil {
		return "", f.err
	}
	f.savedFormat = FormatDOC
	return "output/curriculo-20260829.doc", nil
}

func (f *fakeExporter) SaveHTML(string, string) (string, error) {
	if f.err != nil {
		return "", f.err
	}
	f.savedFormat = FormatHTML
	return "output/curriculo-20260829.html", nil
}

func newTestOrchestrator(ledger *fakeLedger, analyzer Analyzer, rewriter Rewriter, exporter Exporter) *Orchestrator {
	return NewOrchestrator(ledger, resume.NewAggregator(fakeStore{}), analyzer, rewriter, &fakeRenderer{}, exporter)
}

func goodAnalysis() *analysis.Result {
	return &analysis.Result{Score: 82, CompatibilityTier: "Alto"}
}

func goodRewrite() *rewriting.RewrittenResume {
	return &rewriting.RewrittenResume{
		ProfessionalSummary: "Engenheiro backend.",
		Experiences: []rewriting.RewrittenExperience{
			{Company: "TechCorp", Title: "Engenheiro", Period: "01/2022 - Atual", Bullets: []string{"Arquitetei serviços"}},
		},
		OptimizedKeywords: []string{"Go", "PostgreSQL"},
	}
}

func TestGenerateSuccess(t *testing.T) {
	ledger := &fakeLedger{}
	exporter := &fakeExporter{}
	o := newTestOrchestrator(ledger, &fakeAnalyzer{result: goodAnalysis()}, &fakeRewriter{result: goodRewrite()}, exporter)

	result, err := o.Generate(context.Background(), GenerateRequest{
		Posting:  resume.JobPosting{Title: "Engenheiro Go", Description: "Serviços em Go."},
		Language: rewriting.LangPortuguese,
		Format:   "pdf",
	})
	require.NoError(t, err)

	assert.Equal(t, 82, result.Score)
	assert.Equal(t, "Alto", result.Tier)
	assert.Equal(t, "curriculo-20260829.pdf", result.Filename)
	assert.Equal(t, []string{"Go", "PostgreSQL"}, result.Keywords)

	// Ledger closed the record with the outcome.
	assert.Equal(t, ledger.created.ID, result.GenerationID)
	assert.Equal(t, ledger.created.ID, ledger.completedID)
	assert.Equal(t, 82, ledger.score)
	assert.Equal(t, uuid.Nil, ledger.failedID)
	assert.Equal(t, FormatPDF, exporter.savedFormat)
}

func TestGenerateRewriteFailureMarksRecordFailed(t *testing.T) {
	ledger := &fakeLedger{}
	exporter := &fakeExporter{}
	rewriteErr := &rewriting.GenerationError{Message: "rewrite generation failed"}
	o := newTestOrchestrator(ledger, &fakeAnalyzer{result: goodAnalysis()}, &fakeRewriter{err: rewriteErr}, exporter)

	_, err := o.Generate(context.Background(), GenerateRequest{
		Posting:  resume.JobPosting{Title: "Engenheiro Go", Description: "Serviços em Go."},
		Language: rewriting.LangPortuguese,
	})
	require.Error(t, err)

	var genErr *rewriting.GenerationError
	require.ErrorAs(t, err, &genErr)

	// The record is failed and no artifact was produced.
	assert.Equal(t, ledger.created.ID, ledger.failedID)
	assert.Contains(t, ledger.failedMsg, "rewrite generation failed")
	assert.Equal(t, uuid.Nil, ledger.completedID)
	assert.Empty(t, exporter.savedFormat)
}

func TestGenerateAnalysisFailureMarksRecordFailed(t *testing.T) {
	ledger := &fakeLedger{}
	o := newTestOrchestrator(ledger, &fakeAnalyzer{err: errors.New("backend timeout")}, &fakeRewriter{result: goodRewrite()}, &fakeExporter{})

	_, err := o.Generate(context.Background(), GenerateRequest{
		Posting: resume.JobPosting{Title: "Engenheiro Go", Description: "Serviços em Go."},
	})
	require.Error(t, err)
	assert.Equal(t, ledger.created.ID, ledger.failedID)
}

func TestGenerateExportFailureMarksRecordFailed(t *testing.T) {
	ledger := &fakeLedger{}
	o := newTestOrchestrator(ledger, &fakeAnalyzer{result: goodAnalysis()}, &fakeRewriter{result: goodRewrite()}, &fakeExporter{err: errors.New("chrome not found")})

	_, err := o.Generate(context.Background(), GenerateRequest{
		Posting: resume.JobPosting{Title: "Engenheiro Go", Description: "Serviços em Go."},
	})
	require.Error(t, err)
	assert.Equal(t, ledger.created.ID, ledger.failedID)
	assert.Equal(t, uuid.Nil, ledger.completedID)
}

func TestGenerateDocFormat(t *testing.T) {
	ledger := &fakeLedger{}
	exporter := &fakeExporter{}
	o := newTestOrchestrator(ledger, &fakeAnalyzer{result: goodAnalysis()}, &fakeRewriter{result: goodRewrite()}, exporter)

	result, err := o.Generate(context.Background(), GenerateRequest{
		Posting: resume.JobPosting{Title: "Engenheiro Go", Description: "Serviços em Go."},
		Format:  "docx",
	})
	require.NoError(t, err)
	assert.Equal(t, FormatDOC, exporter.savedFormat)
	assert.Equal(t, "curriculo-20260829.doc", result.Filename)
}

func TestNormalizeFormat(t *testing.T) {
	assert.Equal(t, FormatPDF, NormalizeFormat(""))
	assert.Equal(t, FormatPDF, NormalizeFormat("PDF"))
	assert.Equal(t, FormatDOC, NormalizeFormat("doc"))
	assert.Equal(t, FormatDOC, NormalizeFormat("word"))
	assert.Equal(t, FormatHTML, NormalizeFormat("html"))
	assert.Equal(t, FormatPDF, NormalizeFormat("xlsx"))
}

func TestQuickAnalyzeNeverCreatesRecord(t *testing.T) {
	ledger := &fakeLedger{}
	o := newTestOrchestrator(ledger, &fakeAnalyzer{}, &fakeRewriter{}, &fakeExporter{})

	result, err := o.QuickAnalyze(context.Background(), resume.JobPosting{Title: "Engenheiro Go", Description: "Go."})
	require.NoError(t, err)
	assert.Equal(t, 50, result.Score)
	assert.Nil(t, ledger.created)
}
