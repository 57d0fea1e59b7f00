package server

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AndradeTK/BryanAI/internal/analysis"
	"github.com/AndradeTK/BryanAI/internal/convert"
	"github.com/AndradeTK/BryanAI/internal/coverletter"
	"github.com/AndradeTK/BryanAI/internal/db"
	"github.com/AndradeTK/BryanAI/internal/llm"
	"github.com/AndradeTK/BryanAI/internal/rendering"
	"github.com/AndradeTK/BryanAI/internal/resume"
)

func newTestServer() *Server {
	return &Server{validate: validator.New()}
}

func postJSON(body string) *http.Request {
	return httptest.NewRequest(http.MethodPost, "/api/analisar", strings.NewReader(body))
}

func TestDecodeAndValidateAccepts(t *testing.T) {
	s := newTestServer()

	var req generateRequest
	msg, ok := s.decodeAndValidate(postJSON(`{
		"titulo_vaga": "Engenheiro Go",
		"descricao_vaga": "Procuramos engenheiro backend com Go.",
		"empresa": "TechCorp",
		"idioma": "en",
		"formato": "doc"
	}`), &req)
	require.True(t, ok, msg)

	assert.Equal(t, "Engenheiro Go", req.JobTitle)
	assert.Equal(t, "TechCorp", req.Company)
	assert.Equal(t, "en", req.Language)
	assert.Equal(t, "doc", req.Format)
}

func TestDecodeAndValidateMissingFields(t *testing.T) {
	s := newTestServer()

	var req postingRequest
	msg, ok := s.decodeAndValidate(postJSON(`{"empresa": "TechCorp"}`), &req)
	require.False(t, ok)

	// Error messages name the JSON fields the client sent, including
	// fields that live on embedded structs.
	assert.Contains(t, msg, "titulo_vaga")
	assert.Contains(t, msg, "descricao_vaga")
	assert.Contains(t, msg, "required")
}

func TestDecodeAndValidateEmbeddedFieldName(t *testing.T) {
	s := newTestServer()

	var req externalAnalyzeRequest
	msg, ok := s.decodeAndValidate(postJSON(`{
		"titulo_vaga": "Engenheiro Go",
		"descricao_vaga": "Procuramos engenheiro backend.",
		"texto_curriculo": "curto"
	}`), &req)
	require.False(t, ok)
	assert.Contains(t, msg, "texto_curriculo")
	assert.Contains(t, msg, "min")
}

func TestDecodeAndValidateMalformedJSON(t *testing.T) {
	s := newTestServer()

	var req postingRequest
	msg, ok := s.decodeAndValidate(postJSON(`{"titulo_vaga":`), &req)
	require.False(t, ok)
	assert.Contains(t, msg, "invalid JSON body")
}

func TestDecodeAndValidateIngestURL(t *testing.T) {
	s := newTestServer()

	var req ingestRequest
	_, ok := s.decodeAndValidate(postJSON(`{"url": "https://example.com/vaga/123"}`), &req)
	assert.True(t, ok)

	req = ingestRequest{}
	msg, ok := s.decodeAndValidate(postJSON(`{"url": "nao-e-url"}`), &req)
	require.False(t, ok)
	assert.Contains(t, msg, "url")
}

func TestPathID(t *testing.T) {
	r := httptest.NewRequest(http.MethodGet, "/api/experiencias/7", nil)
	r.SetPathValue("id", "7")
	id, err := pathID(r)
	require.NoError(t, err)
	assert.Equal(t, int64(7), id)

	for _, bad := range []string{"", "abc", "0", "-3", "1.5"} {
		r := httptest.NewRequest(http.MethodGet, "/api/experiencias/x", nil)
		r.SetPathValue("id", bad)
		_, err := pathID(r)
		assert.Error(t, err, "id %q", bad)
	}
}

func TestContentTypeFor(t *testing.T) {
	assert.Equal(t, "application/pdf", contentTypeFor("curriculo.pdf"))
	assert.Equal(t, "application/pdf", contentTypeFor("CURRICULO.PDF"))
	assert.Equal(t, "application/msword", contentTypeFor("curriculo.doc"))
	assert.Equal(t, "text/html; charset=utf-8", contentTypeFor("curriculo.html"))
	assert.Equal(t, "application/octet-stream", contentTypeFor("curriculo.bin"))
}

func TestHandleHealth(t *testing.T) {
	s := newTestServer()
	rec := httptest.NewRecorder()
	s.handleHealth(rec, httptest.NewRequest(http.MethodGet, "/health", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
	assert.JSONEq(t, `{"status": "ok"}`, rec.Body.String())
}

func TestWithCORSPreflight(t *testing.T) {
	s := newTestServer()
	handler := s.withCORS(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("preflight must not reach the next handler")
	}))

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodOptions, "/api/analisar", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "*", rec.Header().Get("Access-Control-Allow-Origin"))
	assert.Contains(t, rec.Header().Get("Access-Control-Allow-Methods"), "POST")
}

func TestClientLimiter(t *testing.T) {
	l := newClientLimiter(1, 2)

	// Burst of two, then the bucket is empty.
	assert.True(t, l.Allow("10.0.0.1"))
	assert.True(t, l.Allow("10.0.0.1"))
	assert.False(t, l.Allow("10.0.0.1"))

	// Buckets are per client.
	assert.True(t, l.Allow("10.0.0.2"))
}

type fakeLLM struct {
	response string
	err      error
}

func (f *fakeLLM) GenerateContent(context.Context, string, llm.Operation) (string, error) {
	return f.response, f.err
}

func (f *fakeLLM) Close() error { return nil }

type fakeStore struct{}

func (fakeStore) GetProfile(context.Context) (*resume.Profile, error) {
	return &resume.Profile{FullName: "Bryan Andrade", Email: "bryan@example.com"}, nil
}

func (fakeStore) ListExperiences(context.Context) ([]resume.Experience, error) {
	return []resume.Experience{{Company: "TechCorp", Title: "Engenheiro", StartDate: "01/2022"}}, nil
}

func (fakeStore) ListEducationProjects(context.Context) ([]resume.EducationProject, error) {
	return nil, nil
}

func (fakeStore) ListCourses(context.Context) ([]resume.Course, error) { return nil, nil }

func (fakeStore) ListLanguages(context.Context) ([]resume.LanguageSkill, error) { return nil, nil }

func TestHandleExportCoverLetter(t *testing.T) {
	renderer, err := rendering.NewRenderer()
	require.NoError(t, err)
	converter, err := convert.NewConverter(t.TempDir(), 5*time.Second)
	require.NoError(t, err)

	s := newTestServer()
	s.aggregator = resume.NewAggregator(fakeStore{})
	s.coverLetters = coverletter.NewGenerator(&fakeLLM{response: "Prezada equipe,\n\nTenho grande interesse na vaga.\n\nAtenciosamente,\nBryan"})
	s.renderer = renderer
	s.converter = converter

	rec := httptest.NewRecorder()
	s.handleExportCoverLetter(rec, postJSON(`{
		"titulo_vaga": "Engenheiro Go",
		"descricao_vaga": "Serviços backend em Go.",
		"empresa": "DataCo",
		"formato": "html"
	}`))
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var resp map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Contains(t, resp["cover_letter"], "grande interesse")
	assert.True(t, strings.HasPrefix(resp["arquivo"], "carta-"))
	assert.True(t, strings.HasSuffix(resp["arquivo"], ".html"))
}

func TestHandleImproveCoverLetter(t *testing.T) {
	s := newTestServer()
	s.coverLetters = coverletter.NewGenerator(&fakeLLM{response: `{
		"versao_melhorada": "Versão melhorada da carta.",
		"melhorias": [{"original": "a", "sugestao": "b", "motivo": "c"}],
		"score_original": 50,
		"score_melhorado": 75
	}`})

	rec := httptest.NewRecorder()
	s.handleImproveCoverLetter(rec, postJSON(`{
		"cover_letter": "Venho por meio desta demonstrar interesse na vaga de engenheiro.",
		"titulo_vaga": "Engenheiro Go"
	}`))
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	assert.Contains(t, rec.Body.String(), "Versão melhorada")

	// The letter itself is required.
	rec = httptest.NewRecorder()
	s.handleImproveCoverLetter(rec, postJSON(`{"titulo_vaga": "Engenheiro Go"}`))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestWithBadges(t *testing.T) {
	score := 82
	low := 40
	entries := withBadges([]db.Generation{
		{Status: db.StatusCompleted, Score: &score},
		{Status: db.StatusCompleted, Score: &low},
		{Status: db.StatusProcessing},
	})

	require.Len(t, entries, 3)
	assert.Equal(t, "alto", entries[0].Badge)
	assert.Equal(t, "baixo", entries[1].Badge)
	assert.Empty(t, entries[2].Badge)

	assert.Empty(t, withBadges(nil))
}

func TestAIErrorResponseHidesCause(t *testing.T) {
	s := newTestServer()

	rec := httptest.NewRecorder()
	s.aiErrorResponse(rec, &analysis.GenerationError{
		Message: "analysis generation failed",
		Cause:   errors.New("dial tcp 10.0.0.9: connection refused"),
	})

	assert.Equal(t, http.StatusBadGateway, rec.Code)
	assert.NotContains(t, rec.Body.String(), "dial tcp")
	assert.Contains(t, rec.Body.String(), "try again")
}

func TestExtractClientID(t *testing.T) {
	s := newTestServer()

	r := httptest.NewRequest(http.MethodGet, "/health", nil)
	r.RemoteAddr = "192.168.1.5:54321"
	assert.Equal(t, "192.168.1.5", s.extractClientID(r))

	r.RemoteAddr = "no-port"
	assert.Equal(t, "no-port", s.extractClientID(r))
}
