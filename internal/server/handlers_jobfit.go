package server

import (
	"net/http"

	"github.com/AndradeTK/BryanAI/internal/pipeline"
	"github.com/AndradeTK/BryanAI/internal/resume"
	"github.com/AndradeTK/BryanAI/internal/rewriting"
)

func (r postingRequest) posting() resume.JobPosting {
	return resume.JobPosting{
		Title:       r.JobTitle,
		Description: r.JobDescription,
		Company:     r.Company,
	}
}

// handleAnalyze runs the full job-fit analysis against the stored résumé.
func (s *Server) handleAnalyze(w http.ResponseWriter, r *http.Request) {
	var req postingRequest
	if msg, ok := s.decodeAndValidate(r, &req); !ok {
		s.errorResponse(w, http.StatusBadRequest, msg)
		return
	}

	result, err := s.orchestrator.Analyze(r.Context(), req.posting())
	if err != nil {
		s.aiErrorResponse(w, err)
		return
	}
	s.jsonResponse(w, http.StatusOK, result)
}

// handleQuickAnalyze runs the reduced fast path. It always answers 200 with
// a usable result; degraded responses carry the neutral fallback.
func (s *Server) handleQuickAnalyze(w http.ResponseWriter, r *http.Request) {
	var req postingRequest
	if msg, ok := s.decodeAndValidate(r, &req); !ok {
		s.errorResponse(w, http.StatusBadRequest, msg)
		return
	}

	result, err := s.orchestrator.QuickAnalyze(r.Context(), req.posting())
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, err.Error())
		return
	}
	s.jsonResponse(w, http.StatusOK, result)
}

// handleAnalyzeExternal analyzes an uploaded résumé text instead of the
// stored profile.
func (s *Server) handleAnalyzeExternal(w http.ResponseWriter, r *http.Request) {
	var req externalAnalyzeRequest
	if msg, ok := s.decodeAndValidate(r, &req); !ok {
		s.errorResponse(w, http.StatusBadRequest, msg)
		return
	}

	result, err := s.analyzer.AnalyzeExternal(r.Context(), req.ResumeText, req.posting())
	if err != nil {
		s.aiErrorResponse(w, err)
		return
	}
	s.jsonResponse(w, http.StatusOK, result)
}

// handleGenerate runs the full generation pipeline and returns the analysis,
// the rewritten résumé, and the artifact name for download.
func (s *Server) handleGenerate(w http.ResponseWriter, r *http.Request) {
	var req generateRequest
	if msg, ok := s.decodeAndValidate(r, &req); !ok {
		s.errorResponse(w, http.StatusBadRequest, msg)
		return
	}

	result, err := s.orchestrator.Generate(r.Context(), pipeline.GenerateRequest{
		Posting:  req.posting(),
		Language: rewriting.ParseLanguage(req.Language),
		Format:   req.Format,
	})
	if err != nil {
		s.aiErrorResponse(w, err)
		return
	}
	s.jsonResponse(w, http.StatusOK, result)
}
