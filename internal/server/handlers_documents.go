package server

import (
	"net/http"
	"path/filepath"
	"strings"

	"github.com/AndradeTK/BryanAI/internal/coverletter"
	"github.com/AndradeTK/BryanAI/internal/pipeline"
	"github.com/AndradeTK/BryanAI/internal/resume"
	"github.com/AndradeTK/BryanAI/internal/rewriting"
)

// handleCoverLetter generates a cover letter for a posting from the stored
// résumé.
func (s *Server) handleCoverLetter(w http.ResponseWriter, r *http.Request) {
	var req coverLetterRequest
	if msg, ok := s.decodeAndValidate(r, &req); !ok {
		s.errorResponse(w, http.StatusBadRequest, msg)
		return
	}

	full, err := s.aggregator.FullResume(r.Context())
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, err.Error())
		return
	}

	letter, err := s.coverLetters.Generate(r.Context(), full, req.posting(),
		rewriting.ParseLanguage(req.Language), coverletter.ParseTone(req.Tone))
	if err != nil {
		s.aiErrorResponse(w, err)
		return
	}
	s.jsonResponse(w, http.StatusOK, map[string]string{"cover_letter": letter})
}

// handleExportCoverLetter generates a cover letter and writes it as a
// downloadable document in the requested format.
func (s *Server) handleExportCoverLetter(w http.ResponseWriter, r *http.Request) {
	var req coverLetterExportRequest
	if msg, ok := s.decodeAndValidate(r, &req); !ok {
		s.errorResponse(w, http.StatusBadRequest, msg)
		return
	}

	full, err := s.aggregator.FullResume(r.Context())
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, err.Error())
		return
	}

	letter, err := s.coverLetters.Generate(r.Context(), full, req.posting(),
		rewriting.ParseLanguage(req.Language), coverletter.ParseTone(req.Tone))
	if err != nil {
		s.aiErrorResponse(w, err)
		return
	}

	html, err := s.renderer.RenderCoverLetter(full.Profile, req.posting(), letter)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, err.Error())
		return
	}

	var path string
	switch pipeline.NormalizeFormat(req.Format) {
	case pipeline.FormatDOC:
		path, err = s.converter.SaveDOC(html, "carta")
	case pipeline.FormatHTML:
		path, err = s.converter.SaveHTML(html, "carta")
	default:
		path, err = s.converter.SavePDF(r.Context(), html, "carta")
	}
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, err.Error())
		return
	}

	s.jsonResponse(w, http.StatusOK, map[string]string{
		"cover_letter": letter,
		"arquivo":      filepath.Base(path),
	})
}

// handleImproveCoverLetter rewrites a letter the client already has.
func (s *Server) handleImproveCoverLetter(w http.ResponseWriter, r *http.Request) {
	var req coverLetterImproveRequest
	if msg, ok := s.decodeAndValidate(r, &req); !ok {
		s.errorResponse(w, http.StatusBadRequest, msg)
		return
	}

	posting := resume.JobPosting{Title: req.JobTitle, Description: req.JobDescription}
	improved, err := s.coverLetters.Improve(r.Context(), req.CoverLetter, posting)
	if err != nil {
		s.aiErrorResponse(w, err)
		return
	}
	s.jsonResponse(w, http.StatusOK, improved)
}

// handleSkillsGap builds the development roadmap toward a target role.
func (s *Server) handleSkillsGap(w http.ResponseWriter, r *http.Request) {
	var req skillsGapRequest
	if msg, ok := s.decodeAndValidate(r, &req); !ok {
		s.errorResponse(w, http.StatusBadRequest, msg)
		return
	}

	full, err := s.aggregator.FullResume(r.Context())
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, err.Error())
		return
	}

	roadmap, err := s.skillsGap.Analyze(r.Context(), full, req.TargetTitle, req.TargetDescription)
	if err != nil {
		s.aiErrorResponse(w, err)
		return
	}
	s.jsonResponse(w, http.StatusOK, roadmap)
}

// handleGenerateSummary produces only the professional summary for a
// posting.
func (s *Server) handleGenerateSummary(w http.ResponseWriter, r *http.Request) {
	var req summaryRequest
	if msg, ok := s.decodeAndValidate(r, &req); !ok {
		s.errorResponse(w, http.StatusBadRequest, msg)
		return
	}

	profile, err := s.db.GetProfile(r.Context())
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, err.Error())
		return
	}
	baseSummary := ""
	if profile != nil {
		baseSummary = profile.BaseSummary
	}

	summary, err := s.rewriter.GenerateSummary(r.Context(), baseSummary, req.posting())
	if err != nil {
		s.aiErrorResponse(w, err)
		return
	}
	s.jsonResponse(w, http.StatusOK, map[string]string{"resumo": summary})
}

// handleRewriteBullet rewrites a single bullet point.
func (s *Server) handleRewriteBullet(w http.ResponseWriter, r *http.Request) {
	var req bulletRequest
	if msg, ok := s.decodeAndValidate(r, &req); !ok {
		s.errorResponse(w, http.StatusBadRequest, msg)
		return
	}

	bullet, err := s.rewriter.RewriteBullet(r.Context(), req.Original, req.JobTitle, req.Context)
	if err != nil {
		s.aiErrorResponse(w, err)
		return
	}
	s.jsonResponse(w, http.StatusOK, map[string]string{"bullet": bullet})
}

// handleIngestPosting extracts a job posting from a URL.
func (s *Server) handleIngestPosting(w http.ResponseWriter, r *http.Request) {
	var req ingestRequest
	if msg, ok := s.decodeAndValidate(r, &req); !ok {
		s.errorResponse(w, http.StatusBadRequest, msg)
		return
	}

	posting, err := s.fetcher.FromURL(r.Context(), req.URL)
	if err != nil {
		s.aiErrorResponse(w, err)
		return
	}
	s.jsonResponse(w, http.StatusOK, posting)
}

// handleDownload streams a generated artifact by filename.
func (s *Server) handleDownload(w http.ResponseWriter, r *http.Request) {
	filename := r.PathValue("arquivo")
	path, err := s.converter.ArtifactPath(filename)
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, err.Error())
		return
	}

	w.Header().Set("Content-Disposition", `attachment; filename="`+filename+`"`)
	w.Header().Set("Content-Type", contentTypeFor(filename))
	http.ServeFile(w, r, path)
}

func contentTypeFor(filename string) string {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".pdf":
		return "application/pdf"
	case ".doc":
		return "application/msword"
	case ".html":
		return "text/html; charset=utf-8"
	default:
		return "application/octet-stream"
	}
}
