package server

import (
	"net/http"
	"strconv"

	"github.com/google/uuid"

	"github.com/AndradeTK/BryanAI/internal/analysis"
	"github.com/AndradeTK/BryanAI/internal/db"
)

// generationEntry is a ledger row with the coarse score badge clients show
// next to history entries.
type generationEntry struct {
	db.Generation
	Badge string `json:"badge,omitempty"`
}

func withBadges(generations []db.Generation) []generationEntry {
	entries := make([]generationEntry, 0, len(generations))
	for _, g := range generations {
		entry := generationEntry{Generation: g}
		if g.Score != nil {
			entry.Badge = analysis.BadgeForScore(*g.Score)
		}
		entries = append(entries, entry)
	}
	return entries
}

// handleListGenerations returns recent ledger entries, newest first. The
// optional "limit" query parameter caps the page size.
func (s *Server) handleListGenerations(w http.ResponseWriter, r *http.Request) {
	limit := 50
	if raw := r.URL.Query().Get("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed <= 0 || parsed > 500 {
			s.errorResponse(w, http.StatusBadRequest, "limit must be between 1 and 500")
			return
		}
		limit = parsed
	}

	generations, err := s.db.ListGenerations(r.Context(), limit)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, err.Error())
		return
	}
	s.jsonResponse(w, http.StatusOK, withBadges(generations))
}

// handleGetGeneration returns one ledger entry.
func (s *Server) handleGetGeneration(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "invalid generation id")
		return
	}

	generation, err := s.db.GetGeneration(r.Context(), id)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, err.Error())
		return
	}
	if generation == nil {
		s.errorResponse(w, http.StatusNotFound, "generation not found")
		return
	}
	s.jsonResponse(w, http.StatusOK, generation)
}

// handleDeleteGeneration removes a ledger entry. The artifact file on disk
// is kept; only the record disappears from history.
func (s *Server) handleDeleteGeneration(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "invalid generation id")
		return
	}

	if err := s.db.DeleteGeneration(r.Context(), id); err != nil {
		s.errorResponse(w, http.StatusNotFound, err.Error())
		return
	}
	s.jsonResponse(w, http.StatusOK, map[string]string{"status": "deleted"})
}

// handleGenerationStats returns aggregate history counters.
func (s *Server) handleGenerationStats(w http.ResponseWriter, r *http.Request) {
	stats, err := s.db.GenerationStats(r.Context())
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, err.Error())
		return
	}
	s.jsonResponse(w, http.StatusOK, stats)
}
