package server

import (
	"encoding/json"
	"net/http"
)

// defaultSettings are merged under stored values so new keys show up with a
// sane value for existing installations.
var defaultSettings = map[string]string{
	"idioma_padrao":  "pt-BR",
	"formato_padrao": "pdf",
	"tom_padrao":     "formal",
}

// handleGetSettings returns the user settings as a flat key/value map.
func (s *Server) handleGetSettings(w http.ResponseWriter, r *http.Request) {
	stored, err := s.db.GetSettings(r.Context())
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, err.Error())
		return
	}

	settings := make(map[string]string, len(defaultSettings)+len(stored))
	for key, value := range defaultSettings {
		settings[key] = value
	}
	for key, value := range stored {
		settings[key] = value
	}
	s.jsonResponse(w, http.StatusOK, settings)
}

// handleSaveSettings upserts the given settings. Keys absent from the body
// are left untouched.
func (s *Server) handleSaveSettings(w http.ResponseWriter, r *http.Request) {
	var settings map[string]string
	if err := json.NewDecoder(r.Body).Decode(&settings); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "invalid JSON body: "+err.Error())
		return
	}
	if len(settings) == 0 {
		s.errorResponse(w, http.StatusBadRequest, "no settings provided")
		return
	}

	if err := s.db.SaveSettings(r.Context(), settings); err != nil {
		s.errorResponse(w, http.StatusInternalServerError, err.Error())
		return
	}
	s.jsonResponse(w, http.StatusOK, map[string]string{"status": "saved"})
}
