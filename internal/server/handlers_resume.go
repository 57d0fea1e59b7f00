package server

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/AndradeTK/BryanAI/internal/resume"
)

// handleGetFullResume returns the aggregated résumé view.
func (s *Server) handleGetFullResume(w http.ResponseWriter, r *http.Request) {
	full, err := s.aggregator.FullResume(r.Context())
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, err.Error())
		return
	}
	s.jsonResponse(w, http.StatusOK, full)
}

// handleValidateResume reports data issues and the completeness score.
func (s *Server) handleValidateResume(w http.ResponseWriter, r *http.Request) {
	full, err := s.aggregator.FullResume(r.Context())
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, err.Error())
		return
	}
	s.jsonResponse(w, http.StatusOK, resume.Validate(full))
}

// handleGetProfile returns the candidate profile, or an empty object when it
// was never saved.
func (s *Server) handleGetProfile(w http.ResponseWriter, r *http.Request) {
	profile, err := s.db.GetProfile(r.Context())
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, err.Error())
		return
	}
	if profile == nil {
		profile = &resume.Profile{}
	}
	s.jsonResponse(w, http.StatusOK, profile)
}

// handleSaveProfile creates or replaces the candidate profile.
func (s *Server) handleSaveProfile(w http.ResponseWriter, r *http.Request) {
	var profile resume.Profile
	if err := json.NewDecoder(r.Body).Decode(&profile); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "invalid JSON body: "+err.Error())
		return
	}
	if strings.TrimSpace(profile.FullName) == "" {
		s.errorResponse(w, http.StatusBadRequest, "nome_completo is required")
		return
	}

	if err := s.db.SaveProfile(r.Context(), &profile); err != nil {
		s.errorResponse(w, http.StatusInternalServerError, err.Error())
		return
	}
	s.jsonResponse(w, http.StatusOK, profile)
}

// ---------------------------------------------------------------------------
// Experiences
// ---------------------------------------------------------------------------

func (s *Server) handleListExperiences(w http.ResponseWriter, r *http.Request) {
	experiences, err := s.db.ListExperiences(r.Context())
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, err.Error())
		return
	}
	if experiences == nil {
		experiences = []resume.Experience{}
	}
	s.jsonResponse(w, http.StatusOK, experiences)
}

func (s *Server) handleGetExperience(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, err.Error())
		return
	}
	experience, err := s.db.GetExperience(r.Context(), id)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, err.Error())
		return
	}
	if experience == nil {
		s.errorResponse(w, http.StatusNotFound, "experience not found")
		return
	}
	s.jsonResponse(w, http.StatusOK, experience)
}

func (s *Server) handleCreateExperience(w http.ResponseWriter, r *http.Request) {
	var experience resume.Experience
	if msg, ok := decodeExperience(r, &experience); !ok {
		s.errorResponse(w, http.StatusBadRequest, msg)
		return
	}
	if err := s.db.CreateExperience(r.Context(), &experience); err != nil {
		s.errorResponse(w, http.StatusInternalServerError, err.Error())
		return
	}
	s.jsonResponse(w, http.StatusCreated, experience)
}

func (s *Server) handleUpdateExperience(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, err.Error())
		return
	}
	var experience resume.Experience
	if msg, ok := decodeExperience(r, &experience); !ok {
		s.errorResponse(w, http.StatusBadRequest, msg)
		return
	}
	experience.ID = id
	if err := s.db.UpdateExperience(r.Context(), &experience); err != nil {
		s.errorResponse(w, http.StatusNotFound, err.Error())
		return
	}
	s.jsonResponse(w, http.StatusOK, experience)
}

func (s *Server) handleDeleteExperience(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, err.Error())
		return
	}
	if err := s.db.DeleteExperience(r.Context(), id); err != nil {
		s.errorResponse(w, http.StatusNotFound, err.Error())
		return
	}
	s.jsonResponse(w, http.StatusOK, map[string]string{"status": "deleted"})
}

func decodeExperience(r *http.Request, experience *resume.Experience) (string, bool) {
	if err := json.NewDecoder(r.Body).Decode(experience); err != nil {
		return "invalid JSON body: " + err.Error(), false
	}
	if strings.TrimSpace(experience.Company) == "" {
		return "empresa is required", false
	}
	if strings.TrimSpace(experience.Title) == "" {
		return "cargo is required", false
	}
	return "", true
}

// ---------------------------------------------------------------------------
// Education and projects
// ---------------------------------------------------------------------------

func (s *Server) handleListEducationProjects(w http.ResponseWriter, r *http.Request) {
	entries, err := s.db.ListEducationProjects(r.Context())
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, err.Error())
		return
	}
	if entries == nil {
		entries = []resume.EducationProject{}
	}
	s.jsonResponse(w, http.StatusOK, entries)
}

func (s *Server) handleGetEducationProject(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, err.Error())
		return
	}
	entry, err := s.db.GetEducationProject(r.Context(), id)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, err.Error())
		return
	}
	if entry == nil {
		s.errorResponse(w, http.StatusNotFound, "education/project not found")
		return
	}
	s.jsonResponse(w, http.StatusOK, entry)
}

func (s *Server) handleCreateEducationProject(w http.ResponseWriter, r *http.Request) {
	var entry resume.EducationProject
	if msg, ok := decodeEducationProject(r, &entry); !ok {
		s.errorResponse(w, http.StatusBadRequest, msg)
		return
	}
	if err := s.db.CreateEducationProject(r.Context(), &entry); err != nil {
		s.errorResponse(w, http.StatusInternalServerError, err.Error())
		return
	}
	s.jsonResponse(w, http.StatusCreated, entry)
}

func (s *Server) handleUpdateEducationProject(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, err.Error())
		return
	}
	var entry resume.EducationProject
	if msg, ok := decodeEducationProject(r, &entry); !ok {
		s.errorResponse(w, http.StatusBadRequest, msg)
		return
	}
	entry.ID = id
	if err := s.db.UpdateEducationProject(r.Context(), &entry); err != nil {
		s.errorResponse(w, http.StatusNotFound, err.Error())
		return
	}
	s.jsonResponse(w, http.StatusOK, entry)
}

func (s *Server) handleDeleteEducationProject(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, err.Error())
		return
	}
	if err := s.db.DeleteEducationProject(r.Context(), id); err != nil {
		s.errorResponse(w, http.StatusNotFound, err.Error())
		return
	}
	s.jsonResponse(w, http.StatusOK, map[string]string{"status": "deleted"})
}

func decodeEducationProject(r *http.Request, entry *resume.EducationProject) (string, bool) {
	if err := json.NewDecoder(r.Body).Decode(entry); err != nil {
		return "invalid JSON body: " + err.Error(), false
	}
	if entry.Kind != resume.KindEducation && entry.Kind != resume.KindProject {
		return `tipo must be "` + resume.KindEducation + `" or "` + resume.KindProject + `"`, false
	}
	if strings.TrimSpace(entry.Institution) == "" {
		return "instituicao_projeto is required", false
	}
	return "", true
}

// ---------------------------------------------------------------------------
// Courses
// ---------------------------------------------------------------------------

func (s *Server) handleListCourses(w http.ResponseWriter, r *http.Request) {
	courses, err := s.db.ListCourses(r.Context())
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, err.Error())
		return
	}
	if courses == nil {
		courses = []resume.Course{}
	}
	s.jsonResponse(w, http.StatusOK, courses)
}

func (s *Server) handleGetCourse(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, err.Error())
		return
	}
	course, err := s.db.GetCourse(r.Context(), id)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, err.Error())
		return
	}
	if course == nil {
		s.errorResponse(w, http.StatusNotFound, "course not found")
		return
	}
	s.jsonResponse(w, http.StatusOK, course)
}

func (s *Server) handleCreateCourse(w http.ResponseWriter, r *http.Request) {
	var course resume.Course
	if msg, ok := decodeCourse(r, &course); !ok {
		s.errorResponse(w, http.StatusBadRequest, msg)
		return
	}
	if err := s.db.CreateCourse(r.Context(), &course); err != nil {
		s.errorResponse(w, http.StatusInternalServerError, err.Error())
		return
	}
	s.jsonResponse(w, http.StatusCreated, course)
}

func (s *Server) handleUpdateCourse(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, err.Error())
		return
	}
	var course resume.Course
	if msg, ok := decodeCourse(r, &course); !ok {
		s.errorResponse(w, http.StatusBadRequest, msg)
		return
	}
	course.ID = id
	if err := s.db.UpdateCourse(r.Context(), &course); err != nil {
		s.errorResponse(w, http.StatusNotFound, err.Error())
		return
	}
	s.jsonResponse(w, http.StatusOK, course)
}

func (s *Server) handleDeleteCourse(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, err.Error())
		return
	}
	if err := s.db.DeleteCourse(r.Context(), id); err != nil {
		s.errorResponse(w, http.StatusNotFound, err.Error())
		return
	}
	s.jsonResponse(w, http.StatusOK, map[string]string{"status": "deleted"})
}

func decodeCourse(r *http.Request, course *resume.Course) (string, bool) {
	if err := json.NewDecoder(r.Body).Decode(course); err != nil {
		return "invalid JSON body: " + err.Error(), false
	}
	if strings.TrimSpace(course.Title) == "" {
		return "titulo_do_curso is required", false
	}
	return "", true
}

// ---------------------------------------------------------------------------
// Languages
// ---------------------------------------------------------------------------

func (s *Server) handleListLanguages(w http.ResponseWriter, r *http.Request) {
	languages, err := s.db.ListLanguages(r.Context())
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, err.Error())
		return
	}
	if languages == nil {
		languages = []resume.LanguageSkill{}
	}
	s.jsonResponse(w, http.StatusOK, languages)
}

func (s *Server) handleGetLanguage(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, err.Error())
		return
	}
	language, err := s.db.GetLanguage(r.Context(), id)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, err.Error())
		return
	}
	if language == nil {
		s.errorResponse(w, http.StatusNotFound, "language not found")
		return
	}
	s.jsonResponse(w, http.StatusOK, language)
}

func (s *Server) handleCreateLanguage(w http.ResponseWriter, r *http.Request) {
	var language resume.LanguageSkill
	if msg, ok := decodeLanguage(r, &language); !ok {
		s.errorResponse(w, http.StatusBadRequest, msg)
		return
	}
	if err := s.db.CreateLanguage(r.Context(), &language); err != nil {
		s.errorResponse(w, http.StatusInternalServerError, err.Error())
		return
	}
	s.jsonResponse(w, http.StatusCreated, language)
}

func (s *Server) handleUpdateLanguage(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, err.Error())
		return
	}
	var language resume.LanguageSkill
	if msg, ok := decodeLanguage(r, &language); !ok {
		s.errorResponse(w, http.StatusBadRequest, msg)
		return
	}
	language.ID = id
	if err := s.db.UpdateLanguage(r.Context(), &language); err != nil {
		s.errorResponse(w, http.StatusNotFound, err.Error())
		return
	}
	s.jsonResponse(w, http.StatusOK, language)
}

func (s *Server) handleDeleteLanguage(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, err.Error())
		return
	}
	if err := s.db.DeleteLanguage(r.Context(), id); err != nil {
		s.errorResponse(w, http.StatusNotFound, err.Error())
		return
	}
	s.jsonResponse(w, http.StatusOK, map[string]string{"status": "deleted"})
}

func decodeLanguage(r *http.Request, language *resume.LanguageSkill) (string, bool) {
	if err := json.NewDecoder(r.Body).Decode(language); err != nil {
		return "invalid JSON body: " + err.Error(), false
	}
	if strings.TrimSpace(language.Language) == "" {
		return "idioma is required", false
	}
	return "", true
}
