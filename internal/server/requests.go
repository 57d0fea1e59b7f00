package server

import (
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"net/http"
	"reflect"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/AndradeTK/BryanAI/internal/analysis"
	"github.com/AndradeTK/BryanAI/internal/coverletter"
	"github.com/AndradeTK/BryanAI/internal/ingest"
	"github.com/AndradeTK/BryanAI/internal/parsing"
	"github.com/AndradeTK/BryanAI/internal/rewriting"
	"github.com/AndradeTK/BryanAI/internal/skillsgap"
)

// Request payloads keep the Portuguese field names the browser extension
// already sends.

type postingRequest struct {
	JobTitle       string `json:"titulo_vaga" validate:"required,min=2"`
	JobDescription string `json:"descricao_vaga" validate:"required,min=10"`
	Company        string `json:"empresa"`
}

type generateRequest struct {
	postingRequest
	Language string `json:"idioma"`
	Format   string `json:"formato"`
}

type externalAnalyzeRequest struct {
	postingRequest
	ResumeText string `json:"texto_curriculo" validate:"required,min=50"`
}

type coverLetterRequest struct {
	postingRequest
	Language string `json:"idioma"`
	Tone     string `json:"tom"`
}

type coverLetterExportRequest struct {
	coverLetterRequest
	Format string `json:"formato"`
}

type coverLetterImproveRequest struct {
	CoverLetter    string `json:"cover_letter" validate:"required,min=50"`
	JobTitle       string `json:"titulo_vaga" validate:"required,min=2"`
	JobDescription string `json:"descricao_vaga"`
}

type skillsGapRequest struct {
	TargetTitle       string `json:"cargo_alvo" validate:"required,min=2"`
	TargetDescription string `json:"descricao_vaga"`
}

type summaryRequest struct {
	postingRequest
}

type bulletRequest struct {
	Original string `json:"original" validate:"required,min=5"`
	JobTitle string `json:"titulo_vaga"`
	Context  string `json:"contexto"`
}

type ingestRequest struct {
	URL string `json:"url" validate:"required,url"`
}

// decodeAndValidate decodes the JSON body into dst and runs struct
// validation. The returned message is safe to send to the client.
func (s *Server) decodeAndValidate(r *http.Request, dst any) (string, bool) {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		return "invalid JSON body: " + err.Error(), false
	}
	if err := s.validate.Struct(dst); err != nil {
		var invalid *validator.InvalidValidationError
		if errors.As(err, &invalid) {
			return "invalid request", false
		}
		var fieldErrs validator.ValidationErrors
		if errors.As(err, &fieldErrs) {
			messages := make([]string, 0, len(fieldErrs))
			for _, fe := range fieldErrs {
				messages = append(messages, fmt.Sprintf("field %s failed %s validation", fieldName(dst, fe), fe.Tag()))
			}
			return strings.Join(messages, "; "), false
		}
		return err.Error(), false
	}
	return "", true
}

// fieldName resolves the JSON name of a failed field so error messages match
// what the client sent.
func fieldName(dst any, fe validator.FieldError) string {
	name := fe.Field()
	if jsonName := jsonTagFor(dst, name); jsonName != "" {
		return jsonName
	}
	return name
}

// jsonTagFor finds the json tag of a struct field, walking embedded structs.
func jsonTagFor(dst any, field string) string {
	t := reflect.TypeOf(dst)
	for t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	if t.Kind() != reflect.Struct {
		return ""
	}
	return jsonTagInStruct(t, field)
}

func jsonTagInStruct(t reflect.Type, field string) string {
	for i := 0; i < t.NumField(); i++ {
		f := t.Field(i)
		if f.Anonymous && f.Type.Kind() == reflect.Struct {
			if tag := jsonTagInStruct(f.Type, field); tag != "" {
				return tag
			}
			continue
		}
		if f.Name == field {
			tag, _, _ := strings.Cut(f.Tag.Get("json"), ",")
			return tag
		}
	}
	return ""
}

// pathID parses the {id} path segment.
func pathID(r *http.Request) (int64, error) {
	raw := r.PathValue("id")
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("invalid id %q", raw)
	}
	return id, nil
}

// aiErrorResponse maps AI pipeline failures to HTTP statuses. Malformed or
// failed model output is a bad gateway; everything else is internal.
func (s *Server) aiErrorResponse(w http.ResponseWriter, err error) {
	var (
		analysisErr  *analysis.GenerationError
		rewriteErr   *rewriting.GenerationError
		letterErr    *coverletter.GenerationError
		skillsErr    *skillsgap.GenerationError
		parseErr     *parsing.ParseError
		ingestionErr *ingest.Error
	)
	switch {
	case errors.As(err, &parseErr):
		log.Printf("AI response could not be interpreted: %v", err)
		s.errorResponse(w, http.StatusBadGateway, "AI response could not be interpreted")
	case errors.As(err, &analysisErr), errors.As(err, &rewriteErr),
		errors.As(err, &letterErr), errors.As(err, &skillsErr):
		// The wrapped cause can carry backend transport detail; clients get
		// a generic retryable failure.
		log.Printf("AI generation failed: %v", err)
		s.errorResponse(w, http.StatusBadGateway, "AI generation failed, try again shortly")
	case errors.As(err, &ingestionErr):
		s.errorResponse(w, http.StatusUnprocessableEntity, err.Error())
	default:
		s.errorResponse(w, http.StatusInternalServerError, err.Error())
	}
}
