// Package server provides the HTTP REST API for résumé management and
// generation.
package server

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/AndradeTK/BryanAI/internal/analysis"
	"github.com/AndradeTK/BryanAI/internal/config"
	"github.com/AndradeTK/BryanAI/internal/convert"
	"github.com/AndradeTK/BryanAI/internal/coverletter"
	"github.com/AndradeTK/BryanAI/internal/db"
	"github.com/AndradeTK/BryanAI/internal/ingest"
	"github.com/AndradeTK/BryanAI/internal/llm"
	"github.com/AndradeTK/BryanAI/internal/pipeline"
	"github.com/AndradeTK/BryanAI/internal/rendering"
	"github.com/AndradeTK/BryanAI/internal/resume"
	"github.com/AndradeTK/BryanAI/internal/rewriting"
	"github.com/AndradeTK/BryanAI/internal/skillsgap"
)

// Server represents the HTTP server
type Server struct {
	httpServer   *http.Server
	db           *db.DB
	llmClient    llm.Client
	aggregator   *resume.Aggregator
	orchestrator *pipeline.Orchestrator
	analyzer     *analysis.Analyzer
	rewriter     *rewriting.Rewriter
	coverLetters *coverletter.Generator
	skillsGap    *skillsgap.Analyzer
	fetcher      *ingest.Fetcher
	converter    *convert.Converter
	renderer     *rendering.Renderer
	validate     *validator.Validate
	limiter      *clientLimiter
}

// New creates a new server instance
func New(cfg *config.Config) (*Server, error) {
	database, err := db.Connect(context.Background(), cfg.DatabaseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	if err := database.EnsureSchema(context.Background()); err != nil {
		database.Close()
		return nil, err
	}

	llmConfig := llm.DefaultConfig()
	if cfg.Model != "" {
		llmConfig.Model = cfg.Model
	}
	llmConfig.Timeout = cfg.AITimeout()

	client, err := llm.NewGeminiClient(context.Background(), llmConfig, cfg.APIKey)
	if err != nil {
		database.Close()
		return nil, fmt.Errorf("failed to create AI client: %w", err)
	}

	renderer, err := rendering.NewRenderer()
	if err != nil {
		database.Close()
		return nil, err
	}

	converter, err := convert.NewConverter(cfg.OutputDir, 60*time.Second)
	if err != nil {
		database.Close()
		return nil, err
	}

	aggregator := resume.NewAggregator(database)
	analyzer := analysis.NewAnalyzer(client)
	rewriter := rewriting.NewRewriter(client)

	s := &Server{
		db:           database,
		llmClient:    client,
		aggregator:   aggregator,
		analyzer:     analyzer,
		rewriter:     rewriter,
		coverLetters: coverletter.NewGenerator(client),
		skillsGap:    skillsgap.NewAnalyzer(client),
		fetcher:      ingest.NewFetcher(),
		converter:    converter,
		renderer:     renderer,
		validate:     validator.New(),
		limiter:      newClientLimiter(defaultRatePerSecond, defaultBurst),
	}
	s.orchestrator = pipeline.NewOrchestrator(database, aggregator, analyzer, rewriter, renderer, converter)

	mux := http.NewServeMux()
	mux.HandleFunc("GET /health", s.handleHealth)

	// Job-fit and generation endpoints
	mux.HandleFunc("POST /api/analisar", s.handleAnalyze)
	mux.HandleFunc("POST /api/analise-rapida", s.handleQuickAnalyze)
	mux.HandleFunc("POST /api/analisar-externo", s.handleAnalyzeExternal)
	mux.HandleFunc("POST /api/gerar", s.handleGenerate)

	// Companion document endpoints
	mux.HandleFunc("POST /api/cover-letter", s.handleCoverLetter)
	mux.HandleFunc("POST /api/cover-letter/exportar", s.handleExportCoverLetter)
	mux.HandleFunc("POST /api/cover-letter/improve", s.handleImproveCoverLetter)
	mux.HandleFunc("POST /api/skills-gap", s.handleSkillsGap)
	mux.HandleFunc("POST /api/resumo", s.handleGenerateSummary)
	mux.HandleFunc("POST /api/bullet", s.handleRewriteBullet)
	mux.HandleFunc("POST /api/importar-vaga", s.handleIngestPosting)

	// Résumé data endpoints
	mux.HandleFunc("GET /api/curriculo", s.handleGetFullResume)
	mux.HandleFunc("GET /api/curriculo/validar", s.handleValidateResume)
	mux.HandleFunc("GET /api/perfil", s.handleGetProfile)
	mux.HandleFunc("PUT /api/perfil", s.handleSaveProfile)

	mux.HandleFunc("GET /api/experiencias", s.handleListExperiences)
	mux.HandleFunc("POST /api/experiencias", s.handleCreateExperience)
	mux.HandleFunc("GET /api/experiencias/{id}", s.handleGetExperience)
	mux.HandleFunc("PUT /api/experiencias/{id}", s.handleUpdateExperience)
	mux.HandleFunc("DELETE /api/experiencias/{id}", s.handleDeleteExperience)

	mux.HandleFunc("GET /api/formacao", s.handleListEducationProjects)
	mux.HandleFunc("POST /api/formacao", s.handleCreateEducationProject)
	mux.HandleFunc("GET /api/formacao/{id}", s.handleGetEducationProject)
	mux.HandleFunc("PUT /api/formacao/{id}", s.handleUpdateEducationProject)
	mux.HandleFunc("DELETE /api/formacao/{id}", s.handleDeleteEducationProject)

	mux.HandleFunc("GET /api/cursos", s.handleListCourses)
	mux.HandleFunc("POST /api/cursos", s.handleCreateCourse)
	mux.HandleFunc("GET /api/cursos/{id}", s.handleGetCourse)
	mux.HandleFunc("PUT /api/cursos/{id}", s.handleUpdateCourse)
	mux.HandleFunc("DELETE /api/cursos/{id}", s.handleDeleteCourse)

	mux.HandleFunc("GET /api/idiomas", s.handleListLanguages)
	mux.HandleFunc("POST /api/idiomas", s.handleCreateLanguage)
	mux.HandleFunc("GET /api/idiomas/{id}", s.handleGetLanguage)
	mux.HandleFunc("PUT /api/idiomas/{id}", s.handleUpdateLanguage)
	mux.HandleFunc("DELETE /api/idiomas/{id}", s.handleDeleteLanguage)

	// History and artifacts
	mux.HandleFunc("GET /api/historico", s.handleListGenerations)
	mux.HandleFunc("GET /api/historico/stats", s.handleGenerationStats)
	mux.HandleFunc("GET /api/historico/{id}", s.handleGetGeneration)
	mux.HandleFunc("DELETE /api/historico/{id}", s.handleDeleteGeneration)
	mux.HandleFunc("GET /api/download/{arquivo}", s.handleDownload)

	// Settings
	mux.HandleFunc("GET /api/configuracoes", s.handleGetSettings)
	mux.HandleFunc("PUT /api/configuracoes", s.handleSaveSettings)

	s.httpServer = &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Port),
		Handler:      s.withRateLimit(s.withLogging(s.withCORS(mux))),
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 300 * time.Second, // Generation calls the AI backend several times.
		IdleTimeout:  60 * time.Second,
	}

	return s, nil
}

// Start begins listening for requests
func (s *Server) Start() error {
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	go func() {
		log.Printf("Server starting on %s", s.httpServer.Addr)
		if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server error: %v", err)
		}
	}()

	<-stop
	log.Println("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := s.httpServer.Shutdown(ctx); err != nil {
		return fmt.Errorf("server shutdown failed: %w", err)
	}

	if err := s.llmClient.Close(); err != nil {
		log.Printf("Error closing AI client: %v", err)
	}
	s.db.Close()
	log.Println("Server stopped")
	return nil
}

// withCORS adds CORS headers
func (s *Server) withCORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type")

		if r.Method == "OPTIONS" {
			w.WriteHeader(http.StatusOK)
			return
		}

		next.ServeHTTP(w, r)
	})
}

// withLogging adds request logging
func (s *Server) withLogging(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		log.Printf("[%s] %s %s", r.Method, r.URL.Path, r.RemoteAddr)
		next.ServeHTTP(w, r)
		log.Printf("[%s] %s completed in %v", r.Method, r.URL.Path, time.Since(start))
	})
}

// withRateLimit rejects clients that exceed the per-IP request budget.
func (s *Server) withRateLimit(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !s.limiter.Allow(s.extractClientID(r)) {
			s.errorResponse(w, http.StatusTooManyRequests, "rate limit exceeded, try again later")
			return
		}
		next.ServeHTTP(w, r)
	})
}

// extractClientID extracts the client identifier from the request.
func (s *Server) extractClientID(r *http.Request) string {
	ip, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return ip
}

// handleHealth returns server health status
func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	s.jsonResponse(w, http.StatusOK, map[string]string{"status": "ok"})
}

// jsonResponse writes a JSON response
func (s *Server) jsonResponse(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		log.Printf("Error encoding JSON response: %v", err)
	}
}

// errorResponse writes an error JSON response
func (s *Server) errorResponse(w http.ResponseWriter, status int, message string) {
	s.jsonResponse(w, status, map[string]string{"error": message})
}
