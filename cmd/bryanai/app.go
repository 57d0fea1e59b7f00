package main

import (
	"context"
	"fmt"
	"log"

	"github.com/AndradeTK/BryanAI/internal/analysis"
	"github.com/AndradeTK/BryanAI/internal/config"
	"github.com/AndradeTK/BryanAI/internal/db"
	"github.com/AndradeTK/BryanAI/internal/llm"
	"github.com/AndradeTK/BryanAI/internal/resume"
)

// app bundles the pieces the CLI commands need outside the server.
type app struct {
	cfg        *config.Config
	db         *db.DB
	client     llm.Client
	aggregator *resume.Aggregator
	analyzer   *analysis.Analyzer
}

func newApp(ctx context.Context, configPath string) (*app, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	database, err := db.Connect(ctx, cfg.DatabaseURL)
	if err != nil {
		return nil, err
	}
	if err := database.EnsureSchema(ctx); err != nil {
		database.Close()
		return nil, err
	}

	llmConfig := llm.DefaultConfig()
	if cfg.Model != "" {
		llmConfig.Model = cfg.Model
	}
	llmConfig.Timeout = cfg.AITimeout()

	client, err := llm.NewGeminiClient(ctx, llmConfig, cfg.APIKey)
	if err != nil {
		database.Close()
		return nil, fmt.Errorf("failed to create AI client: %w", err)
	}

	return &app{
		cfg:        cfg,
		db:         database,
		client:     client,
		aggregator: resume.NewAggregator(database),
		analyzer:   analysis.NewAnalyzer(client),
	}, nil
}

func (a *app) Close() {
	if err := a.client.Close(); err != nil {
		log.Printf("Error closing AI client: %v", err)
	}
	a.db.Close()
}
