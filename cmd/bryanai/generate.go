package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/AndradeTK/BryanAI/internal/convert"
	"github.com/AndradeTK/BryanAI/internal/pipeline"
	"github.com/AndradeTK/BryanAI/internal/rendering"
	"github.com/AndradeTK/BryanAI/internal/resume"
	"github.com/AndradeTK/BryanAI/internal/rewriting"
)

var (
	generateConfigPath string
	generateJobTitle   string
	generateJobFile    string
	generateCompany    string
	generateLanguage   string
	generateFormat     string
)

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate a job-tailored résumé",
	Long:  `Run the full pipeline: analyze the posting, rewrite the stored résumé for it and export the document.`,
	RunE:  runGenerate,
}

func init() {
	generateCmd.Flags().StringVar(&generateConfigPath, "config", "config.json", "Path to JSON config file")
	generateCmd.Flags().StringVar(&generateJobTitle, "title", "", "Job title (required)")
	generateCmd.Flags().StringVar(&generateJobFile, "job", "", "Path to a text file with the job description (required)")
	generateCmd.Flags().StringVar(&generateCompany, "company", "", "Company name")
	generateCmd.Flags().StringVar(&generateLanguage, "lang", "pt-BR", "Output language: pt-BR, en or fr")
	generateCmd.Flags().StringVar(&generateFormat, "format", "pdf", "Output format: pdf, doc or html")
	_ = generateCmd.MarkFlagRequired("title")
	_ = generateCmd.MarkFlagRequired("job")
	rootCmd.AddCommand(generateCmd)
}

func runGenerate(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	description, err := os.ReadFile(generateJobFile)
	if err != nil {
		return fmt.Errorf("failed to read job description: %w", err)
	}

	a, err := newApp(ctx, generateConfigPath)
	if err != nil {
		return err
	}
	defer a.Close()

	renderer, err := rendering.NewRenderer()
	if err != nil {
		return err
	}
	converter, err := convert.NewConverter(a.cfg.OutputDir, 60*time.Second)
	if err != nil {
		return err
	}

	orchestrator := pipeline.NewOrchestrator(a.db, a.aggregator, a.analyzer,
		rewriting.NewRewriter(a.client), renderer, converter)

	result, err := orchestrator.Generate(ctx, pipeline.GenerateRequest{
		Posting: resume.JobPosting{
			Title:       generateJobTitle,
			Description: string(description),
			Company:     generateCompany,
		},
		Language: rewriting.ParseLanguage(generateLanguage),
		Format:   generateFormat,
	})
	if err != nil {
		return err
	}

	fmt.Printf("Score: %d (%s)\n", result.Score, result.Tier)
	fmt.Printf("Arquivo: %s\n", result.FilePath)
	return nil
}
