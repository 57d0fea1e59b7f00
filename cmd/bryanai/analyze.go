package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/AndradeTK/BryanAI/internal/resume"
)

var (
	analyzeConfigPath string
	analyzeJobTitle   string
	analyzeJobFile    string
	analyzeQuick      bool
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze",
	Short: "Score the stored résumé against a job posting",
	Long:  `Run the job-fit analysis against the résumé stored in the database and print the result as JSON.`,
	RunE:  runAnalyze,
}

func init() {
	analyzeCmd.Flags().StringVar(&analyzeConfigPath, "config", "config.json", "Path to JSON config file")
	analyzeCmd.Flags().StringVar(&analyzeJobTitle, "title", "", "Job title (required)")
	analyzeCmd.Flags().StringVar(&analyzeJobFile, "job", "", "Path to a text file with the job description (required)")
	analyzeCmd.Flags().BoolVar(&analyzeQuick, "quick", false, "Run the fast score-only analysis")
	_ = analyzeCmd.MarkFlagRequired("title")
	_ = analyzeCmd.MarkFlagRequired("job")
	rootCmd.AddCommand(analyzeCmd)
}

func runAnalyze(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	description, err := os.ReadFile(analyzeJobFile)
	if err != nil {
		return fmt.Errorf("failed to read job description: %w", err)
	}

	a, err := newApp(ctx, analyzeConfigPath)
	if err != nil {
		return err
	}
	defer a.Close()

	full, err := a.aggregator.FullResume(ctx)
	if err != nil {
		return err
	}

	posting := resume.JobPosting{Title: analyzeJobTitle, Description: string(description)}

	var result any
	if analyzeQuick {
		result = a.analyzer.AnalyzeQuick(ctx, full, posting)
	} else {
		result, err = a.analyzer.AnalyzeFull(ctx, full, posting)
		if err != nil {
			return err
		}
	}

	encoder := json.NewEncoder(os.Stdout)
	encoder.SetIndent("", "  ")
	encoder.SetEscapeHTML(false)
	return encoder.Encode(result)
}
