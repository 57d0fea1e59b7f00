// Package main provides the entry point for the BryanAI résumé assistant.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "bryanai",
	Short: "AI résumé assistant",
	Long:  "BryanAI manages a personal résumé database and generates job-tailored résumés, analyses and cover letters through a REST API or directly from the command line.",
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
