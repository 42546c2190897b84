// Package main provides the ats-match CLI, a thin caller surface over the
// CV/JD scoring engine.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "ats-match",
	Short: "Score how well a CV matches a job description",
	Long:  "ats-match combines keyword, semantic and evidence signals into one explainable ATS compatibility score with gap analysis.",
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
