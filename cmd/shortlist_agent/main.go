// Package main is the entry point for the candidate shortlisting agent.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "shortlist_agent",
	Short: "AI-assisted candidate shortlisting for job postings",
	Long:  "shortlist_agent parses a job description, extracts structured data from resume files, scores every candidate against five criteria, and produces a ranked shortlist report.",
}

func main() {
	// Load .env if present; GEMINI_API_KEY usually lives there.
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
