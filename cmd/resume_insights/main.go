// Package main provides the entry point for the Resume Insights CLI.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "resume_insights",
	Short: "Resume analysis toolkit",
	Long:  "Resume Insights extracts a structured profile from a résumé, scores it against ATS criteria, matches it to job descriptions, suggests career paths and selects tailored interview questions.",
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
