package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/resume-insights/internal/matching"
	"github.com/jonathan/resume-insights/internal/normalize"
	"github.com/jonathan/resume-insights/internal/observability"
)

var matchCmd = &cobra.Command{
	Use:   "match",
	Short: "Match a résumé against a job description",
	Long:  "Compares résumé keywords against a job description, optionally adding sentence-level semantic matches when a Gemini API key is configured.",
	RunE:  runMatch,
}

var (
	matchResume string
	matchJD     string
	matchAPIKey string
	matchJSON   bool
)

func init() {
	matchCmd.Flags().StringVarP(&matchResume, "resume", "r", "", "Path to résumé text file")
	matchCmd.Flags().StringVarP(&matchJD, "jd", "j", "", "Path to job description text file")
	matchCmd.Flags().StringVar(&matchAPIKey, "api-key", "", "Gemini API Key for semantic matching (optional, defaults to GEMINI_API_KEY env var)")
	matchCmd.Flags().BoolVar(&matchJSON, "json", false, "Emit the result as JSON")
	_ = matchCmd.MarkFlagRequired("resume")
	_ = matchCmd.MarkFlagRequired("jd")

	rootCmd.AddCommand(matchCmd)
}

func runMatch(_ *cobra.Command, _ []string) error {
	ctx := context.Background()

	resumeText, err := readResume(matchResume)
	if err != nil {
		return err
	}
	jdText, err := readOptionalFile(matchJD)
	if err != nil {
		return err
	}
	if jdText == "" {
		return fmt.Errorf("job description file is empty")
	}

	semantic, closeSemantic, err := buildSemantic(ctx, matchAPIKey)
	if err != nil {
		return err
	}
	defer closeSemantic()

	matcher := matching.NewMatcher(semantic)
	result := matcher.Match(ctx, normalize.ForExtraction(resumeText), jdText)

	if matchJSON {
		return printJSON(result)
	}

	observability.NewPrinter(os.Stdout).PrintMatch(result)
	return nil
}
