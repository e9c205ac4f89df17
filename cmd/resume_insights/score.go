package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/resume-insights/internal/normalize"
	"github.com/jonathan/resume-insights/internal/observability"
	"github.com/jonathan/resume-insights/internal/scoring"
)

var scoreCmd = &cobra.Command{
	Use:   "score",
	Short: "Score a résumé against ATS criteria",
	Long:  "Scores a résumé across keyword coverage, action verbs, measurable achievements, experience, education, skills, formatting and contact info, with feedback for weak categories.",
	RunE:  runScore,
}

var (
	scoreResume string
	scoreJSON   bool
)

func init() {
	scoreCmd.Flags().StringVarP(&scoreResume, "resume", "r", "", "Path to résumé text file")
	scoreCmd.Flags().BoolVar(&scoreJSON, "json", false, "Emit the result as JSON")
	_ = scoreCmd.MarkFlagRequired("resume")

	rootCmd.AddCommand(scoreCmd)
}

func runScore(_ *cobra.Command, _ []string) error {
	resumeText, err := readResume(scoreResume)
	if err != nil {
		return err
	}

	result := scoring.CalculateScore(normalize.ForExtraction(resumeText))

	if scoreJSON {
		return printJSON(result)
	}

	observability.NewPrinter(os.Stdout).PrintScore(result)
	_, _ = fmt.Fprintf(os.Stdout, "Score: %.1f / %.0f\n", result.Score, result.MaxScore)
	return nil
}
