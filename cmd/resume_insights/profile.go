package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/resume-insights/internal/extraction"
	"github.com/jonathan/resume-insights/internal/normalize"
	"github.com/jonathan/resume-insights/internal/observability"
)

var profileCmd = &cobra.Command{
	Use:   "profile",
	Short: "Extract a structured profile from a résumé",
	Long:  "Extracts contact info, skills, work experience, education and a generated summary from raw résumé text.",
	RunE:  runProfile,
}

var (
	profileResume string
	profileJSON   bool
)

func init() {
	profileCmd.Flags().StringVarP(&profileResume, "resume", "r", "", "Path to résumé text file")
	profileCmd.Flags().BoolVar(&profileJSON, "json", false, "Emit the result as JSON")
	_ = profileCmd.MarkFlagRequired("resume")

	rootCmd.AddCommand(profileCmd)
}

func runProfile(_ *cobra.Command, _ []string) error {
	resumeText, err := readResume(profileResume)
	if err != nil {
		return err
	}

	profile := extraction.Extract(normalize.ForExtraction(resumeText))

	if profileJSON {
		return printJSON(profile)
	}

	observability.NewPrinter(os.Stdout).PrintProfile(profile)
	return nil
}
