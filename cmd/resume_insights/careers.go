package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/resume-insights/internal/careers"
	"github.com/jonathan/resume-insights/internal/normalize"
	"github.com/jonathan/resume-insights/internal/observability"
	"github.com/jonathan/resume-insights/internal/types"
)

var careersCmd = &cobra.Command{
	Use:   "careers",
	Short: "Suggest career paths matching a résumé",
	Long:  "Ranks careers from the catalog by how well the résumé's skills and experience level cover their required and preferred skills.",
	RunE:  runCareers,
}

var (
	careersResume     string
	careersData       string
	careersTopN       int
	careersInterests  []string
	careersJSON       bool
	careersTargetRole string
)

func init() {
	careersCmd.Flags().StringVarP(&careersResume, "resume", "r", "", "Path to résumé text file")
	careersCmd.Flags().StringVar(&careersData, "career-data", "", "Path to external career catalog JSON")
	careersCmd.Flags().IntVar(&careersTopN, "top", 0, "Maximum suggestions to return")
	careersCmd.Flags().StringSliceVar(&careersInterests, "interests", nil, "Interests that nudge suggestion scores")
	careersCmd.Flags().StringVar(&careersTargetRole, "plan", "", "Also print a development plan toward this role")
	careersCmd.Flags().BoolVar(&careersJSON, "json", false, "Emit the result as JSON")
	_ = careersCmd.MarkFlagRequired("resume")

	rootCmd.AddCommand(careersCmd)
}

func runCareers(_ *cobra.Command, _ []string) error {
	resumeText, err := readResume(careersResume)
	if err != nil {
		return err
	}
	text := normalize.ForExtraction(resumeText)

	engine := careers.NewEngine(careers.LoadCatalog(careersData))

	opts := careers.DefaultSuggestOptions()
	if careersTopN > 0 {
		opts.TopN = careersTopN
	}
	opts.Interests = careersInterests

	suggestions, err := engine.Suggest(text, opts)
	if err != nil {
		return fmt.Errorf("career suggestions failed: %w", err)
	}

	if careersTargetRole == "" {
		if careersJSON {
			return printJSON(suggestions)
		}
		observability.NewPrinter(os.Stdout).PrintCareers(suggestions)
		return nil
	}

	plan, err := engine.DevelopmentPlan(text, careersTargetRole)
	if err != nil {
		return fmt.Errorf("development plan failed: %w", err)
	}

	if careersJSON {
		return printJSON(map[string]any{"suggestions": suggestions, "plan": plan})
	}

	observability.NewPrinter(os.Stdout).PrintCareers(suggestions)
	printPlan(plan)
	return nil
}

func printPlan(plan *types.DevelopmentPlan) {
	_, _ = fmt.Fprintf(os.Stdout, "\nDevelopment plan for %s\n", plan.TargetRole)
	_, _ = fmt.Fprintf(os.Stdout, "Market readiness: %.0f%%  Timeline: %s\n", plan.MarketReadiness, plan.Timeline)
	if len(plan.Priorities.Immediate) > 0 {
		_, _ = fmt.Fprintf(os.Stdout, "Learn first: %v\n", plan.Priorities.Immediate)
	}
	for _, step := range plan.NextSteps {
		_, _ = fmt.Fprintf(os.Stdout, "  • %s\n", step)
	}
}
