package main

import (
	"fmt"
	"math/rand"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/resume-insights/internal/interview"
	"github.com/jonathan/resume-insights/internal/normalize"
	"github.com/jonathan/resume-insights/internal/observability"
)

var interviewCmd = &cobra.Command{
	Use:   "interview",
	Short: "Select interview questions tailored to a résumé",
	Long:  "Builds a question pool from the technologies and seniority on the résumé, filters it by difficulty and category, and returns a shuffled selection.",
	RunE:  runInterview,
}

var (
	interviewResume     string
	interviewData       string
	interviewNum        int
	interviewDifficulty string
	interviewCategories []string
	interviewSeed       int64
	interviewJSON       bool
)

func init() {
	interviewCmd.Flags().StringVarP(&interviewResume, "resume", "r", "", "Path to résumé text file")
	interviewCmd.Flags().StringVar(&interviewData, "question-data", "", "Path to external question bank JSON")
	interviewCmd.Flags().IntVarP(&interviewNum, "questions", "n", 0, "Maximum questions to return")
	interviewCmd.Flags().StringVar(&interviewDifficulty, "difficulty", "", "Question difficulty: easy, medium, hard, all")
	interviewCmd.Flags().StringSliceVar(&interviewCategories, "categories", nil, "Keep only questions matching these categories or tags")
	interviewCmd.Flags().Int64Var(&interviewSeed, "seed", 0, "Selection seed (0 means time-seeded)")
	interviewCmd.Flags().BoolVar(&interviewJSON, "json", false, "Emit the result as JSON")
	_ = interviewCmd.MarkFlagRequired("resume")

	rootCmd.AddCommand(interviewCmd)
}

func runInterview(_ *cobra.Command, _ []string) error {
	resumeText, err := readResume(interviewResume)
	if err != nil {
		return err
	}

	var src rand.Source
	if interviewSeed != 0 {
		src = rand.NewSource(interviewSeed)
	}
	selector := interview.NewSelector(interview.LoadBank(interviewData), src)

	opts := interview.DefaultGenerateOptions()
	if interviewNum > 0 {
		opts.NumQuestions = interviewNum
	}
	if interviewDifficulty != "" {
		opts.Difficulty = interviewDifficulty
	}
	opts.Categories = interviewCategories

	questions, err := selector.Generate(normalize.ForExtraction(resumeText), opts)
	if err != nil {
		return fmt.Errorf("question selection failed: %w", err)
	}

	if interviewJSON {
		return printJSON(questions)
	}

	observability.NewPrinter(os.Stdout).PrintQuestions(questions)
	return nil
}
