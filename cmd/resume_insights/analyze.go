package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/resume-insights/internal/config"
	"github.com/jonathan/resume-insights/internal/observability"
	"github.com/jonathan/resume-insights/internal/pipeline"
)

var analyzeCommand = &cobra.Command{
	Use:   "analyze",
	Short: "Run the full resume analysis end-to-end",
	Long: `Runs every analysis over the résumé: profile extraction, ATS scoring, job description matching, career suggestions and interview question selection.

Configuration can be loaded from a JSON file using --config. Command-line arguments override config file values.`,
	RunE: runAnalyzeCmd,
}

var (
	analyzeConfigPath   string
	analyzeResume       string
	analyzeJD           string
	analyzeCareerData   string
	analyzeQuestionData string
	analyzeTopCareers   int
	analyzeNumQuestions int
	analyzeDifficulty   string
	analyzeInterests    []string
	analyzeSeed         int64
	analyzeAPIKey       string
	analyzeVerbose      bool
	analyzeJSON         bool
)

func init() {
	// Config file flag (processed first)
	analyzeCommand.Flags().StringVar(&analyzeConfigPath, "config", "", "Path to config.json file (values can be overridden by other flags)")

	analyzeCommand.Flags().StringVarP(&analyzeResume, "resume", "r", "", "Path to résumé text file")
	analyzeCommand.Flags().StringVarP(&analyzeJD, "jd", "j", "", "Path to job description text file (enables match analysis)")
	analyzeCommand.Flags().StringVar(&analyzeCareerData, "career-data", "", "Path to external career catalog JSON")
	analyzeCommand.Flags().StringVar(&analyzeQuestionData, "question-data", "", "Path to external question bank JSON")
	analyzeCommand.Flags().IntVar(&analyzeTopCareers, "top-careers", 0, "Maximum career suggestions")
	analyzeCommand.Flags().IntVar(&analyzeNumQuestions, "questions", 0, "Maximum interview questions")
	analyzeCommand.Flags().StringVar(&analyzeDifficulty, "difficulty", "", "Question difficulty: easy, medium, hard, all")
	analyzeCommand.Flags().StringSliceVar(&analyzeInterests, "interests", nil, "Career interests that nudge suggestions")
	analyzeCommand.Flags().Int64Var(&analyzeSeed, "seed", 0, "Question selection seed (0 means time-seeded)")
	analyzeCommand.Flags().BoolVarP(&analyzeVerbose, "verbose", "v", false, "Print detailed boxed output")
	analyzeCommand.Flags().BoolVar(&analyzeJSON, "json", false, "Emit the report as JSON")

	// API key can be passed as a flag, or read from env var GEMINI_API_KEY
	analyzeCommand.Flags().StringVar(&analyzeAPIKey, "api-key", "", "Gemini API Key for semantic matching (optional, defaults to GEMINI_API_KEY env var)")

	rootCmd.AddCommand(analyzeCommand)
}

func runAnalyzeCmd(cmd *cobra.Command, _ []string) error {
	ctx := context.Background()

	// Step 1: Load config file if provided
	var cfg config.Config
	if analyzeConfigPath != "" {
		loadedCfg, err := config.LoadConfig(analyzeConfigPath)
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}

		// Validate loaded config
		if err := loadedCfg.Validate(); err != nil {
			return err
		}

		cfg = *loadedCfg
		if analyzeVerbose {
			_, _ = fmt.Fprintf(os.Stdout, "Loaded config from: %s\n", analyzeConfigPath)
		}
	}

	// Step 2: Apply CLI overrides (command-line args take priority)
	// Only override if the flag was explicitly set
	if cmd.Flags().Changed("resume") {
		cfg.Resume = analyzeResume
	}
	if cmd.Flags().Changed("jd") {
		cfg.JobDescription = analyzeJD
	}
	if cmd.Flags().Changed("career-data") {
		cfg.CareerData = analyzeCareerData
	}
	if cmd.Flags().Changed("question-data") {
		cfg.QuestionData = analyzeQuestionData
	}
	if cmd.Flags().Changed("top-careers") {
		cfg.TopCareers = analyzeTopCareers
	}
	if cmd.Flags().Changed("questions") {
		cfg.NumQuestions = analyzeNumQuestions
	}
	if cmd.Flags().Changed("difficulty") {
		cfg.Difficulty = analyzeDifficulty
	}
	if cmd.Flags().Changed("interests") {
		cfg.Interests = analyzeInterests
	}
	if cmd.Flags().Changed("seed") {
		cfg.Seed = analyzeSeed
	}
	if cmd.Flags().Changed("api-key") {
		cfg.APIKey = analyzeAPIKey
	}
	if cmd.Flags().Changed("verbose") {
		cfg.Verbose = analyzeVerbose
	}
	if cmd.Flags().Changed("json") {
		cfg.JSONOut = analyzeJSON
	}

	// Step 3: Apply defaults for unset values
	defaults := config.Config{
		TopCareers:   5,
		NumQuestions: 10,
		Difficulty:   "all",
	}
	cfg = cfg.MergeWithDefaults(defaults)

	// Step 4: Validate required fields
	if cfg.Resume == "" {
		return fmt.Errorf("--resume must be provided (via flag or config)")
	}

	resumeText, err := readResume(cfg.Resume)
	if err != nil {
		return err
	}
	jdText, err := readOptionalFile(cfg.JobDescription)
	if err != nil {
		return err
	}

	// Step 5: Semantic matching is optional; without a key the matcher
	// degrades to keyword matching
	semantic, closeSemantic, err := buildSemantic(ctx, cfg.APIKey)
	if err != nil {
		return err
	}
	defer closeSemantic()

	report, err := pipeline.Run(ctx, resumeText, pipeline.Options{
		JobDescription:    jdText,
		TopCareers:        cfg.TopCareers,
		NumQuestions:      cfg.NumQuestions,
		Difficulty:        cfg.Difficulty,
		Interests:         cfg.Interests,
		Seed:              cfg.Seed,
		Semantic:          semantic,
		CareerCatalogPath: cfg.CareerData,
		QuestionBankPath:  cfg.QuestionData,
	})
	if err != nil {
		return fmt.Errorf("analysis failed: %w", err)
	}

	if cfg.JSONOut {
		return printJSON(report)
	}

	printer := observability.NewPrinter(os.Stdout)
	printer.PrintProfile(report.Profile)
	printer.PrintScore(report.ATS)
	printer.PrintMatch(report.Match)
	printer.PrintCareers(report.Careers)
	printer.PrintQuestions(report.Questions)

	_, _ = fmt.Fprintf(os.Stdout, "Report: %s\n", report.ID)
	return nil
}
