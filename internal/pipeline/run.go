// Package pipeline provides the high-level orchestration for a resume
// analysis run: normalization once, then extraction, ATS scoring, job
// matching, career suggestions and interview question selection over the
// shared normalized text.
package pipeline

import (
	"context"
	"fmt"
	"math/rand"
	"strings"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/jonathan/resume-insights/internal/careers"
	"github.com/jonathan/resume-insights/internal/extraction"
	"github.com/jonathan/resume-insights/internal/interview"
	"github.com/jonathan/resume-insights/internal/matching"
	"github.com/jonathan/resume-insights/internal/normalize"
	"github.com/jonathan/resume-insights/internal/scoring"
	"github.com/jonathan/resume-insights/internal/types"
)

// Options holds configuration for a full analysis run.
type Options struct {
	// JobDescription enables match analysis when non-empty.
	JobDescription string
	// TopCareers caps career suggestions; 0 uses the engine default.
	TopCareers int
	// NumQuestions caps interview questions; 0 uses the selector default.
	NumQuestions int
	// Difficulty filters interview questions; empty means all.
	Difficulty string
	// Interests nudge career suggestion scores.
	Interests []string
	// Seed fixes question selection; 0 means time-seeded.
	Seed int64
	// Semantic is the sentence-matching strategy; nil disables it.
	Semantic matching.Semantic
	// CareerCatalogPath and QuestionBankPath point at optional external
	// reference data; empty or invalid paths use built-in data.
	CareerCatalogPath string
	QuestionBankPath  string
}

// Report is the assembled result of one analysis run.
type Report struct {
	ID        uuid.UUID                 `json:"id"`
	Profile   *types.ResumeProfile      `json:"profile"`
	ATS       *types.ScoreResult        `json:"ats"`
	Match     *types.MatchResult        `json:"match,omitempty"`
	Careers   []types.CareerSuggestion  `json:"careers"`
	Questions []types.InterviewQuestion `json:"questions"`
}

// Run executes the full analysis over the résumé text. The four analysis
// branches are independent and run concurrently over one shared
// normalization pass.
func Run(ctx context.Context, resumeText string, opts Options) (*Report, error) {
	if strings.TrimSpace(resumeText) == "" {
		return nil, fmt.Errorf("resume text is empty")
	}

	text := normalize.ForExtraction(resumeText)
	report := &Report{ID: uuid.New()}

	engine := careers.NewEngine(careers.LoadCatalog(opts.CareerCatalogPath))
	var src rand.Source
	if opts.Seed != 0 {
		src = rand.NewSource(opts.Seed)
	}
	selector := interview.NewSelector(interview.LoadBank(opts.QuestionBankPath), src)
	matcher := matching.NewMatcher(opts.Semantic)

	g, gCtx := errgroup.WithContext(ctx)

	g.Go(func() error {
		report.Profile = extraction.Extract(text)
		return nil
	})

	g.Go(func() error {
		report.ATS = scoring.CalculateScore(text)
		return nil
	})

	g.Go(func() error {
		if strings.TrimSpace(opts.JobDescription) == "" {
			return nil
		}
		report.Match = matcher.Match(gCtx, text, opts.JobDescription)
		return nil
	})

	g.Go(func() error {
		copts := careers.DefaultSuggestOptions()
		if opts.TopCareers > 0 {
			copts.TopN = opts.TopCareers
		}
		copts.Interests = opts.Interests

		suggestions, err := engine.Suggest(text, copts)
		if err != nil {
			return fmt.Errorf("career suggestions failed: %w", err)
		}
		report.Careers = suggestions
		return nil
	})

	g.Go(func() error {
		qopts := interview.DefaultGenerateOptions()
		if opts.NumQuestions > 0 {
			qopts.NumQuestions = opts.NumQuestions
		}
		if opts.Difficulty != "" {
			qopts.Difficulty = opts.Difficulty
		}

		questions, err := selector.Generate(text, qopts)
		if err != nil {
			return fmt.Errorf("interview question selection failed: %w", err)
		}
		report.Questions = questions
		return nil
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return report, nil
}
