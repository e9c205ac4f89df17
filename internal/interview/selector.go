package interview

import (
	"fmt"
	"math/rand"
	"regexp"
	"sort"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/jonathan/resume-insights/internal/extraction"
	"github.com/jonathan/resume-insights/internal/types"
)

// seniority cues that pull system design questions into the pool.
var seniorCues = []string{"senior", "lead", "principal", "staff", "architect"}

var yearsRe = regexp.MustCompile(`(\d{1,2})\+?\s*(?:years?|yrs?)\s+(?:of\s+)?experience`)

const systemDesignYears = 3

// GenerateOptions control question selection.
type GenerateOptions struct {
	// NumQuestions is the maximum number of questions returned.
	NumQuestions int `validate:"min=1"`
	// Difficulty filters the pool: easy, medium, hard, or all.
	Difficulty string `validate:"oneof=easy medium hard all"`
	// Categories, when set, keeps only questions whose category or tags
	// contain one of these values (substring match).
	Categories []string
}

// DefaultGenerateOptions returns the standard selection settings.
func DefaultGenerateOptions() GenerateOptions {
	return GenerateOptions{
		NumQuestions: 10,
		Difficulty:   DifficultyAll,
	}
}

var validate = validator.New()

// Selector builds tailored question sets from a bank. The random source is
// injected so selections can be reproduced.
type Selector struct {
	bank *Bank
	rng  *rand.Rand
}

// NewSelector creates a selector over the bank (nil means the built-in
// bank) seeded from the given source; a nil source is time-seeded.
func NewSelector(bank *Bank, src rand.Source) *Selector {
	if bank == nil {
		bank = DefaultBank()
	}
	if src == nil {
		src = rand.NewSource(time.Now().UnixNano())
	}
	return &Selector{bank: bank, rng: rand.New(src)}
}

// Generate assembles a question pool relevant to the résumé, filters it by
// difficulty and category, shuffles, and returns up to NumQuestions.
func (s *Selector) Generate(resumeText string, opts GenerateOptions) ([]types.InterviewQuestion, error) {
	if err := validate.Struct(opts); err != nil {
		return nil, fmt.Errorf("invalid generate options: %w", err)
	}

	pool := s.buildPool(resumeText)
	pool = filterPool(pool, opts)

	s.rng.Shuffle(len(pool), func(i, j int) {
		pool[i], pool[j] = pool[j], pool[i]
	})

	if len(pool) > opts.NumQuestions {
		pool = pool[:opts.NumQuestions]
	}
	return pool, nil
}

// buildPool gathers candidate questions: per-language and data science
// questions for technologies on the résumé, system design for senior
// profiles, and algorithms plus behavioral for everyone.
func (s *Selector) buildPool(resumeText string) []types.InterviewQuestion {
	lower := strings.ToLower(resumeText)
	var pool []types.InterviewQuestion

	add := func(category string, qs []BankQuestion) {
		for _, q := range qs {
			pool = append(pool, types.InterviewQuestion{
				Question:          q.Question,
				Category:          category,
				Difficulty:        q.Difficulty,
				Tags:              q.Tags,
				AnswerGuidance:    q.AnswerGuidance,
				FollowUpQuestions: q.FollowUpQuestions,
			})
		}
	}

	// sorted iteration keeps pool order, and thus seeded selection,
	// reproducible
	for _, lang := range sortedKeys(s.bank.ProgrammingLanguages) {
		if extraction.IndexTerm(lower, lang) >= 0 {
			add(lang, s.bank.ProgrammingLanguages[lang])
		}
	}
	for _, topic := range sortedKeys(s.bank.DataScience) {
		if extraction.IndexTerm(lower, topic) >= 0 {
			add(topic, s.bank.DataScience[topic])
		}
	}
	if includeSystemDesign(lower) {
		add("system_design", s.bank.SystemDesign)
	}
	add("algorithms", s.bank.Algorithms)
	add("behavioral", s.bank.Behavioral)

	return pool
}

// includeSystemDesign reports whether the résumé reads senior enough for
// system design questions: a seniority cue or three-plus stated years.
func includeSystemDesign(lower string) bool {
	for _, cue := range seniorCues {
		if extraction.IndexTerm(lower, cue) >= 0 {
			return true
		}
	}
	return statedYears(lower) >= systemDesignYears
}

func statedYears(lower string) int {
	m := yearsRe.FindStringSubmatch(lower)
	if m == nil {
		return 0
	}
	years := 0
	for _, c := range m[1] {
		years = years*10 + int(c-'0')
	}
	return years
}

func sortedKeys(m map[string][]BankQuestion) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

func filterPool(pool []types.InterviewQuestion, opts GenerateOptions) []types.InterviewQuestion {
	var out []types.InterviewQuestion
	for _, q := range pool {
		if !difficultyMatches(q.Difficulty, opts.Difficulty) {
			continue
		}
		if !categoryMatches(q, opts.Categories) {
			continue
		}
		out = append(out, q)
	}
	return out
}

// categoryMatches accepts a question when any requested category is a
// substring of its category or one of its tags. No requested categories
// means accept everything.
func categoryMatches(q types.InterviewQuestion, categories []string) bool {
	if len(categories) == 0 {
		return true
	}
	for _, want := range categories {
		w := strings.ToLower(strings.TrimSpace(want))
		if w == "" {
			continue
		}
		if strings.Contains(strings.ToLower(q.Category), w) {
			return true
		}
		for _, tag := range q.Tags {
			if strings.Contains(strings.ToLower(tag), w) {
				return true
			}
		}
	}
	return false
}
