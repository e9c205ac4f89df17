package matching

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
	"strings"
	"sync"

	"github.com/pmezard/go-difflib/difflib"

	"github.com/jonathan/resume-insights/internal/types"
)

const (
	// fuzzyCutoff is the similarity ratio at which a job keyword is
	// considered covered by a close résumé spelling.
	fuzzyCutoff = 0.8

	// semanticThreshold is the minimum cosine similarity for a sentence
	// pair to count as a semantic match.
	semanticThreshold = 0.6

	maxOverlapKeywords = 20
	maxMissingKeywords = 20
	maxFeedbackMissing = 5
	maxKeyPhrases      = 5
)

// Matcher scores résumé coverage of a job description. The semantic
// strategy is fixed at construction; an unavailable strategy is reported
// once and the matcher keeps working on keywords alone.
type Matcher struct {
	semantic Semantic
	noteOnce sync.Once
}

// NewMatcher builds a matcher around the given semantic strategy. Passing
// nil disables semantic matching.
func NewMatcher(semantic Semantic) *Matcher {
	if semantic == nil {
		semantic = NoSemantic{}
	}
	return &Matcher{semantic: semantic}
}

// Match analyzes how well the résumé covers the job description and returns
// a populated result. It never fails; semantic errors degrade to
// keyword-only analysis with a feedback note.
func (m *Matcher) Match(ctx context.Context, resumeText, jdText string) *types.MatchResult {
	result := &types.MatchResult{}

	jdTokens := tokenize(jdText)
	if len(jdTokens) == 0 {
		result.Feedback = append(result.Feedback, "The job description contains no analyzable keywords.")
		return result
	}
	resumeTokens := tokenize(resumeText)

	matched, missing := intersect(resumeTokens, jdTokens)
	matched, missing = fuzzyPass(matched, missing, resumeTokens)

	score := float64(len(matched)) / float64(len(jdTokens))
	result.MatchScore = round2(score * 100)
	result.KeywordOverlap = capList(matched, maxOverlapKeywords)
	result.MissingKeywords = capList(missing, maxMissingKeywords)

	m.applySemantic(ctx, resumeText, jdText, result)
	m.buildFeedback(score, missing, jdText, result)
	return result
}

// intersect splits job keywords into exactly-matched and missing, both
// sorted for deterministic output.
func intersect(resumeTokens, jdTokens map[string]bool) (matched, missing []string) {
	for w := range jdTokens {
		if resumeTokens[w] {
			matched = append(matched, w)
		} else {
			missing = append(missing, w)
		}
	}
	sort.Strings(matched)
	sort.Strings(missing)
	return matched, missing
}

// fuzzyPass promotes missing job keywords that have a close spelling in the
// résumé. Each résumé word can satisfy only one job keyword.
func fuzzyPass(matched, missing []string, resumeTokens map[string]bool) ([]string, []string) {
	pool := make(map[string]bool, len(resumeTokens))
	for w := range resumeTokens {
		pool[w] = true
	}
	for _, w := range matched {
		delete(pool, w)
	}

	var stillMissing []string
	for _, want := range missing {
		if hit := closestMatch(want, pool); hit != "" {
			matched = append(matched, want)
			delete(pool, hit)
			continue
		}
		stillMissing = append(stillMissing, want)
	}
	sort.Strings(matched)
	return matched, stillMissing
}

// closestMatch returns the pool word most similar to want at or above the
// fuzzy cutoff, or empty when none qualifies.
func closestMatch(want string, pool map[string]bool) string {
	candidates := make([]string, 0, len(pool))
	for w := range pool {
		candidates = append(candidates, w)
	}
	sort.Strings(candidates)

	best, bestRatio := "", fuzzyCutoff
	for _, c := range candidates {
		if r := ratio(want, c); r >= bestRatio {
			best, bestRatio = c, r
		}
	}
	return best
}

// ratio is the difflib sequence similarity of two words in [0, 1].
func ratio(a, b string) float64 {
	return difflib.NewMatcher(strings.Split(a, ""), strings.Split(b, "")).Ratio()
}

func (m *Matcher) applySemantic(ctx context.Context, resumeText, jdText string, result *types.MatchResult) {
	if !m.semantic.Available() {
		m.noteOnce.Do(func() {
			slog.Info("semantic matching unavailable, using keyword analysis only")
		})
		result.Feedback = append(result.Feedback, "Semantic matching is unavailable; results are based on keyword analysis only.")
		return
	}

	matches, err := m.semantic.Match(ctx, resumeText, jdText, semanticThreshold)
	if err != nil {
		slog.Warn("semantic matching failed, degrading to keywords", "error", err)
		result.Feedback = append(result.Feedback, "Semantic matching failed; results are based on keyword analysis only.")
		return
	}
	result.SemanticMatches = matches
}

func (m *Matcher) buildFeedback(score float64, missing []string, jdText string, result *types.MatchResult) {
	switch {
	case score >= 0.7:
		result.Feedback = append(result.Feedback, fmt.Sprintf("Strong match (%.0f%%): your resume covers most of the job requirements.", score*100))
	case score >= 0.4:
		result.Feedback = append(result.Feedback, fmt.Sprintf("Moderate match (%.0f%%): consider emphasizing more of the required skills.", score*100))
	default:
		result.Feedback = append(result.Feedback, fmt.Sprintf("Low match (%.0f%%): this role may require skills not shown on your resume.", score*100))
	}

	if len(missing) > 0 {
		shown := capList(missing, maxFeedbackMissing)
		result.Feedback = append(result.Feedback, "Consider adding keywords: "+strings.Join(shown, ", ")+".")
	}

	if score < 0.7 {
		result.KeyPhrases = KeyPhrases(jdText, maxKeyPhrases)
	}
}

func capList(list []string, n int) []string {
	if len(list) > n {
		return list[:n]
	}
	return list
}

func round2(x float64) float64 {
	return float64(int(x*100+0.5)) / 100
}
