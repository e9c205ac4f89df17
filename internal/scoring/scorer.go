// Package scoring computes an ATS compatibility score from résumé text.
//
// Eight categories are scored on a 0-100 scale and aggregated with fixed
// weights. The weights intentionally sum to 130, not 100; the aggregate is
// clamped to 100, so a résumé does not need perfection in every category to
// reach the ceiling. Input text must keep its line structure (use
// normalize.ForExtraction, not ForScoring) since the experience and
// formatting categories scan lines.
package scoring

import (
	"fmt"
	"math"
	"strings"

	"github.com/jonathan/resume-insights/internal/types"
)

// Category names, in report order.
const (
	CategoryKeywords     = "keywords"
	CategoryActionVerbs  = "action_verbs"
	CategoryContactInfo  = "contact_info"
	CategoryExperience   = "work_experience"
	CategoryEducation    = "education"
	CategorySkills       = "skills"
	CategoryAchievements = "achievements"
	CategoryFormatting   = "formatting"
)

type weightedCategory struct {
	name   string
	weight float64
	score  func(string) types.CategoryResult
}

// categories holds the scoring functions and their aggregation weights.
// Order is significant for deterministic feedback output.
var categories = []weightedCategory{
	{CategoryKeywords, 30, scoreKeywords},
	{CategoryActionVerbs, 20, scoreActionVerbs},
	{CategoryContactInfo, 10, scoreContactInfo},
	{CategoryExperience, 20, scoreWorkExperience},
	{CategoryEducation, 10, scoreEducation},
	{CategorySkills, 15, scoreSkillsSection},
	{CategoryAchievements, 15, scoreAchievements},
	{CategoryFormatting, 10, scoreFormatting},
}

// feedbackThreshold is the fraction of a category's max below which its
// feedback line is surfaced in the aggregate report.
const feedbackThreshold = 0.6

// CalculateScore scores the résumé across all categories and aggregates
// into a single 0-100 result.
func CalculateScore(text string) *types.ScoreResult {
	result := &types.ScoreResult{
		MaxScore: 100,
		Details:  make(map[string]types.CategoryResult, len(categories)),
	}

	if strings.TrimSpace(text) == "" {
		result.Feedback = []string{"Resume text is empty. Provide resume content to score."}
		return result
	}

	total := 0.0
	for _, c := range categories {
		cr := c.score(text)
		result.Details[c.name] = cr

		if cr.MaxScore > 0 {
			total += cr.Score / cr.MaxScore * c.weight
		}
		if cr.Score < feedbackThreshold*cr.MaxScore && cr.Feedback != "" {
			result.Feedback = append(result.Feedback, categoryTitle(c.name)+": "+cr.Feedback)
		}
	}

	result.Score = math.Min(round2(total), 100)
	result.Feedback = append([]string{verdict(result.Score)}, result.Feedback...)
	return result
}

// categoryTitle renders a category name like "work_experience" as
// "Work Experience" for feedback lines.
func categoryTitle(name string) string {
	words := strings.Split(name, "_")
	for i, w := range words {
		if w != "" {
			words[i] = strings.ToUpper(w[:1]) + w[1:]
		}
	}
	return strings.Join(words, " ")
}

func verdict(score float64) string {
	switch {
	case score < 50:
		return fmt.Sprintf("Your resume scored %.1f/100. It needs significant improvement to pass ATS screening.", score)
	case score < 75:
		return fmt.Sprintf("Your resume scored %.1f/100. It is decent but has room for improvement.", score)
	default:
		return fmt.Sprintf("Your resume scored %.1f/100. Great job! It is well optimized for ATS screening.", score)
	}
}

func round2(x float64) float64 {
	return math.Round(x*100) / 100
}

func clamp(x, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, x))
}
