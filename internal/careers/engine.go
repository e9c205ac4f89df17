package careers

import (
	"fmt"
	"math"
	"regexp"
	"sort"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/jonathan/resume-insights/internal/extraction"
	"github.com/jonathan/resume-insights/internal/types"
)

// matching weights and thresholds. Required-skill coverage dominates;
// preferred skills add a smaller bonus, and a level fit multiplies the
// total.
const (
	requiredWeight  = 0.6
	preferredWeight = 0.3
	preferredBonus  = 0.5
	levelBoost      = 1.1
	relevanceDecay  = 0.05
	minRelevance    = 0.1
	interestBonus   = 0.05
)

// SuggestOptions control career suggestion filtering.
type SuggestOptions struct {
	// TopN is the maximum number of suggestions returned.
	TopN int `validate:"min=1"`
	// MinMatchScore is the minimum match fraction (0 to 1); careers whose
	// score falls below it are discarded.
	MinMatchScore float64 `validate:"gte=0,lte=1"`
	// MinRequiredSkills is the minimum number of matching required skills;
	// careers with fewer are discarded even when their score clears
	// MinMatchScore.
	MinRequiredSkills int `validate:"min=0"`
	// Interests nudge scores for careers whose title or description
	// mentions them.
	Interests []string
}

// DefaultSuggestOptions returns the standard filtering thresholds.
func DefaultSuggestOptions() SuggestOptions {
	return SuggestOptions{
		TopN:              5,
		MinMatchScore:     0.2,
		MinRequiredSkills: 2,
	}
}

var validate = validator.New()

// Engine suggests careers from a catalog.
type Engine struct {
	catalog []Career
}

// NewEngine builds an engine over the given catalog; a nil or empty catalog
// falls back to the built-in one.
func NewEngine(catalog []Career) *Engine {
	if len(catalog) == 0 {
		catalog = DefaultCatalog()
	}
	return &Engine{catalog: catalog}
}

// Suggest analyzes the résumé and returns up to TopN career suggestions
// ordered by match strength. A résumé with no recognizable skills yields a
// single generalist placeholder so callers always have something to show.
func (e *Engine) Suggest(resumeText string, opts SuggestOptions) ([]types.CareerSuggestion, error) {
	if err := validate.Struct(opts); err != nil {
		return nil, fmt.Errorf("invalid suggestion options: %w", err)
	}

	skills := extraction.Skills(resumeText)
	if len(skills) == 0 {
		return []types.CareerSuggestion{placeholderSuggestion()}, nil
	}

	skillSet := make(map[string]bool, len(skills))
	for _, s := range skills {
		skillSet[s] = true
	}
	level := ExperienceLevel(resumeText)

	var suggestions []types.CareerSuggestion
	for _, career := range e.catalog {
		s := e.scoreCareer(career, skillSet, level, opts.Interests)
		// both thresholds must hold; MatchScore is on the 0-100 scale
		if len(s.MatchingSkills) < opts.MinRequiredSkills || s.MatchScore < opts.MinMatchScore*100 {
			continue
		}
		suggestions = append(suggestions, s)
	}

	sort.SliceStable(suggestions, func(i, j int) bool {
		if suggestions[i].MatchScore != suggestions[j].MatchScore {
			return suggestions[i].MatchScore > suggestions[j].MatchScore
		}
		wi := float64(len(suggestions[i].MatchingSkills)) + 0.5*float64(len(suggestions[i].MatchingPreferredSkills))
		wj := float64(len(suggestions[j].MatchingSkills)) + 0.5*float64(len(suggestions[j].MatchingPreferredSkills))
		if wi != wj {
			return wi > wj
		}
		return suggestions[i].Title < suggestions[j].Title
	})

	if len(suggestions) > opts.TopN {
		suggestions = suggestions[:opts.TopN]
	}
	return suggestions, nil
}

// scoreCareer computes the weighted match between extracted skills and one
// career definition.
func (e *Engine) scoreCareer(career Career, skillSet map[string]bool, level string, interests []string) types.CareerSuggestion {
	var matching, missing []string
	weightSum, matchedWeight := 0.0, 0.0
	for i, req := range career.RequiredSkills {
		w := math.Max(1-float64(i)*relevanceDecay, minRelevance)
		weightSum += w
		if skillSet[req] {
			matching = append(matching, req)
			matchedWeight += w
		} else {
			missing = append(missing, req)
		}
	}

	var matchingPref []string
	for _, pref := range career.PreferredSkills {
		if skillSet[pref] {
			matchingPref = append(matchingPref, pref)
		}
	}

	score := 0.0
	if weightSum > 0 {
		score = matchedWeight / weightSum * requiredWeight
	}
	if len(career.PreferredSkills) > 0 {
		frac := float64(len(matchingPref)) / float64(len(career.PreferredSkills))
		score += frac * preferredBonus * preferredWeight
	}

	experienceFit := ""
	if level != "entry" && supportsLevel(career, level) {
		score = math.Min(score*levelBoost, 1.0)
		experienceFit = level
	}

	for _, interest := range interests {
		t := strings.ToLower(strings.TrimSpace(interest))
		if t == "" {
			continue
		}
		if strings.Contains(strings.ToLower(career.Title), t) || strings.Contains(strings.ToLower(career.Description), t) {
			score = math.Min(score+interestBonus, 1.0)
			break
		}
	}

	return types.CareerSuggestion{
		Title:                   career.Title,
		Description:             career.Description,
		MatchScore:              round2(math.Min(score*100, 100)),
		MatchingSkills:          matching,
		MatchingPreferredSkills: matchingPref,
		MissingSkills:           missing,
		SalaryRange:             career.SalaryRange,
		GrowthOutlook:           career.GrowthOutlook,
		Education:               career.Education,
		Certifications:          career.Certifications,
		ExperienceFit:           experienceFit,
		JobMarketDemand:         career.JobMarketDemand,
	}
}

func supportsLevel(career Career, level string) bool {
	for _, l := range career.ExperienceLevels {
		if l == level {
			return true
		}
	}
	return false
}

// placeholderSuggestion is returned when no skills could be extracted.
func placeholderSuggestion() types.CareerSuggestion {
	return types.CareerSuggestion{
		Title:          "General IT Professional",
		Description:    "Add recognizable technical skills to your resume to receive targeted career suggestions.",
		MatchScore:     0,
		MatchingSkills: []string{},
		MissingSkills:  []string{},
	}
}

var (
	yearsExpRe      = regexp.MustCompile(`(?i)\b(\d{1,2})\+?\s*(?:years?|yrs?)\s+(?:of\s+)?experience\b`)
	leadershipTerms = []string{"lead", "led", "manager", "managed", "director", "head of", "supervised", "mentored", "principal"}
)

// ExperienceLevel classifies a résumé as entry, mid or senior based on
// stated years of experience and leadership language.
func ExperienceLevel(resumeText string) string {
	lower := strings.ToLower(resumeText)

	years := 0
	for _, m := range yearsExpRe.FindAllStringSubmatch(resumeText, -1) {
		if y, err := strconv.Atoi(m[1]); err == nil && y > years {
			years = y
		}
	}

	leader := false
	for _, term := range leadershipTerms {
		if extraction.IndexTerm(lower, term) >= 0 {
			leader = true
			break
		}
	}

	switch {
	case years >= 10 || (leader && years >= 5):
		return "senior"
	case years >= 2 || leader:
		return "mid"
	default:
		return "entry"
	}
}

func round2(x float64) float64 {
	return math.Round(x*100) / 100
}
