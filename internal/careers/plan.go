package careers

import (
	"fmt"
	"math"
	"strings"

	"github.com/jonathan/resume-insights/internal/extraction"
	"github.com/jonathan/resume-insights/internal/types"
)

const (
	readinessRequiredWeight = 80.0
	readinessPreferredStep  = 2.0
)

// DevelopmentPlan builds a skill development plan toward a target role.
// Missing required skills are prioritized by catalog relevance order: the
// first three are immediate, the next three short-term, the rest long-term.
// Returns an error when the target role is not in the catalog.
func (e *Engine) DevelopmentPlan(resumeText, targetRole string) (*types.DevelopmentPlan, error) {
	career, ok := FindCareer(e.catalog, targetRole)
	if !ok {
		return nil, fmt.Errorf("unknown target role %q: not in career catalog", targetRole)
	}

	skills := extraction.Skills(resumeText)
	skillSet := make(map[string]bool, len(skills))
	for _, s := range skills {
		skillSet[s] = true
	}

	var missing []string
	weightSum, matchedWeight := 0.0, 0.0
	for i, req := range career.RequiredSkills {
		w := math.Max(1-float64(i)*relevanceDecay, minRelevance)
		weightSum += w
		if skillSet[req] {
			matchedWeight += w
		} else {
			missing = append(missing, req)
		}
	}

	matchingPref := 0
	for _, pref := range career.PreferredSkills {
		if skillSet[pref] {
			matchingPref++
		}
	}

	readiness := 0.0
	if weightSum > 0 {
		readiness = matchedWeight / weightSum * readinessRequiredWeight
	}
	readiness = math.Min(readiness+float64(matchingPref)*readinessPreferredStep, 100)

	plan := &types.DevelopmentPlan{
		TargetRole:      career.Title,
		CurrentSkills:   skills,
		Priorities:      prioritize(missing),
		MarketReadiness: round2(readiness),
		Timeline:        timeline(len(missing)),
		NextSteps:       nextSteps(career, missing),
	}
	return plan, nil
}

func prioritize(missing []string) types.SkillPriority {
	p := types.SkillPriority{}
	for i, s := range missing {
		switch {
		case i < 3:
			p.Immediate = append(p.Immediate, s)
		case i < 6:
			p.ShortTerm = append(p.ShortTerm, s)
		default:
			p.LongTerm = append(p.LongTerm, s)
		}
	}
	return p
}

func timeline(missingCount int) string {
	switch {
	case missingCount == 0:
		return "You already cover the required skills; start applying now."
	case missingCount <= 3:
		return "3-6 months of focused learning."
	case missingCount <= 6:
		return "6-12 months of steady skill building."
	default:
		return "12-24 months; consider intermediate roles along the way."
	}
}

func nextSteps(career Career, missing []string) []string {
	var steps []string
	if len(missing) > 0 {
		n := len(missing)
		if n > 3 {
			n = 3
		}
		steps = append(steps, "Learn "+strings.Join(missing[:n], ", ")+" through courses or personal projects.")
		steps = append(steps, "Build a portfolio project that demonstrates these skills together.")
	} else {
		steps = append(steps, "Tailor your resume to highlight the required skills and start applying.")
	}
	if len(career.Certifications) > 0 {
		steps = append(steps, "Consider certification: "+strings.Join(career.Certifications, " or ")+".")
	}
	return steps
}
