package scoring

import (
	"strings"

	"github.com/jonathan/resume-insights/internal/extraction"
	"github.com/jonathan/resume-insights/internal/types"
)

// seniorityLadder orders title tokens from junior to executive. Titles with
// no recognized token sit at the neutral middle rung.
var seniorityLadder = []string{"intern", "junior", "associate", "", "senior", "lead", "principal", "manager", "director", "vp", "cto", "ceo"}

const neutralRung = 3

func seniorityOf(title string) int {
	lower := strings.ToLower(title)
	for i := len(seniorityLadder) - 1; i >= 0; i-- {
		if seniorityLadder[i] == "" {
			continue
		}
		if extraction.IndexTerm(lower, seniorityLadder[i]) >= 0 {
			return i
		}
	}
	return neutralRung
}

// scoreWorkExperience extracts the work history and scores it on five
// sub-criteria: number of positions, seniority progression, quantified
// achievements, technical depth of bullets, and entry completeness.
func scoreWorkExperience(text string) types.CategoryResult {
	entries := extraction.Experiences(text)
	if len(entries) == 0 {
		return types.CategoryResult{
			MaxScore: 100,
			Feedback: "No work experience entries were detected. Use clear date ranges like \"Jan 2020 - Present\".",
		}
	}

	// positions: 10 per fully specified entry (title, company and a start
	// date), cap 20. Entries the parser only half-recognized earn nothing.
	positions := 0.0
	for _, e := range entries {
		if e.Title != "" && e.Company != "" && e.StartDate != "" {
			positions += 10
		}
	}
	positions = clamp(positions, 0, 20)

	// progression: +5 per seniority increase over time, cap 20.
	// Entries appear newest first, so walk them in reverse.
	progression := 0.0
	for i := len(entries) - 1; i > 0; i-- {
		if seniorityOf(entries[i-1].Title) > seniorityOf(entries[i].Title) {
			progression += 5
		}
	}
	progression = clamp(progression, 0, 20)

	// achievements: metric bullets and varied verbs, cap 30
	achievements := 0.0
	techTerms := 0
	for _, e := range entries {
		verbs := map[string]bool{}
		for _, b := range e.Bullets {
			if b.HasMetrics {
				achievements += 3
			}
			if b.ActionVerb != "" && !verbs[b.ActionVerb] {
				verbs[b.ActionVerb] = true
				achievements++
			}
			lower := strings.ToLower(b.Text)
			for _, term := range extraction.SkillVocabulary {
				if extraction.IndexTerm(lower, term) >= 0 {
					techTerms++
				}
			}
		}
		if len(e.Bullets) >= 3 {
			achievements += 5
		}
	}
	achievements = clamp(achievements, 0, 30)

	// technical: 2 per skill term inside bullets, cap 20
	technical := clamp(float64(techTerms)*2, 0, 20)

	// completeness: +5 when every entry carries title, company and a start
	// date, +5 when every entry has at least one bullet
	allSpecified, allBulleted := true, true
	for _, e := range entries {
		if e.Title == "" || e.Company == "" || e.StartDate == "" {
			allSpecified = false
		}
		if len(e.Bullets) == 0 {
			allBulleted = false
		}
	}
	completeness := 0.0
	if allSpecified {
		completeness += 5
	}
	if allBulleted {
		completeness += 5
	}

	score := positions + progression + achievements + technical + completeness
	cr := types.CategoryResult{
		Score:    round2(score),
		MaxScore: 100,
		Counts: map[string]int{
			"entries":      len(entries),
			"tech_terms":   techTerms,
			"progressions": int(progression / 5),
		},
	}
	if score < 60 {
		cr.Feedback = "Strengthen work experience entries: add measurable results and technical detail to bullets."
	}
	return cr
}

// scoreEducation rewards presence of degrees, institutions and graduation
// years anywhere in the document.
func scoreEducation(text string) types.CategoryResult {
	lower := strings.ToLower(text)

	degrees := 0
	for _, term := range []string{"bachelor", "master", "phd", "ph.d", "doctorate", "mba", "b.s", "bsc", "m.s", "msc", "b.tech", "m.tech", "bca", "mca", "associate degree"} {
		degrees += extraction.CountTerm(lower, term)
	}
	institutions := 0
	for _, term := range []string{"university", "college", "institute", "school", "polytechnic"} {
		institutions += extraction.CountTerm(lower, term)
	}
	hasYear := yearTokenRe.MatchString(text)

	score := 0.0
	if degrees > 0 {
		score += 40
		if degrees > 1 {
			score += 20
		}
	}
	if institutions > 0 {
		score += 20
		if institutions > 1 {
			score += 10
		}
	}
	if hasYear {
		score += 10
	}

	cr := types.CategoryResult{
		Score:    clamp(score, 0, 100),
		MaxScore: 100,
		Counts:   map[string]int{"degrees": degrees, "institutions": institutions},
	}
	if degrees == 0 {
		cr.Feedback = "List your degree and institution in an education section."
	}
	return cr
}
