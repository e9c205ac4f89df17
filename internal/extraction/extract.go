package extraction

import (
	"fmt"
	"log/slog"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/jonathan/resume-insights/internal/types"
)

const (
	maxExperiences = 5
	maxEducation   = 3
)

// Extract runs all entity extractors over the text and assembles a profile.
// Each extractor is isolated: if one fails its entity stays at the empty
// default and the rest still run.
func Extract(text string) *types.ResumeProfile {
	profile := &types.ResumeProfile{}

	guard("contact", func() { profile.Contact = Contact(text) })
	guard("skills", func() { profile.Skills = Skills(text) })
	guard("experience", func() {
		exp := Experiences(text)
		if len(exp) > maxExperiences {
			exp = exp[:maxExperiences]
		}
		profile.Experiences = exp
	})
	guard("education", func() {
		edu := Education(text)
		if len(edu) > maxEducation {
			edu = edu[:maxEducation]
		}
		profile.Education = edu
	})

	profile.Summary = buildSummary(profile)
	return profile
}

// guard isolates one extractor so a panic degrades to an empty result
// instead of aborting the whole profile.
func guard(name string, fn func()) {
	defer func() {
		if r := recover(); r != nil {
			slog.Warn("extractor failed, keeping empty result", "extractor", name, "reason", r)
		}
	}()
	fn()
}

// buildSummary composes a short professional summary from whatever the
// extractors found. Returns empty when nothing usable was extracted.
func buildSummary(p *types.ResumeProfile) string {
	var parts []string

	if len(p.Experiences) > 0 {
		lead := "Experienced professional"
		if t := p.Experiences[0].Title; t != "" {
			lead = t
		}
		if yrs := experienceYears(p.Experiences); yrs > 0 {
			parts = append(parts, fmt.Sprintf("%s with %d+ years of experience", lead, yrs))
		} else {
			parts = append(parts, lead)
		}
	}

	if len(p.Skills) > 0 {
		top := p.Skills
		if len(top) > 5 {
			top = top[:5]
		}
		parts = append(parts, "Skilled in "+strings.Join(top, ", "))
	}

	if len(p.Education) > 0 {
		edu := p.Education[0]
		switch {
		case edu.Degree != "" && edu.Institution != "":
			parts = append(parts, fmt.Sprintf("Holds %s from %s", edu.Degree, edu.Institution))
		case edu.Degree != "":
			parts = append(parts, "Holds "+edu.Degree)
		case edu.Institution != "":
			parts = append(parts, "Educated at "+edu.Institution)
		}
	}

	if len(parts) == 0 {
		return ""
	}
	return strings.Join(parts, ". ") + "."
}

var yearRe = regexp.MustCompile(`\b(?:19|20)\d{2}\b`)

// experienceYears estimates total working years as the span from the
// earliest start year to the latest end year (or this year for a current
// position).
func experienceYears(entries []types.ExperienceEntry) int {
	minStart, maxEnd := 0, 0
	for _, e := range entries {
		if y := parseYear(e.StartDate); y > 0 && (minStart == 0 || y < minStart) {
			minStart = y
		}
		end := parseYear(e.EndDate)
		if e.IsCurrent {
			end = time.Now().Year()
		}
		if end > maxEnd {
			maxEnd = end
		}
	}
	if minStart == 0 || maxEnd < minStart {
		return 0
	}
	return maxEnd - minStart
}

func parseYear(s string) int {
	m := yearRe.FindString(s)
	if m == "" {
		return 0
	}
	y, err := strconv.Atoi(m)
	if err != nil {
		return 0
	}
	return y
}
