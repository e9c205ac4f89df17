package scoring

import (
	"regexp"
	"strings"

	"github.com/jonathan/resume-insights/internal/extraction"
	"github.com/jonathan/resume-insights/internal/types"
)

var (
	yearTokenRe     = regexp.MustCompile(`\b(?:19|20)\d{2}\b`)
	skillsHeaderRe  = regexp.MustCompile(`(?i)^\s*(?:skills|technical skills|technical expertise|technologies|core competencies)\s*[:;]?\s*`)
	sectionHeaderRe = regexp.MustCompile(`(?im)^\s*(?:professional summary|summary|objective|profile|experience|work experience|employment history|education|skills|technical skills|projects|certifications|awards|references)\s*:?\s*$`)
	skillSplitRe    = regexp.MustCompile(`[,\n|•]`)
	bulletStyleRe   = regexp.MustCompile(`(?m)^\s*([•\-*])\s+`)
	allCapsLineRe   = regexp.MustCompile(`^[A-Z][A-Z\s]{3,}$`)
)

// coreHeaders are the sections every résumé is expected to label; absent
// ones are reported as missing by the formatting category.
var coreHeaders = []struct {
	name string
	re   *regexp.Regexp
}{
	{"experience", regexp.MustCompile(`(?im)^\s*(?:work experience|experience|employment history)\s*:?\s*$`)},
	{"education", regexp.MustCompile(`(?im)^\s*education\s*:?\s*$`)},
	{"skills", regexp.MustCompile(`(?im)^\s*(?:technical skills|skills)\s*:?\s*$`)},
}

// achievementPatterns recognize quantified or otherwise notable
// accomplishments. When a pattern captures a group, the group is the
// deduplication key; otherwise the whole match is.
var achievementPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)\b(?:increased|reduced|saved|grew|improved|decreased|optimized|boosted|expanded|delivered)\b[^.!?\n]*?(\d+(?:\.\d+)?%|\$\d[\d,.]*[kmb]?|\d+x\b|\b\d{2,}\b)`),
	regexp.MustCompile(`(?i)\b(?:led|managed|supervised|directed|coordinated)\b[^.!?\n]*?\b(?:team|group|department|project)s?\b`),
	regexp.MustCompile(`(?i)\b(?:award(?:ed|s)?|recognit\w+|honor(?:ed|s)?|certif\w+)\b[^.!?\n]*`),
	regexp.MustCompile(`(?i)\b(?:launched|shipped|released)\b[^.!?\n]*`),
}

// scoreSkillsSection looks for a dedicated skills section and scores the
// number of listed items; without one, it falls back to scanning the whole
// document against the skill vocabulary.
func scoreSkillsSection(text string) types.CategoryResult {
	section := skillsSection(text)
	if section == "" {
		// fallback: any recognizable skill anywhere is worth partial credit
		if len(extraction.Skills(text)) > 0 {
			return types.CategoryResult{
				Score:    50,
				MaxScore: 100,
				Feedback: "Add a dedicated skills section so ATS parsers can find your skills.",
			}
		}
		return types.CategoryResult{
			Score:    20,
			MaxScore: 100,
			Feedback: "No skills section or recognizable skills found. Add a skills section.",
		}
	}

	count := 0
	for _, part := range skillSplitRe.Split(section, -1) {
		if strings.TrimSpace(part) != "" {
			count++
		}
	}

	var score float64
	switch {
	case count == 0:
		score = 0
	case count < 5:
		score = 30 + float64(count)*5
	case count > 20:
		score = 80
	default:
		score = 40 + clamp(float64(count)*4, 0, 60)
	}

	cr := types.CategoryResult{
		Score:    clamp(score, 0, 100),
		MaxScore: 100,
		Counts:   map[string]int{"listed_skills": count},
	}
	if count < 5 {
		cr.Feedback = "Expand your skills section; list at least five relevant skills."
	}
	return cr
}

// skillsSection returns the text under a skills header, up to the next
// blank line or section header.
func skillsSection(text string) string {
	lines := strings.Split(text, "\n")
	for i, line := range lines {
		m := skillsHeaderRe.FindString(line)
		if m == "" {
			continue
		}

		var collected []string
		if rest := strings.TrimSpace(line[len(m):]); rest != "" {
			collected = append(collected, rest)
		}
		for j := i + 1; j < len(lines); j++ {
			l := lines[j]
			if strings.TrimSpace(l) == "" || sectionHeaderRe.MatchString(l) {
				break
			}
			collected = append(collected, l)
		}
		return strings.Join(collected, "\n")
	}
	return ""
}

// scoreAchievements counts distinct notable accomplishments.
func scoreAchievements(text string) types.CategoryResult {
	seen := map[string]bool{}
	for _, re := range achievementPatterns {
		for _, m := range re.FindAllStringSubmatch(text, -1) {
			key := m[0]
			if len(m) > 1 && m[1] != "" {
				key = m[1]
			}
			seen[strings.ToLower(strings.TrimSpace(key))] = true
		}
	}

	n := len(seen)
	var score float64
	switch {
	case n == 0:
		score = 20
	case n == 1:
		score = 50
	case n == 2:
		score = 70
	default:
		score = clamp(90+float64(n)*2, 0, 100)
	}

	cr := types.CategoryResult{
		Score:    score,
		MaxScore: 100,
		Counts:   map[string]int{"achievements": n},
	}
	if n < 3 {
		cr.Feedback = "Quantify more achievements (percentages, dollar amounts, team sizes)."
	}
	return cr
}

// scoreFormatting applies structural heuristics: section headers, document
// length, consistent bullets, paragraph spacing, and restrained use of
// all-caps lines.
func scoreFormatting(text string) types.CategoryResult {
	score := 50.0
	counts := map[string]int{}

	headers := len(sectionHeaderRe.FindAllString(text, -1))
	counts["section_headers"] = headers
	if headers >= 1 {
		score += 10
	}

	var missing []string
	for _, h := range coreHeaders {
		if !h.re.MatchString(text) {
			missing = append(missing, h.name)
		}
	}

	lines := strings.Split(text, "\n")
	counts["lines"] = len(lines)
	if len(lines) < 20 {
		score -= 10
	} else if len(lines) > 60 {
		score -= 5
	}

	styles := map[string]bool{}
	for _, m := range bulletStyleRe.FindAllStringSubmatch(text, -1) {
		styles[m[1]] = true
	}
	counts["bullet_styles"] = len(styles)
	if len(styles) > 1 {
		score -= 5
	}

	double := strings.Count(text, "\n\n")
	single := strings.Count(text, "\n") - 2*double
	if single > 2*double {
		score -= 5
	}

	caps := 0
	for _, line := range lines {
		if allCapsLineRe.MatchString(strings.TrimSpace(line)) {
			caps++
		}
	}
	counts["all_caps_lines"] = caps
	if caps > 3 {
		score -= 5
	}

	cr := types.CategoryResult{
		Score:    clamp(score, 0, 100),
		MaxScore: 100,
		Counts:   counts,
		Missing:  missing,
	}
	if cr.Score < 60 {
		cr.Feedback = "Improve formatting: use clear section headers, one bullet style, and blank lines between sections."
	}
	return cr
}
