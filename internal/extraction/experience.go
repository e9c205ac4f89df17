package extraction

import (
	"regexp"
	"strings"

	"github.com/jonathan/resume-insights/internal/types"
)

var (
	monthPat    = `(?:jan|feb|mar|apr|may|jun|jul|aug|sep|oct|nov|dec)[a-z]*\.?`
	dateRangeRe = regexp.MustCompile(`(?i)\b(` + monthPat + `\s+\d{4})\s*(?:[-–—]|to)\s*(present|current|now|` + monthPat + `\s+\d{4})\b`)

	titleRe = regexp.MustCompile(`(?i)\b(?:(?:senior|sr\.?|junior|jr\.?|lead|principal|staff|chief|head|associate)\s+)?` +
		`(?:[a-z]+\s+){0,3}` +
		`(?:engineer|developer|manager|analyst|architect|consultant|designer|scientist|administrator|specialist|director|intern)\b`)

	companyRe = regexp.MustCompile(`(?:\bat\b|@)\s+([A-Z][A-Za-z0-9&.' \-]*)`)

	bulletRe  = regexp.MustCompile(`^[•\-*]\s+(.+)$`)
	metricsRe = regexp.MustCompile(`(?i)\d+(?:\.\d+)?%|\$\d[\d,.]*[kmb]?\b|\b\d+x\b|\b\d{2,}\b`)

	// "City, ST" only; anything looser misfires on ordinary prose
	locationRe = regexp.MustCompile(`\b([A-Z][a-z]+(?: [A-Z][a-z]+)*,\s*[A-Z]{2})\b`)

	sectionBreakRe = regexp.MustCompile(`(?i)^\s*(?:education|skills|technical skills|projects|certifications|awards|references|summary|professional summary|objective)\s*:?\s*$`)

	currentTokens = map[string]bool{"present": true, "current": true, "now": true}
)

// Experiences walks the text line by line, opening a new entry whenever a
// date range appears. Title, company and location are taken from the date
// line itself, the line just above it, or a following non-bullet line,
// whichever matches first. Bullet lines attach to the entry currently open;
// plain lines that provide no field become the entry description. A section
// header like "Education" closes the open entry.
func Experiences(text string) []types.ExperienceEntry {
	var entries []types.ExperienceEntry
	var cur *types.ExperienceEntry
	prev := ""

	for _, raw := range strings.Split(text, "\n") {
		line := strings.TrimSpace(raw)
		if line == "" {
			prev = ""
			continue
		}

		if sectionBreakRe.MatchString(line) {
			if cur != nil {
				entries = append(entries, *cur)
				cur = nil
			}
			prev = ""
			continue
		}

		if m := dateRangeRe.FindStringSubmatch(line); m != nil {
			if cur != nil {
				entries = append(entries, *cur)
			}
			end := strings.ToLower(strings.TrimSpace(m[2]))
			cur = &types.ExperienceEntry{
				StartDate: strings.TrimSpace(m[1]),
				EndDate:   strings.TrimSpace(m[2]),
				IsCurrent: currentTokens[end],
			}
			fillEntryFields(cur, line)
			if prev != "" {
				fillEntryFields(cur, prev)
			}
			prev = ""
			continue
		}

		if m := bulletRe.FindStringSubmatch(line); m != nil {
			if cur != nil {
				cur.Bullets = append(cur.Bullets, buildBullet(m[1]))
			}
			prev = ""
			continue
		}

		if cur != nil {
			fillEntryFields(cur, line)
			if !titleRe.MatchString(line) && !companyRe.MatchString(line) && !locationRe.MatchString(line) {
				appendDescription(cur, line)
			}
		}
		prev = line
	}

	if cur != nil {
		entries = append(entries, *cur)
	}
	return entries
}

// fillEntryFields fills missing title, company and location fields from a
// line, never overwriting values already set.
func fillEntryFields(e *types.ExperienceEntry, line string) {
	if e.Title == "" {
		if t := titleRe.FindString(line); t != "" {
			e.Title = strings.TrimSpace(t)
		}
	}
	if e.Company == "" {
		if m := companyRe.FindStringSubmatch(line); m != nil {
			e.Company = trimCompany(m[1])
		}
	}
	if e.Location == "" {
		if m := locationRe.FindStringSubmatch(line); m != nil {
			e.Location = m[1]
		}
	}
}

func appendDescription(e *types.ExperienceEntry, line string) {
	if e.Description == "" {
		e.Description = line
		return
	}
	e.Description += " " + line
}

// trimCompany cuts a captured company run before any trailing date text and
// strips surrounding punctuation.
func trimCompany(s string) string {
	if loc := dateRangeRe.FindStringIndex(s); loc != nil {
		s = s[:loc[0]]
	}
	if i := strings.Index(s, "  "); i >= 0 {
		s = s[:i]
	}
	return strings.Trim(s, " .,-")
}

func buildBullet(text string) types.BulletPoint {
	b := types.BulletPoint{
		Text:       strings.TrimSpace(text),
		HasMetrics: metricsRe.MatchString(text),
	}

	fields := strings.Fields(b.Text)
	if len(fields) > 0 {
		first := strings.ToLower(strings.Trim(fields[0], ".,;:"))
		for _, verb := range ActionVerbs {
			if first == verb || strings.HasPrefix(first, verb) {
				b.ActionVerb = first
				break
			}
		}
	}
	return b
}
