package extraction

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/jonathan/resume-insights/internal/types"
)

var (
	eduHeaderRe = regexp.MustCompile(`(?i)^\s*(?:education|academic background|academic qualifications|education\s*&\s*training)\s*:?\s*$`)
	sectionEndRe = regexp.MustCompile(`(?i)^\s*(?:work experience|professional experience|experience|employment history|technical skills|skills|projects|certifications|awards|publications|references|summary|interests)\s*:?\s*$`)

	degreeRe = regexp.MustCompile(`(?i)\b(?:b\.?\s?sc?|b\.a|bachelor(?:'s)?(?:\s+of\s+\w+)?|m\.?\s?sc?|m\.a|master(?:'s)?(?:\s+of\s+\w+)?|ph\.?d|doctorate|mba|b\.?tech|m\.?tech|b\.e|m\.e|bca|mca|associate(?:'s)?\s+degree)\b[^,\n]*`)
	institutionRe = regexp.MustCompile(`(?i)[A-Za-z][A-Za-z.&' \-]*(?:university|college|institute|school|polytechnic)(?:\s+of\s+[A-Z][A-Za-z ]+)?`)
	fieldRe       = regexp.MustCompile(`(?i)\b(?:in|majoring in|major in)\s+([A-Za-z][A-Za-z &]+)`)
	gpaRe         = regexp.MustCompile(`(?i)\bGPA\s*[:\s]\s*([0-9]\.[0-9]{1,2})`)
	yearRangeRe   = regexp.MustCompile(`(?i)\b((?:19|20)\d{2})\s*(?:[-–—]|to)\s*((?:19|20)\d{2}|present|current)\b`)
	singleYearRe  = regexp.MustCompile(`\b(?:19|20)\d{2}\b`)
)

// Education finds the education section, splits it into blank-line-separated
// blocks, and parses each block into an entry. No section means no entries.
func Education(text string) []types.EducationEntry {
	section := educationSection(text)
	if section == "" {
		return nil
	}

	var entries []types.EducationEntry
	for _, block := range strings.Split(section, "\n\n") {
		block = strings.TrimSpace(block)
		if block == "" {
			continue
		}
		if entry, ok := parseEducationBlock(block); ok {
			entries = append(entries, entry)
		}
	}
	return entries
}

// educationSection returns the lines between an education header and the
// next section header (or end of document).
func educationSection(text string) string {
	lines := strings.Split(text, "\n")
	start := -1
	for i, line := range lines {
		if eduHeaderRe.MatchString(line) {
			start = i + 1
			break
		}
	}
	if start < 0 {
		return ""
	}

	end := len(lines)
	for i := start; i < len(lines); i++ {
		if sectionEndRe.MatchString(lines[i]) {
			end = i
			break
		}
	}
	return strings.Join(lines[start:end], "\n")
}

func parseEducationBlock(block string) (types.EducationEntry, bool) {
	var entry types.EducationEntry

	lines := strings.Split(block, "\n")
	var rest []string
	for _, raw := range lines {
		line := strings.TrimSpace(raw)
		if line == "" {
			continue
		}
		matched := false
		if entry.Degree == "" {
			if d := degreeRe.FindString(line); d != "" {
				degree, inst := splitDegreeLine(d, line)
				entry.Degree = degree
				if entry.Institution == "" {
					entry.Institution = inst
				}
				matched = true
			}
		}
		if entry.Institution == "" {
			if inst := institutionRe.FindString(line); inst != "" {
				entry.Institution = strings.TrimSpace(inst)
				matched = true
			}
		}
		if !matched {
			rest = append(rest, line)
		}
	}

	if m := fieldRe.FindStringSubmatch(block); m != nil {
		entry.FieldOfStudy = strings.TrimSpace(m[1])
	}
	if m := yearRangeRe.FindStringSubmatch(block); m != nil {
		entry.StartDate = m[1]
		entry.EndDate = m[2]
	} else if y := singleYearRe.FindString(block); y != "" {
		entry.EndDate = y
	}
	if m := gpaRe.FindStringSubmatch(block); m != nil {
		if gpa, err := strconv.ParseFloat(m[1], 64); err == nil && gpa >= 0 && gpa <= 4.0 {
			entry.GPA = &gpa
		}
	}
	if len(rest) > 0 {
		entry.Description = strings.Join(rest, " ")
	}

	ok := entry.Degree != "" || entry.Institution != "" || entry.EndDate != ""
	return entry, ok
}

// splitDegreeLine separates "B.S. Computer Science at MIT" or
// "B.S. Computer Science, MIT" into degree and institution parts.
func splitDegreeLine(degree, line string) (string, string) {
	for _, sep := range []string{" at ", ", "} {
		if i := strings.Index(line, sep); i > 0 {
			d := strings.TrimSpace(line[:i])
			inst := strings.TrimSpace(line[i+len(sep):])
			if degreeRe.MatchString(d) {
				return trimDegree(d), trimDates(inst)
			}
		}
	}
	return trimDegree(degree), ""
}

func trimDegree(s string) string {
	if m := yearRangeRe.FindStringIndex(s); m != nil {
		s = s[:m[0]]
	}
	if m := gpaRe.FindStringIndex(s); m != nil {
		s = s[:m[0]]
	}
	return strings.Trim(s, " .,-")
}

func trimDates(s string) string {
	if m := yearRangeRe.FindStringIndex(s); m != nil {
		s = s[:m[0]]
	}
	if m := singleYearRe.FindStringIndex(s); m != nil {
		s = s[:m[0]]
	}
	return strings.Trim(s, " .,-")
}
