package extraction

import (
	"regexp"
	"strings"

	"github.com/jonathan/resume-insights/internal/types"
)

var (
	emailRe    = regexp.MustCompile(`[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}`)
	phoneRe    = regexp.MustCompile(`(?:\+\d{1,3}[-.\s]?)?\(?\d{3}\)?[-.\s]?\d{3}[-.\s]?\d{4}`)
	linkedinRe = regexp.MustCompile(`(?i)(?:https?://)?(?:www\.)?linkedin\.com/in/[a-zA-Z0-9_\-]+/?`)
	githubRe   = regexp.MustCompile(`(?i)(?:https?://)?(?:www\.)?github\.com/[a-zA-Z0-9_\-]+/?`)
	anyURLRe   = regexp.MustCompile(`(?i)\bhttps?://[^\s<>"]+`)
)

// Contact extracts contact details from résumé text. Each field is filled
// from the first match only; fields with no match stay empty.
func Contact(text string) types.ContactInfo {
	info := types.ContactInfo{
		Name:     extractName(text),
		Email:    emailRe.FindString(text),
		Phone:    phoneRe.FindString(text),
		LinkedIn: linkedinRe.FindString(text),
		GitHub:   githubRe.FindString(text),
	}

	// first non-profile URL is treated as a portfolio link
	for _, u := range anyURLRe.FindAllString(text, -1) {
		lower := strings.ToLower(u)
		if strings.Contains(lower, "linkedin.com") || strings.Contains(lower, "github.com") {
			continue
		}
		info.Portfolio = u
		break
	}

	// a "City, ST" token in the header block is taken as the location;
	// deeper in the document it is more likely a job location
	for i, line := range strings.Split(text, "\n") {
		if i >= headerLines {
			break
		}
		if m := locationRe.FindStringSubmatch(line); m != nil {
			info.Location = m[1]
			break
		}
	}

	return info
}

// headerLines bounds the contact header scan.
const headerLines = 8

// extractName takes the first two tokens of the first non-empty line,
// skipping lines that look like contact data rather than a person's name.
func extractName(text string) string {
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		if strings.ContainsAny(line, "@/") || strings.ContainsAny(line, "0123456789") {
			continue
		}
		fields := strings.Fields(line)
		if len(fields) >= 2 {
			return fields[0] + " " + fields[1]
		}
		return ""
	}
	return ""
}
