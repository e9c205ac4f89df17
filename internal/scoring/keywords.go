package scoring

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/jonathan/resume-insights/internal/extraction"
	"github.com/jonathan/resume-insights/internal/types"
)

// keywordCatalog is the 40-term recognition set for the keywords category,
// grouped so feedback can name the thin areas.
var keywordCatalog = []struct {
	group string
	terms []string
}{
	{"languages", []string{"python", "java", "javascript", "typescript", "c++", "c#", "sql", "golang", "rust", "ruby"}},
	{"frameworks", []string{"react", "angular", "vue", "django", "flask", "spring", "node.js", "express", ".net", "rails"}},
	{"databases", []string{"mysql", "postgresql", "mongodb", "redis", "oracle", "elasticsearch"}},
	{"cloud", []string{"aws", "azure", "gcp", "docker", "kubernetes", "terraform", "jenkins", "ci/cd"}},
	{"methodologies", []string{"agile", "scrum", "kanban", "devops", "tdd", "microservices"}},
}

// scoreKeywords scores coverage of the keyword catalog: fraction of catalog
// terms present, as a percentage.
func scoreKeywords(text string) types.CategoryResult {
	lower := strings.ToLower(text)

	var found []string
	var thinGroups []string
	total := 0
	for _, g := range keywordCatalog {
		total += len(g.terms)
		groupHits := 0
		for _, term := range g.terms {
			if extraction.IndexTerm(lower, term) >= 0 {
				found = append(found, term)
				groupHits++
			}
		}
		if groupHits == 0 {
			thinGroups = append(thinGroups, g.group)
		}
	}

	cr := types.CategoryResult{
		Score:    round2(float64(len(found)) / float64(total) * 100),
		MaxScore: 100,
		Found:    found,
	}
	if len(thinGroups) > 0 {
		cr.Feedback = "Add more industry keywords, especially " + strings.Join(thinGroups, ", ") + "."
		cr.Missing = thinGroups
	}
	return cr
}

// actionVerbTarget is the distinct verb count treated as full marks.
const actionVerbTarget = 15

var verbPatterns = compileVerbPatterns()

func compileVerbPatterns() []*regexp.Regexp {
	patterns := make([]*regexp.Regexp, 0, len(extraction.ActionVerbs))
	for _, verb := range extraction.ActionVerbs {
		patterns = append(patterns, regexp.MustCompile(`(?i)\b`+regexp.QuoteMeta(verb)+`\w*\b`))
	}
	return patterns
}

// scoreActionVerbs counts distinct strong action verbs (prefix matched, so
// inflections count) against a fixed target. Repeating one verb does not add
// credit.
func scoreActionVerbs(text string) types.CategoryResult {
	var found []string
	for i, re := range verbPatterns {
		if re.MatchString(text) {
			found = append(found, extraction.ActionVerbs[i])
		}
	}
	count := len(found)

	cr := types.CategoryResult{
		Score:    clamp(round2(float64(count)*100/actionVerbTarget), 0, 100),
		MaxScore: 100,
		Found:    found,
		Counts:   map[string]int{"unique_verbs": count},
	}
	if count < actionVerbTarget {
		cr.Feedback = fmt.Sprintf("Use more action verbs to describe your work (found %d, aim for %d+).", count, actionVerbTarget)
	}
	return cr
}

var contactPatterns = []struct {
	name string
	re   *regexp.Regexp
}{
	{"email", regexp.MustCompile(`[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}`)},
	{"phone", regexp.MustCompile(`\d{3}[-.]?\d{3}[-.]?\d{4}`)},
	{"linkedin", regexp.MustCompile(`(?i)linkedin\.com/in/[a-zA-Z0-9_\-]+`)},
	{"github", regexp.MustCompile(`(?i)github\.com/[a-zA-Z0-9_\-]+`)},
}

// scoreContactInfo checks for the four standard contact channels.
func scoreContactInfo(text string) types.CategoryResult {
	var found, missing []string
	for _, p := range contactPatterns {
		if p.re.MatchString(text) {
			found = append(found, p.name)
		} else {
			missing = append(missing, p.name)
		}
	}

	cr := types.CategoryResult{
		Score:    round2(float64(len(found)) / float64(len(contactPatterns)) * 100),
		MaxScore: 100,
		Found:    found,
		Missing:  missing,
	}
	if len(missing) > 0 {
		cr.Feedback = "Add missing contact details: " + strings.Join(missing, ", ") + "."
	}
	return cr
}
