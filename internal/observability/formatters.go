// Package observability provides formatted output utilities for verbose CLI mode.
package observability

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/jonathan/resume-insights/internal/types"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 60
	// maxItemsToShow is the default number of items to display in lists
	maxItemsToShow = 5
)

// Printer handles formatted output for verbose mode
type Printer struct {
	out io.Writer
}

// NewPrinter creates a new Printer that writes to the given writer
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

// printBox prints a formatted box with a title and content
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) printBox(title string, content string) {
	border := strings.Repeat("─", boxWidth-2)
	fmt.Fprintf(p.out, "┌%s┐\n", border)
	fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, title)
	fmt.Fprintf(p.out, "├%s┤\n", border)

	lines := strings.Split(content, "\n")
	for _, line := range lines {
		// Truncate long lines
		if len(line) > boxWidth-4 {
			line = line[:boxWidth-7] + "..."
		}
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, line)
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// PrintProfile outputs a human-readable summary of the extracted profile.
func (p *Printer) PrintProfile(profile *types.ResumeProfile) {
	if profile == nil {
		return
	}

	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("Name:   %s\n", profile.Contact.Name))
	sb.WriteString(fmt.Sprintf("Email:  %s\n", profile.Contact.Email))
	if profile.Contact.Phone != "" {
		sb.WriteString(fmt.Sprintf("Phone:  %s\n", profile.Contact.Phone))
	}
	sb.WriteString("\n")

	if len(profile.Skills) > 0 {
		sb.WriteString("Skills:\n")
		count := min(len(profile.Skills), maxItemsToShow)
		for i := 0; i < count; i++ {
			sb.WriteString(fmt.Sprintf("  • %s\n", profile.Skills[i]))
		}
		if len(profile.Skills) > maxItemsToShow {
			sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(profile.Skills)-maxItemsToShow))
		}
		sb.WriteString("\n")
	}

	if len(profile.Experiences) > 0 {
		sb.WriteString("Experience:\n")
		for _, exp := range profile.Experiences {
			sb.WriteString(fmt.Sprintf("  • %s", exp.Title))
			if exp.Company != "" {
				sb.WriteString(fmt.Sprintf(" at %s", exp.Company))
			}
			sb.WriteString("\n")
		}
		sb.WriteString("\n")
	}

	if len(profile.Education) > 0 {
		sb.WriteString("Education:\n")
		for _, edu := range profile.Education {
			sb.WriteString(fmt.Sprintf("  • %s", edu.Degree))
			if edu.Institution != "" {
				sb.WriteString(fmt.Sprintf(", %s", edu.Institution))
			}
			sb.WriteString("\n")
		}
	}

	p.printBox("EXTRACTED PROFILE", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintScore outputs the ATS score with per-category results and feedback.
func (p *Printer) PrintScore(score *types.ScoreResult) {
	if score == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Total: %.1f / %.0f\n\n", score.Score, score.MaxScore))

	for _, name := range sortedCategoryNames(score.Details) {
		detail := score.Details[name]
		sb.WriteString(fmt.Sprintf("%-22s %5.1f / %.0f\n", name, detail.Score, detail.MaxScore))
	}

	if len(score.Feedback) > 0 {
		sb.WriteString("\nFeedback:\n")
		count := min(len(score.Feedback), maxItemsToShow)
		for i := 0; i < count; i++ {
			sb.WriteString(fmt.Sprintf("  • %s\n", score.Feedback[i]))
		}
		if len(score.Feedback) > maxItemsToShow {
			sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(score.Feedback)-maxItemsToShow))
		}
	}

	p.printBox("ATS SCORE", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintMatch outputs the job description match result.
func (p *Printer) PrintMatch(match *types.MatchResult) {
	if match == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Match score: %.0f%%\n\n", match.MatchScore))

	if len(match.KeywordOverlap) > 0 {
		keywords := strings.Join(match.KeywordOverlap, ", ")
		if len(keywords) > 40 {
			keywords = keywords[:37] + "..."
		}
		sb.WriteString(fmt.Sprintf("Matched:  %s\n", keywords))
	}
	if len(match.MissingKeywords) > 0 {
		missing := strings.Join(match.MissingKeywords, ", ")
		if len(missing) > 40 {
			missing = missing[:37] + "..."
		}
		sb.WriteString(fmt.Sprintf("Missing:  %s\n", missing))
	}

	if len(match.SemanticMatches) > 0 {
		sb.WriteString("\nSemantic matches:\n")
		count := min(len(match.SemanticMatches), maxItemsToShow)
		for i := 0; i < count; i++ {
			m := match.SemanticMatches[i]
			sb.WriteString(fmt.Sprintf("  %.2f  %s\n", m.Similarity, m.JobSentence))
		}
	}

	if len(match.Feedback) > 0 {
		sb.WriteString("\nFeedback:\n")
		for _, f := range match.Feedback {
			sb.WriteString(fmt.Sprintf("  • %s\n", f))
		}
	}

	p.printBox("JOB MATCH", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintCareers outputs the top career suggestions with scores and skills.
func (p *Printer) PrintCareers(suggestions []types.CareerSuggestion) {
	if len(suggestions) == 0 {
		return
	}

	var sb strings.Builder

	count := min(len(suggestions), maxItemsToShow)
	for i := 0; i < count; i++ {
		s := suggestions[i]
		sb.WriteString(fmt.Sprintf("#%d  %s\n", i+1, s.Title))
		sb.WriteString(fmt.Sprintf("    Score: %.0f%%\n", s.MatchScore))
		if len(s.MatchingSkills) > 0 {
			skills := strings.Join(s.MatchingSkills, ", ")
			if len(skills) > 40 {
				skills = skills[:37] + "..."
			}
			sb.WriteString(fmt.Sprintf("    Skills: %s\n", skills))
		}
		if len(s.MissingSkills) > 0 {
			missing := strings.Join(s.MissingSkills, ", ")
			if len(missing) > 40 {
				missing = missing[:37] + "..."
			}
			sb.WriteString(fmt.Sprintf("    Gaps:   %s\n", missing))
		}
		if i < count-1 {
			sb.WriteString("\n")
		}
	}

	if len(suggestions) > maxItemsToShow {
		sb.WriteString(fmt.Sprintf("\n... and %d more suggestions", len(suggestions)-maxItemsToShow))
	}

	p.printBox("CAREER SUGGESTIONS", sb.String())
}

// PrintQuestions outputs the selected interview questions grouped in order.
func (p *Printer) PrintQuestions(questions []types.InterviewQuestion) {
	if len(questions) == 0 {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Selected %d questions:\n\n", len(questions)))

	for i, q := range questions {
		sb.WriteString(fmt.Sprintf("%d. [%s/%s]\n", i+1, q.Category, q.Difficulty))
		sb.WriteString(fmt.Sprintf("   %s\n", q.Question))
	}

	p.printBox("INTERVIEW QUESTIONS", strings.TrimSuffix(sb.String(), "\n"))
}

func sortedCategoryNames(details map[string]types.CategoryResult) []string {
	names := make([]string, 0, len(details))
	for name := range details {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
