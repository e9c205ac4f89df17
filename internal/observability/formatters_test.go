package observability

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jonathan/resume-insights/internal/types"
)

func TestPrintProfile(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	profile := &types.ResumeProfile{
		Contact: types.ContactInfo{
			Name:  "Jane Doe",
			Email: "jane@example.com",
			Phone: "555-123-4567",
		},
		Skills: []string{"python", "docker", "kubernetes"},
		Experiences: []types.ExperienceEntry{
			{Title: "Senior Engineer", Company: "Acme Corp"},
		},
		Education: []types.EducationEntry{
			{Degree: "B.S. Computer Science", Institution: "State University"},
		},
	}

	p.PrintProfile(profile)
	output := buf.String()

	assert.Contains(t, output, "EXTRACTED PROFILE")
	assert.Contains(t, output, "Jane Doe")
	assert.Contains(t, output, "jane@example.com")
	assert.Contains(t, output, "python")
	assert.Contains(t, output, "Senior Engineer at Acme Corp")
	assert.Contains(t, output, "B.S. Computer Science")
}

func TestPrintProfile_Nil(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintProfile(nil)

	assert.Empty(t, buf.String())
}

func TestPrintScore(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	score := &types.ScoreResult{
		Score:    72.5,
		MaxScore: 100,
		Details: map[string]types.CategoryResult{
			"keywords":     {Score: 60, MaxScore: 100},
			"action_verbs": {Score: 80, MaxScore: 100},
		},
		Feedback: []string{"Add more measurable achievements."},
	}

	p.PrintScore(score)
	output := buf.String()

	assert.Contains(t, output, "ATS SCORE")
	assert.Contains(t, output, "72.5 / 100")
	assert.Contains(t, output, "keywords")
	assert.Contains(t, output, "Add more measurable achievements.")
}

func TestPrintMatch(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	match := &types.MatchResult{
		MatchScore:      65,
		KeywordOverlap:  []string{"python", "docker"},
		MissingKeywords: []string{"terraform"},
		SemanticMatches: []types.SemanticMatch{
			{ResumeSentence: "Built APIs", JobSentence: "Design REST APIs", Similarity: 0.82},
		},
		Feedback: []string{"Moderate match."},
	}

	p.PrintMatch(match)
	output := buf.String()

	assert.Contains(t, output, "JOB MATCH")
	assert.Contains(t, output, "65%")
	assert.Contains(t, output, "python, docker")
	assert.Contains(t, output, "terraform")
	assert.Contains(t, output, "0.82")
}

func TestPrintCareers(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	suggestions := []types.CareerSuggestion{
		{
			Title:          "DevOps Engineer",
			MatchScore:     83,
			MatchingSkills: []string{"docker", "kubernetes"},
			MissingSkills:  []string{"terraform"},
		},
		{
			Title:      "Backend Engineer",
			MatchScore: 61,
		},
	}

	p.PrintCareers(suggestions)
	output := buf.String()

	assert.Contains(t, output, "CAREER SUGGESTIONS")
	assert.Contains(t, output, "#1  DevOps Engineer")
	assert.Contains(t, output, "83%")
	assert.Contains(t, output, "docker, kubernetes")
	assert.Contains(t, output, "#2  Backend Engineer")
}

func TestPrintQuestions(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	questions := []types.InterviewQuestion{
		{Question: "Explain the GIL.", Category: "python", Difficulty: "hard"},
		{Question: "Design a rate limiter.", Category: "system_design", Difficulty: "medium"},
	}

	p.PrintQuestions(questions)
	output := buf.String()

	assert.Contains(t, output, "INTERVIEW QUESTIONS")
	assert.Contains(t, output, "Selected 2 questions")
	assert.Contains(t, output, "[python/hard]")
	assert.Contains(t, output, "Explain the GIL.")
}

func TestPrintBox_LongLines(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	profile := &types.ResumeProfile{
		Contact: types.ContactInfo{
			Name: "A Very Long Name That Should Be Truncated To Fit Inside The Box",
		},
	}

	p.PrintProfile(profile)
	output := buf.String()

	// Should contain box characters
	assert.True(t, strings.Contains(output, "┌"))
	assert.True(t, strings.Contains(output, "└"))
	assert.True(t, strings.Contains(output, "│"))
}
