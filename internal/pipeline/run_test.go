package pipeline

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleResume = `Jane Doe
jane.doe@example.com | 555-123-4567 | linkedin.com/in/janedoe

Experience
Senior Software Engineer at Acme Corp
Jan 2019 - Present
- Increased API throughput by 40% using Go and Redis
- Led a team of 5 engineers

Education
B.S. Computer Science at State University

Skills
Python, Docker, Kubernetes, PostgreSQL, AWS, Linux, Git`

func TestRun_FullReport(t *testing.T) {
	report, err := Run(context.Background(), sampleResume, Options{Seed: 7})
	require.NoError(t, err)

	assert.NotEqual(t, report.ID.String(), "00000000-0000-0000-0000-000000000000")

	require.NotNil(t, report.Profile)
	assert.Equal(t, "Jane Doe", report.Profile.Contact.Name)
	assert.NotEmpty(t, report.Profile.Skills)

	require.NotNil(t, report.ATS)
	assert.Greater(t, report.ATS.Score, 0.0)

	assert.Nil(t, report.Match, "no job description given")
	assert.NotEmpty(t, report.Careers)
	assert.NotEmpty(t, report.Questions)
}

func TestRun_WithJobDescription(t *testing.T) {
	opts := Options{
		JobDescription: "Looking for an engineer with Python, Docker and Kubernetes skills.",
		Seed:           7,
	}

	report, err := Run(context.Background(), sampleResume, opts)
	require.NoError(t, err)

	require.NotNil(t, report.Match)
	assert.Greater(t, report.Match.MatchScore, 0.0)
	assert.Contains(t, report.Match.KeywordOverlap, "python")
}

func TestRun_EmptyResumeRejected(t *testing.T) {
	_, err := Run(context.Background(), "   \n  ", Options{})
	assert.Error(t, err)
}

func TestRun_OptionCapsApplied(t *testing.T) {
	opts := Options{TopCareers: 1, NumQuestions: 2, Seed: 7}

	report, err := Run(context.Background(), sampleResume, opts)
	require.NoError(t, err)

	assert.LessOrEqual(t, len(report.Careers), 1)
	assert.LessOrEqual(t, len(report.Questions), 2)
}

func TestRun_SameSeedSameQuestions(t *testing.T) {
	a, err := Run(context.Background(), sampleResume, Options{Seed: 42})
	require.NoError(t, err)
	b, err := Run(context.Background(), sampleResume, Options{Seed: 42})
	require.NoError(t, err)

	assert.Equal(t, a.Questions, b.Questions)
}

func TestRun_InvalidDifficultySurfacesError(t *testing.T) {
	_, err := Run(context.Background(), sampleResume, Options{Difficulty: "brutal"})
	assert.Error(t, err)
}
