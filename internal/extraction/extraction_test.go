package extraction

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestContact_FullHeader(t *testing.T) {
	text := "John Smith\nSoftware Engineer\njohn.smith@example.com | 555-123-4567\nlinkedin.com/in/jsmith | github.com/jsmith\nhttps://jsmith.dev"

	info := Contact(text)

	assert.Equal(t, "John Smith", info.Name)
	assert.Equal(t, "john.smith@example.com", info.Email)
	assert.Equal(t, "555-123-4567", info.Phone)
	assert.Contains(t, info.LinkedIn, "linkedin.com/in/jsmith")
	assert.Contains(t, info.GitHub, "github.com/jsmith")
	assert.Equal(t, "https://jsmith.dev", info.Portfolio)
}

func TestContact_FirstMatchWins(t *testing.T) {
	text := "Ann Lee\nann@first.com\nann@second.com"

	info := Contact(text)

	assert.Equal(t, "ann@first.com", info.Email)
}

func TestContact_LocationFromHeader(t *testing.T) {
	text := "John Smith\nAustin, TX\njohn.smith@example.com"

	info := Contact(text)

	assert.Equal(t, "Austin, TX", info.Location)
}

func TestContact_LocationOutsideHeaderIgnored(t *testing.T) {
	text := strings.Repeat("some filler line\n", 10) + "Austin, TX"

	info := Contact(text)

	assert.Empty(t, info.Location)
}

func TestContact_MissingFieldsStayEmpty(t *testing.T) {
	info := Contact("just some text without anything useful")

	assert.Empty(t, info.Email)
	assert.Empty(t, info.Phone)
	assert.Empty(t, info.LinkedIn)
	assert.Empty(t, info.GitHub)
}

func TestSkills_DiscoveryOrderAndCase(t *testing.T) {
	text := "Built services in Python and Docker, stored data in PostgreSQL."

	skills := Skills(text)

	assert.Equal(t, []string{"python", "docker", "postgresql"}, skills)
}

func TestSkills_BoundaryRespectingMatch(t *testing.T) {
	// "java" must not fire on "javascript"; punctuation-edged terms must work
	skills := Skills("JavaScript and C++ and C#")

	assert.Contains(t, skills, "javascript")
	assert.Contains(t, skills, "c++")
	assert.Contains(t, skills, "c#")
	assert.NotContains(t, skills, "java")
}

func TestSkills_NoDuplicates(t *testing.T) {
	skills := Skills("Python, python, PYTHON everywhere")

	assert.Equal(t, []string{"python"}, skills)
}

func TestExperiences_TitleCompanyBulletEntry(t *testing.T) {
	text := "Senior Software Engineer at Acme Corp\nJan 2020 - Present\n- Increased throughput by 30%"

	entries := Experiences(text)
	require.Len(t, entries, 1)

	e := entries[0]
	assert.Contains(t, e.Title, "Software Engineer")
	assert.Equal(t, "Acme Corp", e.Company)
	assert.True(t, e.IsCurrent)
	require.Len(t, e.Bullets, 1)
	assert.True(t, e.Bullets[0].HasMetrics)
	assert.Equal(t, "increased", e.Bullets[0].ActionVerb)
}

func TestExperiences_MultipleEntries(t *testing.T) {
	text := strings.Join([]string{
		"Lead Developer at Initech",
		"Mar 2021 - Present",
		"- Led migration to Kubernetes",
		"",
		"Software Developer at Globex",
		"Jun 2018 - Feb 2021",
		"- Built internal tooling",
		"* Shipped 12 releases",
	}, "\n")

	entries := Experiences(text)
	require.Len(t, entries, 2)

	assert.True(t, entries[0].IsCurrent)
	assert.Equal(t, "Initech", entries[0].Company)
	assert.False(t, entries[1].IsCurrent)
	assert.Equal(t, "Globex", entries[1].Company)
	assert.Len(t, entries[1].Bullets, 2)
}

func TestExperiences_LocationAndDescription(t *testing.T) {
	text := strings.Join([]string{
		"Senior Software Engineer at Acme Corp, Portland, OR",
		"Jan 2020 - Present",
		"Owned the deployment tooling for the platform group.",
		"- Increased throughput by 30%",
	}, "\n")

	entries := Experiences(text)
	require.Len(t, entries, 1)

	e := entries[0]
	assert.Equal(t, "Acme Corp", e.Company)
	assert.Equal(t, "Portland, OR", e.Location)
	assert.Equal(t, "Owned the deployment tooling for the platform group.", e.Description)
	assert.Len(t, e.Bullets, 1)
}

func TestExperiences_SectionHeaderClosesEntry(t *testing.T) {
	text := strings.Join([]string{
		"Engineer at Foo Inc",
		"Jan 2019 - Dec 2019",
		"Education",
		"B.S. Computer Science, 2014-2018",
	}, "\n")

	entries := Experiences(text)
	require.Len(t, entries, 1)

	assert.Empty(t, entries[0].Description)
}

func TestExperiences_BulletsBeforeAnyEntryIgnored(t *testing.T) {
	entries := Experiences("- floating bullet with no position above it")

	assert.Empty(t, entries)
}

func TestExperiences_NoActionVerbOnPlainBullet(t *testing.T) {
	text := "Engineer at Foo Inc\nJan 2019 - Dec 2019\n- responsible for maintenance tasks"

	entries := Experiences(text)
	require.Len(t, entries, 1)
	require.Len(t, entries[0].Bullets, 1)

	b := entries[0].Bullets[0]
	assert.Empty(t, b.ActionVerb)
	assert.False(t, b.HasMetrics)
}

func TestEducation_BasicEntry(t *testing.T) {
	text := "Education\nB.S. Computer Science at State University\n2014-2018\nGPA: 3.8"

	entries := Education(text)
	require.Len(t, entries, 1)

	e := entries[0]
	assert.Contains(t, e.Degree, "B.S")
	assert.Contains(t, e.Institution, "State University")
	assert.Equal(t, "2014", e.StartDate)
	assert.Equal(t, "2018", e.EndDate)
	require.NotNil(t, e.GPA)
	assert.InDelta(t, 3.8, *e.GPA, 0.001)
}

func TestEducation_GPAOutOfRangeDropped(t *testing.T) {
	text := "Education\nMaster of Science at Tech Institute\nGPA: 4.9"

	entries := Education(text)
	require.Len(t, entries, 1)
	assert.Nil(t, entries[0].GPA)
}

func TestEducation_NoSectionMeansNoEntries(t *testing.T) {
	assert.Empty(t, Education("Experience\nEngineer at Foo\nJan 2020 - Present"))
}

func TestEducation_StopsAtNextSection(t *testing.T) {
	text := "Education\nB.S. at Some College\n\nSkills\nMBA-level negotiation"

	entries := Education(text)
	require.Len(t, entries, 1)
	assert.Contains(t, entries[0].Institution, "Some College")
}

func TestExtract_CapsExperienceAndEducation(t *testing.T) {
	var sb strings.Builder
	for i := 0; i < 8; i++ {
		sb.WriteString("Engineer at Company\nJan 2010 - Dec 2010\n\n")
	}

	profile := Extract(sb.String())

	assert.Len(t, profile.Experiences, 5)
}

func TestExtract_SummaryFromParts(t *testing.T) {
	text := strings.Join([]string{
		"Jane Doe",
		"Senior Engineer at Acme",
		"Jan 2015 - Present",
		"- Built Python and Docker pipelines",
		"",
		"Education",
		"B.S. Computer Science at State University",
	}, "\n")

	profile := Extract(text)

	require.NotEmpty(t, profile.Summary)
	assert.Contains(t, profile.Summary, "years of experience")
	assert.Contains(t, profile.Summary, "Skilled in")
}

func TestExtract_EmptyInputEmptyProfile(t *testing.T) {
	profile := Extract("")

	assert.Empty(t, profile.Skills)
	assert.Empty(t, profile.Experiences)
	assert.Empty(t, profile.Education)
	assert.Empty(t, profile.Summary)
}

func TestIndexTerm_Boundaries(t *testing.T) {
	tests := []struct {
		name  string
		text  string
		term  string
		found bool
	}{
		{"exact word", "knows python well", "python", true},
		{"substring rejected", "javascript", "java", false},
		{"punctuation edge", "c++ developer", "c++", true},
		{"start of text", "python first", "python", true},
		{"end of text", "ends with python", "python", true},
		{"hyphen neighbor ok", "scikit-learn user", "scikit-learn", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := IndexTerm(tt.text, tt.term) >= 0
			assert.Equal(t, tt.found, got)
		})
	}
}
