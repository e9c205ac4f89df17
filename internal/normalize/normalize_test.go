package normalize

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestForExtraction_PlainTextUnchanged(t *testing.T) {
	in := "John Smith\njohn@example.com\n555-123-4567"
	assert.Equal(t, in, ForExtraction(in))
}

func TestForExtraction_StripsHTMLKeepsLines(t *testing.T) {
	in := "<html><head><style>body{color:red}</style></head><body><p>John Smith</p><p>Engineer</p></body></html>"
	out := ForExtraction(in)

	assert.Contains(t, out, "John Smith")
	assert.Contains(t, out, "Engineer")
	assert.NotContains(t, out, "color:red")
	assert.NotContains(t, out, "<")

	// block boundaries become line breaks, not run-together words
	assert.NotContains(t, out, "SmithEngineer")
}

func TestForExtraction_KeepsContactAndHeaders(t *testing.T) {
	in := "Experience\njohn@example.com\nhttps://github.com/jsmith"
	out := ForExtraction(in)

	assert.Contains(t, out, "Experience")
	assert.Contains(t, out, "john@example.com")
	assert.Contains(t, out, "github.com/jsmith")
}

func TestForExtraction_NFKCAndControlChars(t *testing.T) {
	// U+FB03 is the "ffi" ligature; U+0000 is a control character
	in := "eﬃcient\x00 work"
	out := ForExtraction(in)

	assert.Equal(t, "efficient work", out)
}

func TestForExtraction_CollapsesBlankRuns(t *testing.T) {
	in := "a\n\n\n\n\nb"
	assert.Equal(t, "a\n\nb", ForExtraction(in))
}

func TestForScoring_RemovesEmailsURLsAndHeaders(t *testing.T) {
	in := "Professional Summary\nEmail: john@example.com\nSee https://example.com/portfolio\nBuilt Python services"
	out := ForScoring(in)

	assert.NotContains(t, out, "@")
	assert.NotContains(t, out, "example.com")
	assert.NotContains(t, strings.ToLower(out), "professional summary")
	assert.Contains(t, out, "Built Python services")
}

func TestForScoring_KeepsTechnicalPunctuation(t *testing.T) {
	out := ForScoring("C++ and C# and CI/CD at 100%")

	assert.Contains(t, out, "C++")
	assert.Contains(t, out, "C#")
	assert.Contains(t, out, "CI/CD")
	assert.Contains(t, out, "100%")
}

func TestForScoring_CollapsesWhitespace(t *testing.T) {
	out := ForScoring("a\t\tb\n\nc   d")
	assert.Equal(t, "a b c d", out)
}

func TestForScoring_WordBoundaryOnBoilerplate(t *testing.T) {
	// "experienced" must survive even though "experience" is boilerplate
	out := ForScoring("Experienced engineer")
	assert.Contains(t, out, "Experienced")
}

func TestNormalize_Idempotent(t *testing.T) {
	inputs := []string{
		"<p>John Smith</p><ul><li>Built APIs</li></ul>",
		"Skills: Python, Go\n\nExperience\njohn@example.com",
		"plain text with   spacing",
	}

	for _, in := range inputs {
		once := ForExtraction(in)
		assert.Equal(t, once, ForExtraction(once))

		scored := ForScoring(in)
		assert.Equal(t, scored, ForScoring(scored))
	}
}

func TestStripHTML_NoMarkupPassthrough(t *testing.T) {
	in := "no markup here"
	assert.Equal(t, in, StripHTML(in))
}
