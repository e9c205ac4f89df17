package matching

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/resume-insights/internal/types"
)

type fakeSemantic struct {
	matches []types.SemanticMatch
	err     error
}

func (f fakeSemantic) Available() bool { return true }
func (f fakeSemantic) Match(context.Context, string, string, float64) ([]types.SemanticMatch, error) {
	return f.matches, f.err
}

func TestTokenize_FiltersShortNumericAndStopwords(t *testing.T) {
	tokens := tokenize("We use Go and Python since 2019 for the team")

	assert.True(t, tokens["python"])
	assert.False(t, tokens["go"], "two-letter words are dropped")
	assert.False(t, tokens["2019"], "pure numbers are dropped")
	assert.False(t, tokens["the"], "stopwords are dropped")
	assert.False(t, tokens["team"], "stopwords are dropped")
}

func TestTokenize_StripsURLsAndEmails(t *testing.T) {
	tokens := tokenize("contact jane@example.com via https://example.com/jobs")

	assert.False(t, tokens["example"])
	assert.False(t, tokens["jobs"])
	assert.True(t, tokens["contact"])
}

func TestMatch_IdenticalTextsFullScore(t *testing.T) {
	m := NewMatcher(nil)
	text := "building distributed systems with kubernetes postgresql python"

	result := m.Match(context.Background(), text, text)

	assert.InDelta(t, 100.0, result.MatchScore, 0.001)
	assert.Empty(t, result.MissingKeywords)
}

func TestMatch_DisjointTextsZeroScore(t *testing.T) {
	m := NewMatcher(nil)

	result := m.Match(context.Background(), "gardening cooking painting", "kubernetes terraform golang")

	assert.InDelta(t, 0.0, result.MatchScore, 0.001)
	assert.Len(t, result.MissingKeywords, 3)
}

func TestMatch_ScoreWithinBounds(t *testing.T) {
	m := NewMatcher(nil)

	result := m.Match(context.Background(), "python developer with docker", "python kubernetes terraform ansible")

	assert.GreaterOrEqual(t, result.MatchScore, 0.0)
	assert.LessOrEqual(t, result.MatchScore, 100.0)
}

func TestMatch_FuzzyCoversCloseSpelling(t *testing.T) {
	m := NewMatcher(nil)

	result := m.Match(context.Background(), "expert in kuberentes clusters", "kubernetes administration")

	assert.Contains(t, result.KeywordOverlap, "kubernetes")
	assert.NotContains(t, result.MissingKeywords, "kubernetes")
}

func TestMatch_FuzzyConsumesResumeWordOnce(t *testing.T) {
	m := NewMatcher(nil)

	// one resume word cannot satisfy two distinct job keywords
	result := m.Match(context.Background(), "kuberentes", "kubernetes kubernets")

	assert.Len(t, result.KeywordOverlap, 1)
	assert.Len(t, result.MissingKeywords, 1)
}

func TestMatch_EmptyJobDescription(t *testing.T) {
	m := NewMatcher(nil)

	result := m.Match(context.Background(), "some resume text", "")

	assert.Zero(t, result.MatchScore)
	require.NotEmpty(t, result.Feedback)
	assert.Contains(t, result.Feedback[0], "no analyzable keywords")
}

func TestMatch_NoSemanticAddsNote(t *testing.T) {
	m := NewMatcher(nil)

	result := m.Match(context.Background(), "python", "python")

	found := false
	for _, f := range result.Feedback {
		if strings.Contains(f, "unavailable") {
			found = true
		}
	}
	assert.True(t, found, "expected an unavailability note in feedback")
	assert.Empty(t, result.SemanticMatches)
}

func TestMatch_SemanticErrorDegrades(t *testing.T) {
	m := NewMatcher(fakeSemantic{err: errors.New("backend down")})

	result := m.Match(context.Background(), "python", "python")

	assert.InDelta(t, 100.0, result.MatchScore, 0.001)
	assert.Empty(t, result.SemanticMatches)
}

func TestMatch_SemanticMatchesAttached(t *testing.T) {
	want := []types.SemanticMatch{{ResumeSentence: "built pipelines", JobSentence: "data pipelines", Similarity: 0.8}}
	m := NewMatcher(fakeSemantic{matches: want})

	result := m.Match(context.Background(), "python", "python")

	assert.Equal(t, want, result.SemanticMatches)
}

func TestMatch_Deterministic(t *testing.T) {
	m := NewMatcher(nil)
	resume := "python docker terraform grafana prometheus linux"
	jd := "python golang terraform kubernetes prometheus ansible"

	a := m.Match(context.Background(), resume, jd)
	b := m.Match(context.Background(), resume, jd)

	assert.Equal(t, a, b)
}

func TestRatio_OrderedSimilarity(t *testing.T) {
	assert.InDelta(t, 1.0, ratio("python", "python"), 0.001)
	assert.Greater(t, ratio("kubernetes", "kuberentes"), 0.8)
	assert.Less(t, ratio("python", "gardening"), 0.5)
}

func TestKeyPhrases_RanksAndCaps(t *testing.T) {
	text := "Kubernetes experience building Kubernetes clusters. Gardening is nice. Kubernetes platform engineering with strong Kubernetes background."

	phrases := KeyPhrases(text, 2)

	require.Len(t, phrases, 2)
	assert.Contains(t, phrases[0], "Kubernetes")
}

func TestKeyPhrases_EmptyText(t *testing.T) {
	assert.Empty(t, KeyPhrases("", 3))
	assert.Empty(t, KeyPhrases("words here", 0))
}

func TestSentences_FiltersFragments(t *testing.T) {
	out := sentences("Too short. This sentence has enough words to count.")

	require.Len(t, out, 1)
	assert.Contains(t, out[0], "enough words")
}

func TestCosine_KnownValues(t *testing.T) {
	assert.InDelta(t, 1.0, cosine([]float32{1, 0}, []float32{1, 0}), 0.001)
	assert.InDelta(t, 0.0, cosine([]float32{1, 0}, []float32{0, 1}), 0.001)
	assert.Zero(t, cosine([]float32{1}, []float32{1, 2}))
}
