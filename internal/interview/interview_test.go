package interview

import (
	"math/rand"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const pythonResume = "Senior Engineer with Python and machine learning background. 6 years of experience."

func TestGenerate_TailorsPoolToResume(t *testing.T) {
	s := NewSelector(nil, rand.NewSource(1))
	opts := DefaultGenerateOptions()
	opts.NumQuestions = 50

	questions, err := s.Generate(pythonResume, opts)
	require.NoError(t, err)
	require.NotEmpty(t, questions)

	categories := map[string]bool{}
	for _, q := range questions {
		categories[q.Category] = true
	}

	assert.True(t, categories["python"])
	assert.True(t, categories["machine learning"])
	assert.True(t, categories["system_design"], "senior cue should include system design")
	assert.True(t, categories["algorithms"])
	assert.True(t, categories["behavioral"])
	assert.False(t, categories["java"], "java not on resume")
}

func TestGenerate_JuniorResumeSkipsSystemDesign(t *testing.T) {
	s := NewSelector(nil, rand.NewSource(1))
	opts := DefaultGenerateOptions()
	opts.NumQuestions = 50

	questions, err := s.Generate("Junior developer, 1 year of experience with JavaScript.", opts)
	require.NoError(t, err)

	for _, q := range questions {
		assert.NotEqual(t, "system_design", q.Category)
	}
}

func TestGenerate_AlgorithmsAndBehavioralAlwaysPresent(t *testing.T) {
	s := NewSelector(nil, rand.NewSource(1))
	opts := DefaultGenerateOptions()
	opts.NumQuestions = 50

	questions, err := s.Generate("no recognizable technologies here", opts)
	require.NoError(t, err)

	categories := map[string]bool{}
	for _, q := range questions {
		categories[q.Category] = true
	}
	assert.True(t, categories["algorithms"])
	assert.True(t, categories["behavioral"])
}

func TestGenerate_DifficultyFilter(t *testing.T) {
	s := NewSelector(nil, rand.NewSource(1))
	opts := DefaultGenerateOptions()
	opts.Difficulty = DifficultyHard
	opts.NumQuestions = 50

	questions, err := s.Generate(pythonResume, opts)
	require.NoError(t, err)
	require.NotEmpty(t, questions)

	for _, q := range questions {
		assert.Equal(t, DifficultyHard, q.Difficulty)
	}
}

func TestGenerate_CategoryFilterMatchesTags(t *testing.T) {
	s := NewSelector(nil, rand.NewSource(1))
	opts := DefaultGenerateOptions()
	opts.Categories = []string{"concurrency"}
	opts.NumQuestions = 50

	questions, err := s.Generate(pythonResume, opts)
	require.NoError(t, err)
	require.NotEmpty(t, questions)

	for _, q := range questions {
		found := false
		for _, tag := range q.Tags {
			if tag == "concurrency" {
				found = true
			}
		}
		assert.True(t, found, q.Question)
	}
}

func TestGenerate_TruncatesToNumQuestions(t *testing.T) {
	s := NewSelector(nil, rand.NewSource(1))
	opts := DefaultGenerateOptions()
	opts.NumQuestions = 3

	questions, err := s.Generate(pythonResume, opts)
	require.NoError(t, err)

	assert.Len(t, questions, 3)
}

func TestGenerate_SameSeedSameSelection(t *testing.T) {
	opts := DefaultGenerateOptions()
	opts.NumQuestions = 5

	a, err := NewSelector(nil, rand.NewSource(42)).Generate(pythonResume, opts)
	require.NoError(t, err)
	b, err := NewSelector(nil, rand.NewSource(42)).Generate(pythonResume, opts)
	require.NoError(t, err)

	assert.Equal(t, a, b)
}

func TestGenerate_InvalidOptionsRejected(t *testing.T) {
	s := NewSelector(nil, rand.NewSource(1))

	_, err := s.Generate(pythonResume, GenerateOptions{NumQuestions: 0, Difficulty: DifficultyAll})
	assert.Error(t, err)

	_, err = s.Generate(pythonResume, GenerateOptions{NumQuestions: 5, Difficulty: "impossible"})
	assert.Error(t, err)
}

func TestBank_Categories(t *testing.T) {
	cats := DefaultBank().Categories()

	assert.Contains(t, cats, "python")
	assert.Contains(t, cats, "machine learning")
	assert.Contains(t, cats, "system_design")
	assert.Contains(t, cats, "behavioral")
	assert.IsNonDecreasing(t, cats)
}

func TestBank_QuestionsByCategory(t *testing.T) {
	bank := DefaultBank()

	all := bank.QuestionsByCategory("python", DifficultyAll)
	hard := bank.QuestionsByCategory("python", DifficultyHard)

	assert.NotEmpty(t, all)
	assert.Less(t, len(hard), len(all))
	for _, q := range hard {
		assert.Equal(t, DifficultyHard, q.Difficulty)
	}

	assert.Empty(t, bank.QuestionsByCategory("cobol", DifficultyAll))
}

func TestLoadBank_MissingFileFallsBack(t *testing.T) {
	bank := LoadBank(filepath.Join(t.TempDir(), "nope.json"))
	assert.NotEmpty(t, bank.Behavioral)
}

func TestLoadBank_InvalidDifficultyFallsBack(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.json")
	doc := `{"behavioral": [{"question": "q", "difficulty": "brutal"}]}`
	require.NoError(t, os.WriteFile(path, []byte(doc), 0o644))

	bank := LoadBank(path)
	assert.Greater(t, len(bank.Behavioral), 1, "built-in bank expected")
}

func TestLoadBank_ValidFileUsed(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bank.json")
	doc := `{"behavioral": [{"question": "Tell me about yourself.", "difficulty": "easy"}]}`
	require.NoError(t, os.WriteFile(path, []byte(doc), 0o644))

	bank := LoadBank(path)
	require.Len(t, bank.Behavioral, 1)
	assert.Equal(t, "Tell me about yourself.", bank.Behavioral[0].Question)
}
