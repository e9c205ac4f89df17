package matching

import (
	"context"
	"fmt"
	"math"
	"regexp"
	"sort"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"

	"github.com/jonathan/resume-insights/internal/types"
)

// Semantic finds sentence-level matches between résumé and job description.
// Implementations are resolved once at startup; Available reports whether
// the backend can actually be called.
type Semantic interface {
	Available() bool
	Match(ctx context.Context, resumeText, jdText string, threshold float64) ([]types.SemanticMatch, error)
}

// NoSemantic is the null strategy used when no embedding backend is
// configured.
type NoSemantic struct{}

// Available always reports false.
func (NoSemantic) Available() bool { return false }

// Match returns no matches.
func (NoSemantic) Match(context.Context, string, string, float64) ([]types.SemanticMatch, error) {
	return nil, nil
}

const (
	embeddingModel       = "text-embedding-004"
	maxSentencesPerSide  = 30
	maxSemanticMatches   = 20
	minSentenceWordCount = 4
)

// GeminiSemantic matches sentences by cosine similarity of Gemini
// embeddings.
type GeminiSemantic struct {
	client *genai.Client
	model  *genai.EmbeddingModel
}

// NewGeminiSemantic creates the Gemini-backed strategy.
func NewGeminiSemantic(ctx context.Context, apiKey string) (*GeminiSemantic, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("API key is required")
	}

	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}

	return &GeminiSemantic{
		client: client,
		model:  client.EmbeddingModel(embeddingModel),
	}, nil
}

// Available always reports true; call failures surface from Match.
func (g *GeminiSemantic) Available() bool { return true }

// Close releases the underlying API client.
func (g *GeminiSemantic) Close() error { return g.client.Close() }

// Match embeds the substantive sentences of both texts and pairs each job
// sentence with its best résumé sentence at or above the threshold.
func (g *GeminiSemantic) Match(ctx context.Context, resumeText, jdText string, threshold float64) ([]types.SemanticMatch, error) {
	resumeSents := sentences(resumeText)
	jdSents := sentences(jdText)
	if len(resumeSents) == 0 || len(jdSents) == 0 {
		return nil, nil
	}

	resumeVecs, err := g.embed(ctx, resumeSents)
	if err != nil {
		return nil, fmt.Errorf("failed to embed resume sentences: %w", err)
	}
	jdVecs, err := g.embed(ctx, jdSents)
	if err != nil {
		return nil, fmt.Errorf("failed to embed job description sentences: %w", err)
	}

	var matches []types.SemanticMatch
	for j, jv := range jdVecs {
		bestIdx, bestSim := -1, threshold
		for r, rv := range resumeVecs {
			if sim := cosine(jv, rv); sim >= bestSim {
				bestIdx, bestSim = r, sim
			}
		}
		if bestIdx >= 0 {
			matches = append(matches, types.SemanticMatch{
				ResumeSentence: resumeSents[bestIdx],
				JobSentence:    jdSents[j],
				Similarity:     math.Round(bestSim*1000) / 1000,
			})
		}
	}

	sort.SliceStable(matches, func(i, j int) bool { return matches[i].Similarity > matches[j].Similarity })
	if len(matches) > maxSemanticMatches {
		matches = matches[:maxSemanticMatches]
	}
	return matches, nil
}

func (g *GeminiSemantic) embed(ctx context.Context, texts []string) ([][]float32, error) {
	batch := g.model.NewBatch()
	for _, t := range texts {
		batch.AddContent(genai.Text(t))
	}

	resp, err := g.model.BatchEmbedContents(ctx, batch)
	if err != nil {
		return nil, err
	}
	if len(resp.Embeddings) != len(texts) {
		return nil, fmt.Errorf("embedding count mismatch: got %d for %d inputs", len(resp.Embeddings), len(texts))
	}

	vecs := make([][]float32, len(resp.Embeddings))
	for i, e := range resp.Embeddings {
		vecs[i] = e.Values
	}
	return vecs, nil
}

var sentenceSplitRe = regexp.MustCompile(`[.!?\n]+`)

// sentences splits text into substantive sentences, dropping fragments too
// short to carry meaning, capped to keep embedding calls bounded.
func sentences(text string) []string {
	var out []string
	for _, s := range sentenceSplitRe.Split(text, -1) {
		s = strings.TrimSpace(s)
		if len(strings.Fields(s)) < minSentenceWordCount {
			continue
		}
		out = append(out, s)
		if len(out) == maxSentencesPerSide {
			break
		}
	}
	return out
}

// cosine computes cosine similarity, zero for degenerate vectors.
func cosine(a, b []float32) float64 {
	if len(a) != len(b) || len(a) == 0 {
		return 0
	}
	var dot, na, nb float64
	for i := range a {
		dot += float64(a[i]) * float64(b[i])
		na += float64(a[i]) * float64(a[i])
		nb += float64(b[i]) * float64(b[i])
	}
	if na == 0 || nb == 0 {
		return 0
	}
	return dot / (math.Sqrt(na) * math.Sqrt(nb))
}
