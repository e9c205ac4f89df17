package types

// SemanticMatch is one sentence pair deemed related by the optional
// embedding backend. Similarity is cosine similarity in [0, 1].
type SemanticMatch struct {
	ResumeSentence string  `json:"resume_sentence"`
	JobSentence    string  `json:"job_sentence"`
	Similarity     float64 `json:"similarity"`
}

// MatchResult describes how well a résumé covers a job description.
// MatchScore is a percentage in [0, 100].
type MatchResult struct {
	MatchScore      float64         `json:"match_score"`
	KeywordOverlap  []string        `json:"keyword_overlap"`
	MissingKeywords []string        `json:"missing_keywords"`
	SemanticMatches []SemanticMatch `json:"semantic_matches,omitempty"`
	KeyPhrases      []string        `json:"key_phrases,omitempty"`
	Feedback        []string        `json:"feedback"`
}
