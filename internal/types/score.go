package types

// CategoryResult is the outcome of one ATS scoring category.
type CategoryResult struct {
	Score    float64        `json:"score"`
	MaxScore float64        `json:"max_score"`
	Feedback string         `json:"feedback,omitempty"`
	Found    []string       `json:"found,omitempty"`
	Missing  []string       `json:"missing,omitempty"`
	Counts   map[string]int `json:"counts,omitempty"`
}

// ScoreResult is a complete ATS compatibility report. Score is the weighted
// aggregate clamped to [0, 100]; Details maps category name to its raw
// (unweighted) result.
type ScoreResult struct {
	Score    float64                   `json:"score"`
	MaxScore float64                   `json:"max_score"`
	Details  map[string]CategoryResult `json:"details"`
	Feedback []string                  `json:"feedback"`
}
