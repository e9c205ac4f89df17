package types

// InterviewQuestion is one selected mock-interview question.
type InterviewQuestion struct {
	Question          string   `json:"question"`
	Category          string   `json:"category"`
	Difficulty        string   `json:"difficulty"`
	Tags              []string `json:"tags,omitempty"`
	AnswerGuidance    string   `json:"answer_guidance,omitempty"`
	FollowUpQuestions []string `json:"follow_up_questions,omitempty"`
}
