// Package interview selects mock interview questions tailored to the
// technologies and seniority found in a résumé. Questions come from a bank;
// a built-in bank ships with the package and an external JSON bank can be
// loaded, falling back to the built-in one when the file is missing or
// invalid.
package interview

import (
	"encoding/json"
	"log/slog"
	"os"
	"sort"

	"github.com/jonathan/resume-insights/internal/schemas"
)

// Question difficulty levels.
const (
	DifficultyEasy   = "easy"
	DifficultyMedium = "medium"
	DifficultyHard   = "hard"
	DifficultyAll    = "all"
)

// BankQuestion is one entry in the question bank.
type BankQuestion struct {
	Question          string   `json:"question"`
	Difficulty        string   `json:"difficulty"`
	Tags              []string `json:"tags,omitempty"`
	AnswerGuidance    string   `json:"answer_guidance,omitempty"`
	FollowUpQuestions []string `json:"follow_up_questions,omitempty"`
}

// Bank groups questions by category. Language and data science categories
// are keyed by technology so selection can follow the résumé's stack;
// system design, algorithms and behavioral apply to everyone.
type Bank struct {
	ProgrammingLanguages map[string][]BankQuestion `json:"programming_languages"`
	DataScience          map[string][]BankQuestion `json:"data_science"`
	SystemDesign         []BankQuestion            `json:"system_design"`
	Algorithms           []BankQuestion            `json:"algorithms"`
	Behavioral           []BankQuestion            `json:"behavioral"`
}

// Categories lists every category name in the bank, sorted.
func (b *Bank) Categories() []string {
	set := map[string]bool{
		"system_design": len(b.SystemDesign) > 0,
		"algorithms":    len(b.Algorithms) > 0,
		"behavioral":    len(b.Behavioral) > 0,
	}
	var out []string
	for name, ok := range set {
		if ok {
			out = append(out, name)
		}
	}
	for lang := range b.ProgrammingLanguages {
		out = append(out, lang)
	}
	for topic := range b.DataScience {
		out = append(out, topic)
	}
	sort.Strings(out)
	return out
}

// QuestionsByCategory returns the questions under one category name,
// filtered by difficulty ("all" disables the filter).
func (b *Bank) QuestionsByCategory(category, difficulty string) []BankQuestion {
	var pool []BankQuestion
	switch category {
	case "system_design":
		pool = b.SystemDesign
	case "algorithms":
		pool = b.Algorithms
	case "behavioral":
		pool = b.Behavioral
	default:
		if qs, ok := b.ProgrammingLanguages[category]; ok {
			pool = qs
		} else if qs, ok := b.DataScience[category]; ok {
			pool = qs
		}
	}

	var out []BankQuestion
	for _, q := range pool {
		if difficultyMatches(q.Difficulty, difficulty) {
			out = append(out, q)
		}
	}
	return out
}

func difficultyMatches(have, want string) bool {
	return want == "" || want == DifficultyAll || have == want
}

// bankSchema validates external bank files before use.
const bankSchema = `{
	"type": "object",
	"properties": {
		"programming_languages": {
			"type": "object",
			"additionalProperties": {"$ref": "#/definitions/questions"}
		},
		"data_science": {
			"type": "object",
			"additionalProperties": {"$ref": "#/definitions/questions"}
		},
		"system_design": {"$ref": "#/definitions/questions"},
		"algorithms": {"$ref": "#/definitions/questions"},
		"behavioral": {"$ref": "#/definitions/questions"}
	},
	"definitions": {
		"questions": {
			"type": "array",
			"items": {
				"type": "object",
				"required": ["question", "difficulty"],
				"properties": {
					"question": {"type": "string", "minLength": 1},
					"difficulty": {"type": "string", "enum": ["easy", "medium", "hard"]},
					"tags": {"type": "array", "items": {"type": "string"}},
					"answer_guidance": {"type": "string"},
					"follow_up_questions": {"type": "array", "items": {"type": "string"}}
				}
			}
		}
	}
}`

// LoadBank reads a question bank from a JSON file. An empty path, an
// unreadable file, or a file failing schema validation all fall back to the
// built-in bank.
func LoadBank(path string) *Bank {
	if path == "" {
		return DefaultBank()
	}

	data, err := os.ReadFile(path)
	if err != nil {
		slog.Warn("question bank unreadable, using built-in bank", "path", path, "error", err)
		return DefaultBank()
	}

	if err := schemas.ValidateString(bankSchema, string(data)); err != nil {
		slog.Warn("question bank failed validation, using built-in bank", "path", path, "error", err)
		return DefaultBank()
	}

	var bank Bank
	if err := json.Unmarshal(data, &bank); err != nil {
		slog.Warn("question bank unmarshal failed, using built-in bank", "path", path, "error", err)
		return DefaultBank()
	}
	return &bank
}

// DefaultBank returns the built-in question bank.
func DefaultBank() *Bank {
	return &Bank{
		ProgrammingLanguages: map[string][]BankQuestion{
			"python": {
				{
					Question:       "Explain the difference between a list and a tuple in Python. When would you choose one over the other?",
					Difficulty:     DifficultyEasy,
					Tags:           []string{"python", "data structures"},
					AnswerGuidance: "Cover mutability, hashability, and typical use cases.",
				},
				{
					Question:          "How does Python's garbage collection work, and what role do reference cycles play?",
					Difficulty:        DifficultyMedium,
					Tags:              []string{"python", "memory"},
					AnswerGuidance:    "Reference counting plus the cyclic collector; mention gc module knobs.",
					FollowUpQuestions: []string{"How would you find a memory leak in a long-running Python service?"},
				},
				{
					Question:       "What is the Global Interpreter Lock and how do you achieve parallelism despite it?",
					Difficulty:     DifficultyHard,
					Tags:           []string{"python", "concurrency"},
					AnswerGuidance: "Threads vs processes vs asyncio; C extensions releasing the GIL.",
				},
			},
			"javascript": {
				{
					Question:       "Explain the event loop in JavaScript and how microtasks differ from macrotasks.",
					Difficulty:     DifficultyMedium,
					Tags:           []string{"javascript", "concurrency"},
					AnswerGuidance: "Call stack, task queues, promise jobs running before the next task.",
				},
				{
					Question:       "What are closures and what is a common bug they cause in loops?",
					Difficulty:     DifficultyEasy,
					Tags:           []string{"javascript", "fundamentals"},
					AnswerGuidance: "Captured variables vs values; var vs let in loop headers.",
				},
			},
			"java": {
				{
					Question:       "Compare the Java memory model's heap and stack, and explain where objects and references live.",
					Difficulty:     DifficultyEasy,
					Tags:           []string{"java", "memory"},
					AnswerGuidance: "Objects on heap, references and primitives on stack frames.",
				},
				{
					Question:          "How does the JVM's garbage collector decide what to collect, and how would you tune it for low latency?",
					Difficulty:        DifficultyHard,
					Tags:              []string{"java", "performance"},
					AnswerGuidance:    "Generational hypothesis, G1/ZGC tradeoffs, pause-time goals.",
					FollowUpQuestions: []string{"What signals would make you suspect GC pressure in production?"},
				},
			},
			"golang": {
				{
					Question:       "How do goroutines differ from OS threads, and how does the scheduler multiplex them?",
					Difficulty:     DifficultyMedium,
					Tags:           []string{"golang", "concurrency"},
					AnswerGuidance: "M:N scheduling, small stacks, blocking and netpoller behavior.",
				},
				{
					Question:       "When do you use channels versus mutexes in Go?",
					Difficulty:     DifficultyEasy,
					Tags:           []string{"golang", "concurrency"},
					AnswerGuidance: "Ownership transfer vs shared-state protection; select for coordination.",
				},
			},
		},
		DataScience: map[string][]BankQuestion{
			"machine learning": {
				{
					Question:       "Explain the bias-variance tradeoff and how it guides model selection.",
					Difficulty:     DifficultyMedium,
					Tags:           []string{"machine learning", "theory"},
					AnswerGuidance: "Underfitting vs overfitting; regularization, cross-validation.",
				},
				{
					Question:       "How do you handle class imbalance in a classification problem?",
					Difficulty:     DifficultyMedium,
					Tags:           []string{"machine learning", "practice"},
					AnswerGuidance: "Resampling, class weights, threshold tuning, better metrics than accuracy.",
				},
			},
			"deep learning": {
				{
					Question:       "What is the vanishing gradient problem and which architectural choices mitigate it?",
					Difficulty:     DifficultyHard,
					Tags:           []string{"deep learning", "theory"},
					AnswerGuidance: "Activation choices, residual connections, normalization layers.",
				},
			},
		},
		SystemDesign: []BankQuestion{
			{
				Question:          "Design a URL shortener that handles 100 million new links per month.",
				Difficulty:        DifficultyMedium,
				Tags:              []string{"system design", "scalability"},
				AnswerGuidance:    "Key generation, storage layout, redirects, cache strategy, analytics.",
				FollowUpQuestions: []string{"How would you expire unused links?"},
			},
			{
				Question:       "How would you design a rate limiter for a public API?",
				Difficulty:     DifficultyMedium,
				Tags:           []string{"system design", "reliability"},
				AnswerGuidance: "Token bucket vs sliding window, distributed counters, failure modes.",
			},
			{
				Question:       "Design a news feed system with low-latency reads for millions of users.",
				Difficulty:     DifficultyHard,
				Tags:           []string{"system design", "scalability"},
				AnswerGuidance: "Fan-out on write vs read, celebrity problem, ranking pipeline.",
			},
		},
		Algorithms: []BankQuestion{
			{
				Question:       "Given an array of integers, find two numbers that add up to a target. What is the optimal approach?",
				Difficulty:     DifficultyEasy,
				Tags:           []string{"algorithms", "arrays"},
				AnswerGuidance: "Hash map single pass, O(n) time O(n) space.",
			},
			{
				Question:       "How would you detect a cycle in a linked list without extra memory?",
				Difficulty:     DifficultyMedium,
				Tags:           []string{"algorithms", "linked lists"},
				AnswerGuidance: "Floyd's tortoise and hare; explain why the pointers must meet.",
			},
			{
				Question:       "Explain how you would find the k-th largest element in a stream.",
				Difficulty:     DifficultyHard,
				Tags:           []string{"algorithms", "heaps"},
				AnswerGuidance: "Min-heap of size k; compare against quickselect for static data.",
			},
		},
		Behavioral: []BankQuestion{
			{
				Question:       "Tell me about a time you disagreed with a teammate on a technical decision. How was it resolved?",
				Difficulty:     DifficultyEasy,
				Tags:           []string{"behavioral", "collaboration"},
				AnswerGuidance: "Use the STAR format; show you sought data and kept the relationship healthy.",
			},
			{
				Question:       "Describe a project that failed or missed its deadline. What did you learn?",
				Difficulty:     DifficultyMedium,
				Tags:           []string{"behavioral", "ownership"},
				AnswerGuidance: "Honest ownership of your part; concrete changes made afterward.",
			},
			{
				Question:       "Tell me about the most complex production incident you have debugged.",
				Difficulty:     DifficultyMedium,
				Tags:           []string{"behavioral", "operations"},
				AnswerGuidance: "Systematic narrowing, communication during the incident, postmortem actions.",
			},
		},
	}
}
