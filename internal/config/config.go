// Package config provides configuration loading and validation for the CLI.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// Config represents the CLI configuration that can be loaded from a JSON file.
// All fields are optional; missing values use defaults or must be provided via CLI flags.
type Config struct {
	// Paths
	Resume         string `json:"resume,omitempty"`          // Path to résumé text file
	JobDescription string `json:"job_description,omitempty"` // Path to job description text file
	CareerData     string `json:"career_data,omitempty"`     // Path to external career catalog JSON
	QuestionData   string `json:"question_data,omitempty"`   // Path to external question bank JSON

	// Limits
	TopCareers   int `json:"top_careers,omitempty"`   // Maximum career suggestions
	NumQuestions int `json:"num_questions,omitempty"` // Maximum interview questions

	// Behavior
	Difficulty string   `json:"difficulty,omitempty"` // Question difficulty: easy, medium, hard, all
	Interests  []string `json:"interests,omitempty"`  // Career interests that nudge suggestions
	APIKey     string   `json:"api_key,omitempty"`    // Gemini API key for semantic matching
	Seed       int64    `json:"seed,omitempty"`       // Question selection seed, 0 means time-seeded
	Verbose    bool     `json:"verbose,omitempty"`    // Print detailed boxed output
	JSONOut    bool     `json:"json,omitempty"`       // Emit the report as JSON
}

// LoadConfig loads configuration from a JSON file.
// Returns an error if the file cannot be read or parsed.
func LoadConfig(path string) (*Config, error) {
	if path == "" {
		return nil, fmt.Errorf("config path is empty")
	}

	// Resolve path relative to current directory if not absolute
	if !filepath.IsAbs(path) {
		cwd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("failed to get current directory: %w", err)
		}
		path = filepath.Join(cwd, path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config JSON: %w", err)
	}

	return &cfg, nil
}

// Validate checks that the configuration has valid values.
// Note: This doesn't check for required fields since those are handled
// by CLI flag validation after merging.
func (c *Config) Validate() error {
	// Validate numeric ranges
	if c.TopCareers < 0 {
		return fmt.Errorf("config error: 'top_careers' must be non-negative")
	}
	if c.NumQuestions < 0 {
		return fmt.Errorf("config error: 'num_questions' must be non-negative")
	}

	switch c.Difficulty {
	case "", "easy", "medium", "hard", "all":
	default:
		return fmt.Errorf("config error: 'difficulty' must be easy, medium, hard, or all")
	}

	// Validate file paths exist (if specified)
	if c.Resume != "" {
		if _, err := os.Stat(c.Resume); os.IsNotExist(err) {
			return fmt.Errorf("config error: resume file not found: %s", c.Resume)
		}
	}

	if c.JobDescription != "" {
		if _, err := os.Stat(c.JobDescription); os.IsNotExist(err) {
			return fmt.Errorf("config error: job description file not found: %s", c.JobDescription)
		}
	}

	return nil
}

// MergeWithDefaults returns a new Config with empty string fields filled from defaults.
// This is used to apply config file values as defaults for CLI flags.
func (c *Config) MergeWithDefaults(defaults Config) Config {
	result := *c

	// String fields: use default if empty
	if result.Resume == "" {
		result.Resume = defaults.Resume
	}
	if result.JobDescription == "" {
		result.JobDescription = defaults.JobDescription
	}
	if result.CareerData == "" {
		result.CareerData = defaults.CareerData
	}
	if result.QuestionData == "" {
		result.QuestionData = defaults.QuestionData
	}
	if result.APIKey == "" {
		result.APIKey = defaults.APIKey
	}
	if result.Difficulty == "" {
		result.Difficulty = defaults.Difficulty
	}
	if len(result.Interests) == 0 {
		result.Interests = defaults.Interests
	}

	// Int fields: use default if zero
	if result.TopCareers == 0 {
		result.TopCareers = defaults.TopCareers
	}
	if result.NumQuestions == 0 {
		result.NumQuestions = defaults.NumQuestions
	}
	if result.Seed == 0 {
		result.Seed = defaults.Seed
	}

	// Bool fields: cannot distinguish unset from false, so we don't merge
	// (CLI flags should always win for bools)

	return result
}
