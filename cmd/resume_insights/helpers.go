package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/jonathan/resume-insights/internal/matching"
)

// readResume reads the résumé text file given by --resume.
func readResume(path string) (string, error) {
	if path == "" {
		return "", fmt.Errorf("--resume is required")
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("failed to read resume file: %w", err)
	}
	return string(data), nil
}

// readOptionalFile reads a text file when the path is set; an empty path
// returns an empty string without error.
func readOptionalFile(path string) (string, error) {
	if path == "" {
		return "", nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("failed to read file %s: %w", path, err)
	}
	return string(data), nil
}

// buildSemantic resolves the semantic matching strategy once. A key from the
// flag or GEMINI_API_KEY enables the Gemini backend; otherwise semantic
// matching stays disabled and keyword matching carries the result. The
// returned closer releases the API client and is safe to call when nil
// semantics were resolved.
func buildSemantic(ctx context.Context, apiKey string) (matching.Semantic, func(), error) {
	if apiKey == "" {
		apiKey = os.Getenv("GEMINI_API_KEY")
	}
	if apiKey == "" {
		return nil, func() {}, nil
	}

	sem, err := matching.NewGeminiSemantic(ctx, apiKey)
	if err != nil {
		return nil, func() {}, fmt.Errorf("failed to initialize semantic matching: %w", err)
	}
	return sem, func() { _ = sem.Close() }, nil
}

// printJSON writes v to stdout as indented JSON.
func printJSON(v any) error {
	jsonBytes, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal JSON: %w", err)
	}
	_, _ = fmt.Fprintf(os.Stdout, "%s\n", jsonBytes)
	return nil
}
