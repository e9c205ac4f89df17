// Package matching compares résumé text against a job description. The
// baseline is keyword analysis: tokenize both sides, intersect exactly, then
// run a fuzzy pass that lets close spellings count. An optional semantic
// strategy adds sentence-level matches when an embedding backend is
// configured; without one the matcher degrades to keywords only.
package matching

import (
	"regexp"
	"strings"

	"github.com/jonathan/resume-insights/internal/normalize"
)

// stopwords excluded from keyword analysis.
var stopwords = map[string]bool{}

func init() {
	for _, w := range []string{
		"the", "and", "for", "are", "but", "not", "you", "all", "can", "had",
		"her", "was", "one", "our", "out", "day", "get", "has", "him", "his",
		"how", "man", "new", "now", "old", "see", "two", "way", "who", "its",
		"did", "yes", "your", "with", "this", "that", "from", "they", "have",
		"will", "been", "were", "said", "each", "which", "their", "them",
		"than", "then", "these", "some", "would", "other", "into", "more",
		"very", "what", "know", "just", "also", "about", "over", "such",
		"only", "work", "well", "must", "should", "could", "able", "years",
		"year", "experience", "required", "preferred", "including", "strong",
		"skills", "team", "role", "position", "candidate", "ability",
		"knowledge", "plus", "etc", "using", "within", "across", "looking",
	} {
		stopwords[w] = true
	}
}

var (
	wordRe   = regexp.MustCompile(`\b\w+\b`)
	digitsRe = regexp.MustCompile(`^\d+$`)
)

// preprocess runs the destructive scoring pass, which removes URLs, email
// addresses and section boilerplate that would otherwise leak noise tokens
// into the keyword sets, then lowercases.
func preprocess(text string) string {
	return strings.ToLower(normalize.ForScoring(text))
}

// tokenize extracts the set of analyzable keywords: lowercase words of at
// least three characters that are neither pure numbers nor stopwords.
func tokenize(text string) map[string]bool {
	tokens := make(map[string]bool)
	for _, w := range wordRe.FindAllString(preprocess(text), -1) {
		if len(w) < 3 || digitsRe.MatchString(w) || stopwords[w] {
			continue
		}
		tokens[w] = true
	}
	return tokens
}
