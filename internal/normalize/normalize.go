// Package normalize cleans raw résumé text before extraction and scoring.
//
// Two passes are provided. ForExtraction is conservative: it strips markup
// and control characters but preserves line structure, section headers,
// emails and URLs, which the entity extractors anchor on. ForScoring is
// destructive: it additionally removes boilerplate tokens, emails, URLs and
// layout punctuation, and collapses all whitespace, producing text suited to
// keyword-frequency analysis. Both passes are idempotent and never fail; on
// an HTML parse error they fall back to a minimal tag strip.
package normalize

import (
	"log/slog"
	"regexp"
	"strings"
	"unicode"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/text/unicode/norm"
)

var (
	blockBreakRe = regexp.MustCompile(`(?i)</(?:p|div|li|ul|ol|tr|table|h[1-6]|section|article|header|footer)>|<br\s*/?>`)
	tagRe        = regexp.MustCompile(`<[^>]+>`)
	entityRe     = regexp.MustCompile(`&#?[a-zA-Z0-9]+;`)

	emailRe = regexp.MustCompile(`[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}`)
	urlRe   = regexp.MustCompile(`(?i)\b(?:https?://|www\.)\S+`)

	// Longer alternatives listed first; Go regexps prefer the leftmost
	// alternative that matches.
	boilerplateRe = regexp.MustCompile(`(?i)\b(?:curriculum vitae|page \d+ of \d+|professional summary|work experience|employment history|academic background|technical skills|about me|resume|cv|summary|objective|profile|experience|education|skills|competencies|projects|certifications|awards|honors|publications|references|languages|interests|hobbies)\b`)
	labelRe       = regexp.MustCompile(`(?i)\b(?:name|address|phone|email|linkedin|github|portfolio)\s*:`)

	spaceTabRe     = regexp.MustCompile(`[ \t]+`)
	trailingWSRe   = regexp.MustCompile(`(?m)[ \t]+$`)
	manyNewlinesRe = regexp.MustCompile(`\n{3,}`)
	allWSRe        = regexp.MustCompile(`\s+`)
)

// punctuation retained by the scoring pass; everything else outside
// letters, digits and whitespace is dropped.
const keepPunct = `'@#%&*+=-/\`

// ForExtraction prepares raw text for entity extraction. It strips HTML,
// applies NFKC unicode normalization, drops unprintable characters and
// collapses horizontal whitespace, but keeps newlines, section headers,
// emails and URLs intact.
func ForExtraction(raw string) string {
	text := StripHTML(raw)
	text = norm.NFKC.String(text)
	text = strings.ReplaceAll(text, "\r\n", "\n")
	text = strings.ReplaceAll(text, "\r", "\n")
	text = filterPrintable(text)
	text = spaceTabRe.ReplaceAllString(text, " ")
	text = trailingWSRe.ReplaceAllString(text, "")
	text = manyNewlinesRe.ReplaceAllString(text, "\n\n")
	return strings.TrimSpace(text)
}

// ForScoring prepares raw text for keyword-frequency analysis. On top of the
// extraction cleanup it removes emails, URLs, section-header boilerplate and
// punctuation outside a small retained set, and collapses all whitespace to
// single spaces.
func ForScoring(raw string) string {
	text := StripHTML(raw)
	text = norm.NFKC.String(text)
	text = filterPrintable(text)
	text = emailRe.ReplaceAllString(text, " ")
	text = urlRe.ReplaceAllString(text, " ")
	text = labelRe.ReplaceAllString(text, " ")
	text = boilerplateRe.ReplaceAllString(text, " ")
	text = strings.Map(func(r rune) rune {
		if unicode.IsLetter(r) || unicode.IsDigit(r) || unicode.IsSpace(r) || strings.ContainsRune(keepPunct, r) {
			return r
		}
		return ' '
	}, text)
	text = allWSRe.ReplaceAllString(text, " ")
	return strings.TrimSpace(text)
}

// StripHTML removes markup from text, turning block-level boundaries into
// newlines so line-oriented scans keep working. Plain text passes through
// unchanged. A parse failure degrades to a regex tag strip.
func StripHTML(raw string) string {
	if !strings.Contains(raw, "<") {
		return raw
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(raw))
	if err != nil {
		slog.Debug("html parse failed, falling back to tag strip", "error", err)
		return basicStrip(raw)
	}
	doc.Find("script, style, head, noscript").Remove()

	html, err := doc.Html()
	if err != nil {
		slog.Debug("html render failed, falling back to tag strip", "error", err)
		return basicStrip(raw)
	}

	text := blockBreakRe.ReplaceAllString(html, "\n")
	text = tagRe.ReplaceAllString(text, " ")
	text = entityRe.ReplaceAllString(text, " ")
	return text
}

// basicStrip is the minimal fallback clean: drop tags and entities, nothing
// else.
func basicStrip(raw string) string {
	text := tagRe.ReplaceAllString(raw, " ")
	return entityRe.ReplaceAllString(text, " ")
}

// filterPrintable drops control and other unprintable runes while keeping
// tabs, carriage returns and newlines.
func filterPrintable(text string) string {
	return strings.Map(func(r rune) rune {
		if r == '\n' || r == '\r' || r == '\t' {
			return r
		}
		if unicode.IsPrint(r) {
			return r
		}
		return -1
	}, text)
}
