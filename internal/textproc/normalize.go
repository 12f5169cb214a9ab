// Package textproc provides text normalization and section segmentation for
// CV and job description documents.
package textproc

import (
	"regexp"
	"strings"
)

var (
	whitespaceRe = regexp.MustCompile(`[ \t\r\f\v]+`)
	disallowedRe = regexp.MustCompile(`[^\w\s.,;:!?\-()]`)
	blankLinesRe = regexp.MustCompile(`\n\s*\n`)
	trailingWSRe = regexp.MustCompile(`[ \t]+\n`)
)

// Normalize cleans raw text: runs of whitespace collapse to a single space,
// characters outside the whitelist (word characters, whitespace and basic
// punctuation) are replaced with spaces, multiple blank lines collapse to one,
// and leading/trailing whitespace is trimmed. Empty input yields empty output.
// Normalize is idempotent.
func Normalize(text string) string {
	if text == "" {
		return ""
	}

	text = disallowedRe.ReplaceAllString(text, " ")
	text = whitespaceRe.ReplaceAllString(text, " ")
	text = trailingWSRe.ReplaceAllString(text, "\n")
	text = blankLinesRe.ReplaceAllString(text, "\n\n")

	return strings.TrimSpace(text)
}

// NormalizeLower is Normalize followed by lowercasing.
func NormalizeLower(text string) string {
	return strings.ToLower(Normalize(text))
}
