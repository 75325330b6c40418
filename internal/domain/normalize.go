package domain

import (
	"strings"
)

// lineBreaks maps CRLF, LF and lone CR each to one space.
var lineBreaks = strings.NewReplacer("\r\n", " ", "\n", " ", "\r", " ")

// NormalizeLine prepares raw corpus text for classification and storage:
//   - trims leading/trailing whitespace
//   - replaces every embedded line break with a single space
//
// Case and punctuation are preserved; content is stored as the reader saw it.
func NormalizeLine(text string) string {
	text = strings.TrimSpace(text)
	if text == "" {
		return ""
	}
	return lineBreaks.Replace(text)
}

// NormalizeWord lowercases and trims a dictionary headword.
func NormalizeWord(word string) string {
	return strings.ToLower(strings.TrimSpace(word))
}
