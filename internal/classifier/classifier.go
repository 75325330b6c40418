// Package classifier turns raw corpus text into classified lines: tokens,
// one pronunciation per token, a syllable count and a rhyme key.
package classifier

import (
	"regexp"
	"strings"

	"github.com/heartmarshall/poemfactory/internal/domain"
)

// wordRegex matches lowercase words with at most one apostrophe-joined suffix (ain't).
var wordRegex = regexp.MustCompile(`[a-z]+(?:'[a-z]+)?`)

// Dictionary is the pronunciation lookup the classifier consumes.
type Dictionary interface {
	Lookup(word string) ([]domain.Pronunciation, bool)
}

// Classifier is stateless apart from its dictionary and safe for concurrent use.
type Classifier struct {
	dict Dictionary
}

// New creates a Classifier backed by dict.
func New(dict Dictionary) *Classifier {
	return &Classifier{dict: dict}
}

// Classify normalizes and classifies raw text. On failure the error is a
// domain.Rejection carrying the normalized text.
func (c *Classifier) Classify(raw string) (domain.ClassifiedLine, error) {
	content := domain.NormalizeLine(raw)

	tokens := Tokenize(content)
	if len(tokens) == 0 {
		return domain.ClassifiedLine{}, domain.NewNoWordsRejection(content)
	}

	prons := make([]domain.Pronunciation, len(tokens))
	for i, tok := range tokens {
		variants, ok := c.dict.Lookup(tok)
		if !ok || len(variants) == 0 {
			return domain.ClassifiedLine{}, domain.NewUnknownWordRejection(content, tok)
		}
		// First variant only; alternatives are never considered.
		prons[i] = variants[0]
	}

	syllables := 0
	for _, p := range prons {
		syllables += p.Syllables()
	}

	return domain.ClassifiedLine{
		Content:        content,
		Tokens:         tokens,
		Pronunciations: prons,
		SyllableCount:  syllables,
		RhymeKey:       ExtractRhymeKey(prons[len(prons)-1]),
	}, nil
}

// Tokenize lowercases text and extracts every word match.
func Tokenize(text string) []string {
	return wordRegex.FindAllString(strings.ToLower(text), -1)
}

// ExtractRhymeKey derives the rhyme-equivalence key of a pronunciation.
func ExtractRhymeKey(p domain.Pronunciation) string {
	return p.RhymeKey()
}
