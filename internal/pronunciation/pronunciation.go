// Package pronunciation provides word-to-phoneme lookups for the line classifier.
package pronunciation

import (
	"github.com/heartmarshall/poemfactory/internal/domain"
)

// Map is an in-memory pronunciation dictionary keyed by lowercase word.
// Variants are kept in insertion order; the first is the canonical one.
type Map map[string][]domain.Pronunciation

// FromStrings builds a Map with one pronunciation per word,
// e.g. {"hello": "HH AH0 L OW1"}.
func FromStrings(entries map[string]string) Map {
	m := make(Map, len(entries))
	for word, pron := range entries {
		m.Add(word, domain.ParsePronunciation(pron))
	}
	return m
}

// Add appends a pronunciation variant for a word.
func (m Map) Add(word string, p domain.Pronunciation) {
	w := domain.NormalizeWord(word)
	m[w] = append(m[w], p)
}

// Lookup returns all variants for a lowercase word.
func (m Map) Lookup(word string) ([]domain.Pronunciation, bool) {
	prons, ok := m[word]
	if !ok || len(prons) == 0 {
		return nil, false
	}
	return prons, true
}
