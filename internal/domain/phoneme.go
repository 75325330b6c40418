package domain

import "strings"

// Phoneme is a single ARPAbet symbol such as "ER1" or "L".
// Vowel phonemes carry a trailing stress digit.
type Phoneme string

// IsVowel reports whether the phoneme ends in a digit.
func (p Phoneme) IsVowel() bool {
	if p == "" {
		return false
	}
	last := p[len(p)-1]
	return last >= '0' && last <= '9'
}

// Base returns the phoneme without its stress digit.
func (p Phoneme) Base() string {
	if p.IsVowel() {
		return string(p[:len(p)-1])
	}
	return string(p)
}

// Pronunciation is an ordered phoneme sequence for one word.
type Pronunciation []Phoneme

// ParsePronunciation splits a whitespace-separated phoneme string.
func ParsePronunciation(s string) Pronunciation {
	fields := strings.Fields(s)
	p := make(Pronunciation, len(fields))
	for i, f := range fields {
		p[i] = Phoneme(strings.ToUpper(f))
	}
	return p
}

// Syllables counts the vowel phonemes.
func (p Pronunciation) Syllables() int {
	n := 0
	for _, ph := range p {
		if ph.IsVowel() {
			n++
		}
	}
	return n
}

// RhymeKey returns the stress-insensitive nucleus+coda of the final vowel,
// e.g. [W ER1 L D] -> "ER L D". Without vowels the phonemes are concatenated.
func (p Pronunciation) RhymeKey() string {
	last := -1
	for i, ph := range p {
		if ph.IsVowel() {
			last = i
		}
	}

	if last < 0 {
		var b strings.Builder
		for _, ph := range p {
			b.WriteString(string(ph))
		}
		return b.String()
	}

	parts := make([]string, 0, len(p)-last)
	parts = append(parts, p[last].Base())
	for _, ph := range p[last+1:] {
		parts = append(parts, string(ph))
	}
	return strings.Join(parts, " ")
}

func (p Pronunciation) String() string {
	parts := make([]string, len(p))
	for i, ph := range p {
		parts[i] = string(ph)
	}
	return strings.Join(parts, " ")
}
