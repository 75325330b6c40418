package domain

import (
	"slices"
)

// RhymeScheme describes a poem's structure: an ordered pattern of group
// labels plus the syllable counts each label accepts.
type RhymeScheme struct {
	Pattern        []string
	SyllableRanges map[string][]int
}

// ParsePattern splits a pattern such as "AABBA" into one label per rune.
func ParsePattern(s string) []string {
	labels := make([]string, 0, len(s))
	for _, r := range s {
		labels = append(labels, string(r))
	}
	return labels
}

// NewRhymeScheme builds and validates a scheme from a pattern string.
func NewRhymeScheme(pattern string, ranges map[string][]int) (RhymeScheme, error) {
	s := RhymeScheme{Pattern: ParsePattern(pattern), SyllableRanges: ranges}
	if err := s.Validate(); err != nil {
		return RhymeScheme{}, err
	}
	return s, nil
}

// Validate checks all labels and collects all errors.
func (s RhymeScheme) Validate() error {
	if len(s.Pattern) == 0 {
		return NewValidationError("pattern", "must not be empty")
	}

	var errs []FieldError
	for _, label := range s.Labels() {
		field := "syllable_ranges." + label
		counts, ok := s.SyllableRanges[label]
		if !ok {
			errs = append(errs, FieldError{Field: field, Message: "missing for label in pattern"})
			continue
		}
		if len(counts) == 0 {
			errs = append(errs, FieldError{Field: field, Message: "must not be empty"})
			continue
		}
		if slices.Min(counts) < 0 {
			errs = append(errs, FieldError{Field: field, Message: "syllable counts must be non-negative"})
		}
	}

	if len(errs) > 0 {
		return NewValidationErrors(errs)
	}
	return nil
}

// Labels returns the distinct labels in order of first appearance.
func (s RhymeScheme) Labels() []string {
	seen := make(map[string]bool, len(s.Pattern))
	var labels []string
	for _, l := range s.Pattern {
		if !seen[l] {
			seen[l] = true
			labels = append(labels, l)
		}
	}
	return labels
}

// RequiredCounts returns how many times each label occurs in the pattern.
func (s RhymeScheme) RequiredCounts() map[string]int {
	counts := make(map[string]int, len(s.Pattern))
	for _, l := range s.Pattern {
		counts[l]++
	}
	return counts
}

// Syllables returns the sorted, de-duplicated syllable set for a label.
func (s RhymeScheme) Syllables(label string) []int {
	out := slices.Clone(s.SyllableRanges[label])
	slices.Sort(out)
	return slices.Compact(out)
}
