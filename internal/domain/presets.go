package domain

import (
	"maps"
	"slices"
)

// Presets are named rhyme schemes for common short forms.
var Presets = map[string]RhymeScheme{
	"limerick": {
		Pattern:        ParsePattern("AABBA"),
		SyllableRanges: map[string][]int{"A": {7, 8}, "B": {5, 6}},
	},
	"couplet": {
		Pattern:        ParsePattern("AA"),
		SyllableRanges: map[string][]int{"A": {10, 11}},
	},
	"quatrain": {
		Pattern:        ParsePattern("ABAB"),
		SyllableRanges: map[string][]int{"A": {8, 9}, "B": {8, 9}},
	},
	"haiku": {
		Pattern:        ParsePattern("ABC"),
		SyllableRanges: map[string][]int{"A": {5}, "B": {7}, "C": {5}},
	},
}

// PresetNames returns the preset names in sorted order.
func PresetNames() []string {
	return slices.Sorted(maps.Keys(Presets))
}
