package main

import (
	"fmt"
	"maps"
	"strconv"
	"strings"

	"github.com/heartmarshall/poemfactory/internal/domain"
)

// buildScheme resolves compose flags into a validated rhyme scheme.
// --syllables entries override a preset's ranges label by label.
func buildScheme(preset, pattern string, syllables []string) (domain.RhymeScheme, error) {
	ranges, err := parseSyllables(syllables)
	if err != nil {
		return domain.RhymeScheme{}, err
	}

	switch {
	case preset != "":
		base, ok := domain.Presets[preset]
		if !ok {
			return domain.RhymeScheme{}, fmt.Errorf("unknown preset %q (known: %s)", preset, strings.Join(domain.PresetNames(), ", "))
		}
		merged := maps.Clone(base.SyllableRanges)
		maps.Copy(merged, ranges)
		return domain.NewRhymeScheme(strings.Join(base.Pattern, ""), merged)
	case pattern != "":
		return domain.NewRhymeScheme(pattern, ranges)
	default:
		return domain.RhymeScheme{}, fmt.Errorf("one of --preset or --pattern is required")
	}
}

// parseSyllables parses entries like "A=7,8".
func parseSyllables(entries []string) (map[string][]int, error) {
	ranges := make(map[string][]int, len(entries))
	for _, entry := range entries {
		label, list, ok := strings.Cut(entry, "=")
		label = strings.TrimSpace(label)
		if !ok || label == "" {
			return nil, fmt.Errorf("syllables %q: want LABEL=N[,N...]", entry)
		}

		var counts []int
		for _, f := range strings.Split(list, ",") {
			n, err := strconv.Atoi(strings.TrimSpace(f))
			if err != nil {
				return nil, fmt.Errorf("syllables %q: %w", entry, err)
			}
			counts = append(counts, n)
		}
		ranges[label] = counts
	}
	return ranges, nil
}
