package main

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/heartmarshall/poemfactory/internal/domain"
)

func TestBuildScheme(t *testing.T) {
	tests := []struct {
		name      string
		preset    string
		pattern   string
		syllables []string
		want      map[string][]int
		wantErr   string
	}{
		{
			name:   "preset",
			preset: "limerick",
			want:   map[string][]int{"A": {7, 8}, "B": {5, 6}},
		},
		{
			name:      "preset override",
			preset:    "limerick",
			syllables: []string{"B=4"},
			want:      map[string][]int{"A": {7, 8}, "B": {4}},
		},
		{
			name:      "custom pattern",
			pattern:   "ABAB",
			syllables: []string{"A=8, 9", "B=6"},
			want:      map[string][]int{"A": {8, 9}, "B": {6}},
		},
		{name: "unknown preset", preset: "sonnet", wantErr: `unknown preset "sonnet"`},
		{name: "bad entry", pattern: "A", syllables: []string{"A"}, wantErr: "want LABEL=N"},
		{name: "bad count", pattern: "A", syllables: []string{"A=x"}, wantErr: `syllables "A=x"`},
		{name: "nothing", wantErr: "required"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := buildScheme(tt.preset, tt.pattern, tt.syllables)
			if tt.wantErr != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got.SyllableRanges)
		})
	}
}

func TestBuildScheme_PresetsAreNotMutated(t *testing.T) {
	_, err := buildScheme("couplet", "", []string{"A=3"})
	require.NoError(t, err)
	assert.Equal(t, []int{10, 11}, domain.Presets["couplet"].SyllableRanges["A"])
}

func TestBuildScheme_MissingLabelIsValidationError(t *testing.T) {
	_, err := buildScheme("", "AB", []string{"A=3"})
	assert.True(t, errors.Is(err, domain.ErrValidation))
}
