package lines

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/heartmarshall/poemfactory/internal/domain"
	"github.com/heartmarshall/poemfactory/pkg/ctxutil"
)

// RhymeGroupsWithMinCount returns every rhyme key that has at least minCount
// lines whose syllable count is in syllables.
func (s *Service) RhymeGroupsWithMinCount(ctx context.Context, syllables []int, minCount int) ([]string, error) {
	var errs []domain.FieldError
	if len(syllables) == 0 {
		errs = append(errs, domain.FieldError{Field: "syllables", Message: "must not be empty"})
	}
	if minCount < 0 {
		errs = append(errs, domain.FieldError{Field: "min_count", Message: "must be non-negative"})
	}
	if len(errs) > 0 {
		return nil, domain.NewValidationErrors(errs)
	}

	keys, err := s.lines.RhymeGroupsWithMinCount(ctx, syllables, minCount)
	if err != nil {
		return nil, fmt.Errorf("rhyme groups: %w", err)
	}
	return keys, nil
}

// SampleLines returns up to count random line texts sharing rhymeKey with a
// syllable count in syllables. Returning fewer than count is not an error.
func (s *Service) SampleLines(ctx context.Context, syllables []int, rhymeKey string, count int) ([]string, error) {
	var errs []domain.FieldError
	if len(syllables) == 0 {
		errs = append(errs, domain.FieldError{Field: "syllables", Message: "must not be empty"})
	}
	if count < 0 {
		errs = append(errs, domain.FieldError{Field: "count", Message: "must be non-negative"})
	}
	if len(errs) > 0 {
		return nil, domain.NewValidationErrors(errs)
	}

	if count == 0 {
		return []string{}, nil
	}

	texts, err := s.lines.SampleLines(ctx, syllables, rhymeKey, count)
	if err != nil {
		return nil, fmt.Errorf("sample lines: %w", err)
	}
	return texts, nil
}

// Count returns the number of stored lines.
func (s *Service) Count(ctx context.Context) (int, error) {
	n, err := s.lines.Count(ctx)
	if err != nil {
		return 0, fmt.Errorf("count lines: %w", err)
	}
	return n, nil
}

// Reset drops and recreates the schema, discarding every stored line.
func (s *Service) Reset(ctx context.Context) error {
	if err := s.schema.Reset(ctx); err != nil {
		return fmt.Errorf("reset store: %w", err)
	}
	s.log.InfoContext(ctx, "line store reset", slog.String("run_id", ctxutil.RunIDString(ctx)))
	return nil
}
