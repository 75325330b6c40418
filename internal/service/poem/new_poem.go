package poem

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/heartmarshall/poemfactory/internal/domain"
	"github.com/heartmarshall/poemfactory/pkg/ctxutil"
)

// NewPoem assembles a poem for scheme. An invalid scheme fails before any
// store access. A label with no rhyme group large enough fails with
// *domain.ResourceExhaustedError.
func (s *Service) NewPoem(ctx context.Context, scheme domain.RhymeScheme, title, author string) (domain.Poem, error) {
	start := time.Now()

	if err := scheme.Validate(); err != nil {
		return domain.Poem{}, err
	}

	labels := scheme.Labels()
	required := scheme.RequiredCounts()

	// Group queries are independent reads; run them together.
	groups := make([][]string, len(labels))
	g, gctx := errgroup.WithContext(ctx)
	for i, label := range labels {
		g.Go(func() error {
			keys, err := s.store.RhymeGroupsWithMinCount(gctx, scheme.Syllables(label), required[label])
			if err != nil {
				return fmt.Errorf("rhyme groups for label %q: %w", label, err)
			}
			groups[i] = keys
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return domain.Poem{}, err
	}

	// Draws happen in label order so a seeded source is reproducible.
	chosen := make(map[string]string, len(labels))
	for i, label := range labels {
		if len(groups[i]) == 0 {
			return domain.Poem{}, exhausted(scheme, label, required[label])
		}
		chosen[label] = groups[i][s.pick(len(groups[i]))]
	}

	pools := make(map[string][]domain.ClassifiedLine, len(labels))
	for _, label := range labels {
		texts, err := s.store.SampleLines(ctx, scheme.Syllables(label), chosen[label], required[label])
		if err != nil {
			return domain.Poem{}, fmt.Errorf("sample lines for label %q: %w", label, err)
		}
		// The group held enough lines a moment ago; a concurrent reset can still empty it.
		if len(texts) < required[label] {
			return domain.Poem{}, exhausted(scheme, label, required[label])
		}

		pool := make([]domain.ClassifiedLine, len(texts))
		for i, text := range texts {
			line, err := s.classifier.Classify(text)
			if err != nil {
				return domain.Poem{}, fmt.Errorf("reclassify stored line %q: %w: %w", text, domain.ErrInternal, err)
			}
			pool[i] = line
		}
		pools[label] = pool
	}

	lines := make([]domain.ClassifiedLine, 0, len(scheme.Pattern))
	for _, label := range scheme.Pattern {
		pool := pools[label]
		lines = append(lines, pool[len(pool)-1])
		pools[label] = pool[:len(pool)-1]
	}

	s.log.InfoContext(ctx, "poem assembled",
		slog.String("run_id", ctxutil.RunIDString(ctx)),
		slog.String("pattern", strings.Join(scheme.Pattern, "")),
		slog.Int("lines", len(lines)),
		slog.Duration("duration", time.Since(start)),
	)

	return domain.NewPoem(lines, title, author), nil
}

func exhausted(scheme domain.RhymeScheme, label string, required int) error {
	return &domain.ResourceExhaustedError{
		Label:     label,
		Required:  required,
		Syllables: scheme.Syllables(label),
	}
}
