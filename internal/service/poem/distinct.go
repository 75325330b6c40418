package poem

import (
	"context"
	"log/slog"

	"github.com/heartmarshall/poemfactory/internal/domain"
	"github.com/heartmarshall/poemfactory/pkg/ctxutil"
)

// NewDistinctPoem calls NewPoem up to retries times and returns the first
// poem whose lines all end in different words. If none qualifies, the last
// poem is returned. Any NewPoem error ends the loop.
func (s *Service) NewDistinctPoem(ctx context.Context, scheme domain.RhymeScheme, title, author string, retries int) (domain.Poem, error) {
	retries = max(retries, 1)

	var p domain.Poem
	for attempt := 1; attempt <= retries; attempt++ {
		var err error
		p, err = s.NewPoem(ctx, scheme, title, author)
		if err != nil {
			return domain.Poem{}, err
		}
		if p.HasDistinctEndWords() {
			return p, nil
		}
		s.log.DebugContext(ctx, "poem repeats an end word, retrying",
			slog.String("run_id", ctxutil.RunIDString(ctx)),
			slog.Int("attempt", attempt),
			slog.Any("end_words", p.EndWords()),
		)
	}

	s.log.WarnContext(ctx, "no poem with distinct end words",
		slog.String("run_id", ctxutil.RunIDString(ctx)),
		slog.Int("retries", retries),
	)
	return p, nil
}
