package lines

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/poemfactory/internal/domain"
	"github.com/heartmarshall/poemfactory/pkg/ctxutil"
)

// InsertMany classifies every input and stores the accepted lines as one
// atomic batch. Rejected inputs never abort the batch; they are returned in
// input order. A storage failure stores nothing.
func (s *Service) InsertMany(ctx context.Context, raws []string) (*InsertResult, error) {
	start := time.Now()
	result := &InsertResult{Total: len(raws)}

	now := time.Now().UTC()
	accepted := make([]domain.ClassifiedLine, 0, len(raws))
	for _, raw := range raws {
		line, err := s.classifier.Classify(raw)
		if err != nil {
			var rej domain.Rejection
			if errors.As(err, &rej) {
				result.Rejections = append(result.Rejections, rej)
				continue
			}
			return nil, fmt.Errorf("classify line: %w: %w", domain.ErrInternal, err)
		}
		line.ID = uuid.New()
		line.CreatedAt = now
		accepted = append(accepted, line)
	}

	if len(accepted) > 0 {
		chunkSize := s.chunkSize()
		inserted := 0

		err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
			for chunkStart := 0; chunkStart < len(accepted); chunkStart += chunkSize {
				chunkEnd := min(chunkStart+chunkSize, len(accepted))
				n, err := s.lines.BulkInsert(txCtx, accepted[chunkStart:chunkEnd])
				if err != nil {
					return err
				}
				inserted += n
			}
			return nil
		})
		if err != nil {
			s.log.WarnContext(ctx, "line batch rolled back",
				slog.String("run_id", ctxutil.RunIDString(ctx)),
				slog.Int("accepted", len(accepted)),
				slog.String("error", err.Error()),
			)
			return nil, fmt.Errorf("insert lines: %w", err)
		}
		result.Inserted = inserted
	}

	s.log.InfoContext(ctx, "lines ingested",
		slog.String("run_id", ctxutil.RunIDString(ctx)),
		slog.Int("total", result.Total),
		slog.Int("inserted", result.Inserted),
		slog.Int("rejected", result.Rejected()),
		slog.Duration("duration", time.Since(start)),
	)

	return result, nil
}
