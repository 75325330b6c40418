// Package lines implements the line store: classification on ingest, atomic
// batch insertion and the grouped/sampled reads the poem assembler needs.
package lines

import (
	"context"
	"log/slog"

	"github.com/heartmarshall/poemfactory/internal/config"
	"github.com/heartmarshall/poemfactory/internal/domain"
)

// ---------------------------------------------------------------------------
// Consumer-defined interfaces (private)
// ---------------------------------------------------------------------------

type lineRepo interface {
	BulkInsert(ctx context.Context, lines []domain.ClassifiedLine) (int, error)
	RhymeGroupsWithMinCount(ctx context.Context, syllables []int, minCount int) ([]string, error)
	SampleLines(ctx context.Context, syllables []int, rhymeKey string, limit int) ([]string, error)
	Count(ctx context.Context) (int, error)
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

type schemaManager interface {
	Reset(ctx context.Context) error
}

type lineClassifier interface {
	Classify(raw string) (domain.ClassifiedLine, error)
}

// ---------------------------------------------------------------------------
// Service
// ---------------------------------------------------------------------------

const defaultInsertChunkSize = 500

// Service implements the line store.
type Service struct {
	log        *slog.Logger
	lines      lineRepo
	tx         txManager
	schema     schemaManager
	classifier lineClassifier
	cfg        config.StoreConfig
}

// NewService creates a new lines service.
func NewService(
	logger *slog.Logger,
	lines lineRepo,
	tx txManager,
	schema schemaManager,
	classifier lineClassifier,
	cfg config.StoreConfig,
) *Service {
	return &Service{
		log:        logger.With("service", "lines"),
		lines:      lines,
		tx:         tx,
		schema:     schema,
		classifier: classifier,
		cfg:        cfg,
	}
}

func (s *Service) chunkSize() int {
	if s.cfg.InsertChunkSize <= 0 {
		return defaultInsertChunkSize
	}
	return s.cfg.InsertChunkSize
}
