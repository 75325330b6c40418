// Package poem assembles poems from the line store according to a rhyme scheme.
package poem

import (
	"context"
	"log/slog"
	"sync"

	"github.com/heartmarshall/poemfactory/internal/domain"
)

// ---------------------------------------------------------------------------
// Consumer-defined interfaces (private)
// ---------------------------------------------------------------------------

type lineStore interface {
	RhymeGroupsWithMinCount(ctx context.Context, syllables []int, minCount int) ([]string, error)
	SampleLines(ctx context.Context, syllables []int, rhymeKey string, count int) ([]string, error)
}

type lineClassifier interface {
	Classify(raw string) (domain.ClassifiedLine, error)
}

// RandSource picks rhyme groups. *rand.Rand from math/rand/v2 satisfies it.
type RandSource interface {
	IntN(n int) int
}

// ---------------------------------------------------------------------------
// Service
// ---------------------------------------------------------------------------

// Service implements the poem assembler. It holds no per-call state and is
// safe for concurrent use.
type Service struct {
	log        *slog.Logger
	store      lineStore
	classifier lineClassifier

	rngMu sync.Mutex
	rng   RandSource
}

// NewService creates a new poem service.
func NewService(logger *slog.Logger, store lineStore, classifier lineClassifier, rng RandSource) *Service {
	return &Service{
		log:        logger.With("service", "poem"),
		store:      store,
		classifier: classifier,
		rng:        rng,
	}
}

func (s *Service) pick(n int) int {
	s.rngMu.Lock()
	defer s.rngMu.Unlock()
	return s.rng.IntN(n)
}
