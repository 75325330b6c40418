package testhelper

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/heartmarshall/poemfactory/internal/domain"
)

// SeedLine inserts one classified line directly, bypassing the repository.
// Tokens and pronunciations are not stored and stay empty.
func SeedLine(t *testing.T, pool *pgxpool.Pool, content string, syllables int, rhymeKey string) domain.ClassifiedLine {
	t.Helper()

	l := domain.ClassifiedLine{
		ID:            uuid.New(),
		Content:       content,
		SyllableCount: syllables,
		RhymeKey:      rhymeKey,
		CreatedAt:     time.Now().UTC().Truncate(time.Microsecond),
	}

	_, err := pool.Exec(context.Background(),
		`INSERT INTO lines (id, raw_text, syllable_count, rhyme_key, created_at)
		 VALUES ($1, $2, $3, $4, $5)`,
		l.ID, l.Content, l.SyllableCount, l.RhymeKey, l.CreatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedLine: %v", err)
	}

	return l
}

// SeedGroup inserts n lines sharing a syllable count and rhyme key.
func SeedGroup(t *testing.T, pool *pgxpool.Pool, n, syllables int, rhymeKey string) []domain.ClassifiedLine {
	t.Helper()

	out := make([]domain.ClassifiedLine, n)
	for i := range n {
		out[i] = SeedLine(t, pool, rhymeKey+" line "+uuid.New().String()[:8], syllables, rhymeKey)
	}
	return out
}
