// Package memory is a process-local line store. It backs the "memory"
// database driver and the assembler's property tests.
package memory

import (
	"context"
	"slices"
	"sync"

	"github.com/heartmarshall/poemfactory/internal/domain"
)

// RandSource is the subset of *rand.Rand the store needs.
type RandSource interface {
	IntN(n int) int
}

type row struct {
	content   string
	syllables int
	rhymeKey  string
}

// Store keeps lines in a slice. Reads take a shared lock; sampling and
// writes serialize on the write lock so the random source is never shared.
type Store struct {
	mu   sync.RWMutex
	rows []row
	rng  RandSource
}

// tx buffers rows inserted under RunInTx until fn succeeds.
type tx struct {
	mu      sync.Mutex
	pending []row
}

type txCtxKey struct{}

// New creates an empty store sampling with rng.
func New(rng RandSource) *Store {
	return &Store{rng: rng}
}

// RunInTx runs fn with a transaction in its context. Rows that BulkInsert
// receives under that context become visible only if fn succeeds.
func (s *Store) RunInTx(ctx context.Context, fn func(ctx context.Context) error) error {
	t := &tx{}
	if err := fn(context.WithValue(ctx, txCtxKey{}, t)); err != nil {
		return err
	}

	t.mu.Lock()
	defer t.mu.Unlock()
	if len(t.pending) == 0 {
		return nil
	}
	s.mu.Lock()
	s.rows = append(s.rows, t.pending...)
	s.mu.Unlock()
	return nil
}

// BulkInsert appends lines, or buffers them when ctx carries a transaction.
func (s *Store) BulkInsert(ctx context.Context, lines []domain.ClassifiedLine) (int, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}

	rows := make([]row, len(lines))
	for i, l := range lines {
		rows[i] = row{content: l.Content, syllables: l.SyllableCount, rhymeKey: l.RhymeKey}
	}

	if t, ok := ctx.Value(txCtxKey{}).(*tx); ok {
		t.mu.Lock()
		t.pending = append(t.pending, rows...)
		t.mu.Unlock()
		return len(lines), nil
	}

	s.mu.Lock()
	s.rows = append(s.rows, rows...)
	s.mu.Unlock()
	return len(lines), nil
}

// RhymeGroupsWithMinCount returns keys with at least minCount lines whose
// syllable count is in syllables, ordered by key.
func (s *Store) RhymeGroupsWithMinCount(ctx context.Context, syllables []int, minCount int) ([]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	s.mu.RLock()
	counts := make(map[string]int)
	for _, r := range s.rows {
		if slices.Contains(syllables, r.syllables) {
			counts[r.rhymeKey]++
		}
	}
	s.mu.RUnlock()

	keys := []string{}
	for k, n := range counts {
		if n >= minCount {
			keys = append(keys, k)
		}
	}
	slices.Sort(keys)
	return keys, nil
}

// SampleLines returns up to limit matching texts, uniformly without replacement.
func (s *Store) SampleLines(ctx context.Context, syllables []int, rhymeKey string, limit int) ([]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	var matches []string
	for _, r := range s.rows {
		if r.rhymeKey == rhymeKey && slices.Contains(syllables, r.syllables) {
			matches = append(matches, r.content)
		}
	}

	n := min(limit, len(matches))
	if n <= 0 {
		return []string{}, nil
	}
	// Partial Fisher-Yates: the first n slots end up a uniform sample.
	for i := range n {
		j := i + s.rng.IntN(len(matches)-i)
		matches[i], matches[j] = matches[j], matches[i]
	}
	return matches[:n], nil
}

// Count returns the number of stored lines.
func (s *Store) Count(ctx context.Context) (int, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.rows), nil
}

// Reset drops every line.
func (s *Store) Reset(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	s.mu.Lock()
	s.rows = nil
	s.mu.Unlock()
	return nil
}
