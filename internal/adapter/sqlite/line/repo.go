// Package line implements the line store on SQLite.
package line

import (
	"context"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"

	"github.com/heartmarshall/poemfactory/internal/adapter/sqlite"
	"github.com/heartmarshall/poemfactory/internal/domain"
)

// Repo provides line persistence backed by SQLite.
type Repo struct {
	db sqlite.Querier
}

// New creates a new line repository.
func New(db sqlite.Querier) *Repo {
	return &Repo{db: db}
}

// SQLite binds at most 32766 variables per statement and each row binds
// one per insert column.
const (
	maxVariables     = 32766
	maxRowsPerInsert = maxVariables / 5
)

var insertColumns = []string{"id", "raw_text", "syllable_count", "rhyme_key", "created_at"}

// BulkInsert writes lines with multi-row INSERTs of at most maxRowsPerInsert
// rows. Run it inside a transaction for all-or-nothing semantics.
func (r *Repo) BulkInsert(ctx context.Context, lines []domain.ClassifiedLine) (int, error) {
	inserted := 0
	for start := 0; start < len(lines); start += maxRowsPerInsert {
		end := min(start+maxRowsPerInsert, len(lines))
		n, err := r.insertRows(ctx, lines[start:end])
		if err != nil {
			return inserted, err
		}
		inserted += n
	}
	return inserted, nil
}

func (r *Repo) insertRows(ctx context.Context, lines []domain.ClassifiedLine) (int, error) {
	insert := sq.Insert("lines").Columns(insertColumns...)
	for _, l := range lines {
		insert = insert.Values(l.ID.String(), l.Content, l.SyllableCount, l.RhymeKey, l.CreatedAt.UTC().Format(time.RFC3339Nano))
	}

	sqlStr, args, err := insert.ToSql()
	if err != nil {
		return 0, fmt.Errorf("build insert: %w", err)
	}

	res, err := sqlite.QuerierFromCtx(ctx, r.db).ExecContext(ctx, sqlStr, args...)
	if err != nil {
		return 0, sqlite.MapError(err, "insert lines")
	}

	n, err := res.RowsAffected()
	if err != nil {
		return 0, sqlite.MapError(err, "insert lines")
	}
	return int(n), nil
}

// RhymeGroupsWithMinCount returns the rhyme keys having at least minCount
// lines whose syllable count is in syllables, ordered by key.
func (r *Repo) RhymeGroupsWithMinCount(ctx context.Context, syllables []int, minCount int) ([]string, error) {
	query := sq.
		Select("rhyme_key").
		From("lines").
		Where(sq.Eq{"syllable_count": syllables}).
		GroupBy("rhyme_key").
		Having("COUNT(*) >= ?", minCount).
		OrderBy("rhyme_key")

	return r.queryStrings(ctx, query, "rhyme groups")
}

// SampleLines returns up to limit random line texts with the given rhyme key
// and a syllable count in syllables.
func (r *Repo) SampleLines(ctx context.Context, syllables []int, rhymeKey string, limit int) ([]string, error) {
	if limit <= 0 {
		return []string{}, nil
	}

	query := sq.
		Select("raw_text").
		From("lines").
		Where(sq.Eq{"rhyme_key": rhymeKey}).
		Where(sq.Eq{"syllable_count": syllables}).
		OrderBy("RANDOM()").
		Limit(uint64(limit))

	return r.queryStrings(ctx, query, "sample lines")
}

// Count returns the total number of stored lines.
func (r *Repo) Count(ctx context.Context) (int, error) {
	var n int
	err := sqlite.QuerierFromCtx(ctx, r.db).
		QueryRowContext(ctx, `SELECT COUNT(*) FROM lines`).
		Scan(&n)
	if err != nil {
		return 0, sqlite.MapError(err, "count lines")
	}
	return n, nil
}

func (r *Repo) queryStrings(ctx context.Context, query sq.SelectBuilder, op string) ([]string, error) {
	sqlStr, args, err := query.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build %s query: %w", op, err)
	}

	rows, err := sqlite.QuerierFromCtx(ctx, r.db).QueryContext(ctx, sqlStr, args...)
	if err != nil {
		return nil, sqlite.MapError(err, op)
	}
	defer rows.Close()

	out := []string{}
	for rows.Next() {
		var s string
		if err := rows.Scan(&s); err != nil {
			return nil, sqlite.MapError(err, op)
		}
		out = append(out, s)
	}
	if err := rows.Err(); err != nil {
		return nil, sqlite.MapError(err, op)
	}
	return out, nil
}
