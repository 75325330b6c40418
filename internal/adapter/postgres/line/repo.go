// Package line implements the line store on PostgreSQL.
// Inserts use pgx.Batch; the grouped and sampled reads are built with squirrel
// because the syllable set is a variable-length IN list.
package line

import (
	"context"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"

	postgres "github.com/heartmarshall/poemfactory/internal/adapter/postgres"
	"github.com/heartmarshall/poemfactory/internal/domain"
)

const insertSQL = `
INSERT INTO lines (id, raw_text, syllable_count, rhyme_key, created_at)
VALUES ($1, $2, $3, $4, $5)`

var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

// Repo provides line persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new line repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

// BulkInsert queues every line in one pgx.Batch. Atomicity comes from the
// caller's transaction (see TxManager); outside a transaction the batch runs
// in an implicit one.
// Returns the number of inserted rows.
func (r *Repo) BulkInsert(ctx context.Context, lines []domain.ClassifiedLine) (int, error) {
	if len(lines) == 0 {
		return 0, nil
	}

	batch := &pgx.Batch{}
	for _, l := range lines {
		batch.Queue(insertSQL, l.ID, l.Content, l.SyllableCount, l.RhymeKey, l.CreatedAt)
	}

	n, err := r.sendBatchExec(ctx, batch)
	if err != nil {
		return n, postgres.MapError(err, "insert lines")
	}
	return n, nil
}

// RhymeGroupsWithMinCount returns the rhyme keys having at least minCount
// lines whose syllable count is in syllables, ordered by key.
func (r *Repo) RhymeGroupsWithMinCount(ctx context.Context, syllables []int, minCount int) ([]string, error) {
	query := psql.
		Select("rhyme_key").
		From("lines").
		Where(sq.Eq{"syllable_count": syllables}).
		GroupBy("rhyme_key").
		Having("COUNT(*) >= ?", minCount).
		OrderBy("rhyme_key")

	sqlStr, args, err := query.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build rhyme groups query: %w", err)
	}

	rows, err := postgres.QuerierFromCtx(ctx, r.db).Query(ctx, sqlStr, args...)
	if err != nil {
		return nil, postgres.MapError(err, "rhyme groups")
	}

	keys, err := pgx.CollectRows(rows, pgx.RowTo[string])
	if err != nil {
		return nil, postgres.MapError(err, "rhyme groups")
	}
	return keys, nil
}

// SampleLines returns up to limit random line texts with the given rhyme key
// and a syllable count in syllables. Fewer rows than limit is not an error.
func (r *Repo) SampleLines(ctx context.Context, syllables []int, rhymeKey string, limit int) ([]string, error) {
	if limit <= 0 {
		return []string{}, nil
	}

	query := psql.
		Select("raw_text").
		From("lines").
		Where(sq.Eq{"rhyme_key": rhymeKey}).
		Where(sq.Eq{"syllable_count": syllables}).
		OrderBy("random()").
		Limit(uint64(limit))

	sqlStr, args, err := query.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build sample query: %w", err)
	}

	rows, err := postgres.QuerierFromCtx(ctx, r.db).Query(ctx, sqlStr, args...)
	if err != nil {
		return nil, postgres.MapError(err, "sample lines")
	}

	texts, err := pgx.CollectRows(rows, pgx.RowTo[string])
	if err != nil {
		return nil, postgres.MapError(err, "sample lines")
	}
	return texts, nil
}

// Count returns the total number of stored lines.
func (r *Repo) Count(ctx context.Context) (int, error) {
	var n int
	err := postgres.QuerierFromCtx(ctx, r.db).
		QueryRow(ctx, `SELECT COUNT(*) FROM lines`).
		Scan(&n)
	if err != nil {
		return 0, postgres.MapError(err, "count lines")
	}
	return n, nil
}

// sendBatchExec sends a pgx.Batch and counts affected rows from Exec results.
func (r *Repo) sendBatchExec(ctx context.Context, batch *pgx.Batch) (int, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)
	results := q.SendBatch(ctx, batch)
	defer results.Close()

	var inserted int
	for range batch.Len() {
		tag, err := results.Exec()
		if err != nil {
			return inserted, fmt.Errorf("batch exec: %w", err)
		}
		inserted += int(tag.RowsAffected())
	}

	return inserted, nil
}
