package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"

	"github.com/pressly/goose/v3"

	"github.com/heartmarshall/poemfactory/migrations"
)

// Migrator applies and resets the schema with goose.
type Migrator struct {
	provider *goose.Provider
	log      *slog.Logger
}

// NewMigrator creates a goose provider over the embedded SQLite migrations.
func NewMigrator(db *sql.DB, log *slog.Logger) (*Migrator, error) {
	provider, err := goose.NewProvider(goose.DialectSQLite3, db, migrations.SQLite())
	if err != nil {
		return nil, fmt.Errorf("goose new provider: %w", err)
	}
	return &Migrator{provider: provider, log: log.With("component", "migrator")}, nil
}

// Up applies all pending migrations.
func (m *Migrator) Up(ctx context.Context) error {
	results, err := m.provider.Up(ctx)
	if err != nil {
		return MapError(err, "goose up")
	}
	for _, r := range results {
		m.log.InfoContext(ctx, "migration applied",
			slog.Int64("version", r.Source.Version),
			slog.Duration("duration", r.Duration),
		)
	}
	return nil
}

// Reset migrates down to zero and back up, leaving an empty lines table.
func (m *Migrator) Reset(ctx context.Context) error {
	if _, err := m.provider.DownTo(ctx, 0); err != nil {
		return MapError(err, "goose down")
	}
	return m.Up(ctx)
}
