// Package sqlite provides the embedded single-file store on modernc.org/sqlite.
// It mirrors the postgres adapter: a context-carried transaction, a goose
// migrator and error mapping onto the domain storage sentinels.
package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	_ "modernc.org/sqlite" // registers the "sqlite" database/sql driver
)

// Open opens (creating if needed) the database file at path.
// The pool holds a single connection so ":memory:" databases are shared
// across calls and writers never contend.
func Open(ctx context.Context, path string) (*sql.DB, error) {
	if path != ":memory:" {
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			return nil, fmt.Errorf("create database directory: %w", err)
		}
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	db.SetMaxOpenConns(1)

	for _, pragma := range []string{
		`PRAGMA busy_timeout = 5000`,
		`PRAGMA journal_mode = WAL`,
	} {
		if _, err := db.ExecContext(ctx, pragma); err != nil {
			db.Close()
			return nil, MapError(err, "apply pragma")
		}
	}

	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, MapError(err, "ping database")
	}

	return db, nil
}
