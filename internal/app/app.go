// Package app wires configuration, storage and services into a runnable whole.
package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math/rand/v2"
	"time"

	"github.com/heartmarshall/poemfactory/internal/adapter/memory"
	"github.com/heartmarshall/poemfactory/internal/adapter/postgres"
	pgline "github.com/heartmarshall/poemfactory/internal/adapter/postgres/line"
	"github.com/heartmarshall/poemfactory/internal/adapter/sqlite"
	sqliteline "github.com/heartmarshall/poemfactory/internal/adapter/sqlite/line"
	"github.com/heartmarshall/poemfactory/internal/classifier"
	"github.com/heartmarshall/poemfactory/internal/config"
	"github.com/heartmarshall/poemfactory/internal/domain"
	"github.com/heartmarshall/poemfactory/internal/pronunciation/cmu"
	"github.com/heartmarshall/poemfactory/internal/service/lines"
	"github.com/heartmarshall/poemfactory/internal/service/poem"
)

// lineBackend is everything the lines service needs from one storage engine.
type lineBackend interface {
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

// App holds the wired services. Close releases storage.
type App struct {
	Config     *config.Config
	Log        *slog.Logger
	Dictionary *cmu.Dictionary
	Lines      *lines.Service
	Poems      *poem.Service

	closers []func() error
}

// New loads the pronunciation dictionary, opens and migrates the configured
// store, and builds the services.
func New(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*App, error) {
	a := &App{Config: cfg, Log: logger}

	start := time.Now()
	dict, err := cmu.ParseFile(cfg.Pronunciation.CMUPath)
	if err != nil {
		return nil, fmt.Errorf("load pronunciation dictionary: %w", err)
	}
	stats := dict.Stats()
	logger.InfoContext(ctx, "pronunciation dictionary loaded",
		slog.String("path", cfg.Pronunciation.CMUPath),
		slog.Int("words", stats.UniqueWords),
		slog.Int("parsed_lines", stats.ParsedLines),
		slog.Duration("duration", time.Since(start)),
	)
	a.Dictionary = dict

	seed := cfg.Poem.Seed
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}

	repo, tx, schema, err := a.openStore(ctx, seed)
	if err != nil {
		_ = a.Close()
		return nil, err
	}

	cls := classifier.New(dict)
	a.Lines = lines.NewService(logger, repo, tx, schema, cls, cfg.Store)
	a.Poems = poem.NewService(logger, a.Lines, cls, rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15)))

	return a, nil
}

func (a *App) openStore(ctx context.Context, seed uint64) (lineBackend, txManager, schemaManager, error) {
	cfg := a.Config.Database
	a.Log.InfoContext(ctx, "opening line store", slog.String("driver", cfg.Driver))

	switch cfg.Driver {
	case config.DriverPostgres:
		pool, err := postgres.NewPool(ctx, cfg)
		if err != nil {
			return nil, nil, nil, fmt.Errorf("connect to database: %w", err)
		}
		a.closers = append(a.closers, func() error { pool.Close(); return nil })

		migrator, err := postgres.NewMigrator(pool, a.Log)
		if err != nil {
			return nil, nil, nil, err
		}
		a.closers = append(a.closers, migrator.Close)

		if err := migrator.Up(ctx); err != nil {
			return nil, nil, nil, fmt.Errorf("migrate: %w", err)
		}
		return pgline.New(pool), postgres.NewTxManager(pool), migrator, nil

	case config.DriverSQLite:
		db, err := sqlite.Open(ctx, cfg.DSN)
		if err != nil {
			return nil, nil, nil, fmt.Errorf("open database: %w", err)
		}
		a.closers = append(a.closers, db.Close)

		migrator, err := sqlite.NewMigrator(db, a.Log)
		if err != nil {
			return nil, nil, nil, err
		}
		if err := migrator.Up(ctx); err != nil {
			return nil, nil, nil, fmt.Errorf("migrate: %w", err)
		}
		return sqliteline.New(db), sqlite.NewTxManager(db), migrator, nil

	case config.DriverMemory:
		store := memory.New(rand.New(rand.NewPCG(seed^0xda942042e4dd58b5, seed)))
		return store, store, store, nil

	default:
		return nil, nil, nil, fmt.Errorf("unknown database driver %q", cfg.Driver)
	}
}

// Close releases storage handles in reverse order of acquisition.
func (a *App) Close() error {
	var errs []error
	for i := len(a.closers) - 1; i >= 0; i-- {
		if err := a.closers[i](); err != nil {
			errs = append(errs, err)
		}
	}
	a.closers = nil
	return errors.Join(errs...)
}
