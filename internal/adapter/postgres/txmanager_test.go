package postgres_test

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	pgxmock "github.com/pashagolub/pgxmock/v2"

	"github.com/heartmarshall/poemfactory/internal/adapter/postgres"
	"github.com/heartmarshall/poemfactory/internal/adapter/postgres/testhelper"
	"github.com/heartmarshall/poemfactory/internal/domain"
)

const insertLineSQL = `INSERT INTO lines (id, raw_text, syllable_count, rhyme_key) VALUES ($1, $2, $3, $4)`

// lineExists checks whether a line row with the given ID exists in the database.
func lineExists(t *testing.T, pool *pgxpool.Pool, id uuid.UUID) bool {
	t.Helper()
	var exists bool
	err := pool.QueryRow(
		context.Background(),
		`SELECT EXISTS(SELECT 1 FROM lines WHERE id = $1)`,
		id,
	).Scan(&exists)
	if err != nil {
		t.Fatalf("lineExists query: %v", err)
	}
	return exists
}

func TestRunInTx_Commit(t *testing.T) {
	pool := testhelper.SetupTestDB(t)
	tm := postgres.NewTxManager(pool)

	id := uuid.New()

	err := tm.RunInTx(context.Background(), func(ctx context.Context) error {
		q := postgres.QuerierFromCtx(ctx, pool)
		_, err := q.Exec(ctx, insertLineSQL, id, "commit test", 2, "EH S T")
		return err
	})
	if err != nil {
		t.Fatalf("RunInTx returned error: %v", err)
	}

	if !lineExists(t, pool, id) {
		t.Fatal("expected line to exist after committed transaction")
	}
}

func TestRunInTx_RollbackOnError(t *testing.T) {
	pool := testhelper.SetupTestDB(t)
	tm := postgres.NewTxManager(pool)

	id := uuid.New()
	sentinel := errors.New("classification failed")

	err := tm.RunInTx(context.Background(), func(ctx context.Context) error {
		q := postgres.QuerierFromCtx(ctx, pool)
		if _, execErr := q.Exec(ctx, insertLineSQL, id, "rollback test", 3, "EH S T"); execErr != nil {
			t.Fatalf("insert inside tx failed: %v", execErr)
		}
		return sentinel
	})

	if !errors.Is(err, sentinel) {
		t.Fatalf("expected sentinel error, got: %v", err)
	}

	if lineExists(t, pool, id) {
		t.Fatal("expected line NOT to exist after rolled-back transaction")
	}
}

func TestRunInTx_RollbackOnPanic(t *testing.T) {
	pool := testhelper.SetupTestDB(t)
	tm := postgres.NewTxManager(pool)

	id := uuid.New()

	defer func() {
		r := recover()
		if r == nil {
			t.Fatal("expected panic to be re-raised")
		}
		if r != "test panic" {
			t.Fatalf("expected panic value %q, got %v", "test panic", r)
		}

		if lineExists(t, pool, id) {
			t.Fatal("expected line NOT to exist after panic-rolled-back transaction")
		}
	}()

	_ = tm.RunInTx(context.Background(), func(ctx context.Context) error {
		q := postgres.QuerierFromCtx(ctx, pool)
		if _, err := q.Exec(ctx, insertLineSQL, id, "panic test", 2, "EH S T"); err != nil {
			t.Fatalf("insert inside tx failed: %v", err)
		}
		panic("test panic")
	})
}

func TestRunInTx_RollbackOnCheckViolation(t *testing.T) {
	pool := testhelper.SetupTestDB(t)
	tm := postgres.NewTxManager(pool)

	good := uuid.New()

	err := tm.RunInTx(context.Background(), func(ctx context.Context) error {
		q := postgres.QuerierFromCtx(ctx, pool)
		if _, err := q.Exec(ctx, insertLineSQL, good, "fine", 1, "AY N"); err != nil {
			return err
		}
		_, err := q.Exec(ctx, insertLineSQL, uuid.New(), "broken", -1, "AY N")
		return postgres.MapError(err, "insert lines")
	})

	if !errors.Is(err, domain.ErrStorage) {
		t.Fatalf("expected storage error, got: %v", err)
	}
	if lineExists(t, pool, good) {
		t.Fatal("batch must be all-or-nothing")
	}
}

func TestRunInTx_Mock_BeginFailure(t *testing.T) {
	mock, err := pgxmock.NewPool()
	if err != nil {
		t.Fatalf("pgxmock.NewPool: %v", err)
	}
	defer mock.Close()

	mock.ExpectBegin().WillReturnError(errors.New("too many connections"))

	called := false
	err = postgres.NewTxManager(mock).RunInTx(context.Background(), func(context.Context) error {
		called = true
		return nil
	})

	if !errors.Is(err, domain.ErrStorage) {
		t.Errorf("expected storage error, got: %v", err)
	}
	if called {
		t.Error("fn must not run when Begin fails")
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unfulfilled expectations: %v", err)
	}
}

func TestRunInTx_Mock_RollbackOnError(t *testing.T) {
	mock, err := pgxmock.NewPool()
	if err != nil {
		t.Fatalf("pgxmock.NewPool: %v", err)
	}
	defer mock.Close()

	mock.ExpectBegin()
	mock.ExpectRollback()

	sentinel := errors.New("boom")
	err = postgres.NewTxManager(mock).RunInTx(context.Background(), func(context.Context) error {
		return sentinel
	})

	if !errors.Is(err, sentinel) {
		t.Errorf("expected sentinel, got: %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unfulfilled expectations: %v", err)
	}
}

func TestMigrator_Reset(t *testing.T) {
	pool := testhelper.SetupTestDB(t)
	ctx := context.Background()

	id := uuid.New()
	if _, err := pool.Exec(ctx, insertLineSQL, id, "gone soon", 2, "UW N"); err != nil {
		t.Fatalf("insert: %v", err)
	}

	m, err := postgres.NewMigrator(pool, testLogger())
	if err != nil {
		t.Fatalf("NewMigrator: %v", err)
	}
	defer m.Close()

	if err := m.Reset(ctx); err != nil {
		t.Fatalf("Reset: %v", err)
	}

	if lineExists(t, pool, id) {
		t.Fatal("expected table to be empty after reset")
	}
}
