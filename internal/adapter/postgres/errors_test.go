package postgres

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"

	"github.com/heartmarshall/poemfactory/internal/domain"
)

func TestMapError_Nil(t *testing.T) {
	t.Parallel()

	if got := MapError(nil, "count lines"); got != nil {
		t.Errorf("MapError(nil) = %v, want nil", got)
	}
}

func TestMapError_UndefinedTable(t *testing.T) {
	t.Parallel()

	pgErr := &pgconn.PgError{Code: "42P01", Message: `relation "lines" does not exist`}
	got := MapError(pgErr, "count lines")

	if !errors.Is(got, domain.ErrSchema) {
		t.Errorf("MapError(42P01) does not wrap domain.ErrSchema: %v", got)
	}
	if errors.Is(got, domain.ErrStorage) {
		t.Errorf("MapError(42P01) must not wrap domain.ErrStorage: %v", got)
	}

	var target *pgconn.PgError
	if !errors.As(got, &target) {
		t.Error("MapError(42P01) lost the original *pgconn.PgError")
	}
}

func TestMapError_UndefinedColumn(t *testing.T) {
	t.Parallel()

	pgErr := &pgconn.PgError{Code: "42703", Message: "column does not exist"}
	if got := MapError(pgErr, "sample lines"); !errors.Is(got, domain.ErrSchema) {
		t.Errorf("MapError(42703) does not wrap domain.ErrSchema: %v", got)
	}
}

func TestMapError_CheckViolation(t *testing.T) {
	t.Parallel()

	pgErr := &pgconn.PgError{Code: "23514", Message: "check violation"}
	got := MapError(pgErr, "insert lines")

	if !errors.Is(got, domain.ErrStorage) {
		t.Errorf("MapError(23514) does not wrap domain.ErrStorage: %v", got)
	}
}

func TestMapError_ContextErrorsPassThrough(t *testing.T) {
	t.Parallel()

	for _, ctxErr := range []error{context.Canceled, context.DeadlineExceeded} {
		got := MapError(fmt.Errorf("query: %w", ctxErr), "rhyme groups")
		if !errors.Is(got, ctxErr) {
			t.Errorf("MapError(%v) lost the context error: %v", ctxErr, got)
		}
		if errors.Is(got, domain.ErrStorage) {
			t.Errorf("MapError(%v) must not wrap domain.ErrStorage: %v", ctxErr, got)
		}
	}
}

func TestMapError_UnknownError(t *testing.T) {
	t.Parallel()

	original := errors.New("connection refused")
	got := MapError(original, "ping database")

	if !errors.Is(got, domain.ErrStorage) {
		t.Errorf("MapError(unknown) does not wrap domain.ErrStorage: %v", got)
	}
	if !errors.Is(got, original) {
		t.Errorf("MapError(unknown) lost the original error: %v", got)
	}
	if want := "ping database: storage unavailable: connection refused"; got.Error() != want {
		t.Errorf("Error() = %q, want %q", got.Error(), want)
	}
}
