package postgres

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"

	"github.com/heartmarshall/poemfactory/internal/domain"
)

// MapError converts pgx/pgconn errors to domain storage errors.
// context.DeadlineExceeded and context.Canceled are NOT mapped; they pass through.
// SQLSTATE class 42 (undefined table/column, syntax) means the schema is not
// what the code expects and maps to domain.ErrSchema; everything else is
// domain.ErrStorage.
func MapError(err error, op string) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
		return fmt.Errorf("%s: %w", op, err)
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && strings.HasPrefix(pgErr.Code, "42") {
		return fmt.Errorf("%s: %w: %w", op, domain.ErrSchema, err)
	}

	return fmt.Errorf("%s: %w: %w", op, domain.ErrStorage, err)
}
