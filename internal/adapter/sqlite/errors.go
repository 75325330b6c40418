package sqlite

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/heartmarshall/poemfactory/internal/domain"
)

// MapError converts driver errors to domain storage errors.
// Context errors pass through. "no such table" / "no such column" mean the
// schema was never migrated and map to domain.ErrSchema.
func MapError(err error, op string) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
		return fmt.Errorf("%s: %w", op, err)
	}

	msg := err.Error()
	if strings.Contains(msg, "no such table") || strings.Contains(msg, "no such column") {
		return fmt.Errorf("%s: %w: %w", op, domain.ErrSchema, err)
	}

	return fmt.Errorf("%s: %w: %w", op, domain.ErrStorage, err)
}
