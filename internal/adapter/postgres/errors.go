package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/safetyplan/actionplan/internal/domain"
)

// SQLSTATE codes translated to domain sentinels.
var pgCodeErrors = map[string]error{
	"23505": domain.ErrAlreadyExists, // unique_violation
	"23503": domain.ErrNotFound,      // foreign_key_violation
	"23502": domain.ErrValidation,    // not_null_violation
	"23514": domain.ErrValidation,    // check_violation
	"22P02": domain.ErrValidation,    // invalid_text_representation
	"22007": domain.ErrValidation,    // invalid_datetime_format
	"22008": domain.ErrValidation,    // datetime_field_overflow
	"40001": domain.ErrConflict,      // serialization_failure
}

// MapError wraps err with "<entity> <id>" and, where one applies, the domain
// sentinel. Context errors and unknown driver errors keep their identity.
// An empty id renders as "-".
func MapError(err error, entity, id string) error {
	if err == nil {
		return nil
	}
	if id == "" {
		id = "-"
	}

	switch {
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return fmt.Errorf("%s %s: %w", entity, id, err)
	case errors.Is(err, pgx.ErrNoRows):
		return fmt.Errorf("%s %s: %w", entity, id, domain.ErrNotFound)
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		if sentinel, ok := pgCodeErrors[pgErr.Code]; ok {
			if pgErr.ConstraintName != "" {
				return fmt.Errorf("%s %s: %s: %w", entity, id, pgErr.ConstraintName, sentinel)
			}
			return fmt.Errorf("%s %s: %w", entity, id, sentinel)
		}
	}

	return fmt.Errorf("%s %s: %w", entity, id, err)
}
