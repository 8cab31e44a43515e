package postgres

import (
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pkg/errors"
	"gorm.io/gorm"

	domainerrors "foodlog/internal/domain/errors"
	"foodlog/internal/domain/repository"
)

// PostgreSQL SQLSTATE codes for integrity constraint violations.
const (
	pgUniqueViolation     = "23505"
	pgForeignKeyViolation = "23503"
	pgCheckViolation      = "23514"
)

// Helper functions for PostgreSQL error checking. GORM translates driver errors when
// TranslateError is on; the raw SQLSTATE is checked as well for untranslated paths such as raw SQL.
func isUniqueConstraintViolation(err error) bool {
	return errors.Is(err, gorm.ErrDuplicatedKey) || hasSQLState(err, pgUniqueViolation)
}

func isForeignKeyConstraintViolation(err error) bool {
	return errors.Is(err, gorm.ErrForeignKeyViolated) || hasSQLState(err, pgForeignKeyViolation)
}

func isCheckConstraintViolation(err error) bool {
	return errors.Is(err, gorm.ErrCheckConstraintViolated) || hasSQLState(err, pgCheckViolation)
}

func hasSQLState(err error, code string) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == code
	}

	return false
}

// translateWriteError maps constraint violations to repository sentinels and wraps anything else.
func translateWriteError(err error, details string) error {
	switch {
	case err == nil:
		return nil
	case isUniqueConstraintViolation(err):
		return errors.Wrap(repository.ErrDuplicateKey, details)
	case isForeignKeyConstraintViolation(err):
		return errors.Wrap(repository.ErrReferenceNotFound, details)
	case isCheckConstraintViolation(err):
		return domainerrors.ErrValidationFailed.WithDetails("value out of range")
	default:
		return domainerrors.NewDatabaseExecuteError(err, details)
	}
}
