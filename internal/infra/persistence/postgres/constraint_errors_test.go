package postgres

import (
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"

	domainerrors "foodlog/internal/domain/errors"
	"foodlog/internal/domain/repository"
)

func TestConstraintClassification(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		unique     bool
		foreignKey bool
		check      bool
	}{
		{name: "gorm duplicated key", err: gorm.ErrDuplicatedKey, unique: true},
		{name: "wrapped gorm duplicated key", err: errors.Wrap(gorm.ErrDuplicatedKey, "insert"), unique: true},
		{name: "raw unique violation", err: &pgconn.PgError{Code: "23505"}, unique: true},
		{name: "wrapped raw unique violation", err: errors.Wrap(&pgconn.PgError{Code: "23505"}, "insert"), unique: true},
		{name: "gorm foreign key", err: gorm.ErrForeignKeyViolated, foreignKey: true},
		{name: "raw foreign key violation", err: &pgconn.PgError{Code: "23503"}, foreignKey: true},
		{name: "gorm check", err: gorm.ErrCheckConstraintViolated, check: true},
		{name: "raw check violation", err: &pgconn.PgError{Code: "23514"}, check: true},
		{name: "other sqlstate", err: &pgconn.PgError{Code: "42P01"}},
		{name: "plain error", err: errors.New("duplicate key value violates unique constraint")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.unique, isUniqueConstraintViolation(tt.err))
			assert.Equal(t, tt.foreignKey, isForeignKeyConstraintViolation(tt.err))
			assert.Equal(t, tt.check, isCheckConstraintViolation(tt.err))
		})
	}
}

func TestTranslateWriteError(t *testing.T) {
	assert.Nil(t, translateWriteError(nil, "create food"))
	assert.ErrorIs(t, translateWriteError(gorm.ErrDuplicatedKey, "create food"), repository.ErrDuplicateKey)
	assert.ErrorIs(t, translateWriteError(&pgconn.PgError{Code: "23503"}, "create meal"), repository.ErrReferenceNotFound)

	assert.ErrorIs(t, translateWriteError(gorm.ErrCheckConstraintViolated, "create meal"), domainerrors.ErrValidationFailed)

	err := translateWriteError(errors.New("connection reset"), "create meal")
	var dbErr *domainerrors.DatabaseExecuteError
	assert.ErrorAs(t, err, &dbErr)
	assert.Equal(t, "create meal", dbErr.Details())
	assert.Contains(t, err.Error(), "connection reset")
}
