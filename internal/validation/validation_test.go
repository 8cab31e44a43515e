package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domainerrors "foodlog/internal/domain/errors"
)

type signup struct {
	Username string `validate:"required,min=3"`
	Password string `json:"pass" validate:"required,min=6"`
}

type portion struct {
	CaloriesPerUnit float64 `validate:"gt=0"`
	UserID          int64   `validate:"required"`
}

func TestValidator_Struct(t *testing.T) {
	v := New()

	assert.NoError(t, v.Struct(signup{Username: "abc", Password: "secret"}))

	err := v.Struct(signup{Username: "ab", Password: ""})
	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "username must be at least 3 characters; pass is required", appErr.Details())
}

func TestValidator_NumericRules(t *testing.T) {
	err := New().Struct(portion{})

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "calories_per_unit must be greater than 0; user_id is required", appErr.Details())
}

func TestToSnakeCase(t *testing.T) {
	tests := map[string]string{
		"Username":        "username",
		"UserID":          "user_id",
		"CaloriesPerUnit": "calories_per_unit",
		"FoodName":        "food_name",
		"ID":              "id",
	}

	for in, want := range tests {
		assert.Equal(t, want, toSnakeCase(in), in)
	}
}
