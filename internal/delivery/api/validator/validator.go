// Package validator adapts the shared struct validator to echo.
package validator

import (
	"foodlog/internal/validation"

	"github.com/labstack/echo/v4"
)

type echoValidator struct {
	validator *validation.Validator
}

// New returns an echo.Validator whose failures are ErrValidationFailed app errors.
func New() echo.Validator {
	return &echoValidator{validator: validation.New()}
}

func (v *echoValidator) Validate(i any) error {
	return v.validator.Struct(i)
}
