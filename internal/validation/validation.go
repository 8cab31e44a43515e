// Package validation checks struct tags with go-playground/validator and
// reports failures as domain validation errors with a readable detail line.
package validation

import (
	"reflect"
	"strings"
	"unicode"

	"github.com/go-playground/validator/v10"
	"github.com/pkg/errors"

	domainerrors "foodlog/internal/domain/errors"
)

// Validator wraps a shared go-playground validator instance.
type Validator struct {
	validate *validator.Validate
}

// New creates a Validator. Field names in messages come from the json tag when present, else snake_case.
func New() *Validator {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(field reflect.StructField) string {
		name, _, _ := strings.Cut(field.Tag.Get("json"), ",")
		switch name {
		case "-":
			return ""
		case "":
			return toSnakeCase(field.Name)
		default:
			return name
		}
	})

	return &Validator{validate: v}
}

// Struct validates s and returns ErrValidationFailed carrying the first failure per field.
func (v *Validator) Struct(s any) error {
	err := v.validate.Struct(s)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return errors.Wrap(err, "validate input")
	}

	messages := make([]string, 0, len(fieldErrs))
	for _, fieldErr := range fieldErrs {
		messages = append(messages, describe(fieldErr))
	}

	return domainerrors.ErrValidationFailed.WithDetails(strings.Join(messages, "; "))
}

func describe(fieldErr validator.FieldError) string {
	field := fieldErr.Field()

	switch fieldErr.Tag() {
	case "required":
		return field + " is required"
	case "min":
		if fieldErr.Kind() == reflect.String {
			return field + " must be at least " + fieldErr.Param() + " characters"
		}

		return field + " must be at least " + fieldErr.Param()
	case "gt":
		return field + " must be greater than " + fieldErr.Param()
	case "email":
		return field + " must be a valid email address"
	default:
		return field + " failed " + fieldErr.Tag() + " validation"
	}
}

func toSnakeCase(name string) string {
	var b strings.Builder
	b.Grow(len(name) + 4)

	runes := []rune(name)
	for i, r := range runes {
		if unicode.IsUpper(r) {
			// Break before an upper-case rune that starts a new word: "UserID" -> "user_id".
			if i > 0 && (unicode.IsLower(runes[i-1]) || (i+1 < len(runes) && unicode.IsLower(runes[i+1]))) {
				b.WriteByte('_')
			}
			r = unicode.ToLower(r)
		}
		b.WriteRune(r)
	}

	return b.String()
}
