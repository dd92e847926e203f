// Package validator adapts go-playground/validator to echo's Validator
// interface.
package validator

import (
	"strings"

	"github.com/go-playground/validator/v10"

	domainerrors "storefront/internal/domain/errors"
)

// echoValidator wraps a validator instance for use as echo.Validator.
type echoValidator struct {
	validate *validator.Validate
}

// New creates the request validator.
func New() *echoValidator {
	return &echoValidator{validate: validator.New()}
}

// Validate checks the bound request struct and converts tag violations into a
// field-level ValidationError for the error handler to serialize.
func (v *echoValidator) Validate(i any) error {
	err := v.validate.Struct(i)
	if err == nil {
		return nil
	}

	validationErrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return err
	}

	fields := make(map[string]string, len(validationErrs))
	for _, fieldErr := range validationErrs {
		fields[fieldName(fieldErr)] = violationMessage(fieldErr)
	}

	return domainerrors.NewValidationError(fields)
}

func fieldName(fieldErr validator.FieldError) string {
	// Namespace is "StructName.Field"; drop the struct prefix and lower the
	// first letter to match the JSON casing of the request DTOs.
	name := fieldErr.Field()
	if name == "" {
		return fieldErr.Namespace()
	}

	return strings.ToLower(name[:1]) + name[1:]
}

func violationMessage(fieldErr validator.FieldError) string {
	switch fieldErr.Tag() {
	case "required":
		return "is required"
	case "email":
		return "must be a valid email address"
	case "min":
		return "must be at least " + fieldErr.Param()
	case "max":
		return "must be at most " + fieldErr.Param()
	case "number":
		return "must contain only digits"
	default:
		return "is invalid"
	}
}
