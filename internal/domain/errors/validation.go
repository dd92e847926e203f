package errors

import "net/http"

// ValidationError carries field-level violations in addition to the AppError
// surface. The boundary serializes Fields into the response envelope so
// clients can attach messages to individual inputs.
type ValidationError struct {
	*BaseError
	Fields map[string]string
}

// NewValidationError creates a field-level validation error.
func NewValidationError(fields map[string]string) *ValidationError {
	return &ValidationError{
		BaseError: NewBaseError(
			http.StatusBadRequest,
			"VALIDATION_FAILED",
			"Request validation failed",
			"",
		),
		Fields: fields,
	}
}
