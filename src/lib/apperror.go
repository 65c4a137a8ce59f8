package lib

import (
	"errors"
	"fmt"
	"strings"

	"github.com/gofiber/fiber/v2"
)

var (
	ErrValidation            = errors.New("validation failed")
	ErrNotFound              = errors.New("not found")
	ErrInvalidID             = errors.New("invalid identifier")
	ErrEnrichmentUnavailable = errors.New("enrichment unavailable")
	ErrStore                 = errors.New("store failure")
)

// FieldError is one failed precondition, reported per field.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationError carries the field-level detail for ErrValidation.
type ValidationError struct {
	Fields []FieldError
}

func (e *ValidationError) Error() string {
	parts := make([]string, len(e.Fields))
	for i, f := range e.Fields {
		parts[i] = fmt.Sprintf("%s: %s", f.Field, f.Message)
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

func (e *ValidationError) Unwrap() error { return ErrValidation }

func NewValidationError(fields ...FieldError) error {
	return &ValidationError{Fields: fields}
}

// ToHTTPStatus maps the error taxonomy to response status classes. Validation,
// not-found and malformed identifiers are caller mistakes; enrichment failures
// are reported as the external resource being absent; everything else is a
// server-side failure.
func ToHTTPStatus(err error) int {
	switch {
	case errors.Is(err, ErrValidation), errors.Is(err, ErrInvalidID), errors.Is(err, ErrNotFound):
		return fiber.StatusBadRequest
	case errors.Is(err, ErrEnrichmentUnavailable):
		return fiber.StatusNotFound
	default:
		return fiber.StatusInternalServerError
	}
}
