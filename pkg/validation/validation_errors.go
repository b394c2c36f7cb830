package validation

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

// FieldError describes one violated constraint.
type FieldError struct {
	Field   string `json:"field"`
	Rule    string `json:"rule"`
	Param   string `json:"param,omitempty"`
	Message string `json:"message"`
}

// Error is returned when input fails validation. It lists every violation.
type Error struct {
	Fields []FieldError
}

func (e *Error) Error() string {
	msgs := make([]string, len(e.Fields))
	for i, f := range e.Fields {
		msgs[i] = f.Message
	}
	return "validation failed: " + strings.Join(msgs, "; ")
}

// Malformed reports a request body that could not be decoded.
func Malformed(err error) *Error {
	return &Error{Fields: []FieldError{{
		Field:   "body",
		Rule:    "json",
		Message: fmt.Sprintf("body: invalid JSON (%v)", err),
	}}}
}

func newFieldError(e validator.FieldError) FieldError {
	return FieldError{
		Field:   e.Field(),
		Rule:    e.Tag(),
		Param:   e.Param(),
		Message: formatSingleError(e),
	}
}

// formatSingleError formats a single validation error to a user-friendly message
func formatSingleError(e validator.FieldError) string {
	field := e.Field()
	param := e.Param()

	switch e.Tag() {
	case "required":
		return fmt.Sprintf("%s: field required", field)
	case "min":
		return fmt.Sprintf("%s: must be at least %s characters", field, param)
	case "max":
		return fmt.Sprintf("%s: must be at most %s characters", field, param)
	case "email":
		return fmt.Sprintf("%s: not a valid email address", field)
	default:
		return fmt.Sprintf("%s: failed %s validation", field, e.Tag())
	}
}
