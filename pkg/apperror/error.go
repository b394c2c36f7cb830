package apperror

import (
	"net/http"
	"unicode/utf8"
)

// MaxDetailLength bounds how much of an underlying error is echoed to clients.
const MaxDetailLength = 80

type AppError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
	Err     error  `json:"-"`
	// Detail, when set, is rendered instead of Message (e.g. field errors).
	Detail any `json:"detail,omitempty"`
}

func (e *AppError) Error() string {
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

func New(code int, message string, err error) *AppError {
	return &AppError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}

func NotFound(message string) *AppError {
	return New(http.StatusNotFound, message, nil)
}

// Validation rejects input before any persistence is attempted.
func Validation(detail any) *AppError {
	e := New(http.StatusUnprocessableEntity, "Validation failed", nil)
	e.Detail = detail
	return e
}

// Persistence wraps a failed database write. The message carries a
// truncated description of err.
func Persistence(err error) *AppError {
	return New(http.StatusInternalServerError, "Failed to save message: "+Truncate(errString(err), MaxDetailLength), err)
}

func Internal(err error) *AppError {
	return New(http.StatusInternalServerError, "Internal Server Error", err)
}

// Truncate shortens s to at most n runes.
func Truncate(s string, n int) string {
	if utf8.RuneCountInString(s) <= n {
		return s
	}
	return string([]rune(s)[:n])
}

func errString(err error) string {
	if err == nil {
		return "unknown error"
	}
	return err.Error()
}
