package apperr

import (
	"errors"
	"fmt"
	"net/http"
)

// Error codes surfaced to API clients.
const (
	CodeValidation   = "VALIDATION_ERROR"
	CodeNotFound     = "RESOURCE_NOT_FOUND"
	CodeInvalidState = "INVALID_STATE"
	CodeConflict     = "CONFLICT"
	CodeUnauthorized = "UNAUTHORIZED"
	CodeInternal     = "INTERNAL_ERROR"
)

// AppError is an application error with a stable code and an HTTP status.
type AppError struct {
	Code       string `json:"code"`
	Message    string `json:"message"`
	HTTPStatus int    `json:"-"`
	Err        error  `json:"-"`
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// Wrap attaches a cause to the error.
func (e *AppError) Wrap(err error) *AppError {
	e.Err = err
	return e
}

func New(code, message string, status int) *AppError {
	return &AppError{Code: code, Message: message, HTTPStatus: status}
}

// Validation reports malformed input. The operation had no side effects.
func Validation(format string, args ...interface{}) *AppError {
	return New(CodeValidation, fmt.Sprintf(format, args...), http.StatusBadRequest)
}

// NotFound reports a missing resource, e.g. NotFound("transfer", 12).
func NotFound(resource string, id interface{}) *AppError {
	return New(CodeNotFound, fmt.Sprintf("%s %v not found", resource, id), http.StatusNotFound)
}

// InvalidState reports an operation attempted from a status that forbids it.
func InvalidState(format string, args ...interface{}) *AppError {
	return New(CodeInvalidState, fmt.Sprintf(format, args...), http.StatusConflict)
}

// Conflict reports a uniqueness violation (duplicate code / UID).
func Conflict(format string, args ...interface{}) *AppError {
	return New(CodeConflict, fmt.Sprintf(format, args...), http.StatusConflict)
}

func Unauthorized(message string) *AppError {
	if message == "" {
		message = "authentication required"
	}
	return New(CodeUnauthorized, message, http.StatusUnauthorized)
}

// Internal wraps a persistence or infrastructure failure.
func Internal(err error) *AppError {
	return New(CodeInternal, "internal error", http.StatusInternalServerError).Wrap(err)
}

// From returns err as an *AppError, wrapping unknown errors as internal.
func From(err error) *AppError {
	var ae *AppError
	if errors.As(err, &ae) {
		return ae
	}
	return Internal(err)
}

// Is reports whether err is an AppError with the given code.
func Is(err error, code string) bool {
	var ae *AppError
	return errors.As(err, &ae) && ae.Code == code
}
