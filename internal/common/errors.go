package common

import (
	"errors"
	"fmt"
	"net/http"
)

// AppError represents application-specific errors
type AppError struct {
	Code    string
	Message string
	Cause   error
}

func (e *AppError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *AppError) Unwrap() error {
	return e.Cause
}

// Error taxonomy. Classification failures are deliberately absent: the
// classification engine absorbs them and never surfaces an error.
var (
	ErrValidation = errors.New("validation failed")
	ErrNotFound   = errors.New("resource not found")
	ErrUpstream   = errors.New("upstream service error")
	ErrInternal   = errors.New("internal error")
)

// Error constructors
func NewAppError(code, message string, cause error) *AppError {
	return &AppError{
		Code:    code,
		Message: message,
		Cause:   cause,
	}
}

// ValidationError flags bad or missing caller input; fails fast before any
// external call.
func ValidationError(message string) error {
	return NewAppError("VALIDATION_ERROR", message, ErrValidation)
}

func ValidationErrorf(format string, args ...interface{}) error {
	return ValidationError(fmt.Sprintf(format, args...))
}

// NotFoundError flags a missing record or blob.
func NotFoundError(message string) error {
	return NewAppError("NOT_FOUND", message, ErrNotFound)
}

// UpstreamError wraps a failure from an external collaborator (analysis,
// generation call, storage); the underlying message stays attached.
func UpstreamError(message string, cause error) error {
	return NewAppError("UPSTREAM_ERROR", message, fmt.Errorf("%w: %w", ErrUpstream, cause))
}

func WrapError(err error, message string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", message, err)
}

// HTTPStatus maps the error taxonomy to a response status for the thin
// HTTP layer.
func HTTPStatus(err error) int {
	switch {
	case errors.Is(err, ErrValidation):
		return http.StatusBadRequest
	case errors.Is(err, ErrNotFound):
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}
