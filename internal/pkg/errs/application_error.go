package errs

import (
	"fmt"
	"net/http"
)

// Sentinel errors for classification with errors.Is.
var (
	ErrApplication  = fmt.Errorf("application error")
	ErrUnauthorized = fmt.Errorf("unauthorized")
)

// ApplicationError wraps unexpected collaborator failures with a
// human-readable message and an optional explicit status code.
// When no code is supplied the error defaults to HTTP 500 semantics.
type ApplicationError struct {
	Message string
	Code    int
	Cause   error
}

// NewApplicationError creates an ApplicationError with the default code (500).
func NewApplicationError(message string) *ApplicationError {
	return &ApplicationError{Message: message, Code: http.StatusInternalServerError}
}

// NewApplicationErrorWithCause creates an ApplicationError with the default
// code (500) wrapping an underlying cause.
func NewApplicationErrorWithCause(message string, cause error) *ApplicationError {
	return &ApplicationError{Message: message, Code: http.StatusInternalServerError, Cause: cause}
}

// NewApplicationErrorWithCode creates an ApplicationError carrying an explicit
// status code supplied by the failing collaborator.
func NewApplicationErrorWithCode(message string, code int, cause error) *ApplicationError {
	if code == 0 {
		code = http.StatusInternalServerError
	}
	return &ApplicationError{Message: message, Code: code, Cause: cause}
}

func (e *ApplicationError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (cause: %s)", ErrApplication, sanitize(e.Message), sanitize(e.Cause.Error()))
	}
	return fmt.Sprintf("%s: %s", ErrApplication, sanitize(e.Message))
}

func (e *ApplicationError) Unwrap() error {
	return ErrApplication
}

// UnauthorizedError indicates a failed credential check, such as an invalid
// signature or an expired session token.
type UnauthorizedError struct {
	Message string
	Cause   error
}

// NewUnauthorizedError creates an UnauthorizedError with the given message.
func NewUnauthorizedError(message string) *UnauthorizedError {
	return &UnauthorizedError{Message: message}
}

// NewUnauthorizedErrorWithCause creates an UnauthorizedError wrapping an underlying cause.
func NewUnauthorizedErrorWithCause(message string, cause error) *UnauthorizedError {
	return &UnauthorizedError{Message: message, Cause: cause}
}

func (e *UnauthorizedError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (cause: %s)", ErrUnauthorized, sanitize(e.Message), sanitize(e.Cause.Error()))
	}
	return fmt.Sprintf("%s: %s", ErrUnauthorized, sanitize(e.Message))
}

func (e *UnauthorizedError) Unwrap() error {
	return ErrUnauthorized
}
