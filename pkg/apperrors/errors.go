package apperrors

import (
	stderrors "errors"
	"fmt"
	"net/http"
)

// AppError is the failure half of every operation's result. Handlers return
// either data or an *AppError, never both.
type AppError struct {
	Code     ErrorCode `json:"code"`
	Message  string    `json:"message"`
	Err      error     `json:"-"`
	HTTPCode int       `json:"-"`
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// New creates an AppError without an underlying cause.
func New(code ErrorCode, message string, httpCode int) *AppError {
	return &AppError{Code: code, Message: message, HTTPCode: httpCode}
}

// Wrap attaches an AppError to the error it is translating. The cause is
// carried verbatim for logs and Unwrap, never rendered to clients.
func Wrap(err error, code ErrorCode, message string, httpCode int) *AppError {
	return &AppError{Code: code, Message: message, Err: err, HTTPCode: httpCode}
}

// Common constructors used throughout the handlers.

func NotFound(what string) *AppError {
	return New(CodeNotFound, what+" not found", http.StatusNotFound)
}

func AlreadyExists(what string) *AppError {
	return New(CodeAlreadyExists, what+" already exists", http.StatusConflict)
}

func Conflict(message string) *AppError {
	return New(CodeConflict, message, http.StatusConflict)
}

func Validation(message string) *AppError {
	return New(CodeValidationFailed, message, http.StatusBadRequest)
}

func Unauthorized(message string) *AppError {
	return New(CodeUnauthorized, message, http.StatusUnauthorized)
}

func InvalidCredentials() *AppError {
	return New(CodeInvalidCredentials, "invalid email or password", http.StatusUnauthorized)
}

func Database(err error) *AppError {
	return Wrap(err, CodeDatabaseError, "database operation failed", http.StatusInternalServerError)
}

func Storage(err error) *AppError {
	return Wrap(err, CodeStorageError, "object storage operation failed", http.StatusInternalServerError)
}

func Internal(err error) *AppError {
	return Wrap(err, CodeInternalError, "internal error", http.StatusInternalServerError)
}

// As extracts an *AppError from an error chain.
func As(err error) (*AppError, bool) {
	var appErr *AppError
	if stderrors.As(err, &appErr) {
		return appErr, true
	}
	return nil, false
}
