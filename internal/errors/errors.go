// Package errors provides custom error types for the Spendbook API.
// All service-layer errors should use AppError to ensure consistent,
// secure error responses that never leak internal details to clients.
package errors

import "net/http"

// AppError represents a structured application error with an error code,
// human-readable message, HTTP status code, and optional internal error.
type AppError struct {
	Code       string `json:"code"`
	Message    string `json:"message"`
	StatusCode int    `json:"-"`
	Internal   error  `json:"-"`
}

// Error implements the error interface.
func (e *AppError) Error() string { return e.Message }

// Unwrap returns the internal error for use with errors.Is/As.
func (e *AppError) Unwrap() error { return e.Internal }

// Wrap creates a new AppError with the same code/message/status but wraps an internal error.
func Wrap(sentinel *AppError, internal error) *AppError {
	return &AppError{
		Code:       sentinel.Code,
		Message:    sentinel.Message,
		StatusCode: sentinel.StatusCode,
		Internal:   internal,
	}
}

// WithMessage creates a new AppError with a custom message.
func WithMessage(sentinel *AppError, message string) *AppError {
	return &AppError{
		Code:       sentinel.Code,
		Message:    message,
		StatusCode: sentinel.StatusCode,
		Internal:   sentinel.Internal,
	}
}

// Authentication errors. Token errors are kept distinct so the client
// can tell a missing credential from a stale or malformed one, while
// ErrInvalidCredentials deliberately covers both an unknown name and a
// wrong password to prevent user enumeration.
var (
	ErrTokenMissing       = &AppError{Code: "TOKEN_MISSING", Message: "Request does not contain an access token", StatusCode: http.StatusUnauthorized}
	ErrTokenExpired       = &AppError{Code: "TOKEN_EXPIRED", Message: "The token has expired", StatusCode: http.StatusUnauthorized}
	ErrTokenInvalid       = &AppError{Code: "TOKEN_INVALID", Message: "Invalid access token", StatusCode: http.StatusUnauthorized}
	ErrInvalidCredentials = &AppError{Code: "INVALID_CREDENTIALS", Message: "Invalid credentials", StatusCode: http.StatusUnauthorized}
	ErrUnauthorized       = &AppError{Code: "UNAUTHORIZED", Message: "Authentication required", StatusCode: http.StatusUnauthorized}
)

// General errors.
var (
	ErrInvalidInput   = &AppError{Code: "INVALID_INPUT", Message: "Invalid input", StatusCode: http.StatusBadRequest}
	ErrInternalServer = &AppError{Code: "INTERNAL_ERROR", Message: "An internal error occurred", StatusCode: http.StatusInternalServerError}
)

// User errors.
var (
	ErrUserNotFound  = &AppError{Code: "USER_NOT_FOUND", Message: "User not found", StatusCode: http.StatusNotFound}
	ErrDuplicateName = &AppError{Code: "DUPLICATE_NAME", Message: "A user with this name already exists", StatusCode: http.StatusConflict}
)

// Category errors.
var (
	ErrCategoryNotFound = &AppError{Code: "CATEGORY_NOT_FOUND", Message: "Category not found", StatusCode: http.StatusNotFound}
)

// Record errors.
var (
	ErrRecordNotFound = &AppError{Code: "RECORD_NOT_FOUND", Message: "Record not found", StatusCode: http.StatusNotFound}
)
