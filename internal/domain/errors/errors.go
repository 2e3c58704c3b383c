package errors

import (
	"net/http"

	"atlas/internal/errors"
)

// AppError defines the interface for application-specific errors
type AppError interface {
	error
	HTTPCode() int     // HTTP status code
	ErrorCode() string // Business error code
	Message() string   // User-friendly error message
	Details() string   // Detailed error information (optional)
}

// BaseError is a basic error structure that implements the AppError interface
type BaseError struct {
	httpCode  int
	errorCode string
	message   string
	details   string
}

// NewBaseError creates a new base error
func NewBaseError(httpCode int, errorCode, message, details string) *BaseError {
	return &BaseError{
		httpCode:  httpCode,
		errorCode: errorCode,
		message:   message,
		details:   details,
	}
}

// Error implements the error interface
func (e *BaseError) Error() string {
	return e.message
}

// WrapMessage wraps the error with additional context message
func (e *BaseError) WrapMessage(message string) error {
	return errors.Wrap(e, message)
}

// HTTPCode returns the HTTP status code
func (e *BaseError) HTTPCode() int {
	return e.httpCode
}

// ErrorCode returns the business error code
func (e *BaseError) ErrorCode() string {
	return e.errorCode
}

// Message returns the user-friendly error message
func (e *BaseError) Message() string {
	return e.message
}

// Details returns detailed error information
func (e *BaseError) Details() string {
	return e.details
}

// WithDetails adds detailed error information
func (e *BaseError) WithDetails(details string) *BaseError {
	return &BaseError{
		httpCode:  e.httpCode,
		errorCode: e.errorCode,
		message:   e.message,
		details:   details,
	}
}

// Predefined error types
var (
	// Field mutation errors. These indicate caller bugs, never runtime
	// conditions, and are surfaced rather than swallowed.
	ErrInvalidFieldPath = NewBaseError(
		http.StatusBadRequest,
		"INVALID_FIELD_PATH",
		"The preference field path does not exist",
		"",
	)

	ErrInvalidFieldValue = NewBaseError(
		http.StatusBadRequest,
		"INVALID_FIELD_VALUE",
		"The value does not fit the addressed preference field",
		"",
	)

	// Persistence errors
	ErrCacheWriteFailed = NewBaseError(
		http.StatusInternalServerError,
		"CACHE_WRITE_FAILED",
		"Failed to write settings to the local cache",
		"",
	)

	ErrValidationFailed = NewBaseError(
		http.StatusBadRequest,
		"VALIDATION_FAILED",
		"Request validation failed",
		"",
	)

	ErrNotFound = NewBaseError(
		http.StatusNotFound,
		"NOT_FOUND",
		"The requested resource was not found",
		"",
	)

	ErrInternal = NewBaseError(
		http.StatusInternalServerError,
		"INTERNAL_ERROR",
		"Internal server error",
		"",
	)
)

// NewDatabaseExecuteError wraps an unexpected database error as an internal
// AppError while keeping the cause in the details for operators.
func NewDatabaseExecuteError(cause error, message string) *BaseError {
	return NewBaseError(
		http.StatusInternalServerError,
		"DATABASE_ERROR",
		message,
		cause.Error(),
	)
}
