package errors

import (
	"net/http"

	"contactlog/internal/errors"
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
	// Contact-related errors
	ErrContactNotFound = NewBaseError(
		http.StatusNotFound,
		"CONTACT_NOT_FOUND",
		"Contact not found",
		"",
	)

	ErrInvalidContactInput = NewBaseError(
		http.StatusBadRequest,
		"INVALID_INPUT",
		"Invalid contact payload",
		"",
	)

	// Seed-related errors
	ErrSeedFixturesUnavailable = NewBaseError(
		http.StatusInternalServerError,
		"SEED_FIXTURES_UNAVAILABLE",
		"Seed fixtures could not be loaded",
		"",
	)

	// QR code errors
	ErrQRCodeGenerationFailed = NewBaseError(
		http.StatusInternalServerError,
		"QRCODE_GENERATION_FAILED",
		"Failed to generate QR code",
		"",
	)
)

// PersistenceError represents a store failure (rejected document, unavailable connection),
// implementing the AppError interface
type PersistenceError struct {
	err     error
	details string
}

// NewPersistenceError creates a store-related error
func NewPersistenceError(err error, details string) AppError {
	return &PersistenceError{
		err:     err,
		details: details,
	}
}

// Error implements the error interface
func (e *PersistenceError) Error() string {
	if e.err == nil {
		return "persistence failed: " + e.details
	}

	return errors.Wrap(e.err, "persistence failed").Error()
}

// Unwrap exposes the underlying store error
func (e *PersistenceError) Unwrap() error {
	return e.err
}

// HTTPCode returns the HTTP status code
func (e *PersistenceError) HTTPCode() int {
	return http.StatusInternalServerError
}

// ErrorCode returns the business error code
func (e *PersistenceError) ErrorCode() string {
	return "PERSISTENCE_FAILED"
}

// Message returns the user-friendly error message
func (e *PersistenceError) Message() string {
	return "Contact store operation failed"
}

// Details returns detailed error information
func (e *PersistenceError) Details() string {
	return e.details
}
