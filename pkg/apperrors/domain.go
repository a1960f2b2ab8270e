package apperrors

import (
	"net/http"
)

// Factories for wrapping lower-level errors (typically repository errors)
// into AppErrors with the right HTTP semantics.

// ErrNotFound wraps a repository miss (e.g. gorm.ErrRecordNotFound) as 404.
func ErrNotFound(err error) *AppError {
	return Wrap(err, CodeNotFound, "resource", "Resource not found", http.StatusNotFound)
}

// ErrAlreadyExists wraps a uniqueness conflict as 409.
func ErrAlreadyExists(err error) *AppError {
	return Wrap(err, CodeAlreadyExists, "resource", "Resource already exists", http.StatusConflict)
}

// ErrConflict wraps a domain conflict as 409.
func ErrConflict(err error, domain, message string) *AppError {
	return Wrap(err, CodeConflict, domain, message, http.StatusConflict)
}

// ErrInvalidOperation reports an operation the domain does not allow (400).
func ErrInvalidOperation(domain, message string) *AppError {
	return New(CodeInvalidOperation, domain, message, http.StatusBadRequest)
}

// InternalError wraps any unexpected error as 500.
func InternalError(err error) *AppError {
	return Wrap(err, CodeInternalError, "system", "Internal server error", http.StatusInternalServerError)
}

// DatabaseError wraps a database failure as 500.
func DatabaseError(err error) *AppError {
	return Wrap(err, CodeDatabaseError, "database", "Database operation failed", http.StatusInternalServerError)
}

// StorageError wraps an object-storage failure as 502.
func StorageError(err error) *AppError {
	return Wrap(err, CodeStorageError, "storage", "Storage operation failed", http.StatusBadGateway)
}

// ValidationError carries field-level validation failures (400).
func ValidationError(details interface{}) *AppError {
	return New(CodeValidationFailed, "validation", "Validation failed", http.StatusBadRequest).WithDetails(details)
}

// NewBadRequestError reports a malformed request (400).
func NewBadRequestError(message string) *AppError {
	return New(CodeInvalidOperation, "request", message, http.StatusBadRequest)
}

// Forbidden reports an operation on a resource the caller does not own (403).
func Forbidden(domain, message string) *AppError {
	return New(CodeForbidden, domain, message, http.StatusForbidden)
}

// Predefined auth errors; these are static so handlers can compare them.

var ErrUnauthorized = New(
	CodeUnauthorized,
	"auth",
	"Authorization required",
	http.StatusUnauthorized,
)

var ErrInvalidCredentials = New(
	CodeInvalidCredentials,
	"auth",
	"Invalid email or password",
	http.StatusUnauthorized,
)

var ErrInvalidToken = New(
	CodeInvalidToken,
	"auth",
	"Invalid token",
	http.StatusUnauthorized,
)

var ErrTokenExpired = New(
	CodeTokenExpired,
	"auth",
	"Token has expired",
	http.StatusUnauthorized,
)

var ErrEmailAlreadyExists = New(
	CodeAlreadyExists,
	"auth",
	"Email is already registered",
	http.StatusConflict,
)

var ErrWeakPassword = New(
	CodeValidationFailed,
	"auth",
	"Password must be at least 8 characters long",
	http.StatusBadRequest,
)
