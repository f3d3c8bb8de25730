package errors

import (
	"fmt"
	"net/http"
)

// ErrorCode classifies application errors
type ErrorCode string

func (c ErrorCode) String() string { return string(c) }

const (
	ErrorCode_INTERNAL         ErrorCode = "INTERNAL"
	ErrorCode_INVALID_ARGUMENT ErrorCode = "INVALID_ARGUMENT"
	ErrorCode_NOT_FOUND        ErrorCode = "NOT_FOUND"
	ErrorCode_ALREADY_EXISTS   ErrorCode = "ALREADY_EXISTS"
	ErrorCode_FORBIDDEN        ErrorCode = "FORBIDDEN"

	ErrorCode_AUTH_INVALID_TOKEN ErrorCode = "AUTH_INVALID_TOKEN"
	ErrorCode_AUTH_UNKNOWN_ROLE  ErrorCode = "AUTH_UNKNOWN_ROLE"

	ErrorCode_POLICY_VIOLATION     ErrorCode = "POLICY_VIOLATION"
	ErrorCode_GRANT_MISMATCH       ErrorCode = "GRANT_MISMATCH"
	ErrorCode_DB_CONNECTION_FAILED ErrorCode = "DB_CONNECTION_FAILED"
	ErrorCode_DB_QUERY_FAILED      ErrorCode = "DB_QUERY_FAILED"
	ErrorCode_DB_CONSTRAINT        ErrorCode = "DB_CONSTRAINT_VIOLATION"
)

// AppError is the application error type carried up to the HTTP layer.
type AppError struct {
	Raw      error
	HTTPCode int
	Code     ErrorCode
	Message  string
	Details  map[string]string
}

// Error implements error interface
func (e AppError) Error() string {
	if e.Raw != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code.String(), e.Message, e.Raw)
	}
	return fmt.Sprintf("[%s] %s", e.Code.String(), e.Message)
}

// Unwrap exposes the wrapped cause to errors.Is / errors.As.
func (e AppError) Unwrap() error { return e.Raw }

// WithDetail adds a detail to the error
func (e AppError) WithDetail(key, value string) AppError {
	if e.Details == nil {
		e.Details = make(map[string]string)
	}
	e.Details[key] = value
	return e
}

// General Errors

func ErrInternal(err error) AppError {
	return AppError{
		Raw:      err,
		HTTPCode: http.StatusInternalServerError,
		Code:     ErrorCode_INTERNAL,
		Message:  "Internal server error",
	}
}

func ErrInvalidArgument(message string) AppError {
	return AppError{
		HTTPCode: http.StatusBadRequest,
		Code:     ErrorCode_INVALID_ARGUMENT,
		Message:  message,
	}
}

func ErrNotFound(resource string) AppError {
	return AppError{
		HTTPCode: http.StatusNotFound,
		Code:     ErrorCode_NOT_FOUND,
		Message:  fmt.Sprintf("%s not found", resource),
	}
}

func ErrAlreadyExists(resource string) AppError {
	return AppError{
		HTTPCode: http.StatusConflict,
		Code:     ErrorCode_ALREADY_EXISTS,
		Message:  fmt.Sprintf("%s already exists", resource),
	}
}

func ErrForbidden(action string) AppError {
	return AppError{
		HTTPCode: http.StatusForbidden,
		Code:     ErrorCode_FORBIDDEN,
		Message:  fmt.Sprintf("Permission denied: %s", action),
	}
}

// Authentication Errors

func ErrInvalidToken() AppError {
	return AppError{
		HTTPCode: http.StatusUnauthorized,
		Code:     ErrorCode_AUTH_INVALID_TOKEN,
		Message:  "Invalid authentication token",
	}
}

func ErrUnknownRole(role string) AppError {
	return AppError{
		HTTPCode: http.StatusBadRequest,
		Code:     ErrorCode_AUTH_UNKNOWN_ROLE,
		Message:  "Unknown access role",
	}.WithDetail("role", role)
}

// Access Errors

// ErrPolicyViolation maps a row-level security WITH CHECK failure. The
// engine raises it on INSERT when the new row's identity column does not
// match the session's app.current_name.
func ErrPolicyViolation(table string, err error) AppError {
	return AppError{
		Raw:      err,
		HTTPCode: http.StatusForbidden,
		Code:     ErrorCode_POLICY_VIOLATION,
		Message:  "Row-level security policy violation",
	}.WithDetail("table", table)
}

func ErrGrantMismatch(missing, extra int) AppError {
	return AppError{
		HTTPCode: http.StatusInternalServerError,
		Code:     ErrorCode_GRANT_MISMATCH,
		Message:  "Role grants do not match the expected privilege matrix",
	}.WithDetail("missing", fmt.Sprintf("%d", missing)).
		WithDetail("extra", fmt.Sprintf("%d", extra))
}

// Database Errors

func ErrDBConnectionFailed(err error) AppError {
	return AppError{
		Raw:      err,
		HTTPCode: http.StatusInternalServerError,
		Code:     ErrorCode_DB_CONNECTION_FAILED,
		Message:  "Database connection failed",
	}
}

func ErrDBQueryFailed(operation string, err error) AppError {
	return AppError{
		Raw:      err,
		HTTPCode: http.StatusInternalServerError,
		Code:     ErrorCode_DB_QUERY_FAILED,
		Message:  "Database query failed",
	}.WithDetail("operation", operation)
}

func ErrDBConstraintViolation(constraint string, err error) AppError {
	return AppError{
		Raw:      err,
		HTTPCode: http.StatusConflict,
		Code:     ErrorCode_DB_CONSTRAINT,
		Message:  "Database constraint violation",
	}.WithDetail("constraint", constraint)
}

