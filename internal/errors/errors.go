// Package errors provides the structured error taxonomy for taskmill.
package errors

import (
	"errors"
	"fmt"
)

// ErrorCode represents a category of application error.
type ErrorCode string

const (
	// ErrCodeAuth indicates the hosted service rejected our credentials.
	// Fatal for the process.
	ErrCodeAuth ErrorCode = "auth"
	// ErrCodeConfig indicates invalid startup configuration. Fatal for
	// the process.
	ErrCodeConfig ErrorCode = "config"
	// ErrCodeMalformed indicates a row was missing an expected field key
	// or carried an unusable value. The row is skipped.
	ErrCodeMalformed ErrorCode = "malformed"
	// ErrCodeRateLimited indicates the hosted service throttled a call.
	// Recoverable on the next cycle.
	ErrCodeRateLimited ErrorCode = "rate_limited"
	// ErrCodeUnavailable indicates a transient network or service error.
	// Recoverable on the next cycle.
	ErrCodeUnavailable ErrorCode = "unavailable"
	// ErrCodeNotFound indicates a row disappeared between fetch and write.
	ErrCodeNotFound ErrorCode = "not_found"
	// ErrCodeInternal indicates an unexpected internal error.
	ErrCodeInternal ErrorCode = "internal"
)

// AppError represents a structured application error with a code, message,
// and optional cause. It supports errors.Is and errors.As via Unwrap.
type AppError struct {
	// Code categorizes the error type
	Code ErrorCode
	// Message is a human-readable error message
	Message string
	// Cause is the underlying error that caused this error (optional)
	Cause error
}

// Error implements the error interface.
func (e *AppError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Cause)
	}
	return e.Message
}

// Unwrap returns the underlying cause, enabling errors.Is and errors.As.
func (e *AppError) Unwrap() error {
	return e.Cause
}

// Auth creates a new Auth error.
func Auth(message string) *AppError {
	return &AppError{Code: ErrCodeAuth, Message: message}
}

// Authf creates a new Auth error with formatted message.
func Authf(format string, args ...any) *AppError {
	return &AppError{Code: ErrCodeAuth, Message: fmt.Sprintf(format, args...)}
}

// Config creates a new Config error.
func Config(message string) *AppError {
	return &AppError{Code: ErrCodeConfig, Message: message}
}

// Configf creates a new Config error with formatted message.
func Configf(format string, args ...any) *AppError {
	return &AppError{Code: ErrCodeConfig, Message: fmt.Sprintf(format, args...)}
}

// Malformed creates a new Malformed error.
func Malformed(message string) *AppError {
	return &AppError{Code: ErrCodeMalformed, Message: message}
}

// Malformedf creates a new Malformed error with formatted message.
func Malformedf(format string, args ...any) *AppError {
	return &AppError{Code: ErrCodeMalformed, Message: fmt.Sprintf(format, args...)}
}

// RateLimited creates a new RateLimited error.
func RateLimited(message string) *AppError {
	return &AppError{Code: ErrCodeRateLimited, Message: message}
}

// Unavailable creates a new Unavailable error.
func Unavailable(message string) *AppError {
	return &AppError{Code: ErrCodeUnavailable, Message: message}
}

// NotFound creates a new NotFound error.
func NotFound(message string) *AppError {
	return &AppError{Code: ErrCodeNotFound, Message: message}
}

// Internal creates a new Internal error.
func Internal(message string) *AppError {
	return &AppError{Code: ErrCodeInternal, Message: message}
}

// Wrap wraps an existing error with an AppError, preserving the cause.
func Wrap(err error, code ErrorCode, message string) *AppError {
	if err == nil {
		return nil
	}
	return &AppError{Code: code, Message: message, Cause: err}
}

// Wrapf wraps an existing error with an AppError and formatted message.
func Wrapf(err error, code ErrorCode, format string, args ...any) *AppError {
	if err == nil {
		return nil
	}
	return &AppError{Code: code, Message: fmt.Sprintf(format, args...), Cause: err}
}

// isCode checks if an error has a specific error code.
func isCode(err error, code ErrorCode) bool {
	var appErr *AppError
	return errors.As(err, &appErr) && appErr.Code == code
}

// IsAuth checks if an error is an Auth error.
func IsAuth(err error) bool { return isCode(err, ErrCodeAuth) }

// IsConfig checks if an error is a Config error.
func IsConfig(err error) bool { return isCode(err, ErrCodeConfig) }

// IsMalformed checks if an error is a Malformed error.
func IsMalformed(err error) bool { return isCode(err, ErrCodeMalformed) }

// IsRateLimited checks if an error is a RateLimited error.
func IsRateLimited(err error) bool { return isCode(err, ErrCodeRateLimited) }

// IsUnavailable checks if an error is an Unavailable error.
func IsUnavailable(err error) bool { return isCode(err, ErrCodeUnavailable) }

// IsNotFound checks if an error is a NotFound error.
func IsNotFound(err error) bool { return isCode(err, ErrCodeNotFound) }

// IsFatal reports whether an error should terminate the process rather
// than be absorbed by the cycle loop.
func IsFatal(err error) bool {
	return IsAuth(err) || IsConfig(err)
}
