// Package errors defines common error types for hypersort.
package errors

import (
	"errors"
	"fmt"
)

// Error codes for the application.
const (
	CodeUnknown     = "UNKNOWN_ERROR"
	CodeInvalidArgs = "INVALID_ARGS"
	CodeIOError     = "IO_ERROR"
	CodeAllocError  = "ALLOC_ERROR"
	CodeTransport   = "TRANSPORT_ERROR"
	CodeConsistency = "CONSISTENCY_ERROR"
	CodeConfigError = "CONFIG_ERROR"
	CodeDatabase    = "DATABASE_ERROR"
	CodeStorage     = "STORAGE_ERROR"
	CodeAborted     = "ABORTED"
)

// AppError represents an application error with a code and message.
type AppError struct {
	Code    string
	Message string
	Err     error
}

// Error implements the error interface.
func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap returns the underlying error.
func (e *AppError) Unwrap() error {
	return e.Err
}

// Is checks if the error matches the target.
func (e *AppError) Is(target error) bool {
	t, ok := target.(*AppError)
	if !ok {
		return false
	}
	return e.Code == t.Code
}

// New creates a new AppError.
func New(code string, message string) *AppError {
	return &AppError{
		Code:    code,
		Message: message,
	}
}

// Newf creates a new AppError with a formatted message.
func Newf(code string, format string, args ...interface{}) *AppError {
	return &AppError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
	}
}

// Wrap wraps an existing error with an AppError.
func Wrap(code string, message string, err error) *AppError {
	return &AppError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}

// Common error instances.
var (
	ErrInvalidArgs = New(CodeInvalidArgs, "invalid arguments")
	ErrIOError     = New(CodeIOError, "i/o error")
	ErrAllocError  = New(CodeAllocError, "allocation error")
	ErrTransport   = New(CodeTransport, "transport error")
	ErrConsistency = New(CodeConsistency, "consistency check failed")
	ErrConfigError = New(CodeConfigError, "configuration error")
	ErrDatabase    = New(CodeDatabase, "database error")
	ErrStorage     = New(CodeStorage, "storage error")
	ErrAborted     = New(CodeAborted, "cohort aborted")
)

// IsTransport checks if the error is a transport error.
func IsTransport(err error) bool {
	return errors.Is(err, ErrTransport)
}

// IsAborted checks if the error is a cohort abort.
func IsAborted(err error) bool {
	return errors.Is(err, ErrAborted)
}

// IsInvalidArgs checks if the error is an argument validation error.
func IsInvalidArgs(err error) bool {
	return errors.Is(err, ErrInvalidArgs)
}

// GetErrorCode extracts the error code from an error.
func GetErrorCode(err error) string {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Code
	}
	return CodeUnknown
}
