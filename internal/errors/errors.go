// Package errors provides structured application errors with stable codes.
package errors

import (
	"fmt"
)

// Error codes for the failures this service can actually produce.
const (
	CodeConfigInvalid = "CONFIG_INVALID"
	CodeTemplate      = "TEMPLATE_ERROR"
	CodeExport        = "EXPORT_ERROR"
	CodeInternal      = "INTERNAL_ERROR"
)

// AppError represents a structured application error
type AppError struct {
	Code    string
	Message string
	Cause   error
}

func (e *AppError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Cause)
	}
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Cause
}

// New creates a new AppError
func New(code, message string) *AppError {
	return &AppError{
		Code:    code,
		Message: message,
	}
}

// Wrap wraps an error with additional context
func Wrap(err error, message string) error {
	if err == nil {
		return nil
	}
	if appErr, ok := err.(*AppError); ok {
		return &AppError{
			Code:    appErr.Code,
			Message: message,
			Cause:   appErr,
		}
	}
	return &AppError{
		Code:    CodeInternal,
		Message: message,
		Cause:   err,
	}
}

// Wrapf wraps an error with formatted additional context
func Wrapf(err error, format string, args ...interface{}) error {
	if err == nil {
		return nil
	}
	return Wrap(err, fmt.Sprintf(format, args...))
}

// ConfigInvalid reports a configuration problem the operator must fix.
func ConfigInvalid(message string) *AppError {
	return New(CodeConfigInvalid, message)
}

// Export reports a spreadsheet export failure.
func Export(err error, message string) error {
	if err == nil {
		return nil
	}
	return &AppError{Code: CodeExport, Message: message, Cause: err}
}
