package domain

import (
	"errors"
	"fmt"
)

// ErrorCode classifies a domain error for the transport layer.
type ErrorCode string

const (
	ErrCodeNotFound ErrorCode = "NOT_FOUND"
	ErrCodeInvalid  ErrorCode = "INVALID"
	ErrCodeStorage  ErrorCode = "STORAGE"
)

// Error is a domain-level error carrying its classification.
type Error struct {
	Code    ErrorCode
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *Error) Unwrap() error { return e.Err }

// NewError builds a domain error.
func NewError(code ErrorCode, message string) *Error {
	return &Error{Code: code, Message: message}
}

// WrapError wraps an underlying error with a domain classification.
func WrapError(code ErrorCode, message string, err error) *Error {
	return &Error{Code: code, Message: message, Err: err}
}

// IsCode reports whether err carries the given classification.
func IsCode(err error, code ErrorCode) bool {
	var dErr *Error
	if errors.As(err, &dErr) {
		return dErr.Code == code
	}
	return false
}

// Common errors shared across repositories.
var (
	ErrDestinationNotFound = NewError(ErrCodeNotFound, "Destination not found")
	ErrEventNotFound       = NewError(ErrCodeNotFound, "Event not found")
	ErrReportNotFound      = NewError(ErrCodeNotFound, "Not found")
	ErrTitleRequired       = NewError(ErrCodeInvalid, "Title is required")
)
