// File: api/errors.go
// Author: momentics <momentics@gmail.com>
//
// Common error types and error handling utilities for hioload-vec.
// Only caller-recoverable precondition violations surface as error values;
// allocation failure and size overflow terminate the process (see core/alloc).

package api

import "fmt"

// Common errors used across the library.
var (
	ErrIndexOutOfBounds = fmt.Errorf("index out of bounds")
	ErrInvalidArgument  = fmt.Errorf("invalid argument")
)

// ErrorCode represents specific error conditions in the library.
type ErrorCode int

const (
	ErrCodeOK ErrorCode = iota
	ErrCodeOutOfRange
	ErrCodeInvalidArgument
	ErrCodeInternal
)

// Error represents a structured error with code and context.
type Error struct {
	Code    ErrorCode
	Message string
	Context map[string]any
}

// Error implements the error interface.
func (e *Error) Error() string {
	if len(e.Context) == 0 {
		return e.Message
	}
	return fmt.Sprintf("%s (context: %+v)", e.Message, e.Context)
}

// NewError creates a new structured error.
func NewError(code ErrorCode, message string) *Error {
	return &Error{
		Code:    code,
		Message: message,
		Context: make(map[string]any),
	}
}

// WithContext adds context information to the error.
func (e *Error) WithContext(key string, value any) *Error {
	if e.Context == nil {
		e.Context = make(map[string]any)
	}
	e.Context[key] = value
	return e
}

// CodeOf extracts the ErrorCode from an error produced by this library.
// Returns ErrCodeInternal for foreign non-nil errors, ErrCodeOK for nil.
func CodeOf(err error) ErrorCode {
	if err == nil {
		return ErrCodeOK
	}
	if se, ok := err.(*Error); ok {
		return se.Code
	}
	return ErrCodeInternal
}
