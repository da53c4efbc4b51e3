package measure

import (
	"errors"
	"fmt"
)

// ErrorCode classifies a measurement error for programmatic handling.
type ErrorCode string

const (
	// ErrCodeInvalidTable indicates a bad conversion table or options
	// at type-build time.
	ErrCodeInvalidTable ErrorCode = "INVALID_TABLE"
	// ErrCodeUnknownUnit indicates a unit name that is not a key of the
	// type's conversion table.
	ErrCodeUnknownUnit ErrorCode = "UNKNOWN_UNIT"
	// ErrCodeInvalidAmount indicates a not-a-number amount in a
	// description.
	ErrCodeInvalidAmount ErrorCode = "INVALID_AMOUNT"
	// ErrCodeTypeMismatch indicates a value of one measurement type used
	// in an operation on another.
	ErrCodeTypeMismatch ErrorCode = "TYPE_MISMATCH"
	// ErrCodeInvalidValue indicates a zero Value that was never produced
	// by a Type.
	ErrCodeInvalidValue ErrorCode = "INVALID_VALUE"
	// ErrCodeInvalidConfig indicates a malformed type-definition file.
	ErrCodeInvalidConfig ErrorCode = "INVALID_CONFIG"
	// ErrCodeStore indicates a persistence failure in the store.
	ErrCodeStore ErrorCode = "STORE"
	// ErrCodeNotFound indicates a missing store record or registered type.
	ErrCodeNotFound ErrorCode = "NOT_FOUND"
)

// Error is the structured error type used across the package. Context
// carries details such as the offending unit name.
type Error struct {
	Code    ErrorCode
	Message string
	Cause   error
	Context map[string]any
}

func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap returns the underlying cause for errors.Is and errors.As.
func (e *Error) Unwrap() error {
	return e.Cause
}

func newError(code ErrorCode, message string) *Error {
	return &Error{Code: code, Message: message}
}

func newErrorWithContext(code ErrorCode, message string, context map[string]any) *Error {
	return &Error{Code: code, Message: message, Context: context}
}

func wrapError(code ErrorCode, message string, cause error) *Error {
	return &Error{Code: code, Message: message, Cause: cause}
}

// CodeOf returns the ErrorCode of err if it is (or wraps) an *Error,
// or the empty code otherwise.
func CodeOf(err error) ErrorCode {
	var e *Error
	if errors.As(err, &e) {
		return e.Code
	}
	return ""
}
