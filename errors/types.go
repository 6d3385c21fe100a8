package errors

import (
	"encoding/json"
	"fmt"
)

// ErrorCode represents a specific error condition
type ErrorCode string

const (
	// Input document errors
	ErrCodeDecodeFailed     ErrorCode = "DECODE_FAILED"
	ErrCodeUnsupportedValue ErrorCode = "UNSUPPORTED_VALUE"

	// Configuration errors
	ErrCodeConfigNotFound   ErrorCode = "CONFIG_NOT_FOUND"
	ErrCodeConfigInvalid    ErrorCode = "CONFIG_INVALID"
	ErrCodeConfigValidation ErrorCode = "CONFIG_VALIDATION"

	// Explorer errors
	ErrCodeNodeNotFound ErrorCode = "NODE_NOT_FOUND"

	// File watching errors
	ErrCodeWatchFailed ErrorCode = "WATCH_FAILED"

	// General errors
	ErrCodeInternal     ErrorCode = "INTERNAL_ERROR"
	ErrCodeInvalidInput ErrorCode = "INVALID_INPUT"
)

// TreeError represents a structured error with context
type TreeError struct {
	Code    ErrorCode              `json:"code"`
	Message string                 `json:"message"`
	Details map[string]interface{} `json:"details,omitempty"`
	Cause   error                  `json:"-"`
}

// Error implements the error interface
func (e *TreeError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (caused by: %v)", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Unwrap implements the errors.Unwrap interface
func (e *TreeError) Unwrap() error {
	return e.Cause
}

// WithDetail adds a detail to the error
func (e *TreeError) WithDetail(key string, value interface{}) *TreeError {
	if e.Details == nil {
		e.Details = make(map[string]interface{})
	}
	e.Details[key] = value
	return e
}

// ToJSON converts the error to JSON
func (e *TreeError) ToJSON() string {
	data, _ := json.MarshalIndent(e, "", "  ")
	return string(data)
}

// New creates a new TreeError
func New(code ErrorCode, message string) *TreeError {
	return &TreeError{
		Code:    code,
		Message: message,
	}
}

// Wrap wraps an existing error with a TreeError
func Wrap(err error, code ErrorCode, message string) *TreeError {
	return &TreeError{
		Code:    code,
		Message: message,
		Cause:   err,
	}
}

// GetCode extracts the error code from the first TreeError in the chain, or
// ErrCodeInternal for errors that carry none.
func GetCode(err error) ErrorCode {
	for err != nil {
		if te, ok := err.(*TreeError); ok {
			return te.Code
		}
		unwrapper, ok := err.(interface{ Unwrap() error })
		if !ok {
			break
		}
		err = unwrapper.Unwrap()
	}
	return ErrCodeInternal
}

// HasCode reports whether err carries the given error code anywhere in its chain.
func HasCode(err error, code ErrorCode) bool {
	for err != nil {
		if te, ok := err.(*TreeError); ok && te.Code == code {
			return true
		}
		unwrapper, ok := err.(interface{ Unwrap() error })
		if !ok {
			return false
		}
		err = unwrapper.Unwrap()
	}
	return false
}
