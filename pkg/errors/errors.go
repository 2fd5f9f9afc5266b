package errors

import (
	"errors"
	"fmt"
)

// ErrorCode represents a unique error code for stable testing
type ErrorCode string

// Error codes for different error categories
const (
	// General errors
	ErrUnknown       ErrorCode = "UNKNOWN"
	ErrInternal      ErrorCode = "INTERNAL"
	ErrInvalidInput  ErrorCode = "INVALID_INPUT"
	ErrNotFound      ErrorCode = "NOT_FOUND"
	ErrAlreadyExists ErrorCode = "ALREADY_EXISTS"

	// Configuration errors
	ErrConfigLoad  ErrorCode = "CONFIG_LOAD"
	ErrConfigParse ErrorCode = "CONFIG_PARSE"
	ErrConfigValid ErrorCode = "CONFIG_INVALID"

	// Stage errors
	ErrStageNotFound ErrorCode = "STAGE_NOT_FOUND"
	ErrStageInvalid  ErrorCode = "STAGE_INVALID"

	// Report errors
	ErrReportRender ErrorCode = "REPORT_RENDER"

	// FileSystem errors
	ErrFileWrite ErrorCode = "FILE_WRITE"
)

// FarmgateError represents a structured error with code and details
type FarmgateError struct {
	Code    ErrorCode
	Message string
	Details map[string]interface{}
	Wrapped error
}

// Error implements the error interface
func (e *FarmgateError) Error() string {
	if e.Wrapped != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Wrapped)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap implements the errors.Unwrap interface
func (e *FarmgateError) Unwrap() error {
	return e.Wrapped
}

// Is implements errors.Is interface
func (e *FarmgateError) Is(target error) bool {
	var targetErr *FarmgateError
	if errors.As(target, &targetErr) {
		return e.Code == targetErr.Code
	}
	return false
}

// New creates a new FarmgateError with the given code and message
func New(code ErrorCode, message string) *FarmgateError {
	return &FarmgateError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
	}
}

// Newf creates a new FarmgateError with a formatted message
func Newf(code ErrorCode, format string, args ...interface{}) *FarmgateError {
	return &FarmgateError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
	}
}

// Wrap wraps an existing error with a FarmgateError
func Wrap(err error, code ErrorCode, message string) *FarmgateError {
	if err == nil {
		return nil
	}
	return &FarmgateError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// Wrapf wraps an existing error with a formatted message
func Wrapf(err error, code ErrorCode, format string, args ...interface{}) *FarmgateError {
	if err == nil {
		return nil
	}
	return &FarmgateError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// WithDetail adds a detail to the error
func (e *FarmgateError) WithDetail(key string, value interface{}) *FarmgateError {
	if e.Details == nil {
		e.Details = make(map[string]interface{})
	}
	e.Details[key] = value
	return e
}

// IsErrorCode checks if an error has a specific error code
func IsErrorCode(err error, code ErrorCode) bool {
	var fgErr *FarmgateError
	if errors.As(err, &fgErr) {
		return fgErr.Code == code
	}
	return false
}

// GetErrorCode returns the error code from an error, or ErrUnknown if not a FarmgateError
func GetErrorCode(err error) ErrorCode {
	var fgErr *FarmgateError
	if errors.As(err, &fgErr) {
		return fgErr.Code
	}
	return ErrUnknown
}
