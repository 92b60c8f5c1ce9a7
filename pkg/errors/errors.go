// Package errors provides structured error types for genogrid.
//
// This package defines error codes and types that enable:
//   - Consistent error handling across the palette, layout and render stages
//   - Machine-readable error codes for programmatic handling
//   - User-friendly error messages
//   - Error wrapping with context preservation
//
// # Error Codes
//
// Failures that abort an operation:
//   - OUT_OF_RANGE: palette size outside 1..360, or a canvas too small for the items
//   - UNKNOWN_METHOD: unrecognized palette strategy name
//   - EMPTY_INPUT: layout requested for zero items
//   - INVALID_*: input, format and configuration validation failures
//   - RASTER*: the external rasterizer is missing or failed
//
// INVALID_COLOR_COMPONENT is diagnostic only: it is returned by validation helpers
// so callers can log it, but conversion always proceeds with the given numbers.
//
// # Usage
//
//	err := errors.New(errors.ErrCodeOutOfRange, "palette size %d outside 1..360", n)
//	if errors.Is(err, errors.ErrCodeOutOfRange) {
//	    // Fall back to a fixed fill colour
//	}
//
//	// Wrap existing errors
//	err := errors.Wrap(errors.ErrCodeRasterFailed, origErr, "rsvg-convert %s", path)
package errors

import (
	"errors"
	"fmt"
)

// Code represents a machine-readable error code.
type Code string

// Error codes for different error categories.
const (
	// Palette and layout failures
	ErrCodeOutOfRange    Code = "OUT_OF_RANGE"
	ErrCodeUnknownMethod Code = "UNKNOWN_METHOD"
	ErrCodeEmptyInput    Code = "EMPTY_INPUT"

	// Diagnostic only, never aborts a conversion
	ErrCodeInvalidColorComponent Code = "INVALID_COLOR_COMPONENT"

	// Input validation errors
	ErrCodeInvalidInput  Code = "INVALID_INPUT"
	ErrCodeInvalidFormat Code = "INVALID_FORMAT"
	ErrCodeInvalidConfig Code = "INVALID_CONFIG"
	ErrCodeInvalidPath   Code = "INVALID_PATH"

	// Resource not found errors
	ErrCodeFileNotFound Code = "FILE_NOT_FOUND"

	// Rasterization errors
	ErrCodeRasterizerUnavailable Code = "RASTERIZER_UNAVAILABLE"
	ErrCodeRasterFailed          Code = "RASTER_FAILED"

	// Internal errors
	ErrCodeInternal    Code = "INTERNAL_ERROR"
	ErrCodeUnsupported Code = "UNSUPPORTED"
)

// Error is a structured error with a code and optional cause.
type Error struct {
	Code    Code   // Machine-readable error code
	Message string // Human-readable message
	Cause   error  // Underlying error (optional)
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Unwrap returns the underlying cause for errors.Is/As compatibility.
func (e *Error) Unwrap() error {
	return e.Cause
}

// New creates a new Error with the given code and formatted message.
func New(code Code, format string, args ...any) *Error {
	return &Error{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
	}
}

// Wrap creates a new Error wrapping an existing error.
func Wrap(code Code, cause error, format string, args ...any) *Error {
	return &Error{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Cause:   cause,
	}
}

// Is reports whether err has the given error code.
// It unwraps the error chain looking for an *Error with a matching code.
func Is(err error, code Code) bool {
	var e *Error
	if errors.As(err, &e) {
		return e.Code == code
	}
	return false
}

// GetCode extracts the error code from an error, if available.
// Returns empty string if the error is not an *Error.
func GetCode(err error) Code {
	var e *Error
	if errors.As(err, &e) {
		return e.Code
	}
	return ""
}

// UserMessage returns a user-friendly message for the error.
// For *Error types, returns the message without the code prefix.
// For other errors, returns the error string as-is.
func UserMessage(err error) string {
	var e *Error
	if errors.As(err, &e) {
		return e.Message
	}
	return err.Error()
}

// IsDiagnostic reports whether err only describes a questionable input that
// the operation tolerated.
func IsDiagnostic(err error) bool {
	return Is(err, ErrCodeInvalidColorComponent)
}
