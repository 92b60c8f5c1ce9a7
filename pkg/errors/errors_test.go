package errors

import (
	"errors"
	"fmt"
	"testing"
)

func TestNew(t *testing.T) {
	err := New(ErrCodeOutOfRange, "palette size %d", 0)

	if err.Code != ErrCodeOutOfRange {
		t.Errorf("Code = %v, want %v", err.Code, ErrCodeOutOfRange)
	}

	if err.Message != "palette size 0" {
		t.Errorf("Message = %v, want %v", err.Message, "palette size 0")
	}

	expected := "OUT_OF_RANGE: palette size 0"
	if err.Error() != expected {
		t.Errorf("Error() = %v, want %v", err.Error(), expected)
	}
}

func TestWrap(t *testing.T) {
	cause := errors.New("exit status 1")
	err := Wrap(ErrCodeRasterFailed, cause, "rsvg-convert")

	if err.Code != ErrCodeRasterFailed {
		t.Errorf("Code = %v, want %v", err.Code, ErrCodeRasterFailed)
	}

	if err.Cause != cause {
		t.Errorf("Cause = %v, want %v", err.Cause, cause)
	}

	if unwrapped := errors.Unwrap(err); unwrapped != cause {
		t.Errorf("Unwrap() = %v, want %v", unwrapped, cause)
	}

	if !errors.Is(err, cause) {
		t.Error("errors.Is(err, cause) = false, want true")
	}

	expected := "RASTER_FAILED: rsvg-convert: exit status 1"
	if err.Error() != expected {
		t.Errorf("Error() = %v, want %v", err.Error(), expected)
	}
}

func TestIs(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		code     Code
		expected bool
	}{
		{
			name:     "matching code",
			err:      New(ErrCodeEmptyInput, "test"),
			code:     ErrCodeEmptyInput,
			expected: true,
		},
		{
			name:     "non-matching code",
			err:      New(ErrCodeEmptyInput, "test"),
			code:     ErrCodeUnknownMethod,
			expected: false,
		},
		{
			name:     "wrapped error",
			err:      Wrap(ErrCodeInvalidConfig, New(ErrCodeInvalidInput, "inner"), "outer"),
			code:     ErrCodeInvalidConfig,
			expected: true,
		},
		{
			name:     "wrapped with fmt.Errorf",
			err:      fmt.Errorf("stage: %w", New(ErrCodeUnknownMethod, "inner")),
			code:     ErrCodeUnknownMethod,
			expected: true,
		},
		{
			name:     "non-Error type",
			err:      errors.New("plain error"),
			code:     ErrCodeInvalidInput,
			expected: false,
		},
		{
			name:     "nil error",
			err:      nil,
			code:     ErrCodeInvalidInput,
			expected: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Is(tt.err, tt.code); got != tt.expected {
				t.Errorf("Is() = %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestGetCode(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected Code
	}{
		{"Error type", New(ErrCodeOutOfRange, "test"), ErrCodeOutOfRange},
		{"plain error", errors.New("plain"), ""},
		{"nil", nil, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := GetCode(tt.err); got != tt.expected {
				t.Errorf("GetCode() = %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestUserMessage(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected string
	}{
		{"Error type", New(ErrCodeInvalidInput, "friendly message"), "friendly message"},
		{"plain error", errors.New("plain error"), "plain error"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := UserMessage(tt.err); got != tt.expected {
				t.Errorf("UserMessage() = %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestIsDiagnostic(t *testing.T) {
	if !IsDiagnostic(New(ErrCodeInvalidColorComponent, "hue 400")) {
		t.Error("IsDiagnostic(INVALID_COLOR_COMPONENT) = false, want true")
	}
	if IsDiagnostic(New(ErrCodeOutOfRange, "count 0")) {
		t.Error("IsDiagnostic(OUT_OF_RANGE) = true, want false")
	}
	if IsDiagnostic(nil) {
		t.Error("IsDiagnostic(nil) = true, want false")
	}
}
