// Package apperrors provides tests for application error types.
package apperrors

import (
	"errors"
	"strings"
	"testing"
)

func TestConfigError(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name        string
		err         error
		expected    string
		checkTypeAs bool
	}{
		{
			name:     "Error returns message",
			err:      ConfigError{Message: "invalid flag value"},
			expected: "invalid flag value",
		},
		{
			name:     "NewConfigError creates formatted error",
			err:      NewConfigError("invalid value %d for flag %s", 42, "--toom2-threshold"),
			expected: "invalid value 42 for flag --toom2-threshold",
		},
		{
			name:        "ConfigError type assertion",
			err:         NewConfigError("test error"),
			expected:    "test error",
			checkTypeAs: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if tt.err.Error() != tt.expected {
				t.Errorf("expected %q, got %q", tt.expected, tt.err.Error())
			}
			if tt.checkTypeAs {
				var configErr ConfigError
				if !errors.As(tt.err, &configErr) {
					t.Error("expected error to be ConfigError type")
				}
				if !IsConfigError(tt.err) {
					t.Error("IsConfigError should report true")
				}
			}
		})
	}
}

func TestEvalError(t *testing.T) {
	t.Parallel()

	cause := errors.New("division by zero")
	err := EvalError{Op: "/", Cause: cause}

	if !strings.Contains(err.Error(), "/") || !strings.Contains(err.Error(), "division by zero") {
		t.Errorf("Error() = %q", err.Error())
	}
	if !errors.Is(err, cause) {
		t.Error("errors.Is should reach the cause through Unwrap")
	}
}

func TestMismatchError(t *testing.T) {
	t.Parallel()

	err := MismatchError{Op: "*", X: "0x2", Y: "0x3", Got: "0x7", Want: "0x6"}
	want := "0x2 * 0x3 -> 0x7, want 0x6"
	if err.Error() != want {
		t.Errorf("Error() = %q, want %q", err.Error(), want)
	}
}

func TestWrapError(t *testing.T) {
	t.Parallel()

	if WrapError(nil, "context") != nil {
		t.Error("WrapError(nil) should be nil")
	}

	cause := errors.New("boom")
	wrapped := WrapError(cause, "while doing %s", "things")
	if !errors.Is(wrapped, cause) {
		t.Error("wrapped error should match its cause")
	}
	if !strings.Contains(wrapped.Error(), "while doing things") {
		t.Errorf("wrapped message = %q", wrapped.Error())
	}
}

func TestExitCodes(t *testing.T) {
	t.Parallel()

	// The codes are part of the CLI contract; pin them.
	if ExitSuccess != 0 || ExitErrorGeneric != 1 || ExitErrorTimeout != 2 ||
		ExitErrorMismatch != 3 || ExitErrorConfig != 4 || ExitErrorCanceled != 130 {
		t.Error("exit code contract changed")
	}
}
