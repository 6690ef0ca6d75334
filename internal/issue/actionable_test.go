// SPDX-License-Identifier: MPL-2.0

package issue

import (
	"errors"
	"strings"
	"testing"
)

func TestActionableError_Error(t *testing.T) {
	tests := []struct {
		name     string
		err      *ActionableError
		expected string
	}{
		{
			name: "operation only",
			err: &ActionableError{
				Operation: "load tool file",
			},
			expected: "failed to load tool file",
		},
		{
			name: "operation with resource",
			err: &ActionableError{
				Operation: "load tool file",
				Resource:  "./obuild.toml",
			},
			expected: "failed to load tool file: ./obuild.toml",
		},
		{
			name: "operation with cause",
			err: &ActionableError{
				Operation: "parse pattern",
				Cause:     errors.New("unbalanced parenthesis at position 5"),
			},
			expected: "failed to parse pattern: unbalanced parenthesis at position 5",
		},
		{
			name: "full context",
			err: &ActionableError{
				Operation: "load tool file",
				Resource:  "./obuild.toml",
				Cause:     errors.New("file not found"),
			},
			expected: "failed to load tool file: ./obuild.toml: file not found",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.err.Error()
			if got != tt.expected {
				t.Errorf("Error() = %q, want %q", got, tt.expected)
			}
		})
	}
}

func TestActionableError_Unwrap(t *testing.T) {
	cause := errors.New("underlying error")
	err := &ActionableError{
		Operation: "test",
		Cause:     cause,
	}

	if !errors.Is(err.Unwrap(), cause) {
		t.Error("Unwrap() should return the cause error")
	}

	errNoCause := &ActionableError{Operation: "test"}
	if errNoCause.Unwrap() != nil {
		t.Error("Unwrap() should return nil when no cause")
	}
}

func TestActionableError_ErrorsIs(t *testing.T) {
	cause := errors.New("specific error")
	wrapped := &ActionableError{
		Operation: "test",
		Cause:     cause,
	}

	if !errors.Is(wrapped, cause) {
		t.Error("errors.Is should find the wrapped cause")
	}
}

func TestActionableError_Format(t *testing.T) {
	tests := []struct {
		name     string
		err      *ActionableError
		verbose  bool
		contains []string
		excludes []string
	}{
		{
			name: "simple error non-verbose",
			err: &ActionableError{
				Operation: "load config",
			},
			verbose:  false,
			contains: []string{"failed to load config"},
		},
		{
			name: "error with suggestions",
			err: &ActionableError{
				Operation:   "load tool file",
				Resource:    "./obuild.toml",
				Suggestions: []string{"Run 'obuild init'", "Check file permissions"},
			},
			verbose: false,
			contains: []string{
				"failed to load tool file",
				"./obuild.toml",
				"• Run 'obuild init'",
				"• Check file permissions",
			},
			excludes: []string{"Error chain"},
		},
		{
			name: "verbose includes error chain",
			err: &ActionableError{
				Operation: "execute command",
				Cause:     errors.New("exit status 2"),
			},
			verbose: true,
			contains: []string{
				"failed to execute command",
				"Error chain:",
				"1. exit status 2",
			},
		},
		{
			name: "non-verbose omits error chain",
			err: &ActionableError{
				Operation: "execute command",
				Cause:     errors.New("exit status 2"),
			},
			verbose:  false,
			excludes: []string{"Error chain"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.err.Format(tt.verbose)
			for _, want := range tt.contains {
				if !strings.Contains(got, want) {
					t.Errorf("Format(%v) = %q, should contain %q", tt.verbose, got, want)
				}
			}
			for _, exclude := range tt.excludes {
				if strings.Contains(got, exclude) {
					t.Errorf("Format(%v) = %q, should not contain %q", tt.verbose, got, exclude)
				}
			}
		})
	}
}

func TestErrorContext_Builder(t *testing.T) {
	cause := errors.New("boom")
	err := NewErrorContext().
		WithOperation("solve virtual").
		WithResource("cc").
		WithSuggestion("Declare cc in [virtual]").
		WithSuggestions("Install clang", "Install gcc").
		Wrap(cause).
		Build()

	if err == nil {
		t.Fatal("Build() returned nil with operation set")
	}
	if err.Operation != "solve virtual" {
		t.Errorf("Operation = %q", err.Operation)
	}
	if err.Resource != "cc" {
		t.Errorf("Resource = %q", err.Resource)
	}
	if len(err.Suggestions) != 3 {
		t.Errorf("len(Suggestions) = %d, want 3", len(err.Suggestions))
	}
	if !errors.Is(err, cause) {
		t.Error("built error should wrap the cause")
	}
	if !err.HasSuggestions() {
		t.Error("HasSuggestions() = false, want true")
	}
}

func TestErrorContext_BuildWithoutOperation(t *testing.T) {
	if got := NewErrorContext().WithResource("x").Build(); got != nil {
		t.Errorf("Build() without operation = %v, want nil", got)
	}
	if got := NewErrorContext().BuildError(); got != nil {
		t.Errorf("BuildError() without operation = %v, want nil", got)
	}
}

func TestWrapWithOperation(t *testing.T) {
	if got := WrapWithOperation(nil, "anything"); got != nil {
		t.Errorf("WrapWithOperation(nil) = %v, want nil", got)
	}

	cause := errors.New("boom")
	wrapped := WrapWithOperation(cause, "render command")
	if wrapped == nil {
		t.Fatal("WrapWithOperation() returned nil")
	}
	if !errors.Is(wrapped, cause) {
		t.Error("wrapped error should carry the cause")
	}
}

func TestWrapWithContext(t *testing.T) {
	if got := WrapWithContext(nil, "op", "res"); got != nil {
		t.Errorf("WrapWithContext(nil) = %v, want nil", got)
	}

	cause := errors.New("boom")
	wrapped := WrapWithContext(cause, "load tool file", "./obuild.toml")
	if wrapped == nil {
		t.Fatal("WrapWithContext() returned nil")
	}
	if wrapped.Resource != "./obuild.toml" {
		t.Errorf("Resource = %q", wrapped.Resource)
	}
}
