package errors

import (
	"errors"
	"fmt"
	"testing"
)

func TestWrapWithContext(t *testing.T) {
	cause := errors.New("duplicate")
	fields := map[string]any{"reason": "DuplicateName", "name": "Egg"}

	tests := []struct {
		name        string
		err         *StructuredError
		wantCode    ErrorCode
		wantCause   error
		wantContext map[string]any
	}{
		{"code only", WrapWithContext(ErrCodeNotFound, "entry not found", nil, nil), ErrCodeNotFound, nil, nil},
		{"context only", WrapWithContext(ErrCodeInvalidRequest, "entry rejected", nil, fields), ErrCodeInvalidRequest, nil, fields},
		{"cause only", WrapWithContext(ErrCodeInternal, "load failed", cause, nil), ErrCodeInternal, cause, nil},
		{"cause and context", WrapWithContext(ErrCodeInvalidRequest, "entry rejected", cause, fields), ErrCodeInvalidRequest, cause, fields},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.err.Code != tt.wantCode {
				t.Errorf("code = %s, want %s", tt.err.Code, tt.wantCode)
			}
			if tt.err.Message == "" {
				t.Error("message is empty")
			}
			if tt.err.Cause != tt.wantCause {
				t.Errorf("cause = %v, want %v", tt.err.Cause, tt.wantCause)
			}
			if len(tt.err.Context) != len(tt.wantContext) {
				t.Errorf("context = %v, want %v", tt.err.Context, tt.wantContext)
			}
			for k, v := range tt.wantContext {
				if tt.err.Context[k] != v {
					t.Errorf("context[%s] = %v, want %v", k, tt.err.Context[k], v)
				}
			}
		})
	}
}

func TestError(t *testing.T) {
	tests := []struct {
		name     string
		err      *StructuredError
		expected string
	}{
		{
			name:     "error without cause",
			err:      WrapWithContext(ErrCodeNotFound, "not found", nil, nil),
			expected: "[NOT_FOUND] not found",
		},
		{
			name:     "error with cause",
			err:      WrapWithContext(ErrCodeInternal, "failed", errors.New("root cause"), nil),
			expected: "[INTERNAL] failed: root cause",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.err.Error()
			if got != tt.expected {
				t.Errorf("expected %q, got %q", tt.expected, got)
			}
		})
	}
}

func TestUnwrap(t *testing.T) {
	cause := errors.New("root cause")
	err := WrapWithContext(ErrCodeInternal, "wrapped", cause, nil)

	unwrapped := err.Unwrap()
	if !errors.Is(unwrapped, cause) {
		t.Errorf("expected unwrapped error to be original cause")
	}

	if !errors.Is(err, cause) {
		t.Errorf("errors.Is should work with Unwrap")
	}
}

func TestCodeOf(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want ErrorCode
	}{
		{"structured", WrapWithContext(ErrCodeTimeout, "slow", nil, nil), ErrCodeTimeout},
		{"wrapped structured", fmt.Errorf("outer: %w", WrapWithContext(ErrCodeInvalidRequest, "bad", nil, nil)), ErrCodeInvalidRequest},
		{"plain error", errors.New("boom"), ErrCodeInternal},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := CodeOf(tt.err); got != tt.want {
				t.Errorf("CodeOf() = %s, want %s", got, tt.want)
			}
		})
	}
}

func TestContextValue(t *testing.T) {
	err := fmt.Errorf("add: %w", WrapWithContext(ErrCodeInvalidRequest, "rejected", nil,
		map[string]any{"reason": "InvalidType"}))

	v, ok := ContextValue(err, "reason")
	if !ok || v != "InvalidType" {
		t.Errorf("expected reason InvalidType, got %v (found=%v)", v, ok)
	}

	if _, ok := ContextValue(err, "missing"); ok {
		t.Error("expected missing key to be absent")
	}

	if _, ok := ContextValue(errors.New("plain"), "reason"); ok {
		t.Error("expected plain error to have no context")
	}
}

func TestErrorCodesAreDistinct(t *testing.T) {
	seen := map[ErrorCode]bool{}
	for _, code := range []ErrorCode{
		ErrCodeNotFound,
		ErrCodeTimeout,
		ErrCodeInternal,
		ErrCodeInvalidRequest,
		ErrCodeRateLimitExceeded,
		ErrCodeMethodNotAllowed,
		ErrCodeUnavailable,
	} {
		if code == "" || seen[code] {
			t.Errorf("code %q is empty or duplicated", code)
		}
		seen[code] = true
	}
}
