package errors

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBuilderMarksAndHints(t *testing.T) {
	err := NewError("password is required").
		WithHint("Please enter your password").
		Mark(ErrValidation)

	assert.True(t, IsValidation(err))
	assert.False(t, IsNotFound(err))
	assert.Equal(t, http.StatusBadRequest, HTTPStatusFromErr(err))
	assert.Equal(t, "Please enter your password", DisplayMessage(err, "fallback"))
}

func TestHTTPStatusFromErr(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"unauthorized", NewError("x").Mark(ErrUnauthorized), http.StatusUnauthorized},
		{"not found", NewError("x").Mark(ErrNotFound), http.StatusNotFound},
		{"rate limited", NewError("x").Mark(ErrRateLimited), http.StatusTooManyRequests},
		{"upstream", NewError("x").Mark(ErrHTTPClient), http.StatusBadGateway},
		{"system", NewError("x").WithHint("y").Mark(ErrSystem), http.StatusInternalServerError},
		{"not found wins over upstream", WithError(NewError("x").Mark(ErrHTTPClient)).Mark(ErrNotFound), http.StatusNotFound},
		{"plain error", New(ErrCodeSystemError, "raw"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, HTTPStatusFromErr(tt.err))
		})
	}
}

func TestDisplayMessageFallback(t *testing.T) {
	err := NewError("boom").Mark(ErrSystem)
	assert.Equal(t, "An unexpected error occurred", DisplayMessage(err, "An unexpected error occurred"))
}

func TestDisplayMessagePrefersOutermostHint(t *testing.T) {
	inner := NewError("parse").WithHint("Request validation failed").Mark(ErrValidation)
	err := WithError(inner).WithHint("Password must be at least 5 characters").Mark(ErrValidation)
	assert.Equal(t, "Password must be at least 5 characters", DisplayMessage(err, ""))
	assert.Equal(t, "Request validation failed", DisplayMessage(inner, ""))
}
