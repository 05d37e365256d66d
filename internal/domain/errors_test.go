package domain

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDomainErrorError(t *testing.T) {
	err := NewValidationError("EMPTY_CODE", "Please enter some code to analyze", nil)
	assert.Equal(t, "EMPTY_CODE: Please enter some code to analyze", err.Error())

	cause := errors.New("connection refused")
	wrapped := NewRequestFailed("Request failed", cause)
	assert.Contains(t, wrapped.Error(), "connection refused")
	assert.ErrorIs(t, wrapped, cause)
}

func TestErrorTypePredicates(t *testing.T) {
	assert.True(t, IsValidationError(NewValidationError("X", "x", nil)))
	assert.True(t, IsAuthError(NewAuthError("SIGNIN_FAILED", "Invalid login credentials")))
	assert.True(t, IsAuthNotConfigured(NewAuthNotConfiguredError()))
	assert.True(t, IsRequestFailed(NewRequestFailed("Request failed", nil)))

	assert.False(t, IsValidationError(NewRequestFailed("Request failed", nil)))
	assert.False(t, IsRequestFailed(errors.New("plain")))
	assert.False(t, IsAuthError(nil))
}

func TestErrorTypePredicatesThroughWrapping(t *testing.T) {
	inner := NewAuthError("SIGNIN_FAILED", "Invalid login credentials")
	wrapped := fmt.Errorf("login: %w", inner)
	assert.True(t, IsAuthError(wrapped))
}

func TestUserMessageIsProviderReason(t *testing.T) {
	err := NewAuthError("SIGNUP_FAILED", "User already registered")
	assert.Equal(t, "User already registered", err.UserMessage())
}
