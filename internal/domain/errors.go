package domain

import (
	"errors"
	"fmt"
)

// ErrorType represents the type of domain error
type ErrorType string

const (
	// ValidationError represents client-side input rejection, raised before any network call
	ValidationError ErrorType = "VALIDATION_ERROR"
	// AuthError represents a credential operation rejected by the identity provider
	AuthError ErrorType = "AUTH_ERROR"
	// AuthNotConfigured represents an unavailable or misconfigured identity provider
	AuthNotConfigured ErrorType = "AUTH_NOT_CONFIGURED"
	// RequestFailed represents any non-2xx, transport, or decode failure from the API client
	RequestFailed ErrorType = "REQUEST_FAILED"
	// InternalError represents internal system errors
	InternalError ErrorType = "INTERNAL_ERROR"
)

// DomainError represents a domain-specific error with additional context
type DomainError struct {
	Type    ErrorType              `json:"type"`
	Code    string                 `json:"code"`
	Message string                 `json:"message"`
	Details map[string]interface{} `json:"details,omitempty"`
	Cause   error                  `json:"-"`
}

// Error implements the error interface
func (e *DomainError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (caused by: %v)", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Unwrap returns the underlying cause error
func (e *DomainError) Unwrap() error {
	return e.Cause
}

// UserMessage returns the message suitable for a single-line user notification.
func (e *DomainError) UserMessage() string {
	return e.Message
}

// NewValidationError creates a new validation error
func NewValidationError(code, message string, details map[string]interface{}) *DomainError {
	return &DomainError{
		Type:    ValidationError,
		Code:    code,
		Message: message,
		Details: details,
	}
}

// NewAuthError creates a provider-rejection error. The message is the
// provider's own reason, passed through verbatim.
func NewAuthError(code, reason string) *DomainError {
	return &DomainError{
		Type:    AuthError,
		Code:    code,
		Message: reason,
	}
}

// NewAuthNotConfiguredError creates the error returned by auth operations
// when no identity provider is configured.
func NewAuthNotConfiguredError() *DomainError {
	return &DomainError{
		Type:    AuthNotConfigured,
		Code:    "AUTH_NOT_CONFIGURED",
		Message: "Authentication not configured",
	}
}

// NewRequestFailed creates the uniform API client failure. Detail is the
// server-supplied message when present, or a transport-level description.
func NewRequestFailed(detail string, cause error) *DomainError {
	return &DomainError{
		Type:    RequestFailed,
		Code:    "REQUEST_FAILED",
		Message: detail,
		Cause:   cause,
	}
}

// NewInternalError creates a new internal error
func NewInternalError(code, message string, cause error) *DomainError {
	return &DomainError{
		Type:    InternalError,
		Code:    code,
		Message: message,
		Cause:   cause,
	}
}

// IsErrorType reports whether err is a DomainError of the given type.
func IsErrorType(err error, t ErrorType) bool {
	var de *DomainError
	if errors.As(err, &de) {
		return de.Type == t
	}
	return false
}

// IsValidationError reports whether err is a client-side validation rejection.
func IsValidationError(err error) bool { return IsErrorType(err, ValidationError) }

// IsAuthError reports whether err is a provider rejection.
func IsAuthError(err error) bool { return IsErrorType(err, AuthError) }

// IsAuthNotConfigured reports whether err indicates a missing provider.
func IsAuthNotConfigured(err error) bool { return IsErrorType(err, AuthNotConfigured) }

// IsRequestFailed reports whether err is an API client failure.
func IsRequestFailed(err error) bool { return IsErrorType(err, RequestFailed) }
