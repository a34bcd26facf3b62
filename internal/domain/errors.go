package domain

import (
	"errors"
	"fmt"
)

// Sentinel errors for the flight quote domain.
// Callers classify failures with errors.Is against these values.
var (
	// ErrAuthenticationFailed indicates the provider rejected our credentials or token.
	ErrAuthenticationFailed = errors.New("authentication failed")

	// ErrInvalidRequest indicates the request parameters were rejected.
	ErrInvalidRequest = errors.New("invalid request")

	// ErrRateLimitExceeded indicates the provider throttled the request (HTTP 429).
	ErrRateLimitExceeded = errors.New("rate limit exceeded")

	// ErrNetworkError indicates a transport failure or an unexpected provider status.
	ErrNetworkError = errors.New("network error")

	// ErrNoFlightsFound indicates no candidate city produced a single quote.
	ErrNoFlightsFound = errors.New("no flights found")
)

// ProviderError wraps an error coming from the flight quote provider.
type ProviderError struct {
	Provider   string
	StatusCode int
	Err        error
	Retryable  bool
}

func (e *ProviderError) Error() string {
	if e.StatusCode > 0 {
		return fmt.Sprintf("provider %s: status %d: %v", e.Provider, e.StatusCode, e.Err)
	}
	return fmt.Sprintf("provider %s: %v", e.Provider, e.Err)
}

func (e *ProviderError) Unwrap() error {
	return e.Err
}

// NewProviderError creates a non-retryable provider error.
func NewProviderError(provider string, err error) *ProviderError {
	return &ProviderError{Provider: provider, Err: err}
}

// NewRetryableProviderError creates a provider error that may succeed on retry.
func NewRetryableProviderError(provider string, err error) *ProviderError {
	return &ProviderError{Provider: provider, Err: err, Retryable: true}
}

// NewStatusError maps an HTTP status returned by the provider to an error kind.
// Only throttling is considered retryable.
func NewStatusError(provider string, status int, detail string) *ProviderError {
	var kind error
	switch status {
	case 400:
		kind = ErrInvalidRequest
	case 401:
		kind = ErrAuthenticationFailed
	case 429:
		kind = ErrRateLimitExceeded
	default:
		kind = ErrNetworkError
	}

	err := kind
	if detail != "" {
		err = fmt.Errorf("%w: %s", kind, detail)
	}

	return &ProviderError{
		Provider:   provider,
		StatusCode: status,
		Err:        err,
		Retryable:  status == 429,
	}
}

// ValidationError describes a single invalid field.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return e.Field + ": " + e.Message
}

// NewValidationError creates a ValidationError.
func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{Field: field, Message: message}
}

// WrapInvalidRequest formats a message and wraps it as an ErrInvalidRequest.
func WrapInvalidRequest(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrInvalidRequest, fmt.Sprintf(format, args...))
}

func IsAuthenticationFailed(err error) bool {
	return errors.Is(err, ErrAuthenticationFailed)
}

func IsInvalidRequest(err error) bool {
	return errors.Is(err, ErrInvalidRequest)
}

func IsRateLimitExceeded(err error) bool {
	return errors.Is(err, ErrRateLimitExceeded)
}

func IsNetworkError(err error) bool {
	return errors.Is(err, ErrNetworkError)
}

func IsNoFlightsFound(err error) bool {
	return errors.Is(err, ErrNoFlightsFound)
}

// IsRetryable reports whether err carries a retryable ProviderError.
func IsRetryable(err error) bool {
	var pe *ProviderError
	if errors.As(err, &pe) {
		return pe.Retryable
	}
	return false
}

// UserMessage returns a short human-readable message for an error kind.
func UserMessage(err error) string {
	switch {
	case err == nil:
		return ""
	case IsAuthenticationFailed(err):
		return "Failed to authenticate with flight search service"
	case IsInvalidRequest(err):
		return "Invalid search parameters"
	case IsRateLimitExceeded(err):
		return "Too many requests. Please try again later."
	case IsNetworkError(err):
		return "Network connection error"
	case IsNoFlightsFound(err):
		return "No flights found for this route"
	default:
		return "Unexpected error"
	}
}
