package gemini

import (
	"errors"
	"fmt"
)

var (
	ErrMissingCredential = errors.New("Gemini API key is not configured")
	ErrTimeout           = errors.New("request to Gemini API timed out")
	ErrMalformedResponse = errors.New("invalid response structure from Gemini API")
	ErrInvalidRequest    = errors.New("invalid API request, please check your API key")
	ErrForbidden         = errors.New("API key is invalid or doesn't have proper permissions")
	ErrModelUnavailable  = errors.New("model not found, please contact support")
	ErrRateLimited       = errors.New("API rate limit exceeded, please try again later")
)

// ProviderError is an error object reported inside an HTTP 200 body.
type ProviderError struct {
	Code    int
	Status  string
	Message string
}

func (e *ProviderError) Error() string {
	if e.Message == "" {
		return "API returned an error"
	}
	return e.Message
}

// UpstreamError is any non-2xx status without a dedicated mapping.
type UpstreamError struct {
	StatusCode int
}

func (e *UpstreamError) Error() string {
	return fmt.Sprintf("API returned error: %d", e.StatusCode)
}

// TransportError wraps connection-level failures other than timeouts.
type TransportError struct {
	Cause error
}

func (e *TransportError) Error() string {
	return "failed to get response from AI, please try again"
}

func (e *TransportError) Unwrap() error {
	return e.Cause
}

// malformedError keeps the decoder failure for logs while reporting the fixed
// ErrMalformedResponse text.
type malformedError struct {
	cause error
}

func (e *malformedError) Error() string {
	return ErrMalformedResponse.Error()
}

func (e *malformedError) Is(target error) bool {
	return target == ErrMalformedResponse
}

func (e *malformedError) Unwrap() error {
	return e.cause
}
