package core

import (
	"errors"
	"fmt"
)

// Classification sentinels for failed provider calls.
// Exactly one of these is reachable through errors.Is on any *ProviderError.
var (
	// ErrInvalidKey means the provider rejected the API key itself.
	ErrInvalidKey = errors.New("invalid api key")
	// ErrInsufficientCredits means the account cannot pay for the request.
	ErrInsufficientCredits = errors.New("insufficient credits")
	// ErrRateLimited means the provider throttled the request.
	ErrRateLimited = errors.New("rate limited")
	// ErrAuthenticationFailed means the request was not authorized (401/403).
	ErrAuthenticationFailed = errors.New("authentication failed")
	// ErrUnknown covers every other non-success response.
	ErrUnknown = errors.New("unknown provider error")
)

// Failure sentinels outside the HTTP classification table.
var (
	// ErrNetwork marks transport-level failures (connectivity, timeouts).
	ErrNetwork = errors.New("network error")
	// ErrDecode marks unparseable provider responses.
	ErrDecode = errors.New("decode error")
	// ErrNoImageData marks a success response carrying no image. The HTTP
	// exchange succeeded, so this is reported distinctly rather than
	// folded into ErrUnknown.
	ErrNoImageData = errors.New("no image data received")
	// ErrDownload marks a failed or empty image download.
	ErrDownload = errors.New("image download failed")
)

// Validation errors with actionable guidance.
var (
	ErrPromptRequired = errors.New("prompt required: pass a non-empty text prompt")
	ErrAPIKeyRequired = errors.New("api key required: set it via flag, environment, or the keystore")
)

// ProviderError represents a failed provider call with full context.
// Err holds the classification sentinel so callers get errors.Is matching.
type ProviderError struct {
	Provider string
	Status   int
	Code     string
	Message  string
	// Guidance is provider-specific remediation advice, e.g. where to
	// check a credit balance or regenerate a key. May be empty.
	Guidance string
	Err      error
}

// Error implements the error interface.
func (e *ProviderError) Error() string {
	if e.Status != 0 {
		return fmt.Sprintf("%s: %s (status=%d, code=%s)",
			e.Provider, e.Message, e.Status, e.Code)
	}
	return fmt.Sprintf("%s: %s", e.Provider, e.Message)
}

// Unwrap returns the classification sentinel for error chaining.
func (e *ProviderError) Unwrap() error {
	return e.Err
}
