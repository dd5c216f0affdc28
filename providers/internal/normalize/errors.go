// Package normalize provides the error classification shared by all
// provider adapters, so the status/body table lives in exactly one place.
package normalize

import (
	"bytes"
	"encoding/json"
	"net/http"

	"github.com/imago-ai/imago/core"
)

// Body markers that refine a 400 response into a sharper classification.
// Providers embed these strings in otherwise generic bad-request bodies.
const (
	markerInsufficientCredits = "insufficient_credits"
	markerBillingHardLimit    = "billing_hard_limit_reached"
	markerInvalidAPIKey       = "invalid_api_key"
)

// Classify maps a non-success HTTP response to a classification sentinel.
// Status code is inspected first, then known body substrings:
//
//	400 + "insufficient_credits"         -> ErrInsufficientCredits
//	400 + "billing_hard_limit_reached"   -> ErrInsufficientCredits
//	400 + "invalid_api_key"              -> ErrInvalidKey
//	401, 403                             -> ErrAuthenticationFailed
//	429                                  -> ErrRateLimited
//	anything else                        -> ErrUnknown
func Classify(status int, body []byte) error {
	switch status {
	case http.StatusUnauthorized, http.StatusForbidden:
		return core.ErrAuthenticationFailed
	case http.StatusTooManyRequests:
		return core.ErrRateLimited
	case http.StatusBadRequest:
		switch {
		case bytes.Contains(body, []byte(markerInsufficientCredits)),
			bytes.Contains(body, []byte(markerBillingHardLimit)):
			return core.ErrInsufficientCredits
		case bytes.Contains(body, []byte(markerInvalidAPIKey)):
			return core.ErrInvalidKey
		}
		return core.ErrUnknown
	default:
		return core.ErrUnknown
	}
}

// errorEnvelope covers providers that return
// {"error":{"message":"...","type":"...","code":"..."}} or the flatter
// {"message":"..."} shape.
type errorEnvelope struct {
	Error struct {
		Message string `json:"message"`
		Type    string `json:"type"`
		Code    string `json:"code"`
	} `json:"error"`
	Message string `json:"message"`
	Name    string `json:"name"`
}

// HTTPError builds a classified *core.ProviderError from a non-success
// response. Guidance, if non-nil, maps classification sentinels to
// provider-specific remediation text.
func HTTPError(provider string, status int, body []byte, guidance map[error]string) error {
	sentinel := Classify(status, body)

	var env errorEnvelope
	_ = json.Unmarshal(body, &env)

	message := env.Error.Message
	if message == "" {
		message = env.Message
	}
	if message == "" {
		message = http.StatusText(status)
	}

	code := env.Error.Code
	if code == "" {
		code = env.Error.Type
	}
	if code == "" {
		code = env.Name
	}

	return &core.ProviderError{
		Provider: provider,
		Status:   status,
		Code:     code,
		Message:  message,
		Guidance: guidance[sentinel],
		Err:      sentinel,
	}
}

// NetworkError wraps transport failures as provider-specific errors.
func NetworkError(provider string, err error) error {
	return &core.ProviderError{
		Provider: provider,
		Message:  err.Error(),
		Err:      core.ErrNetwork,
	}
}

// DecodeError wraps response parsing failures as provider-specific errors.
func DecodeError(provider string, err error) error {
	return &core.ProviderError{
		Provider: provider,
		Message:  err.Error(),
		Err:      core.ErrDecode,
	}
}

// NoImageData reports a success response that carried no image. The
// exchange itself succeeded, so this stays distinct from ErrUnknown.
func NoImageData(provider string) error {
	return &core.ProviderError{
		Provider: provider,
		Message:  "response contained no image data",
		Err:      core.ErrNoImageData,
	}
}
