package openai

import (
	"github.com/imago-ai/imago/core"
	"github.com/imago-ai/imago/providers/internal/normalize"
)

// guidance maps classification sentinels to OpenAI-specific remediation
// advice surfaced alongside failures.
var guidance = map[error]string{
	core.ErrInvalidKey:           "regenerate your key at https://platform.openai.com/api-keys",
	core.ErrAuthenticationFailed: "check the key at https://platform.openai.com/api-keys and any organization restrictions",
	core.ErrInsufficientCredits:  "check your balance at https://platform.openai.com/usage",
	core.ErrRateLimited:          "slow down or review your tier limits at https://platform.openai.com/account/limits",
}

// newHTTPError classifies a non-success HTTP response.
func newHTTPError(status int, body []byte) error {
	return normalize.HTTPError("openai", status, body, guidance)
}

// newNetworkError wraps a transport failure.
func newNetworkError(err error) error {
	return normalize.NetworkError("openai", err)
}

// newDecodeError wraps a response parsing failure.
func newDecodeError(err error) error {
	return normalize.DecodeError("openai", err)
}

// newNoImageDataError reports a success response without image data.
func newNoImageDataError() error {
	return normalize.NoImageData("openai")
}
