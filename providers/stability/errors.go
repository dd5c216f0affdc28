package stability

import (
	"github.com/imago-ai/imago/core"
	"github.com/imago-ai/imago/providers/internal/normalize"
)

// guidance maps classification sentinels to Stability-specific
// remediation advice surfaced alongside failures.
var guidance = map[error]string{
	core.ErrInvalidKey:           "regenerate your key at https://platform.stability.ai/account/keys",
	core.ErrAuthenticationFailed: "check the key at https://platform.stability.ai/account/keys",
	core.ErrInsufficientCredits:  "top up credits at https://platform.stability.ai/account/credits",
	core.ErrRateLimited:          "slow down; Stability throttles per-key request rates",
}

// newHTTPError classifies a non-success HTTP response.
func newHTTPError(status int, body []byte) error {
	return normalize.HTTPError("stability", status, body, guidance)
}

// newNetworkError wraps a transport failure.
func newNetworkError(err error) error {
	return normalize.NetworkError("stability", err)
}

// newDecodeError wraps a response parsing failure.
func newDecodeError(err error) error {
	return normalize.DecodeError("stability", err)
}

// newNoImageDataError reports a success response without artifacts.
func newNoImageDataError() error {
	return normalize.NoImageData("stability")
}
