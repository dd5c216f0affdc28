package aimlapi

import (
	"github.com/imago-ai/imago/core"
	"github.com/imago-ai/imago/providers/internal/normalize"
)

// guidance maps classification sentinels to AIML-specific remediation
// advice surfaced alongside failures.
var guidance = map[error]string{
	core.ErrInvalidKey:           "regenerate your key at https://aimlapi.com/app/keys",
	core.ErrAuthenticationFailed: "check the key at https://aimlapi.com/app/keys",
	core.ErrInsufficientCredits:  "check your balance at https://aimlapi.com/app/billing",
	core.ErrRateLimited:          "slow down or upgrade your AIML plan",
}

// newHTTPError classifies a non-success HTTP response.
func newHTTPError(status int, body []byte) error {
	return normalize.HTTPError("aimlapi", status, body, guidance)
}

// newNetworkError wraps a transport failure.
func newNetworkError(err error) error {
	return normalize.NetworkError("aimlapi", err)
}

// newDecodeError wraps a response parsing failure.
func newDecodeError(err error) error {
	return normalize.DecodeError("aimlapi", err)
}

// newNoImageDataError reports a success response without image data.
func newNoImageDataError() error {
	return normalize.NoImageData("aimlapi")
}
