// Package stability implements the adapter for the Stability AI
// text-to-image API. Generation results are inline base64 payloads and
// the engine (model) name is embedded in the endpoint path.
package stability

import (
	"context"
	"errors"
	"io"
	"net/http"
	"os"

	"github.com/imago-ai/imago/core"
)

// DefaultAPIKeyEnvVar is the environment variable name for the Stability API key.
const DefaultAPIKeyEnvVar = "STABILITY_API_KEY"

// ErrAPIKeyNotFound is returned when the API key environment variable is not set.
var ErrAPIKeyNotFound = errors.New("stability: STABILITY_API_KEY environment variable not set")

// Stability is the image-generation adapter for the Stability AI API.
// Stability is safe for concurrent use.
type Stability struct {
	config Config
}

// New creates a new Stability adapter with the given API key and options.
func New(apiKey string, opts ...Option) *Stability {
	cfg := defaultConfig(apiKey)
	for _, opt := range opts {
		opt(&cfg)
	}
	return &Stability{config: cfg}
}

// NewFromEnv creates a new Stability adapter using the STABILITY_API_KEY
// environment variable.
func NewFromEnv(opts ...Option) (*Stability, error) {
	apiKey := os.Getenv(DefaultAPIKeyEnvVar)
	if apiKey == "" {
		return nil, ErrAPIKeyNotFound
	}
	return New(apiKey, opts...), nil
}

// ID returns the canonical provider identifier.
func (p *Stability) ID() string {
	return "stability"
}

// Profile returns the provider's static metadata.
func (p *Stability) Profile() core.Profile {
	return profile
}

// Models returns the list of known engines.
func (p *Stability) Models() []core.ModelInfo {
	result := make([]core.ModelInfo, len(models))
	copy(result, models)
	return result
}

// ValidateKey probes GET /v1/user/account with the configured key.
func (p *Stability) ValidateKey(ctx context.Context) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, p.config.BaseURL+"/v1/user/account", nil)
	if err != nil {
		return newNetworkError(err)
	}
	req.Header.Set("Authorization", "Bearer "+p.config.APIKey.Expose())

	resp, err := p.config.ProbeClient.Do(req)
	if err != nil {
		return newNetworkError(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return newHTTPError(resp.StatusCode, body)
	}
	return nil
}

// Compile-time check that Stability implements Provider.
var _ core.Provider = (*Stability)(nil)
