// Package openai implements the adapter for the OpenAI image API and
// compatible endpoints. Generation results are remote URLs.
package openai

import (
	"context"
	"errors"
	"io"
	"net/http"
	"os"

	"github.com/imago-ai/imago/core"
)

// DefaultAPIKeyEnvVar is the environment variable name for the OpenAI API key.
const DefaultAPIKeyEnvVar = "OPENAI_API_KEY"

// ErrAPIKeyNotFound is returned when the API key environment variable is not set.
var ErrAPIKeyNotFound = errors.New("openai: OPENAI_API_KEY environment variable not set")

// OpenAI is the image-generation adapter for the OpenAI API.
// OpenAI is safe for concurrent use.
type OpenAI struct {
	config Config
}

// New creates a new OpenAI adapter with the given API key and options.
func New(apiKey string, opts ...Option) *OpenAI {
	cfg := defaultConfig(apiKey)
	for _, opt := range opts {
		opt(&cfg)
	}
	return &OpenAI{config: cfg}
}

// NewFromEnv creates a new OpenAI adapter using the OPENAI_API_KEY
// environment variable.
func NewFromEnv(opts ...Option) (*OpenAI, error) {
	apiKey := os.Getenv(DefaultAPIKeyEnvVar)
	if apiKey == "" {
		return nil, ErrAPIKeyNotFound
	}
	return New(apiKey, opts...), nil
}

// ID returns the canonical provider identifier.
func (p *OpenAI) ID() string {
	return "openai"
}

// Profile returns the provider's static metadata.
func (p *OpenAI) Profile() core.Profile {
	return profile
}

// Models returns the list of known models.
func (p *OpenAI) Models() []core.ModelInfo {
	result := make([]core.ModelInfo, len(models))
	copy(result, models)
	return result
}

// ValidateKey probes GET /models with the configured key. A success
// status means the key authenticates; any classified failure is returned
// as a *core.ProviderError.
func (p *OpenAI) ValidateKey(ctx context.Context) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, p.config.BaseURL+"/models", nil)
	if err != nil {
		return newNetworkError(err)
	}
	for key, values := range p.buildHeaders() {
		for _, v := range values {
			req.Header.Add(key, v)
		}
	}

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

// buildHeaders constructs the HTTP headers for an API request.
func (p *OpenAI) buildHeaders() http.Header {
	headers := make(http.Header)
	headers.Set("Authorization", "Bearer "+p.config.APIKey.Expose())
	headers.Set("Content-Type", "application/json")

	for key, values := range p.config.Headers {
		for _, v := range values {
			headers.Add(key, v)
		}
	}
	return headers
}

// Compile-time check that OpenAI implements Provider.
var _ core.Provider = (*OpenAI)(nil)
