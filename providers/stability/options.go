package stability

import (
	"net/http"

	"github.com/imago-ai/imago/core"
	"github.com/imago-ai/imago/providers/internal/transport"
)

// DefaultBaseURL is the default Stability AI API base URL.
const DefaultBaseURL = "https://api.stability.ai"

// Config holds configuration for the Stability adapter.
type Config struct {
	// APIKey is the Stability API key (required).
	APIKey core.Secret

	// BaseURL is the API base URL. Defaults to DefaultBaseURL.
	BaseURL string

	// HTTPClient is used for generation calls.
	HTTPClient *http.Client

	// ProbeClient is used for key validation.
	ProbeClient *http.Client
}

// Option configures the Stability adapter.
type Option func(*Config)

// WithBaseURL sets the API base URL.
func WithBaseURL(url string) Option {
	return func(c *Config) {
		c.BaseURL = url
	}
}

// WithHTTPClient sets a custom HTTP client for generation calls.
func WithHTTPClient(client *http.Client) Option {
	return func(c *Config) {
		c.HTTPClient = client
		c.ProbeClient = client
	}
}

func defaultConfig(apiKey string) Config {
	return Config{
		APIKey:      core.NewSecret(apiKey),
		BaseURL:     DefaultBaseURL,
		HTTPClient:  transport.NewClient(transport.GenerateTimeout),
		ProbeClient: transport.NewClient(transport.ProbeTimeout),
	}
}
