package openai

import (
	"net/http"

	"github.com/imago-ai/imago/core"
	"github.com/imago-ai/imago/providers/internal/transport"
)

// DefaultBaseURL is the default OpenAI API base URL.
const DefaultBaseURL = "https://api.openai.com/v1"

// Config holds configuration for the OpenAI adapter.
type Config struct {
	// APIKey is the OpenAI API key (required).
	APIKey core.Secret

	// BaseURL is the API base URL. Defaults to DefaultBaseURL.
	BaseURL string

	// HTTPClient is used for generation calls. Defaults to a client with
	// bounded connect and request timeouts.
	HTTPClient *http.Client

	// ProbeClient is used for key validation. Defaults to a client with
	// a short timeout.
	ProbeClient *http.Client

	// Headers contains optional extra headers to include in requests.
	Headers http.Header
}

// Option configures the OpenAI adapter.
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

// WithHeader adds an extra header to include in requests.
func WithHeader(key, value string) Option {
	return func(c *Config) {
		if c.Headers == nil {
			c.Headers = make(http.Header)
		}
		c.Headers.Set(key, value)
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
