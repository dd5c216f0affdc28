// Package aimlapi implements the adapter for the AIML aggregator API,
// which fronts many image models behind one OpenAI-compatible endpoint
// with extension fields. Generation results are remote URLs.
package aimlapi

import (
	"context"
	"errors"
	"os"

	"github.com/imago-ai/imago/core"
)

// DefaultAPIKeyEnvVar is the environment variable name for the AIML API key.
const DefaultAPIKeyEnvVar = "AIML_API_KEY"

// ErrAPIKeyNotFound is returned when the API key environment variable is not set.
var ErrAPIKeyNotFound = errors.New("aimlapi: AIML_API_KEY environment variable not set")

// AIML is the image-generation adapter for the AIML aggregator API.
// AIML is safe for concurrent use.
type AIML struct {
	config Config
}

// New creates a new AIML adapter with the given API key and options.
func New(apiKey string, opts ...Option) *AIML {
	cfg := defaultConfig(apiKey)
	for _, opt := range opts {
		opt(&cfg)
	}
	return &AIML{config: cfg}
}

// NewFromEnv creates a new AIML adapter using the AIML_API_KEY
// environment variable.
func NewFromEnv(opts ...Option) (*AIML, error) {
	apiKey := os.Getenv(DefaultAPIKeyEnvVar)
	if apiKey == "" {
		return nil, ErrAPIKeyNotFound
	}
	return New(apiKey, opts...), nil
}

// ID returns the canonical provider identifier.
func (p *AIML) ID() string {
	return "aimlapi"
}

// Profile returns the provider's static metadata.
func (p *AIML) Profile() core.Profile {
	return profile
}

// Models returns the list of known models.
func (p *AIML) Models() []core.ModelInfo {
	result := make([]core.ModelInfo, len(models))
	copy(result, models)
	return result
}

// ValidateKey returns nil unconditionally. AIML exposes no verified
// lightweight probe endpoint, so key validation is deferred to the
// generation call itself. Callers must treat a nil result from this
// method as a weak guarantee, not proof of a working key.
func (p *AIML) ValidateKey(ctx context.Context) error {
	return nil
}

// Compile-time check that AIML implements Provider.
var _ core.Provider = (*AIML)(nil)
