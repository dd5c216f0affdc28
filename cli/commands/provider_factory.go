package commands

import (
	"github.com/imago-ai/imago/cli/config"
	"github.com/imago-ai/imago/core"
	"github.com/imago-ai/imago/providers"
	"github.com/imago-ai/imago/providers/aimlapi"
	"github.com/imago-ai/imago/providers/openai"
	"github.com/imago-ai/imago/providers/stability"
)

type providerConstructor func(apiKey, baseURL string) core.Provider

// apiKeyEnvVars maps canonical provider names to the environment
// variables consulted during key resolution.
var apiKeyEnvVars = map[string]string{
	"openai":    openai.DefaultAPIKeyEnvVar,
	"stability": stability.DefaultAPIKeyEnvVar,
	"aimlapi":   aimlapi.DefaultAPIKeyEnvVar,
}

func defaultProviderFactory() ProviderFactory {
	constructors := map[string]providerConstructor{
		"openai": func(apiKey, baseURL string) core.Provider {
			var opts []openai.Option
			if baseURL != "" {
				opts = append(opts, openai.WithBaseURL(baseURL))
			}
			return openai.New(apiKey, opts...)
		},
		"stability": func(apiKey, baseURL string) core.Provider {
			var opts []stability.Option
			if baseURL != "" {
				opts = append(opts, stability.WithBaseURL(baseURL))
			}
			return stability.New(apiKey, opts...)
		},
		"aimlapi": func(apiKey, baseURL string) core.Provider {
			var opts []aimlapi.Option
			if baseURL != "" {
				opts = append(opts, aimlapi.WithBaseURL(baseURL))
			}
			return aimlapi.New(apiKey, opts...)
		},
	}

	return func(providerID, apiKey string, cfg *config.Config) (core.Provider, error) {
		baseURL := providerBaseURL(cfg, providerID)
		if ctor, ok := constructors[providerID]; ok {
			return ctor(apiKey, baseURL), nil
		}

		// Fall back to the registry for externally-registered adapters.
		return providers.Create(providerID, apiKey)
	}
}

func providerBaseURL(cfg *config.Config, providerID string) string {
	if cfg == nil {
		return ""
	}
	pc := cfg.GetProvider(providerID)
	if pc == nil {
		return ""
	}
	return pc.BaseURL
}
