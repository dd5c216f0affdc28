// Package config handles CLI configuration loading.
package config

import (
	"os"
	"path/filepath"
	"runtime"

	"gopkg.in/yaml.v3"
)

// Config represents the CLI configuration file.
type Config struct {
	// DefaultProvider is used when no --provider flag is given.
	DefaultProvider string `yaml:"default_provider"`
	// DefaultSize is used when no --size flag is given.
	DefaultSize string `yaml:"default_size"`
	// DefaultOutput is used when no --output flag is given.
	DefaultOutput string                    `yaml:"default_output"`
	Providers     map[string]ProviderConfig `yaml:"providers"`
}

// ProviderConfig holds per-provider configuration.
type ProviderConfig struct {
	// APIKeyRef names the keystore entry holding this provider's key.
	// Defaults to the provider's canonical name.
	APIKeyRef string `yaml:"api_key_ref,omitempty"`
	// BaseURL overrides the provider's default endpoint.
	BaseURL string `yaml:"base_url,omitempty"`
	// DefaultModel overrides the provider's built-in default model.
	DefaultModel string `yaml:"default_model,omitempty"`
}

// Built-in defaults applied when neither flags nor the config file
// specify a value.
const (
	FallbackProvider = "stable-diffusion"
	FallbackOutput   = "generated_image.png"
)

// DefaultConfigPath returns the platform config file path:
// ~/.imago/config.yaml (or %USERPROFILE%\.imago\config.yaml on Windows).
func DefaultConfigPath() string {
	var homeDir string
	if runtime.GOOS == "windows" {
		homeDir = os.Getenv("USERPROFILE")
	} else {
		homeDir = os.Getenv("HOME")
	}
	if homeDir == "" {
		return "config.yaml"
	}
	return filepath.Join(homeDir, ".imago", "config.yaml")
}

// LoadConfig loads configuration from the specified path. A missing file
// yields an empty config without error; an unreadable or unparseable
// file is an error.
func LoadConfig(path string) (*Config, error) {
	cfg := &Config{
		Providers: make(map[string]ProviderConfig),
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, err
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	if cfg.Providers == nil {
		cfg.Providers = make(map[string]ProviderConfig)
	}
	return cfg, nil
}

// GetProvider returns the config block for the given canonical provider
// name, or nil if none is configured.
func (c *Config) GetProvider(id string) *ProviderConfig {
	if c.Providers == nil {
		return nil
	}
	if pc, ok := c.Providers[id]; ok {
		return &pc
	}
	return nil
}
