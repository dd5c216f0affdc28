// Package commands implements the CLI command structure using Cobra.
package commands

import (
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/imago-ai/imago/cli/config"
	"github.com/imago-ai/imago/cli/keystore"
	"github.com/imago-ai/imago/core"
)

// ConfigLoader loads CLI config from a path.
type ConfigLoader func(path string) (*config.Config, error)

// ProviderFactory creates a provider adapter using CLI config context.
type ProviderFactory func(providerID, apiKey string, cfg *config.Config) (core.Provider, error)

// KeystoreFactory creates a keystore instance.
type KeystoreFactory func() (keystore.Keystore, error)

// AppOption customizes App dependencies.
type AppOption func(*App)

// App holds CLI state and runtime dependencies. Dependencies are
// injected so commands can be tested without touching the real config
// file, keystore, or network.
type App struct {
	root *cobra.Command

	loadConfig     ConfigLoader
	createProvider ProviderFactory
	newKeystore    KeystoreFactory
	stdin          io.Reader
	stdout         io.Writer
	stderr         io.Writer

	cfgFile      string
	providerName string
	model        string
	verbose      bool
	cfg          *config.Config

	genPrompt  string
	genSize    string
	genOutput  string
	genAPIKey  string
	genOptions []string
}

// WithConfigLoader injects a config loader dependency.
func WithConfigLoader(loader ConfigLoader) AppOption {
	return func(a *App) {
		if loader != nil {
			a.loadConfig = loader
		}
	}
}

// WithProviderFactory injects a provider factory dependency.
func WithProviderFactory(factory ProviderFactory) AppOption {
	return func(a *App) {
		if factory != nil {
			a.createProvider = factory
		}
	}
}

// WithKeystoreFactory injects a keystore factory dependency.
func WithKeystoreFactory(factory KeystoreFactory) AppOption {
	return func(a *App) {
		if factory != nil {
			a.newKeystore = factory
		}
	}
}

// WithIO injects process I/O streams.
func WithIO(stdin io.Reader, stdout, stderr io.Writer) AppOption {
	return func(a *App) {
		if stdin != nil {
			a.stdin = stdin
		}
		if stdout != nil {
			a.stdout = stdout
		}
		if stderr != nil {
			a.stderr = stderr
		}
	}
}

// NewApp creates a new CLI app with default dependencies.
func NewApp(opts ...AppOption) *App {
	a := &App{
		loadConfig:     config.LoadConfig,
		createProvider: defaultProviderFactory(),
		newKeystore:    keystore.NewKeystore,
		stdin:          os.Stdin,
		stdout:         os.Stdout,
		stderr:         os.Stderr,
	}

	for _, opt := range opts {
		opt(a)
	}

	a.root = a.newRootCommand()
	return a
}

func (a *App) newRootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:   "imago",
		Short: "Imago - generate images from text prompts",
		Long: `Imago sends a text prompt to an image-generation provider and saves
the resulting image to disk.

Supported providers: OpenAI (dall-e), Stability AI (stable-diffusion),
and the AIML aggregator (aimlapi).`,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.initConfig()
		},
		SilenceUsage: true,
	}
	root.SetOut(a.stdout)
	root.SetErr(a.stderr)

	// Global flags available to all commands.
	root.PersistentFlags().StringVar(&a.cfgFile, "config", "", "config file (default is ~/.imago/config.yaml)")
	root.PersistentFlags().StringVar(&a.providerName, "provider", "", "provider name or alias (openai, stable-diffusion, aimlapi)")
	root.PersistentFlags().StringVar(&a.model, "model", "", "model ID (default depends on provider)")
	root.PersistentFlags().BoolVar(&a.verbose, "verbose", false, "enable debug logging")

	root.AddCommand(a.newGenerateCommand())
	root.AddCommand(a.newKeysCommand())
	root.AddCommand(a.newProvidersCommand())
	root.AddCommand(a.newVersionCommand())

	return root
}

// Root returns the root cobra command, mainly for tests.
func (a *App) Root() *cobra.Command {
	return a.root
}

// Execute runs the root command.
func (a *App) Execute() error {
	return a.root.Execute()
}

func (a *App) initConfig() error {
	path := a.cfgFile
	if path == "" {
		path = config.DefaultConfigPath()
	}

	cfg, err := a.loadConfig(path)
	if err != nil {
		return err
	}
	a.cfg = cfg

	// Apply config defaults if flags not set.
	if a.providerName == "" {
		a.providerName = cfg.DefaultProvider
	}
	if a.providerName == "" {
		a.providerName = config.FallbackProvider
	}
	return nil
}

// Execute runs a fresh default app root command.
func Execute() error {
	return NewApp().Execute()
}
