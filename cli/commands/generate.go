package commands

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/imago-ai/imago/cli/config"
	"github.com/imago-ai/imago/cli/keystore"
	"github.com/imago-ai/imago/core"
	"github.com/imago-ai/imago/providers"
)

func (a *App) newGenerateCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate an image from a text prompt",
		Long: `Generate an image from a text prompt and save it to disk.

The provider is chosen with --provider (or the config default). The API
key is resolved from --api-key, then the provider's environment variable,
then the keystore.

Examples:
  imago generate -p "a cat wearing a top hat"
  imago generate -p "a mountain at dusk" --provider openai --size 1024x1024 -o dusk.png
  imago generate -p "neon city" --provider sd --opt steps=50 --opt style_preset=neon-punk`,
		RunE: a.runGenerate,
	}

	cmd.Flags().StringVarP(&a.genPrompt, "prompt", "p", "", "text prompt describing the image (required)")
	cmd.Flags().StringVar(&a.genSize, "size", "", "image size token, e.g. 512x512 (default depends on provider)")
	cmd.Flags().StringVarP(&a.genOutput, "output", "o", "", "output file path (default generated_image.png)")
	cmd.Flags().StringVar(&a.genAPIKey, "api-key", "", "API key (overrides environment and keystore)")
	cmd.Flags().StringArrayVar(&a.genOptions, "opt", nil, "provider-specific option as key=value (repeatable)")
	_ = cmd.MarkFlagRequired("prompt")

	return cmd
}

func (a *App) runGenerate(cmd *cobra.Command, args []string) error {
	// Name resolution happens before anything else so an unknown
	// provider fails without a network call.
	canonical, err := providers.Resolve(a.providerName)
	if err != nil {
		return err
	}

	apiKey, err := a.resolveAPIKey(canonical)
	if err != nil {
		return err
	}

	provider, err := a.createProvider(canonical, apiKey, a.cfg)
	if err != nil {
		return err
	}

	logger := core.NewWriterLogger(a.stderr, a.verbose)
	runner := core.NewRunner(provider,
		core.WithLogger(logger),
		core.WithTelemetry(&debugTelemetry{log: logger}),
	)

	req := &core.ImageRequest{
		Prompt:    a.genPrompt,
		Model:     a.resolveModel(canonical),
		SizeToken: a.resolveSizeToken(),
		Options:   parseOptions(a.genOptions, logger),
	}

	outputPath := a.resolveOutputPath()
	if err := runner.Run(cmd.Context(), req, outputPath); err != nil {
		return err
	}

	fmt.Fprintf(a.stdout, "Image saved to %s\n", outputPath)
	return nil
}

// resolveAPIKey resolves the key in precedence order: flag, environment
// variable, keystore entry.
func (a *App) resolveAPIKey(canonical string) (string, error) {
	if a.genAPIKey != "" {
		return a.genAPIKey, nil
	}

	if envVar, ok := apiKeyEnvVars[canonical]; ok {
		if key := os.Getenv(envVar); key != "" {
			return key, nil
		}
	}

	ref := canonical
	if pc := a.cfg.GetProvider(canonical); pc != nil && pc.APIKeyRef != "" {
		ref = pc.APIKeyRef
	}

	ks, err := a.newKeystore()
	if err != nil {
		return "", fmt.Errorf("failed to open keystore: %w", err)
	}
	key, err := ks.Get(ref)
	if err != nil {
		var notFound *keystore.ErrKeyNotFound
		if errors.As(err, &notFound) {
			return "", core.ErrAPIKeyRequired
		}
		return "", fmt.Errorf("failed to read keystore: %w", err)
	}
	return key, nil
}

// resolveModel prefers the --model flag, then the per-provider config
// override. Blank means the provider's built-in default.
func (a *App) resolveModel(canonical string) core.ModelID {
	if a.model != "" {
		return core.ModelID(a.model)
	}
	if pc := a.cfg.GetProvider(canonical); pc != nil && pc.DefaultModel != "" {
		return core.ModelID(pc.DefaultModel)
	}
	return ""
}

func (a *App) resolveSizeToken() string {
	if a.genSize != "" {
		return a.genSize
	}
	return a.cfg.DefaultSize
}

func (a *App) resolveOutputPath() string {
	if a.genOutput != "" {
		return a.genOutput
	}
	if a.cfg.DefaultOutput != "" {
		return a.cfg.DefaultOutput
	}
	return config.FallbackOutput
}

// parseOptions turns repeated key=value flags into an options map.
// Malformed entries are skipped with a notice rather than aborting.
func parseOptions(pairs []string, log core.Logger) map[string]string {
	if len(pairs) == 0 {
		return nil
	}
	opts := make(map[string]string, len(pairs))
	for _, pair := range pairs {
		key, value, ok := strings.Cut(pair, "=")
		if !ok || key == "" {
			log.Warnf("ignoring malformed --opt %q: want key=value", pair)
			continue
		}
		opts[key] = value
	}
	return opts
}

const timeRounding = 10 * time.Millisecond

// debugTelemetry surfaces generation lifecycle events through the
// injected logger at debug level.
type debugTelemetry struct {
	log core.Logger
}

func (t *debugTelemetry) OnGenerateStart(e core.GenerateStartEvent) {
	t.log.Debugf("requesting %s image from %s model %s", e.Size, e.Provider, e.Model)
}

func (t *debugTelemetry) OnGenerateEnd(e core.GenerateEndEvent) {
	if e.Err != nil {
		t.log.Debugf("generation failed after %s", e.Duration().Round(timeRounding))
		return
	}
	t.log.Debugf("generation finished in %s", e.Duration().Round(timeRounding))
}
