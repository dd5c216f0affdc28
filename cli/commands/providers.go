package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/imago-ai/imago/providers"
)

func (a *App) newProvidersCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "providers",
		Short: "List available providers and their models",
		RunE:  a.runProviders,
	}
}

func (a *App) runProviders(cmd *cobra.Command, args []string) error {
	for _, name := range providers.List() {
		// Key material is irrelevant for metadata.
		provider, err := providers.Create(name, "")
		if err != nil {
			return err
		}

		profile := provider.Profile()
		fmt.Fprintf(a.stdout, "%s (default model %s, default size %s)\n",
			name, profile.DefaultModel, profile.DefaultSize)
		for _, model := range provider.Models() {
			fmt.Fprintf(a.stdout, "  %-32s %s\n", model.ID, model.DisplayName)
		}
	}
	return nil
}
