package commands

import (
	"fmt"
	"runtime"

	"github.com/spf13/cobra"
)

// Version is the CLI version, overridable at build time with
// -ldflags "-X github.com/imago-ai/imago/cli/commands.Version=v1.2.3".
var Version = "dev"

func (a *App) newVersionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Fprintf(a.stdout, "imago %s %s/%s\n", Version, runtime.GOOS, runtime.GOARCH)
			return nil
		},
	}
}
