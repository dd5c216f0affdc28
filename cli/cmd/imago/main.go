// Command imago generates images from text prompts via third-party
// providers and saves them to disk.
package main

import (
	"os"

	"github.com/joho/godotenv"

	"github.com/imago-ai/imago/cli/commands"
)

func main() {
	// Optional .env support; a missing file is fine.
	_ = godotenv.Load()

	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
