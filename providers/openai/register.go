package openai

import (
	"github.com/imago-ai/imago/core"
	"github.com/imago-ai/imago/providers"
)

func init() {
	providers.Register("openai", func(apiKey string) core.Provider {
		return New(apiKey)
	}, "dall-e", "dalle")
}
