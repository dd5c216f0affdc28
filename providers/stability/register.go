package stability

import (
	"github.com/imago-ai/imago/core"
	"github.com/imago-ai/imago/providers"
)

func init() {
	providers.Register("stability", func(apiKey string) core.Provider {
		return New(apiKey)
	}, "stable-diffusion", "sd")
}
