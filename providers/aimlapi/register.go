package aimlapi

import (
	"github.com/imago-ai/imago/core"
	"github.com/imago-ai/imago/providers"
)

func init() {
	providers.Register("aimlapi", func(apiKey string) core.Provider {
		return New(apiKey)
	}, "aiml", "aggregator")
}
