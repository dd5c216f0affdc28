package aimlapi

import "github.com/imago-ai/imago/core"

// DefaultModel is used when a request does not name a model.
const DefaultModel core.ModelID = "flux/schnell"

var models = []core.ModelInfo{
	{
		ID:          "flux/schnell",
		DisplayName: "FLUX.1 Schnell",
		Sizes:       []core.Size{core.Size512x512, core.Size1024x1024},
	},
	{
		ID:          "flux-pro",
		DisplayName: "FLUX Pro",
		Sizes:       []core.Size{core.Size1024x1024, core.Size1024x768, core.Size768x1024},
	},
	{
		ID:          "dall-e-3",
		DisplayName: "DALL-E 3 (via AIML)",
		Sizes:       []core.Size{core.Size1024x1024, core.Size1024x1792, core.Size1792x1024},
	},
}

var profile = core.Profile{
	DefaultModel: DefaultModel,
	DefaultSize:  core.Size1024x1024,
	Sizes: []core.Size{
		core.Size512x512,
		core.Size1024x1024,
		core.Size1024x768,
		core.Size768x1024,
		core.Size1024x1792,
		core.Size1792x1024,
	},
	ResultKind: core.ResultKindURL,
}
