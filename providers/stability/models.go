package stability

import "github.com/imago-ai/imago/core"

// DefaultModel is used when a request does not name an engine.
const DefaultModel core.ModelID = "stable-diffusion-xl-1024-v1-0"

var models = []core.ModelInfo{
	{
		ID:          "stable-diffusion-xl-1024-v1-0",
		DisplayName: "Stable Diffusion XL 1.0",
		Sizes:       []core.Size{core.Size1024x1024, core.Size1024x768, core.Size768x1024},
	},
	{
		ID:          "stable-diffusion-v1-6",
		DisplayName: "Stable Diffusion 1.6",
		Sizes:       []core.Size{core.Size256x256, core.Size512x512, core.Size1024x1024},
	},
}

var profile = core.Profile{
	DefaultModel: DefaultModel,
	DefaultSize:  core.Size1024x1024,
	Sizes: []core.Size{
		core.Size256x256,
		core.Size512x512,
		core.Size1024x1024,
		core.Size1024x768,
		core.Size768x1024,
	},
	ResultKind: core.ResultKindInline,
}
