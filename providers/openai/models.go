package openai

import "github.com/imago-ai/imago/core"

// DefaultModel is used when a request does not name a model.
const DefaultModel core.ModelID = "dall-e-3"

var models = []core.ModelInfo{
	{
		ID:          "dall-e-2",
		DisplayName: "DALL-E 2",
		Sizes:       []core.Size{core.Size256x256, core.Size512x512, core.Size1024x1024},
	},
	{
		ID:          "dall-e-3",
		DisplayName: "DALL-E 3",
		Sizes:       []core.Size{core.Size1024x1024, core.Size1024x1792, core.Size1792x1024},
	},
	{
		ID:          "gpt-image-1",
		DisplayName: "GPT Image 1",
		Sizes:       []core.Size{core.Size1024x1024},
	},
}

var profile = core.Profile{
	DefaultModel: DefaultModel,
	DefaultSize:  core.Size1024x1024,
	Sizes: []core.Size{
		core.Size256x256,
		core.Size512x512,
		core.Size1024x1024,
		core.Size1024x1792,
		core.Size1792x1024,
	},
	ResultKind: core.ResultKindURL,
}
