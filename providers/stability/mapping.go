package stability

import (
	"strconv"

	"github.com/imago-ai/imago/core"
)

// Request defaults for the text-to-image endpoint.
const (
	defaultCfgScale    = 7.0
	defaultSteps       = 30
	defaultStylePreset = "photographic"
)

// mapRequest converts a core request to the Stability wire format.
// Provider options may override steps, cfg_scale, and style_preset;
// unparseable overrides keep the defaults.
func mapRequest(req *core.ImageRequest) *imageRequest {
	wire := &imageRequest{
		TextPrompts: []textPrompt{{Text: req.Prompt, Weight: 1.0}},
		CfgScale:    defaultCfgScale,
		Height:      req.Size.Height,
		Width:       req.Size.Width,
		Samples:     1,
		Steps:       defaultSteps,
		StylePreset: req.Option("style_preset", defaultStylePreset),
	}

	if steps, err := strconv.Atoi(req.Option("steps", "")); err == nil && steps > 0 {
		wire.Steps = steps
	}
	if cfg, err := strconv.ParseFloat(req.Option("cfg_scale", ""), 64); err == nil && cfg > 0 {
		wire.CfgScale = cfg
	}

	return wire
}

// mapResponse converts a successful wire response into a core result.
// An empty artifact list is reported as a failure, never a nil result.
func mapResponse(resp *imageResponse) (*core.ImageResult, error) {
	if len(resp.Artifacts) == 0 {
		return nil, newNoImageDataError()
	}
	first := resp.Artifacts[0]
	if first.Base64 == "" {
		return nil, newNoImageDataError()
	}
	return core.NewInlineResult(first.Base64), nil
}
