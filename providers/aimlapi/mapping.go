package aimlapi

import "github.com/imago-ai/imago/core"

// Request defaults for the aggregator endpoint.
const (
	defaultQuality      = "medium"
	defaultOutputFormat = "png"
)

// mapRequest converts a core request to the AIML wire format.
// Provider options may override quality and output_format.
func mapRequest(req *core.ImageRequest) *imageRequest {
	return &imageRequest{
		Model:             string(req.Model),
		Prompt:            req.Prompt,
		Background:        "auto",
		Moderation:        "auto",
		N:                 1,
		OutputCompression: 100,
		OutputFormat:      req.Option("output_format", defaultOutputFormat),
		Quality:           req.Option("quality", defaultQuality),
		Size:              req.Size.String(),
		ResponseFormat:    "url",
	}
}

// mapResponse converts a successful wire response into a core result.
// An empty data list is reported as a failure, never a nil result.
func mapResponse(resp *imageResponse) (*core.ImageResult, error) {
	if len(resp.Data) == 0 {
		return nil, newNoImageDataError()
	}
	first := resp.Data[0]
	if first.URL == "" {
		return nil, newNoImageDataError()
	}
	return core.NewRemoteResult(first.URL).WithRevisedPrompt(first.RevisedPrompt), nil
}
