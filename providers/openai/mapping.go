package openai

import "github.com/imago-ai/imago/core"

// mapRequest converts a core request to the OpenAI wire format.
func mapRequest(req *core.ImageRequest) *imageRequest {
	return &imageRequest{
		Model:  string(req.Model),
		Prompt: req.Prompt,
		N:      1,
		Size:   req.Size.String(),
	}
}

// mapResponse converts a successful wire response into a core result.
// An empty data list means the provider returned success without an
// image; that is reported as a failure, never a nil result.
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
