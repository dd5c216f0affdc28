package openai

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"

	"github.com/imago-ai/imago/core"
)

// Generate issues a single synchronous generation request against
// POST /images/generations.
func (p *OpenAI) Generate(ctx context.Context, req *core.ImageRequest) (*core.ImageResult, error) {
	body, err := json.Marshal(mapRequest(req))
	if err != nil {
		return nil, newDecodeError(err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost,
		p.config.BaseURL+"/images/generations", bytes.NewReader(body))
	if err != nil {
		return nil, newNetworkError(err)
	}
	for key, values := range p.buildHeaders() {
		for _, v := range values {
			httpReq.Header.Add(key, v)
		}
	}

	resp, err := p.config.HTTPClient.Do(httpReq)
	if err != nil {
		return nil, newNetworkError(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		respBody, _ := io.ReadAll(resp.Body)
		return nil, newHTTPError(resp.StatusCode, respBody)
	}

	var wire imageResponse
	if err := json.NewDecoder(resp.Body).Decode(&wire); err != nil {
		return nil, newDecodeError(err)
	}

	return mapResponse(&wire)
}
