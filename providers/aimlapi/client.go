package aimlapi

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"

	"github.com/imago-ai/imago/core"
)

// Generate issues a single synchronous generation request against
// POST /v1/images/generations.
func (p *AIML) Generate(ctx context.Context, req *core.ImageRequest) (*core.ImageResult, error) {
	body, err := json.Marshal(mapRequest(req))
	if err != nil {
		return nil, newDecodeError(err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost,
		p.config.BaseURL+"/v1/images/generations", bytes.NewReader(body))
	if err != nil {
		return nil, newNetworkError(err)
	}
	httpReq.Header.Set("Authorization", "Bearer "+p.config.APIKey.Expose())
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := p.config.HTTPClient.Do(httpReq)
	if err != nil {
		return nil, newNetworkError(err)
	}
	defer resp.Body.Close()

	// The aggregator answers 201 on some models and 200 on others.
	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusCreated {
		respBody, _ := io.ReadAll(resp.Body)
		return nil, newHTTPError(resp.StatusCode, respBody)
	}

	var wire imageResponse
	if err := json.NewDecoder(resp.Body).Decode(&wire); err != nil {
		return nil, newDecodeError(err)
	}

	return mapResponse(&wire)
}
