package stability

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/imago-ai/imago/core"
)

// Generate issues a single synchronous generation request against
// POST /v1/generation/{engine}/text-to-image.
func (p *Stability) Generate(ctx context.Context, req *core.ImageRequest) (*core.ImageResult, error) {
	body, err := json.Marshal(mapRequest(req))
	if err != nil {
		return nil, newDecodeError(err)
	}

	url := fmt.Sprintf("%s/v1/generation/%s/text-to-image", p.config.BaseURL, req.Model)
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return nil, newNetworkError(err)
	}
	httpReq.Header.Set("Authorization", "Bearer "+p.config.APIKey.Expose())
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Accept", "application/json")

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
