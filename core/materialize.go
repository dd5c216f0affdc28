package core

import (
	"context"
	"encoding/base64"
	"fmt"
	"io"
	"net"
	"net/http"
	"os"
	"path/filepath"
	"time"
)

// Download timeouts. Image hosts are ordinary CDNs, so the budget is
// tighter than for generation calls.
const (
	downloadTimeout        = 60 * time.Second
	downloadConnectTimeout = 30 * time.Second
)

// Materializer turns an ImageResult into a file on disk: remote URLs are
// downloaded with an unauthenticated GET, inline payloads are base64
// decoded. The write is atomic from the caller's perspective; a failure
// at any stage leaves the destination untouched.
type Materializer struct {
	client *http.Client
}

// MaterializerOption configures a Materializer.
type MaterializerOption func(*Materializer)

// WithDownloadClient sets the HTTP client used to fetch remote results.
func WithDownloadClient(c *http.Client) MaterializerOption {
	return func(m *Materializer) {
		if c != nil {
			m.client = c
		}
	}
}

// NewMaterializer creates a Materializer with bounded download timeouts.
func NewMaterializer(opts ...MaterializerOption) *Materializer {
	m := &Materializer{
		client: &http.Client{
			Timeout: downloadTimeout,
			Transport: &http.Transport{
				DialContext: (&net.Dialer{Timeout: downloadConnectTimeout}).DialContext,
			},
		},
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// Save resolves the result to bytes and writes them to outputPath,
// overwriting any existing file. Decode and download failures surface as
// errors before the destination is touched.
func (m *Materializer) Save(ctx context.Context, result *ImageResult, outputPath string) error {
	data, err := m.resolve(ctx, result)
	if err != nil {
		return err
	}
	return writeAtomic(outputPath, data)
}

// resolve produces the raw image bytes for either arm of the result union.
func (m *Materializer) resolve(ctx context.Context, result *ImageResult) ([]byte, error) {
	switch result.Kind() {
	case ResultKindURL:
		return m.download(ctx, result.URL())
	case ResultKindInline:
		data, err := base64.StdEncoding.DecodeString(result.B64())
		if err != nil {
			return nil, fmt.Errorf("%w: malformed image payload: %v", ErrDecode, err)
		}
		if len(data) == 0 {
			return nil, fmt.Errorf("%w: empty image payload", ErrDecode)
		}
		return data, nil
	default:
		return nil, fmt.Errorf("%w: result has no image", ErrNoImageData)
	}
}

func (m *Materializer) download(ctx context.Context, url string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDownload, err)
	}

	resp, err := m.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDownload, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("%w: status %d from image host", ErrDownload, resp.StatusCode)
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDownload, err)
	}
	if len(data) == 0 {
		return nil, fmt.Errorf("%w: empty response body", ErrDownload)
	}
	return data, nil
}

// writeAtomic writes data through a temp file in the destination
// directory and renames it into place, so a crash or write error never
// leaves a truncated file at path.
func writeAtomic(path string, data []byte) error {
	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, ".imago-*.tmp")
	if err != nil {
		return fmt.Errorf("create output file: %w", err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("write output file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("write output file: %w", err)
	}
	if err := os.Chmod(tmpName, 0o644); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("write output file: %w", err)
	}
	if err := os.Rename(tmpName, path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("write output file: %w", err)
	}
	return nil
}
