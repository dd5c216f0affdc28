package aimlapi

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/imago-ai/imago/core"
)

func TestGenerate(t *testing.T) {
	var gotReq imageRequest
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/v1/images/generations" {
			t.Errorf("path = %s", r.URL.Path)
		}
		if got := r.Header.Get("Authorization"); got != "Bearer test-key" {
			t.Errorf("Authorization = %q", got)
		}
		if err := json.NewDecoder(r.Body).Decode(&gotReq); err != nil {
			t.Errorf("decode request: %v", err)
		}
		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(imageResponse{
			Created: 1700000000,
			Data:    []imageData{{URL: "https://cdn.aimlapi.com/out.png"}},
		})
	}))
	defer srv.Close()

	p := New("test-key", WithBaseURL(srv.URL))
	result, err := p.Generate(context.Background(), &core.ImageRequest{
		Prompt: "a red fox",
		Model:  "flux/schnell",
		Size:   core.Size1024x1024,
	})
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}

	if gotReq.Model != "flux/schnell" || gotReq.Prompt != "a red fox" {
		t.Errorf("wire request = %+v", gotReq)
	}
	if gotReq.N != 1 {
		t.Errorf("wire N = %d, want 1", gotReq.N)
	}
	if gotReq.Background != "auto" || gotReq.Moderation != "auto" {
		t.Errorf("wire defaults = background %q moderation %q", gotReq.Background, gotReq.Moderation)
	}
	if gotReq.OutputCompression != 100 {
		t.Errorf("wire output_compression = %d, want 100", gotReq.OutputCompression)
	}
	if gotReq.OutputFormat != defaultOutputFormat || gotReq.Quality != defaultQuality {
		t.Errorf("wire format/quality = %q/%q", gotReq.OutputFormat, gotReq.Quality)
	}
	if gotReq.ResponseFormat != "url" {
		t.Errorf("wire response_format = %q, want url", gotReq.ResponseFormat)
	}

	if result.Kind() != core.ResultKindURL {
		t.Errorf("Kind() = %q, want url", result.Kind())
	}
	if result.URL() != "https://cdn.aimlapi.com/out.png" {
		t.Errorf("URL() = %q", result.URL())
	}
}

func TestGenerateAccepts200And201(t *testing.T) {
	for _, status := range []int{http.StatusOK, http.StatusCreated} {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(status)
			json.NewEncoder(w).Encode(imageResponse{Data: []imageData{{URL: "https://x/y.png"}}})
		}))

		p := New("test-key", WithBaseURL(srv.URL))
		_, err := p.Generate(context.Background(), &core.ImageRequest{Prompt: "x", Model: DefaultModel})
		srv.Close()
		if err != nil {
			t.Errorf("status %d: Generate: %v", status, err)
		}
	}
}

func TestGenerateOptionOverrides(t *testing.T) {
	var gotReq imageRequest
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewDecoder(r.Body).Decode(&gotReq)
		json.NewEncoder(w).Encode(imageResponse{Data: []imageData{{URL: "https://x/y.png"}}})
	}))
	defer srv.Close()

	p := New("test-key", WithBaseURL(srv.URL))
	_, err := p.Generate(context.Background(), &core.ImageRequest{
		Prompt:  "a red fox",
		Model:   DefaultModel,
		Size:    core.Size1024x1024,
		Options: map[string]string{"quality": "high", "output_format": "webp"},
	})
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}

	if gotReq.Quality != "high" {
		t.Errorf("quality = %q, want high", gotReq.Quality)
	}
	if gotReq.OutputFormat != "webp" {
		t.Errorf("output_format = %q, want webp", gotReq.OutputFormat)
	}
}

func TestGenerateErrors(t *testing.T) {
	tests := []struct {
		name   string
		status int
		body   string
		want   error
	}{
		{"unauthorized", 401, `{"error":{"message":"invalid token"}}`, core.ErrAuthenticationFailed},
		{"rate limited", 429, `{"error":{"message":"quota exceeded"}}`, core.ErrRateLimited},
		{"insufficient credits", 400, `{"error":{"message":"insufficient_credits"}}`, core.ErrInsufficientCredits},
		{"server error", 502, `bad gateway`, core.ErrUnknown},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				w.Write([]byte(tt.body))
			}))
			defer srv.Close()

			p := New("test-key", WithBaseURL(srv.URL))
			_, err := p.Generate(context.Background(), &core.ImageRequest{Prompt: "x", Model: DefaultModel})
			if !errors.Is(err, tt.want) {
				t.Errorf("err = %v, want %v", err, tt.want)
			}
		})
	}
}

func TestGenerateEmptyData(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"created":1700000000,"data":[]}`))
	}))
	defer srv.Close()

	p := New("test-key", WithBaseURL(srv.URL))
	_, err := p.Generate(context.Background(), &core.ImageRequest{Prompt: "x", Model: DefaultModel})
	if !errors.Is(err, core.ErrNoImageData) {
		t.Errorf("err = %v, want ErrNoImageData", err)
	}
}

// The profile's accepted sizes and the per-model size lists must agree:
// every accepted size is offered by some model, and no model offers a
// size the profile rejects.
func TestProfileSizesMatchModels(t *testing.T) {
	p := New("test-key")
	prof := p.Profile()

	offered := make(map[core.Size]bool)
	for _, model := range p.Models() {
		for _, size := range model.Sizes {
			offered[size] = true
			if !prof.Supports(size) {
				t.Errorf("model %s offers %s but the profile rejects it", model.ID, size)
			}
		}
	}
	for _, size := range prof.Sizes {
		if !offered[size] {
			t.Errorf("profile accepts %s but no model offers it", size)
		}
	}
}

// ValidateKey has no probe endpoint to call, so it must succeed without
// touching the network.
func TestValidateKeyIsOffline(t *testing.T) {
	p := New("whatever-key")
	if err := p.ValidateKey(context.Background()); err != nil {
		t.Errorf("ValidateKey: %v", err)
	}
}

func TestNewFromEnv(t *testing.T) {
	t.Setenv(DefaultAPIKeyEnvVar, "env-key")
	if _, err := NewFromEnv(); err != nil {
		t.Fatalf("NewFromEnv: %v", err)
	}

	t.Setenv(DefaultAPIKeyEnvVar, "")
	if _, err := NewFromEnv(); !errors.Is(err, ErrAPIKeyNotFound) {
		t.Errorf("err = %v, want ErrAPIKeyNotFound", err)
	}
}
