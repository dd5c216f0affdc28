package stability

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/imago-ai/imago/core"
)

func TestGenerate(t *testing.T) {
	payload := base64.StdEncoding.EncodeToString([]byte("fake png bytes"))
	var gotReq imageRequest
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if want := "/v1/generation/stable-diffusion-xl-1024-v1-0/text-to-image"; r.URL.Path != want {
			t.Errorf("path = %s, want %s", r.URL.Path, want)
		}
		if got := r.Header.Get("Authorization"); got != "Bearer test-key" {
			t.Errorf("Authorization = %q", got)
		}
		if got := r.Header.Get("Accept"); got != "application/json" {
			t.Errorf("Accept = %q", got)
		}
		if err := json.NewDecoder(r.Body).Decode(&gotReq); err != nil {
			t.Errorf("decode request: %v", err)
		}
		json.NewEncoder(w).Encode(imageResponse{
			Artifacts: []artifact{{Base64: payload, FinishReason: "SUCCESS", Seed: 42}},
		})
	}))
	defer srv.Close()

	p := New("test-key", WithBaseURL(srv.URL))
	result, err := p.Generate(context.Background(), &core.ImageRequest{
		Prompt: "a red fox",
		Model:  DefaultModel,
		Size:   core.Size512x512,
	})
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}

	if len(gotReq.TextPrompts) != 1 || gotReq.TextPrompts[0].Text != "a red fox" {
		t.Errorf("wire prompts = %+v", gotReq.TextPrompts)
	}
	if gotReq.TextPrompts[0].Weight != 1.0 {
		t.Errorf("wire weight = %v, want 1.0", gotReq.TextPrompts[0].Weight)
	}
	if gotReq.Width != 512 || gotReq.Height != 512 {
		t.Errorf("wire dims = %dx%d, want 512x512", gotReq.Width, gotReq.Height)
	}
	if gotReq.Samples != 1 {
		t.Errorf("wire samples = %d, want 1", gotReq.Samples)
	}
	if gotReq.Steps != defaultSteps || gotReq.CfgScale != defaultCfgScale {
		t.Errorf("wire defaults = steps %d cfg %v", gotReq.Steps, gotReq.CfgScale)
	}
	if gotReq.StylePreset != defaultStylePreset {
		t.Errorf("wire style = %q", gotReq.StylePreset)
	}

	if result.Kind() != core.ResultKindInline {
		t.Errorf("Kind() = %q, want inline", result.Kind())
	}
	if result.B64() != payload {
		t.Errorf("B64() does not match served payload")
	}
}

func TestGenerateOptionOverrides(t *testing.T) {
	var gotReq imageRequest
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewDecoder(r.Body).Decode(&gotReq)
		json.NewEncoder(w).Encode(imageResponse{Artifacts: []artifact{{Base64: "aGk="}}})
	}))
	defer srv.Close()

	p := New("test-key", WithBaseURL(srv.URL))
	_, err := p.Generate(context.Background(), &core.ImageRequest{
		Prompt: "a red fox",
		Model:  DefaultModel,
		Size:   core.Size1024x1024,
		Options: map[string]string{
			"steps":        "50",
			"cfg_scale":    "9.5",
			"style_preset": "anime",
		},
	})
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}

	if gotReq.Steps != 50 {
		t.Errorf("steps = %d, want 50", gotReq.Steps)
	}
	if gotReq.CfgScale != 9.5 {
		t.Errorf("cfg_scale = %v, want 9.5", gotReq.CfgScale)
	}
	if gotReq.StylePreset != "anime" {
		t.Errorf("style_preset = %q, want anime", gotReq.StylePreset)
	}
}

func TestGenerateUnparseableOptionsKeepDefaults(t *testing.T) {
	var gotReq imageRequest
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewDecoder(r.Body).Decode(&gotReq)
		json.NewEncoder(w).Encode(imageResponse{Artifacts: []artifact{{Base64: "aGk="}}})
	}))
	defer srv.Close()

	p := New("test-key", WithBaseURL(srv.URL))
	_, err := p.Generate(context.Background(), &core.ImageRequest{
		Prompt:  "a red fox",
		Model:   DefaultModel,
		Size:    core.Size1024x1024,
		Options: map[string]string{"steps": "lots", "cfg_scale": "-3"},
	})
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}

	if gotReq.Steps != defaultSteps {
		t.Errorf("steps = %d, want default %d", gotReq.Steps, defaultSteps)
	}
	if gotReq.CfgScale != defaultCfgScale {
		t.Errorf("cfg_scale = %v, want default %v", gotReq.CfgScale, defaultCfgScale)
	}
}

func TestGenerateErrors(t *testing.T) {
	tests := []struct {
		name   string
		status int
		body   string
		want   error
	}{
		{"unauthorized", 401, `{"message":"incorrect API key"}`, core.ErrAuthenticationFailed},
		{"forbidden", 403, `{"message":"forbidden"}`, core.ErrAuthenticationFailed},
		{"rate limited", 429, `{"message":"too many requests"}`, core.ErrRateLimited},
		{"insufficient credits", 400, `{"name":"insufficient_credits","message":"Not enough credits"}`, core.ErrInsufficientCredits},
		{"plain bad request", 400, `{"name":"bad_request","message":"height must be a multiple of 64"}`, core.ErrUnknown},
		{"server error", 500, ``, core.ErrUnknown},
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

func TestGenerateEmptyArtifacts(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"no artifacts", `{"artifacts":[]}`},
		{"empty base64", `{"artifacts":[{"base64":"","finishReason":"CONTENT_FILTERED"}]}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.Write([]byte(tt.body))
			}))
			defer srv.Close()

			p := New("test-key", WithBaseURL(srv.URL))
			_, err := p.Generate(context.Background(), &core.ImageRequest{Prompt: "x", Model: DefaultModel})
			if !errors.Is(err, core.ErrNoImageData) {
				t.Errorf("err = %v, want ErrNoImageData", err)
			}
		})
	}
}

func TestValidateKey(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/v1/user/account" {
			t.Errorf("probe path = %s, want /v1/user/account", r.URL.Path)
		}
		if r.Header.Get("Authorization") != "Bearer good-key" {
			w.WriteHeader(http.StatusUnauthorized)
			w.Write([]byte(`{"message":"incorrect API key"}`))
			return
		}
		w.Write([]byte(`{"email":"user@example.com"}`))
	}))
	defer srv.Close()

	good := New("good-key", WithBaseURL(srv.URL))
	if err := good.ValidateKey(context.Background()); err != nil {
		t.Errorf("ValidateKey with good key: %v", err)
	}

	bad := New("bad-key", WithBaseURL(srv.URL))
	if err := bad.ValidateKey(context.Background()); !errors.Is(err, core.ErrAuthenticationFailed) {
		t.Errorf("ValidateKey with bad key = %v, want ErrAuthenticationFailed", err)
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
