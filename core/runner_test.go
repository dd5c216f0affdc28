package core

import (
	"context"
	"encoding/base64"
	"errors"
	"os"
	"path/filepath"
	"testing"
)

// fakeProvider is a scriptable Provider for exercising the Runner.
type fakeProvider struct {
	id          string
	profile     Profile
	validateErr error
	generateErr error
	result      *ImageResult

	validateCalls int
	generateCalls int
	lastRequest   *ImageRequest
}

func (f *fakeProvider) ID() string          { return f.id }
func (f *fakeProvider) Profile() Profile    { return f.profile }
func (f *fakeProvider) Models() []ModelInfo { return nil }

func (f *fakeProvider) ValidateKey(ctx context.Context) error {
	f.validateCalls++
	return f.validateErr
}

func (f *fakeProvider) Generate(ctx context.Context, req *ImageRequest) (*ImageResult, error) {
	f.generateCalls++
	f.lastRequest = req
	if f.generateErr != nil {
		return nil, f.generateErr
	}
	return f.result, nil
}

var _ Provider = (*fakeProvider)(nil)

func testProfile() Profile {
	return Profile{
		DefaultModel: "test-model-v2",
		DefaultSize:  Size1024x1024,
		Sizes:        []Size{Size512x512, Size1024x1024},
		ResultKind:   ResultKindInline,
	}
}

func inlineResult(t *testing.T, data []byte) *ImageResult {
	t.Helper()
	return NewInlineResult(base64.StdEncoding.EncodeToString(data))
}

func TestRunnerSuccess(t *testing.T) {
	provider := &fakeProvider{
		id:      "fake",
		profile: testProfile(),
		result:  inlineResult(t, []byte("image bytes")),
	}
	out := filepath.Join(t.TempDir(), "out.png")

	runner := NewRunner(provider)
	req := &ImageRequest{Prompt: "a red fox", SizeToken: "512x512"}
	if err := runner.Run(context.Background(), req, out); err != nil {
		t.Fatalf("Run: %v", err)
	}

	got, err := os.ReadFile(out)
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}
	if string(got) != "image bytes" {
		t.Errorf("file contents = %q", got)
	}

	if provider.validateCalls != 1 || provider.generateCalls != 1 {
		t.Errorf("calls = %d validate, %d generate; want 1 each",
			provider.validateCalls, provider.generateCalls)
	}
	if provider.lastRequest.Model != "test-model-v2" {
		t.Errorf("model = %q, want profile default", provider.lastRequest.Model)
	}
	if provider.lastRequest.Size != Size512x512 {
		t.Errorf("size = %v, want 512x512", provider.lastRequest.Size)
	}
}

func TestRunnerDoesNotMutateRequest(t *testing.T) {
	provider := &fakeProvider{
		id:      "fake",
		profile: testProfile(),
		result:  inlineResult(t, []byte("x")),
	}
	req := &ImageRequest{Prompt: "a red fox"}

	runner := NewRunner(provider)
	if err := runner.Run(context.Background(), req, filepath.Join(t.TempDir(), "out.png")); err != nil {
		t.Fatalf("Run: %v", err)
	}

	if req.Model != "" || !req.Size.IsZero() {
		t.Errorf("caller's request was mutated: model=%q size=%v", req.Model, req.Size)
	}
}

func TestRunnerExplicitModelKept(t *testing.T) {
	provider := &fakeProvider{
		id:      "fake",
		profile: testProfile(),
		result:  inlineResult(t, []byte("x")),
	}
	req := &ImageRequest{Prompt: "a red fox", Model: "custom-model"}

	runner := NewRunner(provider)
	if err := runner.Run(context.Background(), req, filepath.Join(t.TempDir(), "out.png")); err != nil {
		t.Fatalf("Run: %v", err)
	}
	if provider.lastRequest.Model != "custom-model" {
		t.Errorf("model = %q, want custom-model", provider.lastRequest.Model)
	}
}

func TestRunnerEmptyPrompt(t *testing.T) {
	provider := &fakeProvider{id: "fake", profile: testProfile()}
	runner := NewRunner(provider)

	for _, prompt := range []string{"", "   ", "\t\n"} {
		err := runner.Run(context.Background(), &ImageRequest{Prompt: prompt}, "out.png")
		if !errors.Is(err, ErrPromptRequired) {
			t.Errorf("prompt %q: err = %v, want ErrPromptRequired", prompt, err)
		}
	}
	if provider.validateCalls != 0 || provider.generateCalls != 0 {
		t.Errorf("provider was called despite empty prompt")
	}
}

func TestRunnerValidateKeyAborts(t *testing.T) {
	keyErr := &ProviderError{
		Provider: "fake",
		Status:   401,
		Message:  "bad key",
		Guidance: "regenerate the key in the dashboard",
		Err:      ErrAuthenticationFailed,
	}
	provider := &fakeProvider{id: "fake", profile: testProfile(), validateErr: keyErr}
	log := &recordingLogger{}

	runner := NewRunner(provider, WithLogger(log))
	err := runner.Run(context.Background(), &ImageRequest{Prompt: "a red fox"}, "out.png")
	if !errors.Is(err, ErrAuthenticationFailed) {
		t.Fatalf("err = %v, want ErrAuthenticationFailed", err)
	}
	if provider.generateCalls != 0 {
		t.Errorf("Generate called after failed key validation")
	}

	var sawHint bool
	for _, line := range log.errs {
		if line == "hint: regenerate the key in the dashboard" {
			sawHint = true
		}
	}
	if !sawHint {
		t.Errorf("guidance was not logged: %v", log.errs)
	}
}

func TestRunnerGenerateErrorPropagates(t *testing.T) {
	genErr := &ProviderError{
		Provider: "fake",
		Status:   429,
		Message:  "slow down",
		Err:      ErrRateLimited,
	}
	provider := &fakeProvider{id: "fake", profile: testProfile(), generateErr: genErr}
	out := filepath.Join(t.TempDir(), "out.png")

	runner := NewRunner(provider)
	err := runner.Run(context.Background(), &ImageRequest{Prompt: "a red fox"}, out)
	if !errors.Is(err, ErrRateLimited) {
		t.Fatalf("err = %v, want ErrRateLimited", err)
	}
	if _, statErr := os.Stat(out); !os.IsNotExist(statErr) {
		t.Errorf("output file exists after failed generation")
	}
}

// recordingHook captures telemetry events.
type recordingHook struct {
	starts []GenerateStartEvent
	ends   []GenerateEndEvent
}

func (h *recordingHook) OnGenerateStart(e GenerateStartEvent) { h.starts = append(h.starts, e) }
func (h *recordingHook) OnGenerateEnd(e GenerateEndEvent)     { h.ends = append(h.ends, e) }

func TestRunnerTelemetry(t *testing.T) {
	provider := &fakeProvider{
		id:      "fake",
		profile: testProfile(),
		result:  inlineResult(t, []byte("x")),
	}
	hook := &recordingHook{}

	runner := NewRunner(provider, WithTelemetry(hook))
	req := &ImageRequest{Prompt: "a red fox"}
	if err := runner.Run(context.Background(), req, filepath.Join(t.TempDir(), "out.png")); err != nil {
		t.Fatalf("Run: %v", err)
	}

	if len(hook.starts) != 1 || len(hook.ends) != 1 {
		t.Fatalf("events = %d starts, %d ends; want 1 each", len(hook.starts), len(hook.ends))
	}
	if hook.starts[0].Provider != "fake" || hook.starts[0].Model != "test-model-v2" {
		t.Errorf("start event = %+v", hook.starts[0])
	}
	if hook.ends[0].Err != nil {
		t.Errorf("end event Err = %v, want nil", hook.ends[0].Err)
	}
	if hook.ends[0].Duration() < 0 {
		t.Errorf("negative duration %v", hook.ends[0].Duration())
	}
}

func TestRunnerTelemetryOnFailure(t *testing.T) {
	genErr := &ProviderError{Provider: "fake", Message: "down", Err: ErrUnknown}
	provider := &fakeProvider{id: "fake", profile: testProfile(), generateErr: genErr}
	hook := &recordingHook{}

	runner := NewRunner(provider, WithTelemetry(hook))
	_ = runner.Run(context.Background(), &ImageRequest{Prompt: "a red fox"}, "out.png")

	if len(hook.ends) != 1 {
		t.Fatalf("end events = %d, want 1", len(hook.ends))
	}
	if !errors.Is(hook.ends[0].Err, ErrUnknown) {
		t.Errorf("end event Err = %v, want ErrUnknown chain", hook.ends[0].Err)
	}
}
