package core

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"
)

// Runner sequences a single generation invocation against one provider:
// validate key, generate, materialize. Each step aborts the invocation on
// failure; nothing is retried.
//
// Runner holds no state across invocations and is safe for concurrent use.
type Runner struct {
	provider     Provider
	materializer *Materializer
	logger       Logger
	telemetry    TelemetryHook
}

// RunnerOption configures a Runner.
type RunnerOption func(*Runner)

// WithLogger sets the diagnostic logger.
func WithLogger(l Logger) RunnerOption {
	return func(r *Runner) {
		if l != nil {
			r.logger = l
		}
	}
}

// WithTelemetry sets the telemetry hook.
func WithTelemetry(h TelemetryHook) RunnerOption {
	return func(r *Runner) {
		if h != nil {
			r.telemetry = h
		}
	}
}

// WithMaterializer sets the materializer used to persist results.
func WithMaterializer(m *Materializer) RunnerOption {
	return func(r *Runner) {
		if m != nil {
			r.materializer = m
		}
	}
}

// NewRunner creates a Runner for the given provider.
func NewRunner(p Provider, opts ...RunnerOption) *Runner {
	r := &Runner{
		provider:     p,
		materializer: NewMaterializer(),
		logger:       NopLogger{},
		telemetry:    NoopTelemetryHook{},
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Run executes one invocation end to end and writes the image to
// outputPath. On success the file holds the complete payload; on any
// failure the destination is left unmodified and the returned error
// explains why (with remediation guidance already logged).
func (r *Runner) Run(ctx context.Context, req *ImageRequest, outputPath string) error {
	if strings.TrimSpace(req.Prompt) == "" {
		return ErrPromptRequired
	}

	profile := r.provider.Profile()

	// Fill in invocation defaults without mutating the caller's request.
	resolved := *req
	if resolved.Model == "" {
		resolved.Model = profile.DefaultModel
		r.logger.Debugf("no model specified, using %s default %s", r.provider.ID(), resolved.Model)
	}
	if resolved.Size.IsZero() {
		resolved.Size = profile.ResolveSize(resolved.SizeToken, r.logger)
	}

	if err := r.provider.ValidateKey(ctx); err != nil {
		r.explain(err)
		return fmt.Errorf("key validation failed: %w", err)
	}

	start := time.Now()
	r.telemetry.OnGenerateStart(GenerateStartEvent{
		Provider: r.provider.ID(),
		Model:    resolved.Model,
		Size:     resolved.Size,
		Start:    start,
	})

	result, err := r.provider.Generate(ctx, &resolved)

	r.telemetry.OnGenerateEnd(GenerateEndEvent{
		Provider: r.provider.ID(),
		Model:    resolved.Model,
		Start:    start,
		End:      time.Now(),
		Err:      err,
	})

	if err != nil {
		r.explain(err)
		return err
	}

	if err := r.materializer.Save(ctx, result, outputPath); err != nil {
		r.logger.Errorf("could not save image: %v", err)
		return err
	}

	r.logger.Debugf("image written to %s", outputPath)
	return nil
}

// explain logs a human-readable diagnostic for a failed step, including
// any provider-specific remediation guidance.
func (r *Runner) explain(err error) {
	r.logger.Errorf("%v", err)
	var provErr *ProviderError
	if errors.As(err, &provErr) && provErr.Guidance != "" {
		r.logger.Errorf("hint: %s", provErr.Guidance)
	}
}
