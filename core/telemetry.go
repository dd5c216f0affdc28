package core

import "time"

// TelemetryHook receives notifications about generation lifecycle events.
// Implementations can use this for logging, metrics, or tracing.
//
// Event types never carry sensitive data: API keys, prompt text, and
// image payloads are all excluded. Only operational metadata (provider,
// model, timing, outcome) is exposed, so events can be logged or shipped
// to monitoring systems without review. Keep it that way when extending.
type TelemetryHook interface {
	// OnGenerateStart is called when a generation request begins.
	OnGenerateStart(e GenerateStartEvent)

	// OnGenerateEnd is called when a generation request completes.
	OnGenerateEnd(e GenerateEndEvent)
}

// GenerateStartEvent contains metadata about a starting generation request.
type GenerateStartEvent struct {
	Provider string    // Provider identifier (e.g. "openai", "stability")
	Model    ModelID   // Model being called
	Size     Size      // Resolved image dimensions
	Start    time.Time // When the request started
}

// GenerateEndEvent contains metadata about a completed generation request.
// Err carries the classification sentinel chain, not raw response bodies.
type GenerateEndEvent struct {
	Provider string
	Model    ModelID
	Start    time.Time
	End      time.Time
	Err      error // nil on success
}

// Duration returns the elapsed time for the request.
func (e GenerateEndEvent) Duration() time.Duration {
	return e.End.Sub(e.Start)
}

// NoopTelemetryHook is a no-op implementation of TelemetryHook.
// It is the default when no telemetry is configured.
type NoopTelemetryHook struct{}

// OnGenerateStart does nothing.
func (NoopTelemetryHook) OnGenerateStart(GenerateStartEvent) {}

// OnGenerateEnd does nothing.
func (NoopTelemetryHook) OnGenerateEnd(GenerateEndEvent) {}

var _ TelemetryHook = NoopTelemetryHook{}
