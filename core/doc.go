// Package core defines the uniform image-generation model shared by all
// provider adapters.
//
// # Provider and Runner
//
// Every provider adapter implements the [Provider] interface:
//
//	type Provider interface {
//	    ID() string
//	    Profile() Profile
//	    Models() []ModelInfo
//	    ValidateKey(ctx context.Context) error
//	    Generate(ctx context.Context, req *ImageRequest) (*ImageResult, error)
//	}
//
// The [Runner] wraps a Provider and sequences a single invocation: key
// validation, generation, and materialization of the result to a file.
// Every failure is terminal; nothing is retried.
//
//	runner := core.NewRunner(provider, core.WithLogger(logger))
//	err := runner.Run(ctx, &core.ImageRequest{Prompt: "a cat"}, "out.png")
//
// # Results
//
// An [ImageResult] holds exactly one of a remote image URL or an inline
// base64 payload, depending on the provider family. The [Materializer]
// consumes it: remote URLs are downloaded, inline payloads are decoded,
// and the bytes are written atomically to the output path.
//
// # Error Handling
//
// Failed provider calls yield a [ProviderError] wrapping one of the
// classification sentinels. Use errors.Is to branch on the class:
//
//	if errors.Is(err, core.ErrInsufficientCredits) {
//	    // point the user at their billing page
//	}
//
// # Logging and Telemetry
//
// Components never log through a global. A [Logger] is injected where
// diagnostics are emitted (size fallback notices, failure explanations),
// and a [TelemetryHook] observes generation lifecycle events.
package core
