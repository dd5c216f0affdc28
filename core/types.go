package core

import "context"

// ModelID is a string identifier for a model.
// Using string avoids coupling to provider-specific enums.
type ModelID string

// ResultKind discriminates how a provider family returns generated images.
type ResultKind string

const (
	// ResultKindURL means the provider returns a URL to download.
	ResultKindURL ResultKind = "url"
	// ResultKindInline means the provider returns base64 image data inline.
	ResultKindInline ResultKind = "inline"
)

// ModelInfo describes a model available from a provider.
type ModelInfo struct {
	ID          ModelID `json:"id"`
	DisplayName string  `json:"display_name"`
	Sizes       []Size  `json:"sizes,omitempty"`
}

// Profile is the static metadata for a provider family.
// Profiles are defined at build time and never mutated.
type Profile struct {
	// DefaultModel is substituted when a request leaves the model blank.
	DefaultModel ModelID
	// DefaultSize is the fallback for unrecognized size tokens.
	DefaultSize Size
	// Sizes lists the dimensions the provider accepts.
	Sizes []Size
	// ResultKind reports how the provider returns images.
	ResultKind ResultKind
}

// Supports reports whether the profile accepts the given size.
func (p Profile) Supports(s Size) bool {
	for _, accepted := range p.Sizes {
		if accepted == s {
			return true
		}
	}
	return false
}

// ImageRequest represents a single generation request.
// It is constructed once per invocation and not mutated afterwards.
type ImageRequest struct {
	// Prompt is the text description of the desired image (required).
	Prompt string
	// Model is the provider model to use. Blank means the profile default.
	Model ModelID
	// SizeToken is the raw size string supplied by the caller, e.g. "512x512".
	SizeToken string
	// Size is the resolved dimensions. The Runner fills this in from
	// SizeToken before delegating to the provider.
	Size Size
	// Options carries provider-specific overrides (e.g. steps, quality).
	// Adapters ignore keys they do not understand.
	Options map[string]string
}

// Option returns a provider option by key, or the given fallback.
func (r *ImageRequest) Option(key, fallback string) string {
	if v, ok := r.Options[key]; ok && v != "" {
		return v
	}
	return fallback
}

// ImageResult is the outcome of a successful generation: either a remote
// URL or an inline base64 payload, never both and never neither.
// Use the constructors; the zero value is not a valid result.
type ImageResult struct {
	kind          ResultKind
	url           string
	b64           string
	revisedPrompt string
}

// NewRemoteResult creates a result referencing a downloadable image.
func NewRemoteResult(url string) *ImageResult {
	return &ImageResult{kind: ResultKindURL, url: url}
}

// NewInlineResult creates a result carrying base64-encoded image data.
func NewInlineResult(b64 string) *ImageResult {
	return &ImageResult{kind: ResultKindInline, b64: b64}
}

// Kind reports which arm of the union is populated.
func (r *ImageResult) Kind() ResultKind { return r.kind }

// URL returns the remote image URL. Empty unless Kind is ResultKindURL.
func (r *ImageResult) URL() string { return r.url }

// B64 returns the inline base64 payload. Empty unless Kind is ResultKindInline.
func (r *ImageResult) B64() string { return r.b64 }

// RevisedPrompt returns the provider-rewritten prompt, if any.
func (r *ImageResult) RevisedPrompt() string { return r.revisedPrompt }

// WithRevisedPrompt attaches the provider-rewritten prompt to the result.
func (r *ImageResult) WithRevisedPrompt(p string) *ImageResult {
	r.revisedPrompt = p
	return r
}

// Provider is the interface that image-generation adapters implement.
// Providers SHOULD be safe for concurrent use.
type Provider interface {
	// ID returns the canonical provider identifier (e.g. "openai").
	ID() string

	// Profile returns the provider's static metadata.
	Profile() Profile

	// Models returns the list of models known for this provider.
	Models() []ModelInfo

	// ValidateKey performs a lightweight authenticated probe where the
	// provider exposes one. Providers without such an endpoint return nil
	// unconditionally; that is a weak guarantee and real validation is
	// deferred to the generation call. Implementations must document
	// which case applies.
	ValidateKey(ctx context.Context) error

	// Generate issues a single synchronous generation request.
	// Failures are returned as *ProviderError and are never retried.
	Generate(ctx context.Context, req *ImageRequest) (*ImageResult, error)
}
