package aimlapi

// imageRequest is the wire format for POST /v1/images/generations.
//
// The AIML API advertises OpenAI compatibility with extension fields, but
// the upstream documentation is thin; treat this schema as best-effort
// rather than a verified contract. Field names below are kept bit-exact
// with the observed behavior of the live endpoint.
type imageRequest struct {
	Model             string `json:"model"`
	Prompt            string `json:"prompt"`
	Background        string `json:"background"`
	Moderation        string `json:"moderation"`
	N                 int    `json:"n"`
	OutputCompression int    `json:"output_compression"`
	OutputFormat      string `json:"output_format"`
	Quality           string `json:"quality"`
	Size              string `json:"size"`
	ResponseFormat    string `json:"response_format"`
}

// imageResponse is the wire format of a successful generation response.
type imageResponse struct {
	Created int64       `json:"created"`
	Data    []imageData `json:"data"`
}

type imageData struct {
	URL           string `json:"url"`
	RevisedPrompt string `json:"revised_prompt,omitempty"`
}
