package stability

// textPrompt is one weighted prompt in a generation request.
type textPrompt struct {
	Text   string  `json:"text"`
	Weight float64 `json:"weight"`
}

// imageRequest is the wire format for
// POST /v1/generation/{engine}/text-to-image.
// Field names are a bit-exact contract with the live API.
type imageRequest struct {
	TextPrompts []textPrompt `json:"text_prompts"`
	CfgScale    float64      `json:"cfg_scale"`
	Height      int          `json:"height"`
	Width       int          `json:"width"`
	Samples     int          `json:"samples"`
	Steps       int          `json:"steps"`
	StylePreset string       `json:"style_preset"`
}

// imageResponse is the wire format of a successful generation response.
type imageResponse struct {
	Artifacts []artifact `json:"artifacts"`
}

type artifact struct {
	Base64       string `json:"base64"`
	FinishReason string `json:"finishReason"`
	Seed         int64  `json:"seed"`
}
