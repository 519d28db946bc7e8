package api

import "encoding/json"

// Usage mirrors the normalized token accounting on the wire.
type Usage struct {
	PromptTokens     int `json:"prompt_tokens"`
	CompletionTokens int `json:"completion_tokens"`
	TotalTokens      int `json:"total_tokens"`
}

// GenerationResponse is the unified result of a dispatch. Payload is a JSON
// string for text mode and the parsed object for json mode.
type GenerationResponse struct {
	ID       string          `json:"id"`
	Object   string          `json:"object"` // always "generation"
	Created  int64           `json:"created"`
	Model    string          `json:"model"`
	Provider string          `json:"provider"`
	Mode     string          `json:"mode"`
	Payload  json.RawMessage `json:"payload"`
	Usage    Usage           `json:"usage"`
	CostUSD  float64         `json:"cost_usd"`
}

// ErrorResponse is the body attached to gateway failures alongside the
// Problem fields.
type ErrorResponse struct {
	Message string `json:"message"`
}

func (e *ErrorResponse) Error() string {
	return e.Message
}
