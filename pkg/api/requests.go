package api

// GenerationRequest is the body of POST /v1/generate.
type GenerationRequest struct {
	Prompt string `json:"prompt" binding:"required"`
	Model  string `json:"model" binding:"required"`
	Mode   string `json:"mode" binding:"omitempty,oneof=text json"`
}

// ModelFilter narrows GET /v1/models listings.
type ModelFilter struct {
	Provider string `form:"provider"`
	Tier     string `form:"tier"`
}
