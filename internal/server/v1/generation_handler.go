package v1

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/nulzo/provider-gateway/internal/gateway"
	"github.com/nulzo/provider-gateway/internal/server/validator"
	"github.com/nulzo/provider-gateway/pkg/api"
)

type GenerationHandler struct {
	service gateway.Service
}

func NewGenerationHandler(service gateway.Service) *GenerationHandler {
	return &GenerationHandler{service: service}
}

func (h *GenerationHandler) Generate(c *gin.Context) {
	var req api.GenerationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		_ = c.Error(api.ValidationError(validator.ParseValidationError(err)))
		return
	}

	mode := gateway.Mode(req.Mode)
	if mode == "" {
		mode = gateway.ModeText
	}

	result, err := h.service.Dispatch(c.Request.Context(), gateway.Request{
		Prompt:  req.Prompt,
		ModelID: req.Model,
		Mode:    mode,
	})
	if err != nil {
		_ = c.Error(err)
		return
	}

	c.JSON(http.StatusOK, mapResultToResponse(result))
}

func mapResultToResponse(result *gateway.Result) api.GenerationResponse {
	var payload json.RawMessage
	if result.Mode == gateway.ModeJSON {
		payload = result.JSON
	} else {
		// Text rides the same field as a JSON string.
		payload, _ = json.Marshal(result.Text)
	}

	return api.GenerationResponse{
		ID:       result.ID,
		Object:   "generation",
		Created:  time.Now().Unix(),
		Model:    result.Model.ID,
		Provider: string(result.Model.Provider),
		Mode:     string(result.Mode),
		Payload:  payload,
		Usage: api.Usage{
			PromptTokens:     result.Usage.PromptTokens,
			CompletionTokens: result.Usage.CompletionTokens,
			TotalTokens:      result.Usage.TotalTokens,
		},
		CostUSD: result.CostUSD,
	}
}
