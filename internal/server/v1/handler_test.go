package v1_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/nulzo/provider-gateway/internal/catalog"
	"github.com/nulzo/provider-gateway/internal/gateway"
	"github.com/nulzo/provider-gateway/internal/provider"
	"github.com/nulzo/provider-gateway/internal/server/middleware"
	"github.com/nulzo/provider-gateway/internal/server/validator"
	v1 "github.com/nulzo/provider-gateway/internal/server/v1"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type stubService struct {
	dispatch func(ctx context.Context, req gateway.Request) (*gateway.Result, error)
}

func (s *stubService) Dispatch(ctx context.Context, req gateway.Request) (*gateway.Result, error) {
	return s.dispatch(ctx, req)
}

func setupEngine(service gateway.Service) *gin.Engine {
	gin.SetMode(gin.TestMode)
	validator.InitValidator()

	engine := gin.New()
	engine.Use(middleware.ErrorHandler(zap.NewNop()))

	generationHandler := v1.NewGenerationHandler(service)
	engine.POST("/v1/generate", generationHandler.Generate)

	modelHandler := v1.NewModelHandler()
	engine.GET("/v1/models", modelHandler.ListModels)
	engine.GET("/v1/models/tiers", modelHandler.ListTiers)
	engine.GET("/v1/models/:id", modelHandler.GetModel)

	return engine
}

func postGenerate(t *testing.T, engine *gin.Engine, body any) *httptest.ResponseRecorder {
	t.Helper()
	jsonBody, err := json.Marshal(body)
	require.NoError(t, err)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/v1/generate", bytes.NewReader(jsonBody))
	req.Header.Set("Content-Type", "application/json")
	engine.ServeHTTP(w, req)
	return w
}

func TestGenerate_TextSuccess(t *testing.T) {
	def, err := catalog.ByID("gemini-2.5-flash-lite")
	require.NoError(t, err)

	service := &stubService{
		dispatch: func(_ context.Context, req gateway.Request) (*gateway.Result, error) {
			assert.Equal(t, "Say hi", req.Prompt)
			assert.Equal(t, gateway.ModeText, req.Mode)
			return &gateway.Result{
				ID:      "gen-abc",
				Model:   def,
				Mode:    gateway.ModeText,
				Text:    "hi",
				Usage:   provider.Usage{PromptTokens: 3, CompletionTokens: 1, TotalTokens: 4},
				CostUSD: 0.0000007,
			}, nil
		},
	}
	engine := setupEngine(service)

	w := postGenerate(t, engine, gin.H{"prompt": "Say hi", "model": "gemini-2.5-flash-lite"})

	require.Equal(t, http.StatusOK, w.Code)

	var resp map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "gen-abc", resp["id"])
	assert.Equal(t, "generation", resp["object"])
	assert.Equal(t, "gemini-2.5-flash-lite", resp["model"])
	assert.Equal(t, "google", resp["provider"])
	assert.Equal(t, "text", resp["mode"])
	assert.Equal(t, "hi", resp["payload"])

	usage := resp["usage"].(map[string]any)
	assert.EqualValues(t, 3, usage["prompt_tokens"])
	assert.EqualValues(t, 4, usage["total_tokens"])
}

func TestGenerate_JSONMode(t *testing.T) {
	def, err := catalog.ByID("gpt-4o")
	require.NoError(t, err)

	service := &stubService{
		dispatch: func(_ context.Context, req gateway.Request) (*gateway.Result, error) {
			assert.Equal(t, gateway.ModeJSON, req.Mode)
			return &gateway.Result{
				ID:    "gen-json",
				Model: def,
				Mode:  gateway.ModeJSON,
				JSON:  json.RawMessage(`{"answer": 42}`),
			}, nil
		},
	}
	engine := setupEngine(service)

	w := postGenerate(t, engine, gin.H{"prompt": "Answer", "model": "gpt-4o", "mode": "json"})

	require.Equal(t, http.StatusOK, w.Code)

	var resp map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	payload := resp["payload"].(map[string]any)
	assert.EqualValues(t, 42, payload["answer"])
}

func TestGenerate_MissingPromptIsValidationError(t *testing.T) {
	called := false
	service := &stubService{
		dispatch: func(_ context.Context, _ gateway.Request) (*gateway.Result, error) {
			called = true
			return nil, nil
		},
	}
	engine := setupEngine(service)

	w := postGenerate(t, engine, gin.H{"model": "gpt-4o"})

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.False(t, called)

	var resp map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	errs := resp["errors"].(map[string]any)
	assert.Contains(t, errs, "prompt")
}

func TestGenerate_InvalidModeIsValidationError(t *testing.T) {
	engine := setupEngine(&stubService{})

	w := postGenerate(t, engine, gin.H{"prompt": "x", "model": "gpt-4o", "mode": "yaml"})

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestGenerate_GatewayErrorKindsMapToStatus(t *testing.T) {
	cases := []struct {
		kind   gateway.ErrorKind
		status int
	}{
		{gateway.KindUnknownModel, http.StatusNotFound},
		{gateway.KindProvider, http.StatusBadGateway},
		{gateway.KindParse, http.StatusBadGateway},
		{gateway.KindConfiguration, http.StatusServiceUnavailable},
	}

	for _, tc := range cases {
		t.Run(string(tc.kind), func(t *testing.T) {
			service := &stubService{
				dispatch: func(_ context.Context, _ gateway.Request) (*gateway.Result, error) {
					return nil, &gateway.Error{
						Kind:    tc.kind,
						ModelID: "gpt-4o",
						Message: "upstream broke",
					}
				},
			}
			engine := setupEngine(service)

			w := postGenerate(t, engine, gin.H{"prompt": "x", "model": "gpt-4o"})

			assert.Equal(t, tc.status, w.Code)

			var resp map[string]any
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
			assert.Equal(t, string(tc.kind), resp["kind"])
			assert.Equal(t, "gpt-4o", resp["model"])
		})
	}
}

func TestListModels_FilterByProviderAndTier(t *testing.T) {
	engine := setupEngine(&stubService{})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/v1/models?provider=google&tier=budget", nil)
	engine.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Object string                    `json:"object"`
		Data   []catalog.ModelDefinition `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "list", resp.Object)
	require.Len(t, resp.Data, 1)
	assert.Equal(t, "gemini-2.5-flash-lite", resp.Data[0].ID)
}

func TestGetModel_UnknownIs404(t *testing.T) {
	engine := setupEngine(&stubService{})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/v1/models/nope", nil)
	engine.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestListTiers_OrderedGroups(t *testing.T) {
	engine := setupEngine(&stubService{})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/v1/models/tiers", nil)
	engine.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Data []catalog.TierGroup `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp.Data, 3)
	assert.Equal(t, catalog.TierBudget, resp.Data[0].Tier)
	assert.Equal(t, catalog.TierPro, resp.Data[1].Tier)
	assert.Equal(t, catalog.TierPremium, resp.Data[2].Tier)
}
