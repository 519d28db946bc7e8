// Package google adapts the Gemini API to the uniform generation contract.
package google

import (
	"context"
	"errors"
	"strings"

	"github.com/nulzo/provider-gateway/internal/catalog"
	"github.com/nulzo/provider-gateway/internal/provider"
	"google.golang.org/genai"
)

const apiKeyEnv = "GOOGLE_API_KEY"

var errNoCandidates = errors.New("no candidates returned")

func init() {
	provider.Register(catalog.ProviderGoogle, func(cfg provider.Config) (provider.Adapter, error) {
		return New(cfg)
	})
}

type Adapter struct {
	client *genai.Client
}

// New builds the Gemini adapter. An empty API key is a *ConfigError so the
// process fails at startup rather than on first call.
func New(cfg provider.Config) (*Adapter, error) {
	if cfg.APIKey == "" {
		return nil, &provider.ConfigError{Provider: catalog.ProviderGoogle, EnvVar: apiKeyEnv}
	}

	client, err := genai.NewClient(context.Background(), &genai.ClientConfig{
		APIKey:  cfg.APIKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, &provider.ConfigError{Provider: catalog.ProviderGoogle, EnvVar: apiKeyEnv}
	}

	return &Adapter{client: client}, nil
}

func (a *Adapter) Name() catalog.Provider {
	return catalog.ProviderGoogle
}

func (a *Adapter) GenerateText(ctx context.Context, prompt string, def catalog.ModelDefinition) (*provider.TextResult, error) {
	text, usage, err := a.generate(ctx, prompt, def, false)
	if err != nil {
		return nil, err
	}
	return &provider.TextResult{Text: text, Usage: usage}, nil
}

func (a *Adapter) GenerateJSON(ctx context.Context, prompt string, def catalog.ModelDefinition, out any) (provider.Usage, error) {
	text, usage, err := a.generate(ctx, prompt, def, true)
	if err != nil {
		return usage, err
	}
	if err := provider.DecodeJSON(catalog.ProviderGoogle, text, out); err != nil {
		return usage, err
	}
	return usage, nil
}

func (a *Adapter) generate(ctx context.Context, prompt string, def catalog.ModelDefinition, jsonMode bool) (string, provider.Usage, error) {
	genCfg := &genai.GenerateContentConfig{
		MaxOutputTokens: int32(def.MaxOutputTokens),
		Temperature:     genai.Ptr(float32(def.DefaultTemperature)),
	}
	if jsonMode {
		// Gemini activates structured output through the response MIME type.
		genCfg.ResponseMIMEType = "application/json"
	}

	resp, err := a.client.Models.GenerateContent(ctx, def.ID, genai.Text(prompt), genCfg)
	if err != nil {
		return "", provider.Usage{}, &provider.CallError{Provider: catalog.ProviderGoogle, Err: err}
	}

	text, err := extractText(resp)
	if err != nil {
		return "", decodeUsage(resp.UsageMetadata), err
	}

	return text, decodeUsage(resp.UsageMetadata), nil
}

func extractText(resp *genai.GenerateContentResponse) (string, error) {
	if resp == nil || len(resp.Candidates) == 0 {
		return "", &provider.CallError{Provider: catalog.ProviderGoogle, Err: errNoCandidates}
	}

	var sb strings.Builder
	if resp.Candidates[0].Content != nil {
		for _, part := range resp.Candidates[0].Content.Parts {
			if part != nil {
				sb.WriteString(part.Text)
			}
		}
	}
	return strings.TrimSpace(sb.String()), nil
}

// decodeUsage maps usageMetadata into the normalized Usage. Gemini omits the
// whole block or individual counts on some paths, so a nil block collapses
// to zeros rather than propagating optionality downstream.
func decodeUsage(md *genai.GenerateContentResponseUsageMetadata) provider.Usage {
	if md == nil {
		return provider.Usage{}
	}
	return provider.Usage{
		PromptTokens:     int(md.PromptTokenCount),
		CompletionTokens: int(md.CandidatesTokenCount),
		TotalTokens:      int(md.TotalTokenCount),
	}
}
