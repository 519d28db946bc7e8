// Package openai adapts the OpenAI chat completions API to the uniform
// generation contract.
package openai

import (
	"context"
	"errors"
	"strings"

	"github.com/nulzo/provider-gateway/internal/catalog"
	"github.com/nulzo/provider-gateway/internal/provider"
	"github.com/openai/openai-go"
	"github.com/openai/openai-go/option"
	"github.com/openai/openai-go/shared"
)

const apiKeyEnv = "OPENAI_API_KEY"

var errNoChoices = errors.New("no choices returned")

func init() {
	provider.Register(catalog.ProviderOpenAI, func(cfg provider.Config) (provider.Adapter, error) {
		return New(cfg)
	})
}

type Adapter struct {
	client openai.Client
}

func New(cfg provider.Config) (*Adapter, error) {
	if cfg.APIKey == "" {
		return nil, &provider.ConfigError{Provider: catalog.ProviderOpenAI, EnvVar: apiKeyEnv}
	}
	return &Adapter{client: openai.NewClient(option.WithAPIKey(cfg.APIKey))}, nil
}

func (a *Adapter) Name() catalog.Provider {
	return catalog.ProviderOpenAI
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
	if err := provider.DecodeJSON(catalog.ProviderOpenAI, text, out); err != nil {
		return usage, err
	}
	return usage, nil
}

func (a *Adapter) generate(ctx context.Context, prompt string, def catalog.ModelDefinition, jsonMode bool) (string, provider.Usage, error) {
	params := openai.ChatCompletionNewParams{
		Model: openai.ChatModel(def.ID),
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.UserMessage(prompt),
		},
		MaxCompletionTokens: openai.Int(int64(def.MaxOutputTokens)),
		Temperature:         openai.Float(def.DefaultTemperature),
	}
	if jsonMode {
		// OpenAI's JSON mode is a response_format flag.
		params.ResponseFormat = openai.ChatCompletionNewParamsResponseFormatUnion{
			OfJSONObject: &shared.ResponseFormatJSONObjectParam{},
		}
	}

	resp, err := a.client.Chat.Completions.New(ctx, params)
	if err != nil {
		return "", provider.Usage{}, &provider.CallError{Provider: catalog.ProviderOpenAI, Err: err}
	}

	if len(resp.Choices) == 0 {
		return "", decodeUsage(resp.Usage), &provider.CallError{Provider: catalog.ProviderOpenAI, Err: errNoChoices}
	}

	return strings.TrimSpace(resp.Choices[0].Message.Content), decodeUsage(resp.Usage), nil
}

// decodeUsage maps the completion usage block. The SDK zero value already
// carries zero counts, which satisfies the missing-field-to-zero rule when
// the provider omits usage entirely.
func decodeUsage(u openai.CompletionUsage) provider.Usage {
	return provider.Usage{
		PromptTokens:     int(u.PromptTokens),
		CompletionTokens: int(u.CompletionTokens),
		TotalTokens:      int(u.TotalTokens),
	}
}
