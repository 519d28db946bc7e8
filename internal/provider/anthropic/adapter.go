// Package anthropic adapts the Anthropic Messages API to the uniform
// generation contract.
package anthropic

import (
	"context"
	"strings"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"
	"github.com/nulzo/provider-gateway/internal/catalog"
	"github.com/nulzo/provider-gateway/internal/provider"
)

const apiKeyEnv = "ANTHROPIC_API_KEY"

// Anthropic has no response_format switch; JSON mode is activated through a
// system instruction and the reply is validated like any other.
const jsonSystemPrompt = "Respond with a single valid JSON value and nothing else. " +
	"Do not wrap the JSON in markdown code fences or add commentary."

func init() {
	provider.Register(catalog.ProviderAnthropic, func(cfg provider.Config) (provider.Adapter, error) {
		return New(cfg)
	})
}

type Adapter struct {
	client anthropic.Client
}

func New(cfg provider.Config) (*Adapter, error) {
	if cfg.APIKey == "" {
		return nil, &provider.ConfigError{Provider: catalog.ProviderAnthropic, EnvVar: apiKeyEnv}
	}
	return &Adapter{client: anthropic.NewClient(option.WithAPIKey(cfg.APIKey))}, nil
}

func (a *Adapter) Name() catalog.Provider {
	return catalog.ProviderAnthropic
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
	if err := provider.DecodeJSON(catalog.ProviderAnthropic, text, out); err != nil {
		return usage, err
	}
	return usage, nil
}

func (a *Adapter) generate(ctx context.Context, prompt string, def catalog.ModelDefinition, jsonMode bool) (string, provider.Usage, error) {
	params := anthropic.MessageNewParams{
		Model:       anthropic.Model(def.ID),
		MaxTokens:   int64(def.MaxOutputTokens),
		Temperature: anthropic.Float(def.DefaultTemperature),
		Messages: []anthropic.MessageParam{
			anthropic.NewUserMessage(anthropic.NewTextBlock(prompt)),
		},
	}
	if jsonMode {
		params.System = []anthropic.TextBlockParam{{Text: jsonSystemPrompt}}
	}

	resp, err := a.client.Messages.New(ctx, params)
	if err != nil {
		return "", provider.Usage{}, &provider.CallError{Provider: catalog.ProviderAnthropic, Err: err}
	}

	var sb strings.Builder
	for _, block := range resp.Content {
		if block.Type == "text" {
			sb.WriteString(block.Text)
		}
	}

	usage := provider.Usage{
		PromptTokens:     int(resp.Usage.InputTokens),
		CompletionTokens: int(resp.Usage.OutputTokens),
		// The Messages API reports no total; derive it so downstream
		// accounting never sees a missing value.
		TotalTokens: int(resp.Usage.InputTokens + resp.Usage.OutputTokens),
	}

	return strings.TrimSpace(sb.String()), usage, nil
}
