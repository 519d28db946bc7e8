// Package provider defines the uniform generation contract every upstream
// adapter implements, plus the factory registry the bootstrap uses to build
// them. Everything provider-idiosyncratic (JSON-mode activation, prompt
// shaping, usage field names) stays behind the Adapter interface.
package provider

import (
	"context"
	"fmt"
	"sync"

	"github.com/nulzo/provider-gateway/internal/catalog"
)

// Config carries the construction-time settings for one adapter. The API key
// is resolved from the environment before construction; adapters must reject
// an empty key with *ConfigError so misconfiguration surfaces at startup.
type Config struct {
	APIKey string
}

// Usage is the normalized token accounting for a single call. Adapters must
// default any field the upstream omits to zero so downstream cost math never
// sees a missing value. TotalTokens is reported as-is: providers do not
// always guarantee prompt+completion == total.
type Usage struct {
	PromptTokens     int `json:"prompt_tokens"`
	CompletionTokens int `json:"completion_tokens"`
	TotalTokens      int `json:"total_tokens"`
}

// TextResult is the outcome of a plain-text generation.
type TextResult struct {
	Text  string
	Usage Usage
}

// Adapter is the entire surface a provider exposes to the gateway.
type Adapter interface {
	Name() catalog.Provider

	// GenerateText invokes the upstream with the definition's default
	// generation settings and returns the text verbatim apart from
	// whitespace trimming. Upstream failures come back as *CallError.
	GenerateText(ctx context.Context, prompt string, def catalog.ModelDefinition) (*TextResult, error)

	// GenerateJSON activates the provider's structured-output mode and
	// unmarshals the reply into out. A reply that is not valid JSON for
	// out's shape is a *ParseError, never a *CallError: the provider
	// answered but broke the contract, and callers may want to retry with
	// a stricter prompt instead of backing off.
	GenerateJSON(ctx context.Context, prompt string, def catalog.ModelDefinition, out any) (Usage, error)
}

// Factory builds an adapter from its configuration.
type Factory func(cfg Config) (Adapter, error)

var (
	mu        sync.RWMutex
	factories = make(map[catalog.Provider]Factory)
)

// Register installs a factory for a provider. Adapter packages call this
// from init(); registering the same provider twice is a programming error.
func Register(p catalog.Provider, f Factory) {
	mu.Lock()
	defer mu.Unlock()
	if _, exists := factories[p]; exists {
		panic(fmt.Sprintf("provider factory %s already registered", p))
	}
	factories[p] = f
}

// Get returns the factory for a provider.
func Get(p catalog.Provider) (Factory, error) {
	mu.RLock()
	defer mu.RUnlock()
	f, ok := factories[p]
	if !ok {
		return nil, fmt.Errorf("no factory registered for provider: %s", p)
	}
	return f, nil
}
