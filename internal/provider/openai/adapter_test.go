package openai

import (
	"errors"
	"testing"

	"github.com/nulzo/provider-gateway/internal/catalog"
	"github.com/nulzo/provider-gateway/internal/provider"
	openaisdk "github.com/openai/openai-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_MissingKeyIsConfigError(t *testing.T) {
	_, err := New(provider.Config{})
	require.Error(t, err)

	var cfgErr *provider.ConfigError
	require.True(t, errors.As(err, &cfgErr))
	assert.Equal(t, catalog.ProviderOpenAI, cfgErr.Provider)
}

func TestNew_WithKey(t *testing.T) {
	a, err := New(provider.Config{APIKey: "sk-test"})
	require.NoError(t, err)
	assert.Equal(t, catalog.ProviderOpenAI, a.Name())
}

func TestDecodeUsage_ZeroValueDefaultsToZero(t *testing.T) {
	assert.Equal(t, provider.Usage{}, decodeUsage(openaisdk.CompletionUsage{}))
}

func TestDecodeUsage_MapsFields(t *testing.T) {
	usage := decodeUsage(openaisdk.CompletionUsage{
		PromptTokens:     7,
		CompletionTokens: 11,
		TotalTokens:      18,
	})
	assert.Equal(t, provider.Usage{PromptTokens: 7, CompletionTokens: 11, TotalTokens: 18}, usage)
}
