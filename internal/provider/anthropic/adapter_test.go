package anthropic

import (
	"errors"
	"testing"

	"github.com/nulzo/provider-gateway/internal/catalog"
	"github.com/nulzo/provider-gateway/internal/provider"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_MissingKeyIsConfigError(t *testing.T) {
	_, err := New(provider.Config{})
	require.Error(t, err)

	var cfgErr *provider.ConfigError
	require.True(t, errors.As(err, &cfgErr))
	assert.Equal(t, catalog.ProviderAnthropic, cfgErr.Provider)
}

func TestNew_WithKey(t *testing.T) {
	a, err := New(provider.Config{APIKey: "sk-ant-test"})
	require.NoError(t, err)
	assert.Equal(t, catalog.ProviderAnthropic, a.Name())
}

func TestJSONSystemPromptForbidsFences(t *testing.T) {
	// The instruction is the JSON-mode activation mechanism for this
	// provider; it must demand bare JSON.
	assert.Contains(t, jsonSystemPrompt, "valid JSON")
	assert.Contains(t, jsonSystemPrompt, "fences")
}
