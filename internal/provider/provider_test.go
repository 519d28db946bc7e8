package provider_test

import (
	"errors"
	"testing"

	"github.com/nulzo/provider-gateway/internal/catalog"
	"github.com/nulzo/provider-gateway/internal/provider"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStripJSONWrapping(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want string
	}{
		{"plain", `{"a":1}`, `{"a":1}`},
		{"fenced", "```json\n{\"a\":1}\n```", `{"a":1}`},
		{"fenced no lang", "```\n{\"a\":1}\n```", `{"a":1}`},
		{"surrounding whitespace", "  {\"a\":1}\n", `{"a":1}`},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, provider.StripJSONWrapping(tc.in))
		})
	}
}

func TestDecodeJSON_Valid(t *testing.T) {
	var out struct {
		Title string `json:"title"`
		Count int    `json:"count"`
	}
	err := provider.DecodeJSON(catalog.ProviderGoogle, "```json\n{\"title\":\"x\",\"count\":3}\n```", &out)
	require.NoError(t, err)
	assert.Equal(t, "x", out.Title)
	assert.Equal(t, 3, out.Count)
}

func TestDecodeJSON_MalformedIsParseError(t *testing.T) {
	var out map[string]any
	err := provider.DecodeJSON(catalog.ProviderOpenAI, "I'm sorry, I can't do that", &out)
	require.Error(t, err)

	var parseErr *provider.ParseError
	require.True(t, errors.As(err, &parseErr))
	assert.Equal(t, catalog.ProviderOpenAI, parseErr.Provider)
	assert.NotEmpty(t, parseErr.Raw)

	var callErr *provider.CallError
	assert.False(t, errors.As(err, &callErr))
}

func TestDecodeJSON_WrongShapeIsParseError(t *testing.T) {
	var out struct {
		Count int `json:"count"`
	}
	err := provider.DecodeJSON(catalog.ProviderAnthropic, `{"count":"not-a-number"}`, &out)

	var parseErr *provider.ParseError
	require.True(t, errors.As(err, &parseErr))
}

func TestRegister_Duplicate(t *testing.T) {
	p := catalog.Provider("test-duplicate")
	provider.Register(p, func(provider.Config) (provider.Adapter, error) { return nil, nil })

	assert.Panics(t, func() {
		provider.Register(p, func(provider.Config) (provider.Adapter, error) { return nil, nil })
	})
}

func TestGet_Unregistered(t *testing.T) {
	_, err := provider.Get(catalog.Provider("never-registered"))
	assert.Error(t, err)
}
