package google

import (
	"errors"
	"testing"

	"github.com/nulzo/provider-gateway/internal/catalog"
	"github.com/nulzo/provider-gateway/internal/provider"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/genai"
)

func TestNew_MissingKeyIsConfigError(t *testing.T) {
	_, err := New(provider.Config{})
	require.Error(t, err)

	var cfgErr *provider.ConfigError
	require.True(t, errors.As(err, &cfgErr))
	assert.Equal(t, catalog.ProviderGoogle, cfgErr.Provider)
	assert.Contains(t, cfgErr.Error(), apiKeyEnv)
}

func TestDecodeUsage_NilMetadataDefaultsToZero(t *testing.T) {
	usage := decodeUsage(nil)
	assert.Equal(t, provider.Usage{}, usage)
}

func TestDecodeUsage_PartialMetadata(t *testing.T) {
	usage := decodeUsage(&genai.GenerateContentResponseUsageMetadata{
		PromptTokenCount: 10,
		// CandidatesTokenCount and TotalTokenCount omitted by the provider.
	})
	assert.Equal(t, provider.Usage{PromptTokens: 10}, usage)
}

func TestDecodeUsage_AllFields(t *testing.T) {
	usage := decodeUsage(&genai.GenerateContentResponseUsageMetadata{
		PromptTokenCount:     10,
		CandidatesTokenCount: 5,
		TotalTokenCount:      15,
	})
	assert.Equal(t, provider.Usage{PromptTokens: 10, CompletionTokens: 5, TotalTokens: 15}, usage)
}

func TestExtractText_NoCandidates(t *testing.T) {
	_, err := extractText(&genai.GenerateContentResponse{})
	var callErr *provider.CallError
	require.True(t, errors.As(err, &callErr))
}

func TestExtractText_JoinsParts(t *testing.T) {
	resp := &genai.GenerateContentResponse{
		Candidates: []*genai.Candidate{{
			Content: &genai.Content{
				Parts: []*genai.Part{{Text: "hello "}, {Text: "world"}},
			},
		}},
	}
	text, err := extractText(resp)
	require.NoError(t, err)
	assert.Equal(t, "hello world", text)
}
