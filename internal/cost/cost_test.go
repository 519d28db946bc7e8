package cost_test

import (
	"testing"

	"github.com/nulzo/provider-gateway/internal/catalog"
	"github.com/nulzo/provider-gateway/internal/cost"
	"github.com/nulzo/provider-gateway/internal/provider"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCompute_MillionPromptTokensEqualsInputPrice(t *testing.T) {
	for _, def := range catalog.All() {
		usage := provider.Usage{PromptTokens: 1_000_000}
		assert.Equal(t, def.InputPricePerMillion, cost.Compute(usage, def), def.ID)
	}
}

func TestCompute_ZeroUsageIsZero(t *testing.T) {
	for _, def := range catalog.All() {
		assert.Zero(t, cost.Compute(provider.Usage{}, def), def.ID)
	}
}

func TestCompute_MixedUsage(t *testing.T) {
	def, err := catalog.ByID("gemini-2.5-flash-lite")
	require.NoError(t, err)

	usage := provider.Usage{PromptTokens: 10, CompletionTokens: 5, TotalTokens: 15}
	want := 10.0/1e6*0.10 + 5.0/1e6*0.40
	assert.InDelta(t, want, cost.Compute(usage, def), 1e-15)
}

func TestCompute_IgnoresTotalTokens(t *testing.T) {
	def, err := catalog.ByID("gpt-4o")
	require.NoError(t, err)

	// Providers may report totals that disagree with the parts; billing
	// only uses the parts.
	a := provider.Usage{PromptTokens: 100, CompletionTokens: 50, TotalTokens: 150}
	b := provider.Usage{PromptTokens: 100, CompletionTokens: 50, TotalTokens: 9999}
	assert.Equal(t, cost.Compute(a, def), cost.Compute(b, def))
}

func TestMicros(t *testing.T) {
	assert.Equal(t, int64(2_500_000), cost.Micros(2.5))
	assert.Equal(t, int64(0), cost.Micros(0))
}
