package catalog_test

import (
	"errors"
	"testing"

	"github.com/nulzo/provider-gateway/internal/catalog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidate(t *testing.T) {
	assert.NoError(t, catalog.Validate())
}

func TestByID_RoundTrip(t *testing.T) {
	for _, def := range catalog.All() {
		got, err := catalog.ByID(def.ID)
		require.NoError(t, err)
		assert.Equal(t, def.ID, got.ID)
		assert.True(t, catalog.Exists(def.ID))
	}
}

func TestByID_NotFound(t *testing.T) {
	_, err := catalog.ByID("nonexistent")
	require.Error(t, err)

	var notFound *catalog.NotFoundError
	assert.True(t, errors.As(err, &notFound))
	assert.Equal(t, "nonexistent", notFound.ID)
	assert.False(t, catalog.Exists("nonexistent"))
}

func TestByProvider(t *testing.T) {
	for _, p := range catalog.KnownProviders() {
		models := catalog.ByProvider(p)
		assert.NotEmpty(t, models, "provider %s has no models", p)
		for _, m := range models {
			assert.Equal(t, p, m.Provider)
		}
	}
	assert.Empty(t, catalog.ByProvider(catalog.Provider("unknown")))
}

func TestByTier_OrderAndSorting(t *testing.T) {
	groups := catalog.ByTier()
	require.NotEmpty(t, groups)

	order := map[catalog.Tier]int{
		catalog.TierBudget:  0,
		catalog.TierPro:     1,
		catalog.TierPremium: 2,
	}

	prev := -1
	for _, g := range groups {
		rank, ok := order[g.Tier]
		require.True(t, ok, "unexpected tier %q", g.Tier)
		assert.Greater(t, rank, prev, "tiers out of order")
		prev = rank

		assert.NotEmpty(t, g.Models, "empty tier %s should be omitted", g.Tier)
		for i := 1; i < len(g.Models); i++ {
			assert.LessOrEqual(t,
				g.Models[i-1].InputPricePerMillion,
				g.Models[i].InputPricePerMillion,
				"tier %s not sorted by input price", g.Tier)
		}
	}
}

func TestAll_IsACopy(t *testing.T) {
	first := catalog.All()
	first[0].ID = "mutated"

	again := catalog.All()
	assert.NotEqual(t, "mutated", again[0].ID)
}

func TestKnownEntryPricing(t *testing.T) {
	def, err := catalog.ByID("gemini-2.5-flash-lite")
	require.NoError(t, err)
	assert.Equal(t, catalog.ProviderGoogle, def.Provider)
	assert.Equal(t, catalog.TierBudget, def.Tier)
	assert.Equal(t, 0.10, def.InputPricePerMillion)
	assert.Equal(t, 0.40, def.OutputPricePerMillion)
}
