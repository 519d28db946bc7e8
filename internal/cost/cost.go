// Package cost derives monetary cost from normalized token usage and
// catalog pricing.
package cost

import (
	"github.com/nulzo/provider-gateway/internal/catalog"
	"github.com/nulzo/provider-gateway/internal/provider"
)

const tokensPerPriceUnit = 1_000_000

// Compute returns the USD cost of a call. Pure and total: zero usage yields
// zero cost. The definition must be the exact entry used for the call, since
// pricing varies per model id even within one provider. TotalTokens is
// deliberately ignored; only prompt and completion counts are billable.
func Compute(usage provider.Usage, def catalog.ModelDefinition) float64 {
	return float64(usage.PromptTokens)/tokensPerPriceUnit*def.InputPricePerMillion +
		float64(usage.CompletionTokens)/tokensPerPriceUnit*def.OutputPricePerMillion
}

// Micros converts a USD amount to integer micro-dollars for storage.
func Micros(usd float64) int64 {
	return int64(usd * 1_000_000)
}
