package catalog

// Provider identifies which upstream backs a model. The set is closed: the
// dispatcher keeps a static adapter per value and the two must stay in
// lockstep.
type Provider string

const (
	ProviderGoogle    Provider = "google"
	ProviderOpenAI    Provider = "openai"
	ProviderAnthropic Provider = "anthropic"
)

// KnownProviders returns every provider the catalog may reference.
func KnownProviders() []Provider {
	return []Provider{ProviderGoogle, ProviderOpenAI, ProviderAnthropic}
}

// Tier is a coarse pricing/quality classification.
type Tier string

const (
	TierBudget  Tier = "budget"
	TierPro     Tier = "pro"
	TierPremium Tier = "premium"
)

// tierOrder fixes the emission order for ByTier.
var tierOrder = []Tier{TierBudget, TierPro, TierPremium}

// ModelDefinition is the immutable catalog entry for a single model id.
// Prices are USD per million tokens.
type ModelDefinition struct {
	ID                    string   `json:"id"`
	Provider              Provider `json:"provider"`
	Tier                  Tier     `json:"tier"`
	MaxInputTokens        int      `json:"max_input_tokens"`
	MaxOutputTokens       int      `json:"max_output_tokens"`
	InputPricePerMillion  float64  `json:"input_price_per_million"`
	OutputPricePerMillion float64  `json:"output_price_per_million"`
	DefaultTemperature    float64  `json:"default_temperature"`
	Capabilities          []string `json:"capabilities,omitempty"`
}

// HasCapability reports whether the definition carries the given tag.
func (m ModelDefinition) HasCapability(tag string) bool {
	for _, c := range m.Capabilities {
		if c == tag {
			return true
		}
	}
	return false
}
