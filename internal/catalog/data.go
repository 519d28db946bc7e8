package catalog

// definitions is the process-wide model table. Declaration order is the
// public listing order: one block per provider, cheapest first within a
// block. Additions or removals ship with a deployment; nothing mutates this
// at runtime.
var definitions = []ModelDefinition{
	// Google
	{
		ID:                    "gemini-2.5-flash-lite",
		Provider:              ProviderGoogle,
		Tier:                  TierBudget,
		MaxInputTokens:        1_048_576,
		MaxOutputTokens:       8_192,
		InputPricePerMillion:  0.10,
		OutputPricePerMillion: 0.40,
		DefaultTemperature:    0.7,
		Capabilities:          []string{"multimodal"},
	},
	{
		ID:                    "gemini-2.5-flash",
		Provider:              ProviderGoogle,
		Tier:                  TierPro,
		MaxInputTokens:        1_048_576,
		MaxOutputTokens:       65_536,
		InputPricePerMillion:  0.30,
		OutputPricePerMillion: 2.50,
		DefaultTemperature:    0.7,
		Capabilities:          []string{"multimodal", "reasoning"},
	},
	{
		ID:                    "gemini-2.5-pro",
		Provider:              ProviderGoogle,
		Tier:                  TierPremium,
		MaxInputTokens:        1_048_576,
		MaxOutputTokens:       65_536,
		InputPricePerMillion:  1.25,
		OutputPricePerMillion: 10.00,
		DefaultTemperature:    0.7,
		Capabilities:          []string{"multimodal", "reasoning"},
	},

	// OpenAI
	{
		ID:                    "gpt-4o-mini",
		Provider:              ProviderOpenAI,
		Tier:                  TierBudget,
		MaxInputTokens:        128_000,
		MaxOutputTokens:       16_384,
		InputPricePerMillion:  0.15,
		OutputPricePerMillion: 0.60,
		DefaultTemperature:    0.7,
		Capabilities:          []string{"multimodal"},
	},
	{
		ID:                    "gpt-4.1",
		Provider:              ProviderOpenAI,
		Tier:                  TierPro,
		MaxInputTokens:        1_047_576,
		MaxOutputTokens:       32_768,
		InputPricePerMillion:  2.00,
		OutputPricePerMillion: 8.00,
		DefaultTemperature:    0.7,
		Capabilities:          []string{"multimodal"},
	},
	{
		ID:                    "gpt-4o",
		Provider:              ProviderOpenAI,
		Tier:                  TierPro,
		MaxInputTokens:        128_000,
		MaxOutputTokens:       16_384,
		InputPricePerMillion:  2.50,
		OutputPricePerMillion: 10.00,
		DefaultTemperature:    0.7,
		Capabilities:          []string{"multimodal"},
	},

	// Anthropic
	{
		ID:                    "claude-3-5-haiku-latest",
		Provider:              ProviderAnthropic,
		Tier:                  TierBudget,
		MaxInputTokens:        200_000,
		MaxOutputTokens:       8_192,
		InputPricePerMillion:  0.80,
		OutputPricePerMillion: 4.00,
		DefaultTemperature:    0.7,
		Capabilities:          []string{"multimodal"},
	},
	{
		ID:                    "claude-sonnet-4-20250514",
		Provider:              ProviderAnthropic,
		Tier:                  TierPro,
		MaxInputTokens:        200_000,
		MaxOutputTokens:       64_000,
		InputPricePerMillion:  3.00,
		OutputPricePerMillion: 15.00,
		DefaultTemperature:    0.7,
		Capabilities:          []string{"multimodal", "reasoning"},
	},
	{
		ID:                    "claude-opus-4-20250514",
		Provider:              ProviderAnthropic,
		Tier:                  TierPremium,
		MaxInputTokens:        200_000,
		MaxOutputTokens:       32_000,
		InputPricePerMillion:  15.00,
		OutputPricePerMillion: 75.00,
		DefaultTemperature:    0.7,
		Capabilities:          []string{"multimodal", "reasoning"},
	},
}
