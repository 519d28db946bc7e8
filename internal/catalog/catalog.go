// Package catalog is the static registry of model definitions. All lookups
// are pure functions over the declaration-ordered table in data.go.
package catalog

import (
	"fmt"
	"sort"
)

// NotFoundError is returned by ByID for ids absent from the catalog.
type NotFoundError struct {
	ID string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("model not found: %s", e.ID)
}

var byID = make(map[string]ModelDefinition, len(definitions))

func init() {
	for _, def := range definitions {
		byID[def.ID] = def
	}
}

// All returns every definition in declaration order.
func All() []ModelDefinition {
	out := make([]ModelDefinition, len(definitions))
	copy(out, definitions)
	return out
}

// ByProvider returns the definitions backed by p, preserving declaration
// order.
func ByProvider(p Provider) []ModelDefinition {
	var out []ModelDefinition
	for _, def := range definitions {
		if def.Provider == p {
			out = append(out, def)
		}
	}
	return out
}

// ByID resolves a model id. Returns *NotFoundError when the id is absent.
func ByID(id string) (ModelDefinition, error) {
	def, ok := byID[id]
	if !ok {
		return ModelDefinition{}, &NotFoundError{ID: id}
	}
	return def, nil
}

// Exists reports whether the id is in the catalog. Never fails.
func Exists(id string) bool {
	_, ok := byID[id]
	return ok
}

// TierGroup is one bucket of the ByTier listing.
type TierGroup struct {
	Tier   Tier              `json:"tier"`
	Models []ModelDefinition `json:"models"`
}

// ByTier groups the catalog by tier. Tiers come out in the fixed order
// budget, pro, premium with empty tiers omitted; within a tier, models are
// sorted ascending by input price, ties keeping declaration order.
func ByTier() []TierGroup {
	var groups []TierGroup
	for _, tier := range tierOrder {
		var models []ModelDefinition
		for _, def := range definitions {
			if def.Tier == tier {
				models = append(models, def)
			}
		}
		if len(models) == 0 {
			continue
		}
		sort.SliceStable(models, func(i, j int) bool {
			return models[i].InputPricePerMillion < models[j].InputPricePerMillion
		})
		groups = append(groups, TierGroup{Tier: tier, Models: models})
	}
	return groups
}

// Validate checks the catalog invariants: globally unique ids, non-negative
// prices, known provider and tier on every entry. Called once at startup;
// a violation is a deployment bug, not a runtime condition.
func Validate() error {
	seen := make(map[string]bool, len(definitions))
	known := make(map[Provider]bool)
	for _, p := range KnownProviders() {
		known[p] = true
	}
	for _, def := range definitions {
		if def.ID == "" {
			return fmt.Errorf("catalog entry with empty id")
		}
		if seen[def.ID] {
			return fmt.Errorf("duplicate model id: %s", def.ID)
		}
		seen[def.ID] = true
		if !known[def.Provider] {
			return fmt.Errorf("model %s references unknown provider %q", def.ID, def.Provider)
		}
		switch def.Tier {
		case TierBudget, TierPro, TierPremium:
		default:
			return fmt.Errorf("model %s has invalid tier %q", def.ID, def.Tier)
		}
		if def.InputPricePerMillion < 0 || def.OutputPricePerMillion < 0 {
			return fmt.Errorf("model %s has negative pricing", def.ID)
		}
		if def.MaxOutputTokens <= 0 {
			return fmt.Errorf("model %s has no output token ceiling", def.ID)
		}
	}
	return nil
}
