package usecase

import (
	"fmt"
	"strings"

	"github.com/sparecarry/itemspec/internal/domain"
)

// Generic cube used for every category default, in centimeters
var genericDimensions = domain.Dimensions{Length: 30, Width: 20, Height: 20}

// CategoryDefault is the typical weight range for a broad listing category
type CategoryDefault struct {
	Category string  `json:"category"`
	Min      float64 `json:"min"`
	Max      float64 `json:"max"`
	Typical  float64 `json:"typical"`
}

var categoryDefaults = []CategoryDefault{
	{Category: "food", Min: 0.1, Max: 10, Typical: 2},
	{Category: "electronics", Min: 0.1, Max: 20, Typical: 1.5},
	{Category: "clothing", Min: 0.1, Max: 5, Typical: 1},
	{Category: "documents", Min: 0.05, Max: 2, Typical: 0.3},
	{Category: "books", Min: 0.2, Max: 10, Typical: 1.5},
	{Category: "tools", Min: 0.5, Max: 25, Typical: 5},
	{Category: "marine", Min: 0.5, Max: 50, Typical: 8},
	{Category: "sports", Min: 0.2, Max: 20, Typical: 4},
	{Category: "automotive", Min: 0.5, Max: 40, Typical: 6},
	{Category: "household", Min: 0.2, Max: 25, Typical: 4},
	{Category: "medical", Min: 0.1, Max: 10, Typical: 1},
	{Category: "toys", Min: 0.1, Max: 10, Typical: 1},
	{Category: "other", Min: 0.1, Max: 30, Typical: 3},
}

// CategoryDefaults returns a copy of the category table
func CategoryDefaults() []CategoryDefault {
	out := make([]CategoryDefault, len(categoryDefaults))
	copy(out, categoryDefaults)
	return out
}

// normalizeCategory lower-cases and trims a category hint
func normalizeCategory(hint string) string {
	return strings.ToLower(strings.TrimSpace(hint))
}

// resolveCategoryDefault returns the generic estimate for a known category
// hint, or nil when the hint is empty or not in the table.
func resolveCategoryDefault(hint string) *domain.ItemSpecification {
	category := normalizeCategory(hint)
	if category == "" {
		return nil
	}
	for _, d := range categoryDefaults {
		if d.Category != category {
			continue
		}
		return &domain.ItemSpecification{
			PhysicalSpec: domain.PhysicalSpec{
				Weight:     d.Typical,
				Dimensions: genericDimensions,
				Category:   d.Category,
			},
			Source: fmt.Sprintf("Category default: %s", d.Category),
		}
	}
	return nil
}
