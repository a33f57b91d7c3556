package usecase

import (
	"fmt"
	"strings"

	"github.com/sparecarry/itemspec/internal/domain"
)

// CatalogVariant is a more specific substring inside an archetype that
// selects a precomputed spec over the archetype default.
type CatalogVariant struct {
	Match string
	Spec  domain.PhysicalSpec
}

// CatalogArchetype is a keyword-indexed item type
type CatalogArchetype struct {
	Keyword  string
	Variants []CatalogVariant
	Default  domain.PhysicalSpec
}

// lookup returns the first variant whose Match occurs in text, or the default
func (a CatalogArchetype) lookup(text string) (domain.PhysicalSpec, string) {
	for _, v := range a.Variants {
		if strings.Contains(text, v.Match) {
			return v.Spec, v.Match
		}
	}
	return a.Default, "typical"
}

// resolveCatalog selects the first declared archetype whose keyword occurs in
// text. Later archetypes are never consulted, even when they would also match.
func resolveCatalog(text string) *domain.ItemSpecification {
	for _, archetype := range catalog {
		if !strings.Contains(text, archetype.Keyword) {
			continue
		}
		spec, matched := archetype.lookup(text)
		return &domain.ItemSpecification{
			PhysicalSpec: roundSpec(spec),
			Source:       fmt.Sprintf("Matched: %s (%s)", archetype.Keyword, matched),
		}
	}
	return nil
}

// variant is shorthand for the variant literals in catalog_data.go
func variant(match string, weight, length, width, height float64, category string) CatalogVariant {
	return CatalogVariant{Match: match, Spec: physical(weight, length, width, height, category)}
}
