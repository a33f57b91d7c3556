package usecase

import "github.com/sparecarry/itemspec/internal/domain"

// InferenceEngine turns free-text item input into a physical specification.
// It holds no mutable state and is safe for concurrent use.
type InferenceEngine struct {
	extractor *AttributeExtractor
}

// NewInferenceEngine creates an engine over the built-in reference tables
func NewInferenceEngine() *InferenceEngine {
	return &InferenceEngine{extractor: NewAttributeExtractor()}
}

// Infer resolves title, description and an optional category hint into an
// estimate. Resolution order: family formulas, then the catalog, then the
// category default. A nil result means no estimate is available.
func (e *InferenceEngine) Infer(title, description, categoryHint string) *domain.ItemSpecification {
	text := NormalizeItemText(title, description)

	if text != "" {
		attrs := e.extractor.Extract(text)
		if spec := resolveFamily(text, attrs); spec != nil {
			return spec
		}
		if spec := resolveCatalog(text); spec != nil {
			return spec
		}
	}

	return resolveCategoryDefault(categoryHint)
}
