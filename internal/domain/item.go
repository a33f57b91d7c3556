package domain

// Dimensions are the outer measurements of an item in centimeters
type Dimensions struct {
	Length float64 `json:"length"`
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

// Volume returns the enclosed volume in liters
func (d Dimensions) Volume() float64 {
	return d.Length * d.Width * d.Height / 1000
}

// PhysicalSpec is an estimate without provenance. Catalog entries and
// family formulas produce these; the pipeline attaches the source.
type PhysicalSpec struct {
	Weight     float64    `json:"weight"` // kg
	Dimensions Dimensions `json:"dimensions"`
	Category   string     `json:"category"`
}

// ItemSpecification is a resolved estimate for an item posted for delivery
type ItemSpecification struct {
	PhysicalSpec
	Source string `json:"source"` // which rule produced the estimate
}

// EstimateRequest carries the free-text inputs collected by the listing form
type EstimateRequest struct {
	Title       string `json:"title"`
	Description string `json:"description,omitempty"`
	Category    string `json:"category,omitempty"`
}

// ValidationResult reports whether a weight is plausible for its dimensions
type ValidationResult struct {
	Valid   bool   `json:"valid"`
	Warning string `json:"warning,omitempty"`
}
