package usecase

import "github.com/sparecarry/itemspec/internal/domain"

// Density limits in kg per liter
const (
	maxPlausibleDensity  = 10.0 // denser than lead
	minPlausibleDensity  = 0.01
	lightCheckMinVolumeL = 10.0
)

const (
	warningTooDense = "Weight seems too high for these dimensions (denser than lead). Please double-check the weight or size."
	warningTooLight = "Weight seems too low for an item this size. Please double-check the weight or size."
)

// ValidateWeightAgainstDimensions flags a weight/dimension pair whose density
// is physically implausible. Non-positive inputs cannot be validated and are
// reported as valid.
func ValidateWeightAgainstDimensions(weight, length, width, height float64) domain.ValidationResult {
	if weight <= 0 || length <= 0 || width <= 0 || height <= 0 {
		return domain.ValidationResult{Valid: true}
	}

	volume := domain.Dimensions{Length: length, Width: width, Height: height}.Volume()
	density := weight / volume

	if density > maxPlausibleDensity {
		return domain.ValidationResult{Valid: false, Warning: warningTooDense}
	}
	if density < minPlausibleDensity && volume > lightCheckMinVolumeL {
		return domain.ValidationResult{Valid: false, Warning: warningTooLight}
	}

	return domain.ValidationResult{Valid: true}
}
