package usecase

import "github.com/sparecarry/itemspec/internal/domain"

// feelBands maps each heaviness impression to a density band in kg/L
var feelBands = map[domain.FeelBucket]domain.DensityBand{
	domain.FeelVeryLight: {Min: 0.05, Max: 0.2, Typical: 0.1},
	domain.FeelLight:     {Min: 0.2, Max: 0.6, Typical: 0.4},
	domain.FeelMedium:    {Min: 0.6, Max: 1.5, Typical: 1.0},
	domain.FeelHeavy:     {Min: 1.5, Max: 3.0, Typical: 2.2},
	domain.FeelVeryHeavy: {Min: 3.0, Max: 8.0, Typical: 4.5},
}

const (
	largeVolumeL      = 50.0
	smallVolumeL      = 5.0
	largeVolumeFactor = 0.9 // voids and packaging
	smallVolumeFactor = 1.1 // small things tend to be solid
)

// FeelBand returns the density band for a bucket
func FeelBand(feel domain.FeelBucket) (domain.DensityBand, bool) {
	band, ok := feelBands[feel]
	return band, ok
}

// EstimateWeightFromFeel derives a weight in kg from outer dimensions (cm) and
// a heaviness impression. Buckets outside the table and non-positive
// dimensions yield 0; callers are expected to parse input with
// domain.ParseFeelBucket first.
func EstimateWeightFromFeel(length, width, height float64, feel domain.FeelBucket) float64 {
	if length <= 0 || width <= 0 || height <= 0 {
		return 0
	}

	band := feelBands[feel]
	volume := domain.Dimensions{Length: length, Width: width, Height: height}.Volume()

	density := band.Typical
	switch {
	case volume > largeVolumeL:
		density *= largeVolumeFactor
	case volume < smallVolumeL:
		density *= smallVolumeFactor
	}
	density = min(max(density, band.Min), band.Max)

	return roundWeight(volume * density)
}
