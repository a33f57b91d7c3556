package domain

import (
	"fmt"
	"strings"
)

// FeelBucket is a qualitative heaviness impression supplied by the user
type FeelBucket string

const (
	FeelVeryLight FeelBucket = "very_light"
	FeelLight     FeelBucket = "light"
	FeelMedium    FeelBucket = "medium"
	FeelHeavy     FeelBucket = "heavy"
	FeelVeryHeavy FeelBucket = "very_heavy"
)

// FeelBuckets lists the buckets from lightest to heaviest
var FeelBuckets = []FeelBucket{FeelVeryLight, FeelLight, FeelMedium, FeelHeavy, FeelVeryHeavy}

// DensityBand is a plausible density range in kg per liter
type DensityBand struct {
	Min     float64 `json:"min"`
	Max     float64 `json:"max"`
	Typical float64 `json:"typical"`
}

// ParseFeelBucket accepts the canonical names plus dashed or spaced forms
// ("very heavy", "Very-Light").
func ParseFeelBucket(s string) (FeelBucket, error) {
	normalized := strings.ToLower(strings.TrimSpace(s))
	normalized = strings.NewReplacer("-", "_", " ", "_").Replace(normalized)
	for _, b := range FeelBuckets {
		if FeelBucket(normalized) == b {
			return b, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownFeelBucket, s)
}
