package domain

import (
	"errors"
	"testing"
)

func TestParseFeelBucket(t *testing.T) {
	tests := []struct {
		in   string
		want FeelBucket
	}{
		{"very_light", FeelVeryLight},
		{"light", FeelLight},
		{"Medium", FeelMedium},
		{" heavy ", FeelHeavy},
		{"very heavy", FeelVeryHeavy},
		{"Very-Light", FeelVeryLight},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseFeelBucket(tt.in)
			if err != nil {
				t.Fatalf("ParseFeelBucket(%q) error = %v", tt.in, err)
			}
			if got != tt.want {
				t.Errorf("ParseFeelBucket(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}

	for _, in := range []string{"", "feather", "very"} {
		if _, err := ParseFeelBucket(in); !errors.Is(err, ErrUnknownFeelBucket) {
			t.Errorf("ParseFeelBucket(%q) error = %v, want ErrUnknownFeelBucket", in, err)
		}
	}
}

func TestDimensionsVolume(t *testing.T) {
	tests := []struct {
		dims Dimensions
		want float64
	}{
		{Dimensions{Length: 10, Width: 10, Height: 10}, 1},
		{Dimensions{Length: 30, Width: 20, Height: 20}, 12},
		{Dimensions{Length: 0, Width: 20, Height: 20}, 0},
	}

	for _, tt := range tests {
		if got := tt.dims.Volume(); got != tt.want {
			t.Errorf("%+v.Volume() = %v, want %v", tt.dims, got, tt.want)
		}
	}
}

func TestExtractedAttributes(t *testing.T) {
	attrs := ExtractedAttributes{AttrAmpHours: 200}

	if v, ok := attrs.Value(AttrAmpHours); !ok || v != 200 {
		t.Errorf("Value(AttrAmpHours) = %d, %v; want 200, true", v, ok)
	}
	if _, ok := attrs.Value(AttrWattage); ok {
		t.Error("Value(AttrWattage) reported present")
	}
	if !attrs.Has(AttrAmpHours) || attrs.Has(AttrFeet) {
		t.Error("Has() mismatch")
	}
}
