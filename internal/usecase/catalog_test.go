package usecase

import (
	"strings"
	"testing"

	"github.com/sparecarry/itemspec/internal/domain"
)

func TestResolveCatalog(t *testing.T) {
	tests := []struct {
		name       string
		text       string
		want       domain.PhysicalSpec
		wantSource string
	}{
		{
			name:       "anchor by weight",
			text:       "anchor 15kg",
			want:       physical(15, 50, 35, 25, categoryMarine),
			wantSource: "Matched: anchor (15kg)",
		},
		{
			name:       "shorter weight variant",
			text:       "anchor 5kg",
			want:       physical(5, 35, 25, 18, categoryMarine),
			wantSource: "Matched: anchor (5kg)",
		},
		{
			name:       "fridge without capacity",
			text:       "mini fridge",
			want:       physical(15, 48, 45, 50, categoryHousehold),
			wantSource: "Matched: fridge (mini)",
		},
		{
			name:       "freezer default",
			text:       "12v freezer",
			want:       physical(40, 60, 60, 85, categoryHousehold),
			wantSource: "Matched: freezer (typical)",
		},
		{
			name:       "anchor by brand",
			text:       "rocna anchor, lightly used",
			want:       physical(15, 55, 40, 30, categoryMarine),
			wantSource: "Matched: anchor (rocna)",
		},
		{
			name:       "anchor typical",
			text:       "galvanized anchor",
			want:       physical(12, 50, 35, 25, categoryMarine),
			wantSource: "Matched: anchor (typical)",
		},
		{
			name:       "battery charger resolves to battery",
			text:       "battery charger",
			want:       physical(25, 33, 17, 24, categoryMarine),
			wantSource: "Matched: battery (typical)",
		},
		{
			name:       "decimal horsepower",
			text:       "mercury 2.5hp outboard",
			want:       physical(13, 35, 25, 95, categoryMarine),
			wantSource: "Matched: outboard (2.5hp)",
		},
		{
			name:       "two digit horsepower",
			text:       "yamaha 25hp outboard",
			want:       physical(70, 55, 40, 130, categoryMarine),
			wantSource: "Matched: outboard (25hp)",
		},
		{
			name:       "propeller is not rope",
			text:       "bronze propeller",
			want:       physical(5, 35, 35, 12, categoryMarine),
			wantSource: "Matched: propeller (bronze)",
		},
		{
			name:       "first archetype wins",
			text:       "anchor and battery bundle",
			want:       physical(12, 50, 35, 25, categoryMarine),
			wantSource: "Matched: anchor (typical)",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := resolveCatalog(tt.text)
			if got == nil {
				t.Fatalf("resolveCatalog(%q) = nil", tt.text)
			}
			if got.PhysicalSpec != tt.want {
				t.Errorf("resolveCatalog(%q) = %+v, want %+v", tt.text, got.PhysicalSpec, tt.want)
			}
			if got.Source != tt.wantSource {
				t.Errorf("Source = %q, want %q", got.Source, tt.wantSource)
			}
		})
	}
}

func TestResolveCatalog_NoMatch(t *testing.T) {
	for _, text := range []string{"", "handmade ceramic vase"} {
		if got := resolveCatalog(text); got != nil {
			t.Errorf("resolveCatalog(%q) = %+v, want nil", text, got)
		}
	}
}

// Every archetype and variant must be reachable: nothing may contain a
// keyword declared earlier, and no variant may contain an earlier variant.
func TestCatalog_EntriesReachable(t *testing.T) {
	for j, archetype := range catalog {
		for i := 0; i < j; i++ {
			earlier := catalog[i].Keyword
			if strings.Contains(archetype.Keyword, earlier) {
				t.Errorf("archetype %q is shadowed by %q", archetype.Keyword, earlier)
			}
			for _, v := range archetype.Variants {
				if strings.Contains(v.Match, earlier) {
					t.Errorf("variant %q of %q is shadowed by archetype %q", v.Match, archetype.Keyword, earlier)
				}
			}
		}

		for b, v := range archetype.Variants {
			for a := 0; a < b; a++ {
				if strings.Contains(v.Match, archetype.Variants[a].Match) {
					t.Errorf("variant %q of %q is shadowed by %q", v.Match, archetype.Keyword, archetype.Variants[a].Match)
				}
			}
		}
	}
}

func TestCatalog_EntriesArePhysical(t *testing.T) {
	check := func(label string, s domain.PhysicalSpec) {
		if s.Weight <= 0 || s.Dimensions.Length <= 0 || s.Dimensions.Width <= 0 || s.Dimensions.Height <= 0 {
			t.Errorf("%s has a non-positive measurement: %+v", label, s)
		}
		if s.Category == "" {
			t.Errorf("%s has no category", label)
		}
		if r := ValidateWeightAgainstDimensions(s.Weight, s.Dimensions.Length, s.Dimensions.Width, s.Dimensions.Height); !r.Valid {
			t.Errorf("%s fails density validation: %s", label, r.Warning)
		}
	}

	for _, archetype := range catalog {
		check(archetype.Keyword, archetype.Default)
		for _, v := range archetype.Variants {
			check(archetype.Keyword+"/"+v.Match, v.Spec)
		}
	}
}
