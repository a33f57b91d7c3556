package usecase

import (
	"fmt"
	"math"
	"strings"

	"github.com/sparecarry/itemspec/internal/domain"
)

const (
	categoryMarine      = "marine"
	categoryElectronics = "electronics"

	cmPerInch      = 2.54
	cmPerFoot      = 30.48
	litersPerGal   = 3.785
	kgPerPound     = 0.4536
	tankTareKg     = 2.0
	ropeKgPerFoot  = 0.04
	chainKgPerFoot = 0.5 // 12.5x rope
)

// textFlags is the normalized item text, queried by formulas for qualifiers
// such as "lithium" or "stainless" that shift a family's constants.
type textFlags string

func (f textFlags) has(words ...string) bool {
	for _, w := range words {
		if strings.Contains(string(f), w) {
			return true
		}
	}
	return false
}

// familyEstimate is what a formula produces before the pipeline rounds it
type familyEstimate struct {
	spec  domain.PhysicalSpec
	label string // e.g. "Battery 200Ah"
}

// FamilyRule converts a single numeric attribute into a full estimate for one
// family of items.
type FamilyRule struct {
	Name      string
	Attribute domain.AttributeKind
	Keywords  []string
	formula   func(value float64, flags textFlags) familyEstimate
}

// matches reports whether any keyword is a substring of text
func (r FamilyRule) matches(text string) bool {
	for _, kw := range r.Keywords {
		if strings.Contains(text, kw) {
			return true
		}
	}
	return false
}

// familyRules is evaluated top to bottom and the first applicable rule wins.
// The order is part of the observable behavior: text naming two families only
// ever gets the earlier one.
var familyRules = []FamilyRule{
	{
		Name:      "battery",
		Attribute: domain.AttrAmpHours,
		Keywords:  []string{"battery"},
		formula: func(ah float64, flags textFlags) familyEstimate {
			perAh, category := 0.10, categoryMarine
			if flags.has("lithium") {
				perAh, category = 0.05, categoryElectronics
			}
			return familyEstimate{
				spec:  physical(ah*perAh, 25+ah*0.25, 20+ah*0.15, 20+ah*0.15, category),
				label: fmt.Sprintf("Battery %.0fAh", ah),
			}
		},
	},
	{
		Name:      "propeller",
		Attribute: domain.AttrDiameterInches,
		Keywords:  []string{"propeller"},
		formula: func(d float64, _ textFlags) familyEstimate {
			cm := d * cmPerInch
			return familyEstimate{
				spec:  physical(d/10*1.5, cm, cm, cm/3, categoryMarine),
				label: fmt.Sprintf("Propeller %.0f\"", d),
			}
		},
	},
	{
		Name:      "solar panel",
		Attribute: domain.AttrWattage,
		Keywords:  []string{"solar"},
		formula: func(w float64, _ textFlags) familyEstimate {
			return familyEstimate{
				spec:  physical(w/100*8, 40+w*0.6, 30+w*0.25, 4, categoryElectronics),
				label: fmt.Sprintf("Solar Panel %.0fW", w),
			}
		},
	},
	{
		Name:      "inverter",
		Attribute: domain.AttrWattage,
		Keywords:  []string{"inverter"},
		formula: func(w float64, _ textFlags) familyEstimate {
			return familyEstimate{
				spec:  physical(2+w/1000*4, 30+w/100, 20+w/200, 10+w/400, categoryElectronics),
				label: fmt.Sprintf("Inverter %.0fW", w),
			}
		},
	},
	{
		Name:      "wind generator",
		Attribute: domain.AttrWattage,
		Keywords:  []string{"wind generator", "wind turbine"},
		formula: func(w float64, _ textFlags) familyEstimate {
			return familyEstimate{
				spec:  physical(10+w/100*2, 100+w*0.1, 40, 40, categoryMarine),
				label: fmt.Sprintf("Wind Generator %.0fW", w),
			}
		},
	},
	{
		Name:      "tank",
		Attribute: domain.AttrGallons,
		Keywords:  []string{"tank"},
		formula: func(gal float64, flags textFlags) familyEstimate {
			density := 0.4 // rotomolded plastic
			switch {
			case flags.has("aluminum", "aluminium"):
				density = 0.6
			case flags.has("stainless"):
				density = 0.9
			}
			kind := "Fuel Tank"
			if flags.has("water") {
				kind = "Water Tank"
			}
			side := math.Cbrt(gal * litersPerGal * 1000)
			return familyEstimate{
				spec:  physical(gal*density+tankTareKg, side*1.5, side, side/1.5, categoryMarine),
				label: fmt.Sprintf("%s %.0fgal", kind, gal),
			}
		},
	},
	{
		Name:      "rope",
		Attribute: domain.AttrFeet,
		Keywords:  []string{"rope", "line", "chain", "rode"},
		formula: func(ft float64, flags textFlags) familyEstimate {
			if flags.has("chain") {
				return familyEstimate{
					spec:  physical(ft*chainKgPerFoot, 30+ft*0.1, 30, 20+ft*0.1, categoryMarine),
					label: fmt.Sprintf("Chain %.0fft", ft),
				}
			}
			coil := 30 + ft*0.1
			return familyEstimate{
				spec:  physical(ft*ropeKgPerFoot, coil, coil, 15+ft*0.05, categoryMarine),
				label: fmt.Sprintf("Rope %.0fft", ft),
			}
		},
	},
	{
		Name:      "mast",
		Attribute: domain.AttrFeet,
		Keywords:  []string{"mast"},
		formula: func(ft float64, _ textFlags) familyEstimate {
			return familyEstimate{
				spec:  physical(ft*1.5, ft*cmPerFoot, 20, 15, categoryMarine),
				label: fmt.Sprintf("Mast %.0fft", ft),
			}
		},
	},
	{
		Name:      "bilge pump",
		Attribute: domain.AttrGPH,
		Keywords:  []string{"bilge"},
		formula: func(gph float64, _ textFlags) familyEstimate {
			return familyEstimate{
				spec:  physical(0.5+gph/1000, 15+gph/500, 10+gph/1000, 10+gph/1000, categoryMarine),
				label: fmt.Sprintf("Bilge Pump %.0fGPH", gph),
			}
		},
	},
	{
		Name:      "watermaker",
		Attribute: domain.AttrGPH,
		Keywords:  []string{"watermaker", "water maker", "desalinator"},
		formula: func(gph float64, _ textFlags) familyEstimate {
			return familyEstimate{
				spec:  physical(15+gph*0.8, 50+gph, 30+gph*0.5, 30+gph*0.5, categoryMarine),
				label: fmt.Sprintf("Watermaker %.0fGPH", gph),
			}
		},
	},
	{
		Name:      "battery charger",
		Attribute: domain.AttrAmperage,
		Keywords:  []string{"charger"},
		formula: func(a float64, _ textFlags) familyEstimate {
			return familyEstimate{
				spec:  physical(1+a*0.1, 20+a*0.25, 15+a*0.15, 8+a*0.1, categoryElectronics),
				label: fmt.Sprintf("Battery Charger %.0fA", a),
			}
		},
	},
	{
		Name:      "refrigerator",
		Attribute: domain.AttrCubicFeet,
		Keywords:  []string{"refrigerator", "fridge", "freezer"},
		formula: func(cuft float64, _ textFlags) familyEstimate {
			return familyEstimate{
				spec:  physical(15+cuft*8, 50+cuft*5, 50+cuft*3, 60+cuft*10, categoryMarine),
				label: fmt.Sprintf("Refrigerator %.0f cu ft", cuft),
			}
		},
	},
	{
		Name:      "life raft",
		Attribute: domain.AttrPersonCapacity,
		Keywords:  []string{"life raft", "liferaft"},
		formula: func(n float64, _ textFlags) familyEstimate {
			return familyEstimate{
				spec:  physical(10+n*4, 60+n*5, 40+n*3, 30+n*2, categoryMarine),
				label: fmt.Sprintf("Life Raft %.0f-person", n),
			}
		},
	},
	{
		Name:      "fire extinguisher",
		Attribute: domain.AttrPounds,
		Keywords:  []string{"extinguisher"},
		formula: func(lb float64, _ textFlags) familyEstimate {
			return familyEstimate{
				spec:  physical(lb*kgPerPound+1, 15+lb, 15+lb, 30+lb*5, categoryMarine),
				label: fmt.Sprintf("Fire Extinguisher %.0flb", lb),
			}
		},
	},
	{
		Name:      "fender",
		Attribute: domain.AttrDiameterInches,
		Keywords:  []string{"fender"},
		formula: func(d float64, _ textFlags) familyEstimate {
			cm := d * cmPerInch
			return familyEstimate{
				spec:  physical(d*0.2, cm*2.5, cm, cm, categoryMarine),
				label: fmt.Sprintf("Fender %.0f\"", d),
			}
		},
	},
	{
		Name:      "radar",
		Attribute: domain.AttrDiameterInches,
		Keywords:  []string{"radar", "radome"},
		formula: func(d float64, _ textFlags) familyEstimate {
			cm := d * cmPerInch
			return familyEstimate{
				spec:  physical(d*0.35, cm, cm, 25+d*0.5, categoryElectronics),
				label: fmt.Sprintf("Radar %.0f\"", d),
			}
		},
	},
}

// resolveFamily applies the first rule whose attribute was extracted and whose
// keyword appears in text. Returns nil when no rule applies.
func resolveFamily(text string, attrs domain.ExtractedAttributes) *domain.ItemSpecification {
	for _, rule := range familyRules {
		value, ok := attrs.Value(rule.Attribute)
		if !ok || !rule.matches(text) {
			continue
		}
		est := rule.formula(float64(value), textFlags(text))
		return &domain.ItemSpecification{
			PhysicalSpec: roundSpec(est.spec),
			Source:       est.label + " (estimated)",
		}
	}
	return nil
}

func physical(weight, length, width, height float64, category string) domain.PhysicalSpec {
	return domain.PhysicalSpec{
		Weight:     weight,
		Dimensions: domain.Dimensions{Length: length, Width: width, Height: height},
		Category:   category,
	}
}

// roundSpec rounds weight to 0.1 kg and each dimension to a whole centimeter
func roundSpec(s domain.PhysicalSpec) domain.PhysicalSpec {
	return domain.PhysicalSpec{
		Weight: roundWeight(s.Weight),
		Dimensions: domain.Dimensions{
			Length: math.Round(s.Dimensions.Length),
			Width:  math.Round(s.Dimensions.Width),
			Height: math.Round(s.Dimensions.Height),
		},
		Category: s.Category,
	}
}

func roundWeight(kg float64) float64 {
	return math.Round(kg*10) / 10
}
