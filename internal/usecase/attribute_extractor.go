package usecase

import (
	"regexp"
	"strconv"

	"github.com/sparecarry/itemspec/internal/domain"
)

// attributePattern lists the alternatives for one attribute kind.
// Alternatives are tried in order and the first one that matches wins.
type attributePattern struct {
	kind         domain.AttributeKind
	alternatives []*regexp.Regexp
}

// Compiled patterns, one entry per attribute kind. The first capture group of
// every alternative is the integer value; a decimal tail is matched but dropped.
var attributePatterns = []attributePattern{
	{
		kind: domain.AttrAmpHours,
		alternatives: []*regexp.Regexp{
			regexp.MustCompile(`(\d+)(?:\.\d+)?\s*ah\b`),
			regexp.MustCompile(`(\d+)(?:\.\d+)?\s*amp[\s-]*hours?`),
		},
	},
	{
		kind: domain.AttrDiameterInches,
		alternatives: []*regexp.Regexp{
			regexp.MustCompile(`(\d+)(?:\.\d+)?\s*(?:inch|inches|in\b|")`),
			regexp.MustCompile(`(\d+)\s*x\s*\d+`),
		},
	},
	{
		kind: domain.AttrWattage,
		alternatives: []*regexp.Regexp{
			regexp.MustCompile(`(\d+)(?:\.\d+)?\s*(?:w|watts?)\b`),
		},
	},
	{
		kind: domain.AttrGallons,
		alternatives: []*regexp.Regexp{
			regexp.MustCompile(`(\d+)(?:\.\d+)?\s*(?:gallons?|gal)\b`),
		},
	},
	{
		kind: domain.AttrFeet,
		alternatives: []*regexp.Regexp{
			regexp.MustCompile(`(\d+)(?:\.\d+)?\s*(?:ft|feet|foot)\b`),
			// a letter after the apostrophe is a possessive or decade ("1990's")
			regexp.MustCompile(`(\d+)(?:\.\d+)?\s*'(?:[^a-z]|$)`),
		},
	},
	{
		kind: domain.AttrGPH,
		alternatives: []*regexp.Regexp{
			regexp.MustCompile(`(\d+)(?:\.\d+)?\s*gph\b`),
			regexp.MustCompile(`(\d+)(?:\.\d+)?\s*gallons?\s+per\s+hour`),
		},
	},
	{
		kind: domain.AttrAmperage,
		alternatives: []*regexp.Regexp{
			regexp.MustCompile(`(\d+)(?:\.\d+)?\s*(?:a|amps?)\b`),
			regexp.MustCompile(`(\d+)(?:\.\d+)?\s*amperes?`),
		},
	},
	{
		kind: domain.AttrCubicFeet,
		alternatives: []*regexp.Regexp{
			regexp.MustCompile(`(\d+)(?:\.\d+)?\s*(?:cu\.?\s*ft|cubic\s*f(?:ee|oo)?t)`),
		},
	},
	{
		kind: domain.AttrPersonCapacity,
		alternatives: []*regexp.Regexp{
			regexp.MustCompile(`(\d+)[\s-]*(?:person|man|people|pax)\b`),
		},
	},
	{
		kind: domain.AttrPounds,
		alternatives: []*regexp.Regexp{
			regexp.MustCompile(`(\d+)(?:\.\d+)?\s*(?:lbs?|pounds?)\b`),
		},
	},
}

// AttributeExtractor pulls domain-specific numeric attributes out of item text
type AttributeExtractor struct {
	patterns []attributePattern
}

// NewAttributeExtractor creates an extractor over the built-in pattern table
func NewAttributeExtractor() *AttributeExtractor {
	return &AttributeExtractor{patterns: attributePatterns}
}

// Extract scans normalized text for every attribute kind.
// Amperage is skipped when amp-hours were already found so that "100 amp hour"
// is not counted twice.
func (e *AttributeExtractor) Extract(text string) domain.ExtractedAttributes {
	attrs := domain.ExtractedAttributes{}
	if text == "" {
		return attrs
	}

	for _, p := range e.patterns {
		if p.kind == domain.AttrAmperage && attrs.Has(domain.AttrAmpHours) {
			continue
		}
		if value, ok := firstMatch(p.alternatives, text); ok {
			attrs[p.kind] = value
		}
	}

	return attrs
}

// firstMatch returns the captured integer of the first alternative that matches
func firstMatch(alternatives []*regexp.Regexp, text string) (int, bool) {
	for _, re := range alternatives {
		m := re.FindStringSubmatch(text)
		if m == nil {
			continue
		}
		value, err := strconv.Atoi(m[1])
		if err != nil {
			// Only overflow can get here; treat as not mentioned
			return 0, false
		}
		return value, true
	}
	return 0, false
}
