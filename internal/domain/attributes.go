package domain

// AttributeKind names a numeric attribute that can be pulled out of item text
type AttributeKind string

const (
	AttrAmpHours       AttributeKind = "ampHours"
	AttrDiameterInches AttributeKind = "diameterInches"
	AttrWattage        AttributeKind = "wattage"
	AttrGallons        AttributeKind = "gallons"
	AttrFeet           AttributeKind = "feet"
	AttrGPH            AttributeKind = "gph"
	AttrAmperage       AttributeKind = "amperage"
	AttrCubicFeet      AttributeKind = "cubicFeet"
	AttrPersonCapacity AttributeKind = "personCapacity"
	AttrPounds         AttributeKind = "pounds"
)

// ExtractedAttributes holds at most one value per attribute kind.
// A missing key means the attribute was not mentioned.
type ExtractedAttributes map[AttributeKind]int

// Value returns the extracted value for kind and whether it was present
func (a ExtractedAttributes) Value(kind AttributeKind) (int, bool) {
	v, ok := a[kind]
	return v, ok
}

// Has reports whether kind was detected
func (a ExtractedAttributes) Has(kind AttributeKind) bool {
	_, ok := a[kind]
	return ok
}
