package domain

import "strings"

// Unit identifies a linear unit of measurement.
type Unit string

// Supported units.
const (
	// UnitInch is the canonical unit; Measurement stores total inches.
	UnitInch Unit = "in"

	// UnitFoot is 12 inches.
	UnitFoot Unit = "ft"

	// UnitYard is 36 inches.
	UnitYard Unit = "yd"

	// UnitCentimeter is defined by 1 in = 2.54 cm.
	UnitCentimeter Unit = "cm"

	// UnitMillimeter is defined by 1 in = 25.4 mm.
	UnitMillimeter Unit = "mm"
)

// Fixed conversion multipliers.
const (
	InchesPerFoot      = 12.0
	InchesPerYard      = 36.0
	CentimetersPerInch = 2.54
	MillimetersPerInch = 25.4
)

// IsValid returns true if the unit is recognised.
func (u Unit) IsValid() bool {
	switch u {
	case UnitInch, UnitFoot, UnitYard, UnitCentimeter, UnitMillimeter:
		return true
	default:
		return false
	}
}

// String returns the string representation.
func (u Unit) String() string {
	return string(u)
}

// Description returns a human-readable description of the unit.
func (u Unit) Description() string {
	switch u {
	case UnitInch:
		return "Inches"
	case UnitFoot:
		return "Feet"
	case UnitYard:
		return "Yards"
	case UnitCentimeter:
		return "Centimeters"
	case UnitMillimeter:
		return "Millimeters"
	default:
		return "Unknown"
	}
}

// AllUnits returns every supported unit.
func AllUnits() []Unit {
	return []Unit{UnitInch, UnitFoot, UnitYard, UnitCentimeter, UnitMillimeter}
}

// ParseUnit maps a user-supplied unit name to a Unit.
// Common aliases and symbols are accepted. Returns ErrUnknownUnit when the
// name is not recognised.
func ParseUnit(s string) (Unit, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "in", "inch", "inches", `"`:
		return UnitInch, nil
	case "ft", "foot", "feet", "'":
		return UnitFoot, nil
	case "yd", "yard", "yards":
		return UnitYard, nil
	case "cm", "centimeter", "centimeters", "centimetre", "centimetres":
		return UnitCentimeter, nil
	case "mm", "millimeter", "millimeters", "millimetre", "millimetres":
		return UnitMillimeter, nil
	default:
		return "", ErrUnknownUnit
	}
}
