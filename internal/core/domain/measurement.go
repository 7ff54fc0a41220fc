package domain

import (
	"encoding/json"
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"
)

// Measurement precision and comparison defaults.
const (
	// DefaultPrecision is the fraction-of-an-inch denominator used when
	// reducing a measurement for display (1/16 inch).
	DefaultPrecision = 16

	// DefaultMeasurementTolerance is the slack, in inches, within which two
	// measurements compare equal (1/16 inch).
	DefaultMeasurementTolerance = 0.0625
)

// Measurement is a feet-and-fractional-inches value. TotalInches is the
// canonical scalar and the source of truth; Feet, Inches and Display are
// derived from it.
type Measurement struct {
	// Feet is the whole-feet component.
	Feet int `json:"feet"`

	// Inches is the remaining inches in [0, 12), possibly fractional.
	Inches float64 `json:"inches"`

	// TotalInches is the canonical scalar value in inches.
	TotalInches float64 `json:"totalInches"`

	// Display is the formatted feet-and-inches string, always regenerable
	// from TotalInches.
	Display string `json:"display"`
}

// NewMeasurement builds a Measurement from a total-inch scalar using the
// default 1/16 inch display precision. Negative inputs are treated as zero.
func NewMeasurement(totalInches float64) Measurement {
	return NewMeasurementWithPrecision(totalInches, DefaultPrecision)
}

// NewMeasurementWithPrecision builds a Measurement from a total-inch scalar,
// reducing the fractional remainder to the given denominator for display.
func NewMeasurementWithPrecision(totalInches float64, precision int) Measurement {
	if precision < 2 {
		precision = DefaultPrecision
	}
	if totalInches < 0 || math.IsNaN(totalInches) {
		totalInches = 0
	}

	feet := int(totalInches / InchesPerFoot)
	inches := totalInches - float64(feet)*InchesPerFoot

	return Measurement{
		Feet:        feet,
		Inches:      inches,
		TotalInches: totalInches,
		Display:     FormatInches(totalInches, precision),
	}
}

// MeasurementFromFeetInches builds a Measurement from separate feet and
// inches components.
func MeasurementFromFeetInches(feet int, inches float64) Measurement {
	return NewMeasurement(float64(feet)*InchesPerFoot + inches)
}

// MeasurementFromFeet builds a Measurement from a decimal feet value.
func MeasurementFromFeet(feet float64) Measurement {
	return NewMeasurement(feet * InchesPerFoot)
}

// AsFeet returns the measurement expressed in decimal feet.
func (m Measurement) AsFeet() float64 {
	return m.TotalInches / InchesPerFoot
}

// IsZero reports whether the measurement is zero inches.
func (m Measurement) IsZero() bool {
	return m.TotalInches == 0
}

// String returns the display form, regenerating it when the measurement was
// built as a bare struct literal.
func (m Measurement) String() string {
	if m.Display != "" {
		return m.Display
	}
	return FormatInches(m.TotalInches, DefaultPrecision)
}

// Convert returns the measurement expressed in the target unit.
// An unrecognised target falls back to inches rather than failing, favouring
// robustness over strictness.
func (m Measurement) Convert(target Unit) float64 {
	switch target {
	case UnitInch:
		return m.TotalInches
	case UnitFoot:
		return m.TotalInches / InchesPerFoot
	case UnitYard:
		return m.TotalInches / InchesPerYard
	case UnitCentimeter:
		return m.TotalInches * CentimetersPerInch
	case UnitMillimeter:
		return m.TotalInches * MillimetersPerInch
	default:
		return m.TotalInches
	}
}

// Add returns the sum of two measurements.
func (m Measurement) Add(other Measurement) Measurement {
	return NewMeasurement(m.TotalInches + other.TotalInches)
}

// Equals reports whether two measurements are equal within the default
// 1/16 inch tolerance.
func (m Measurement) Equals(other Measurement) bool {
	return m.EqualsWithin(other, DefaultMeasurementTolerance)
}

// EqualsWithin reports whether two measurements are equal within the given
// tolerance in inches.
func (m Measurement) EqualsWithin(other Measurement, tolerance float64) bool {
	return math.Abs(m.TotalInches-other.TotalInches) <= tolerance
}

// LessThan reports whether m is strictly smaller than other.
func (m Measurement) LessThan(other Measurement) bool {
	return m.TotalInches < other.TotalInches
}

// GreaterThan reports whether m is strictly larger than other.
func (m Measurement) GreaterThan(other Measurement) bool {
	return m.TotalInches > other.TotalInches
}

// MinMeasurement returns the smaller of two measurements.
func MinMeasurement(a, b Measurement) Measurement {
	if b.TotalInches < a.TotalInches {
		return b
	}
	return a
}

// MaxMeasurement returns the larger of two measurements.
func MaxMeasurement(a, b Measurement) Measurement {
	if b.TotalInches > a.TotalInches {
		return b
	}
	return a
}

// UnmarshalJSON rebuilds the derived fields from TotalInches after decoding,
// so documents that carry only the scalar stay internally consistent.
// Documents that carry only feet/inches are normalised the other way.
func (m *Measurement) UnmarshalJSON(data []byte) error {
	type alias Measurement
	var raw alias
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	total := raw.TotalInches
	if total == 0 && (raw.Feet != 0 || raw.Inches != 0) {
		total = float64(raw.Feet)*InchesPerFoot + raw.Inches
	}
	// An all-zero payload decodes to the zero value, so unset optional
	// measurements survive an encode/decode cycle unchanged.
	if total == 0 && raw.Display == "" {
		*m = Measurement{}
		return nil
	}
	*m = NewMeasurement(total)
	return nil
}

// FormatInches renders a total-inch scalar as a feet-and-inches string,
// rounding the fractional remainder to the nearest 1/precision inch.
// Examples: 150 -> `12' 6"`, 3.5 -> `3-1/2"`, 0.5 -> `1/2"`, 0 -> `0"`.
func FormatInches(totalInches float64, precision int) string {
	if precision < 2 {
		precision = DefaultPrecision
	}
	if totalInches < 0 || math.IsNaN(totalInches) {
		totalInches = 0
	}

	// Snap to the display grid before splitting, so carries propagate
	// (11.99" displays as 1' 0", not 11-16/16").
	snapped := math.Round(totalInches*float64(precision)) / float64(precision)

	feet := int(snapped / InchesPerFoot)
	remainder := snapped - float64(feet)*InchesPerFoot
	whole := int(remainder)
	numerator := int(math.Round((remainder - float64(whole)) * float64(precision)))
	if numerator >= precision {
		numerator = 0
		whole++
		if whole >= int(InchesPerFoot) {
			whole = 0
			feet++
		}
	}

	inchPart := strconv.Itoa(whole)
	if numerator > 0 {
		fraction := reduceFraction(numerator, precision)
		if whole > 0 {
			inchPart = fmt.Sprintf("%d-%s", whole, fraction)
		} else {
			inchPart = fraction
		}
	}

	if feet > 0 {
		return fmt.Sprintf("%d' %s\"", feet, inchPart)
	}
	return inchPart + "\""
}

// DecimalToFraction reduces a decimal in [0, 1) to the closest fraction on
// the precision grid. Candidate denominators are the divisors of the
// precision (2..precision), so results land on tape-measure fractions;
// the winning pair is reduced by GCD. DecimalToFraction(0.5, 16) is "1/2";
// DecimalToFraction(0.333, 16) is "5/16".
func DecimalToFraction(decimal float64, precision int) string {
	if precision < 2 {
		precision = DefaultPrecision
	}
	if decimal <= 0 {
		return "0"
	}

	bestNum, bestDen := 0, 1
	bestErr := math.Inf(1)
	for den := 2; den <= precision; den++ {
		if precision%den != 0 {
			continue
		}
		num := int(math.Round(decimal * float64(den)))
		err := math.Abs(decimal - float64(num)/float64(den))
		if err < bestErr {
			bestErr = err
			bestNum, bestDen = num, den
		}
	}

	if bestNum == 0 {
		return "0"
	}
	if bestNum == bestDen {
		return "1"
	}
	return reduceFraction(bestNum, bestDen)
}

// reduceFraction returns "n/d" with the numerator and denominator divided by
// their GCD.
func reduceFraction(numerator, denominator int) string {
	g := gcd(numerator, denominator)
	if g > 1 {
		numerator /= g
		denominator /= g
	}
	return fmt.Sprintf("%d/%d", numerator, denominator)
}

// gcd returns the greatest common divisor of two positive integers.
func gcd(a, b int) int {
	for b != 0 {
		a, b = b, a%b
	}
	if a < 0 {
		return -a
	}
	return a
}

// Measurement string patterns, attempted in order. The feet-and-inches form
// is tried before decimal feet so `12'6"` never parses as 12.6 feet, and the
// fraction forms catch anything with a `-n/d` tail.
var (
	feetInchesPattern   = regexp.MustCompile(`^\s*(\d+(?:\.\d+)?)\s*'\s*(\d+(?:\.\d+)?)\s*(?:"|in)?\s*$`)
	decimalFeetPattern  = regexp.MustCompile(`^\s*(\d+(?:\.\d+)?)\s*(?:'|ft|feet)\s*$`)
	plainInchesPattern  = regexp.MustCompile(`^\s*(\d+(?:\.\d+)?)\s*(?:"|in|inches)\s*$`)
	feetFractionPattern = regexp.MustCompile(`^\s*(\d+)\s*'\s*(?:(\d+)\s*-\s*)?(\d+)\s*/\s*(\d+)\s*"?\s*$`)
	bareFractionPattern = regexp.MustCompile(`^\s*(?:(\d+)\s*-\s*)?(\d+)\s*/\s*(\d+)\s*"?\s*$`)
)

// ParseMeasurement parses a user-entered distance string.
//
// Accepted forms, attempted in order:
//
//	12'6"     feet and inches (closing quote optional)
//	12.5'     decimal feet (also `12 ft`)
//	150"      plain inches (also `150 in`)
//	5'3-1/2"  feet with fractional inches (also `8' 3/8"`)
//	3-1/2"    fractional inches
//
// Returns ErrMeasurementFormat when no pattern matches.
func ParseMeasurement(s string) (Measurement, error) {
	if match := feetInchesPattern.FindStringSubmatch(s); match != nil {
		feet := parseFloat(match[1])
		inches := parseFloat(match[2])
		return NewMeasurement(feet*InchesPerFoot + inches), nil
	}

	if match := decimalFeetPattern.FindStringSubmatch(s); match != nil {
		return NewMeasurement(parseFloat(match[1]) * InchesPerFoot), nil
	}

	if match := plainInchesPattern.FindStringSubmatch(s); match != nil {
		return NewMeasurement(parseFloat(match[1])), nil
	}

	if match := feetFractionPattern.FindStringSubmatch(s); match != nil {
		feet := parseFloat(match[1])
		inches := 0.0
		if match[2] != "" {
			inches = parseFloat(match[2])
		}
		numerator := parseFloat(match[3])
		denominator := parseFloat(match[4])
		if denominator == 0 {
			return Measurement{}, fmt.Errorf("%w: %q", ErrMeasurementFormat, s)
		}
		return NewMeasurement(feet*InchesPerFoot + inches + numerator/denominator), nil
	}

	if match := bareFractionPattern.FindStringSubmatch(s); match != nil {
		whole := 0.0
		if match[1] != "" {
			whole = parseFloat(match[1])
		}
		numerator := parseFloat(match[2])
		denominator := parseFloat(match[3])
		if denominator == 0 {
			return Measurement{}, fmt.Errorf("%w: %q", ErrMeasurementFormat, s)
		}
		return NewMeasurement(whole + numerator/denominator), nil
	}

	return Measurement{}, fmt.Errorf("%w: %q", ErrMeasurementFormat, strings.TrimSpace(s))
}

// parseFloat converts digits already vetted by a pattern; failures cannot
// occur for matched input, so errors collapse to zero.
func parseFloat(s string) float64 {
	v, _ := strconv.ParseFloat(s, 64)
	return v
}
