package services

import (
	"github.com/smj9504/sketchplan/internal/core/domain"
	"github.com/smj9504/sketchplan/internal/core/ports/driving"
)

// Ensure MeasureService implements the interface.
var _ driving.MeasurementService = (*MeasureService)(nil)

// MeasureService parses, formats and converts imperial measurements at a
// configured display precision and comparison tolerance.
type MeasureService struct {
	precision int
	tolerance float64
}

// NewMeasureService creates a new measurement service. Out-of-range
// arguments fall back to 1/16 inch.
func NewMeasureService(precision int, tolerance float64) *MeasureService {
	if precision < 2 {
		precision = domain.DefaultPrecision
	}
	if tolerance <= 0 {
		tolerance = domain.DefaultMeasurementTolerance
	}
	return &MeasureService{
		precision: precision,
		tolerance: tolerance,
	}
}

// Parse interprets a user-entered distance string at the configured
// precision.
func (s *MeasureService) Parse(input string) (domain.Measurement, error) {
	m, err := domain.ParseMeasurement(input)
	if err != nil {
		return domain.Measurement{}, err
	}
	return domain.NewMeasurementWithPrecision(m.TotalInches, s.precision), nil
}

// Format renders a total-inch scalar as a feet-and-inches string.
func (s *MeasureService) Format(totalInches float64) string {
	return domain.FormatInches(totalInches, s.precision)
}

// Convert expresses a measurement in the target unit.
func (s *MeasureService) Convert(m domain.Measurement, target domain.Unit) float64 {
	return m.Convert(target)
}

// Add sums two measurements at the configured precision.
func (s *MeasureService) Add(a, b domain.Measurement) domain.Measurement {
	return domain.NewMeasurementWithPrecision(a.TotalInches+b.TotalInches, s.precision)
}

// Equal compares two measurements within the configured tolerance.
func (s *MeasureService) Equal(a, b domain.Measurement) bool {
	return a.EqualsWithin(b, s.tolerance)
}

// Precision returns the configured fraction-of-an-inch denominator.
func (s *MeasureService) Precision() int {
	return s.precision
}
