package driving

import (
	"github.com/smj9504/sketchplan/internal/core/domain"
)

// AnalysisService measures a document: boundaries, areas, volumes and
// document totals. Analysis is pure computation over the passed document;
// nothing is retained between calls.
type AnalysisService interface {
	// Analyze measures every room and folds the valid ones into document
	// totals. An empty document yields a zero-valued analysis.
	Analyze(document *domain.SketchDocument) (*domain.DocumentAnalysis, error)

	// RoomAreas measures a single room by ID.
	// Returns domain.ErrNotFound when the room does not exist.
	RoomAreas(document *domain.SketchDocument, roomID string) (*domain.RoomAreaReport, error)
}

// Validator performs structural checks on a document without mutating it.
type Validator interface {
	// Validate inspects the document and reports errors and warnings.
	Validate(document *domain.SketchDocument) domain.ValidationResult
}

// MeasurementService parses, formats and converts imperial measurements at
// a configured display precision.
type MeasurementService interface {
	// Parse interprets a user-entered distance string.
	// Returns domain.ErrMeasurementFormat when nothing matches.
	Parse(input string) (domain.Measurement, error)

	// Format renders a total-inch scalar as a feet-and-inches string.
	Format(totalInches float64) string

	// Convert expresses a measurement in the target unit, falling back to
	// inches for unrecognised targets.
	Convert(m domain.Measurement, target domain.Unit) float64

	// Add sums two measurements.
	Add(a, b domain.Measurement) domain.Measurement

	// Equal compares two measurements within the configured tolerance.
	Equal(a, b domain.Measurement) bool

	// Precision returns the configured fraction-of-an-inch denominator.
	Precision() int
}
