package domain

// DefaultConnectionTolerance is the endpoint snap distance in drawing
// units: endpoints at most this far apart count as connected.
const DefaultConnectionTolerance = 5.0

// MeasurementSettings tunes measurement display and comparison.
type MeasurementSettings struct {
	// Precision is the fraction-of-an-inch denominator for display.
	Precision int

	// Tolerance is the slack in inches within which measurements compare
	// equal.
	Tolerance float64
}

// TopologySettings tunes wall connectivity discovery.
type TopologySettings struct {
	// ConnectionTolerance is the endpoint snap distance in drawing units.
	ConnectionTolerance float64
}

// AppSettings gathers every tunable the engine reads from configuration.
type AppSettings struct {
	// Measurement tunes parsing and display.
	Measurement MeasurementSettings

	// Topology tunes boundary tracing.
	Topology TopologySettings

	// Materials tunes the material take-off.
	Materials MaterialOptions

	// LaborRate is the labor rate factor for estimates.
	LaborRate float64

	// PixelsPerFoot is the drawing scale assumed for documents without one.
	PixelsPerFoot float64
}

// DefaultAppSettings returns the built-in defaults: 1/16 inch display
// precision, 5 drawing-unit connection tolerance, standard take-off
// options and a 50 pixels-per-foot scale.
func DefaultAppSettings() AppSettings {
	return AppSettings{
		Measurement: MeasurementSettings{
			Precision: DefaultPrecision,
			Tolerance: DefaultMeasurementTolerance,
		},
		Topology: TopologySettings{
			ConnectionTolerance: DefaultConnectionTolerance,
		},
		Materials:     DefaultMaterialOptions(),
		LaborRate:     DefaultLaborRate,
		PixelsPerFoot: DefaultPixelsPerFoot,
	}
}
