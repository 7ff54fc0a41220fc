package domain

// Material estimation defaults.
const (
	// DefaultWastePercent is the cut-waste allowance applied to flooring.
	DefaultWastePercent = 10.0

	// DefaultPaintCoverage is the wall area one gallon of paint covers, in
	// square feet.
	DefaultPaintCoverage = 350.0

	// PrimerCoverageFactor scales paint gallons to primer gallons; primer
	// spreads further so fewer gallons are needed.
	PrimerCoverageFactor = 0.8

	// DefaultCeilingTileSize is the edge length of a ceiling tile in inches.
	DefaultCeilingTileSize = 24.0
)

// MaterialOptions tunes the material take-off. The zero value is not useful;
// start from DefaultMaterialOptions.
type MaterialOptions struct {
	// WastePercent is the flooring cut-waste allowance, e.g. 10 for 10%.
	WastePercent float64 `json:"wastePercent"`

	// PaintCoverage is the square feet one gallon of paint covers.
	PaintCoverage float64 `json:"paintCoverage"`

	// CeilingTileSize is the ceiling tile edge length in inches.
	CeilingTileSize float64 `json:"ceilingTileSize"`

	// IncludeTrim toggles baseboard, crown and casing quantities.
	IncludeTrim bool `json:"includeTrim"`
}

// DefaultMaterialOptions returns the standard take-off settings: 10% waste,
// 350 sqft per gallon, 24 inch tiles, trim included.
func DefaultMaterialOptions() MaterialOptions {
	return MaterialOptions{
		WastePercent:    DefaultWastePercent,
		PaintCoverage:   DefaultPaintCoverage,
		CeilingTileSize: DefaultCeilingTileSize,
		IncludeTrim:     true,
	}
}

// Normalized returns the options with non-positive numeric fields replaced
// by defaults, so a partially filled struct still produces sane quantities.
func (o MaterialOptions) Normalized() MaterialOptions {
	if o.WastePercent < 0 {
		o.WastePercent = DefaultWastePercent
	}
	if o.PaintCoverage <= 0 {
		o.PaintCoverage = DefaultPaintCoverage
	}
	if o.CeilingTileSize <= 0 {
		o.CeilingTileSize = DefaultCeilingTileSize
	}
	return o
}

// MaterialCalculation is a material take-off for a room or a document.
// Linear quantities are feet, areas square feet; gallons and tiles are
// purchase counts.
type MaterialCalculation struct {
	// FlooringArea is the floor area to order, waste included, in sqft.
	FlooringArea float64 `json:"flooringArea"`

	// PaintGallons is the paint purchase count for the net wall area.
	PaintGallons int `json:"paintGallons"`

	// PrimerGallons is the primer purchase count.
	PrimerGallons int `json:"primerGallons"`

	// BaseboardLength is the baseboard run in feet.
	BaseboardLength float64 `json:"baseboardLength"`

	// CrownLength is the crown moulding run in feet.
	CrownLength float64 `json:"crownLength"`

	// CasingLength is the door and window casing run in feet.
	CasingLength float64 `json:"casingLength"`

	// CeilingTiles is the tile purchase count for the ceiling area.
	CeilingTiles int `json:"ceilingTiles"`
}

// Add returns the component-wise sum, used to fold room take-offs into a
// document total.
func (m MaterialCalculation) Add(other MaterialCalculation) MaterialCalculation {
	return MaterialCalculation{
		FlooringArea:    m.FlooringArea + other.FlooringArea,
		PaintGallons:    m.PaintGallons + other.PaintGallons,
		PrimerGallons:   m.PrimerGallons + other.PrimerGallons,
		BaseboardLength: m.BaseboardLength + other.BaseboardLength,
		CrownLength:     m.CrownLength + other.CrownLength,
		CasingLength:    m.CasingLength + other.CasingLength,
		CeilingTiles:    m.CeilingTiles + other.CeilingTiles,
	}
}
