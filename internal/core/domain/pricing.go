package domain

// PriceItem keys a unit price in the price book.
type PriceItem string

const (
	PriceFlooringSqft  PriceItem = "flooring_sqft"
	PricePaintGallon   PriceItem = "paint_gallon"
	PricePrimerGallon  PriceItem = "primer_gallon"
	PriceBaseboardFoot PriceItem = "baseboard_foot"
	PriceCrownFoot     PriceItem = "crown_foot"
	PriceCasingFoot    PriceItem = "casing_foot"
	PriceCeilingTile   PriceItem = "ceiling_tile"
)

// IsValid checks if the price item is a recognised value.
func (p PriceItem) IsValid() bool {
	switch p {
	case PriceFlooringSqft, PricePaintGallon, PricePrimerGallon,
		PriceBaseboardFoot, PriceCrownFoot, PriceCasingFoot,
		PriceCeilingTile:
		return true
	}
	return false
}

// String returns the string representation of the price item.
func (p PriceItem) String() string {
	return string(p)
}

// Description returns a human-readable description of the price item,
// shown in price book listings.
func (p PriceItem) Description() string {
	switch p {
	case PriceFlooringSqft:
		return "Flooring material, per square foot"
	case PricePaintGallon:
		return "Wall paint, per gallon"
	case PricePrimerGallon:
		return "Wall primer, per gallon"
	case PriceBaseboardFoot:
		return "Baseboard moulding, per linear foot"
	case PriceCrownFoot:
		return "Crown moulding, per linear foot"
	case PriceCasingFoot:
		return "Door and window casing, per linear foot"
	case PriceCeilingTile:
		return "Ceiling tile, per tile"
	default:
		return "Unknown price item"
	}
}

// AllPriceItems returns all recognised price items, in take-off order.
func AllPriceItems() []PriceItem {
	return []PriceItem{
		PriceFlooringSqft,
		PricePaintGallon,
		PricePrimerGallon,
		PriceBaseboardFoot,
		PriceCrownFoot,
		PriceCasingFoot,
		PriceCeilingTile,
	}
}

// DefaultPrices returns the built-in unit prices in dollars, used until a
// price book overrides them.
func DefaultPrices() map[PriceItem]float64 {
	return map[PriceItem]float64{
		PriceFlooringSqft:  3.50,
		PricePaintGallon:   32.00,
		PricePrimerGallon:  22.00,
		PriceBaseboardFoot: 2.25,
		PriceCrownFoot:     3.75,
		PriceCasingFoot:    2.50,
		PriceCeilingTile:   4.50,
	}
}

// DefaultLaborRate is the default labor rate factor. The hourly charge is
// the rate multiplied by ten, so 7.5 bills at $75/hour.
const DefaultLaborRate = 7.5

// EstimateOptions tunes the cost estimate on top of the material take-off.
type EstimateOptions struct {
	// LaborRate is the labor rate factor; hourly cost is LaborRate × 10.
	LaborRate float64 `json:"laborRate"`

	// Materials configures the underlying take-off.
	Materials MaterialOptions `json:"materials"`
}

// DefaultEstimateOptions returns the standard estimate settings.
func DefaultEstimateOptions() EstimateOptions {
	return EstimateOptions{
		LaborRate: DefaultLaborRate,
		Materials: DefaultMaterialOptions(),
	}
}

// Normalized returns the options with non-positive fields replaced by
// defaults.
func (o EstimateOptions) Normalized() EstimateOptions {
	if o.LaborRate <= 0 {
		o.LaborRate = DefaultLaborRate
	}
	o.Materials = o.Materials.Normalized()
	return o
}

// CostEstimation is the priced result for a room or a document, in dollars.
// TrimCost covers baseboard, crown, casing and ceiling tiles.
type CostEstimation struct {
	// FlooringCost prices the flooring area.
	FlooringCost float64 `json:"flooringCost"`

	// PaintCost prices paint and primer together.
	PaintCost float64 `json:"paintCost"`

	// TrimCost prices baseboard, crown, casing and ceiling tiles.
	TrimCost float64 `json:"trimCost"`

	// LaborCost prices the estimated labor hours.
	LaborCost float64 `json:"laborCost"`

	// LaborHours is the estimated labor time in whole hours.
	LaborHours int `json:"laborHours"`

	// GrandTotal sums the four cost categories.
	GrandTotal float64 `json:"grandTotal"`
}

// Add returns the component-wise sum, used to fold room estimates into a
// document total.
func (c CostEstimation) Add(other CostEstimation) CostEstimation {
	return CostEstimation{
		FlooringCost: c.FlooringCost + other.FlooringCost,
		PaintCost:    c.PaintCost + other.PaintCost,
		TrimCost:     c.TrimCost + other.TrimCost,
		LaborCost:    c.LaborCost + other.LaborCost,
		LaborHours:   c.LaborHours + other.LaborHours,
		GrandTotal:   c.GrandTotal + other.GrandTotal,
	}
}

// RoomEstimate pairs a room with its take-off and priced costs.
type RoomEstimate struct {
	// RoomID identifies the estimated room.
	RoomID string `json:"roomId"`

	// Name is the room's display name.
	Name string `json:"name"`

	// Areas holds the figures the estimate was derived from.
	Areas AreaCalculation `json:"areas"`

	// Materials is the room's material take-off.
	Materials MaterialCalculation `json:"materials"`

	// Costs is the room's priced estimate.
	Costs CostEstimation `json:"costs"`
}

// DocumentEstimate is the full priced estimate: per-room detail plus totals.
type DocumentEstimate struct {
	// Name is the estimated document's name.
	Name string `json:"name"`

	// Rooms holds one estimate per valid room, in document order.
	Rooms []RoomEstimate `json:"rooms"`

	// TotalMaterials folds the room take-offs.
	TotalMaterials MaterialCalculation `json:"totalMaterials"`

	// TotalCosts folds the room costs.
	TotalCosts CostEstimation `json:"totalCosts"`

	// Prices echoes the unit prices the estimate was computed with.
	Prices map[PriceItem]float64 `json:"prices"`
}
