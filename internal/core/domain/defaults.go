package domain

// Structural defaults applied when a document leaves a value unset.
const (
	// DefaultCeilingHeightInches is the ceiling height assumed for rooms
	// without an override (8 feet).
	DefaultCeilingHeightInches = 96.0

	// DefaultWallHeightInches is the height assumed for walls without one
	// (8 feet).
	DefaultWallHeightInches = 96.0

	// DefaultWallThicknessInches is a framed interior wall with drywall on
	// both faces.
	DefaultWallThicknessInches = 4.5
)

// WallStyle is the presentation default a host applies to newly drawn
// walls. The engine itself never renders.
type WallStyle struct {
	// StrokeColor is a hex display color.
	StrokeColor string `json:"strokeColor"`

	// StrokeWidth is the drawn line width in drawing units.
	StrokeWidth float64 `json:"strokeWidth"`
}

// DefaultWallStyle returns the standard wall presentation.
func DefaultWallStyle() WallStyle {
	return WallStyle{
		StrokeColor: "#333333",
		StrokeWidth: 4,
	}
}

// DefaultFixtureDimensions returns the standard size in inches for a
// fixture category, used when a fixture is placed without explicit
// dimensions.
func DefaultFixtureDimensions(category FixtureCategory) Dimensions {
	switch category {
	case FixtureDoor:
		return Dimensions{Width: 32, Height: 80}
	case FixtureWindow:
		return Dimensions{Width: 36, Height: 48}
	case FixtureCabinet:
		return Dimensions{Width: 24, Height: 34.5, Depth: 24}
	case FixtureAppliance:
		return Dimensions{Width: 30, Height: 36, Depth: 28}
	case FixtureSink:
		return Dimensions{Width: 22, Height: 8, Depth: 19}
	case FixtureToilet:
		return Dimensions{Width: 20, Height: 28, Depth: 14}
	case FixtureBathtub:
		return Dimensions{Width: 60, Height: 20, Depth: 30}
	case FixtureOutlet:
		return Dimensions{Width: 3, Height: 5}
	case FixtureSwitch:
		return Dimensions{Width: 3, Height: 5}
	default:
		return Dimensions{Width: 24, Height: 24}
	}
}

// SuggestedRoomNames returns display names offered for detected rooms, in
// preference order.
func SuggestedRoomNames() []string {
	return []string{
		"Living Room",
		"Kitchen",
		"Bedroom",
		"Bathroom",
		"Dining Room",
		"Office",
		"Hallway",
		"Closet",
		"Laundry Room",
		"Garage",
	}
}
