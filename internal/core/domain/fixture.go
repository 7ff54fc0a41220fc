package domain

// FixtureCategory classifies what a fixture is, which drives its default
// dimensions and whether it typically punches an opening in a wall.
type FixtureCategory string

const (
	FixtureDoor      FixtureCategory = "door"
	FixtureWindow    FixtureCategory = "window"
	FixtureCabinet   FixtureCategory = "cabinet"
	FixtureAppliance FixtureCategory = "appliance"
	FixtureSink      FixtureCategory = "sink"
	FixtureToilet    FixtureCategory = "toilet"
	FixtureBathtub   FixtureCategory = "bathtub"
	FixtureOutlet    FixtureCategory = "outlet"
	FixtureSwitch    FixtureCategory = "switch"
	FixtureOther     FixtureCategory = "other"
)

// IsValid checks if the fixture category is a recognised value.
func (c FixtureCategory) IsValid() bool {
	switch c {
	case FixtureDoor, FixtureWindow, FixtureCabinet, FixtureAppliance,
		FixtureSink, FixtureToilet, FixtureBathtub, FixtureOutlet,
		FixtureSwitch, FixtureOther:
		return true
	}
	return false
}

// String returns the string representation of the fixture category.
func (c FixtureCategory) String() string {
	return string(c)
}

// AllFixtureCategories returns all recognised fixture categories.
func AllFixtureCategories() []FixtureCategory {
	return []FixtureCategory{
		FixtureDoor,
		FixtureWindow,
		FixtureCabinet,
		FixtureAppliance,
		FixtureSink,
		FixtureToilet,
		FixtureBathtub,
		FixtureOutlet,
		FixtureSwitch,
		FixtureOther,
	}
}

// Dimensions is a fixture's physical size in inches. Depth is optional and
// zero for flat fixtures such as windows.
type Dimensions struct {
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
	Depth  float64 `json:"depth,omitempty"`
}

// IsPositive reports whether width and height are both greater than zero.
func (d Dimensions) IsPositive() bool {
	return d.Width > 0 && d.Height > 0
}

// WallFixture is a door, window or other element placed either on a wall
// (WallID plus Position along it) or freestanding in a room (RoomID plus
// Location).
type WallFixture struct {
	// ID uniquely identifies the fixture within its document.
	ID string `json:"id"`

	// Category classifies the fixture.
	Category FixtureCategory `json:"category"`

	// WallID is the host wall for wall-mounted fixtures.
	WallID string `json:"wallId,omitempty"`

	// Position locates a wall-mounted fixture along its wall as a fraction
	// in [0, 1] from the wall's start point.
	Position float64 `json:"position,omitempty"`

	// RoomID is the host room for freestanding fixtures.
	RoomID string `json:"roomId,omitempty"`

	// Location is the drawing-space position of a freestanding fixture.
	Location *Point `json:"location,omitempty"`

	// Dimensions is the fixture's physical size in inches.
	Dimensions Dimensions `json:"dimensions"`

	// IsOpening marks fixtures that punch through their host wall, such as
	// doors and windows. Opening area is subtracted from net wall area.
	IsOpening bool `json:"isOpening,omitempty"`

	// OpeningDimensions overrides Dimensions for the subtracted opening,
	// for cases like a door whose rough opening differs from the slab.
	OpeningDimensions *Dimensions `json:"openingDimensions,omitempty"`
}

// IsWallMounted reports whether the fixture is placed on a wall rather than
// freestanding in a room.
func (f WallFixture) IsWallMounted() bool {
	return f.WallID != ""
}

// OpeningArea returns the wall area this fixture removes, in square feet.
// Non-opening fixtures and non-positive dimensions contribute zero.
func (f WallFixture) OpeningArea() float64 {
	if !f.IsOpening {
		return 0
	}
	dims := f.Dimensions
	if f.OpeningDimensions != nil {
		dims = *f.OpeningDimensions
	}
	if !dims.IsPositive() {
		return 0
	}
	return (dims.Width / InchesPerFoot) * (dims.Height / InchesPerFoot)
}

// PointOn returns the drawing-space position of a wall-mounted fixture on
// the given wall, clamping Position into [0, 1].
func (f WallFixture) PointOn(wall Wall) Point {
	t := f.Position
	if t < 0 {
		t = 0
	}
	if t > 1 {
		t = 1
	}
	direction := wall.End.Sub(wall.Start)
	return wall.Start.Add(direction.Scale(t))
}
