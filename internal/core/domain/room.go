package domain

// MinRoomWalls is the fewest walls that can enclose a measurable room.
const MinRoomWalls = 3

// RoomProperties holds per-room overrides for quantities that otherwise use
// document defaults.
type RoomProperties struct {
	// CeilingHeight overrides the default ceiling height when set.
	CeilingHeight Measurement `json:"ceilingHeight,omitempty"`
}

// RoomDimensions is the width and height of a room's bounding box in feet.
type RoomDimensions struct {
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

// SketchRoom groups walls into a named space. Boundary, Dimensions and Areas
// are derived by the engine; WallIDs is the authored source of truth.
type SketchRoom struct {
	// ID uniquely identifies the room within its document.
	ID string `json:"id"`

	// Name is the display name, such as "Kitchen".
	Name string `json:"name"`

	// Type is a free-form room classification, such as "bedroom".
	Type string `json:"type,omitempty"`

	// WallIDs lists the walls enclosing this room. References may dangle;
	// lookups skip unknown IDs.
	WallIDs []string `json:"wallIds"`

	// Boundary is the traced closed polygon in drawing units, derived.
	Boundary []Point `json:"boundary,omitempty"`

	// Dimensions is the bounding-box size in feet, derived.
	Dimensions RoomDimensions `json:"dimensions,omitempty"`

	// Areas holds the derived area figures, when computed.
	Areas *AreaCalculation `json:"areas,omitempty"`

	// Properties holds per-room overrides.
	Properties RoomProperties `json:"properties,omitempty"`
}

// HasMinimumWalls reports whether the room references enough walls to
// enclose an area. Under-specified rooms are flagged, never rejected.
func (r SketchRoom) HasMinimumWalls() bool {
	return len(r.WallIDs) >= MinRoomWalls
}

// CeilingHeightInches returns the room's ceiling height in inches, falling
// back to the default when unset or non-positive.
func (r SketchRoom) CeilingHeightInches() float64 {
	if r.Properties.CeilingHeight.TotalInches <= 0 {
		return DefaultCeilingHeightInches
	}
	return r.Properties.CeilingHeight.TotalInches
}

// CeilingHeightFeet returns the room's ceiling height in feet, with the same
// fallback as CeilingHeightInches.
func (r SketchRoom) CeilingHeightFeet() float64 {
	return r.CeilingHeightInches() / InchesPerFoot
}
