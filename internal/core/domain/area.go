package domain

// AreaCalculation is the set of derived area figures for a room or for a
// whole document. Floor, ceiling and wall areas are square feet, volume is
// cubic feet and perimeter is linear feet.
type AreaCalculation struct {
	// FloorArea is the enclosed floor area in square feet. For rooms with
	// interior holes it is the outer area minus the holes.
	FloorArea float64 `json:"floorArea"`

	// CeilingArea mirrors the floor area.
	CeilingArea float64 `json:"ceilingArea"`

	// WallArea is the gross wall surface in square feet, before openings
	// are subtracted.
	WallArea float64 `json:"wallArea"`

	// NetWallArea is the wall surface with door and window openings
	// subtracted, never below zero.
	NetWallArea float64 `json:"netWallArea"`

	// Volume is the enclosed volume in cubic feet.
	Volume float64 `json:"volume"`

	// Perimeter is the boundary length in feet.
	Perimeter float64 `json:"perimeter"`
}

// Add returns the component-wise sum, used to fold room figures into
// document totals.
func (a AreaCalculation) Add(other AreaCalculation) AreaCalculation {
	return AreaCalculation{
		FloorArea:   a.FloorArea + other.FloorArea,
		CeilingArea: a.CeilingArea + other.CeilingArea,
		WallArea:    a.WallArea + other.WallArea,
		NetWallArea: a.NetWallArea + other.NetWallArea,
		Volume:      a.Volume + other.Volume,
		Perimeter:   a.Perimeter + other.Perimeter,
	}
}

// RoomAreaReport pairs a room with its derived figures in an analysis
// result.
type RoomAreaReport struct {
	// RoomID identifies the analysed room.
	RoomID string `json:"roomId"`

	// Name is the room's display name.
	Name string `json:"name"`

	// Type is the room's classification, when authored.
	Type string `json:"type,omitempty"`

	// Valid reports whether the room had enough connected walls to trace a
	// closed boundary. Invalid rooms carry zero areas.
	Valid bool `json:"valid"`

	// Boundary is the traced polygon in drawing units.
	Boundary []Point `json:"boundary,omitempty"`

	// Dimensions is the bounding-box size in feet.
	Dimensions RoomDimensions `json:"dimensions"`

	// Areas holds the derived figures.
	Areas AreaCalculation `json:"areas"`
}

// DocumentAnalysis is the full measurement result for a document: per-room
// figures plus totals over the valid rooms.
type DocumentAnalysis struct {
	// Name is the analysed document's name.
	Name string `json:"name"`

	// Scale is the normalised scale the figures were computed at.
	Scale Scale `json:"scale"`

	// Rooms holds one report per room, in document order.
	Rooms []RoomAreaReport `json:"rooms"`

	// Totals folds the figures of all valid rooms.
	Totals AreaCalculation `json:"totals"`

	// Bounds is the drawing-space bounding box over all walls.
	Bounds Bounds `json:"bounds"`

	// WallCount, RoomCount and FixtureCount echo the document's element
	// counts.
	WallCount    int `json:"wallCount"`
	RoomCount    int `json:"roomCount"`
	FixtureCount int `json:"fixtureCount"`
}

// ValidRoomCount returns how many rooms produced a closed boundary.
func (da DocumentAnalysis) ValidRoomCount() int {
	count := 0
	for _, room := range da.Rooms {
		if room.Valid {
			count++
		}
	}
	return count
}
