package domain

import "math"

// Bounds is an axis-aligned bounding box in drawing units.
type Bounds struct {
	// Min is the top-left corner (smallest X and Y).
	Min Point `json:"min"`

	// Max is the bottom-right corner (largest X and Y).
	Max Point `json:"max"`
}

// Width returns the horizontal extent in drawing units.
func (b Bounds) Width() float64 {
	return b.Max.X - b.Min.X
}

// Height returns the vertical extent in drawing units.
func (b Bounds) Height() float64 {
	return b.Max.Y - b.Min.Y
}

// IsEmpty reports whether the bounds cover no area.
func (b Bounds) IsEmpty() bool {
	return b.Width() <= 0 || b.Height() <= 0
}

// SketchDocument is a complete floor plan: walls, rooms and fixtures in a
// shared drawing space, plus the scale that maps drawing units to feet.
// The engine reads documents and returns derived results; it never mutates
// the authored fields.
type SketchDocument struct {
	// Name is the document's display name.
	Name string `json:"name"`

	// Scale maps drawing units to feet. A zero scale is normalised to the
	// default before any physical computation.
	Scale Scale `json:"scale"`

	// Walls holds every wall segment, in authored order.
	Walls []Wall `json:"walls"`

	// Rooms holds every room, in authored order.
	Rooms []SketchRoom `json:"rooms"`

	// Fixtures holds every fixture, in authored order.
	Fixtures []WallFixture `json:"fixtures"`
}

// WallByID looks up a wall by ID.
func (d *SketchDocument) WallByID(id string) (Wall, bool) {
	for _, wall := range d.Walls {
		if wall.ID == id {
			return wall, true
		}
	}
	return Wall{}, false
}

// RoomByID looks up a room by ID.
func (d *SketchDocument) RoomByID(id string) (SketchRoom, bool) {
	for _, room := range d.Rooms {
		if room.ID == id {
			return room, true
		}
	}
	return SketchRoom{}, false
}

// FixtureByID looks up a fixture by ID.
func (d *SketchDocument) FixtureByID(id string) (WallFixture, bool) {
	for _, fixture := range d.Fixtures {
		if fixture.ID == id {
			return fixture, true
		}
	}
	return WallFixture{}, false
}

// WallsForRoom resolves a room's wall references in order, skipping IDs
// that no longer exist in the document.
func (d *SketchDocument) WallsForRoom(room SketchRoom) []Wall {
	walls := make([]Wall, 0, len(room.WallIDs))
	for _, id := range room.WallIDs {
		if wall, ok := d.WallByID(id); ok {
			walls = append(walls, wall)
		}
	}
	return walls
}

// FixturesForWall returns every fixture mounted on the given wall.
func (d *SketchDocument) FixturesForWall(wallID string) []WallFixture {
	var fixtures []WallFixture
	for _, fixture := range d.Fixtures {
		if fixture.WallID == wallID {
			fixtures = append(fixtures, fixture)
		}
	}
	return fixtures
}

// IsEmpty reports whether the document has no walls.
func (d *SketchDocument) IsEmpty() bool {
	return len(d.Walls) == 0
}

// BoundingBox returns the drawing-space bounds over all wall endpoints.
// An empty document yields zero bounds.
func (d *SketchDocument) BoundingBox() Bounds {
	if len(d.Walls) == 0 {
		return Bounds{}
	}

	min := Point{X: math.Inf(1), Y: math.Inf(1)}
	max := Point{X: math.Inf(-1), Y: math.Inf(-1)}
	for _, wall := range d.Walls {
		for _, p := range []Point{wall.Start, wall.End} {
			min.X = math.Min(min.X, p.X)
			min.Y = math.Min(min.Y, p.Y)
			max.X = math.Max(max.X, p.X)
			max.Y = math.Max(max.Y, p.Y)
		}
	}
	return Bounds{Min: min, Max: max}
}
