package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// testDocument builds a small two-wall document with one room and one door.
func testDocument() *SketchDocument {
	return &SketchDocument{
		Name:  "Test Plan",
		Scale: Scale{PixelsPerFoot: 50},
		Walls: []Wall{
			{ID: "w1", Start: Pt(0, 0), End: Pt(500, 0)},
			{ID: "w2", Start: Pt(500, 0), End: Pt(500, 500)},
		},
		Rooms: []SketchRoom{
			{ID: "r1", Name: "Kitchen", WallIDs: []string{"w1", "w2", "missing"}},
		},
		Fixtures: []WallFixture{
			{ID: "f1", Category: FixtureDoor, WallID: "w1", Position: 0.5, IsOpening: true},
		},
	}
}

// TestSketchDocument_Lookups tests wall, room and fixture lookup by ID
func TestSketchDocument_Lookups(t *testing.T) {
	doc := testDocument()

	wall, ok := doc.WallByID("w1")
	require.True(t, ok)
	assert.Equal(t, Pt(500, 0), wall.End)

	_, ok = doc.WallByID("nope")
	assert.False(t, ok)

	room, ok := doc.RoomByID("r1")
	require.True(t, ok)
	assert.Equal(t, "Kitchen", room.Name)

	fixture, ok := doc.FixtureByID("f1")
	require.True(t, ok)
	assert.Equal(t, FixtureDoor, fixture.Category)
}

// TestSketchDocument_WallsForRoom tests that dangling wall references are skipped
func TestSketchDocument_WallsForRoom(t *testing.T) {
	doc := testDocument()
	room, _ := doc.RoomByID("r1")

	walls := doc.WallsForRoom(room)

	assert.Len(t, walls, 2)
	assert.Equal(t, "w1", walls[0].ID)
	assert.Equal(t, "w2", walls[1].ID)
}

// TestSketchDocument_FixturesForWall tests fixture lookup by host wall
func TestSketchDocument_FixturesForWall(t *testing.T) {
	doc := testDocument()

	assert.Len(t, doc.FixturesForWall("w1"), 1)
	assert.Empty(t, doc.FixturesForWall("w2"))
}

// TestSketchDocument_BoundingBox tests bounds over all wall endpoints
func TestSketchDocument_BoundingBox(t *testing.T) {
	doc := testDocument()

	bounds := doc.BoundingBox()

	assert.Equal(t, Pt(0, 0), bounds.Min)
	assert.Equal(t, Pt(500, 500), bounds.Max)
	assert.InDelta(t, 500.0, bounds.Width(), 1e-9)
	assert.InDelta(t, 500.0, bounds.Height(), 1e-9)
	assert.False(t, bounds.IsEmpty())
}

// TestSketchDocument_BoundingBox_Empty tests zero bounds for an empty document
func TestSketchDocument_BoundingBox_Empty(t *testing.T) {
	doc := &SketchDocument{Name: "Empty"}

	assert.True(t, doc.IsEmpty())
	assert.Equal(t, Bounds{}, doc.BoundingBox())
}
