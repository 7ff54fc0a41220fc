package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/smj9504/sketchplan/internal/core/domain"
)

// squareRoomDocument builds a 10x10 foot square room at 50 pixels per foot.
func squareRoomDocument() *domain.SketchDocument {
	return &domain.SketchDocument{
		Name:  "Square",
		Scale: domain.Scale{PixelsPerFoot: 50},
		Walls: squareWalls("w", domain.Pt(0, 0), 500),
		Rooms: []domain.SketchRoom{
			{ID: "r1", Name: "Studio", WallIDs: []string{"w1", "w2", "w3", "w4"}},
		},
	}
}

func newAnalysis() *AnalysisService {
	return NewAnalysisService(NewTopologyService(0))
}

// TestAnalysisService_Analyze_SquareRoom tests the canonical 10x10 foot room
func TestAnalysisService_Analyze_SquareRoom(t *testing.T) {
	analysis, err := newAnalysis().Analyze(squareRoomDocument())
	require.NoError(t, err)

	require.Len(t, analysis.Rooms, 1)
	room := analysis.Rooms[0]
	require.True(t, room.Valid)

	assert.InDelta(t, 100.0, room.Areas.FloorArea, 1e-9)
	assert.InDelta(t, 100.0, room.Areas.CeilingArea, 1e-9)
	assert.InDelta(t, 40.0, room.Areas.Perimeter, 1e-9)
	assert.InDelta(t, 320.0, room.Areas.WallArea, 1e-9)
	assert.InDelta(t, 320.0, room.Areas.NetWallArea, 1e-9)
	assert.InDelta(t, 800.0, room.Areas.Volume, 1e-9)
	assert.InDelta(t, 10.0, room.Dimensions.Width, 1e-9)
	assert.InDelta(t, 10.0, room.Dimensions.Height, 1e-9)

	assert.Equal(t, analysis.Totals, room.Areas)
	assert.Equal(t, 1, analysis.ValidRoomCount())
	assert.Equal(t, 4, analysis.WallCount)
	assert.InDelta(t, 500.0, analysis.Bounds.Width(), 1e-9)
}

// TestAnalysisService_Analyze_InsufficientWalls tests that a two-wall room
// is flagged and contributes nothing to totals
func TestAnalysisService_Analyze_InsufficientWalls(t *testing.T) {
	document := &domain.SketchDocument{
		Name:  "Open",
		Scale: domain.Scale{PixelsPerFoot: 50},
		Walls: []domain.Wall{
			{ID: "w1", Start: domain.Pt(0, 0), End: domain.Pt(500, 0)},
			{ID: "w2", Start: domain.Pt(500, 0), End: domain.Pt(500, 500)},
		},
		Rooms: []domain.SketchRoom{
			{ID: "r1", Name: "Half", WallIDs: []string{"w1", "w2"}},
		},
	}

	analysis, err := newAnalysis().Analyze(document)
	require.NoError(t, err)

	require.Len(t, analysis.Rooms, 1)
	room := analysis.Rooms[0]
	assert.False(t, room.Valid)
	assert.Zero(t, room.Areas.FloorArea)
	assert.Zero(t, room.Areas.Volume)
	assert.Zero(t, analysis.Totals.FloorArea)
	assert.Zero(t, analysis.ValidRoomCount())
}

// TestAnalysisService_Analyze_HoleSubtraction tests a room with an interior loop
func TestAnalysisService_Analyze_HoleSubtraction(t *testing.T) {
	outer := squareWalls("outer", domain.Pt(0, 0), 1000)
	inner := squareWalls("inner", domain.Pt(200, 200), 250)
	wallIDs := make([]string, 0, 8)
	for _, wall := range append(append([]domain.Wall{}, outer...), inner...) {
		wallIDs = append(wallIDs, wall.ID)
	}

	document := &domain.SketchDocument{
		Name:  "Holes",
		Scale: domain.Scale{PixelsPerFoot: 50},
		Walls: append(append([]domain.Wall{}, outer...), inner...),
		Rooms: []domain.SketchRoom{
			{ID: "r1", Name: "Shell", WallIDs: wallIDs},
		},
	}

	analysis, err := newAnalysis().Analyze(document)
	require.NoError(t, err)

	room := analysis.Rooms[0]
	require.True(t, room.Valid)

	// 20x20 outer minus 5x5 hole.
	assert.InDelta(t, 375.0, room.Areas.FloorArea, 1e-9)
	assert.InDelta(t, 80.0, room.Areas.Perimeter, 1e-9)
}

// TestAnalysisService_Analyze_OpeningSubtraction tests net wall area with a door
func TestAnalysisService_Analyze_OpeningSubtraction(t *testing.T) {
	document := squareRoomDocument()
	document.Fixtures = []domain.WallFixture{
		{
			ID:         "f1",
			Category:   domain.FixtureDoor,
			WallID:     "w1",
			Position:   0.5,
			IsOpening:  true,
			Dimensions: domain.Dimensions{Width: 36, Height: 80},
		},
	}

	analysis, err := newAnalysis().Analyze(document)
	require.NoError(t, err)

	room := analysis.Rooms[0]
	assert.InDelta(t, 320.0, room.Areas.WallArea, 1e-9)
	assert.InDelta(t, 300.0, room.Areas.NetWallArea, 1e-9)
}

// TestAnalysisService_Analyze_OversizedOpening tests the per-wall zero floor
func TestAnalysisService_Analyze_OversizedOpening(t *testing.T) {
	document := squareRoomDocument()
	document.Fixtures = []domain.WallFixture{
		{
			ID:         "f1",
			Category:   domain.FixtureWindow,
			WallID:     "w1",
			Position:   0.5,
			IsOpening:  true,
			Dimensions: domain.Dimensions{Width: 2000, Height: 200},
		},
	}

	analysis, err := newAnalysis().Analyze(document)
	require.NoError(t, err)

	// The oversized opening floors its own wall at zero and never eats
	// into the other three.
	assert.InDelta(t, 240.0, analysis.Rooms[0].Areas.NetWallArea, 1e-9)
}

// TestAnalysisService_Analyze_CeilingOverride tests volume with a vaulted ceiling
func TestAnalysisService_Analyze_CeilingOverride(t *testing.T) {
	document := squareRoomDocument()
	document.Rooms[0].Properties.CeilingHeight = domain.NewMeasurement(120)

	analysis, err := newAnalysis().Analyze(document)
	require.NoError(t, err)

	assert.InDelta(t, 1000.0, analysis.Rooms[0].Areas.Volume, 1e-9)
}

// TestAnalysisService_Analyze_ScaleFallback tests the default scale for
// documents that declare none
func TestAnalysisService_Analyze_ScaleFallback(t *testing.T) {
	document := squareRoomDocument()
	document.Scale = domain.Scale{}

	analysis, err := newAnalysis().Analyze(document)
	require.NoError(t, err)

	assert.InDelta(t, domain.DefaultPixelsPerFoot, analysis.Scale.PixelsPerFoot, 1e-9)
	assert.InDelta(t, 100.0, analysis.Rooms[0].Areas.FloorArea, 1e-9)
}

// TestAnalysisService_Analyze_EmptyDocument tests the zero-valued result
func TestAnalysisService_Analyze_EmptyDocument(t *testing.T) {
	analysis, err := newAnalysis().Analyze(&domain.SketchDocument{Name: "Empty"})
	require.NoError(t, err)

	assert.Empty(t, analysis.Rooms)
	assert.Zero(t, analysis.Totals.FloorArea)
	assert.Zero(t, analysis.WallCount)
}

// TestAnalysisService_Analyze_NilDocument tests the invalid-input guard
func TestAnalysisService_Analyze_NilDocument(t *testing.T) {
	_, err := newAnalysis().Analyze(nil)

	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

// TestAnalysisService_RoomAreas tests the single-room lookup
func TestAnalysisService_RoomAreas(t *testing.T) {
	service := newAnalysis()

	report, err := service.RoomAreas(squareRoomDocument(), "r1")
	require.NoError(t, err)
	assert.InDelta(t, 100.0, report.Areas.FloorArea, 1e-9)

	_, err = service.RoomAreas(squareRoomDocument(), "missing")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

// TestAnalysisService_Analyze_DanglingWallRefs tests that unknown wall IDs
// are skipped rather than fatal
func TestAnalysisService_Analyze_DanglingWallRefs(t *testing.T) {
	document := squareRoomDocument()
	document.Rooms[0].WallIDs = append(document.Rooms[0].WallIDs, "ghost")

	analysis, err := newAnalysis().Analyze(document)
	require.NoError(t, err)

	assert.True(t, analysis.Rooms[0].Valid)
	assert.InDelta(t, 100.0, analysis.Rooms[0].Areas.FloorArea, 1e-9)
}
