package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/smj9504/sketchplan/internal/core/domain"
	"github.com/smj9504/sketchplan/internal/core/ports/driven"
)

// mockPriceBook serves a fixed price table.
type mockPriceBook struct {
	prices map[domain.PriceItem]float64
}

var _ driven.PriceBook = (*mockPriceBook)(nil)

func newMockPriceBook() *mockPriceBook {
	return &mockPriceBook{prices: domain.DefaultPrices()}
}

func (m *mockPriceBook) Get(_ context.Context, item domain.PriceItem) (float64, error) {
	return m.prices[item], nil
}

func (m *mockPriceBook) Set(_ context.Context, item domain.PriceItem, price float64) error {
	m.prices[item] = price
	return nil
}

func (m *mockPriceBook) All(_ context.Context) (map[domain.PriceItem]float64, error) {
	return m.prices, nil
}

func (m *mockPriceBook) Close() error {
	return nil
}

func newMaterials() *MaterialService {
	return NewMaterialService(newAnalysis(), newMockPriceBook())
}

// doorDocument is the square room with one standard door opening.
func doorDocument() *domain.SketchDocument {
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
	return document
}

// TestMaterialService_RoomMaterials tests the take-off for the square room
func TestMaterialService_RoomMaterials(t *testing.T) {
	materials, err := newMaterials().RoomMaterials(doorDocument(), "r1", domain.DefaultMaterialOptions())
	require.NoError(t, err)

	// 100 sqft floor with 10% waste.
	assert.InDelta(t, 110.0, materials.FlooringArea, 1e-9)
	// 300 sqft net wall at 350 sqft per gallon.
	assert.Equal(t, 1, materials.PaintGallons)
	assert.Equal(t, 1, materials.PrimerGallons)
	// 40 ft perimeter for both trim runs.
	assert.InDelta(t, 40.0, materials.BaseboardLength, 1e-9)
	assert.InDelta(t, 40.0, materials.CrownLength, 1e-9)
	// One 36x80 door: (2*80 + 36)/12 feet of casing.
	assert.InDelta(t, 196.0/12, materials.CasingLength, 1e-9)
	// 100 sqft ceiling in 2x2 ft tiles.
	assert.Equal(t, 25, materials.CeilingTiles)
}

// TestMaterialService_RoomMaterials_NoTrim tests trim suppression
func TestMaterialService_RoomMaterials_NoTrim(t *testing.T) {
	opts := domain.DefaultMaterialOptions()
	opts.IncludeTrim = false

	materials, err := newMaterials().RoomMaterials(doorDocument(), "r1", opts)
	require.NoError(t, err)

	assert.Zero(t, materials.BaseboardLength)
	assert.Zero(t, materials.CrownLength)
	assert.Zero(t, materials.CasingLength)
	// Ceiling tiles are a finish, not trim; they stay.
	assert.Equal(t, 25, materials.CeilingTiles)
}

// TestMaterialService_RoomMaterials_WasteOverride tests a custom waste percentage
func TestMaterialService_RoomMaterials_WasteOverride(t *testing.T) {
	opts := domain.DefaultMaterialOptions()
	opts.WastePercent = 15

	materials, err := newMaterials().RoomMaterials(doorDocument(), "r1", opts)
	require.NoError(t, err)

	assert.InDelta(t, 115.0, materials.FlooringArea, 1e-9)
}

// TestMaterialService_RoomMaterials_Errors tests lookup and validity errors
func TestMaterialService_RoomMaterials_Errors(t *testing.T) {
	service := newMaterials()

	_, err := service.RoomMaterials(doorDocument(), "missing", domain.DefaultMaterialOptions())
	assert.ErrorIs(t, err, domain.ErrNotFound)

	open := &domain.SketchDocument{
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
	_, err = service.RoomMaterials(open, "r1", domain.DefaultMaterialOptions())
	assert.ErrorIs(t, err, domain.ErrNoValidArea)
}

// TestMaterialService_DocumentMaterials tests folding room take-offs
func TestMaterialService_DocumentMaterials(t *testing.T) {
	document := doorDocument()
	// A second room that cannot be measured contributes nothing.
	document.Rooms = append(document.Rooms, domain.SketchRoom{
		ID: "r2", Name: "Stub", WallIDs: []string{"w1"},
	})

	result, err := newMaterials().DocumentMaterials(document, domain.DefaultMaterialOptions())
	require.NoError(t, err)

	require.Len(t, result.Rooms, 1)
	assert.Equal(t, "r1", result.Rooms[0].RoomID)
	assert.InDelta(t, 110.0, result.Totals.FlooringArea, 1e-9)
}

// TestMaterialService_EstimateDocument tests the priced estimate end to end
func TestMaterialService_EstimateDocument(t *testing.T) {
	estimate, err := newMaterials().EstimateDocument(
		context.Background(), doorDocument(), domain.DefaultEstimateOptions())
	require.NoError(t, err)

	require.Len(t, estimate.Rooms, 1)
	costs := estimate.Rooms[0].Costs

	// Flooring: 110 sqft at $3.50.
	assert.InDelta(t, 385.0, costs.FlooringCost, 0.01)
	// Paint: 1 gallon paint + 1 gallon primer.
	assert.InDelta(t, 54.0, costs.PaintCost, 0.01)
	// Trim: baseboard 40*2.25 + crown 40*3.75 + casing (196/12)*2.50 +
	// 25 tiles at 4.50.
	assert.InDelta(t, 90+150+(196.0/12)*2.50+112.5, costs.TrimCost, 0.01)
	// Labor: 100 sqft -> 10 hours at 7.5*10 per hour.
	assert.Equal(t, 10, costs.LaborHours)
	assert.InDelta(t, 750.0, costs.LaborCost, 0.01)

	expectedTotal := costs.FlooringCost + costs.PaintCost + costs.TrimCost + costs.LaborCost
	assert.InDelta(t, expectedTotal, costs.GrandTotal, 0.01)
	assert.InDelta(t, expectedTotal, estimate.TotalCosts.GrandTotal, 0.01)
	assert.NotEmpty(t, estimate.Prices)
}

// TestMaterialService_EstimateDocument_CustomPrices tests price overrides
func TestMaterialService_EstimateDocument_CustomPrices(t *testing.T) {
	book := newMockPriceBook()
	require.NoError(t, book.Set(context.Background(), domain.PriceFlooringSqft, 10.0))
	service := NewMaterialService(newAnalysis(), book)

	estimate, err := service.EstimateDocument(
		context.Background(), doorDocument(), domain.DefaultEstimateOptions())
	require.NoError(t, err)

	assert.InDelta(t, 1100.0, estimate.Rooms[0].Costs.FlooringCost, 0.01)
}

// TestMaterialService_EstimateDocument_NoValidArea tests the caller-contract error
func TestMaterialService_EstimateDocument_NoValidArea(t *testing.T) {
	open := &domain.SketchDocument{
		Name:  "Open",
		Scale: domain.Scale{PixelsPerFoot: 50},
		Walls: []domain.Wall{
			{ID: "w1", Start: domain.Pt(0, 0), End: domain.Pt(500, 0)},
		},
		Rooms: []domain.SketchRoom{
			{ID: "r1", Name: "Sliver", WallIDs: []string{"w1"}},
		},
	}

	_, err := newMaterials().EstimateDocument(
		context.Background(), open, domain.DefaultEstimateOptions())

	assert.ErrorIs(t, err, domain.ErrNoValidArea)
}
