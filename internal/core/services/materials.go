package services

import (
	"context"
	"fmt"
	"math"

	"github.com/smj9504/sketchplan/internal/core/domain"
	"github.com/smj9504/sketchplan/internal/core/ports/driven"
	"github.com/smj9504/sketchplan/internal/core/ports/driving"
)

// Ensure MaterialService implements the interface.
var _ driving.MaterialEstimator = (*MaterialService)(nil)

// MaterialService turns measured areas into material quantities and, with
// the price book, into dollar estimates.
type MaterialService struct {
	analysis driving.AnalysisService
	prices   driven.PriceBook
}

// NewMaterialService creates a new material service.
func NewMaterialService(analysis driving.AnalysisService, prices driven.PriceBook) *MaterialService {
	return &MaterialService{
		analysis: analysis,
		prices:   prices,
	}
}

// RoomMaterials computes the take-off for one room.
func (s *MaterialService) RoomMaterials(document *domain.SketchDocument, roomID string, opts domain.MaterialOptions) (*domain.MaterialCalculation, error) {
	report, err := s.analysis.RoomAreas(document, roomID)
	if err != nil {
		return nil, err
	}
	if !report.Valid {
		return nil, fmt.Errorf("room %q: %w", roomID, domain.ErrNoValidArea)
	}

	materials := s.takeOff(document, *report, opts)
	return &materials, nil
}

// DocumentMaterials computes take-offs for every valid room. Invalid rooms
// are skipped; a document with none yields an empty result, not an error.
func (s *MaterialService) DocumentMaterials(document *domain.SketchDocument, opts domain.MaterialOptions) (*driving.DocumentMaterials, error) {
	analysis, err := s.analysis.Analyze(document)
	if err != nil {
		return nil, err
	}

	result := &driving.DocumentMaterials{}
	for _, report := range analysis.Rooms {
		if !report.Valid {
			continue
		}
		materials := s.takeOff(document, report, opts)
		result.Rooms = append(result.Rooms, driving.RoomMaterials{
			RoomID:    report.RoomID,
			Name:      report.Name,
			Materials: materials,
		})
		result.Totals = result.Totals.Add(materials)
	}
	return result, nil
}

// EstimateDocument prices the document take-off with the price book.
func (s *MaterialService) EstimateDocument(ctx context.Context, document *domain.SketchDocument, opts domain.EstimateOptions) (*domain.DocumentEstimate, error) {
	analysis, err := s.analysis.Analyze(document)
	if err != nil {
		return nil, err
	}

	prices, err := s.prices.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("load prices: %w", err)
	}

	opts = opts.Normalized()
	estimate := &domain.DocumentEstimate{
		Name:   document.Name,
		Prices: prices,
	}

	for _, report := range analysis.Rooms {
		if !report.Valid {
			continue
		}
		materials := s.takeOff(document, report, opts.Materials)
		costs := s.price(report.Areas, materials, prices, opts.LaborRate)

		estimate.Rooms = append(estimate.Rooms, domain.RoomEstimate{
			RoomID:    report.RoomID,
			Name:      report.Name,
			Areas:     report.Areas,
			Materials: materials,
			Costs:     costs,
		})
		estimate.TotalMaterials = estimate.TotalMaterials.Add(materials)
		estimate.TotalCosts = estimate.TotalCosts.Add(costs)
	}

	if len(estimate.Rooms) == 0 {
		return nil, fmt.Errorf("estimate %q: %w", document.Name, domain.ErrNoValidArea)
	}
	return estimate, nil
}

// takeOff derives material quantities from a room's measured areas.
func (s *MaterialService) takeOff(document *domain.SketchDocument, report domain.RoomAreaReport, opts domain.MaterialOptions) domain.MaterialCalculation {
	opts = opts.Normalized()
	areas := report.Areas

	materials := domain.MaterialCalculation{
		FlooringArea: areas.FloorArea * (1 + opts.WastePercent/100),
	}

	if areas.NetWallArea > 0 {
		materials.PaintGallons = int(math.Ceil(areas.NetWallArea / opts.PaintCoverage))
		materials.PrimerGallons = int(math.Ceil(domain.PrimerCoverageFactor * float64(materials.PaintGallons)))
	}

	tileSqft := (opts.CeilingTileSize / domain.InchesPerFoot) * (opts.CeilingTileSize / domain.InchesPerFoot)
	if areas.CeilingArea > 0 {
		materials.CeilingTiles = int(math.Ceil(areas.CeilingArea / tileSqft))
	}

	if opts.IncludeTrim {
		materials.BaseboardLength = areas.Perimeter
		materials.CrownLength = areas.Perimeter
		materials.CasingLength = s.casingLength(document, report.RoomID)
	}
	return materials
}

// casingLength sums door and window casing in feet: two jambs plus the
// head, 2h + w, per opening on the room's walls.
func (s *MaterialService) casingLength(document *domain.SketchDocument, roomID string) float64 {
	room, ok := document.RoomByID(roomID)
	if !ok {
		return 0
	}

	total := 0.0
	for _, wallID := range room.WallIDs {
		for _, fixture := range document.FixturesForWall(wallID) {
			if !fixture.IsOpening {
				continue
			}
			dims := fixture.Dimensions
			if fixture.OpeningDimensions != nil {
				dims = *fixture.OpeningDimensions
			}
			if !dims.IsPositive() {
				continue
			}
			total += (2*dims.Height + dims.Width) / domain.InchesPerFoot
		}
	}
	return total
}

// price turns a take-off into dollar costs. Labor runs one hour per ten
// square feet of floor, rounded up, at ten times the labor rate per hour.
func (s *MaterialService) price(areas domain.AreaCalculation, materials domain.MaterialCalculation, prices map[domain.PriceItem]float64, laborRate float64) domain.CostEstimation {
	costs := domain.CostEstimation{
		FlooringCost: materials.FlooringArea * prices[domain.PriceFlooringSqft],
		PaintCost: float64(materials.PaintGallons)*prices[domain.PricePaintGallon] +
			float64(materials.PrimerGallons)*prices[domain.PricePrimerGallon],
		TrimCost: materials.BaseboardLength*prices[domain.PriceBaseboardFoot] +
			materials.CrownLength*prices[domain.PriceCrownFoot] +
			materials.CasingLength*prices[domain.PriceCasingFoot] +
			float64(materials.CeilingTiles)*prices[domain.PriceCeilingTile],
	}

	if areas.FloorArea > 0 {
		costs.LaborHours = int(math.Ceil(areas.FloorArea / 10))
	}
	costs.LaborCost = float64(costs.LaborHours) * laborRate * 10

	costs.GrandTotal = costs.FlooringCost + costs.PaintCost + costs.TrimCost + costs.LaborCost
	return costs
}
