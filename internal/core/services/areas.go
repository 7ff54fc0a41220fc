package services

import (
	"fmt"

	"github.com/smj9504/sketchplan/internal/core/domain"
	"github.com/smj9504/sketchplan/internal/core/ports/driving"
	"github.com/smj9504/sketchplan/internal/geometry"
)

// Ensure AnalysisService implements the interface.
var _ driving.AnalysisService = (*AnalysisService)(nil)

// AnalysisService measures documents: it traces room boundaries through the
// configured tracer and derives areas, volumes and perimeters at the
// document's scale.
type AnalysisService struct {
	tracer driving.BoundaryTracer
}

// NewAnalysisService creates a new analysis service.
func NewAnalysisService(tracer driving.BoundaryTracer) *AnalysisService {
	return &AnalysisService{tracer: tracer}
}

// Analyze measures every room and folds the valid ones into document
// totals. Invalid rooms still appear in the result, flagged and with zero
// floor figures, so hosts can show what went unmeasured.
func (s *AnalysisService) Analyze(document *domain.SketchDocument) (*domain.DocumentAnalysis, error) {
	if document == nil {
		return nil, fmt.Errorf("analyze: %w", domain.ErrInvalidInput)
	}

	analysis := &domain.DocumentAnalysis{
		Name:         document.Name,
		Scale:        document.Scale.Normalized(),
		Bounds:       document.BoundingBox(),
		WallCount:    len(document.Walls),
		RoomCount:    len(document.Rooms),
		FixtureCount: len(document.Fixtures),
	}

	for _, room := range document.Rooms {
		report := s.roomReport(document, room)
		analysis.Rooms = append(analysis.Rooms, report)
		if report.Valid {
			analysis.Totals = analysis.Totals.Add(report.Areas)
		}
	}
	return analysis, nil
}

// RoomAreas measures a single room by ID.
func (s *AnalysisService) RoomAreas(document *domain.SketchDocument, roomID string) (*domain.RoomAreaReport, error) {
	if document == nil {
		return nil, fmt.Errorf("room areas: %w", domain.ErrInvalidInput)
	}

	room, ok := document.RoomByID(roomID)
	if !ok {
		return nil, fmt.Errorf("room %q: %w", roomID, domain.ErrNotFound)
	}

	report := s.roomReport(document, room)
	return &report, nil
}

// roomReport traces one room's walls and derives its figures. Floor,
// ceiling and volume require a valid boundary; wall areas and perimeter are
// computed from whatever geometry exists.
func (s *AnalysisService) roomReport(document *domain.SketchDocument, room domain.SketchRoom) domain.RoomAreaReport {
	scale := document.Scale.Normalized()
	walls := document.WallsForRoom(room)
	layout := s.tracer.BoundaryWithHoles(walls)

	report := domain.RoomAreaReport{
		RoomID:   room.ID,
		Name:     room.Name,
		Type:     room.Type,
		Boundary: layout.Outer,
		Valid:    len(walls) >= domain.MinRoomWalls && len(layout.Outer) >= domain.MinRoomWalls,
	}

	bounds := geometry.BoundingBox(layout.Outer)
	report.Dimensions = domain.RoomDimensions{
		Width:  scale.PixelsToFeet(bounds.Width()),
		Height: scale.PixelsToFeet(bounds.Height()),
	}

	grossWall, netWall := s.wallAreas(document, walls)
	report.Areas = domain.AreaCalculation{
		WallArea:    grossWall,
		NetWallArea: netWall,
		Perimeter:   scale.PixelsToFeet(geometry.Perimeter(layout.Outer)),
	}

	if report.Valid {
		floor := scale.PixelsToSquareFeet(geometry.AreaWithHoles(layout.Outer, layout.Holes))
		report.Areas.FloorArea = floor
		report.Areas.CeilingArea = floor
		report.Areas.Volume = floor * room.CeilingHeightFeet()
	}
	return report
}

// wallAreas sums gross and net wall surface in square feet. Each wall's
// openings are subtracted from that wall only, floored at zero, so an
// oversized door cannot eat into a neighbouring wall.
func (s *AnalysisService) wallAreas(document *domain.SketchDocument, walls []domain.Wall) (gross, net float64) {
	scale := document.Scale.Normalized()
	for _, wall := range walls {
		surface := wall.LengthFeet(scale) * wall.HeightFeet()
		gross += surface

		openings := 0.0
		for _, fixture := range document.FixturesForWall(wall.ID) {
			openings += fixture.OpeningArea()
		}
		remaining := surface - openings
		if remaining < 0 {
			remaining = 0
		}
		net += remaining
	}
	return gross, net
}
