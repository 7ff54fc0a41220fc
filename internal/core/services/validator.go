package services

import (
	"fmt"
	"strings"

	"github.com/smj9504/sketchplan/internal/core/domain"
	"github.com/smj9504/sketchplan/internal/core/ports/driving"
	"github.com/smj9504/sketchplan/internal/geometry"
)

// Ensure ValidationService implements the interface.
var _ driving.Validator = (*ValidationService)(nil)

// ValidationService performs structural checks on documents. Errors mark
// geometry the measurement pipeline cannot trust; warnings mark values that
// are legal but suspicious. The document is never mutated.
type ValidationService struct {
	tracer driving.BoundaryTracer
}

// NewValidationService creates a new validation service.
func NewValidationService(tracer driving.BoundaryTracer) *ValidationService {
	return &ValidationService{tracer: tracer}
}

// Validate inspects the document and reports errors and warnings.
func (s *ValidationService) Validate(document *domain.SketchDocument) domain.ValidationResult {
	result := domain.ValidationResult{IsValid: true}
	if document == nil {
		document = &domain.SketchDocument{}
	}

	s.checkDocument(document, &result)
	s.checkWalls(document, &result)
	s.checkRooms(document, &result)
	s.checkFixtures(document, &result)
	return result
}

func (s *ValidationService) checkDocument(document *domain.SketchDocument, result *domain.ValidationResult) {
	if strings.TrimSpace(document.Name) == "" {
		result.AddError(domain.ValidationIssue{
			Code:        domain.CodeDocumentNameEmpty,
			Message:     "document has no name",
			ElementType: domain.ElementDocument,
		})
	}
}

func (s *ValidationService) checkWalls(document *domain.SketchDocument, result *domain.ValidationResult) {
	scale := document.Scale.Normalized()
	adjacency := s.tracer.BuildConnectivity(document.Walls)

	for _, wall := range document.Walls {
		if !wall.Start.IsFinite() || !wall.End.IsFinite() {
			result.AddError(domain.ValidationIssue{
				Code:        domain.CodeWallCoordsInvalid,
				Message:     "wall has non-finite coordinates",
				ElementID:   wall.ID,
				ElementType: domain.ElementWall,
			})
			continue
		}

		if lengthInches := scale.PixelsToInches(wall.Length()); lengthInches < domain.MinWallLengthInches {
			result.AddError(domain.ValidationIssue{
				Code:        domain.CodeWallTooShort,
				Message:     fmt.Sprintf("wall is %.2f inches long, minimum is %.0f", lengthInches, domain.MinWallLengthInches),
				ElementID:   wall.ID,
				ElementType: domain.ElementWall,
			})
		}

		if wall.Thickness < 0 || wall.Thickness > domain.MaxWallThicknessInches {
			result.AddWarning(domain.ValidationIssue{
				Code:        domain.CodeWallThicknessRange,
				Message:     fmt.Sprintf("wall thickness %.1f inches is outside 0-%.0f", wall.Thickness, domain.MaxWallThicknessInches),
				ElementID:   wall.ID,
				ElementType: domain.ElementWall,
			})
		}

		if wall.Height.TotalInches > 0 && wall.HeightFeet() > domain.MaxWallHeightFeet {
			result.AddWarning(domain.ValidationIssue{
				Code:        domain.CodeWallHeightRange,
				Message:     fmt.Sprintf("wall height %.1f feet is outside 0-%.0f", wall.HeightFeet(), domain.MaxWallHeightFeet),
				ElementID:   wall.ID,
				ElementType: domain.ElementWall,
			})
		}

		if len(document.Walls) > 1 && len(adjacency[wall.ID]) == 0 {
			result.AddWarning(domain.ValidationIssue{
				Code:        domain.CodeWallDisconnected,
				Message:     "wall connects to nothing",
				ElementID:   wall.ID,
				ElementType: domain.ElementWall,
			})
		}
	}
}

func (s *ValidationService) checkRooms(document *domain.SketchDocument, result *domain.ValidationResult) {
	for _, room := range document.Rooms {
		if strings.TrimSpace(room.Name) == "" {
			result.AddError(domain.ValidationIssue{
				Code:        domain.CodeRoomNameEmpty,
				Message:     "room has no name",
				ElementID:   room.ID,
				ElementType: domain.ElementRoom,
			})
		}

		switch {
		case len(room.WallIDs) == 0:
			result.AddError(domain.ValidationIssue{
				Code:        domain.CodeRoomNoWalls,
				Message:     "room references no walls",
				ElementID:   room.ID,
				ElementType: domain.ElementRoom,
			})
		case len(room.WallIDs) < domain.MinRoomWalls:
			result.AddError(domain.ValidationIssue{
				Code:        domain.CodeRoomInsufficientWalls,
				Message:     fmt.Sprintf("room has %d walls, %d are needed to enclose an area", len(room.WallIDs), domain.MinRoomWalls),
				ElementID:   room.ID,
				ElementType: domain.ElementRoom,
			})
		}

		for _, wallID := range room.WallIDs {
			if _, ok := document.WallByID(wallID); !ok {
				result.AddError(domain.ValidationIssue{
					Code:        domain.CodeRoomWallNotFound,
					Message:     fmt.Sprintf("room references unknown wall %q", wallID),
					ElementID:   room.ID,
					ElementType: domain.ElementRoom,
				})
			}
		}

		ceiling := room.Properties.CeilingHeight
		if ceiling.TotalInches > 0 && ceiling.AsFeet() > domain.MaxCeilingHeightFeet {
			result.AddWarning(domain.ValidationIssue{
				Code:        domain.CodeCeilingHeightRange,
				Message:     fmt.Sprintf("ceiling height %.1f feet is outside 0-%.0f", ceiling.AsFeet(), domain.MaxCeilingHeightFeet),
				ElementID:   room.ID,
				ElementType: domain.ElementRoom,
			})
		}

		if walls := document.WallsForRoom(room); len(walls) >= domain.MinRoomWalls {
			boundary := s.tracer.CalculateRoomBoundary(walls)
			if geometry.Area(boundary) <= 0 {
				result.AddWarning(domain.ValidationIssue{
					Code:        domain.CodeRoomAreaNotPositive,
					Message:     "room walls do not enclose a positive area",
					ElementID:   room.ID,
					ElementType: domain.ElementRoom,
				})
			}
		}
	}
}

func (s *ValidationService) checkFixtures(document *domain.SketchDocument, result *domain.ValidationResult) {
	for _, fixture := range document.Fixtures {
		if fixture.IsWallMounted() && (fixture.Position < 0 || fixture.Position > 1) {
			result.AddError(domain.ValidationIssue{
				Code:        domain.CodeFixturePositionRange,
				Message:     fmt.Sprintf("fixture position %.2f is outside 0-1", fixture.Position),
				ElementID:   fixture.ID,
				ElementType: domain.ElementFixture,
			})
		}

		if !fixture.Dimensions.IsPositive() || fixture.Dimensions.Depth < 0 {
			result.AddError(domain.ValidationIssue{
				Code:        domain.CodeFixtureDimensionsInvalid,
				Message:     "fixture width and height must be positive",
				ElementID:   fixture.ID,
				ElementType: domain.ElementFixture,
			})
		}
	}
}
