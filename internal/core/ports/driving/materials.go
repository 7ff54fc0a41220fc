package driving

import (
	"context"

	"github.com/smj9504/sketchplan/internal/core/domain"
)

// RoomMaterials pairs a room with its material take-off.
type RoomMaterials struct {
	// RoomID identifies the room.
	RoomID string `json:"roomId"`

	// Name is the room's display name.
	Name string `json:"name"`

	// Materials is the room's take-off.
	Materials domain.MaterialCalculation `json:"materials"`
}

// DocumentMaterials is a take-off for every valid room plus totals.
type DocumentMaterials struct {
	// Rooms holds one take-off per valid room, in document order.
	Rooms []RoomMaterials `json:"rooms"`

	// Totals folds the room take-offs.
	Totals domain.MaterialCalculation `json:"totals"`
}

// MaterialEstimator turns measured areas into material quantities and
// priced estimates. Estimation consults the price book, so those methods
// take a context.
type MaterialEstimator interface {
	// RoomMaterials computes the take-off for one room.
	// Returns domain.ErrNotFound when the room does not exist and
	// domain.ErrNoValidArea when it has no measurable area.
	RoomMaterials(document *domain.SketchDocument, roomID string, opts domain.MaterialOptions) (*domain.MaterialCalculation, error)

	// DocumentMaterials computes take-offs for every valid room.
	DocumentMaterials(document *domain.SketchDocument, opts domain.MaterialOptions) (*DocumentMaterials, error)

	// EstimateDocument prices the document take-off using the price book.
	// Returns domain.ErrNoValidArea when no room has a measurable area.
	EstimateDocument(ctx context.Context, document *domain.SketchDocument, opts domain.EstimateOptions) (*domain.DocumentEstimate, error)
}
