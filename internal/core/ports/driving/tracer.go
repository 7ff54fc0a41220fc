package driving

import (
	"github.com/smj9504/sketchplan/internal/core/domain"
)

// TraceStatus reports how a boundary trace ended.
type TraceStatus string

const (
	// TraceClosed means the walk returned to its starting point.
	TraceClosed TraceStatus = "closed"

	// TracePartial means the walk ran out of connectable walls before
	// closing; the points cover only part of the boundary.
	TracePartial TraceStatus = "partial"

	// TraceNoWalls means there was nothing to trace.
	TraceNoWalls TraceStatus = "no_walls"
)

// TraceResult is the outcome of a boundary trace. Points duplicates the
// first point at the end when Status is TraceClosed.
type TraceResult struct {
	// Status reports how the trace ended.
	Status TraceStatus

	// Points is the traced polyline in walk order.
	Points []domain.Point

	// WallIDs lists the walls consumed by the walk, in order.
	WallIDs []string
}

// WallSeparation divides a document's walls into the loop enclosing the
// largest area and everything else.
type WallSeparation struct {
	// Outer holds the walls of the largest-area closed loop.
	Outer []domain.Wall

	// Interior holds all remaining walls.
	Interior []domain.Wall

	// OuterBoundary is the traced polygon of the outer loop.
	OuterBoundary []domain.Point
}

// BoundaryLayout is an outer polygon with the closed interior loops that
// punch holes in it.
type BoundaryLayout struct {
	// Outer is the enclosing polygon.
	Outer []domain.Point

	// Holes holds the closed interior polygons.
	Holes [][]domain.Point
}

// BoundaryTracer discovers how walls connect and walks them into room
// boundaries. Implementations choose the outer-loop heuristic; the default
// takes the largest-area loop.
type BoundaryTracer interface {
	// BuildConnectivity returns the adjacency map of wall IDs whose
	// endpoints lie within the connection tolerance. The map is symmetric.
	BuildConnectivity(walls []domain.Wall) map[string][]string

	// TraceBoundary walks connected walls from the first wall's start and
	// reports how far it got.
	TraceBoundary(walls []domain.Wall) TraceResult

	// CalculateRoomBoundary is the tolerant variant of TraceBoundary: it
	// returns whatever points were reached, with no signal when the loop
	// failed to close.
	CalculateRoomBoundary(walls []domain.Wall) []domain.Point

	// SeparateWalls splits walls into the largest-area closed loop and the
	// remaining interior walls.
	SeparateWalls(walls []domain.Wall) WallSeparation

	// BoundaryWithHoles traces the outer boundary and the closed interior
	// loops. Interior walls that do not close are dropped.
	BoundaryWithHoles(walls []domain.Wall) BoundaryLayout

	// DetectRooms proposes rooms for closed loops no authored room claims.
	DetectRooms(document *domain.SketchDocument) []domain.SketchRoom
}
