package services

import (
	"github.com/google/uuid"

	"github.com/smj9504/sketchplan/internal/core/domain"
	"github.com/smj9504/sketchplan/internal/core/ports/driving"
	"github.com/smj9504/sketchplan/internal/geometry"
)

// Ensure TopologyService implements the interface.
var _ driving.BoundaryTracer = (*TopologyService)(nil)

// TopologyService discovers wall connectivity and walks connected walls
// into room boundaries. The outer loop is chosen by enclosed area: the
// largest-area loop wins. That heuristic misreads plans whose inner rooms
// out-measure the shell, which is why the tracer sits behind an interface.
type TopologyService struct {
	tolerance float64
}

// NewTopologyService creates a new topology service. A non-positive
// tolerance falls back to the default connection tolerance.
func NewTopologyService(tolerance float64) *TopologyService {
	if tolerance <= 0 {
		tolerance = domain.DefaultConnectionTolerance
	}
	return &TopologyService{tolerance: tolerance}
}

// Tolerance returns the endpoint snap distance in drawing units.
func (s *TopologyService) Tolerance() float64 {
	return s.tolerance
}

// connected reports whether two walls share an endpoint within tolerance.
func (s *TopologyService) connected(a, b domain.Wall) bool {
	return a.Start.Distance(b.Start) <= s.tolerance ||
		a.Start.Distance(b.End) <= s.tolerance ||
		a.End.Distance(b.Start) <= s.tolerance ||
		a.End.Distance(b.End) <= s.tolerance
}

// BuildConnectivity returns the symmetric adjacency map of wall IDs whose
// endpoints lie within the connection tolerance. Every wall appears as a
// key, isolated walls with an empty neighbour list.
func (s *TopologyService) BuildConnectivity(walls []domain.Wall) map[string][]string {
	adjacency := make(map[string][]string, len(walls))
	for _, wall := range walls {
		adjacency[wall.ID] = []string{}
	}

	for i := 0; i < len(walls); i++ {
		for j := i + 1; j < len(walls); j++ {
			if s.connected(walls[i], walls[j]) {
				adjacency[walls[i].ID] = append(adjacency[walls[i].ID], walls[j].ID)
				adjacency[walls[j].ID] = append(adjacency[walls[j].ID], walls[i].ID)
			}
		}
	}
	return adjacency
}

// continuation finds an unused wall with an endpoint within tolerance of
// cursor and returns its index and far endpoint.
func (s *TopologyService) continuation(walls []domain.Wall, used []bool, cursor domain.Point) (int, domain.Point, bool) {
	for i, wall := range walls {
		if used[i] {
			continue
		}
		if wall.Start.Distance(cursor) <= s.tolerance {
			return i, wall.End, true
		}
		if wall.End.Distance(cursor) <= s.tolerance {
			return i, wall.Start, true
		}
	}
	return 0, domain.Point{}, false
}

// TraceBoundary walks connected walls greedily from the first wall's start.
// On closure the first point is appended again, so closed results form a
// ring. Walls that cannot be reached are left unconsumed.
func (s *TopologyService) TraceBoundary(walls []domain.Wall) driving.TraceResult {
	if len(walls) == 0 {
		return driving.TraceResult{Status: driving.TraceNoWalls}
	}

	used := make([]bool, len(walls))
	used[0] = true

	points := []domain.Point{walls[0].Start, walls[0].End}
	wallIDs := []string{walls[0].ID}
	cursor := walls[0].End

	for {
		next, far, ok := s.continuation(walls, used, cursor)
		if !ok {
			return driving.TraceResult{
				Status:  driving.TracePartial,
				Points:  points,
				WallIDs: wallIDs,
			}
		}

		used[next] = true
		wallIDs = append(wallIDs, walls[next].ID)

		// Closing the ring repeats the exact first point, not the snapped
		// far endpoint.
		if len(points) >= domain.MinRoomWalls && far.Distance(points[0]) <= s.tolerance {
			points = append(points, points[0])
			return driving.TraceResult{
				Status:  driving.TraceClosed,
				Points:  points,
				WallIDs: wallIDs,
			}
		}

		points = append(points, far)
		cursor = far
	}
}

// CalculateRoomBoundary returns whatever points TraceBoundary reached,
// with no signal when the loop failed to close. Kept for hosts that treat
// partial boundaries as best-effort geometry.
func (s *TopologyService) CalculateRoomBoundary(walls []domain.Wall) []domain.Point {
	return s.TraceBoundary(walls).Points
}

// discoverLoops greedily finds closed loops: each unclaimed wall seeds a
// trace over the remaining walls, and only closed traces consume them.
func (s *TopologyService) discoverLoops(walls []domain.Wall) []driving.TraceResult {
	var loops []driving.TraceResult
	claimed := make(map[string]bool, len(walls))

	for _, seed := range walls {
		if claimed[seed.ID] {
			continue
		}

		// Pool the seed first so the walk starts there.
		pool := []domain.Wall{seed}
		for _, wall := range walls {
			if wall.ID != seed.ID && !claimed[wall.ID] {
				pool = append(pool, wall)
			}
		}

		result := s.TraceBoundary(pool)
		if result.Status != driving.TraceClosed {
			continue
		}
		for _, id := range result.WallIDs {
			claimed[id] = true
		}
		loops = append(loops, result)
	}
	return loops
}

// SeparateWalls splits walls into the closed loop enclosing the largest
// area and everything else. With no closed loop at all, every wall is
// interior.
func (s *TopologyService) SeparateWalls(walls []domain.Wall) driving.WallSeparation {
	loops := s.discoverLoops(walls)
	if len(loops) == 0 {
		return driving.WallSeparation{
			Interior: append([]domain.Wall(nil), walls...),
		}
	}

	outerIdx := 0
	outerArea := geometry.Area(loops[0].Points)
	for i := 1; i < len(loops); i++ {
		if area := geometry.Area(loops[i].Points); area > outerArea {
			outerIdx, outerArea = i, area
		}
	}

	outerWallIDs := make(map[string]bool, len(loops[outerIdx].WallIDs))
	for _, id := range loops[outerIdx].WallIDs {
		outerWallIDs[id] = true
	}

	separation := driving.WallSeparation{
		OuterBoundary: loops[outerIdx].Points,
	}
	for _, wall := range walls {
		if outerWallIDs[wall.ID] {
			separation.Outer = append(separation.Outer, wall)
		} else {
			separation.Interior = append(separation.Interior, wall)
		}
	}
	return separation
}

// BoundaryWithHoles traces the outer boundary and treats closed interior
// loops inside it as holes. Interior walls that do not close are dropped.
// With no closed loop anywhere, the outer boundary falls back to a trace
// over all walls, holes empty.
func (s *TopologyService) BoundaryWithHoles(walls []domain.Wall) driving.BoundaryLayout {
	separation := s.SeparateWalls(walls)
	if len(separation.OuterBoundary) == 0 {
		return driving.BoundaryLayout{
			Outer: s.CalculateRoomBoundary(walls),
		}
	}

	layout := driving.BoundaryLayout{Outer: separation.OuterBoundary}
	for _, loop := range s.discoverLoops(separation.Interior) {
		if geometry.PolygonInsidePolygon(loop.Points, layout.Outer) {
			layout.Holes = append(layout.Holes, loop.Points)
		}
	}
	return layout
}

// DetectRooms proposes a room for every closed loop no authored room
// already claims a wall of. Proposed rooms get fresh IDs, names from the
// suggestion table and the traced boundary.
func (s *TopologyService) DetectRooms(document *domain.SketchDocument) []domain.SketchRoom {
	if document == nil || len(document.Walls) == 0 {
		return nil
	}

	claimed := make(map[string]bool)
	for _, room := range document.Rooms {
		for _, id := range room.WallIDs {
			claimed[id] = true
		}
	}

	names := domain.SuggestedRoomNames()
	var detected []domain.SketchRoom
	for _, loop := range s.discoverLoops(document.Walls) {
		loopClaimed := false
		for _, id := range loop.WallIDs {
			if claimed[id] {
				loopClaimed = true
				break
			}
		}
		if loopClaimed {
			continue
		}

		detected = append(detected, domain.SketchRoom{
			ID:       uuid.NewString(),
			Name:     names[len(detected)%len(names)],
			WallIDs:  append([]string(nil), loop.WallIDs...),
			Boundary: append([]domain.Point(nil), loop.Points...),
		})
	}
	return detected
}
