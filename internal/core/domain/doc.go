// Package domain defines the core business entities for sketchplan.
//
// This package is part of the hexagonal architecture's innermost layer.
// It has NO external dependencies and defines the fundamental types:
//
//   - Point: A 2D coordinate in drawing space
//   - Wall: A user-drawn wall segment
//   - WallFixture: A door, window, or other element on a wall or in a room
//   - SketchRoom: A room bounded by walls, with derived boundary and areas
//   - SketchDocument: The floor-plan snapshot the host hands to the engine
//   - Measurement: A feet-and-fractional-inches value with a canonical
//     inch scalar
//   - AreaCalculation, MaterialCalculation, CostEstimation: values the
//     engine derives for the host to merge back
//
// # Architectural Position
//
// Domain is at the centre of the hexagon. It may only import
// the Go standard library. All other packages depend on domain,
// never the reverse.
//
// # Import Rules
//
//   - Can Import: Standard library only
//   - Cannot Import: Any internal/ package, any external dependency
package domain
