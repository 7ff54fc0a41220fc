// Package geometry provides the segment and polygon primitives the
// measurement services are built on: closest-point projection,
// intersection tests, shoelace areas, centroids and containment.
//
// All functions are total: degenerate input (empty polygons, zero-length
// segments, fewer than three vertices) yields zero values, never panics.
// Coordinates are drawing-space values with Y increasing downward.
package geometry
