package geometry

import (
	"math"

	"github.com/smj9504/sketchplan/internal/core/domain"
)

// SignedArea returns the shoelace area of the polygon. In drawing space
// (Y down) a clockwise traversal yields a positive value. Fewer than three
// vertices yield zero.
func SignedArea(points []domain.Point) float64 {
	if len(points) < 3 {
		return 0
	}

	sum := 0.0
	for i := range points {
		j := (i + 1) % len(points)
		sum += points[i].X*points[j].Y - points[j].X*points[i].Y
	}
	return sum / 2
}

// Area returns the unsigned polygon area, independent of winding order.
func Area(points []domain.Point) float64 {
	return math.Abs(SignedArea(points))
}

// AreaWithHoles returns the outer area minus the hole areas, floored at
// zero so overlapping or oversized holes cannot go negative.
func AreaWithHoles(outer []domain.Point, holes [][]domain.Point) float64 {
	area := Area(outer)
	for _, hole := range holes {
		area -= Area(hole)
	}
	return math.Max(0, area)
}

// Centroid returns the area-weighted centroid. Degenerate polygons with
// near-zero area fall back to the arithmetic mean of the vertices, and an
// empty polygon yields the origin.
func Centroid(points []domain.Point) domain.Point {
	if len(points) == 0 {
		return domain.Point{}
	}

	signed := SignedArea(points)
	if math.Abs(signed) < Epsilon {
		mean := domain.Point{}
		for _, p := range points {
			mean = mean.Add(p)
		}
		return mean.Scale(1 / float64(len(points)))
	}

	var cx, cy float64
	for i := range points {
		j := (i + 1) % len(points)
		cross := points[i].X*points[j].Y - points[j].X*points[i].Y
		cx += (points[i].X + points[j].X) * cross
		cy += (points[i].Y + points[j].Y) * cross
	}
	factor := 1 / (6 * signed)
	return domain.Pt(cx*factor, cy*factor)
}

// Contains reports whether p lies inside the polygon, by ray casting.
// Behaviour is undefined for self-intersecting polygons and for points
// exactly on an edge.
func Contains(points []domain.Point, p domain.Point) bool {
	if len(points) < 3 {
		return false
	}

	inside := false
	j := len(points) - 1
	for i := 0; i < len(points); i++ {
		pi, pj := points[i], points[j]
		if (pi.Y > p.Y) != (pj.Y > p.Y) {
			crossX := pi.X + (p.Y-pi.Y)/(pj.Y-pi.Y)*(pj.X-pi.X)
			if p.X < crossX {
				inside = !inside
			}
		}
		j = i
	}
	return inside
}

// PolygonInsidePolygon reports whether inner lies entirely within outer:
// every inner vertex is contained and no edges cross.
func PolygonInsidePolygon(inner, outer []domain.Point) bool {
	if len(inner) < 3 || len(outer) < 3 {
		return false
	}

	for _, p := range inner {
		if !Contains(outer, p) {
			return false
		}
	}

	for i := range inner {
		i2 := (i + 1) % len(inner)
		for j := range outer {
			j2 := (j + 1) % len(outer)
			if SegmentsIntersect(inner[i], inner[i2], outer[j], outer[j2]) {
				return false
			}
		}
	}
	return true
}

// IsClockwise reports whether the polygon winds clockwise as seen on
// screen (Y down).
func IsClockwise(points []domain.Point) bool {
	return SignedArea(points) > 0
}

// Reverse returns a copy of the polygon with the winding order flipped.
func Reverse(points []domain.Point) []domain.Point {
	reversed := make([]domain.Point, len(points))
	for i, p := range points {
		reversed[len(points)-1-i] = p
	}
	return reversed
}

// Simplify returns the polyline with duplicate and near-collinear interior
// vertices removed. The cross-product tolerance defaults to Epsilon when
// non-positive. Endpoints are always kept.
func Simplify(points []domain.Point, tolerance float64) []domain.Point {
	if tolerance <= 0 {
		tolerance = Epsilon
	}
	if len(points) < 3 {
		return append([]domain.Point(nil), points...)
	}

	simplified := []domain.Point{points[0]}
	for i := 1; i < len(points)-1; i++ {
		prev := simplified[len(simplified)-1]
		cur := points[i]
		next := points[i+1]

		if cur.Sub(prev).Length() < Epsilon {
			continue
		}
		cross := cur.Sub(prev).Cross(next.Sub(prev))
		if math.Abs(cross) <= tolerance {
			continue
		}
		simplified = append(simplified, cur)
	}
	return append(simplified, points[len(points)-1])
}

// Perimeter sums the consecutive segment lengths of the polyline. Pass a
// closed ring (first point repeated at the end) to measure a full polygon
// perimeter.
func Perimeter(points []domain.Point) float64 {
	total := 0.0
	for i := 1; i < len(points); i++ {
		total += points[i-1].Distance(points[i])
	}
	return total
}

// BoundingBox returns the axis-aligned bounds of the points; empty input
// yields zero bounds.
func BoundingBox(points []domain.Point) domain.Bounds {
	if len(points) == 0 {
		return domain.Bounds{}
	}

	min := domain.Pt(math.Inf(1), math.Inf(1))
	max := domain.Pt(math.Inf(-1), math.Inf(-1))
	for _, p := range points {
		min.X = math.Min(min.X, p.X)
		min.Y = math.Min(min.Y, p.Y)
		max.X = math.Max(max.X, p.X)
		max.Y = math.Max(max.Y, p.Y)
	}
	return domain.Bounds{Min: min, Max: max}
}
