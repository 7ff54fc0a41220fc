package geometry

import (
	"math"

	"github.com/smj9504/sketchplan/internal/core/domain"
)

// Epsilon is the tolerance below which determinants and cross products are
// treated as zero.
const Epsilon = 1e-10

// ClosestPointOnSegment projects p onto the segment ab, clamping to the
// nearer endpoint when the projection falls outside it. A zero-length
// segment returns a.
func ClosestPointOnSegment(p, a, b domain.Point) domain.Point {
	ab := b.Sub(a)
	lengthSquared := ab.Dot(ab)
	if lengthSquared < Epsilon {
		return a
	}

	t := p.Sub(a).Dot(ab) / lengthSquared
	if t < 0 {
		t = 0
	}
	if t > 1 {
		t = 1
	}
	return a.Add(ab.Scale(t))
}

// DistanceToSegment returns the shortest distance from p to the segment ab.
func DistanceToSegment(p, a, b domain.Point) float64 {
	return p.Distance(ClosestPointOnSegment(p, a, b))
}

// orientation classifies the turn a→b→c: 0 collinear, 1 clockwise,
// 2 counter-clockwise.
func orientation(a, b, c domain.Point) int {
	cross := (b.Y-a.Y)*(c.X-b.X) - (b.X-a.X)*(c.Y-b.Y)
	if math.Abs(cross) < Epsilon {
		return 0
	}
	if cross > 0 {
		return 1
	}
	return 2
}

// onSegment reports whether the collinear point p lies within the bounding
// box of segment ab.
func onSegment(a, p, b domain.Point) bool {
	return p.X <= math.Max(a.X, b.X) && p.X >= math.Min(a.X, b.X) &&
		p.Y <= math.Max(a.Y, b.Y) && p.Y >= math.Min(a.Y, b.Y)
}

// SegmentsIntersect reports whether segments p1p2 and p3p4 share any point,
// including touching endpoints and collinear overlap.
func SegmentsIntersect(p1, p2, p3, p4 domain.Point) bool {
	o1 := orientation(p1, p2, p3)
	o2 := orientation(p1, p2, p4)
	o3 := orientation(p3, p4, p1)
	o4 := orientation(p3, p4, p2)

	if o1 != o2 && o3 != o4 {
		return true
	}

	// Collinear cases: an endpoint of one segment lies on the other.
	if o1 == 0 && onSegment(p1, p3, p2) {
		return true
	}
	if o2 == 0 && onSegment(p1, p4, p2) {
		return true
	}
	if o3 == 0 && onSegment(p3, p1, p4) {
		return true
	}
	if o4 == 0 && onSegment(p3, p2, p4) {
		return true
	}
	return false
}

// LineIntersection returns the intersection of the infinite lines through
// p1p2 and p3p4, or nil when they are parallel or either line is
// degenerate.
func LineIntersection(p1, p2, p3, p4 domain.Point) *domain.Point {
	d1 := p2.Sub(p1)
	d2 := p4.Sub(p3)

	det := d1.X*d2.Y - d1.Y*d2.X
	if math.Abs(det) < Epsilon {
		return nil
	}

	t := ((p3.X-p1.X)*d2.Y - (p3.Y-p1.Y)*d2.X) / det
	point := p1.Add(d1.Scale(t))
	return &point
}
