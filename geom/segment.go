// SPDX-License-Identifier: MIT

package geom

import "math"

// IntersectKind classifies the result of SegIntersect.
type IntersectKind int

const (
	// IntersectNone: the segments share no point.
	IntersectNone IntersectKind = iota

	// IntersectPoint: the segments share exactly one point (a proper
	// crossing, an endpoint touch, or a collinear touch within Eps).
	IntersectPoint

	// IntersectOverlap: the segments are collinear and share an interval
	// longer than Eps.
	IntersectOverlap

	// IntersectDegenerate: at least one operand is shorter than Eps; the
	// question is not well posed and callers should flag the source entity
	// instead of trusting the geometry.
	IntersectDegenerate
)

// String returns the lowercase name of the kind.
func (k IntersectKind) String() string {
	switch k {
	case IntersectNone:
		return "none"
	case IntersectPoint:
		return "point"
	case IntersectOverlap:
		return "overlap"
	case IntersectDegenerate:
		return "degenerate"
	default:
		return "unknown"
	}
}

// cross returns the z component of (B-A) x (c-A).
func (s Segment) cross(c Point) float64 {
	return (s.B.X-s.A.X)*(c.Y-s.A.Y) - (s.B.Y-s.A.Y)*(c.X-s.A.X)
}

// Orient reports the orientation of c relative to the directed line a->b:
// +1 for counter-clockwise (left), -1 for clockwise (right), 0 for
// collinear. Collinearity is Eps-tolerant in the lateral sense: c counts
// as collinear when its perpendicular distance to the line is below Eps,
// regardless of how long a->b is. A base shorter than Eps always yields 0.
func Orient(a, b, c Point) int {
	base := Segment{A: a, B: b}
	ln := base.Len()
	if ln < Eps {
		return 0
	}
	// cross = |a->b| * lateral distance of c, so the Eps comparison below
	// is exactly "c lies within 1 mm of the carrier line".
	cr := base.cross(c)
	switch {
	case cr > Eps*ln:
		return 1
	case cr < -Eps*ln:
		return -1
	default:
		return 0
	}
}

// onSegment reports whether collinear point p lies within the Eps-expanded
// bounding box of s. Callers must have established collinearity first.
func onSegment(s Segment, p Point) bool {
	return p.X >= math.Min(s.A.X, s.B.X)-Eps && p.X <= math.Max(s.A.X, s.B.X)+Eps &&
		p.Y >= math.Min(s.A.Y, s.B.Y)-Eps && p.Y <= math.Max(s.A.Y, s.B.Y)+Eps
}

// SegIntersect computes the intersection of two segments.
//
// Returns:
//   - (crossing point, IntersectPoint) for a single shared point;
//   - (overlap midpoint, IntersectOverlap) for a collinear shared interval
//     longer than Eps;
//   - (zero Point, IntersectNone) when disjoint;
//   - (zero Point, IntersectDegenerate) when either operand is degenerate.
//
// The orientation tests are Eps-tolerant, so walls that touch end to end
// within manufacturing tolerance register as IntersectPoint, not as a
// near-miss.
func SegIntersect(s, t Segment) (Point, IntersectKind) {
	if s.Degenerate() || t.Degenerate() {
		return Point{}, IntersectDegenerate
	}

	o1 := Orient(s.A, s.B, t.A)
	o2 := Orient(s.A, s.B, t.B)
	o3 := Orient(t.A, t.B, s.A)
	o4 := Orient(t.A, t.B, s.B)

	// 1) Proper crossing: strict orientation flips on both sides.
	if o1 != o2 && o3 != o4 && o1 != 0 && o2 != 0 && o3 != 0 && o4 != 0 {
		return lineCross(s, t), IntersectPoint
	}

	// 2) Collinear segments: compare intervals on the dominant axis.
	if o1 == 0 && o2 == 0 && o3 == 0 && o4 == 0 {
		return collinearIntersect(s, t)
	}

	// 3) Endpoint touches: one endpoint lies on the other segment.
	switch {
	case o1 == 0 && onSegment(s, t.A):
		return t.A, IntersectPoint
	case o2 == 0 && onSegment(s, t.B):
		return t.B, IntersectPoint
	case o3 == 0 && onSegment(t, s.A):
		return s.A, IntersectPoint
	case o4 == 0 && onSegment(t, s.B):
		return s.B, IntersectPoint
	}

	return Point{}, IntersectNone
}

// lineCross solves the two carrier lines for their crossing point.
// Callers guarantee the segments properly cross, so the denominator is
// bounded away from zero.
func lineCross(s, t Segment) Point {
	d1x, d1y := s.B.X-s.A.X, s.B.Y-s.A.Y
	d2x, d2y := t.B.X-t.A.X, t.B.Y-t.A.Y
	den := d1x*d2y - d1y*d2x
	u := ((t.A.X-s.A.X)*d2y - (t.A.Y-s.A.Y)*d2x) / den
	return Point{X: s.A.X + u*d1x, Y: s.A.Y + u*d1y}
}

// collinearIntersect resolves two collinear segments into a shared point,
// a shared interval, or nothing, by projecting onto the dominant axis of s.
func collinearIntersect(s, t Segment) (Point, IntersectKind) {
	// Project every endpoint onto the longer axis of s to order them 1D.
	proj := func(p Point) float64 {
		if math.Abs(s.B.X-s.A.X) >= math.Abs(s.B.Y-s.A.Y) {
			return p.X
		}
		return p.Y
	}
	sLo, sHi := proj(s.A), proj(s.B)
	if sLo > sHi {
		sLo, sHi = sHi, sLo
	}
	tLo, tHi := proj(t.A), proj(t.B)
	if tLo > tHi {
		tLo, tHi = tHi, tLo
	}

	lo := math.Max(sLo, tLo)
	hi := math.Min(sHi, tHi)
	switch {
	case hi-lo > Eps:
		// Shared interval: return its midpoint for reporting.
		mid := (lo + hi) / 2
		frac := 0.5
		if sHi != sLo {
			frac = (mid - proj(s.A)) / (proj(s.B) - proj(s.A))
		}
		return s.At(frac), IntersectOverlap
	case hi-lo >= -Eps:
		// Touching end to end within tolerance.
		frac := 0.0
		if sHi != sLo {
			frac = (lo - proj(s.A)) / (proj(s.B) - proj(s.A))
		}
		return s.At(frac), IntersectPoint
	default:
		return Point{}, IntersectNone
	}
}
