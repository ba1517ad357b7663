// SPDX-License-Identifier: MIT

package geom

import "math"

// effective returns the ring with consecutive near-duplicate vertices
// (closer than Eps, including the implicit closing pair) collapsed.
// Authoring tools love to emit doubled points; every predicate works on
// the cleaned ring so they never distort a result.
func (pg Polygon) effective() []Point {
	if len(pg) == 0 {
		return nil
	}
	out := make([]Point, 0, len(pg))
	for _, v := range pg {
		if len(out) > 0 && Dist(out[len(out)-1], v) < Eps {
			continue
		}
		out = append(out, v)
	}
	for len(out) > 1 && Dist(out[0], out[len(out)-1]) < Eps {
		out = out[:len(out)-1]
	}
	return out
}

// Degenerate reports whether the polygon cannot bound a real space:
// fewer than 3 effective vertices, or an area below Eps square meters.
func (pg Polygon) Degenerate() bool {
	return len(pg.effective()) < 3 || pg.Area() < Eps
}

// SignedArea returns the shoelace area of the ring: positive for
// counter-clockwise orientation, negative for clockwise.
func (pg Polygon) SignedArea() float64 {
	eff := pg.effective()
	if len(eff) < 3 {
		return 0
	}
	var sum float64
	for i := range eff {
		j := (i + 1) % len(eff)
		sum += eff[i].X*eff[j].Y - eff[j].X*eff[i].Y
	}
	return sum / 2
}

// Area returns the absolute enclosed area in square meters.
// Degenerate rings report 0.
func (pg Polygon) Area() float64 {
	return math.Abs(pg.SignedArea())
}

// Centroid returns the area-weighted centroid. A degenerate ring falls
// back to the vertex mean, which keeps the result usable as a label or
// graph anchor even for broken input.
func (pg Polygon) Centroid() Point {
	eff := pg.effective()
	n := len(eff)
	if n == 0 {
		return Point{}
	}
	a := pg.SignedArea()
	if n < 3 || math.Abs(a) < Eps {
		var sx, sy float64
		for _, v := range eff {
			sx += v.X
			sy += v.Y
		}
		return Point{X: sx / float64(n), Y: sy / float64(n)}
	}
	var cx, cy float64
	for i := range eff {
		j := (i + 1) % n
		cr := eff[i].X*eff[j].Y - eff[j].X*eff[i].Y
		cx += (eff[i].X + eff[j].X) * cr
		cy += (eff[i].Y + eff[j].Y) * cr
	}
	return Point{X: cx / (6 * a), Y: cy / (6 * a)}
}

// Edges returns the boundary segments of the cleaned ring, in ring order.
func (pg Polygon) Edges() []Segment {
	eff := pg.effective()
	if len(eff) < 2 {
		return nil
	}
	out := make([]Segment, 0, len(eff))
	for i := range eff {
		out = append(out, Segment{A: eff[i], B: eff[(i+1)%len(eff)]})
	}
	return out
}

// pointSegDist returns the distance from p to the closest point of s.
func pointSegDist(p Point, s Segment) float64 {
	dx, dy := s.B.X-s.A.X, s.B.Y-s.A.Y
	l2 := dx*dx + dy*dy
	if l2 == 0 {
		return Dist(p, s.A)
	}
	t := ((p.X-s.A.X)*dx + (p.Y-s.A.Y)*dy) / l2
	t = math.Max(0, math.Min(1, t))
	return Dist(p, s.At(t))
}

// OnBoundary reports whether p lies within Eps of the polygon outline.
func (pg Polygon) OnBoundary(p Point) bool {
	for _, e := range pg.Edges() {
		if pointSegDist(p, e) <= Eps {
			return true
		}
	}
	return false
}

// Contains reports whether p is inside the polygon. Points within Eps of
// the boundary count as inside. Degenerate polygons contain nothing.
//
// Implementation: even-odd ray casting over the cleaned ring, with an
// explicit boundary pre-check so the tolerance is symmetric on both sides
// of every edge.
func (pg Polygon) Contains(p Point) bool {
	eff := pg.effective()
	if len(eff) < 3 {
		return false
	}
	if pg.OnBoundary(p) {
		return true
	}
	inside := false
	j := len(eff) - 1
	for i := 0; i < len(eff); i++ {
		a, b := eff[i], eff[j]
		if (a.Y > p.Y) != (b.Y > p.Y) {
			xCross := a.X + (p.Y-a.Y)/(b.Y-a.Y)*(b.X-a.X)
			if p.X < xCross {
				inside = !inside
			}
		}
		j = i
	}
	return inside
}

// strictInside reports containment excluding the Eps boundary band.
// Overlap predicates use it to distinguish "shares interior" from
// "merely touches".
func (pg Polygon) strictInside(p Point) bool {
	return pg.Contains(p) && !pg.OnBoundary(p)
}

// SegmentOnBoundary reports whether the whole of s lies within Eps of the
// polygon outline. This is the adjacency test the connectivity builder
// uses: a door's span must sit on the boundary ring of both spaces it
// joins. Both endpoints and the midpoint are probed, which is exact for
// the straight-edged rings of a floor plan.
func (pg Polygon) SegmentOnBoundary(s Segment) bool {
	if s.Degenerate() || len(pg.effective()) < 3 {
		return false
	}
	return pg.OnBoundary(s.A) && pg.OnBoundary(s.Mid()) && pg.OnBoundary(s.B)
}

// BoundingRect returns the axis-aligned extent of the ring as (width,
// height). The aspect-ratio and corridor-width metrics are defined on
// this box.
func (pg Polygon) BoundingRect() (w, h float64) {
	if len(pg) == 0 {
		return 0, 0
	}
	minX, maxX := pg[0].X, pg[0].X
	minY, maxY := pg[0].Y, pg[0].Y
	for _, v := range pg[1:] {
		minX = math.Min(minX, v.X)
		maxX = math.Max(maxX, v.X)
		minY = math.Min(minY, v.Y)
		maxY = math.Max(maxY, v.Y)
	}
	return maxX - minX, maxY - minY
}

// properCross reports a transversal crossing: both segments strictly
// change sides across each other. Collinear contact and endpoint touches
// are excluded, so walls that bound a footprint do not read as piercing it.
func properCross(s, t Segment) bool {
	o1 := Orient(s.A, s.B, t.A)
	o2 := Orient(s.A, s.B, t.B)
	o3 := Orient(t.A, t.B, s.A)
	o4 := Orient(t.A, t.B, s.B)
	return o1 != o2 && o3 != o4 && o1 != 0 && o2 != 0 && o3 != 0 && o4 != 0
}

// PolyOverlap reports whether two polygons share interior area. Touching
// along edges or at corners is not overlap. Either operand degenerate
// yields false; the owning entity gets flagged by the catalog instead.
func PolyOverlap(p, q Polygon) bool {
	if p.Degenerate() || q.Degenerate() {
		return false
	}
	// 1) Any transversal edge crossing means the interiors meet.
	for _, e := range p.Edges() {
		for _, f := range q.Edges() {
			if properCross(e, f) {
				return true
			}
		}
	}
	// 2) No crossings: one ring may still sit fully inside the other.
	if q.strictInside(p.Centroid()) || p.strictInside(q.Centroid()) {
		return true
	}
	for _, v := range p.effective() {
		if q.strictInside(v) {
			return true
		}
	}
	for _, v := range q.effective() {
		if p.strictInside(v) {
			return true
		}
	}
	return false
}

// SegPolyIntersect reports whether s pierces the interior of pg. A
// segment lying on the outline (an enclosing wall) or touching it at an
// endpoint does not pierce; one that passes through the enclosed area
// does.
func SegPolyIntersect(s Segment, pg Polygon) bool {
	if s.Degenerate() || pg.Degenerate() {
		return false
	}
	if pg.strictInside(s.A) || pg.strictInside(s.B) || pg.strictInside(s.Mid()) {
		return true
	}
	for _, e := range pg.Edges() {
		if properCross(s, e) {
			return true
		}
	}
	return false
}
