// SPDX-License-Identifier: MIT

package rules

import (
	"fmt"

	"github.com/katalvlaran/lvlplan/geom"
	"github.com/katalvlaran/lvlplan/model"
)

// checkWallOverlap flags wall pairs on one floor whose centerlines cross
// or overlap. Walls meeting end to end form a junction, not a defect, so
// pairs sharing an endpoint within geom.Eps are exempt. A wall too short
// to orient cannot be paired at all and is reported as degenerate
// instead, at half confidence.
func checkWallOverlap(in *Input) []Issue {
	var out []Issue
	walls := in.Building.Walls

	// 1) Degenerate walls first; they are excluded from pairing.
	degenerate := make(map[int]bool)
	for i := range walls {
		if !walls[i].Segment().Degenerate() {
			continue
		}
		degenerate[i] = true
		out = append(out, Issue{
			Severity: SeverityError,
			Code:     CodeDegenerateWall,
			Message: fmt.Sprintf("wall %q on floor %d is shorter than the geometric tolerance",
				walls[i].ID, walls[i].Floor),
			Entities:   []string{walls[i].ID},
			Actual:     walls[i].Len(),
			Limit:      geom.Eps,
			Confidence: 0.5,
		})
	}

	// 2) Pairwise intersection per floor, authoring order.
	for i := range walls {
		if degenerate[i] {
			continue
		}
		for j := i + 1; j < len(walls); j++ {
			if degenerate[j] || walls[i].Floor != walls[j].Floor {
				continue
			}
			if wallsMeet(walls[i], walls[j]) {
				continue
			}
			if _, kind := geom.SegIntersect(walls[i].Segment(), walls[j].Segment()); kind != geom.IntersectNone {
				out = append(out, Issue{
					Severity: SeverityError,
					Code:     CodeWallOverlap,
					Message: fmt.Sprintf("walls %q and %q intersect on floor %d",
						walls[i].ID, walls[j].ID, walls[i].Floor),
					Entities:   []string{walls[i].ID, walls[j].ID},
					Confidence: 1,
				})
			}
		}
	}
	return out
}

// wallsMeet reports whether two walls share an endpoint within geom.Eps.
func wallsMeet(a, b model.Wall) bool {
	return geom.Dist(a.A, b.A) < geom.Eps || geom.Dist(a.A, b.B) < geom.Eps ||
		geom.Dist(a.B, b.A) < geom.Eps || geom.Dist(a.B, b.B) < geom.Eps
}

// checkWallCrossesShaft flags walls piercing a stair or elevator
// footprint on a floor the shaft serves. Walls lying on the footprint
// outline are the shaft's own enclosure and do not pierce.
func checkWallCrossesShaft(in *Input) []Issue {
	var out []Issue
	for i := range in.Building.Walls {
		w := &in.Building.Walls[i]
		if w.Segment().Degenerate() {
			continue
		}
		for j := range in.Building.Shafts {
			s := &in.Building.Shafts[j]
			if !s.Spans(w.Floor) {
				continue
			}
			if geom.SegPolyIntersect(w.Segment(), s.Footprint) {
				out = append(out, Issue{
					Severity: SeverityError,
					Code:     CodeWallCrossesShaft,
					Message: fmt.Sprintf("wall %q crosses the %s shaft %q on floor %d",
						w.ID, s.Kind, s.ID, w.Floor),
					Entities:   []string{w.ID, s.ID},
					Confidence: 1,
				})
			}
		}
	}
	return out
}

// checkOpeningOutsideWall flags openings whose interval leaves the host
// wall span [0, length], with geom.Eps slack. Openings on a degenerate
// wall are skipped: the interval question is not well posed there and
// the wall itself is already reported.
func checkOpeningOutsideWall(in *Input) []Issue {
	var out []Issue
	for i := range in.Building.Walls {
		w := &in.Building.Walls[i]
		ln := w.Len()
		if ln < geom.Eps {
			continue
		}
		for j := range w.Openings {
			o := &w.Openings[j]
			switch {
			case o.Offset < -geom.Eps:
				out = append(out, Issue{
					Severity: SeverityError,
					Code:     CodeOpeningOutsideWall,
					Message: fmt.Sprintf("%s %q starts %.2f m before wall %q",
						o.Kind, o.ID, -o.Offset, w.ID),
					Entities:   []string{o.ID, w.ID},
					Actual:     o.Offset,
					Limit:      0,
					Confidence: 1,
				})
			case o.Offset+o.Width > ln+geom.Eps:
				out = append(out, Issue{
					Severity: SeverityError,
					Code:     CodeOpeningOutsideWall,
					Message: fmt.Sprintf("%s %q ends at %.2f m, past the %.2f m span of wall %q",
						o.Kind, o.ID, o.Offset+o.Width, ln, w.ID),
					Entities:   []string{o.ID, w.ID},
					Actual:     o.Offset + o.Width,
					Limit:      ln,
					Confidence: 1,
				})
			}
		}
	}
	return out
}

// checkOverlappingOpenings flags pairs of openings on one wall whose
// intervals overlap by more than OpeningOverlapTol. Doors and windows
// compete for the same wall span, so all pairs are checked regardless
// of kind.
func checkOverlappingOpenings(in *Input) []Issue {
	var out []Issue
	for i := range in.Building.Walls {
		w := &in.Building.Walls[i]
		if w.Segment().Degenerate() {
			continue
		}
		for a := range w.Openings {
			for b := a + 1; b < len(w.Openings); b++ {
				oa, ob := &w.Openings[a], &w.Openings[b]
				lo := oa.Offset
				if ob.Offset > lo {
					lo = ob.Offset
				}
				hi := oa.Offset + oa.Width
				if end := ob.Offset + ob.Width; end < hi {
					hi = end
				}
				if hi-lo <= OpeningOverlapTol {
					continue
				}
				out = append(out, Issue{
					Severity: SeverityError,
					Code:     CodeOverlappingOpenings,
					Message: fmt.Sprintf("%s %q and %s %q overlap by %.2f m on wall %q",
						oa.Kind, oa.ID, ob.Kind, ob.ID, hi-lo, w.ID),
					Entities:   []string{oa.ID, ob.ID, w.ID},
					Actual:     hi - lo,
					Limit:      OpeningOverlapTol,
					Confidence: 1,
				})
			}
		}
	}
	return out
}

// checkWindowIntoShaft flags windows whose span lies on a shaft
// footprint the host floor shares: a window opening into a staircase or
// elevator shaft instead of open air.
func checkWindowIntoShaft(in *Input) []Issue {
	var out []Issue
	for i := range in.Building.Walls {
		w := &in.Building.Walls[i]
		for j := range w.Openings {
			o := &w.Openings[j]
			if o.Kind != model.OpeningWindow {
				continue
			}
			span := w.OpeningSpan(*o)
			if span.Degenerate() {
				continue
			}
			for k := range in.Building.Shafts {
				s := &in.Building.Shafts[k]
				if !s.Spans(w.Floor) {
					continue
				}
				if s.Footprint.SegmentOnBoundary(span) {
					out = append(out, Issue{
						Severity: SeverityError,
						Code:     CodeWindowIntoShaft,
						Message: fmt.Sprintf("window %q on wall %q opens into the %s shaft %q",
							o.ID, w.ID, s.Kind, s.ID),
						Entities:   []string{o.ID, s.ID},
						Confidence: 1,
					})
				}
			}
		}
	}
	return out
}

// checkBearingSupport flags load-bearing walls with nothing to stand on:
// every bearing wall above the ground floor must sit over a bearing wall
// on the storey below, endpoints matched within BearingAlignTol in
// either orientation. Floors are contiguous from 0, so floor 0 is the
// ground and always exempt.
func checkBearingSupport(in *Input) []Issue {
	var out []Issue
	for i := range in.Building.Walls {
		w := &in.Building.Walls[i]
		if w.Kind != model.WallBearing || w.Floor == 0 {
			continue
		}
		if hasBearingBelow(in, w) {
			continue
		}
		out = append(out, Issue{
			Severity: SeverityError,
			Code:     CodeUnsupportedBearing,
			Message: fmt.Sprintf("load-bearing wall %q on floor %d has no aligned load-bearing wall on floor %d",
				w.ID, w.Floor, w.Floor-1),
			Entities:   []string{w.ID},
			Limit:      BearingAlignTol,
			Confidence: 1,
		})
	}
	return out
}

// hasBearingBelow reports whether a bearing wall one floor down aligns
// with w endpoint to endpoint, in either direction.
func hasBearingBelow(in *Input, w *model.Wall) bool {
	for _, below := range in.Index.WallsOn(w.Floor - 1) {
		if below.Kind != model.WallBearing {
			continue
		}
		straight := geom.Dist(w.A, below.A) <= BearingAlignTol && geom.Dist(w.B, below.B) <= BearingAlignTol
		flipped := geom.Dist(w.A, below.B) <= BearingAlignTol && geom.Dist(w.B, below.A) <= BearingAlignTol
		if straight || flipped {
			return true
		}
	}
	return false
}
