package connect

import (
	"github.com/katalvlaran/lvlplan/geom"
	"github.com/katalvlaran/lvlplan/model"
)

// spaceRef is one space a door span borders: the node it maps to and
// the anchor point used for edge weights.
type spaceRef struct {
	node   string
	anchor geom.Point
}

// Build derives the connectivity graph of one building snapshot.
//
// Nodes enter in authoring order: rooms, then shaft landings (floor
// ascending per shaft), then the virtual outside node. Edges enter
// wall by wall and shaft by shaft, so two Build calls over the same
// snapshot produce byte-identical traversal orders.
//
// Doors are the only horizontal connectors; windows never connect.
// A door joins every space whose boundary ring carries its span, and
// the building entrance door additionally joins the outside node.
// Degenerate door spans (hosted by zero-length walls) connect nothing.
//
// Complexity: O(W·K·(R+S) + S·F) for W walls with K openings each,
// R rooms, S shafts, F floors.
func Build(b *model.Building, opts ...Option) (*Graph, error) {
	// 1) Validate inputs and fold options over the defaults.
	if b == nil {
		return nil, ErrNilBuilding
	}
	o, err := buildOptions(opts)
	if err != nil {
		return nil, err
	}

	g := newGraph()

	// 2) Room nodes.
	for i := range b.Rooms {
		if err = g.addNode(b.Rooms[i].ID, NodeRoom); err != nil {
			return nil, err
		}
	}

	// 3) Landing nodes, one per shaft per served floor.
	for i := range b.Shafts {
		s := &b.Shafts[i]
		for f := s.FloorLo; f <= s.FloorHi; f++ {
			if err = g.addNode(LandingID(s.ID, f), NodeLanding); err != nil {
				return nil, err
			}
		}
	}

	// 4) The single exterior node.
	if err = g.addNode(OutsideID, NodeOutside); err != nil {
		return nil, err
	}

	// 5) Door edges: each usable span connects its bordering spaces
	//    pairwise, weighted by anchor distance in millimeters.
	for wi := range b.Walls {
		w := &b.Walls[wi]
		for _, op := range w.Openings {
			if op.Kind != model.OpeningDoor {
				continue
			}
			span := w.OpeningSpan(op)
			if span.Degenerate() {
				continue
			}
			refs := doorSpaces(b, w.Floor, span, op.ID == b.EntranceDoorID)
			for i := 0; i < len(refs); i++ {
				for j := i + 1; j < len(refs); j++ {
					g.addEdge(refs[i].node, refs[j].node,
						geom.DistMM(refs[i].anchor, refs[j].anchor), op.ID, false)
				}
			}
		}
	}

	// 6) Vertical edges between consecutive landings of each shaft.
	for i := range b.Shafts {
		s := &b.Shafts[i]
		weight := o.StairPenaltyMM
		if s.Kind == model.ShaftElevator {
			weight = o.ElevatorPenaltyMM
		}
		for f := s.FloorLo; f < s.FloorHi; f++ {
			g.addEdge(LandingID(s.ID, f), LandingID(s.ID, f+1), weight, s.ID, true)
		}
	}

	return g, nil
}

// doorSpaces lists the spaces whose boundary ring carries span on the
// given floor: same-floor rooms first, then landings of shafts serving
// the floor, then the outside node when the door is the building
// entrance. Room and landing anchors are centroids; the outside anchor
// is the span midpoint, so an exit edge costs the walk to the door.
func doorSpaces(b *model.Building, floor int, span geom.Segment, entrance bool) []spaceRef {
	var refs []spaceRef
	for i := range b.Rooms {
		r := &b.Rooms[i]
		if r.Floor != floor {
			continue
		}
		if r.Boundary.SegmentOnBoundary(span) {
			refs = append(refs, spaceRef{node: r.ID, anchor: r.Boundary.Centroid()})
		}
	}
	for i := range b.Shafts {
		s := &b.Shafts[i]
		if !s.Spans(floor) {
			continue
		}
		if s.Footprint.SegmentOnBoundary(span) {
			refs = append(refs, spaceRef{node: LandingID(s.ID, floor), anchor: s.Footprint.Centroid()})
		}
	}
	if entrance {
		refs = append(refs, spaceRef{node: OutsideID, anchor: span.Mid()})
	}
	return refs
}
