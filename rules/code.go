// SPDX-License-Identifier: MIT

package rules

import (
	"fmt"
	"math"

	"github.com/katalvlaran/lvlplan/connect"
	"github.com/katalvlaran/lvlplan/geom"
	"github.com/katalvlaran/lvlplan/model"
)

// checkCorridorWidth flags corridors narrower than MinCorridorWidth,
// measured as the short side of the bounding rectangle. A degenerate
// corridor reads near-zero width and flags at half confidence.
func checkCorridorWidth(in *Input) []Issue {
	var out []Issue
	for i := range in.Building.Rooms {
		r := &in.Building.Rooms[i]
		if r.Type != model.RoomCorridor {
			continue
		}
		rm := in.Metrics.Rooms[r.ID]
		if rm.Width >= MinCorridorWidth-geom.Eps {
			continue
		}
		confidence := 1.0
		if rm.Degenerate {
			confidence = 0.5
		}
		out = append(out, Issue{
			Severity: SeverityError,
			Code:     CodeCorridorWidth,
			Message: fmt.Sprintf("corridor %q is %.2f m wide, minimum is %.2f m",
				r.ID, rm.Width, MinCorridorWidth),
			Entities:   []string{r.ID},
			Actual:     rm.Width,
			Limit:      MinCorridorWidth,
			Confidence: confidence,
		})
	}
	return out
}

// checkCeilingHeight flags walls below MinCeilingHeight on floors that
// hold at least one habitable room. A wall with no height of its own
// inherits the storey height.
func checkCeilingHeight(in *Input) []Issue {
	habitable := make(map[int]bool)
	for i := range in.Building.Rooms {
		if in.Building.Rooms[i].Type.Habitable() {
			habitable[in.Building.Rooms[i].Floor] = true
		}
	}

	var out []Issue
	for i := range in.Building.Walls {
		w := &in.Building.Walls[i]
		if !habitable[w.Floor] {
			continue
		}
		h := w.Height
		if h <= 0 {
			h = in.Building.Floors[w.Floor].Height
		}
		if h >= MinCeilingHeight-geom.Eps {
			continue
		}
		out = append(out, Issue{
			Severity: SeverityError,
			Code:     CodeLowCeiling,
			Message: fmt.Sprintf("wall %q gives floor %d a clear height of %.2f m, minimum is %.2f m",
				w.ID, w.Floor, h, MinCeilingHeight),
			Entities:   []string{w.ID},
			Actual:     h,
			Limit:      MinCeilingHeight,
			Confidence: 1,
		})
	}
	return out
}

// checkEscapeDistance flags rooms whose weighted escape path to the
// outside node exceeds MaxEscapeDistance. Escape routes may use stairs
// but never elevators, so elevator verticals are filtered out; a room
// reachable only by elevator has no escape route at all and flags at an
// infinite measured distance. Rooms unreachable outright are left to
// the unreachable-space rule.
func checkEscapeDistance(in *Input) []Issue {
	all, err := connect.Distances(in.Graph, connect.OutsideID)
	if err != nil {
		return nil
	}
	walking, err := connect.Distances(in.Graph, connect.OutsideID,
		connect.WithFilterEdge(noElevator(in)))
	if err != nil {
		return nil
	}
	maxMM := int64(MaxEscapeDistance * 1000)

	var out []Issue
	for i := range in.Building.Rooms {
		r := &in.Building.Rooms[i]
		if all[r.ID] == connect.Unreachable {
			continue
		}
		d := walking[r.ID]
		switch {
		case d == connect.Unreachable:
			out = append(out, Issue{
				Severity: SeverityError,
				Code:     CodeEscapeDistance,
				Message: fmt.Sprintf("room %q on floor %d has no escape route avoiding elevators",
					r.ID, r.Floor),
				Entities:   []string{r.ID},
				Actual:     math.Inf(1),
				Limit:      MaxEscapeDistance,
				Confidence: 1,
			})
		case d > maxMM:
			out = append(out, Issue{
				Severity: SeverityError,
				Code:     CodeEscapeDistance,
				Message: fmt.Sprintf("room %q is %.1f m from the exit, maximum is %.0f m",
					r.ID, connect.Meters(d), MaxEscapeDistance),
				Entities:   []string{r.ID},
				Actual:     connect.Meters(d),
				Limit:      MaxEscapeDistance,
				Confidence: 1,
			})
		}
	}
	return out
}

// noElevator builds the edge filter of the escape rules: every edge
// passes except a vertical one through an elevator shaft.
func noElevator(in *Input) func(string, connect.Edge) bool {
	return func(_ string, e connect.Edge) bool {
		if !e.Vertical {
			return true
		}
		s, ok := in.Index.Shaft(e.Via)
		return !ok || s.Kind != model.ShaftElevator
	}
}

// checkDoorWidthMinimum flags doors below the width floor of their
// role: the building entrance, an apartment entrance, or an interior
// door. DoorTolerance keeps authoring noise quiet.
func checkDoorWidthMinimum(in *Input) []Issue {
	aptDoors := make(map[string]bool, len(in.Building.Apartments))
	for i := range in.Building.Apartments {
		aptDoors[in.Building.Apartments[i].EntranceDoorID] = true
	}

	var out []Issue
	for i := range in.Building.Walls {
		w := &in.Building.Walls[i]
		for j := range w.Openings {
			o := &w.Openings[j]
			if o.Kind != model.OpeningDoor {
				continue
			}
			role, minWidth := "interior", MinInteriorDoorWidth
			switch {
			case o.ID == in.Building.EntranceDoorID:
				role, minWidth = "building entrance", MinEntranceDoorWidth
			case aptDoors[o.ID]:
				role, minWidth = "apartment entrance", MinApartmentDoorWidth
			}
			if o.Width >= minWidth-DoorTolerance {
				continue
			}
			out = append(out, Issue{
				Severity: SeverityError,
				Code:     CodeDoorTooNarrow,
				Message: fmt.Sprintf("%s door %q is %.2f m wide, minimum is %.2f m",
					role, o.ID, o.Width, minWidth),
				Entities:   []string{o.ID, w.ID},
				Actual:     o.Width,
				Limit:      minWidth,
				Confidence: 1,
			})
		}
	}
	return out
}
