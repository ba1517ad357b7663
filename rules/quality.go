// SPDX-License-Identifier: MIT

package rules

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/lvlplan/connect"
	"github.com/katalvlaran/lvlplan/geom"
	"github.com/katalvlaran/lvlplan/model"
)

// checkTunnelRoom flags rooms stretched past MaxAspectRatio. Corridors
// and landings are supposed to be long, so circulation is exempt.
func checkTunnelRoom(in *Input) []Issue {
	var out []Issue
	for i := range in.Building.Rooms {
		r := &in.Building.Rooms[i]
		if r.Type.Circulation() {
			continue
		}
		rm := in.Metrics.Rooms[r.ID]
		if rm.Ratio <= MaxAspectRatio+geom.Eps {
			continue
		}
		out = append(out, Issue{
			Severity: SeverityWarning,
			Code:     CodeTunnelRoom,
			Message: fmt.Sprintf("room %q has an aspect ratio of %.2f, limit is %.1f",
				r.ID, rm.Ratio, MaxAspectRatio),
			Entities:   []string{r.ID},
			Actual:     rm.Ratio,
			Limit:      MaxAspectRatio,
			Confidence: 1,
		})
	}
	return out
}

// checkBedroomMinimum flags undersized bedrooms per apartment. The
// first-listed bedroom is the master and measures against the larger
// minimum; every further bedroom against the smaller one. Degenerate
// boundaries read zero area and flag at half confidence.
func checkBedroomMinimum(in *Input) []Issue {
	var out []Issue
	for i := range in.Building.Apartments {
		a := &in.Building.Apartments[i]
		master := true
		for _, r := range in.Index.ApartmentRooms(a.ID) {
			if r.Type != model.RoomBedroom {
				continue
			}
			minArea := MinBedroomArea
			if master {
				minArea = MinMasterBedroomArea
				master = false
			}
			rm := in.Metrics.Rooms[r.ID]
			if rm.Area >= minArea-geom.Eps {
				continue
			}
			confidence := 1.0
			if rm.Degenerate {
				confidence = 0.5
			}
			out = append(out, Issue{
				Severity: SeverityWarning,
				Code:     CodeSmallBedroom,
				Message: fmt.Sprintf("bedroom %q in apartment %q has %.1f m², minimum is %.0f m²",
					r.ID, a.ID, rm.Area, minArea),
				Entities:   []string{r.ID, a.ID},
				Actual:     rm.Area,
				Limit:      minArea,
				Confidence: confidence,
			})
		}
	}
	return out
}

// checkSellableRatio flags floors whose net-to-gross share drops below
// MinSellableRatio. A floor without slabs has no gross area to divide
// by; it still reports, at half confidence, since the missing slab is
// the likelier defect.
func checkSellableRatio(in *Input) []Issue {
	var out []Issue
	for i := range in.Building.Floors {
		f := in.Building.Floors[i].Index
		fm := in.Metrics.Floors[f]
		if !fm.Degenerate && fm.SellableRatio >= MinSellableRatio-geom.Eps {
			continue
		}
		confidence := 1.0
		if fm.Degenerate {
			confidence = 0.5
		}
		out = append(out, Issue{
			Severity: SeverityWarning,
			Code:     CodeLowSellable,
			Message: fmt.Sprintf("floor %d sells %.0f%% of its gross area, target is %.0f%%",
				f, fm.SellableRatio*100, MinSellableRatio*100),
			Entities:   []string{floorRef(f)},
			Actual:     fm.SellableRatio,
			Limit:      MinSellableRatio,
			Confidence: confidence,
		})
	}
	return out
}

// checkRoomMinimum flags rooms below the per-type area minimum.
// Bedrooms are covered by the apartment-aware bedroom rule; types
// without a minimum never flag.
func checkRoomMinimum(in *Input) []Issue {
	var out []Issue
	for i := range in.Building.Rooms {
		r := &in.Building.Rooms[i]
		minArea, bounded := minRoomArea(r.Type)
		if !bounded {
			continue
		}
		rm := in.Metrics.Rooms[r.ID]
		if rm.Area >= minArea-geom.Eps {
			continue
		}
		confidence := 1.0
		if rm.Degenerate {
			confidence = 0.5
		}
		out = append(out, Issue{
			Severity: SeverityWarning,
			Code:     CodeSmallRoom,
			Message: fmt.Sprintf("%s %q has %.1f m², minimum is %.1f m²",
				r.Type, r.ID, rm.Area, minArea),
			Entities:   []string{r.ID},
			Actual:     rm.Area,
			Limit:      minArea,
			Confidence: confidence,
		})
	}
	return out
}

// minRoomArea returns the area floor for a room type, if it has one.
func minRoomArea(t model.RoomType) (float64, bool) {
	switch t {
	case model.RoomLiving:
		return MinLivingArea, true
	case model.RoomKitchen:
		return MinKitchenArea, true
	case model.RoomBathroom:
		return MinBathroomArea, true
	case model.RoomWC:
		return MinWCArea, true
	case model.RoomEntranceHall:
		return MinHallArea, true
	case model.RoomStorage:
		return MinStorageArea, true
	default:
		return 0, false
	}
}

// checkDoorWidthMaximum flags doors wider than MaxDoorWidth, the widest
// practical single leaf.
func checkDoorWidthMaximum(in *Input) []Issue {
	var out []Issue
	for i := range in.Building.Walls {
		w := &in.Building.Walls[i]
		for j := range w.Openings {
			o := &w.Openings[j]
			if o.Kind != model.OpeningDoor || o.Width <= MaxDoorWidth+DoorTolerance {
				continue
			}
			out = append(out, Issue{
				Severity: SeverityWarning,
				Code:     CodeOversizedDoor,
				Message: fmt.Sprintf("door %q is %.2f m wide, maximum for a single leaf is %.2f m",
					o.ID, o.Width, MaxDoorWidth),
				Entities:   []string{o.ID, w.ID},
				Actual:     o.Width,
				Limit:      MaxDoorWidth,
				Confidence: 1,
			})
		}
	}
	return out
}

// checkWalkThroughRoom flags habitable rooms that other habitable rooms
// of the same apartment can only be reached through: without the cut
// room's doors, some sibling loses its path from the entrance hall.
func checkWalkThroughRoom(in *Input) []Issue {
	var out []Issue
	for i := range in.Building.Apartments {
		a := &in.Building.Apartments[i]
		members := memberSet(a)
		entry := apartmentEntry(in, a)
		base, err := connect.ReachableFrom(in.Graph, entry,
			connect.WithFilterEdge(memberEdges(members)))
		if err != nil {
			continue
		}
		inBase := make(map[string]bool, len(base))
		for _, id := range base {
			inBase[id] = true
		}

		for _, r := range in.Index.ApartmentRooms(a.ID) {
			if !r.Type.Habitable() || !inBase[r.ID] {
				continue
			}
			lost := lostWithout(in, a, entry, members, r.ID, base)
			if len(lost) == 0 {
				continue
			}
			out = append(out, Issue{
				Severity: SeverityWarning,
				Code:     CodeWalkThroughRoom,
				Message: fmt.Sprintf("%s %q in apartment %q is the only way to reach %s",
					r.Type, r.ID, a.ID, strings.Join(lost, ", ")),
				Entities:   []string{r.ID, a.ID},
				Actual:     float64(len(lost)),
				Confidence: 1,
			})
		}
	}
	return out
}

// lostWithout returns the habitable members, in base traversal order,
// that drop out of reach from the entrance hall once every edge
// touching cut is removed.
func lostWithout(in *Input, a *model.Apartment, entry string, members map[string]bool, cut string, base []string) []string {
	keep := memberEdges(members)
	sub, err := connect.ReachableFrom(in.Graph, entry,
		connect.WithFilterEdge(func(from string, e connect.Edge) bool {
			return from != cut && e.To != cut && keep(from, e)
		}))
	if err != nil {
		return nil
	}
	inSub := make(map[string]bool, len(sub))
	for _, id := range sub {
		inSub[id] = true
	}

	var lost []string
	for _, id := range base {
		if id == cut || inSub[id] {
			continue
		}
		if r, ok := in.Index.Room(id); ok && r.Type.Habitable() {
			lost = append(lost, id)
		}
	}
	return lost
}

// checkEntranceHallShare flags entrance halls taking more than
// MaxHallShare of their apartment's net area.
func checkEntranceHallShare(in *Input) []Issue {
	var out []Issue
	for i := range in.Building.Apartments {
		a := &in.Building.Apartments[i]
		net := in.Metrics.Apartments[a.ID].NetArea
		if net < geom.Eps {
			continue
		}
		for _, r := range in.Index.ApartmentRooms(a.ID) {
			if r.Type != model.RoomEntranceHall {
				continue
			}
			share := in.Metrics.Rooms[r.ID].Area / net
			if share <= MaxHallShare+geom.Eps {
				continue
			}
			out = append(out, Issue{
				Severity: SeverityOptimization,
				Code:     CodeOversizedHall,
				Message: fmt.Sprintf("entrance hall %q takes %.0f%% of apartment %q, target is at most %.0f%%",
					r.ID, share*100, a.ID, MaxHallShare*100),
				Entities:   []string{r.ID, a.ID},
				Actual:     share,
				Limit:      MaxHallShare,
				Confidence: 1,
			})
		}
	}
	return out
}

// checkRoomShapeFill flags habitable rooms that fill less than
// MinShapeFill of their bounding rectangle: alcoves and L-shapes that
// furnish poorly. Degenerate boundaries have no meaningful fill and are
// skipped; their defects surface elsewhere.
func checkRoomShapeFill(in *Input) []Issue {
	var out []Issue
	for i := range in.Building.Rooms {
		r := &in.Building.Rooms[i]
		if !r.Type.Habitable() {
			continue
		}
		rm := in.Metrics.Rooms[r.ID]
		box := rm.Width * rm.Width * rm.Ratio
		if rm.Degenerate || box < geom.Eps {
			continue
		}
		fill := rm.Area / box
		if fill >= MinShapeFill-geom.Eps {
			continue
		}
		out = append(out, Issue{
			Severity: SeverityOptimization,
			Code:     CodeIrregularShape,
			Message: fmt.Sprintf("room %q fills only %.0f%% of its bounding rectangle",
				r.ID, fill*100),
			Entities:   []string{r.ID},
			Actual:     fill,
			Limit:      MinShapeFill,
			Confidence: 1,
		})
	}
	return out
}
