// SPDX-License-Identifier: MIT

package rules

import (
	"fmt"

	"github.com/katalvlaran/lvlplan/connect"
	"github.com/katalvlaran/lvlplan/model"
)

// checkIsolatedRoom flags non-circulation rooms with no door edge at
// all. A degenerate boundary cannot host a door span, so isolation
// measured off one is reported at half confidence.
func checkIsolatedRoom(in *Input) []Issue {
	var out []Issue
	for i := range in.Building.Rooms {
		r := &in.Building.Rooms[i]
		if r.Type.Circulation() || in.Graph.Degree(r.ID) > 0 {
			continue
		}
		confidence := 1.0
		if in.Metrics.Rooms[r.ID].Degenerate {
			confidence = 0.5
		}
		out = append(out, Issue{
			Severity:   SeverityError,
			Code:       CodeIsolatedRoom,
			Message:    fmt.Sprintf("room %q on floor %d has no door", r.ID, r.Floor),
			Entities:   []string{r.ID},
			Confidence: confidence,
		})
	}
	return out
}

// checkApartmentCompleteness flags apartments missing a kitchen or a
// bathroom among their member rooms.
func checkApartmentCompleteness(in *Input) []Issue {
	var out []Issue
	for i := range in.Building.Apartments {
		a := &in.Building.Apartments[i]
		var kitchen, bathroom bool
		for _, r := range in.Index.ApartmentRooms(a.ID) {
			switch r.Type {
			case model.RoomKitchen:
				kitchen = true
			case model.RoomBathroom:
				bathroom = true
			}
		}
		if !kitchen {
			out = append(out, Issue{
				Severity:   SeverityError,
				Code:       CodeMissingKitchen,
				Message:    fmt.Sprintf("apartment %q has no kitchen", a.ID),
				Entities:   []string{a.ID},
				Confidence: 1,
			})
		}
		if !bathroom {
			out = append(out, Issue{
				Severity:   SeverityError,
				Code:       CodeMissingBathroom,
				Message:    fmt.Sprintf("apartment %q has no bathroom", a.ID),
				Entities:   []string{a.ID},
				Confidence: 1,
			})
		}
	}
	return out
}

// checkSeparateWC flags apartments with two or more bedrooms but only a
// single sanitary room: such plans need either a second bathroom or a
// dedicated WC.
func checkSeparateWC(in *Input) []Issue {
	var out []Issue
	for i := range in.Building.Apartments {
		a := &in.Building.Apartments[i]
		var bedrooms, bathrooms, wcs int
		for _, r := range in.Index.ApartmentRooms(a.ID) {
			switch r.Type {
			case model.RoomBedroom:
				bedrooms++
			case model.RoomBathroom:
				bathrooms++
			case model.RoomWC:
				wcs++
			}
		}
		if bedrooms < 2 || bathrooms >= 2 || wcs > 0 {
			continue
		}
		out = append(out, Issue{
			Severity: SeverityError,
			Code:     CodeMissingWC,
			Message: fmt.Sprintf("apartment %q has %d bedrooms but no second bathroom or separate WC",
				a.ID, bedrooms),
			Entities:   []string{a.ID},
			Actual:     float64(bedrooms),
			Confidence: 1,
		})
	}
	return out
}

// checkFloorSlabs flags storeys with no slab under them.
func checkFloorSlabs(in *Input) []Issue {
	var out []Issue
	for i := range in.Building.Floors {
		f := in.Building.Floors[i].Index
		if len(in.Index.SlabsOn(f)) > 0 {
			continue
		}
		out = append(out, Issue{
			Severity:   SeverityError,
			Code:       CodeMissingSlab,
			Message:    fmt.Sprintf("floor %d has no slab", f),
			Entities:   []string{floorRef(f)},
			Confidence: 1,
		})
	}
	return out
}

// checkStaircaseCoverage flags floors of a multi-storey building that no
// staircase serves. Elevators do not satisfy the requirement; a building
// must stay usable with the elevator out of service.
func checkStaircaseCoverage(in *Input) []Issue {
	if len(in.Building.Floors) <= 1 {
		return nil
	}
	var out []Issue
	for i := range in.Building.Floors {
		f := in.Building.Floors[i].Index
		served := false
		for j := range in.Building.Shafts {
			s := &in.Building.Shafts[j]
			if s.Kind == model.ShaftStair && s.Spans(f) {
				served = true
				break
			}
		}
		if served {
			continue
		}
		out = append(out, Issue{
			Severity:   SeverityError,
			Code:       CodeMissingStaircase,
			Message:    fmt.Sprintf("floor %d of a %d-storey building is not served by any staircase", f, len(in.Building.Floors)),
			Entities:   []string{floorRef(f)},
			Confidence: 1,
		})
	}
	return out
}

// checkApartmentConnectivity flags member rooms that cannot be reached
// from the apartment's entrance hall through doors between member rooms.
// A room reachable only through a foreign apartment or via the shared
// corridor is as good as disconnected for the resident.
func checkApartmentConnectivity(in *Input) []Issue {
	var out []Issue
	for i := range in.Building.Apartments {
		a := &in.Building.Apartments[i]
		members := memberSet(a)
		reach, err := connect.ReachableFrom(in.Graph, apartmentEntry(in, a),
			connect.WithFilterEdge(memberEdges(members)))
		if err != nil {
			continue
		}
		seen := make(map[string]bool, len(reach))
		for _, id := range reach {
			seen[id] = true
		}
		for _, rid := range a.RoomIDs {
			if seen[rid] {
				continue
			}
			out = append(out, Issue{
				Severity: SeverityError,
				Code:     CodeApartmentSplit,
				Message: fmt.Sprintf("room %q of apartment %q cannot be reached from its entrance hall",
					rid, a.ID),
				Entities:   []string{rid, a.ID},
				Confidence: 1,
			})
		}
	}
	return out
}

// apartmentEntry returns the traversal root for an apartment's internal
// connectivity: its entrance hall, which the integrity gate guarantees
// to exist exactly once.
func apartmentEntry(in *Input, a *model.Apartment) string {
	for _, r := range in.Index.ApartmentRooms(a.ID) {
		if r.Type == model.RoomEntranceHall {
			return r.ID
		}
	}
	return ""
}

// memberSet returns the apartment's room ids as a set.
func memberSet(a *model.Apartment) map[string]bool {
	members := make(map[string]bool, len(a.RoomIDs))
	for _, id := range a.RoomIDs {
		members[id] = true
	}
	return members
}

// memberEdges keeps only door edges joining two rooms of the given set.
func memberEdges(members map[string]bool) func(string, connect.Edge) bool {
	return func(from string, e connect.Edge) bool {
		return !e.Vertical && members[from] && members[e.To]
	}
}
