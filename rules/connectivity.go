// SPDX-License-Identifier: MIT

package rules

import (
	"fmt"

	"github.com/katalvlaran/lvlplan/connect"
	"github.com/katalvlaran/lvlplan/model"
)

// checkUnreachableSpace flags every room with no path to the outside
// node, whatever intermediate spaces the path would use. Corridors and
// landings count too: an unreachable corridor serves nobody. When the
// room's boundary is degenerate the unreachability is likely a geometry
// artifact, so the finding drops to half confidence.
func checkUnreachableSpace(in *Input) []Issue {
	reach, err := connect.ReachableFrom(in.Graph, connect.OutsideID)
	if err != nil {
		return nil
	}
	seen := make(map[string]bool, len(reach))
	for _, id := range reach {
		seen[id] = true
	}

	var out []Issue
	for i := range in.Building.Rooms {
		r := &in.Building.Rooms[i]
		if seen[r.ID] {
			continue
		}
		confidence := 1.0
		if in.Metrics.Rooms[r.ID].Degenerate {
			confidence = 0.5
		}
		out = append(out, Issue{
			Severity:   SeverityError,
			Code:       CodeUnreachableSpace,
			Message:    fmt.Sprintf("room %q on floor %d cannot be reached from outside", r.ID, r.Floor),
			Entities:   []string{r.ID},
			Confidence: confidence,
		})
	}
	return out
}

// checkDeadEndCorridor flags corridors that are the single route to one
// or more rooms. The building stays usable, but every such corridor is a
// circulation bottleneck a better plan would loop.
func checkDeadEndCorridor(in *Input) []Issue {
	var out []Issue
	for i := range in.Building.Rooms {
		r := &in.Building.Rooms[i]
		if r.Type != model.RoomCorridor {
			continue
		}
		cut, err := connect.CutIsolates(in.Graph, r.ID)
		if err != nil || len(cut) == 0 {
			continue
		}
		out = append(out, Issue{
			Severity: SeverityOptimization,
			Code:     CodeDeadEndCorridor,
			Message: fmt.Sprintf("corridor %q is the only route to %d room(s): %v",
				r.ID, len(cut), cut),
			Entities:   append([]string{r.ID}, cut...),
			Actual:     float64(len(cut)),
			Confidence: 1,
		})
	}
	return out
}
