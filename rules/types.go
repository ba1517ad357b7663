// SPDX-License-Identifier: MIT

package rules

import (
	"fmt"

	"github.com/katalvlaran/lvlplan/connect"
	"github.com/katalvlaran/lvlplan/metrics"
	"github.com/katalvlaran/lvlplan/model"
)

// Severity ranks a finding. The numeric order is the report order:
// errors sort before warnings, warnings before optimizations.
type Severity uint8

const (
	// SeverityError: the building violates a hard constraint and is
	// non-compliant as modeled.
	SeverityError Severity = iota

	// SeverityWarning: compliant, but below quality expectations.
	SeverityWarning

	// SeverityOptimization: compliant and usable, just improvable.
	SeverityOptimization
)

// String returns the lowercase name of the severity.
func (s Severity) String() string {
	switch s {
	case SeverityError:
		return "error"
	case SeverityWarning:
		return "warning"
	case SeverityOptimization:
		return "optimization"
	default:
		return "unknown"
	}
}

// Issue codes are the stable consumer contract: messages may be
// reworded between versions, codes only ever get appended.
const (
	CodeWallOverlap         = "wall overlap"
	CodeDegenerateWall      = "degenerate wall"
	CodeWallCrossesShaft    = "wall crosses shaft"
	CodeOpeningOutsideWall  = "opening outside wall"
	CodeOverlappingOpenings = "overlapping openings"
	CodeWindowIntoShaft     = "window into shaft"
	CodeUnsupportedBearing  = "unsupported bearing wall"

	CodeIsolatedRoom     = "isolated room"
	CodeMissingKitchen   = "missing kitchen"
	CodeMissingBathroom  = "missing bathroom"
	CodeMissingWC        = "missing separate WC"
	CodeMissingSlab      = "missing floor slab"
	CodeMissingStaircase = "missing staircase"
	CodeApartmentSplit   = "apartment room disconnected"

	CodeUnreachableSpace = "unreachable space"
	CodeDeadEndCorridor  = "dead-end corridor"

	CodeCorridorWidth  = "corridor width"
	CodeLowCeiling     = "low ceiling"
	CodeEscapeDistance = "fire escape distance"
	CodeDoorTooNarrow  = "door too narrow"

	CodeTunnelRoom      = "tunnel-shaped room"
	CodeSmallBedroom    = "bedroom below minimum"
	CodeLowSellable     = "low sellable ratio"
	CodeSmallRoom       = "room below minimum"
	CodeOversizedDoor   = "oversized door"
	CodeWalkThroughRoom = "walk-through room"
	CodeOversizedHall   = "oversized entrance hall"
	CodeIrregularShape  = "irregular room shape"
	CodeUnassignedArea  = "unassigned floor area"
)

// Issue is one finding. An Issue is data, never a Go error: a defective
// building validates fine and reports badly.
type Issue struct {
	Severity Severity

	// Code names the finding; see the Code constants.
	Code string

	// Message is the human-readable one-liner.
	Message string

	// Entities lists the ids involved, primary entity first. Floor-scope
	// findings use the synthetic "floor-N" reference.
	Entities []string

	// Actual and Limit carry the measured value and the threshold it
	// broke, in the rule's unit (meters, square meters, or a plain
	// ratio). Existence rules leave both zero.
	Actual float64
	Limit  float64

	// Confidence is 1 for clean geometry and 0.5 when the finding was
	// measured off a degenerate-geometry sentinel.
	Confidence float64
}

// Input bundles the read-only views every rule checks against: the
// snapshot itself, its reference index, the connectivity graph and the
// precomputed metrics. Rules never mutate any of it, so one Input can
// back the whole catalog concurrently.
type Input struct {
	Building *model.Building
	Index    *model.Index
	Graph    *connect.Graph
	Metrics  *metrics.Metrics
}

// Func is one pure check. Implementations must return their issues in a
// deterministic order for a given snapshot.
type Func func(in *Input) []Issue

// Rule pairs a catalog name with its check. The name appears in logs
// and traces, never in issues.
type Rule struct {
	Name  string
	Check Func
}

// floorRef is the synthetic entity reference for floor-scope findings;
// floors have indices, not ids.
func floorRef(floor int) string {
	return fmt.Sprintf("floor-%d", floor)
}
