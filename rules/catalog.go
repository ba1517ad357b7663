// SPDX-License-Identifier: MIT

package rules

// Catalog returns the full rule set in its fixed order. The order is
// part of the report contract: within one severity, issues sort by the
// position of the producing rule. Appending here is the only way the
// catalog grows; there is no registration and no reflection.
func Catalog() []Rule {
	return []Rule{
		// Structural.
		{Name: "wall-overlap", Check: checkWallOverlap},
		{Name: "wall-crosses-shaft", Check: checkWallCrossesShaft},
		{Name: "opening-outside-wall", Check: checkOpeningOutsideWall},
		{Name: "overlapping-openings", Check: checkOverlappingOpenings},
		{Name: "window-into-shaft", Check: checkWindowIntoShaft},
		{Name: "unsupported-bearing-wall", Check: checkBearingSupport},

		// Spatial completeness.
		{Name: "isolated-room", Check: checkIsolatedRoom},
		{Name: "apartment-completeness", Check: checkApartmentCompleteness},
		{Name: "separate-wc", Check: checkSeparateWC},
		{Name: "floor-slabs", Check: checkFloorSlabs},
		{Name: "staircase-coverage", Check: checkStaircaseCoverage},
		{Name: "apartment-connectivity", Check: checkApartmentConnectivity},

		// Connectivity.
		{Name: "unreachable-space", Check: checkUnreachableSpace},
		{Name: "dead-end-corridor", Check: checkDeadEndCorridor},

		// Building code.
		{Name: "corridor-width", Check: checkCorridorWidth},
		{Name: "ceiling-height", Check: checkCeilingHeight},
		{Name: "escape-distance", Check: checkEscapeDistance},
		{Name: "door-width-minimum", Check: checkDoorWidthMinimum},

		// Quality.
		{Name: "tunnel-room", Check: checkTunnelRoom},
		{Name: "bedroom-minimum", Check: checkBedroomMinimum},
		{Name: "sellable-ratio", Check: checkSellableRatio},
		{Name: "room-minimum", Check: checkRoomMinimum},
		{Name: "door-width-maximum", Check: checkDoorWidthMaximum},
		{Name: "walk-through-room", Check: checkWalkThroughRoom},
		{Name: "entrance-hall-share", Check: checkEntranceHallShare},
		{Name: "room-shape-fill", Check: checkRoomShapeFill},
		{Name: "floor-coverage", Check: checkFloorCoverage},
	}
}
