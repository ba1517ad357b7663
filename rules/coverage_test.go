package rules_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvlplan/geom"
	"github.com/katalvlaran/lvlplan/model"
	"github.com/katalvlaran/lvlplan/rules"
)

func TestFloorCoverage_Pocket(t *testing.T) {
	// Shrinking the bathroom strands a 3 x 1.5 m patch of slab that no
	// room claims.
	b := cleanBuilding()
	b.Rooms[1].Boundary = rect(0, 0, 3, 1.5)
	got := runRule(t, "floor-coverage", input(t, b))

	require.Len(t, got, 1)
	require.Equal(t, rules.CodeUnassignedArea, got[0].Code)
	require.Equal(t, rules.SeverityWarning, got[0].Severity)
	require.Equal(t, []string{"s-0", "floor-0"}, got[0].Entities)
	require.InDelta(t, 4.5, got[0].Actual, 1e-9)
}

func TestFloorCoverage_SmallPocketQuiet(t *testing.T) {
	// A 2 x 0.5 m sliver is exactly MinUnassignedArea and stays quiet.
	b := cleanBuilding()
	b.Rooms[0].Boundary = rect(3, 0, 5, 2.5)
	require.Empty(t, runRule(t, "floor-coverage", input(t, b)))
}

func TestFloorCoverage_ShaftCountsAsCovered(t *testing.T) {
	// The same stranded patch as above, but a shaft claims it.
	b := cleanBuilding()
	b.Rooms[1].Boundary = rect(0, 0, 3, 1.5)
	b.Shafts = append(b.Shafts, model.Shaft{
		ID: "duct", Kind: model.ShaftElevator, Footprint: rect(0, 1.5, 3, 3), FloorLo: 0, FloorHi: 0,
	})
	require.Empty(t, runRule(t, "floor-coverage", input(t, b)))
}

func TestFloorCoverage_DegenerateSlab(t *testing.T) {
	b := cleanBuilding()
	b.Slabs[0].Outline = geom.Polygon{{X: 0, Y: 0}, {X: 10.5, Y: 0}}
	require.Empty(t, runRule(t, "floor-coverage", input(t, b)))
}
