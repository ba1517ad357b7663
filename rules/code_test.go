package rules_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvlplan/geom"
	"github.com/katalvlaran/lvlplan/model"
	"github.com/katalvlaran/lvlplan/rules"
)

func TestCorridorWidth(t *testing.T) {
	b := cleanBuilding()
	b.Rooms = append(b.Rooms,
		model.Room{ID: "corr", Boundary: rect(10.5, 3, 13.5, 4), Type: model.RoomCorridor, Floor: 0},
		model.Room{ID: "corr-ok", Boundary: rect(10.5, 4.5, 13.5, 5.7), Type: model.RoomCorridor, Floor: 0},
		model.Room{ID: "corr-dot", Boundary: geom.Polygon{{X: 40, Y: 0}, {X: 43, Y: 0}}, Type: model.RoomCorridor, Floor: 0},
	)
	got := runRule(t, "corridor-width", input(t, b))

	// 1.00 m flags, 1.20 m passes, a degenerate boundary flags at half
	// confidence with whatever width survives the collapse.
	require.Len(t, got, 2)
	require.Equal(t, rules.CodeCorridorWidth, got[0].Code)
	require.Equal(t, []string{"corr"}, got[0].Entities)
	require.InDelta(t, 1.0, got[0].Actual, 1e-9)
	require.InDelta(t, rules.MinCorridorWidth, got[0].Limit, 1e-9)
	require.Equal(t, 1.0, got[0].Confidence)
	require.Equal(t, []string{"corr-dot"}, got[1].Entities)
	require.Equal(t, 0.5, got[1].Confidence)
}

func TestCeilingHeight(t *testing.T) {
	b := cleanBuilding()
	b.Walls[0].Height = 2.4
	got := runRule(t, "ceiling-height", input(t, b))

	require.Len(t, got, 1)
	require.Equal(t, rules.CodeLowCeiling, got[0].Code)
	require.Equal(t, []string{"w-entry"}, got[0].Entities)
	require.InDelta(t, 2.4, got[0].Actual, 1e-9)
}

func TestCeilingHeight_NoHabitableRooms(t *testing.T) {
	// A 2.20 m attic of storage space is fine: the height floor binds
	// only where people live.
	b := &model.Building{
		Name:           "attic",
		EntranceDoorID: "d-e",
		Floors:         []model.Floor{{Index: 0, Height: 2.2}},
		Slabs:          []model.Slab{{ID: "s", Outline: rect(0, 0, 4, 4), Floor: 0}},
		Rooms:          []model.Room{{ID: "store", Boundary: rect(0, 0, 4, 4), Type: model.RoomStorage, Floor: 0}},
		Walls: []model.Wall{{
			ID: "w-s", A: geom.Point{X: 0, Y: 0}, B: geom.Point{X: 4, Y: 0}, Floor: 0,
			Openings: []model.Opening{{ID: "d-e", Kind: model.OpeningDoor, Offset: 1.5, Width: 1}},
		}},
	}
	require.Empty(t, runRule(t, "ceiling-height", input(t, b)))
}

// escapeTestBuilding is a single-storey strip: a small hall at the
// entrance and one very deep room behind it. Centroid to centroid the
// deep room sits 42 m from the door.
func escapeTestBuilding() *model.Building {
	return &model.Building{
		Name:           "strip",
		EntranceDoorID: "d-e",
		Floors:         []model.Floor{{Index: 0, Height: 2.7}},
		Slabs:          []model.Slab{{ID: "s", Outline: rect(0, 0, 82, 2), Floor: 0}},
		Rooms: []model.Room{
			{ID: "hall", Boundary: rect(0, 0, 2, 2), Type: model.RoomEntranceHall, Floor: 0},
			{ID: "deep", Boundary: rect(2, 0, 82, 2), Type: model.RoomStorage, Floor: 0},
		},
		Walls: []model.Wall{
			{ID: "w-e", A: geom.Point{X: 0, Y: 0}, B: geom.Point{X: 2, Y: 0}, Floor: 0,
				Openings: []model.Opening{{ID: "d-e", Kind: model.OpeningDoor, Offset: 0.5, Width: 1}}},
			{ID: "w-d", A: geom.Point{X: 2, Y: 0}, B: geom.Point{X: 2, Y: 2}, Floor: 0,
				Openings: []model.Opening{{ID: "d-d", Kind: model.OpeningDoor, Offset: 0.5, Width: 1}}},
		},
	}
}

func TestEscapeDistance(t *testing.T) {
	b := escapeTestBuilding()
	// A room nobody can reach at all is the unreachable-space rule's
	// finding, not a distance finding.
	b.Rooms = append(b.Rooms,
		model.Room{ID: "cell", Boundary: rect(50, 10, 53, 13), Type: model.RoomStorage, Floor: 0},
	)
	got := runRule(t, "escape-distance", input(t, b))

	require.Len(t, got, 1)
	require.Equal(t, rules.CodeEscapeDistance, got[0].Code)
	require.Equal(t, []string{"deep"}, got[0].Entities)
	require.InDelta(t, 42.0, got[0].Actual, 0.01)
	require.InDelta(t, rules.MaxEscapeDistance, got[0].Limit, 1e-9)
}

// elevatorTower wires an upper room to the entrance hall through a
// vertical shaft of the given kind. With an elevator the room has no
// walkable way down.
func elevatorTower(kind model.ShaftKind) *model.Building {
	return &model.Building{
		Name:           "tower",
		EntranceDoorID: "d-e",
		Floors:         []model.Floor{{Index: 0, Height: 2.7}, {Index: 1, Height: 2.7}},
		Slabs: []model.Slab{
			{ID: "s0", Outline: rect(0, 0, 3, 8), Floor: 0},
			{ID: "s1", Outline: rect(0, 0, 3, 8), Floor: 1},
		},
		Shafts: []model.Shaft{
			{ID: "lift", Kind: kind, Footprint: rect(0, 3, 2, 5), FloorLo: 0, FloorHi: 1},
		},
		Rooms: []model.Room{
			{ID: "hall", Boundary: rect(0, 0, 3, 3), Type: model.RoomEntranceHall, Floor: 0},
			{ID: "up-1", Boundary: rect(0, 5, 3, 8), Type: model.RoomStorage, Floor: 1},
		},
		Walls: []model.Wall{
			{ID: "w-e", A: geom.Point{X: 0, Y: 0}, B: geom.Point{X: 3, Y: 0}, Floor: 0,
				Openings: []model.Opening{{ID: "d-e", Kind: model.OpeningDoor, Offset: 1, Width: 1}}},
			{ID: "w-l0", A: geom.Point{X: 0, Y: 3}, B: geom.Point{X: 2, Y: 3}, Floor: 0,
				Openings: []model.Opening{{ID: "d-l0", Kind: model.OpeningDoor, Offset: 0.5, Width: 1}}},
			{ID: "w-l1", A: geom.Point{X: 0, Y: 5}, B: geom.Point{X: 2, Y: 5}, Floor: 1,
				Openings: []model.Opening{{ID: "d-l1", Kind: model.OpeningDoor, Offset: 0.5, Width: 1}}},
		},
	}
}

func TestEscapeDistance_ElevatorOnly(t *testing.T) {
	got := runRule(t, "escape-distance", input(t, elevatorTower(model.ShaftElevator)))

	require.Len(t, got, 1)
	require.Equal(t, []string{"up-1"}, got[0].Entities)
	require.True(t, math.IsInf(got[0].Actual, 1))
	require.Contains(t, got[0].Message, "no escape route")

	// The same shaft as a staircase is a legitimate route.
	require.Empty(t, runRule(t, "escape-distance", input(t, elevatorTower(model.ShaftStair))))
}

func TestDoorWidthMinimum(t *testing.T) {
	b := cleanBuilding()
	b.Walls[0].Openings[0].Width = 0.95  // building entrance, floor 1.00
	b.Walls[1].Openings[0].Width = 0.75  // interior, floor 0.80
	b.Walls[2].Openings[0].Width = 0.85  // apartment entrance, floor 0.90
	b.Walls[3].Openings[0].Width = 0.795 // interior, inside tolerance
	b.Apartments[0].EntranceDoorID = "d-living"
	got := runRule(t, "door-width-minimum", input(t, b))

	require.Len(t, got, 3)
	require.Equal(t, []string{"d-entry", "w-entry"}, got[0].Entities)
	require.InDelta(t, rules.MinEntranceDoorWidth, got[0].Limit, 1e-9)
	require.Contains(t, got[0].Message, "building entrance")
	require.Equal(t, []string{"d-bath", "w-hall-bath"}, got[1].Entities)
	require.InDelta(t, rules.MinInteriorDoorWidth, got[1].Limit, 1e-9)
	require.Equal(t, []string{"d-living", "w-hall-living"}, got[2].Entities)
	require.InDelta(t, rules.MinApartmentDoorWidth, got[2].Limit, 1e-9)
	require.Contains(t, got[2].Message, "apartment entrance")
	for _, is := range got {
		require.Equal(t, rules.CodeDoorTooNarrow, is.Code)
		require.Equal(t, rules.SeverityError, is.Severity)
	}
}
