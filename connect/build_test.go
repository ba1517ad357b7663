package connect_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvlplan/connect"
	"github.com/katalvlaran/lvlplan/geom"
	"github.com/katalvlaran/lvlplan/model"
)

// rect returns an axis-aligned rectangle ring.
func rect(x0, y0, x1, y1 float64) geom.Polygon {
	return geom.Polygon{{X: x0, Y: y0}, {X: x1, Y: y0}, {X: x1, Y: y1}, {X: x0, Y: y1}}
}

// fixture returns the two-storey snapshot shared by the package tests.
//
// Floor 0: hall (0,0)-(4,4) with the entrance door south, kitchen
// (4,0)-(8,4) east of it, stair shaft (0,4)-(2,6) north of the hall.
// Floor 1: bed-1 (2,4)-(6,6) reached through the stair landing.
//
// Expected weights (mm): outside-hall 2000, hall-kitchen 4000,
// hall-stairs#0 3162, stairs#0-stairs#1 5000, stairs#1-bed-1 3000.
func fixture() *model.Building {
	return &model.Building{
		Name:   "fixture",
		Floors: []model.Floor{{Index: 0, Height: 2.7}, {Index: 1, Height: 2.7}},
		Walls: []model.Wall{
			{ID: "w-entry", A: geom.Point{X: 0, Y: 0}, B: geom.Point{X: 4, Y: 0}, Thickness: 0.2, Height: 2.7, Floor: 0, Kind: model.WallBearing, Openings: []model.Opening{
				{ID: "d-entry", Offset: 1.5, Width: 1.0, Kind: model.OpeningDoor},
			}},
			{ID: "w-hall-kitchen", A: geom.Point{X: 4, Y: 0}, B: geom.Point{X: 4, Y: 4}, Thickness: 0.1, Height: 2.7, Floor: 0, Openings: []model.Opening{
				{ID: "d-kitchen", Offset: 1.0, Width: 0.9, Kind: model.OpeningDoor},
			}},
			{ID: "w-hall-stairs", A: geom.Point{X: 0, Y: 4}, B: geom.Point{X: 2, Y: 4}, Thickness: 0.2, Height: 2.7, Floor: 0, Kind: model.WallBearing, Openings: []model.Opening{
				{ID: "d-stairs", Offset: 0.5, Width: 1.0, Kind: model.OpeningDoor},
			}},
			{ID: "w-stairs-bed", A: geom.Point{X: 2, Y: 4}, B: geom.Point{X: 2, Y: 6}, Thickness: 0.1, Height: 2.7, Floor: 1, Openings: []model.Opening{
				{ID: "d-bed", Offset: 0.5, Width: 0.9, Kind: model.OpeningDoor},
			}},
			{ID: "w-kitchen-south", A: geom.Point{X: 4, Y: 0}, B: geom.Point{X: 8, Y: 0}, Thickness: 0.2, Height: 2.7, Floor: 0, Kind: model.WallBearing, Openings: []model.Opening{
				{ID: "win-k", Offset: 1.0, Width: 1.5, Kind: model.OpeningWindow},
			}},
		},
		Rooms: []model.Room{
			{ID: "hall", Boundary: rect(0, 0, 4, 4), Type: model.RoomEntranceHall, Floor: 0},
			{ID: "kitchen", Boundary: rect(4, 0, 8, 4), Type: model.RoomKitchen, Floor: 0},
			{ID: "bed-1", Boundary: rect(2, 4, 6, 6), Type: model.RoomBedroom, Floor: 1},
		},
		Shafts: []model.Shaft{
			{ID: "stairs", Kind: model.ShaftStair, Footprint: rect(0, 4, 2, 6), FloorLo: 0, FloorHi: 1},
		},
		EntranceDoorID: "d-entry",
	}
}

func TestBuild_NilBuilding(t *testing.T) {
	g, err := connect.Build(nil)
	require.Nil(t, g)
	require.ErrorIs(t, err, connect.ErrNilBuilding)
}

func TestBuild_Nodes(t *testing.T) {
	g, err := connect.Build(fixture())
	require.NoError(t, err)

	// Rooms first, then landings per shaft, outside last.
	require.Equal(t,
		[]string{"hall", "kitchen", "bed-1", "stairs#0", "stairs#1", "outside"},
		g.Nodes())
	require.Equal(t, 6, g.NodeCount())

	k, ok := g.Kind("hall")
	require.True(t, ok)
	require.Equal(t, connect.NodeRoom, k)

	k, ok = g.Kind("stairs#0")
	require.True(t, ok)
	require.Equal(t, connect.NodeLanding, k)

	k, ok = g.Kind(connect.OutsideID)
	require.True(t, ok)
	require.Equal(t, connect.NodeOutside, k)

	_, ok = g.Kind("nope")
	require.False(t, ok)
	require.False(t, g.HasNode("nope"))
}

func TestBuild_DoorEdges(t *testing.T) {
	g, err := connect.Build(fixture())
	require.NoError(t, err)

	// Hall adjacency follows wall authoring order.
	hall := g.Neighbors("hall")
	require.Len(t, hall, 3)
	require.Equal(t, connect.Edge{To: "outside", Weight: 2000, Via: "d-entry"}, hall[0])
	require.Equal(t, connect.Edge{To: "kitchen", Weight: 4000, Via: "d-kitchen"}, hall[1])
	require.Equal(t, connect.Edge{To: "stairs#0", Weight: 3162, Via: "d-stairs"}, hall[2])

	// The window wall contributes nothing: kitchen has its one door.
	require.Equal(t, 1, g.Degree("kitchen"))
	require.Equal(t, connect.Edge{To: "stairs#1", Weight: 3000, Via: "d-bed"}, g.Neighbors("bed-1")[0])
	require.Equal(t, 5, g.EdgeCount())
}

func TestBuild_VerticalEdges(t *testing.T) {
	g, err := connect.Build(fixture())
	require.NoError(t, err)

	landing := g.Neighbors("stairs#0")
	require.Len(t, landing, 2)
	require.Equal(t, connect.Edge{To: "stairs#1", Weight: 5000, Via: "stairs", Vertical: true}, landing[1])
}

func TestBuild_PenaltyOption(t *testing.T) {
	g, err := connect.Build(fixture(), connect.WithStairPenalty(3.0))
	require.NoError(t, err)
	require.Equal(t, int64(3000), g.Neighbors("stairs#0")[1].Weight)
}

func TestBuild_OptionViolation(t *testing.T) {
	_, err := connect.Build(fixture(), connect.WithStairPenalty(-1))
	require.ErrorIs(t, err, connect.ErrOptionViolation)

	_, err = connect.Build(fixture(), connect.WithElevatorPenalty(0))
	require.ErrorIs(t, err, connect.ErrOptionViolation)
}

func TestBuild_DegenerateDoorSpan(t *testing.T) {
	b := fixture()
	// Collapse the entrance wall: its door span collapses with it and
	// must not produce an edge.
	b.Walls[0].B = b.Walls[0].A

	g, err := connect.Build(b)
	require.NoError(t, err)
	require.Equal(t, 0, g.Degree("outside"))
	require.Equal(t, 4, g.EdgeCount())
}

func TestBuild_DoorToNowhere(t *testing.T) {
	b := fixture()
	b.Walls = append(b.Walls, model.Wall{
		ID: "w-lone", A: geom.Point{X: 10, Y: 10}, B: geom.Point{X: 14, Y: 10}, Floor: 0,
		Openings: []model.Opening{{ID: "d-lone", Offset: 1.0, Width: 1.0, Kind: model.OpeningDoor}},
	})

	g, err := connect.Build(b)
	require.NoError(t, err)
	require.Equal(t, 5, g.EdgeCount())
}

func TestBuild_ParallelDoors(t *testing.T) {
	b := fixture()
	b.Walls[1].Openings = append(b.Walls[1].Openings,
		model.Opening{ID: "d-kitchen-2", Offset: 2.5, Width: 0.9, Kind: model.OpeningDoor})

	g, err := connect.Build(b)
	require.NoError(t, err)
	require.Equal(t, 6, g.EdgeCount())
	require.Equal(t, 2, g.Degree("kitchen"))
}

func TestBuild_ReservedRoomID(t *testing.T) {
	b := fixture()
	b.Rooms[0].ID = connect.OutsideID
	_, err := connect.Build(b)
	require.ErrorIs(t, err, connect.ErrReservedID)
}

func TestBuild_LandingCollision(t *testing.T) {
	b := fixture()
	b.Rooms = append(b.Rooms, model.Room{
		ID: connect.LandingID("stairs", 0), Boundary: rect(20, 20, 24, 24), Type: model.RoomOther, Floor: 0,
	})
	_, err := connect.Build(b)
	require.ErrorIs(t, err, connect.ErrReservedID)
}

func TestLandingID(t *testing.T) {
	require.Equal(t, "stairs#0", connect.LandingID("stairs", 0))
	require.Equal(t, "lift#-1", connect.LandingID("lift", -1))
}
