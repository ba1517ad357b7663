package mutate_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvlplan/geom"
	"github.com/katalvlaran/lvlplan/model"
	"github.com/katalvlaran/lvlplan/mutate"
)

func rect(x0, y0, x1, y1 float64) geom.Polygon {
	return geom.Polygon{{X: x0, Y: y0}, {X: x1, Y: y0}, {X: x1, Y: y1}, {X: x0, Y: y1}}
}

// studio is the smallest snapshot the integrity gate accepts: one
// floor, two rooms, one apartment, an entrance door and an interior
// door plus a window to edit.
func studio() *model.Building {
	return &model.Building{
		Name:           "studio",
		EntranceDoorID: "d-entry",
		Floors:         []model.Floor{{Index: 0, Height: 2.7}},
		Slabs:          []model.Slab{{ID: "s-0", Outline: rect(0, 0, 6, 4), Floor: 0}},
		Rooms: []model.Room{
			{ID: "hall", Boundary: rect(0, 0, 3, 4), Type: model.RoomEntranceHall, Floor: 0},
			{ID: "main", Boundary: rect(3, 0, 6, 4), Type: model.RoomLiving, Floor: 0},
		},
		Walls: []model.Wall{
			{ID: "w-front", A: geom.Point{X: 0, Y: 0}, B: geom.Point{X: 6, Y: 0}, Floor: 0, Kind: model.WallBearing,
				Openings: []model.Opening{
					{ID: "d-entry", Kind: model.OpeningDoor, Offset: 1, Width: 0.9},
					{ID: "win-1", Kind: model.OpeningWindow, Offset: 4, Width: 1.2},
				}},
			{ID: "w-mid", A: geom.Point{X: 3, Y: 0}, B: geom.Point{X: 3, Y: 4}, Floor: 0,
				Openings: []model.Opening{{ID: "d-main", Kind: model.OpeningDoor, Offset: 1.5, Width: 0.9}}},
		},
		Apartments: []model.Apartment{{
			ID: "apt-1", Floor: 0, EntranceDoorID: "d-entry",
			RoomIDs: []string{"hall", "main"},
		}},
	}
}

// pair is two studio apartments on one floor, for reassignment tests.
func pair() *model.Building {
	return &model.Building{
		Name:           "pair",
		EntranceDoorID: "d-a",
		Floors:         []model.Floor{{Index: 0, Height: 2.7}},
		Slabs:          []model.Slab{{ID: "s-0", Outline: rect(0, 0, 12, 4), Floor: 0}},
		Rooms: []model.Room{
			{ID: "hall-a", Boundary: rect(0, 0, 3, 4), Type: model.RoomEntranceHall, Floor: 0},
			{ID: "main-a", Boundary: rect(3, 0, 6, 4), Type: model.RoomLiving, Floor: 0},
			{ID: "hall-b", Boundary: rect(6, 0, 9, 4), Type: model.RoomEntranceHall, Floor: 0},
			{ID: "main-b", Boundary: rect(9, 0, 12, 4), Type: model.RoomLiving, Floor: 0},
		},
		Walls: []model.Wall{
			{ID: "w-a", A: geom.Point{X: 0, Y: 0}, B: geom.Point{X: 3, Y: 0}, Floor: 0,
				Openings: []model.Opening{{ID: "d-a", Kind: model.OpeningDoor, Offset: 1, Width: 0.9}}},
			{ID: "w-b", A: geom.Point{X: 6, Y: 0}, B: geom.Point{X: 9, Y: 0}, Floor: 0,
				Openings: []model.Opening{{ID: "d-b", Kind: model.OpeningDoor, Offset: 1, Width: 0.9}}},
		},
		Apartments: []model.Apartment{
			{ID: "apt-a", Floor: 0, RoomIDs: []string{"hall-a", "main-a"}, EntranceDoorID: "d-a"},
			{ID: "apt-b", Floor: 0, RoomIDs: []string{"hall-b", "main-b"}, EntranceDoorID: "d-b"},
		},
	}
}

func TestApply_InputUntouched(t *testing.T) {
	in := studio()
	want := in.Clone()

	out, err := mutate.Apply(in,
		mutate.RenameBuilding("loft"),
		mutate.SetOpeningWidth("d-main", 1.1),
	)
	require.NoError(t, err)
	require.Equal(t, want, in)
	require.Equal(t, "loft", out.Name)
	require.Equal(t, 1.1, out.Walls[1].Openings[0].Width)
	require.Equal(t, "studio", in.Name)
}

func TestApply_NilBuilding(t *testing.T) {
	_, err := mutate.Apply(nil, mutate.RenameBuilding("x"))
	require.ErrorIs(t, err, mutate.ErrNilBuilding)
}

func TestApply_NilOp(t *testing.T) {
	_, err := mutate.Apply(studio(), nil)
	require.ErrorIs(t, err, mutate.ErrBadOp)
}

func TestApply_ErrorNamesOp(t *testing.T) {
	_, err := mutate.Apply(studio(), mutate.RemoveWall("ghost"))
	require.ErrorIs(t, err, mutate.ErrUnknownEntity)
	require.Contains(t, err.Error(), "remove-wall ghost")
}

// A well-formed op can still produce a broken snapshot; the gate
// rejects it and the input survives untouched.
func TestApply_IntegrityGate(t *testing.T) {
	in := studio()
	want := in.Clone()

	_, err := mutate.Apply(in, mutate.RemoveOpening("d-entry"))
	require.ErrorIs(t, err, model.ErrIntegrity)

	var ierr *model.IntegrityError
	require.ErrorAs(t, err, &ierr)
	require.Equal(t, "dangling entrance door reference", ierr.Invariant)
	require.Equal(t, want, in)
}

func TestAddWall(t *testing.T) {
	opening := []model.Opening{{ID: "d-new", Kind: model.OpeningDoor, Offset: 1, Width: 0.9}}
	w := model.Wall{ID: "w-new", A: geom.Point{X: 0, Y: 4}, B: geom.Point{X: 6, Y: 4}, Floor: 0, Openings: opening}

	out, err := mutate.Apply(studio(), mutate.AddWall(w))
	require.NoError(t, err)
	require.Len(t, out.Walls, 3)
	require.Equal(t, "w-new", out.Walls[2].ID)

	// The snapshot must not alias the caller's openings slice.
	opening[0].Width = 0.1
	require.Equal(t, 0.9, out.Walls[2].Openings[0].Width)

	_, err = mutate.Apply(studio(), mutate.AddWall(model.Wall{Floor: 0}))
	require.ErrorIs(t, err, mutate.ErrBadOp)

	_, err = mutate.Apply(studio(), mutate.AddWall(model.Wall{ID: "w-mid", Floor: 0}))
	require.ErrorIs(t, err, mutate.ErrDuplicateID)

	w.ID = "w-other"
	w.Openings = []model.Opening{{ID: "d-entry", Kind: model.OpeningDoor, Offset: 1, Width: 0.9}}
	_, err = mutate.Apply(studio(), mutate.AddWall(w))
	require.ErrorIs(t, err, mutate.ErrDuplicateID)
}

func TestRemoveWall(t *testing.T) {
	out, err := mutate.Apply(studio(), mutate.RemoveWall("w-mid"))
	require.NoError(t, err)
	require.Len(t, out.Walls, 1)
	require.Equal(t, "w-front", out.Walls[0].ID)

	_, err = mutate.Apply(studio(), mutate.RemoveWall("w-ghost"))
	require.ErrorIs(t, err, mutate.ErrUnknownEntity)
}

func TestMoveWall(t *testing.T) {
	out, err := mutate.Apply(studio(), mutate.MoveWall("w-mid", geom.Point{X: 0.5}, geom.Point{X: 0.5, Y: 1}))
	require.NoError(t, err)
	require.Equal(t, geom.Point{X: 3.5, Y: 0}, out.Walls[1].A)
	require.Equal(t, geom.Point{X: 3.5, Y: 5}, out.Walls[1].B)

	_, err = mutate.Apply(studio(), mutate.MoveWall("w-ghost", geom.Point{}, geom.Point{}))
	require.ErrorIs(t, err, mutate.ErrUnknownEntity)
}

func TestAddOpening(t *testing.T) {
	o := model.Opening{ID: "d-extra", Kind: model.OpeningDoor, Offset: 2.6, Width: 0.8}

	out, err := mutate.Apply(studio(), mutate.AddOpening("w-mid", o))
	require.NoError(t, err)
	require.Len(t, out.Walls[1].Openings, 2)
	require.Equal(t, "d-extra", out.Walls[1].Openings[1].ID)

	_, err = mutate.Apply(studio(), mutate.AddOpening("w-mid", model.Opening{ID: "", Width: 0.8}))
	require.ErrorIs(t, err, mutate.ErrBadOp)

	_, err = mutate.Apply(studio(), mutate.AddOpening("w-mid", model.Opening{ID: "d-x", Width: 0}))
	require.ErrorIs(t, err, mutate.ErrBadOp)

	_, err = mutate.Apply(studio(), mutate.AddOpening("w-ghost", o))
	require.ErrorIs(t, err, mutate.ErrUnknownEntity)

	o.ID = "win-1"
	_, err = mutate.Apply(studio(), mutate.AddOpening("w-mid", o))
	require.ErrorIs(t, err, mutate.ErrDuplicateID)
}

func TestRemoveOpening(t *testing.T) {
	out, err := mutate.Apply(studio(), mutate.RemoveOpening("win-1"))
	require.NoError(t, err)
	require.Len(t, out.Walls[0].Openings, 1)
	require.Equal(t, "d-entry", out.Walls[0].Openings[0].ID)

	_, err = mutate.Apply(studio(), mutate.RemoveOpening("win-9"))
	require.ErrorIs(t, err, mutate.ErrUnknownEntity)
}

func TestSetOpeningWidth(t *testing.T) {
	out, err := mutate.Apply(studio(), mutate.SetOpeningWidth("d-entry", 1.05))
	require.NoError(t, err)
	require.Equal(t, 1.05, out.Walls[0].Openings[0].Width)
	require.Equal(t, 1.0, out.Walls[0].Openings[0].Offset)

	_, err = mutate.Apply(studio(), mutate.SetOpeningWidth("d-entry", 0))
	require.ErrorIs(t, err, mutate.ErrBadOp)

	_, err = mutate.Apply(studio(), mutate.SetOpeningWidth("d-ghost", 1))
	require.ErrorIs(t, err, mutate.ErrUnknownEntity)
}

func TestAddRoom(t *testing.T) {
	r := model.Room{ID: "annex", Boundary: rect(6, 0, 8, 4), Type: model.RoomStorage, Floor: 0}

	out, err := mutate.Apply(studio(), mutate.AddRoom(r))
	require.NoError(t, err)
	require.Len(t, out.Rooms, 3)
	require.Equal(t, "annex", out.Rooms[2].ID)

	_, err = mutate.Apply(studio(), mutate.AddRoom(model.Room{Floor: 0}))
	require.ErrorIs(t, err, mutate.ErrBadOp)

	r.ID = "hall"
	_, err = mutate.Apply(studio(), mutate.AddRoom(r))
	require.ErrorIs(t, err, mutate.ErrDuplicateID)
}

func TestRemoveRoom(t *testing.T) {
	out, err := mutate.Apply(studio(), mutate.RemoveRoom("main"))
	require.NoError(t, err)
	require.Len(t, out.Rooms, 1)
	require.Equal(t, []string{"hall"}, out.Apartments[0].RoomIDs)

	_, err = mutate.Apply(studio(), mutate.RemoveRoom("attic"))
	require.ErrorIs(t, err, mutate.ErrUnknownEntity)
}

func TestSetRoomType(t *testing.T) {
	out, err := mutate.Apply(studio(), mutate.SetRoomType("main", model.RoomBedroom))
	require.NoError(t, err)
	require.Equal(t, model.RoomBedroom, out.Rooms[1].Type)

	_, err = mutate.Apply(studio(), mutate.SetRoomType("attic", model.RoomBedroom))
	require.ErrorIs(t, err, mutate.ErrUnknownEntity)
}

func TestAssignRoom(t *testing.T) {
	out, err := mutate.Apply(pair(), mutate.AssignRoom("main-a", "apt-b"))
	require.NoError(t, err)
	require.Equal(t, []string{"hall-a"}, out.Apartments[0].RoomIDs)
	require.Equal(t, []string{"hall-b", "main-b", "main-a"}, out.Apartments[1].RoomIDs)

	out, err = mutate.Apply(pair(), mutate.AssignRoom("main-a", ""))
	require.NoError(t, err)
	require.Equal(t, []string{"hall-a"}, out.Apartments[0].RoomIDs)
	require.Equal(t, []string{"hall-b", "main-b"}, out.Apartments[1].RoomIDs)

	_, err = mutate.Apply(pair(), mutate.AssignRoom("attic", "apt-b"))
	require.ErrorIs(t, err, mutate.ErrUnknownEntity)

	_, err = mutate.Apply(pair(), mutate.AssignRoom("main-a", "apt-z"))
	require.ErrorIs(t, err, mutate.ErrUnknownEntity)
	require.Contains(t, err.Error(), "apartment")
}

func TestAddSlab(t *testing.T) {
	s := model.Slab{ID: "s-deck", Outline: rect(6, 0, 8, 4), Floor: 0}

	out, err := mutate.Apply(studio(), mutate.AddSlab(s))
	require.NoError(t, err)
	require.Len(t, out.Slabs, 2)

	_, err = mutate.Apply(studio(), mutate.AddSlab(model.Slab{Floor: 0}))
	require.ErrorIs(t, err, mutate.ErrBadOp)

	s.ID = "s-0"
	_, err = mutate.Apply(studio(), mutate.AddSlab(s))
	require.ErrorIs(t, err, mutate.ErrDuplicateID)
}

func TestAddShaft(t *testing.T) {
	s := model.Shaft{ID: "lift", Kind: model.ShaftElevator, Footprint: rect(5, 3, 6, 4), FloorLo: 0, FloorHi: 0}

	out, err := mutate.Apply(studio(), mutate.AddShaft(s))
	require.NoError(t, err)
	require.Len(t, out.Shafts, 1)
	require.Equal(t, "lift", out.Shafts[0].ID)

	_, err = mutate.Apply(studio(), mutate.AddShaft(model.Shaft{FloorLo: 0, FloorHi: 0}))
	require.ErrorIs(t, err, mutate.ErrBadOp)

	s.ID = "w-mid"
	_, err = mutate.Apply(studio(), mutate.AddShaft(s))
	require.ErrorIs(t, err, mutate.ErrDuplicateID)
}

func TestRenameBuilding(t *testing.T) {
	out, err := mutate.Apply(studio(), mutate.RenameBuilding(""))
	require.NoError(t, err)
	require.Equal(t, "", out.Name)
}

func TestOpNames(t *testing.T) {
	require.Equal(t, "add-wall w-9", mutate.AddWall(model.Wall{ID: "w-9"}).Name())
	require.Equal(t, "set-opening-width d-1", mutate.SetOpeningWidth("d-1", 1).Name())
	require.Equal(t, "assign-room main", mutate.AssignRoom("main", "apt-1").Name())
	require.Equal(t, "rename-building", mutate.RenameBuilding("x").Name())
}
