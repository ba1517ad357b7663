// SPDX-License-Identifier: MIT

package model_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvlplan/geom"
	"github.com/katalvlaran/lvlplan/model"
)

func TestRoomType_RoundTrip(t *testing.T) {
	for _, s := range []string{
		"kitchen", "living", "bedroom", "bathroom", "wc",
		"entrance-hall", "storage", "corridor", "staircase-landing", "other",
	} {
		rt, err := model.ParseRoomType(s)
		require.NoError(t, err)
		require.Equal(t, s, rt.String())
	}

	_, err := model.ParseRoomType("ballroom")
	require.ErrorIs(t, err, model.ErrEnumValue)
}

func TestRoomType_Classes(t *testing.T) {
	require.True(t, model.RoomKitchen.Habitable())
	require.True(t, model.RoomBedroom.Habitable())
	require.False(t, model.RoomBathroom.Habitable())
	require.False(t, model.RoomCorridor.Habitable())

	require.True(t, model.RoomCorridor.Circulation())
	require.True(t, model.RoomLanding.Circulation())
	require.False(t, model.RoomLiving.Circulation())
}

func TestEnums_RoundTrip(t *testing.T) {
	wk, err := model.ParseWallKind("load-bearing")
	require.NoError(t, err)
	require.Equal(t, model.WallBearing, wk)

	ok, err := model.ParseOpeningKind("window")
	require.NoError(t, err)
	require.Equal(t, model.OpeningWindow, ok)

	sk, err := model.ParseShaftKind("elevator")
	require.NoError(t, err)
	require.Equal(t, model.ShaftElevator, sk)

	_, err = model.ParseWallKind("wattle")
	require.ErrorIs(t, err, model.ErrEnumValue)
}

func TestWall_OpeningSpan(t *testing.T) {
	w := model.Wall{
		ID: "w1", A: geom.Point{X: 0, Y: 0}, B: geom.Point{X: 5, Y: 0},
		Openings: []model.Opening{{ID: "d1", Offset: 1.0, Width: 0.9, Kind: model.OpeningDoor}},
	}
	span := w.OpeningSpan(w.Openings[0])
	require.InDelta(t, 1.0, span.A.X, 1e-9)
	require.InDelta(t, 1.9, span.B.X, 1e-9)
	require.InDelta(t, 0.9, span.Len(), 1e-9)

	// Degenerate wall: the span collapses instead of dividing by zero.
	wz := model.Wall{ID: "wz", A: geom.Point{X: 2, Y: 2}, B: geom.Point{X: 2, Y: 2},
		Openings: []model.Opening{{ID: "dz", Offset: 0, Width: 1}}}
	span = wz.OpeningSpan(wz.Openings[0])
	require.True(t, span.Degenerate())
}

func TestShaft_Spans(t *testing.T) {
	s := model.Shaft{ID: "core", FloorLo: 1, FloorHi: 3}
	require.False(t, s.Spans(0))
	require.True(t, s.Spans(1))
	require.True(t, s.Spans(3))
	require.False(t, s.Spans(4))
}

func TestBuilding_Clone(t *testing.T) {
	b := fixture()
	c := b.Clone()

	// Mutating the clone leaves the original snapshot untouched.
	c.Walls[0].Openings[0].Width = 2.22
	c.Rooms[0].Boundary[0] = geom.Point{X: 99, Y: 99}
	c.Apartments[0].RoomIDs[0] = "swapped"
	c.Name = "clone"

	require.Equal(t, 1.0, b.Walls[0].Openings[0].Width)
	require.Equal(t, geom.Point{X: 0, Y: 0}, b.Rooms[0].Boundary[0])
	require.Equal(t, "hall", b.Apartments[0].RoomIDs[0])
	require.Equal(t, "fixture", b.Name)

	require.Nil(t, (*model.Building)(nil).Clone())
}
