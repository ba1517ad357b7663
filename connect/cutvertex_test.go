package connect_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvlplan/connect"
	"github.com/katalvlaran/lvlplan/model"
)

func TestIsCutVertex(t *testing.T) {
	g, err := connect.Build(fixture())
	require.NoError(t, err)

	cases := []struct {
		id   string
		want bool
	}{
		{"hall", true},     // the only way in from outside
		{"stairs#0", true}, // the only way up
		{"stairs#1", true}, // the only way into bed-1
		{"kitchen", false},
		{"bed-1", false},
		{"outside", false},
	}
	for _, tc := range cases {
		got, err := connect.IsCutVertex(g, tc.id)
		require.NoError(t, err)
		require.Equal(t, tc.want, got, "IsCutVertex(%s)", tc.id)
	}
}

func TestIsCutVertex_ParallelDoors(t *testing.T) {
	b := fixture()
	b.Walls[1].Openings = append(b.Walls[1].Openings,
		model.Opening{ID: "d-kitchen-2", Offset: 2.5, Width: 0.9, Kind: model.OpeningDoor})

	g, err := connect.Build(b)
	require.NoError(t, err)

	// Two parallel edges raise the degree but both lead to the hall, so
	// the kitchen still separates nothing.
	require.Equal(t, 2, g.Degree("kitchen"))
	got, err := connect.IsCutVertex(g, "kitchen")
	require.NoError(t, err)
	require.False(t, got)
}

func TestIsCutVertex_Errors(t *testing.T) {
	_, err := connect.IsCutVertex(nil, "hall")
	require.ErrorIs(t, err, connect.ErrGraphNil)

	g, err := connect.Build(fixture())
	require.NoError(t, err)

	_, err = connect.IsCutVertex(g, "attic")
	require.ErrorIs(t, err, connect.ErrNodeNotFound)
}

func TestCutIsolates(t *testing.T) {
	g, err := connect.Build(fixture())
	require.NoError(t, err)

	// Without the hall everything indoors is stranded; only room nodes
	// are reported, in baseline sweep order.
	lost, err := connect.CutIsolates(g, "hall")
	require.NoError(t, err)
	require.Equal(t, []string{"kitchen", "bed-1"}, lost)

	// Without the ground landing only the upper floor is stranded.
	lost, err = connect.CutIsolates(g, "stairs#0")
	require.NoError(t, err)
	require.Equal(t, []string{"bed-1"}, lost)

	// The kitchen is a leaf; removing it strands nobody.
	lost, err = connect.CutIsolates(g, "kitchen")
	require.NoError(t, err)
	require.Empty(t, lost)
}

func TestCutIsolates_Errors(t *testing.T) {
	_, err := connect.CutIsolates(nil, "hall")
	require.ErrorIs(t, err, connect.ErrGraphNil)

	g, err := connect.Build(fixture())
	require.NoError(t, err)

	_, err = connect.CutIsolates(g, "attic")
	require.ErrorIs(t, err, connect.ErrNodeNotFound)
}
