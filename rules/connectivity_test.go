package rules_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvlplan/geom"
	"github.com/katalvlaran/lvlplan/model"
	"github.com/katalvlaran/lvlplan/rules"
)

func TestUnreachableSpace(t *testing.T) {
	b := cleanBuilding()
	b.Rooms = append(b.Rooms,
		model.Room{ID: "cell", Boundary: rect(20, 0, 23, 3), Type: model.RoomStorage, Floor: 0},
		model.Room{ID: "spur", Boundary: rect(30, 0, 33, 3), Type: model.RoomCorridor, Floor: 0},
		model.Room{ID: "dot", Boundary: geom.Polygon{{X: 40, Y: 0}, {X: 41, Y: 0}}, Type: model.RoomOther, Floor: 0},
	)
	got := runRule(t, "unreachable-space", input(t, b))

	// Unlike isolated-room, circulation gets no pass here: a corridor
	// nobody can enter is still unreachable.
	require.Len(t, got, 3)
	for _, is := range got {
		require.Equal(t, rules.CodeUnreachableSpace, is.Code)
		require.Equal(t, rules.SeverityError, is.Severity)
	}
	require.Equal(t, []string{"cell"}, got[0].Entities)
	require.Equal(t, 1.0, got[0].Confidence)
	require.Equal(t, []string{"spur"}, got[1].Entities)
	require.Equal(t, 1.0, got[1].Confidence)
	require.Equal(t, []string{"dot"}, got[2].Entities)
	require.Equal(t, 0.5, got[2].Confidence)
}

// corridorWing grafts a corridor-served den onto the clean plan. With
// redundant set to true a second corridor runs alongside, giving the
// den an alternate route.
func corridorWing(redundant bool) *model.Building {
	b := cleanBuilding()
	b.Rooms = append(b.Rooms,
		model.Room{ID: "corr", Boundary: rect(10.5, 3.8, 13.5, 5), Type: model.RoomCorridor, Floor: 0},
		model.Room{ID: "den", Boundary: rect(13.5, 0, 16, 6), Type: model.RoomStorage, Floor: 0},
	)
	b.Walls = append(b.Walls,
		model.Wall{ID: "w-mc", A: geom.Point{X: 10.5, Y: 3.8}, B: geom.Point{X: 10.5, Y: 5}, Floor: 0,
			Openings: []model.Opening{{ID: "d-mc", Kind: model.OpeningDoor, Offset: 0.15, Width: 0.9}}},
		model.Wall{ID: "w-cd", A: geom.Point{X: 13.5, Y: 3.8}, B: geom.Point{X: 13.5, Y: 5}, Floor: 0,
			Openings: []model.Opening{{ID: "d-den", Kind: model.OpeningDoor, Offset: 0.15, Width: 0.9}}},
	)
	if redundant {
		b.Rooms = append(b.Rooms,
			model.Room{ID: "corr2", Boundary: rect(10.5, 0, 13.5, 1.2), Type: model.RoomCorridor, Floor: 0},
		)
		b.Walls = append(b.Walls,
			model.Wall{ID: "w-mc2", A: geom.Point{X: 10.5, Y: 0}, B: geom.Point{X: 10.5, Y: 1.2}, Floor: 0,
				Openings: []model.Opening{{ID: "d-mc2", Kind: model.OpeningDoor, Offset: 0.15, Width: 0.9}}},
			model.Wall{ID: "w-cd2", A: geom.Point{X: 13.5, Y: 0}, B: geom.Point{X: 13.5, Y: 1.2}, Floor: 0,
				Openings: []model.Opening{{ID: "d-den2", Kind: model.OpeningDoor, Offset: 0.15, Width: 0.9}}},
		)
	}
	return b
}

func TestDeadEndCorridor(t *testing.T) {
	got := runRule(t, "dead-end-corridor", input(t, corridorWing(false)))

	require.Len(t, got, 1)
	require.Equal(t, rules.CodeDeadEndCorridor, got[0].Code)
	require.Equal(t, rules.SeverityOptimization, got[0].Severity)
	require.Equal(t, []string{"corr", "den"}, got[0].Entities)
	require.Equal(t, 1.0, got[0].Actual)
}

func TestDeadEndCorridor_RedundantRoute(t *testing.T) {
	require.Empty(t, runRule(t, "dead-end-corridor", input(t, corridorWing(true))))
}
