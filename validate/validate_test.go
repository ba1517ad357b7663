package validate_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvlplan/connect"
	"github.com/katalvlaran/lvlplan/geom"
	"github.com/katalvlaran/lvlplan/model"
	"github.com/katalvlaran/lvlplan/rules"
	"github.com/katalvlaran/lvlplan/validate"
)

func rect(x0, y0, x1, y1 float64) geom.Polygon {
	return geom.Polygon{{X: x0, Y: y0}, {X: x1, Y: y0}, {X: x1, Y: y1}, {X: x0, Y: y1}}
}

// flat is a one-floor apartment strip with planted defects: a narrow
// entrance door (error), an undersized living room (warning) and an
// oversized hall (optimization). The kitchen is also the only route to
// the living room, which adds a walk-through warning.
func flat() *model.Building {
	return &model.Building{
		Name:           "flat",
		EntranceDoorID: "d-entry",
		Floors:         []model.Floor{{Index: 0, Height: 2.7}},
		Slabs:          []model.Slab{{ID: "s-0", Outline: rect(0, 0, 13, 3), Floor: 0}},
		Rooms: []model.Room{
			{ID: "hall", Boundary: rect(0, 0, 3, 3), Type: model.RoomEntranceHall, Floor: 0},
			{ID: "kitchen", Boundary: rect(3, 0, 6, 3), Type: model.RoomKitchen, Floor: 0},
			{ID: "living", Boundary: rect(6, 0, 10, 3), Type: model.RoomLiving, Floor: 0},
			{ID: "bath", Boundary: rect(10, 0, 13, 3), Type: model.RoomBathroom, Floor: 0},
		},
		Walls: []model.Wall{
			{ID: "w-s", A: geom.Point{X: 0, Y: 0}, B: geom.Point{X: 3, Y: 0}, Floor: 0,
				Openings: []model.Opening{{ID: "d-entry", Kind: model.OpeningDoor, Offset: 1, Width: 0.85}}},
			{ID: "w-hk", A: geom.Point{X: 3, Y: 0}, B: geom.Point{X: 3, Y: 3}, Floor: 0,
				Openings: []model.Opening{{ID: "d-k", Kind: model.OpeningDoor, Offset: 1.05, Width: 0.9}}},
			{ID: "w-kl", A: geom.Point{X: 6, Y: 0}, B: geom.Point{X: 6, Y: 3}, Floor: 0,
				Openings: []model.Opening{{ID: "d-l", Kind: model.OpeningDoor, Offset: 1.05, Width: 0.9}}},
			{ID: "w-lb", A: geom.Point{X: 10, Y: 0}, B: geom.Point{X: 10, Y: 3}, Floor: 0,
				Openings: []model.Opening{{ID: "d-b", Kind: model.OpeningDoor, Offset: 1.05, Width: 0.9}}},
		},
		Apartments: []model.Apartment{{
			ID: "apt-1", Floor: 0, EntranceDoorID: "d-entry",
			RoomIDs: []string{"hall", "kitchen", "living", "bath"},
		}},
	}
}

// tower is a two-storey stub served by one staircase: entrance hall
// below, a storage room above. Escape distance from the upper room is
// dominated by the stair penalty.
func tower() *model.Building {
	return &model.Building{
		Name:           "tower",
		EntranceDoorID: "d-e",
		Floors:         []model.Floor{{Index: 0, Height: 2.7}, {Index: 1, Height: 2.7}},
		Slabs: []model.Slab{
			{ID: "s-0", Outline: rect(0, 0, 3, 8), Floor: 0},
			{ID: "s-1", Outline: rect(0, 0, 3, 8), Floor: 1},
		},
		Shafts: []model.Shaft{
			{ID: "stairs", Kind: model.ShaftStair, Footprint: rect(0, 3, 2, 5), FloorLo: 0, FloorHi: 1},
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

func TestValidate_NilBuilding(t *testing.T) {
	rep, err := validate.Validate(nil)
	require.Nil(t, rep)
	require.ErrorIs(t, err, validate.ErrNilBuilding)
}

func TestValidate_OptionViolation(t *testing.T) {
	_, err := validate.Validate(flat(), validate.WithParallel(0))
	require.ErrorIs(t, err, validate.ErrOptionViolation)

	_, err = validate.Validate(flat(), validate.WithRules(nil))
	require.ErrorIs(t, err, validate.ErrOptionViolation)

	// Graph options forward as-is, including their violations.
	_, err = validate.Validate(flat(), validate.WithStairPenalty(-1))
	require.ErrorIs(t, err, connect.ErrOptionViolation)
}

func TestValidate_IntegrityFatal(t *testing.T) {
	b := flat()
	b.Apartments[0].RoomIDs = append(b.Apartments[0].RoomIDs, "ghost")

	rep, err := validate.Validate(b)
	require.Nil(t, rep)
	require.ErrorIs(t, err, model.ErrIntegrity)

	var ie *model.IntegrityError
	require.ErrorAs(t, err, &ie)
}

func TestValidate_Report(t *testing.T) {
	rep, err := validate.Validate(flat())
	require.NoError(t, err)
	require.True(t, rep.HasErrors())
	require.Equal(t, 1, rep.Errors)
	require.Equal(t, 2, rep.Warnings)
	require.Equal(t, 1, rep.Optimizations)

	var codes []string
	for _, is := range rep.Issues {
		codes = append(codes, is.Code)
	}
	require.Equal(t, []string{
		rules.CodeDoorTooNarrow,
		rules.CodeSmallRoom,
		rules.CodeWalkThroughRoom,
		rules.CodeOversizedHall,
	}, codes)

	small := rep.ByCode(rules.CodeSmallRoom)
	require.Len(t, small, 1)
	require.Equal(t, []string{"living"}, small[0].Entities)
}

func TestValidate_Deterministic(t *testing.T) {
	first, err := validate.Validate(flat())
	require.NoError(t, err)
	second, err := validate.Validate(flat())
	require.NoError(t, err)
	require.Equal(t, first, second)

	// Parallel execution may reorder completion, never the report.
	parallel, err := validate.Validate(flat(), validate.WithParallel(8))
	require.NoError(t, err)
	require.Equal(t, first, parallel)
}

func stub(name string, is ...rules.Issue) rules.Rule {
	return rules.Rule{Name: name, Check: func(*rules.Input) []rules.Issue { return is }}
}

func TestValidate_DedupAndOrder(t *testing.T) {
	rs := []rules.Rule{
		stub("first", rules.Issue{Severity: rules.SeverityWarning, Code: "twin",
			Message: "from first", Entities: []string{"a", "b"}, Confidence: 1}),
		stub("loud", rules.Issue{Severity: rules.SeverityError, Code: "boom",
			Message: "boom", Entities: []string{"z"}, Confidence: 1}),
		stub("echo", rules.Issue{Severity: rules.SeverityWarning, Code: "twin",
			Message: "from echo", Entities: []string{"b", "a"}, Confidence: 1}),
	}
	rep, err := validate.Validate(flat(), validate.WithRules(rs))
	require.NoError(t, err)

	// The echo's finding names the same code and entity set as the
	// first rule's, just in another order: one survives, the earliest.
	require.Len(t, rep.Issues, 2)
	require.Equal(t, "boom", rep.Issues[0].Code)
	require.Equal(t, "twin", rep.Issues[1].Code)
	require.Equal(t, "from first", rep.Issues[1].Message)
	require.Equal(t, []string{"a", "b"}, rep.Issues[1].Entities)
	require.Equal(t, 1, rep.Errors)
	require.Equal(t, 1, rep.Warnings)
}

func TestValidate_PenaltyForwarded(t *testing.T) {
	rep, err := validate.Validate(tower())
	require.NoError(t, err)
	require.Empty(t, rep.ByCode(rules.CodeEscapeDistance))

	// At 30 m per storey the upper room's escape path blows the limit.
	rep, err = validate.Validate(tower(), validate.WithStairPenalty(30))
	require.NoError(t, err)
	far := rep.ByCode(rules.CodeEscapeDistance)
	require.Len(t, far, 1)
	require.Equal(t, []string{"up-1"}, far[0].Entities)
}
