// SPDX-License-Identifier: MIT

package snapshot

import (
	"fmt"

	"github.com/katalvlaran/lvlplan/geom"
	"github.com/katalvlaran/lvlplan/model"
)

// Wire DTOs. The field names below are the on-disk contract: they only
// ever get appended, never renamed.

type wirePoint struct {
	X float64 `json:"x" yaml:"x"`
	Y float64 `json:"y" yaml:"y"`
}

type wireOpening struct {
	ID     string  `json:"id" yaml:"id"`
	Offset float64 `json:"offset" yaml:"offset"`
	Width  float64 `json:"width" yaml:"width"`
	Kind   string  `json:"kind" yaml:"kind"`
}

type wireWall struct {
	ID        string        `json:"id" yaml:"id"`
	A         wirePoint     `json:"a" yaml:"a"`
	B         wirePoint     `json:"b" yaml:"b"`
	Thickness float64       `json:"thickness,omitempty" yaml:"thickness,omitempty"`
	Height    float64       `json:"height,omitempty" yaml:"height,omitempty"`
	Floor     int           `json:"floor" yaml:"floor"`
	Kind      string        `json:"kind" yaml:"kind"`
	Openings  []wireOpening `json:"openings,omitempty" yaml:"openings,omitempty"`
}

type wireSlab struct {
	ID        string      `json:"id" yaml:"id"`
	Outline   []wirePoint `json:"outline" yaml:"outline"`
	Floor     int         `json:"floor" yaml:"floor"`
	Thickness float64     `json:"thickness,omitempty" yaml:"thickness,omitempty"`
}

type wireRoom struct {
	ID       string      `json:"id" yaml:"id"`
	Boundary []wirePoint `json:"boundary" yaml:"boundary"`
	Type     string      `json:"type" yaml:"type"`
	Floor    int         `json:"floor" yaml:"floor"`
}

type wireApartment struct {
	ID             string   `json:"id" yaml:"id"`
	Floor          int      `json:"floor" yaml:"floor"`
	RoomIDs        []string `json:"room_ids" yaml:"room_ids"`
	EntranceDoorID string   `json:"entrance_door_id" yaml:"entrance_door_id"`
}

type wireShaft struct {
	ID        string      `json:"id" yaml:"id"`
	Kind      string      `json:"kind" yaml:"kind"`
	Footprint []wirePoint `json:"footprint" yaml:"footprint"`
	FloorLo   int         `json:"floor_lo" yaml:"floor_lo"`
	FloorHi   int         `json:"floor_hi" yaml:"floor_hi"`
}

type wireFloor struct {
	Index  int     `json:"index" yaml:"index"`
	Height float64 `json:"height" yaml:"height"`
}

type wireBuilding struct {
	Name           string          `json:"name,omitempty" yaml:"name,omitempty"`
	Floors         []wireFloor     `json:"floors" yaml:"floors"`
	Walls          []wireWall      `json:"walls,omitempty" yaml:"walls,omitempty"`
	Slabs          []wireSlab      `json:"slabs,omitempty" yaml:"slabs,omitempty"`
	Rooms          []wireRoom      `json:"rooms,omitempty" yaml:"rooms,omitempty"`
	Apartments     []wireApartment `json:"apartments,omitempty" yaml:"apartments,omitempty"`
	Shafts         []wireShaft     `json:"shafts,omitempty" yaml:"shafts,omitempty"`
	EntranceDoorID string          `json:"entrance_door_id,omitempty" yaml:"entrance_door_id,omitempty"`
}

func toWirePoints(p geom.Polygon) []wirePoint {
	if len(p) == 0 {
		return nil
	}
	out := make([]wirePoint, len(p))
	for i, v := range p {
		out[i] = wirePoint{X: v.X, Y: v.Y}
	}
	return out
}

func fromWirePoints(ps []wirePoint) geom.Polygon {
	if len(ps) == 0 {
		return nil
	}
	out := make(geom.Polygon, len(ps))
	for i, v := range ps {
		out[i] = geom.Point{X: v.X, Y: v.Y}
	}
	return out
}

// toWire flattens a model snapshot into its wire form.
func toWire(b *model.Building) *wireBuilding {
	w := &wireBuilding{
		Name:           b.Name,
		EntranceDoorID: b.EntranceDoorID,
	}
	for _, f := range b.Floors {
		w.Floors = append(w.Floors, wireFloor{Index: f.Index, Height: f.Height})
	}
	for i := range b.Walls {
		src := &b.Walls[i]
		wall := wireWall{
			ID:        src.ID,
			A:         wirePoint{X: src.A.X, Y: src.A.Y},
			B:         wirePoint{X: src.B.X, Y: src.B.Y},
			Thickness: src.Thickness,
			Height:    src.Height,
			Floor:     src.Floor,
			Kind:      src.Kind.String(),
		}
		for _, o := range src.Openings {
			wall.Openings = append(wall.Openings, wireOpening{
				ID: o.ID, Offset: o.Offset, Width: o.Width, Kind: o.Kind.String(),
			})
		}
		w.Walls = append(w.Walls, wall)
	}
	for i := range b.Slabs {
		src := &b.Slabs[i]
		w.Slabs = append(w.Slabs, wireSlab{
			ID: src.ID, Outline: toWirePoints(src.Outline), Floor: src.Floor, Thickness: src.Thickness,
		})
	}
	for i := range b.Rooms {
		src := &b.Rooms[i]
		w.Rooms = append(w.Rooms, wireRoom{
			ID: src.ID, Boundary: toWirePoints(src.Boundary), Type: src.Type.String(), Floor: src.Floor,
		})
	}
	for i := range b.Apartments {
		src := &b.Apartments[i]
		w.Apartments = append(w.Apartments, wireApartment{
			ID: src.ID, Floor: src.Floor,
			RoomIDs:        append([]string(nil), src.RoomIDs...),
			EntranceDoorID: src.EntranceDoorID,
		})
	}
	for i := range b.Shafts {
		src := &b.Shafts[i]
		w.Shafts = append(w.Shafts, wireShaft{
			ID: src.ID, Kind: src.Kind.String(), Footprint: toWirePoints(src.Footprint),
			FloorLo: src.FloorLo, FloorHi: src.FloorHi,
		})
	}
	return w
}

// fromWire rebuilds a model snapshot, mapping enum strings through the
// model parsers. Errors carry the field path of the offending value.
func fromWire(w *wireBuilding) (*model.Building, error) {
	b := &model.Building{
		Name:           w.Name,
		EntranceDoorID: w.EntranceDoorID,
	}
	for _, f := range w.Floors {
		b.Floors = append(b.Floors, model.Floor{Index: f.Index, Height: f.Height})
	}
	for i, src := range w.Walls {
		kind, err := model.ParseWallKind(src.Kind)
		if err != nil {
			return nil, fmt.Errorf("%w: walls[%d]: %w", ErrBadSnapshot, i, err)
		}
		wall := model.Wall{
			ID:        src.ID,
			A:         geom.Point{X: src.A.X, Y: src.A.Y},
			B:         geom.Point{X: src.B.X, Y: src.B.Y},
			Thickness: src.Thickness,
			Height:    src.Height,
			Floor:     src.Floor,
			Kind:      kind,
		}
		for j, o := range src.Openings {
			oKind, err := model.ParseOpeningKind(o.Kind)
			if err != nil {
				return nil, fmt.Errorf("%w: walls[%d].openings[%d]: %w", ErrBadSnapshot, i, j, err)
			}
			wall.Openings = append(wall.Openings, model.Opening{
				ID: o.ID, Offset: o.Offset, Width: o.Width, Kind: oKind,
			})
		}
		b.Walls = append(b.Walls, wall)
	}
	for _, src := range w.Slabs {
		b.Slabs = append(b.Slabs, model.Slab{
			ID: src.ID, Outline: fromWirePoints(src.Outline), Floor: src.Floor, Thickness: src.Thickness,
		})
	}
	for i, src := range w.Rooms {
		rt, err := model.ParseRoomType(src.Type)
		if err != nil {
			return nil, fmt.Errorf("%w: rooms[%d]: %w", ErrBadSnapshot, i, err)
		}
		b.Rooms = append(b.Rooms, model.Room{
			ID: src.ID, Boundary: fromWirePoints(src.Boundary), Type: rt, Floor: src.Floor,
		})
	}
	for _, src := range w.Apartments {
		b.Apartments = append(b.Apartments, model.Apartment{
			ID: src.ID, Floor: src.Floor,
			RoomIDs:        append([]string(nil), src.RoomIDs...),
			EntranceDoorID: src.EntranceDoorID,
		})
	}
	for i, src := range w.Shafts {
		kind, err := model.ParseShaftKind(src.Kind)
		if err != nil {
			return nil, fmt.Errorf("%w: shafts[%d]: %w", ErrBadSnapshot, i, err)
		}
		b.Shafts = append(b.Shafts, model.Shaft{
			ID: src.ID, Kind: kind, Footprint: fromWirePoints(src.Footprint),
			FloorLo: src.FloorLo, FloorHi: src.FloorHi,
		})
	}
	return b, nil
}
