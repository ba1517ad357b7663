// SPDX-License-Identifier: MIT

package mutate

import (
	"fmt"

	"github.com/katalvlaran/lvlplan/geom"
	"github.com/katalvlaran/lvlplan/model"
)

// AddWall appends a wall. The wall id and every opening id on it must
// be unused anywhere in the snapshot.
func AddWall(w model.Wall) Op {
	return op{name: "add-wall " + w.ID, fn: func(b *model.Building) error {
		if w.ID == "" {
			return fmt.Errorf("%w: empty wall id", ErrBadOp)
		}
		ids := knownIDs(b)
		if ids[w.ID] {
			return fmt.Errorf("%w: wall %q", ErrDuplicateID, w.ID)
		}
		for _, o := range w.Openings {
			if ids[o.ID] {
				return fmt.Errorf("%w: opening %q", ErrDuplicateID, o.ID)
			}
		}
		// The snapshot owns its nested slices; never alias the caller's.
		w := w
		w.Openings = append([]model.Opening(nil), w.Openings...)
		b.Walls = append(b.Walls, w)
		return nil
	}}
}

// RemoveWall drops the wall together with its openings. Dangling
// entrance door references are left for the integrity gate to report.
func RemoveWall(id string) Op {
	return op{name: "remove-wall " + id, fn: func(b *model.Building) error {
		for i := range b.Walls {
			if b.Walls[i].ID == id {
				b.Walls = append(b.Walls[:i], b.Walls[i+1:]...)
				return nil
			}
		}
		return fmt.Errorf("%w: wall %q", ErrUnknownEntity, id)
	}}
}

// MoveWall translates the wall endpoints by dA and dB in meters. The
// deltas are independent, so a wall can be stretched as well as shifted.
func MoveWall(id string, dA, dB geom.Point) Op {
	return op{name: "move-wall " + id, fn: func(b *model.Building) error {
		w, err := findWall(b, id)
		if err != nil {
			return err
		}
		w.A = w.A.Add(dA)
		w.B = w.B.Add(dB)
		return nil
	}}
}

// AddOpening cuts a new door or window into the named wall. The
// opening id must be unused and the width positive; whether the span
// fits the wall is a rule concern.
func AddOpening(wallID string, o model.Opening) Op {
	return op{name: "add-opening " + o.ID, fn: func(b *model.Building) error {
		if o.ID == "" {
			return fmt.Errorf("%w: empty opening id", ErrBadOp)
		}
		if o.Width <= 0 {
			return fmt.Errorf("%w: opening width must be positive", ErrBadOp)
		}
		w, err := findWall(b, wallID)
		if err != nil {
			return err
		}
		if knownIDs(b)[o.ID] {
			return fmt.Errorf("%w: opening %q", ErrDuplicateID, o.ID)
		}
		w.Openings = append(w.Openings, o)
		return nil
	}}
}

// RemoveOpening deletes the opening from its host wall.
func RemoveOpening(id string) Op {
	return op{name: "remove-opening " + id, fn: func(b *model.Building) error {
		w, j, err := findOpening(b, id)
		if err != nil {
			return err
		}
		w.Openings = append(w.Openings[:j], w.Openings[j+1:]...)
		return nil
	}}
}

// SetOpeningWidth resizes an opening in place, keeping its offset.
func SetOpeningWidth(id string, width float64) Op {
	return op{name: "set-opening-width " + id, fn: func(b *model.Building) error {
		if width <= 0 {
			return fmt.Errorf("%w: opening width must be positive", ErrBadOp)
		}
		w, j, err := findOpening(b, id)
		if err != nil {
			return err
		}
		w.Openings[j].Width = width
		return nil
	}}
}

// AddRoom appends a room. The room starts unassigned; use AssignRoom
// to place it into an apartment.
func AddRoom(r model.Room) Op {
	return op{name: "add-room " + r.ID, fn: func(b *model.Building) error {
		if r.ID == "" {
			return fmt.Errorf("%w: empty room id", ErrBadOp)
		}
		if knownIDs(b)[r.ID] {
			return fmt.Errorf("%w: room %q", ErrDuplicateID, r.ID)
		}
		r := r
		r.Boundary = append(geom.Polygon(nil), r.Boundary...)
		b.Rooms = append(b.Rooms, r)
		return nil
	}}
}

// RemoveRoom drops the room and unassigns it from its apartment, if
// any.
func RemoveRoom(id string) Op {
	return op{name: "remove-room " + id, fn: func(b *model.Building) error {
		for i := range b.Rooms {
			if b.Rooms[i].ID == id {
				b.Rooms = append(b.Rooms[:i], b.Rooms[i+1:]...)
				unassignRoom(b, id)
				return nil
			}
		}
		return fmt.Errorf("%w: room %q", ErrUnknownEntity, id)
	}}
}

// SetRoomType changes the room's designation.
func SetRoomType(id string, t model.RoomType) Op {
	return op{name: "set-room-type " + id, fn: func(b *model.Building) error {
		r, err := findRoom(b, id)
		if err != nil {
			return err
		}
		r.Type = t
		return nil
	}}
}

// AssignRoom moves the room into the named apartment, removing it from
// whichever apartment held it before. An empty apartment id just
// unassigns the room.
func AssignRoom(roomID, apartmentID string) Op {
	return op{name: "assign-room " + roomID, fn: func(b *model.Building) error {
		if _, err := findRoom(b, roomID); err != nil {
			return err
		}
		var apt *model.Apartment
		if apartmentID != "" {
			for i := range b.Apartments {
				if b.Apartments[i].ID == apartmentID {
					apt = &b.Apartments[i]
					break
				}
			}
			if apt == nil {
				return fmt.Errorf("%w: apartment %q", ErrUnknownEntity, apartmentID)
			}
		}
		unassignRoom(b, roomID)
		if apt != nil {
			apt.RoomIDs = append(apt.RoomIDs, roomID)
		}
		return nil
	}}
}

// AddSlab appends a floor plate.
func AddSlab(s model.Slab) Op {
	return op{name: "add-slab " + s.ID, fn: func(b *model.Building) error {
		if s.ID == "" {
			return fmt.Errorf("%w: empty slab id", ErrBadOp)
		}
		if knownIDs(b)[s.ID] {
			return fmt.Errorf("%w: slab %q", ErrDuplicateID, s.ID)
		}
		s := s
		s.Outline = append(geom.Polygon(nil), s.Outline...)
		b.Slabs = append(b.Slabs, s)
		return nil
	}}
}

// AddShaft appends a staircase or elevator shaft.
func AddShaft(s model.Shaft) Op {
	return op{name: "add-shaft " + s.ID, fn: func(b *model.Building) error {
		if s.ID == "" {
			return fmt.Errorf("%w: empty shaft id", ErrBadOp)
		}
		if knownIDs(b)[s.ID] {
			return fmt.Errorf("%w: shaft %q", ErrDuplicateID, s.ID)
		}
		s := s
		s.Footprint = append(geom.Polygon(nil), s.Footprint...)
		b.Shafts = append(b.Shafts, s)
		return nil
	}}
}

// RenameBuilding sets the building name. An empty name is allowed.
func RenameBuilding(name string) Op {
	return op{name: "rename-building", fn: func(b *model.Building) error {
		b.Name = name
		return nil
	}}
}
