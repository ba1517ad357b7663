// SPDX-License-Identifier: MIT

package model

import "fmt"

// Index resolves every identifier reference of one snapshot. It is built
// once per validation run (or mutation round) and shared read-only by
// the graph builder, the metrics pass and every rule.
//
// Construction doubles as the integrity gate: a snapshot that NewIndex
// accepts satisfies all structural invariants, so downstream code
// resolves references without re-checking them.
type Index struct {
	b *Building

	walls       map[string]*Wall
	rooms       map[string]*Room
	apartments  map[string]*Apartment
	shafts      map[string]*Shaft
	slabs       map[string]*Slab
	openings    map[string]*Opening
	openingWall map[string]*Wall

	roomsByFloor map[int][]*Room
	wallsByFloor map[int][]*Wall
	slabsByFloor map[int][]*Slab

	aptRooms map[string][]*Room
	roomApt  map[string]*Apartment
}

// NewIndex indexes the snapshot, failing fast with an IntegrityError on
// the first violated invariant, in deterministic authoring order.
//
// Integrity covers the referential shape only: empty or duplicate ids
// (one namespace across all entity classes), dangling references,
// non-contiguous floor indices, entities on unknown floors, apartment
// membership rules, and the entrance-door designations. Geometry is
// never inspected here; broken geometry must reach the rule catalog.
func NewIndex(b *Building) (*Index, error) {
	if b == nil {
		return nil, ErrNilBuilding
	}

	idx := &Index{
		b:            b,
		walls:        make(map[string]*Wall, len(b.Walls)),
		rooms:        make(map[string]*Room, len(b.Rooms)),
		apartments:   make(map[string]*Apartment, len(b.Apartments)),
		shafts:       make(map[string]*Shaft, len(b.Shafts)),
		slabs:        make(map[string]*Slab, len(b.Slabs)),
		openings:     make(map[string]*Opening),
		openingWall:  make(map[string]*Wall),
		roomsByFloor: make(map[int][]*Room),
		wallsByFloor: make(map[int][]*Wall),
		slabsByFloor: make(map[int][]*Slab),
		aptRooms:     make(map[string][]*Room, len(b.Apartments)),
		roomApt:      make(map[string]*Apartment),
	}

	// 1) Floors must be contiguous starting at 0.
	for i, f := range b.Floors {
		if f.Index != i {
			return nil, integrityErr("non-contiguous floors", fmt.Sprintf("floor %d at position %d", f.Index, i))
		}
	}
	hasFloor := func(i int) bool { return i >= 0 && i < len(b.Floors) }

	// 2) One id namespace across every entity class.
	seen := make(map[string]struct{})
	register := func(id string) error {
		if id == "" {
			return integrityErr("empty id", "")
		}
		if _, dup := seen[id]; dup {
			return integrityErr("duplicate id", id)
		}
		seen[id] = struct{}{}
		return nil
	}

	// 3) Walls and their openings.
	for i := range b.Walls {
		w := &b.Walls[i]
		if err := register(w.ID); err != nil {
			return nil, err
		}
		if !hasFloor(w.Floor) {
			return nil, integrityErr("unknown floor", w.ID)
		}
		idx.walls[w.ID] = w
		idx.wallsByFloor[w.Floor] = append(idx.wallsByFloor[w.Floor], w)
		for j := range w.Openings {
			o := &w.Openings[j]
			if err := register(o.ID); err != nil {
				return nil, err
			}
			idx.openings[o.ID] = o
			idx.openingWall[o.ID] = w
		}
	}

	// 4) Slabs.
	for i := range b.Slabs {
		s := &b.Slabs[i]
		if err := register(s.ID); err != nil {
			return nil, err
		}
		if !hasFloor(s.Floor) {
			return nil, integrityErr("unknown floor", s.ID)
		}
		idx.slabs[s.ID] = s
		idx.slabsByFloor[s.Floor] = append(idx.slabsByFloor[s.Floor], s)
	}

	// 5) Rooms.
	for i := range b.Rooms {
		r := &b.Rooms[i]
		if err := register(r.ID); err != nil {
			return nil, err
		}
		if !hasFloor(r.Floor) {
			return nil, integrityErr("unknown floor", r.ID)
		}
		idx.rooms[r.ID] = r
		idx.roomsByFloor[r.Floor] = append(idx.roomsByFloor[r.Floor], r)
	}

	// 6) Shafts.
	for i := range b.Shafts {
		s := &b.Shafts[i]
		if err := register(s.ID); err != nil {
			return nil, err
		}
		if s.FloorLo > s.FloorHi || !hasFloor(s.FloorLo) || !hasFloor(s.FloorHi) {
			return nil, integrityErr("bad floor range", s.ID)
		}
		idx.shafts[s.ID] = s
	}

	// 7) Apartments: membership, floors, entrance hall, entrance door.
	for i := range b.Apartments {
		a := &b.Apartments[i]
		if err := register(a.ID); err != nil {
			return nil, err
		}
		if !hasFloor(a.Floor) {
			return nil, integrityErr("unknown floor", a.ID)
		}
		idx.apartments[a.ID] = a
		halls := 0
		for _, rid := range a.RoomIDs {
			r, ok := idx.rooms[rid]
			if !ok {
				return nil, integrityErr("dangling room reference", a.ID+" -> "+rid)
			}
			if prev, claimed := idx.roomApt[rid]; claimed {
				return nil, integrityErr("room in two apartments", rid+" ("+prev.ID+", "+a.ID+")")
			}
			if r.Floor != a.Floor {
				return nil, integrityErr("apartment floor mismatch", a.ID+" -> "+rid)
			}
			if r.Type == RoomEntranceHall {
				halls++
			}
			idx.roomApt[rid] = a
			idx.aptRooms[a.ID] = append(idx.aptRooms[a.ID], r)
		}
		if halls != 1 {
			return nil, integrityErr("apartment needs exactly one entrance hall", a.ID)
		}
		door, ok := idx.openings[a.EntranceDoorID]
		if !ok {
			return nil, integrityErr("dangling entrance door reference", a.ID)
		}
		if door.Kind != OpeningDoor {
			return nil, integrityErr("entrance is not a door", a.ID)
		}
	}

	// 8) Building entrance.
	if b.EntranceDoorID == "" {
		return nil, integrityErr("missing building entrance", "")
	}
	door, ok := idx.openings[b.EntranceDoorID]
	if !ok {
		return nil, integrityErr("dangling entrance door reference", b.EntranceDoorID)
	}
	if door.Kind != OpeningDoor {
		return nil, integrityErr("entrance is not a door", b.EntranceDoorID)
	}

	return idx, nil
}

// Building returns the indexed snapshot.
func (x *Index) Building() *Building { return x.b }

// Wall resolves a wall id.
func (x *Index) Wall(id string) (*Wall, bool) { w, ok := x.walls[id]; return w, ok }

// Room resolves a room id.
func (x *Index) Room(id string) (*Room, bool) { r, ok := x.rooms[id]; return r, ok }

// Apartment resolves an apartment id.
func (x *Index) Apartment(id string) (*Apartment, bool) { a, ok := x.apartments[id]; return a, ok }

// Shaft resolves a shaft id.
func (x *Index) Shaft(id string) (*Shaft, bool) { s, ok := x.shafts[id]; return s, ok }

// Slab resolves a slab id.
func (x *Index) Slab(id string) (*Slab, bool) { s, ok := x.slabs[id]; return s, ok }

// Opening resolves an opening id.
func (x *Index) Opening(id string) (*Opening, bool) { o, ok := x.openings[id]; return o, ok }

// HostWall returns the wall an opening is cut into.
func (x *Index) HostWall(openingID string) (*Wall, bool) {
	w, ok := x.openingWall[openingID]
	return w, ok
}

// RoomsOn returns the rooms of one floor in authoring order.
func (x *Index) RoomsOn(floor int) []*Room { return x.roomsByFloor[floor] }

// WallsOn returns the walls of one floor in authoring order.
func (x *Index) WallsOn(floor int) []*Wall { return x.wallsByFloor[floor] }

// SlabsOn returns the slabs of one floor in authoring order.
func (x *Index) SlabsOn(floor int) []*Slab { return x.slabsByFloor[floor] }

// ApartmentRooms returns an apartment's member rooms in RoomIDs order.
func (x *Index) ApartmentRooms(aptID string) []*Room { return x.aptRooms[aptID] }

// ApartmentOf returns the apartment owning a room, if any.
func (x *Index) ApartmentOf(roomID string) (*Apartment, bool) {
	a, ok := x.roomApt[roomID]
	return a, ok
}
