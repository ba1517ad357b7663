// SPDX-License-Identifier: MIT

package mutate

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/lvlplan/model"
)

// Sentinel errors of the mutation layer.
var (
	// ErrNilBuilding is returned when Apply receives a nil snapshot.
	ErrNilBuilding = errors.New("mutate: building is nil")

	// ErrUnknownEntity is returned when an op names an id the snapshot
	// does not contain.
	ErrUnknownEntity = errors.New("mutate: unknown entity")

	// ErrDuplicateID is returned when an add op would reuse an id.
	ErrDuplicateID = errors.New("mutate: duplicate id")

	// ErrBadOp is returned for ops that are malformed regardless of the
	// snapshot: empty ids, non-positive widths, nil ops.
	ErrBadOp = errors.New("mutate: bad op")
)

// Op is one edit against a snapshot copy. Name identifies the op and
// its target for error context and logs; apply is unexported so the
// set of ops is closed under this package.
type Op interface {
	Name() string
	apply(b *model.Building) error
}

// op is the one Op implementation: a name plus a closure.
type op struct {
	name string
	fn   func(*model.Building) error
}

func (o op) Name() string                  { return o.name }
func (o op) apply(b *model.Building) error { return o.fn(b) }

// Apply copies b, applies ops in order and re-runs the integrity gate.
// On any op error or integrity failure the copy is discarded and b
// remains the caller's only snapshot. Op errors are wrapped with the
// op's name; integrity failures surface as the model's IntegrityError.
func Apply(b *model.Building, ops ...Op) (*model.Building, error) {
	if b == nil {
		return nil, ErrNilBuilding
	}
	next := b.Clone()
	for _, o := range ops {
		if o == nil {
			return nil, fmt.Errorf("%w: nil op", ErrBadOp)
		}
		if err := o.apply(next); err != nil {
			return nil, fmt.Errorf("%s: %w", o.Name(), err)
		}
	}
	if _, err := model.NewIndex(next); err != nil {
		return nil, err
	}
	return next, nil
}

// knownIDs collects every id in use, across all entity kinds. The
// model keeps one id namespace, so add ops must check all of it.
func knownIDs(b *model.Building) map[string]bool {
	ids := make(map[string]bool)
	for i := range b.Walls {
		ids[b.Walls[i].ID] = true
		for _, o := range b.Walls[i].Openings {
			ids[o.ID] = true
		}
	}
	for i := range b.Rooms {
		ids[b.Rooms[i].ID] = true
	}
	for i := range b.Slabs {
		ids[b.Slabs[i].ID] = true
	}
	for i := range b.Shafts {
		ids[b.Shafts[i].ID] = true
	}
	for i := range b.Apartments {
		ids[b.Apartments[i].ID] = true
	}
	return ids
}

func findWall(b *model.Building, id string) (*model.Wall, error) {
	for i := range b.Walls {
		if b.Walls[i].ID == id {
			return &b.Walls[i], nil
		}
	}
	return nil, fmt.Errorf("%w: wall %q", ErrUnknownEntity, id)
}

func findRoom(b *model.Building, id string) (*model.Room, error) {
	for i := range b.Rooms {
		if b.Rooms[i].ID == id {
			return &b.Rooms[i], nil
		}
	}
	return nil, fmt.Errorf("%w: room %q", ErrUnknownEntity, id)
}

// findOpening locates an opening by id across all walls, returning the
// host wall and the opening's index on it.
func findOpening(b *model.Building, id string) (*model.Wall, int, error) {
	for i := range b.Walls {
		for j := range b.Walls[i].Openings {
			if b.Walls[i].Openings[j].ID == id {
				return &b.Walls[i], j, nil
			}
		}
	}
	return nil, 0, fmt.Errorf("%w: opening %q", ErrUnknownEntity, id)
}

// unassignRoom drops the room from whichever apartment holds it.
func unassignRoom(b *model.Building, roomID string) {
	for i := range b.Apartments {
		a := &b.Apartments[i]
		for j, id := range a.RoomIDs {
			if id == roomID {
				a.RoomIDs = append(a.RoomIDs[:j], a.RoomIDs[j+1:]...)
				break
			}
		}
	}
}
