// SPDX-License-Identifier: MIT

// Package model: enumerations shared by the whole snapshot.
// Each enum is a compact integer with a stable wire string; the parsers
// are the only place those strings are interpreted, so the snapshot
// codec, the CLI and the rules all agree by construction.
package model

import "fmt"

// RoomType classifies what a room is used for. The zero value is
// RoomOther, a valid neutral type, so an unset field never impersonates
// a kitchen.
type RoomType uint8

const (
	RoomOther RoomType = iota
	RoomKitchen
	RoomLiving
	RoomBedroom
	RoomBathroom
	RoomWC
	RoomEntranceHall
	RoomStorage
	RoomCorridor
	RoomLanding
)

var roomTypeNames = map[RoomType]string{
	RoomOther:        "other",
	RoomKitchen:      "kitchen",
	RoomLiving:       "living",
	RoomBedroom:      "bedroom",
	RoomBathroom:     "bathroom",
	RoomWC:           "wc",
	RoomEntranceHall: "entrance-hall",
	RoomStorage:      "storage",
	RoomCorridor:     "corridor",
	RoomLanding:      "staircase-landing",
}

// String returns the wire form of the type.
func (t RoomType) String() string {
	if s, ok := roomTypeNames[t]; ok {
		return s
	}
	return fmt.Sprintf("room-type(%d)", uint8(t))
}

// Habitable reports whether the type counts as living space for the
// ceiling-height and shape rules: kitchen, living and bedroom do,
// sanitary and circulation space does not.
func (t RoomType) Habitable() bool {
	return t == RoomKitchen || t == RoomLiving || t == RoomBedroom
}

// Circulation reports whether the type is pure circulation space:
// corridors and staircase landings. Circulation is excluded from
// apartment net area and exempt from the isolated-room and
// tunnel-shape checks.
func (t RoomType) Circulation() bool {
	return t == RoomCorridor || t == RoomLanding
}

// ParseRoomType maps a wire string back to its RoomType.
func ParseRoomType(s string) (RoomType, error) {
	for t, name := range roomTypeNames {
		if name == s {
			return t, nil
		}
	}
	return RoomOther, fmt.Errorf("%w: room type %q", ErrEnumValue, s)
}

// WallKind distinguishes structural from partition walls.
type WallKind uint8

const (
	WallPartition WallKind = iota
	WallBearing
)

// String returns the wire form of the kind.
func (k WallKind) String() string {
	if k == WallBearing {
		return "load-bearing"
	}
	return "partition"
}

// ParseWallKind maps a wire string back to its WallKind.
func ParseWallKind(s string) (WallKind, error) {
	switch s {
	case "partition":
		return WallPartition, nil
	case "load-bearing":
		return WallBearing, nil
	default:
		return WallPartition, fmt.Errorf("%w: wall kind %q", ErrEnumValue, s)
	}
}

// OpeningKind distinguishes doors from windows. Only doors ever carry
// connectivity; windows exist for the structural checks.
type OpeningKind uint8

const (
	OpeningDoor OpeningKind = iota
	OpeningWindow
)

// String returns the wire form of the kind.
func (k OpeningKind) String() string {
	if k == OpeningWindow {
		return "window"
	}
	return "door"
}

// ParseOpeningKind maps a wire string back to its OpeningKind.
func ParseOpeningKind(s string) (OpeningKind, error) {
	switch s {
	case "door":
		return OpeningDoor, nil
	case "window":
		return OpeningWindow, nil
	default:
		return OpeningDoor, fmt.Errorf("%w: opening kind %q", ErrEnumValue, s)
	}
}

// ShaftKind distinguishes staircases from elevator shafts.
type ShaftKind uint8

const (
	ShaftStair ShaftKind = iota
	ShaftElevator
)

// String returns the wire form of the kind.
func (k ShaftKind) String() string {
	if k == ShaftElevator {
		return "elevator"
	}
	return "staircase"
}

// ParseShaftKind maps a wire string back to its ShaftKind.
func ParseShaftKind(s string) (ShaftKind, error) {
	switch s {
	case "staircase":
		return ShaftStair, nil
	case "elevator":
		return ShaftElevator, nil
	default:
		return ShaftStair, fmt.Errorf("%w: shaft kind %q", ErrEnumValue, s)
	}
}
