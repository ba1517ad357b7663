// SPDX-License-Identifier: MIT

package model

import "github.com/katalvlaran/lvlplan/geom"

// Opening is a door or window cut into its host wall, placed by a 1D
// interval along the wall axis: [Offset, Offset+Width] in meters from
// the wall's A endpoint.
type Opening struct {
	ID     string
	Offset float64
	Width  float64
	Kind   OpeningKind
}

// Wall is a straight wall piece on one floor. Openings are ordered as
// authored; interval validity is a rule concern, not a decoding concern.
type Wall struct {
	ID        string
	A, B      geom.Point
	Thickness float64
	Height    float64
	Floor     int
	Kind      WallKind
	Openings  []Opening
}

// Segment returns the wall centerline.
func (w Wall) Segment() geom.Segment {
	return geom.Segment{A: w.A, B: w.B}
}

// Len returns the centerline length in meters.
func (w Wall) Len() float64 {
	return w.Segment().Len()
}

// OpeningSpan returns the sub-segment of the centerline covered by o.
// On a degenerate wall the span collapses to the A endpoint, which keeps
// downstream geometry total.
func (w Wall) OpeningSpan(o Opening) geom.Segment {
	ln := w.Len()
	if ln < geom.Eps {
		return geom.Segment{A: w.A, B: w.A}
	}
	s := w.Segment()
	return geom.Segment{
		A: s.At(o.Offset / ln),
		B: s.At((o.Offset + o.Width) / ln),
	}
}

// Slab is one structural floor plate.
type Slab struct {
	ID        string
	Outline   geom.Polygon
	Floor     int
	Thickness float64
}

// Room is one enclosed space on a floor. Apartment membership is owned
// by the Apartment (RoomIDs); rooms do not point back.
type Room struct {
	ID       string
	Boundary geom.Polygon
	Type     RoomType
	Floor    int
}

// Apartment groups rooms on one floor. RoomIDs order is meaningful: the
// first listed bedroom is the master bedroom for the sizing rules.
type Apartment struct {
	ID             string
	Floor          int
	RoomIDs        []string
	EntranceDoorID string
}

// Shaft is a staircase or elevator footprint spanning an inclusive
// floor range. The connectivity graph grows one landing node per floor
// spanned.
type Shaft struct {
	ID        string
	Kind      ShaftKind
	Footprint geom.Polygon
	FloorLo   int
	FloorHi   int
}

// Spans reports whether the shaft serves the given floor.
func (s Shaft) Spans(floor int) bool {
	return floor >= s.FloorLo && floor <= s.FloorHi
}

// Floor is one storey. Height is the clear storey height used as the
// default for walls on that floor.
type Floor struct {
	Index  int
	Height float64
}

// Building is one immutable snapshot of the whole model. Slice order is
// authoring order and is meaningful: graph nodes, rule output and
// reports all iterate it, which is what makes validation deterministic.
type Building struct {
	Name           string
	Floors         []Floor
	Walls          []Wall
	Slabs          []Slab
	Rooms          []Room
	Apartments     []Apartment
	Shafts         []Shaft
	EntranceDoorID string
}

// Clone returns a deep copy. The mutation layer edits the copy and
// republishes it; the receiver is never touched.
func (b *Building) Clone() *Building {
	if b == nil {
		return nil
	}
	out := &Building{
		Name:           b.Name,
		EntranceDoorID: b.EntranceDoorID,
		Floors:         append([]Floor(nil), b.Floors...),
		Walls:          make([]Wall, len(b.Walls)),
		Slabs:          make([]Slab, len(b.Slabs)),
		Rooms:          make([]Room, len(b.Rooms)),
		Apartments:     make([]Apartment, len(b.Apartments)),
		Shafts:         make([]Shaft, len(b.Shafts)),
	}
	for i, w := range b.Walls {
		w.Openings = append([]Opening(nil), w.Openings...)
		out.Walls[i] = w
	}
	for i, s := range b.Slabs {
		s.Outline = append(geom.Polygon(nil), s.Outline...)
		out.Slabs[i] = s
	}
	for i, r := range b.Rooms {
		r.Boundary = append(geom.Polygon(nil), r.Boundary...)
		out.Rooms[i] = r
	}
	for i, a := range b.Apartments {
		a.RoomIDs = append([]string(nil), a.RoomIDs...)
		out.Apartments[i] = a
	}
	for i, s := range b.Shafts {
		s.Footprint = append(geom.Polygon(nil), s.Footprint...)
		out.Shafts[i] = s
	}
	return out
}
