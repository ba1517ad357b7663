// SPDX-License-Identifier: MIT

package gen

import (
	"fmt"
	"math"
	"sort"

	"github.com/katalvlaran/lvlplan/geom"
	"github.com/katalvlaran/lvlplan/model"
)

// Building generates one snapshot. Equal options produce identical
// buildings; there is no randomness anywhere in the plan. The result
// has passed the integrity gate, so it can go straight into
// validation, rendering or mutation.
func Building(opts ...Option) (*model.Building, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}
	// Some flaws need their victim to exist at all.
	switch o.Defect {
	case DefectIsolatedStorage:
		if o.Bedrooms < 2 {
			o.Bedrooms = 2
		}
	case DefectUnsupportedWall:
		if o.Floors < 2 {
			o.Floors = 2
		}
	}

	b := &model.Building{Name: fmt.Sprintf("%d-storey slab", o.Floors)}
	for f := 0; f < o.Floors; f++ {
		b.Floors = append(b.Floors, model.Floor{Index: f, Height: storeyHeight})
	}

	for f := 0; f < o.Floors; f++ {
		p := newFloorPlan(o, f)
		if f == 0 {
			for _, s := range p.shafts {
				b.Shafts = append(b.Shafts, model.Shaft{
					ID:        s.id,
					Kind:      s.kind,
					Footprint: s.r.poly(),
					FloorLo:   0,
					FloorHi:   o.Floors - 1,
				})
			}
		}
		if err := buildFloor(b, p, o, f); err != nil {
			return nil, err
		}
	}

	if o.Defect == DefectLowCeiling {
		for i := range b.Walls {
			if b.Walls[i].ID == "w-0-0" {
				b.Walls[i].Height = lowCeilingH
				break
			}
		}
	}

	if _, err := model.NewIndex(b); err != nil {
		return nil, err
	}
	return b, nil
}

// buildFloor stamps one storey of the template into the snapshot.
func buildFloor(b *model.Building, p *floorPlan, o Options, floor int) error {
	for i, rs := range p.rooms {
		b.Rooms = append(b.Rooms, model.Room{
			ID:       fmt.Sprintf("r-%d-%d", floor, i),
			Boundary: rs.r.poly(),
			Type:     rs.t,
			Floor:    floor,
		})
	}
	for i, outline := range p.slabs {
		b.Slabs = append(b.Slabs, model.Slab{
			ID:      fmt.Sprintf("s-%d-%d", floor, i),
			Outline: outline,
			Floor:   floor,
		})
	}

	regions := make([]rect, 0, len(p.rooms)+len(p.shafts))
	for _, rs := range p.rooms {
		regions = append(regions, rs.r)
	}
	for _, ss := range p.shafts {
		regions = append(regions, ss.r)
	}
	walls, index := emitWalls(floor, regions)

	// The mismarked wall: load-bearing upstairs, nothing but a
	// partition in the same place below.
	if o.Defect == DefectUnsupportedWall && floor > 0 {
		k := wallKey{vert: true, coord: mm(coreW + kitchenW), lo: mm(aptD - stripD), hi: mm(aptD)}
		if wi, ok := index[k]; ok {
			walls[wi].Kind = model.WallBearing
		}
	}

	entrance, err := attachOpenings(floor, p, walls, index)
	if err != nil {
		return err
	}
	if entrance != "" {
		b.EntranceDoorID = entrance
	}
	b.Walls = append(b.Walls, walls...)

	for k, a := range p.apts {
		apt := model.Apartment{
			ID:             fmt.Sprintf("apt-%d-%d", floor, k),
			Floor:          floor,
			EntranceDoorID: fmt.Sprintf("d-%d-%d", floor, a.entryDoor),
		}
		for ri := a.roomLo; ri < a.roomHi; ri++ {
			apt.RoomIDs = append(apt.RoomIDs, fmt.Sprintf("r-%d-%d", floor, ri))
		}
		b.Apartments = append(b.Apartments, apt)
	}
	return nil
}

// mm quantizes a plan coordinate to whole millimeters, the grid every
// region corner sits on. Segmentation compares coordinates in mm so
// float noise cannot split a junction.
func mm(v float64) int { return int(math.Round(v * 1000)) }

func toM(v int) float64 { return float64(v) / 1000 }

// lineKey addresses one wall line: vertical at x=coord or horizontal
// at y=coord, in millimeters.
type lineKey struct {
	vert  bool
	coord int
}

// span is one region interval on a line.
type span struct{ lo, hi int }

// sides holds the region intervals on both sides of a line: south and
// north of a horizontal line, west and east of a vertical one.
type sides struct {
	before []span
	after  []span
}

// wallKey addresses one emitted wall by its line and atomic interval,
// which is how opening specs find their host.
type wallKey struct {
	vert          bool
	coord, lo, hi int
}

// emitWalls cuts every region boundary at every corner sharing its
// line and returns one wall per atomic piece: a partition where two
// regions meet, load-bearing shell where only one side is built.
// Piece-wise emission means touching walls always share endpoints
// exactly and nothing ever crosses another wall mid-segment.
func emitWalls(floor int, regions []rect) ([]model.Wall, map[wallKey]int) {
	lines := make(map[lineKey]*sides)
	at := func(k lineKey) *sides {
		s, ok := lines[k]
		if !ok {
			s = &sides{}
			lines[k] = s
		}
		return s
	}
	for _, r := range regions {
		x0, y0, x1, y1 := mm(r.x0), mm(r.y0), mm(r.x1), mm(r.y1)
		at(lineKey{true, x0}).after = append(at(lineKey{true, x0}).after, span{y0, y1})
		at(lineKey{true, x1}).before = append(at(lineKey{true, x1}).before, span{y0, y1})
		at(lineKey{false, y0}).after = append(at(lineKey{false, y0}).after, span{x0, x1})
		at(lineKey{false, y1}).before = append(at(lineKey{false, y1}).before, span{x0, x1})
	}

	keys := make([]lineKey, 0, len(lines))
	for k := range lines {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool {
		if keys[i].vert != keys[j].vert {
			return !keys[i].vert
		}
		return keys[i].coord < keys[j].coord
	})

	var walls []model.Wall
	index := make(map[wallKey]int)
	for _, k := range keys {
		s := lines[k]
		for _, piece := range pieces(s) {
			bef, aft := coveredBy(s.before, piece), coveredBy(s.after, piece)
			if !bef && !aft {
				continue
			}
			w := model.Wall{
				ID:        fmt.Sprintf("w-%d-%d", floor, len(walls)),
				Floor:     floor,
				Kind:      model.WallBearing,
				Thickness: extThickness,
			}
			if bef && aft {
				w.Kind = model.WallPartition
				w.Thickness = intThickness
			}
			if k.vert {
				w.A = geom.Point{X: toM(k.coord), Y: toM(piece.lo)}
				w.B = geom.Point{X: toM(k.coord), Y: toM(piece.hi)}
			} else {
				w.A = geom.Point{X: toM(piece.lo), Y: toM(k.coord)}
				w.B = geom.Point{X: toM(piece.hi), Y: toM(k.coord)}
			}
			index[wallKey{k.vert, k.coord, piece.lo, piece.hi}] = len(walls)
			walls = append(walls, w)
		}
	}
	return walls, index
}

// pieces returns the atomic intervals of one line: consecutive pairs
// over every interval endpoint on it.
func pieces(s *sides) []span {
	set := make(map[int]struct{}, (len(s.before)+len(s.after))*2)
	for _, sp := range s.before {
		set[sp.lo] = struct{}{}
		set[sp.hi] = struct{}{}
	}
	for _, sp := range s.after {
		set[sp.lo] = struct{}{}
		set[sp.hi] = struct{}{}
	}
	cuts := make([]int, 0, len(set))
	for c := range set {
		cuts = append(cuts, c)
	}
	sort.Ints(cuts)

	out := make([]span, 0, len(cuts))
	for i := 0; i+1 < len(cuts); i++ {
		out = append(out, span{cuts[i], cuts[i+1]})
	}
	return out
}

// coveredBy reports whether some interval of the side spans the whole
// piece.
func coveredBy(side []span, p span) bool {
	for _, sp := range side {
		if sp.lo <= p.lo && sp.hi >= p.hi {
			return true
		}
	}
	return false
}

// attachOpenings cuts the door and window specs into their host walls.
// Every spec addresses a full shared span, so the lookup is exact; a
// miss is a template bug and fails loudly. Returns the building
// entrance id if this storey carries it.
func attachOpenings(floor int, p *floorPlan, walls []model.Wall, index map[wallKey]int) (string, error) {
	var entrance string
	for i, d := range p.doors {
		wi, ok := index[wallKey{d.vert, mm(d.coord), mm(d.lo), mm(d.hi)}]
		if !ok {
			return "", fmt.Errorf("gen: door %d on floor %d matches no wall", i, floor)
		}
		id := fmt.Sprintf("d-%d-%d", floor, i)
		walls[wi].Openings = append(walls[wi].Openings, model.Opening{
			ID:     id,
			Offset: (d.hi - d.lo - d.width) / 2,
			Width:  d.width,
			Kind:   model.OpeningDoor,
		})
		if d.entrance {
			entrance = id
		}
	}
	for i, wn := range p.windows {
		wi, ok := index[wallKey{wn.vert, mm(wn.coord), mm(wn.lo), mm(wn.hi)}]
		if !ok {
			return "", fmt.Errorf("gen: window %d on floor %d matches no wall", i, floor)
		}
		walls[wi].Openings = append(walls[wi].Openings, model.Opening{
			ID:     fmt.Sprintf("win-%d-%d", floor, i),
			Offset: (wn.hi - wn.lo - windowW) / 2,
			Width:  windowW,
			Kind:   model.OpeningWindow,
		})
	}
	return entrance, nil
}
