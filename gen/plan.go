// SPDX-License-Identifier: MIT

package gen

import (
	"github.com/katalvlaran/lvlplan/geom"
	"github.com/katalvlaran/lvlplan/model"
)

// Plan dimensions in meters. Every value is a multiple of 0.1, so
// region corners land exactly on shared coordinates and the wall
// segmentation never has to reconcile near-misses.
const (
	coreW     = 3.0 // stair column width
	stairD    = 3.5 // staircase footprint depth
	liftD     = 1.8 // elevator footprint depth
	corridorD = 2.0 // main corridor depth
	stripD    = 2.4 // service strip depth
	innerD    = 1.2 // apartment corridor depth
	zoneD     = 5.7 // living zone depth
	zoneRoomW = 3.9 // uniform living-zone room width
	kitchenW  = 3.5 // kitchen slot width in the service strip
	hallW     = 1.9 // entrance hall slot width

	extThickness = 0.30
	intThickness = 0.15
	storeyHeight = 2.70

	entranceDoorW = 1.10
	aptDoorW      = 0.95
	roomDoorW     = 0.80
	stairDoorW    = 1.00
	liftDoorW     = 0.90
	windowW       = 1.20
)

// Deliberate-flaw dimensions.
const (
	narrowCorridorD = 1.0
	lowCeilingH     = 2.3
	tunnelLivingW   = 5.9
	tunnelMasterW   = 1.9
)

// aptD is the apartment column depth: living zone, apartment corridor
// and service strip stacked against the main corridor.
const aptD = zoneD + innerD + stripD

// rect is an axis-aligned plan region, the only shape the generator
// lays out.
type rect struct{ x0, y0, x1, y1 float64 }

func (r rect) poly() geom.Polygon {
	return geom.Polygon{
		{X: r.x0, Y: r.y0},
		{X: r.x1, Y: r.y0},
		{X: r.x1, Y: r.y1},
		{X: r.x0, Y: r.y1},
	}
}

// mirrorY reflects the rect across half the slab depth d, which is how
// a south-row rect becomes its north-row twin.
func (r rect) mirrorY(d float64) rect {
	return rect{x0: r.x0, y0: d - r.y1, x1: r.x1, y1: d - r.y0}
}

// slotRoom is one slot of a room band: a type and a width.
type slotRoom struct {
	t model.RoomType
	w float64
}

// stripRooms returns the service strip west to east. The widths per
// bedroom count sum to the apartment width exactly.
func stripRooms(bedrooms int) []slotRoom {
	strip := []slotRoom{
		{model.RoomKitchen, kitchenW},
		{model.RoomEntranceHall, hallW},
		{model.RoomBathroom, 2.4},
	}
	switch bedrooms {
	case 2:
		strip = append(strip,
			slotRoom{model.RoomWC, 2.0},
			slotRoom{model.RoomStorage, 1.9})
	case 3:
		strip = append(strip,
			slotRoom{model.RoomWC, 2.0},
			slotRoom{model.RoomStorage, 3.4},
			slotRoom{model.RoomBathroom, 2.4})
	}
	return strip
}

// zoneRooms returns the living zone west to east: the living room
// first, then the master bedroom, then the remaining bedrooms. The
// tunnel variant starves the master down to a strip.
func zoneRooms(bedrooms int, tunnel bool) []slotRoom {
	zone := make([]slotRoom, 0, bedrooms+1)
	zone = append(zone, slotRoom{model.RoomLiving, zoneRoomW})
	for i := 0; i < bedrooms; i++ {
		zone = append(zone, slotRoom{model.RoomBedroom, zoneRoomW})
	}
	if tunnel {
		zone[0].w = tunnelLivingW
		zone[1].w = tunnelMasterW
	}
	return zone
}

// roomSpec is one room of the floor template.
type roomSpec struct {
	t model.RoomType
	r rect
}

// shaftSpec is one shaft footprint with its building-wide id.
type shaftSpec struct {
	id   string
	kind model.ShaftKind
	r    rect
}

// doorSpec places one door on the boundary between two regions:
// [lo, hi] is the full shared span on the wall line (vertical at
// x=coord, horizontal at y=coord) and the leaf sits centered in it.
type doorSpec struct {
	vert     bool
	coord    float64
	lo, hi   float64
	width    float64
	entrance bool
}

// winSpec places one window, centered on an exterior wall span.
type winSpec struct {
	vert   bool
	coord  float64
	lo, hi float64
}

// aptSpec is one apartment of the template: a contiguous range of the
// room list plus the index of its entrance door spec.
type aptSpec struct {
	roomLo, roomHi int
	entryDoor      int
}

// floorPlan is the complete template of one storey. Shafts repeat
// identically on every floor; rooms may differ where a defect is
// planted on the ground floor.
type floorPlan struct {
	w, d    float64
	rooms   []roomSpec
	shafts  []shaftSpec
	doors   []doorSpec
	windows []winSpec
	apts    []aptSpec
	slabs   []geom.Polygon
}

// newFloorPlan lays out one storey: the corridor spine, the west stair
// core, the south apartment row and its mirrored north row, then the
// slabs under all of it. The slab skips the parts of the stair column
// no shaft occupies, which keeps the sellable ratio honest.
func newFloorPlan(o Options, floor int) *floorPlan {
	south := (o.Apartments + 1) / 2
	north := o.Apartments - south
	aptW := zoneRoomW * float64(o.Bedrooms+1)
	cw := corridorD
	if o.Defect == DefectNarrowCorridor {
		cw = narrowCorridorD
	}

	p := &floorPlan{
		w: coreW + float64(south)*aptW,
		d: aptD + cw,
	}
	if north > 0 {
		p.d += aptD
	}

	// 1) The corridor spine, with the building entrance at its east
	// gable on the ground floor.
	p.rooms = append(p.rooms, roomSpec{model.RoomCorridor, rect{0, aptD, p.w, aptD + cw}})
	if floor == 0 {
		ew := entranceDoorW
		if cw-0.2 < ew {
			ew = cw - 0.2
		}
		p.doors = append(p.doors, doorSpec{
			vert: true, coord: p.w, lo: aptD, hi: aptD + cw,
			width: ew, entrance: true,
		})
	}

	// 2) The stair core and the optional elevator behind the south
	// stair. The elevator opens onto the stair half-landing, the
	// stairs onto the corridor.
	p.shafts = append(p.shafts, shaftSpec{"stair-s", model.ShaftStair,
		rect{0, aptD - stairD, coreW, aptD}})
	p.doors = append(p.doors, doorSpec{coord: aptD, lo: 0, hi: coreW, width: stairDoorW})
	if north > 0 {
		p.shafts = append(p.shafts, shaftSpec{"stair-n", model.ShaftStair,
			rect{0, aptD + cw, coreW, aptD + cw + stairD}})
		p.doors = append(p.doors, doorSpec{coord: aptD + cw, lo: 0, hi: coreW, width: stairDoorW})
	}
	if o.Elevator {
		p.shafts = append(p.shafts, shaftSpec{"lift", model.ShaftElevator,
			rect{0, aptD - stairD - liftD, coreW, aptD - stairD}})
		p.doors = append(p.doors, doorSpec{coord: aptD - stairD, lo: 0, hi: coreW, width: liftDoorW})
	}

	// 3) Apartment columns: the south row, then the north row mirrored
	// across the corridor.
	for k := 0; k < south; k++ {
		p.addApartment(o, floor, k, coreW+float64(k)*aptW, false)
	}
	for k := 0; k < north; k++ {
		p.addApartment(o, floor, south+k, coreW+float64(k)*aptW, true)
	}

	// 4) Slabs: an L-shaped plate around the south stair, a band under
	// the corridor, and the mirrored north plate up to the last north
	// column.
	yw := aptD - stairD
	if o.Elevator {
		yw -= liftD
	}
	p.slabs = append(p.slabs, geom.Polygon{
		{X: coreW, Y: 0},
		{X: p.w, Y: 0},
		{X: p.w, Y: aptD},
		{X: 0, Y: aptD},
		{X: 0, Y: yw},
		{X: coreW, Y: yw},
	})
	p.slabs = append(p.slabs, rect{0, aptD, p.w, aptD + cw}.poly())
	if north > 0 {
		ne := coreW + float64(north)*aptW
		p.slabs = append(p.slabs, geom.Polygon{
			{X: 0, Y: aptD + cw},
			{X: ne, Y: aptD + cw},
			{X: ne, Y: p.d},
			{X: coreW, Y: p.d},
			{X: coreW, Y: aptD + cw + stairD},
			{X: 0, Y: aptD + cw + stairD},
		})
	}
	return p
}

// addApartment lays out one apartment column at x0: the service strip
// against the corridor, the living zone along the facade and the
// apartment corridor linking the two. flip mirrors the column to the
// north side. Ground-floor defects land in the first column only.
func (p *floorPlan) addApartment(o Options, floor, slot int, x0 float64, flip bool) {
	aptW := zoneRoomW * float64(o.Bedrooms+1)
	first := floor == 0 && slot == 0

	strip := stripRooms(o.Bedrooms)
	if first && o.Defect == DefectMissingKitchen {
		strip[0].t = model.RoomStorage
	}
	zone := zoneRooms(o.Bedrooms, first && o.Defect == DefectTunnelBedroom)

	place := func(r rect) rect {
		if flip {
			return r.mirrorY(p.d)
		}
		return r
	}
	line := func(y float64) float64 {
		if flip {
			return p.d - y
		}
		return y
	}

	roomLo := len(p.rooms)
	entry := -1

	// Service strip: the entrance hall opens onto the main corridor,
	// every strip room onto the apartment corridor.
	x := x0
	for _, sr := range strip {
		p.rooms = append(p.rooms, roomSpec{sr.t, place(rect{x, aptD - stripD, x + sr.w, aptD})})
		if sr.t == model.RoomEntranceHall {
			entry = len(p.doors)
			p.doors = append(p.doors, doorSpec{
				coord: line(aptD), lo: x, hi: x + sr.w, width: aptDoorW,
			})
		}
		walledIn := first && o.Defect == DefectIsolatedStorage && sr.t == model.RoomStorage
		if !walledIn {
			p.doors = append(p.doors, doorSpec{
				coord: line(aptD - stripD), lo: x, hi: x + sr.w, width: roomDoorW,
			})
		}
		x += sr.w
	}

	// Living zone: a door onto the apartment corridor and a window in
	// the facade for every room.
	x = x0
	for _, zr := range zone {
		p.rooms = append(p.rooms, roomSpec{zr.t, place(rect{x, 0, x + zr.w, zoneD})})
		p.doors = append(p.doors, doorSpec{
			coord: line(zoneD), lo: x, hi: x + zr.w, width: roomDoorW,
		})
		p.windows = append(p.windows, winSpec{coord: line(0), lo: x, hi: x + zr.w})
		x += zr.w
	}

	// The apartment corridor itself, last in the member list.
	p.rooms = append(p.rooms, roomSpec{model.RoomCorridor,
		place(rect{x0, zoneD, x0 + aptW, zoneD + innerD})})

	p.apts = append(p.apts, aptSpec{roomLo: roomLo, roomHi: len(p.rooms), entryDoor: entry})
}
