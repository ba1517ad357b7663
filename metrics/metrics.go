// SPDX-License-Identifier: MIT

package metrics

import (
	"github.com/katalvlaran/lvlplan/geom"
	"github.com/katalvlaran/lvlplan/model"
)

// RoomMetrics are the per-room quantities.
type RoomMetrics struct {
	// Area is the enclosed area in square meters.
	Area float64
	// Width is the shorter side of the axis-aligned bounding rectangle.
	Width float64
	// Ratio is the bounding-rect aspect ratio, long side over short,
	// always >= 1.
	Ratio float64
	// Degenerate marks a boundary that cannot enclose a real space;
	// Area reads 0 and Ratio reads 1.
	Degenerate bool
}

// ApartmentMetrics are the per-apartment quantities.
type ApartmentMetrics struct {
	// NetArea sums the member room areas, excluding corridors and
	// staircase landings.
	NetArea float64
}

// FloorMetrics are the per-storey quantities.
type FloorMetrics struct {
	// GrossArea sums the slab areas on the floor.
	GrossArea float64
	// NetArea sums the net areas of the apartments on the floor.
	NetArea float64
	// SellableRatio is NetArea over GrossArea, clamped to [0, 1].
	SellableRatio float64
	// Degenerate marks a floor with no usable slab area; SellableRatio
	// reads 0.
	Degenerate bool
}

// Metrics carries every computed quantity of one snapshot, keyed by
// entity id (floors by index). It is immutable once Compute returns.
type Metrics struct {
	Rooms      map[string]RoomMetrics
	Apartments map[string]ApartmentMetrics
	Floors     map[int]FloorMetrics
}

// Compute derives all metrics of one snapshot. It is total: broken
// geometry surfaces as Degenerate sentinel values, never as an error.
//
// Complexity: O(R·V + A·M + F·S) for R rooms with V boundary vertices,
// A apartments with M member rooms, F floors with S slabs.
func Compute(b *model.Building, idx *model.Index) *Metrics {
	m := &Metrics{
		Rooms:      make(map[string]RoomMetrics, len(b.Rooms)),
		Apartments: make(map[string]ApartmentMetrics, len(b.Apartments)),
		Floors:     make(map[int]FloorMetrics, len(b.Floors)),
	}

	// 1) Rooms: area and axis-aligned proportions.
	for i := range b.Rooms {
		m.Rooms[b.Rooms[i].ID] = roomMetrics(b.Rooms[i].Boundary)
	}

	// 2) Apartments: net area over member rooms, circulation excluded.
	for i := range b.Apartments {
		a := &b.Apartments[i]
		var net float64
		for _, r := range idx.ApartmentRooms(a.ID) {
			if r.Type.Circulation() {
				continue
			}
			net += m.Rooms[r.ID].Area
		}
		m.Apartments[a.ID] = ApartmentMetrics{NetArea: net}
	}

	// 3) Floors: gross slab area against apartment net area.
	for i := range b.Floors {
		f := b.Floors[i].Index
		var gross float64
		for _, s := range idx.SlabsOn(f) {
			gross += s.Outline.Area()
		}
		var net float64
		for j := range b.Apartments {
			if b.Apartments[j].Floor == f {
				net += m.Apartments[b.Apartments[j].ID].NetArea
			}
		}
		m.Floors[f] = floorMetrics(gross, net)
	}

	return m
}

// roomMetrics folds one boundary ring into its quantities.
func roomMetrics(ring geom.Polygon) RoomMetrics {
	w, h := ring.BoundingRect()
	short, long := w, h
	if short > long {
		short, long = long, short
	}
	if ring.Degenerate() {
		return RoomMetrics{Width: short, Ratio: 1, Degenerate: true}
	}
	return RoomMetrics{
		Area:  ring.Area(),
		Width: short,
		Ratio: long / short,
	}
}

// floorMetrics clamps the sellable ratio into [0, 1]; a floor without
// slab area is degenerate and reads 0.
func floorMetrics(gross, net float64) FloorMetrics {
	fm := FloorMetrics{GrossArea: gross, NetArea: net}
	if gross < geom.Eps {
		fm.Degenerate = true
		return fm
	}
	ratio := net / gross
	if ratio > 1 {
		ratio = 1
	}
	if ratio < 0 {
		ratio = 0
	}
	fm.SellableRatio = ratio
	return fm
}
