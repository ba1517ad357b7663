// SPDX-License-Identifier: MIT

package rules

import (
	"fmt"
	"math"

	"github.com/katalvlaran/lvlplan/geom"
	"github.com/katalvlaran/lvlplan/model"
)

// checkFloorCoverage samples every slab on a CoverageCell grid and
// flags connected patches of slab that belong to no room and no shaft.
// Patches of MinUnassignedArea or smaller stay quiet; walls and
// tolerance slivers always leave a few orphan cells.
func checkFloorCoverage(in *Input) []Issue {
	var out []Issue
	for i := range in.Building.Slabs {
		out = append(out, slabCoverage(in, &in.Building.Slabs[i])...)
	}
	return out
}

// coverageGrid is one slab rasterized at CoverageCell pitch. Cells are
// stored row-major; open marks cells inside the slab outline but inside
// no room boundary and no shaft footprint.
type coverageGrid struct {
	origin geom.Point
	w, h   int
	open   []bool
}

// slabCoverage rasterizes one slab and reports every open cluster
// larger than MinUnassignedArea, in row-major order of the cluster's
// first cell.
func slabCoverage(in *Input, s *model.Slab) []Issue {
	if s.Outline.Degenerate() {
		return nil
	}
	g := rasterize(in, s)

	var out []Issue
	seen := make([]bool, len(g.open))
	offsets := [4][2]int{{0, -1}, {1, 0}, {0, 1}, {-1, 0}}

	for y := 0; y < g.h; y++ {
		for x := 0; x < g.w; x++ {
			i0 := y*g.w + x
			if !g.open[i0] || seen[i0] {
				continue
			}
			// BFS to collect the cluster.
			queue := []int{i0}
			seen[i0] = true
			var cluster []int
			for qi := 0; qi < len(queue); qi++ {
				u := queue[qi]
				cluster = append(cluster, u)
				ux, uy := u%g.w, u/g.w
				for _, d := range offsets {
					vx, vy := ux+d[0], uy+d[1]
					if vx < 0 || vx >= g.w || vy < 0 || vy >= g.h {
						continue
					}
					vi := vy*g.w + vx
					if g.open[vi] && !seen[vi] {
						seen[vi] = true
						queue = append(queue, vi)
					}
				}
			}

			area := float64(len(cluster)) * CoverageCell * CoverageCell
			if area <= MinUnassignedArea {
				continue
			}
			at := g.clusterCenter(cluster)
			out = append(out, Issue{
				Severity: SeverityWarning,
				Code:     CodeUnassignedArea,
				Message: fmt.Sprintf("about %.1f m² of slab %q on floor %d near (%.1f, %.1f) belongs to no room or shaft",
					area, s.ID, s.Floor, at.X, at.Y),
				Entities:   []string{s.ID, floorRef(s.Floor)},
				Actual:     area,
				Limit:      MinUnassignedArea,
				Confidence: 1,
			})
		}
	}
	return out
}

// rasterize samples the slab's bounding box at cell centers. A cell is
// open when its center is inside the outline but in no room of the
// slab's floor and no shaft footprint spanning it.
func rasterize(in *Input, s *model.Slab) *coverageGrid {
	minX, minY := s.Outline[0].X, s.Outline[0].Y
	maxX, maxY := minX, minY
	for _, v := range s.Outline[1:] {
		minX = math.Min(minX, v.X)
		maxX = math.Max(maxX, v.X)
		minY = math.Min(minY, v.Y)
		maxY = math.Max(maxY, v.Y)
	}

	g := &coverageGrid{
		origin: geom.Point{X: minX, Y: minY},
		w:      int(math.Ceil((maxX - minX) / CoverageCell)),
		h:      int(math.Ceil((maxY - minY) / CoverageCell)),
	}
	g.open = make([]bool, g.w*g.h)

	rooms := in.Index.RoomsOn(s.Floor)
	var shafts []*model.Shaft
	for i := range in.Building.Shafts {
		if in.Building.Shafts[i].Spans(s.Floor) {
			shafts = append(shafts, &in.Building.Shafts[i])
		}
	}

	for y := 0; y < g.h; y++ {
		for x := 0; x < g.w; x++ {
			p := g.center(x, y)
			if !s.Outline.Contains(p) {
				continue
			}
			covered := false
			for _, r := range rooms {
				if r.Boundary.Contains(p) {
					covered = true
					break
				}
			}
			for _, sh := range shafts {
				if covered {
					break
				}
				if sh.Footprint.Contains(p) {
					covered = true
				}
			}
			g.open[y*g.w+x] = !covered
		}
	}
	return g
}

// center returns the world coordinates of a cell center.
func (g *coverageGrid) center(x, y int) geom.Point {
	return geom.Point{
		X: g.origin.X + (float64(x)+0.5)*CoverageCell,
		Y: g.origin.Y + (float64(y)+0.5)*CoverageCell,
	}
}

// clusterCenter returns the mean of the cluster's cell centers, for the
// report message.
func (g *coverageGrid) clusterCenter(cluster []int) geom.Point {
	var sx, sy float64
	for _, i := range cluster {
		p := g.center(i%g.w, i/g.w)
		sx += p.X
		sy += p.Y
	}
	n := float64(len(cluster))
	return geom.Point{X: sx / n, Y: sy / n}
}
