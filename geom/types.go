// SPDX-License-Identifier: MIT

// Package geom: primitive types and shared constants.
// Predicates live in segment.go and polygon.go; this file holds only the
// value types and the distance helpers every other package leans on.
package geom

import "math"

const (
	// Eps is the model tolerance: 1 mm expressed in meter units.
	// Coordinates, boundary tests and interval checks all share it.
	Eps = 1e-3

	// mmPerMeter converts meter distances into integer millimeter weights.
	mmPerMeter = 1000
)

// Point is a location on a floor plan, in meters.
type Point struct {
	X float64
	Y float64
}

// Add returns p translated by d.
func (p Point) Add(d Point) Point {
	return Point{X: p.X + d.X, Y: p.Y + d.Y}
}

// Dist returns the Euclidean distance between a and b, in meters.
func Dist(a, b Point) float64 {
	return math.Hypot(b.X-a.X, b.Y-a.Y)
}

// DistMM returns the Euclidean distance between a and b rounded to whole
// millimeters. Graph edge weights use this form so that shortest-path
// arithmetic stays in exact int64 space.
func DistMM(a, b Point) int64 {
	return int64(math.Round(Dist(a, b) * mmPerMeter))
}

// MM converts a length in meters to whole millimeters.
func MM(m float64) int64 {
	return int64(math.Round(m * mmPerMeter))
}

// Segment is a directed straight piece between two points. Direction only
// matters for parameterization (At); every predicate treats it as a set.
type Segment struct {
	A Point
	B Point
}

// Len returns the segment length in meters.
func (s Segment) Len() float64 {
	return Dist(s.A, s.B)
}

// Degenerate reports whether the segment is shorter than Eps.
// Degenerate segments flow through every predicate and come out as
// IntersectDegenerate; they never crash anything.
func (s Segment) Degenerate() bool {
	return s.Len() < Eps
}

// At returns the point at parameter t, where t=0 is A and t=1 is B.
// Values outside [0,1] extrapolate along the carrier line.
func (s Segment) At(t float64) Point {
	return Point{
		X: s.A.X + t*(s.B.X-s.A.X),
		Y: s.A.Y + t*(s.B.Y-s.A.Y),
	}
}

// Mid returns the midpoint of the segment.
func (s Segment) Mid() Point {
	return s.At(0.5)
}

// Polygon is an ordered ring of vertices; closure is implicit (the last
// vertex connects back to the first). Rings may be authored in either
// orientation, Area is always reported as a positive quantity.
type Polygon []Point
