// SPDX-License-Identifier: MIT

// Package geom is the 2D geometry kernel for floor-plan analysis.
//
// What:
//
//	Points, segments and polygons in meter units, plus the intersection,
//	containment, area and distance operations the building model and the
//	rule catalog are built on.
//
// Why:
//
//	Floor-plan checks reduce to a small set of planar predicates. Keeping
//	them in one dependency-free package makes every higher layer (model
//	integrity, connectivity graph, metrics, rules) a consumer of the same
//	tolerance and the same determinism guarantees.
//
// Conventions:
//
//   - Coordinates are float64 meters. Eps (1 mm) is the single tolerance:
//     two coordinates closer than Eps are the same coordinate, a point
//     within Eps of a boundary is on that boundary.
//   - Every operation is a total function. Degenerate input (zero-length
//     segment, polygon with fewer than 3 effective vertices or near-zero
//     area) yields a defined sentinel result, never a panic and never an
//     error. Callers that care inspect Degenerate() first.
//   - Distances used as graph weights are rounded to integer millimeters
//     (DistMM) so downstream comparisons are exact.
//
// Complexity: all predicates are O(1) per segment pair; polygon operations
// are O(n) in the vertex count, except PolyOverlap which is O(n·m) over the
// two rings.
package geom
