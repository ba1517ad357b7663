// SPDX-License-Identifier: MIT

// Package metrics derives the spatial quantities the rule catalog
// judges: per-room area and proportions, per-apartment net area, and
// per-floor sellable efficiency.
//
// What:
//   - RoomMetrics: shoelace area, bounding-rect width, aspect ratio.
//   - ApartmentMetrics: net area over member rooms, circulation excluded.
//   - FloorMetrics: slab gross area, apartment net area, sellable ratio.
//
// Why: rules read numbers, not polygons. Computing every quantity once
// up front keeps the catalog pure and cheap, and pins down exactly one
// interpretation of each measure (axis-aligned boxes, net excludes
// corridors and landings, ratio clamped to [0,1]).
//
// Compute is total: degenerate geometry produces zeroed values with the
// Degenerate flag set instead of errors, and the catalog downgrades its
// confidence accordingly.
package metrics
