// SPDX-License-Identifier: MIT

// Package gen builds parametric apartment buildings for demos, tests
// and benchmarks: a double-loaded corridor slab with a west stair
// core, N apartments per storey mirrored across the corridor and the
// same plan stamped onto every floor. Every id is deterministic, so
// two calls with equal options return equal snapshots.
//
// The default building passes the full rule catalog with no errors and
// no warnings; only dead-end-corridor optimizations remain, which is
// the honest reading of a double-loaded plan. Larger configurations
// stay structurally sound but may earn real findings: a wide
// three-bedroom slab genuinely stretches its escape routes past the
// code limit. WithDefect plants one deliberate flaw for demos that
// need a non-empty report.
package gen
