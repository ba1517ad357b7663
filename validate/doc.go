// SPDX-License-Identifier: MIT

// Package validate is the engine's front door: one call takes a
// building snapshot through the integrity gate, the derived views and
// the full rule catalog, and returns one ordered report.
//
// The split of outcomes is strict. A snapshot that lies about itself
// (dangling ids, floor gaps, duplicate names) cannot be judged and
// fails with the model's IntegrityError. A snapshot that is merely bad
// architecture validates fine: its defects come back as data in the
// report.
//
// Reports are deterministic. Issues dedup by code and entity set, then
// sort by severity, producing rule, primary entity and code, so the
// same snapshot always renders the same bytes. WithParallel changes
// wall-clock time, never report content.
package validate
