// SPDX-License-Identifier: MIT

// Package rules is the validation catalog: every check the engine knows
// how to run against one building snapshot, each one a pure function
// from the shared read-only Input to a list of Issues.
//
// What:
//   - Issue: one finding with severity, stable code, entity references
//     and the measured value against the threshold it broke.
//   - Rule / Func: a named pure check over Input.
//   - Catalog: the fixed, ordered rule set.
//   - Report: an ordered issue list with severity counts.
//
// Why: defects are data, not errors. A building full of violations
// validates fine and reports badly; the engine exists to enumerate
// defects, so no rule ever aborts on one. Rules are independent of each
// other and read only the Input, which lets the orchestrator run them
// in any order or on a worker pool and still produce the same report
// after its deterministic sort.
//
// Findings measured off degenerate geometry (a zero-area room, a wall
// shorter than the tolerance) carry Confidence 0.5 instead of 1; the
// defect is real but the number attached to it is not trustworthy.
package rules
