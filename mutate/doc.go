// SPDX-License-Identifier: MIT

// Package mutate edits building snapshots by replacement: Apply deep
// copies the input, runs a sequence of ops against the copy, re-runs
// the integrity gate and hands back a fresh immutable snapshot. The
// input is never touched, so a failed edit leaves the caller exactly
// where they started.
//
// Ops are intentionally small and mechanical (add a wall, widen a
// door, retype a room). Whether the edited building is any good is not
// their concern; that is what validation is for. Only structural
// integrity is enforced, because every other package builds on it.
package mutate
